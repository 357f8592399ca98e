package profile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// ErrUnexpectedStatus is returned when the data file responds with a non-2xx status.
var ErrUnexpectedStatus = errors.New("unexpected status")

// maxDocumentSize caps how much of the response body is read.
const maxDocumentSize = 1 << 20

// Loader fetches the profile document once and publishes it to a Store.
type Loader struct {
	client *http.Client
	source string
	store  *Store
}

// NewLoader creates a Loader for the given source URL. A nil client uses
// http.DefaultClient.
func NewLoader(client *http.Client, source string, store *Store) *Loader {
	if client == nil {
		client = http.DefaultClient
	}
	return &Loader{client: client, source: source, store: store}
}

// Load performs a single request for the profile document, validates it and
// publishes it. Nothing is published on error.
func (l *Loader) Load(ctx context.Context) (err error) {
	ctx, span := otel.Tracer("github.com/Zachkp/folio/internal/profile").Start(ctx, "profile.Load")
	span.SetAttributes(attribute.String("profile.source", l.source))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.source, nil)
	if err != nil {
		return fmt.Errorf("build profile request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetch profile: %w", err)
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("fetch profile %s: %w: %d", l.source, ErrUnexpectedStatus, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize))
	if err != nil {
		return fmt.Errorf("read profile: %w", err)
	}

	p, err := Decode(data)
	if err != nil {
		return err
	}
	span.SetAttributes(attribute.Int("profile.projects", len(p.Projects)))

	if !l.store.Set(p) {
		log.Printf("Profile already loaded, ignoring document from %s", l.source)
	}
	return nil
}

// Run loads the profile once. Failures are logged and the store is left
// empty; there is no retry.
func (l *Loader) Run(ctx context.Context) {
	if err := l.Load(ctx); err != nil {
		if ctx.Err() != nil {
			log.Printf("Profile load abandoned: %v", err)
			return
		}
		log.Printf("Error loading profile: %v", err)
		return
	}
	log.Printf("Profile loaded from %s", l.source)
}
