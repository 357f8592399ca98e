// Package view turns a loaded profile into the page model and renders it with
// the embedded HTML templates.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"log"
	"strings"
	"time"

	"github.com/Zachkp/folio/internal/background"
	"github.com/Zachkp/folio/internal/profile"
	"github.com/Zachkp/folio/internal/thumbnail"
)

//go:embed templates/*.html
var templateFS embed.FS

// Header holds the profile fields shown above the project grid.
type Header struct {
	Name       string
	Email      string
	Bio        string
	Headshot   string
	GitHubLink string
}

// Card is one project tile. Thumbnail is empty when no preview is available.
type Card struct {
	ID          int
	Title       string
	Description string
	Link        string
	Thumbnail   string
}

// Page is the data handed to the templates.
type Page struct {
	Loaded   bool
	BasePath string
	Header   Header
	Cards    []Card
	Year     int
	Fog      string
}

// Loading returns the page shown until the profile arrives.
func Loading(basePath string) Page {
	return Page{BasePath: NormalizeBasePath(basePath)}
}

// NewPage builds the page for p. Cards follow the profile's project order.
func NewPage(p *profile.Profile, basePath string, now time.Time) Page {
	cards := make([]Card, 0, len(p.Projects))
	for _, project := range p.Projects {
		cards = append(cards, NewCard(project))
	}

	fog, err := background.Fog().JSON()
	if err != nil {
		log.Printf("Error encoding background options: %v", err)
	}

	return Page{
		Loaded:   true,
		BasePath: NormalizeBasePath(basePath),
		Header: Header{
			Name:       p.Name,
			Email:      p.Email,
			Bio:        p.Bio,
			Headshot:   p.Headshot,
			GitHubLink: p.GitHubLink,
		},
		Cards: cards,
		Year:  now.Year(),
		Fog:   fog,
	}
}

// NewCard resolves the thumbnail for a single project.
func NewCard(p profile.Project) Card {
	thumb, _ := thumbnail.Resolve(p)
	return Card{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Link:        p.Link,
		Thumbnail:   thumb,
	}
}

// NormalizeBasePath returns base with a leading and trailing slash.
func NormalizeBasePath(base string) string {
	base = strings.Trim(strings.TrimSpace(base), "/")
	if base == "" {
		return "/"
	}
	return "/" + base + "/"
}

// Templates parses the embedded page templates.
func Templates() (*template.Template, error) {
	tmpl, err := template.New("").ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return tmpl, nil
}
