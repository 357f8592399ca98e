// Package profile holds the portfolio document: its shape, the boundary
// validation applied when it is decoded, and the loader and store that make
// it available to the rest of the site.
package profile

import (
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

// Project represents one portfolio entry
type Project struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
	Image       string `json:"image,omitempty"`
}

// Profile is the document describing the portfolio owner and their projects.
// Projects are kept in display order.
type Profile struct {
	Name       string    `json:"name" validate:"required"`
	Email      string    `json:"email"`
	Bio        string    `json:"bio"`
	Headshot   string    `json:"headshot"`
	GitHubLink string    `json:"githubLink"`
	Projects   []Project `json:"projects"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Decode parses a profile document and validates it. Malformed optional
// fields are cleared rather than rejected; project links are kept as given
// and left to the thumbnail resolver.
func Decode(data []byte) (*Profile, error) {
	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	p.dropMalformed()
	return &p, nil
}

// Validate checks the profile against its schema.
func (p *Profile) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("validate profile: %w", err)
	}
	return nil
}

// dropMalformed clears optional fields that are not well-formed so they
// render as absent.
func (p *Profile) dropMalformed() {
	p.Email = wellFormed("email", p.Email, "email")
	p.Headshot = wellFormed("headshot", p.Headshot, "url")
	p.GitHubLink = wellFormed("githubLink", p.GitHubLink, "url")
	for i := range p.Projects {
		p.Projects[i].Image = wellFormed(fmt.Sprintf("projects[%d].image", i), p.Projects[i].Image, "url")
	}
}

func wellFormed(field, value, tag string) string {
	if value == "" {
		return ""
	}
	if err := validate.Var(value, tag); err != nil {
		log.Printf("Ignoring malformed %s %q", field, value)
		return ""
	}
	return value
}

// ProjectByID returns the first project with the given id.
// Ids are not checked for uniqueness.
func (p *Profile) ProjectByID(id int) (Project, bool) {
	for _, project := range p.Projects {
		if project.ID == id {
			return project, true
		}
	}
	return Project{}, false
}
