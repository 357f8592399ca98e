package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/folio/internal/profile"
	"github.com/Zachkp/folio/internal/thumbnail"
)

// projectResponse is a project with its resolved preview image.
type projectResponse struct {
	profile.Project
	Thumbnail string `json:"thumbnail,omitempty"`
}

type profileResponse struct {
	Name       string            `json:"name"`
	Email      string            `json:"email,omitempty"`
	Bio        string            `json:"bio,omitempty"`
	Headshot   string            `json:"headshot,omitempty"`
	GitHubLink string            `json:"githubLink,omitempty"`
	Projects   []projectResponse `json:"projects"`
}

func newProjectResponse(p profile.Project) projectResponse {
	thumb, _ := thumbnail.Resolve(p)
	return projectResponse{Project: p, Thumbnail: thumb}
}

func newProjectResponses(projects []profile.Project) []projectResponse {
	out := make([]projectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, newProjectResponse(p))
	}
	return out
}

// ProjectHandler serves the read-only JSON API
type ProjectHandler struct {
	store *profile.Store
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(store *profile.Store) *ProjectHandler {
	return &ProjectHandler{store: store}
}

// loaded fetches the profile or answers 503 while it is still loading.
func (h *ProjectHandler) loaded(c *gin.Context) (*profile.Profile, bool) {
	p, ok := h.store.Profile()
	if !ok {
		respondError(c, http.StatusServiceUnavailable, "Profile is still loading")
		return nil, false
	}
	return p, true
}

// GetProfile handles GET /api/profile
func (h *ProjectHandler) GetProfile(c *gin.Context) {
	p, ok := h.loaded(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, profileResponse{
		Name:       p.Name,
		Email:      p.Email,
		Bio:        p.Bio,
		Headshot:   p.Headshot,
		GitHubLink: p.GitHubLink,
		Projects:   newProjectResponses(p.Projects),
	})
}

// ListProjects handles GET /api/projects
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	p, ok := h.loaded(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, newProjectResponses(p.Projects))
}

// GetProject handles GET /api/projects/:id
func (h *ProjectHandler) GetProject(c *gin.Context) {
	p, ok := h.loaded(c)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid project id")
		return
	}

	project, found := p.ProjectByID(id)
	if !found {
		respondError(c, http.StatusNotFound, "Project not found")
		return
	}
	c.JSON(http.StatusOK, newProjectResponse(project))
}
