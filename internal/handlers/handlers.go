package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/folio/internal/config"
	"github.com/Zachkp/folio/internal/profile"
	"github.com/Zachkp/folio/internal/view"
)

// SetupRoutes configures all routes and returns the router
func SetupRoutes(cfg *config.Config, store *profile.Store) (*gin.Engine, error) {
	tmpl, err := view.Templates()
	if err != nil {
		return nil, err
	}
	salt, err := newSalt()
	if err != nil {
		return nil, fmt.Errorf("generate access log salt: %w", err)
	}

	basePath := view.NormalizeBasePath(cfg.BasePath)

	// gin.Default's logger would write raw client IPs.
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(accessLog(salt, basePath))
	r.SetHTMLTemplate(tmpl)

	pages := NewPageHandler(store, basePath, time.Now)
	projects := NewProjectHandler(store)

	g := r.Group(strings.TrimSuffix(basePath, "/"))

	g.Static("/assets", cfg.AssetsDir)
	g.Static("/static", cfg.StaticDir)

	// Page and HTMX fragment
	g.GET("/", pages.Index)
	g.GET("/content", pages.Content)

	api := g.Group("/api")
	api.GET("/profile", projects.GetProfile)
	api.GET("/projects", projects.ListProjects)
	api.GET("/projects/:id", projects.GetProject)
	api.GET("/health", func(c *gin.Context) {
		state := "loading"
		if store.Loaded() {
			state = "loaded"
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "profile": state})
	})

	return r, nil
}

// respondError writes an error JSON response
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}
