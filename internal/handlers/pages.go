package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/folio/internal/profile"
	"github.com/Zachkp/folio/internal/view"
)

// PageHandler renders the portfolio page
type PageHandler struct {
	store    *profile.Store
	basePath string
	now      func() time.Time
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(store *profile.Store, basePath string, now func() time.Time) *PageHandler {
	return &PageHandler{store: store, basePath: basePath, now: now}
}

// Index handles GET / with the full document.
func (h *PageHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", h.page())
}

// Content handles GET /content, polled by the loading indicator. It keeps
// answering with the indicator until the profile is available.
func (h *PageHandler) Content(c *gin.Context) {
	page := h.page()
	if !page.Loaded {
		c.HTML(http.StatusOK, "loading", page)
		return
	}
	c.HTML(http.StatusOK, "content", page)
}

func (h *PageHandler) page() view.Page {
	p, ok := h.store.Profile()
	if !ok {
		return view.Loading(h.basePath)
	}
	return view.NewPage(p, h.basePath, h.now())
}
