package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type FrontHandler struct{}

// NewFrontHandler registers the landing page on the engine root.
func NewFrontHandler(r *gin.Engine) {
	handler := &FrontHandler{}
	r.GET("/", handler.Index)
}

// Index renders the static landing page. No parameters, no side effects.
func (h *FrontHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"title": "jobplus",
	})
}
