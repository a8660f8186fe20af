package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// registerHomeRoutes registers the root route.
func registerHomeRoutes(r *gin.Engine) {
	r.GET("/", home)
}

// home godoc
// @Summary Service info
// @Description Returns the service name and pointers to the API surface.
// @Tags home
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "paperfx",
		"api":     "/api/v1",
		"health":  "/health",
		"docs":    "/swagger/index.html",
	})
}
