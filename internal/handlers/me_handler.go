package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/washpoint/carwash-api/internal/middleware"
)

type MeHandler struct{}

func NewMeHandler() *MeHandler {
	return &MeHandler{}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	p := middleware.CurrentPrincipal(c)
	if p == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not_authenticated"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":        p.ID,
		"full_name": p.FullName,
		"email":     p.Email,
		"user_type": string(p.Role),
	})
}
