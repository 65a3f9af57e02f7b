package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type TokenRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// IssueToken signs a year-long session token for the given email and
// sets it as the session cookie.
func (h *Handler) IssueToken(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.auth.Issue(req.Email)
	if err != nil {
		log.Printf("IssueToken error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	h.auth.SetCookie(c, token)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Logout expires the session cookie immediately.
func (h *Handler) Logout(c *gin.Context) {
	h.auth.ClearCookie(c)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
