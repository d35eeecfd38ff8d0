package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/JoshFink/commish/internal/api/middleware"
	"github.com/JoshFink/commish/internal/api/response"
	"github.com/JoshFink/commish/internal/auth"
)

// AuthHandler handles login and logout
type AuthHandler struct {
	sessions *auth.Manager
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(sessions *auth.Manager) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// Login checks the shared password and issues a session token
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "password is required")
		return
	}

	session, err := h.sessions.Login(req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidPassword) {
			response.Unauthorized(c, "invalid password")
			return
		}
		response.InternalError(c, err)
		return
	}

	response.Success(c, session)
}

// Logout discards the caller's session
// POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if session, exists := c.Get(middleware.SessionKey); exists {
		if s, ok := session.(auth.Session); ok {
			h.sessions.Logout(s.Token)
		}
	}
	response.NoContent(c)
}
