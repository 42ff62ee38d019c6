// internal/interfaces/http/handlers/session.go
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// SessionIssuer starts page sessions
type SessionIssuer interface {
	Issue() (sessionID, token string, expiresAt time.Time, err error)
}

// SessionHandler hands out page-session tokens
type SessionHandler struct {
	issuer SessionIssuer
	header string
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(issuer SessionIssuer, header string) *SessionHandler {
	return &SessionHandler{
		issuer: issuer,
		header: header,
	}
}

// CreateSession handles POST /session
func (h *SessionHandler) CreateSession(c *gin.Context) {
	id, token, expiresAt, err := h.issuer.Issue()
	if err != nil {
		respondError(c, err, "Failed to start session")
		return
	}

	c.Header(h.header, token)
	c.JSON(http.StatusCreated, gin.H{
		"message": "Session started",
		"data": gin.H{
			"session_id": id,
			"token":      token,
			"header":     h.header,
			"expires_at": expiresAt,
		},
	})
}
