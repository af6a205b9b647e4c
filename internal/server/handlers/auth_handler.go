package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/buildtrack/internal/service/session"
)

// flagMaxAge keeps the login flag across browser restarts.
const flagMaxAge = 365 * 24 * 60 * 60

// LoginRequest is the login form payload.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthHandler exposes login, logout and the gate middleware.
type AuthHandler struct {
	gate   *session.Gate
	logger *zap.Logger
}

// NewAuthHandler constructs the HTTP handler adapter.
func NewAuthHandler(gate *session.Gate, logger *zap.Logger) *AuthHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthHandler{gate: gate, logger: logger}
}

// Login checks the credentials and stores the logged-in flag on the client.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	flag, err := h.gate.Login(req.Username, req.Password)
	if errors.Is(err, session.ErrInvalidCredentials) {
		respond(c, http.StatusUnauthorized, failure("Login failed", "Invalid username or password"), nil)
		return
	}
	if err != nil {
		h.logger.Error("login failed", zap.Error(err))
		respond(c, http.StatusInternalServerError, failure("Login failed", "Something went wrong"), nil)
		return
	}

	h.setFlag(c, flag, flagMaxAge)
	notice := successLogin
	respond(c, http.StatusOK, &notice, gin.H{"authenticated": true})
}

// Logout clears the logged-in flag.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.setFlag(c, "", -1)
	notice := successLogout
	respond(c, http.StatusOK, &notice, gin.H{"authenticated": false})
}

// Status reports whether the caller presents the logged-in flag.
func (h *AuthHandler) Status(c *gin.Context) {
	respond(c, http.StatusOK, nil, gin.H{"authenticated": h.authenticated(c)})
}

// RequireLogin rejects requests that do not carry the logged-in flag.
func (h *AuthHandler) RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !h.authenticated(c) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, Response{Notice: failure("Login required", "Please log in to continue")})
			return
		}
		c.Next()
	}
}

func (h *AuthHandler) authenticated(c *gin.Context) bool {
	value, err := c.Cookie(h.gate.FlagName())
	if err != nil {
		return false
	}
	return h.gate.Authenticated(value)
}

func (h *AuthHandler) setFlag(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.gate.FlagName(), value, maxAge, "/", "", false, true)
}
