package handlers

import (
	"net/http"
	"time"

	"stellartours/config"
	userService "stellartours/services/user"
	"stellartours/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AuthHandler serves registration, login, logout and session introspection.
type AuthHandler struct {
	UserService userService.UserService
	Sessions    utils.SessionStore
}

func NewAuthHandler(svc userService.UserService, sessions utils.SessionStore) *AuthHandler {
	return &AuthHandler{UserService: svc, Sessions: sessions}
}

// RegisterHandler handles POST /api/auth/register.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req userService.RegistrationInput
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid registration request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid registration data", "errors": err.Error()})
		return
	}

	registered, err := h.UserService.RegisterUser(req)
	if err != nil {
		if err == userService.ErrUsernameTaken {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Username already exists"})
			return
		}
		logger.Error("User registration failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to register user"})
		return
	}

	if err := h.establishSession(c, registered.ID, registered.Username); err != nil {
		logger.Error("Failed to establish session after registration", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to register user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": registered, "isAuthenticated": true})
}

// LoginHandler handles POST /api/auth/login.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid login request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid login data", "errors": err.Error()})
		return
	}

	u, err := h.UserService.AuthenticateUser(req.Username, req.Password)
	if err != nil {
		if err == userService.ErrInvalidCredentials {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid username or password", "isAuthenticated": false})
			return
		}
		logger.Error("Login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to log in", "isAuthenticated": false})
		return
	}

	if err := h.establishSession(c, u.ID, u.Username); err != nil {
		logger.Error("Failed to establish session after login", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to log in", "isAuthenticated": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": u, "isAuthenticated": true})
}

// LogoutHandler handles POST /api/auth/logout.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	if sessionID, err := c.Cookie(utils.SessionCookieName); err == nil && sessionID != "" {
		if err := h.Sessions.Delete(c.Request.Context(), sessionID); err != nil {
			utils.GetLogger().Error("Failed to destroy session", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to log out", "isAuthenticated": true})
			return
		}
	}

	c.SetCookie(utils.SessionCookieName, "", -1, "/", "", config.IsProduction(), true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully", "isAuthenticated": false})
}

// MeHandler handles GET /api/auth/me.
func (h *AuthHandler) MeHandler(c *gin.Context) {
	sessionID, err := c.Cookie(utils.SessionCookieName)
	if err != nil || sessionID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"isAuthenticated": false, "message": "Not authenticated"})
		return
	}

	session, err := h.Sessions.Get(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"isAuthenticated": false, "message": "Not authenticated"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"isAuthenticated": true,
		"userId":          session.UserID,
		"username":        session.Username,
	})
}

// establishSession creates a fresh server-side session and sets the cookie.
func (h *AuthHandler) establishSession(c *gin.Context, userID uint, username string) error {
	sessionID := uuid.New().String()
	session := utils.Session{
		UserID:    userID,
		Username:  username,
		CreatedAt: time.Now(),
	}
	if err := h.Sessions.Save(c.Request.Context(), sessionID, session); err != nil {
		return err
	}

	maxAge := config.AppConfig.SessionTTLHours * int(time.Hour/time.Second)
	c.SetCookie(utils.SessionCookieName, sessionID, maxAge, "/", "", config.IsProduction(), true)
	return nil
}
