package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/seminar-registration-api/internal/application"
	"github.com/oksasatya/seminar-registration-api/internal/domain/entity"
	"github.com/oksasatya/seminar-registration-api/pkg/helpers"
	"github.com/oksasatya/seminar-registration-api/pkg/response"
	"github.com/oksasatya/seminar-registration-api/pkg/validation"
)

type AuthHandler struct {
	Svc     *application.AdminService
	Tokens  *helpers.TokenManager
	Logger  *logrus.Logger
	Cookies *helpers.CookieManager
}

func NewAuthHandler(svc *application.AdminService, tokens *helpers.TokenManager, logger *logrus.Logger, cookieDomain string, cookieSecure bool) *AuthHandler {
	return &AuthHandler{Svc: svc, Tokens: tokens, Logger: logger, Cookies: helpers.NewCookieManager(cookieDomain, cookieSecure)}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login validates the operator credential pair and sets the session cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid username or password", validation.ToDetails(err))
		return
	}

	token, exp, err := h.Svc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, entity.ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "Invalid username or password", nil)
			return
		}
		if h.Logger != nil {
			h.Logger.WithError(err).Error("login failed")
		}
		response.Error(c, http.StatusInternalServerError, "Login error occurred", nil)
		return
	}

	h.Cookies.SetSession(c, token, exp)
	response.Success(c, http.StatusOK, gin.H{"loggedIn": true}, "Login successful")
}

// Logout destroys the server-side session and clears the cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	if sid := helpers.SessionIDFromRequest(c, h.Tokens); sid != "" {
		if err := h.Svc.Logout(c.Request.Context(), sid); err != nil {
			if h.Logger != nil {
				h.Logger.WithError(err).Error("session destroy failed")
			}
			response.Error(c, http.StatusInternalServerError, "Could not log out", nil)
			return
		}
	}
	h.Cookies.Clear(c)
	response.Success(c, http.StatusOK, gin.H{"loggedOut": true}, "Logged out successfully")
}

// Status reports the current session flag; it never fails.
func (h *AuthHandler) Status(c *gin.Context) {
	sid := helpers.SessionIDFromRequest(c, h.Tokens)
	authenticated, username := h.Svc.Status(c.Request.Context(), sid)

	var name any
	if authenticated {
		name = username
	}
	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"isAuthenticated": authenticated,
		"username":        name,
	})
}
