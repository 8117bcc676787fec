package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/seminar-registration-api/internal/application"
	"github.com/oksasatya/seminar-registration-api/internal/domain/entity"
	"github.com/oksasatya/seminar-registration-api/pkg/export"
	"github.com/oksasatya/seminar-registration-api/pkg/response"
	"github.com/oksasatya/seminar-registration-api/pkg/validation"
)

type RegistrationHandler struct {
	Svc    *application.RegistrationService
	Logger *logrus.Logger
}

func NewRegistrationHandler(svc *application.RegistrationService, logger *logrus.Logger) *RegistrationHandler {
	return &RegistrationHandler{Svc: svc, Logger: logger}
}

type registrationRequest struct {
	FirstName       string  `json:"firstName" binding:"required"`
	LastName        string  `json:"lastName" binding:"required"`
	Email           string  `json:"email" binding:"required,email"`
	Phone           *string `json:"phone"`
	Expectations    *string `json:"expectations"`
	NewsletterOptIn bool    `json:"newsletterOptIn"`
}

// Create handles the public signup form submission.
func (h *RegistrationHandler) Create(c *gin.Context) {
	var req registrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Please fill in all required fields correctly.", validation.ToDetails(err))
		return
	}

	reg, err := h.Svc.Register(c.Request.Context(), entity.RegistrationInput{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Phone:           req.Phone,
		Expectations:    req.Expectations,
		NewsletterOptIn: req.NewsletterOptIn,
	})
	if err != nil {
		if errors.Is(err, entity.ErrDuplicateEmail) {
			response.Error(c, http.StatusBadRequest, "This email address is already registered for the seminar.", nil)
			return
		}
		if h.Logger != nil {
			h.Logger.WithError(err).Error("registration failed")
		}
		response.Error(c, http.StatusInternalServerError, "An error occurred during registration. Please try again.", nil)
		return
	}

	response.Success(c, http.StatusCreated, reg, "Registration successful! You'll receive a confirmation email shortly.")
}

// List returns every registration; auth-gated.
func (h *RegistrationHandler) List(c *gin.Context) {
	regs, err := h.Svc.List(c.Request.Context())
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Error("fetching registrations failed")
		}
		response.Error(c, http.StatusInternalServerError, "Error fetching registrations", nil)
		return
	}
	response.Success(c, http.StatusOK, regs, "")
}

// Export streams the registration list as a CSV attachment; auth-gated.
func (h *RegistrationHandler) Export(c *gin.Context) {
	regs, err := h.Svc.List(c.Request.Context())
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Error("exporting registrations failed")
		}
		response.Error(c, http.StatusInternalServerError, "Error exporting registrations", nil)
		return
	}

	body, err := export.CSV(regs)
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Error("rendering export failed")
		}
		response.Error(c, http.StatusInternalServerError, "Error exporting registrations", nil)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+export.Filename(time.Now())+`"`)
	c.Data(http.StatusOK, "text/csv", []byte(body))
}
