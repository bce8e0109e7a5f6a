package v1

import (
	"errors"
	"net/http"
	"time"

	"grow-therapy-backend/config"
	"grow-therapy-backend/internal/delivery/http/response"
	"grow-therapy-backend/internal/domain"
	"grow-therapy-backend/pkg/apperror"
	"grow-therapy-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
	validate  *validator.Validate
	cfg       *config.Config
}

// NewContactHandler registers the contact form routes (public, no auth
// required). The rate limiter applies only to the submission endpoint.
func NewContactHandler(api *gin.RouterGroup, rateLimiter gin.HandlerFunc, contactUC domain.ContactUsecase, validate *validator.Validate, cfg *config.Config) {
	handler := &ContactHandler{
		contactUC: contactUC,
		validate:  validate,
		cfg:       cfg,
	}

	api.POST("/contact", rateLimiter, handler.SubmitContact)
	api.GET("/health", handler.HealthCheck)

	// Debug-only: exercises the full dispatch path with sample data.
	if !cfg.IsProduction() {
		api.POST("/test-email", handler.TestEmail)
	}
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Validates the submission and sends the notification and auto-reply emails. This is a public endpoint.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.Submission  true  "Contact Form Data"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      429      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var sub domain.Submission
	if err := c.ShouldBindJSON(&sub); err != nil {
		response.ValidationFailed(c, http.StatusBadRequest, "Invalid form data", []validation.FieldError{
			{Field: "body", Message: "Request body must be valid JSON"},
		})
		return
	}

	sub.Sanitize()

	if err := h.validate.Struct(&sub); err != nil {
		response.ValidationFailed(c, http.StatusBadRequest, "Invalid form data", validation.FormatValidationErrors(err))
		return
	}

	result := h.contactUC.Dispatch(c.Request.Context(), &sub)
	if !result.Succeeded {
		_ = c.Error(apperror.New(http.StatusInternalServerError, "Failed to send emails. Please try again.", errors.New(result.Message)))
		return
	}

	response.Success(c, http.StatusOK, "Thank you for your message. We'll be in touch soon!", gin.H{
		"name":  sub.Name,
		"email": sub.Email,
	})
}

// HealthCheck godoc
// @Summary      Health Check
// @Description  Reports whether the API is up.
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /health [get]
func (h *ContactHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "Grow Your Therapy API is running",
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"environment": h.cfg.Env,
	})
}

// TestEmail triggers the dispatch pipeline with fixed sample data so the
// SMTP configuration can be checked before go-live. Not registered in
// production.
func (h *ContactHandler) TestEmail(c *gin.Context) {
	sub := &domain.Submission{
		Name:    "Test User",
		Email:   "test@example.com",
		Message: "This is a test message to verify email functionality.",
	}

	result := h.contactUC.Dispatch(c.Request.Context(), sub)
	if !result.Succeeded {
		response.Error(c, http.StatusInternalServerError, "Test email failed", gin.H{
			"notification": result.Notification,
			"auto_reply":   result.AutoReply,
		})
		return
	}

	response.Success(c, http.StatusOK, "Test email sent successfully! Check your inbox.", gin.H{
		"notification": result.Notification,
		"auto_reply":   result.AutoReply,
	})
}
