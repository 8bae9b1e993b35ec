package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"icisdportal/internal/delivery/http/helpers"
	"icisdportal/internal/domain"
)

// ContactRequest is the request body for POST /contact
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Validate implements Validator.
func (c ContactRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, "name is required")
	}
	email := strings.TrimSpace(strings.ToLower(c.Email))
	if email == "" {
		errs = append(errs, "email is required")
	} else if !emailRegexp.MatchString(email) {
		errs = append(errs, "invalid email format")
	}
	if strings.TrimSpace(c.Subject) == "" {
		errs = append(errs, "subject is required")
	}
	if strings.TrimSpace(c.Message) == "" {
		errs = append(errs, "message is required")
	}
	return errs
}

// ContactController handles the contact form endpoint.
type ContactController struct {
	Logger  *slog.Logger
	Service domain.EmailService
}

// NewContactController creates a ContactController with the given logger and email service.
func NewContactController(logger *slog.Logger, svc domain.EmailService) *ContactController {
	return &ContactController{
		Logger:  logger,
		Service: svc,
	}
}

// Send godoc
// @Summary Send a contact form message
// @Description Forwards a contact form message to the conference secretariat mailbox.
// @Tags contact
// @Accept json
// @Produce json
// @Param body body ContactRequest true "Message"
// @Success 202 {object} helpers.APIResponse "data is null; the message was accepted for delivery"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /contact [post]
func (c *ContactController) Send(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	err := c.Service.SendContactMessage(r.Context(), &domain.ContactMessageData{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(strings.ToLower(req.Email)),
		Subject: strings.TrimSpace(req.Subject),
		Message: strings.TrimSpace(req.Message),
	})
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "message could not be delivered")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusAccepted, nil)
}
