package services

import (
	"context"
	"fmt"
	"log/slog"

	"icisdportal/internal/domain"
)

type emailService struct {
	mailer           domain.Mailer
	renderer         domain.EmailTemplateRenderer
	contactRecipient string
	logger           *slog.Logger
}

// NewEmailService returns an EmailService that uses the given Mailer and
// template renderer. contactRecipient is the organizers' inbox for
// contact-form relays.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, contactRecipient string, logger *slog.Logger) domain.EmailService {
	return &emailService{
		mailer:           mailer,
		renderer:         renderer,
		contactRecipient: contactRecipient,
		logger:           logger,
	}
}

// SendWelcome sends the account welcome email using the "welcome" template.
func (s *emailService) SendWelcome(ctx context.Context, data *domain.WelcomeEmailData) error {
	if data == nil {
		return fmt.Errorf("welcome email data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("welcome", data)
	if err != nil {
		return fmt.Errorf("failed to render welcome template: %w", err)
	}
	if err := s.mailer.Send(data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send welcome email: %w", err)
	}
	s.logger.Info("welcome email sent", "to", data.Email)
	return nil
}

// SendContactMessage relays a contact-form message to the organizers using
// the "contact_message" template.
func (s *emailService) SendContactMessage(ctx context.Context, data *domain.ContactMessageData) error {
	if data == nil {
		return fmt.Errorf("contact message data is nil")
	}
	if s.contactRecipient == "" {
		return fmt.Errorf("no contact recipient configured")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("contact_message", data)
	if err != nil {
		return fmt.Errorf("failed to render contact_message template: %w", err)
	}
	if err := s.mailer.Send(s.contactRecipient, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to relay contact message: %w", err)
	}
	s.logger.Info("contact message relayed", "from", data.Email)
	return nil
}

// SendSubmissionReceipt confirms a paper submission using the
// "submission_receipt" template.
func (s *emailService) SendSubmissionReceipt(ctx context.Context, data *domain.SubmissionReceiptData) error {
	if data == nil {
		return fmt.Errorf("submission receipt data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("submission_receipt", data)
	if err != nil {
		return fmt.Errorf("failed to render submission_receipt template: %w", err)
	}
	if err := s.mailer.Send(data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send submission receipt: %w", err)
	}
	s.logger.Info("submission receipt sent", "to", data.Email, "title", data.Title)
	return nil
}
