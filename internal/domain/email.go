package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// WelcomeEmailData holds data for the account welcome email.
type WelcomeEmailData struct {
	Email string
	Name  string
}

// ContactMessageData holds a contact-form message relayed to the organizers.
type ContactMessageData struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// SubmissionReceiptData holds data for the paper submission receipt email.
type SubmissionReceiptData struct {
	Email    string
	Name     string
	Title    string
	Topic    string
	FileName string
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendWelcome(ctx context.Context, data *WelcomeEmailData) error
	SendContactMessage(ctx context.Context, data *ContactMessageData) error
	SendSubmissionReceipt(ctx context.Context, data *SubmissionReceiptData) error
}
