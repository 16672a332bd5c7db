package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/resend/resend-go/v2"

	"github.com/kalyondo/guardianre-website/internal/model"
)

type EmailService struct {
	client       *resend.Client
	fromEmail    string
	contactEmail string
	audienceID   string
	appName      string
	isDev        bool
}

func NewEmailService(apiKey, fromEmail, contactEmail, audienceID, appName string, isDev bool) *EmailService {
	var client *resend.Client
	if apiKey != "" && !isDev {
		client = resend.NewClient(apiKey)
	}

	return &EmailService{
		client:       client,
		fromEmail:    fromEmail,
		contactEmail: contactEmail,
		audienceID:   audienceID,
		appName:      appName,
		isDev:        isDev,
	}
}

// SendContactNotification forwards a contact form submission to the
// configured inbox.
func (s *EmailService) SendContactNotification(sub *model.Submission) error {
	subject, body := contactNotificationTemplate(sub, s.appName)

	if s.isDev {
		slog.Info("email sent (dev mode)", "type", "contact_notification", "to", s.contactEmail, "subject", subject, "from", sub.Email)
		return nil
	}

	if s.client == nil {
		return fmt.Errorf("email service not configured (missing RESEND_API_KEY)")
	}

	params := &resend.SendEmailRequest{
		From:    s.fromEmail,
		To:      []string{s.contactEmail},
		ReplyTo: sub.Email,
		Subject: subject,
		Text:    body,
	}

	_, err := s.client.Emails.SendWithContext(context.Background(), params)
	if err == nil {
		slog.Info("email sent", "type", "contact_notification", "to", s.contactEmail)
	}
	return err
}

func (s *EmailService) SubscribeNewsletter(email string) error {
	if s.isDev {
		slog.Info("newsletter subscription (dev mode)", "email", email)
		return nil
	}

	if s.client == nil {
		return fmt.Errorf("email service not configured (missing RESEND_API_KEY)")
	}

	if s.audienceID == "" {
		// If no audience ID is configured, just log and return
		slog.Warn("newsletter subscription requested but no audience configured", "email", email)
		return nil
	}

	params := &resend.CreateContactRequest{
		Email:      email,
		AudienceId: s.audienceID,
	}

	_, err := s.client.Contacts.Create(params)
	if err != nil {
		slog.Warn("newsletter subscription failed", "error", err, "email", email)
		// Ignore errors to prevent email enumeration
		// This includes duplicates, invalid emails, or API issues
		return nil
	}

	slog.Info("newsletter subscription successful", "email", email)
	return nil
}
