package email

import (
	"context"
	"fmt"
	"log"

	"transfer-backend/internal/models"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Provider is an interface for sending transactional email
type Provider interface {
	Send(to, toName, subject, body string, transferID int) error
	SetLogRepository(repo EmailLogRepo)
}

// EmailLogRepo interface for recording send attempts
type EmailLogRepo interface {
	Create(ctx context.Context, log *models.EmailLog) error
}

// SendGridProvider implements Provider over the SendGrid API
type SendGridProvider struct {
	APIKey    string
	FromEmail string
	FromName  string
	LogRepo   EmailLogRepo
}

// NewSendGridProvider creates a new SendGrid-backed provider
func NewSendGridProvider(apiKey, fromEmail, fromName string) *SendGridProvider {
	return &SendGridProvider{
		APIKey:    apiKey,
		FromEmail: fromEmail,
		FromName:  fromName,
	}
}

// SetLogRepository sets the email log repository
func (s *SendGridProvider) SetLogRepository(repo EmailLogRepo) {
	s.LogRepo = repo
}

// Send delivers a plain-text email through SendGrid. Every attempt,
// success or failure, is recorded when a log repository is wired.
func (s *SendGridProvider) Send(to, toName, subject, body string, transferID int) error {
	from := mail.NewEmail(s.FromName, s.FromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, body, "")

	emailLog := &models.EmailLog{
		TransferID: transferID,
		Recipient:  to,
		Subject:    subject,
		Status:     models.EmailStatusSent,
	}

	client := sendgrid.NewSendClient(s.APIKey)
	response, err := client.Send(message)
	if err == nil && response.StatusCode >= 400 {
		err = fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	if err != nil {
		emailLog.Status = models.EmailStatusFailed
		emailLog.ErrorMessage = err.Error()
		s.logAttempt(emailLog)
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logAttempt(emailLog)
	return nil
}

func (s *SendGridProvider) logAttempt(emailLog *models.EmailLog) {
	if s.LogRepo == nil {
		return
	}
	if err := s.LogRepo.Create(context.Background(), emailLog); err != nil {
		log.Printf("[Email] Failed to record email log: %v", err)
	}
}

// MockProvider implements Provider by printing to the log. Used when
// no SendGrid API key is configured.
type MockProvider struct {
	LogRepo EmailLogRepo
}

// NewMockProvider creates a log-only provider
func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

// SetLogRepository sets the email log repository
func (m *MockProvider) SetLogRepository(repo EmailLogRepo) {
	m.LogRepo = repo
}

// Send prints the email to the log instead of delivering it
func (m *MockProvider) Send(to, toName, subject, body string, transferID int) error {
	log.Printf("[Email] MOCK to=%s subject=%q\n%s", to, subject, body)
	if m.LogRepo != nil {
		emailLog := &models.EmailLog{
			TransferID: transferID,
			Recipient:  to,
			Subject:    subject,
			Status:     models.EmailStatusSent,
		}
		if err := m.LogRepo.Create(context.Background(), emailLog); err != nil {
			log.Printf("[Email] Failed to record email log: %v", err)
		}
	}
	return nil
}
