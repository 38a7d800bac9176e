package services

import (
	"fmt"

	"github.com/kamikazebr/engage-server/internal/config"
	"github.com/resendlabs/resend-go"
)

const verificationSubject = "Your Verification Code"

type EmailService struct {
	client    *resend.Client
	fromEmail string
	skipSend  bool
}

func NewEmailService(cfg *config.Config) (*EmailService, error) {
	if cfg.ResendAPIKey == "" && !cfg.SkipEmailSend {
		return nil, fmt.Errorf("RESEND_API_KEY environment variable not set")
	}

	return &EmailService{
		client:    resend.NewClient(cfg.ResendAPIKey),
		fromEmail: cfg.FromEmail,
		skipSend:  cfg.SkipEmailSend,
	}, nil
}

func (s *EmailService) SendVerificationCode(email, code string) error {
	if s.skipSend {
		return nil
	}

	params := &resend.SendEmailRequest{
		From:    s.fromEmail,
		To:      []string{email},
		Subject: verificationSubject,
		Html:    verificationBody(code),
	}

	_, err := s.client.Emails.Send(params)
	return err
}

func verificationBody(code string) string {
	return fmt.Sprintf(`<p>Your code is <strong>%s</strong>. It will expire in %d minutes.</p>`, code, int(CodeTTL.Minutes()))
}
