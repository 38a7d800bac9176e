package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kamikazebr/engage-server/internal/logging"
	"github.com/kamikazebr/engage-server/internal/metrics"
	"github.com/kamikazebr/engage-server/pkg/models"
	"github.com/kamikazebr/engage-server/pkg/utils"
)

const (
	// CodeTTL is how long an issued code stays redeemable.
	CodeTTL = 10 * time.Minute

	// MaxCodeAttempts wrong guesses spend a code.
	MaxCodeAttempts = 5
)

// CodeStore persists one code per email; Save overwrites.
type CodeStore interface {
	Save(ctx context.Context, code *models.OneTimeCode) error

	// Redeem loads the code for email (nil when none is stored) and passes it to
	// check as one atomic step. A code check reports as spent is deleted; otherwise
	// changes check made to it are written back. The error from check is returned.
	Redeem(ctx context.Context, email string, check func(code *models.OneTimeCode) (spent bool, err error)) error
}

type CodeSender interface {
	SendVerificationCode(email, code string) error
}

type TokenIssuer interface {
	Issue(email string) (string, time.Time, error)
}

type CodeService struct {
	codes  CodeStore
	sender CodeSender
	tokens TokenIssuer

	now      func() time.Time
	generate func() (string, error)
}

// NewCodeService wires the code flow. tokens may be nil for callers that only
// issue codes.
func NewCodeService(codes CodeStore, sender CodeSender, tokens TokenIssuer) *CodeService {
	return &CodeService{
		codes:    codes,
		sender:   sender,
		tokens:   tokens,
		now:      time.Now,
		generate: utils.GenerateVerificationCode,
	}
}

// RequestCode issues a fresh code for email, replacing any previous one, and mails it.
// The code is stored before the email is sent, so a delivery failure is reported
// even though the stored code remains redeemable.
func (s *CodeService) RequestCode(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		metrics.RecordCodeIssued("rejected")
		return fmt.Errorf("email is required: %w", ErrMissingInput)
	}
	if !utils.IsValidEmail(email) {
		metrics.RecordCodeIssued("rejected")
		return fmt.Errorf("invalid email format: %w", ErrMissingInput)
	}

	code, err := s.generate()
	if err != nil {
		return fmt.Errorf("failed to generate code: %w", ErrInternal)
	}

	now := s.now().UTC()
	otp := &models.OneTimeCode{
		Email:     email,
		Code:      code,
		CreatedAt: now,
		ExpiresAt: now.Add(CodeTTL),
	}

	if err := s.codes.Save(ctx, otp); err != nil {
		metrics.RecordCodeIssued("store_failed")
		return fmt.Errorf("%w: failed to save code: %w", ErrDeliveryOrPersistence, err)
	}

	if err := s.sender.SendVerificationCode(email, code); err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("email", email).Msg("code stored but email delivery failed")
		metrics.RecordCodeIssued("send_failed")
		return fmt.Errorf("%w: failed to send email: %w", ErrDeliveryOrPersistence, err)
	}

	metrics.RecordCodeIssued("sent")
	logging.Ctx(ctx).Info().Str("email", email).Time("expires_at", otp.ExpiresAt).Msg("verification code issued")
	return nil
}

// VerifyCode redeems a code and returns a session token with its expiry.
// A code is spent by a successful match, by expiry, or after MaxCodeAttempts
// wrong guesses; concurrent redemptions of one code cannot both succeed.
func (s *CodeService) VerifyCode(ctx context.Context, email, code string) (string, time.Time, error) {
	email = strings.TrimSpace(email)
	if email == "" || code == "" {
		return "", time.Time{}, fmt.Errorf("email and code are required: %w", ErrMissingInput)
	}
	if s.tokens == nil {
		return "", time.Time{}, fmt.Errorf("token issuer not configured: %w", ErrInternal)
	}

	now := s.now().UTC()
	err := s.codes.Redeem(ctx, email, func(stored *models.OneTimeCode) (bool, error) {
		switch {
		case stored == nil:
			return false, fmt.Errorf("no code issued: %w", ErrInvalidCode)
		case stored.IsExpired(now):
			return true, fmt.Errorf("code has expired: %w", ErrInvalidCode)
		case stored.Attempts >= MaxCodeAttempts:
			return true, fmt.Errorf("too many failed attempts: %w", ErrInvalidCode)
		case subtle.ConstantTimeCompare([]byte(stored.Code), []byte(code)) != 1:
			stored.Attempts++
			if stored.Attempts >= MaxCodeAttempts {
				return true, fmt.Errorf("code mismatch, attempts exhausted: %w", ErrInvalidCode)
			}
			return false, fmt.Errorf("code mismatch: %w", ErrInvalidCode)
		}
		return true, nil
	})
	if err != nil {
		if errors.Is(err, ErrInvalidCode) {
			return "", time.Time{}, err
		}
		return "", time.Time{}, fmt.Errorf("%w: failed to redeem code: %w", ErrInternal, err)
	}

	token, expiresAt, err := s.tokens.Issue(email)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%w: failed to sign token: %w", ErrInternal, err)
	}

	logging.Ctx(ctx).Info().Str("email", email).Msg("verification code redeemed")
	return token, expiresAt, nil
}
