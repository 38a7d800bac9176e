package services

import (
	"context"
	"fmt"

	"github.com/kamikazebr/engage-server/internal/logging"
	"github.com/kamikazebr/engage-server/pkg/models"
)

type UserStore interface {
	GetByID(ctx context.Context, id string) (*models.UserProfile, error)
}

type PushSender interface {
	Send(ctx context.Context, msg *models.PushMessage) (string, error)
}

// NotificationService forwards one push message to one user on request.
type NotificationService struct {
	users UserStore
	push  PushSender
}

func NewNotificationService(users UserStore, push PushSender) *NotificationService {
	return &NotificationService{
		users: users,
		push:  push,
	}
}

func (s *NotificationService) Notify(ctx context.Context, userID, title, body string) error {
	if userID == "" || title == "" || body == "" {
		return fmt.Errorf("userId, title and body are required: %w", ErrMissingInput)
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("%w: failed to get user: %w", ErrInternal, err)
	}
	if user == nil {
		return fmt.Errorf("user %s not found: %w", userID, ErrRecipientUnavailable)
	}
	if !user.HasDeviceToken() {
		return fmt.Errorf("user %s has no device token: %w", userID, ErrRecipientUnavailable)
	}

	id, err := s.push.Send(ctx, &models.PushMessage{
		Token: user.FCMToken,
		Title: title,
		Body:  body,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDelivery, err)
	}

	logging.Ctx(ctx).Info().Str("user_id", userID).Str("message_id", id).Msg("notification sent")
	return nil
}
