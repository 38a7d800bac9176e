package services

import (
	"context"

	"firebase.google.com/go/v4/messaging"
	"github.com/kamikazebr/engage-server/internal/metrics"
	"github.com/kamikazebr/engage-server/pkg/models"
)

// PushService delivers single-token messages through Firebase Cloud Messaging.
// Each call is one attempt; callers decide what a failure means.
type PushService struct {
	client *messaging.Client
}

func NewPushService(client *messaging.Client) *PushService {
	return &PushService{client: client}
}

// Send returns the FCM message ID on success.
func (s *PushService) Send(ctx context.Context, msg *models.PushMessage) (string, error) {
	id, err := s.client.Send(ctx, toFCMMessage(msg))
	metrics.RecordPushSend(msg.Data["type"], err)
	return id, err
}

func toFCMMessage(msg *models.PushMessage) *messaging.Message {
	m := &messaging.Message{
		Token: msg.Token,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
	}
	if len(msg.Data) > 0 {
		m.Data = msg.Data
	}
	return m
}
