package storage

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/kamikazebr/engage-server/pkg/models"
	"google.golang.org/api/iterator"
)

type NotificationRepository struct {
	db *DB
}

func NewNotificationRepository(db *DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Create appends a record. A missing ID is replaced by a fresh UUID; an existing
// document with the same ID makes the call fail rather than overwrite it.
func (r *NotificationRepository) Create(ctx context.Context, n *models.NotificationRecord) error {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	_, err := r.db.Collection(CollectionNotifications).Doc(n.ID).Create(ctx, n)
	return err
}

// ListForRecipient returns the newest records addressed to uid.
func (r *NotificationRepository) ListForRecipient(ctx context.Context, uid string, limit int) ([]models.NotificationRecord, error) {
	iter := r.db.Collection(CollectionNotifications).
		Where("recipientUid", "==", uid).
		OrderBy("timestamp", firestore.Desc).
		Limit(limit).
		Documents(ctx)
	defer iter.Stop()

	var records []models.NotificationRecord
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate notifications: %w", err)
		}

		var n models.NotificationRecord
		if err := doc.DataTo(&n); err != nil {
			return nil, fmt.Errorf("failed to parse notification document: %w", err)
		}
		n.ID = doc.Ref.ID
		records = append(records, n)
	}
	return records, nil
}
