package services

import (
	"context"
	"fmt"

	"github.com/kamikazebr/engage-server/internal/logging"
	"github.com/kamikazebr/engage-server/pkg/models"
)

const anonymousSender = "Anonymous"

type ProductStore interface {
	GetByID(ctx context.Context, id string) (*models.Product, error)
}

type NotificationStore interface {
	Create(ctx context.Context, n *models.NotificationRecord) error
}

// LikeReactor turns a created like into a stored notification plus a push to the
// product owner. Its entry points never return errors: there is nobody to report to.
type LikeReactor struct {
	products      ProductStore
	users         UserStore
	notifications NotificationStore
	push          PushSender
}

func NewLikeReactor(products ProductStore, users UserStore, notifications NotificationStore, push PushSender) *LikeReactor {
	return &LikeReactor{
		products:      products,
		users:         users,
		notifications: notifications,
		push:          push,
	}
}

// OnLikeCreated runs to completion and absorbs every failure, panics included.
func (r *LikeReactor) OnLikeCreated(ctx context.Context, like models.LikeRelation) {
	logger := logging.Ctx(ctx).With().
		Str("product_id", like.ProductID).
		Str("liker_id", like.UserID).
		Logger()

	defer func() {
		if rec := recover(); rec != nil {
			logger.Error().Interface("panic", rec).Msg("like reactor panicked")
		}
	}()

	if err := r.handleLike(ctx, like); err != nil {
		logger.Error().Err(err).Msg("failed to process like")
	}
}

func (r *LikeReactor) handleLike(ctx context.Context, like models.LikeRelation) error {
	logger := logging.Ctx(ctx)

	if like.ProductID == "" || like.UserID == "" {
		logger.Warn().Msg("like event missing productId or userId, skipping")
		return nil
	}

	product, err := r.products.GetByID(ctx, like.ProductID)
	if err != nil {
		return fmt.Errorf("failed to get product: %w", err)
	}
	if product == nil {
		logger.Info().Str("product_id", like.ProductID).Msg("liked product not found, skipping")
		return nil
	}

	if product.CreatedBy == like.UserID {
		logger.Debug().Str("product_id", product.ID).Msg("owner liked own product, skipping")
		return nil
	}

	senderName, senderImage := anonymousSender, ""
	liker, err := r.users.GetByID(ctx, like.UserID)
	if err != nil {
		logger.Warn().Err(err).Str("liker_id", like.UserID).Msg("failed to load liker profile, using fallback")
	} else if liker != nil {
		if liker.Name != "" {
			senderName = liker.Name
		}
		senderImage = liker.ProfileImageURL
	}

	message := fmt.Sprintf("%s liked your product %s", senderName, product.Name)
	record := &models.NotificationRecord{
		RecipientUID:   product.CreatedBy,
		SenderUID:      like.UserID,
		SenderName:     senderName,
		SenderImageURL: senderImage,
		Type:           models.NotificationProductLike,
		ProductID:      product.ID,
		ProductName:    product.Name,
		Message:        message,
		Read:           false,
	}
	if err := r.notifications.Create(ctx, record); err != nil {
		return fmt.Errorf("failed to store notification: %w", err)
	}

	owner, err := r.users.GetByID(ctx, product.CreatedBy)
	if err != nil {
		return fmt.Errorf("failed to get product owner: %w", err)
	}
	if !owner.HasDeviceToken() {
		logger.Info().Str("owner_id", product.CreatedBy).Msg("owner has no device token, notification stored only")
		return nil
	}

	id, err := r.push.Send(ctx, &models.PushMessage{
		Token: owner.FCMToken,
		Title: "New like",
		Body:  message,
		Data: map[string]string{
			"type":      string(models.NotificationProductLike),
			"productId": product.ID,
			"senderUid": like.UserID,
		},
	})
	if err != nil {
		// The stored record stands; push is best-effort.
		return fmt.Errorf("failed to send push to owner %s: %w", product.CreatedBy, err)
	}

	logger.Info().Str("owner_id", product.CreatedBy).Str("message_id", id).Msg("like notification sent")
	return nil
}

// OnProductCommentCreated is intentionally a no-op: comment notifications are
// produced by another path and must not be duplicated here.
func (r *LikeReactor) OnProductCommentCreated(ctx context.Context, commentID string) {
	logging.Ctx(ctx).Debug().Str("comment_id", commentID).Msg("product comment created, no notification")
}

// OnPostCommentCreated is intentionally a no-op, see OnProductCommentCreated.
func (r *LikeReactor) OnPostCommentCreated(ctx context.Context, commentID string) {
	logging.Ctx(ctx).Debug().Str("comment_id", commentID).Msg("post comment created, no notification")
}
