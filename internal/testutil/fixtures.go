package testutil

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/kamikazebr/engage-server/internal/server/storage"
	"github.com/kamikazebr/engage-server/pkg/models"
)

// CreateTestUser writes a user profile. Pass an empty token for a user without a device.
func (tdb *TestDB) CreateTestUser(ctx context.Context, name, fcmToken string) *models.UserProfile {
	tdb.t.Helper()

	user := &models.UserProfile{
		ID:              "user-" + uuid.New().String()[:8],
		Name:            name,
		ProfileImageURL: "https://img.example.com/" + name + ".png",
		FCMToken:        fcmToken,
	}
	if _, err := tdb.Client.Collection(storage.CollectionUsers).Doc(user.ID).Set(ctx, user); err != nil {
		tdb.t.Fatalf("Failed to create test user: %v", err)
	}
	return user
}

func (tdb *TestDB) CreateTestProduct(ctx context.Context, name, ownerID string) *models.Product {
	tdb.t.Helper()

	product := &models.Product{
		ID:        "product-" + uuid.New().String()[:8],
		Name:      name,
		CreatedBy: ownerID,
	}
	if _, err := tdb.Client.Collection(storage.CollectionProducts).Doc(product.ID).Set(ctx, product); err != nil {
		tdb.t.Fatalf("Failed to create test product: %v", err)
	}
	return product
}

// GenerateTestEmail generates a unique test email
func GenerateTestEmail() string {
	return fmt.Sprintf("test-%s@example.com", uuid.New().String()[:8])
}
