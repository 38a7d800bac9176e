package testutil

import (
	"context"
	"os"
	"testing"

	"cloud.google.com/go/firestore"
	"github.com/kamikazebr/engage-server/internal/server/storage"
)

const testProjectID = "engage-test"

// TestDB wraps a Firestore client connected to the emulator.
type TestDB struct {
	Client *firestore.Client
	t      *testing.T
}

// GetTestDB connects to the Firestore emulator named by FIRESTORE_EMULATOR_HOST.
// The test is skipped when the emulator is not configured.
func GetTestDB(t *testing.T) *TestDB {
	t.Helper()

	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("Skipping test: FIRESTORE_EMULATOR_HOST not set")
		return nil
	}

	client, err := firestore.NewClient(context.Background(), testProjectID)
	if err != nil {
		t.Skipf("Skipping test: firestore emulator not available: %v", err)
		return nil
	}

	return &TestDB{Client: client, t: t}
}

func (tdb *TestDB) Close() {
	if tdb.Client != nil {
		tdb.Client.Close()
	}
}

// StorageDB returns a storage.DB wrapper for use with repositories
func (tdb *TestDB) StorageDB() *storage.DB {
	return storage.NewDB(tdb.Client)
}

// Repositories creates all standard repositories for testing
func (tdb *TestDB) Repositories() *TestRepositories {
	db := tdb.StorageDB()
	return &TestRepositories{
		Codes:         storage.NewCodeRepository(db),
		Users:         storage.NewUserRepository(db),
		Products:      storage.NewProductRepository(db),
		Notifications: storage.NewNotificationRepository(db),
		Documents:     storage.NewDocumentRepository(db),
	}
}

type TestRepositories struct {
	Codes         *storage.CodeRepository
	Users         *storage.UserRepository
	Products      *storage.ProductRepository
	Notifications *storage.NotificationRepository
	Documents     *storage.DocumentRepository
}

// DeleteDoc removes a document, ignoring errors.
func (tdb *TestDB) DeleteDoc(ctx context.Context, collection, id string) {
	tdb.t.Helper()
	_, _ = tdb.Client.Collection(collection).Doc(id).Delete(ctx)
}
