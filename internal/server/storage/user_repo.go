package storage

import (
	"context"

	"github.com/kamikazebr/engage-server/pkg/models"
)

type UserRepository struct {
	db *DB
}

func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetByID returns nil, nil when the user document does not exist.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.UserProfile, error) {
	doc, err := r.db.Collection(CollectionUsers).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	var user models.UserProfile
	if err := doc.DataTo(&user); err != nil {
		return nil, err
	}
	user.ID = doc.Ref.ID
	return &user, nil
}
