package storage

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/kamikazebr/engage-server/pkg/models"
)

type CodeRepository struct {
	db *DB
}

func NewCodeRepository(db *DB) *CodeRepository {
	return &CodeRepository{db: db}
}

// Save replaces whatever code document exists for code.Email.
func (r *CodeRepository) Save(ctx context.Context, code *models.OneTimeCode) error {
	_, err := r.db.Collection(CollectionOTPCodes).Doc(code.Email).Set(ctx, code)
	return err
}

func (r *CodeRepository) Get(ctx context.Context, email string) (*models.OneTimeCode, error) {
	doc, err := r.db.Collection(CollectionOTPCodes).Doc(email).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	var code models.OneTimeCode
	if err := doc.DataTo(&code); err != nil {
		return nil, err
	}
	code.Email = doc.Ref.ID
	return &code, nil
}

// Redeem reads and then deletes or rewrites the code inside one transaction, so a
// concurrent redemption of the same document is retried and sees the outcome.
// check may run more than once; only its last result counts.
func (r *CodeRepository) Redeem(ctx context.Context, email string, check func(*models.OneTimeCode) (bool, error)) error {
	ref := r.db.Collection(CollectionOTPCodes).Doc(email)

	var checkErr error
	err := r.db.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		checkErr = nil

		var code *models.OneTimeCode
		snap, err := tx.Get(ref)
		switch {
		case isNotFound(err):
		case err != nil:
			return err
		default:
			code = &models.OneTimeCode{}
			if err := snap.DataTo(code); err != nil {
				return err
			}
			code.Email = email
		}

		spent, err := check(code)
		// Returning check's error would roll back the attempt counter.
		checkErr = err

		switch {
		case code == nil:
			return nil
		case spent:
			return tx.Delete(ref)
		default:
			return tx.Set(ref, code)
		}
	})
	if err != nil {
		return err
	}
	return checkErr
}
