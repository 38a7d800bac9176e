package storage

import (
	"context"
	"fmt"
)

// DocumentRepository reads created documents back by collection and ID so that
// pushed events are acted on from stored data rather than from the request body.
type DocumentRepository struct {
	db *DB
}

func NewDocumentRepository(db *DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// Load returns a decoder over the stored document, or nil when it does not exist.
func (r *DocumentRepository) Load(ctx context.Context, collection, id string) (func(v interface{}) error, error) {
	doc, err := r.db.Collection(collection).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load %s/%s: %w", collection, id, err)
	}
	return doc.DataTo, nil
}
