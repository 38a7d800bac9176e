// Package triggers routes document-creation events from Firestore to the reactor.
// Events arrive either from the in-process snapshot Listener or from the HTTP push
// endpoint; both go through Dispatcher so they behave identically.
package triggers

import (
	"context"

	"github.com/kamikazebr/engage-server/internal/logging"
	"github.com/kamikazebr/engage-server/internal/metrics"
	"github.com/kamikazebr/engage-server/internal/server/storage"
	"github.com/kamikazebr/engage-server/pkg/models"
)

// Decoder fills v from the created document.
type Decoder func(v interface{}) error

type Reactor interface {
	OnLikeCreated(ctx context.Context, like models.LikeRelation)
	OnProductCommentCreated(ctx context.Context, commentID string)
	OnPostCommentCreated(ctx context.Context, commentID string)
}

// WatchedCollections lists every collection whose creations are dispatched.
var WatchedCollections = []string{
	storage.CollectionProductLikes,
	storage.CollectionProductComments,
	storage.CollectionPostComments,
}

type Dispatcher struct {
	reactor Reactor
}

func NewDispatcher(reactor Reactor) *Dispatcher {
	return &Dispatcher{reactor: reactor}
}

func (d *Dispatcher) Handles(collection string) bool {
	for _, c := range WatchedCollections {
		if c == collection {
			return true
		}
	}
	return false
}

// Dispatch hands a created document to its reaction. It never reports failure
// to the caller; undecodable documents are logged and dropped.
func (d *Dispatcher) Dispatch(ctx context.Context, collection, docID string, decode Decoder) {
	logger := logging.Ctx(ctx).With().
		Str("collection", collection).
		Str("doc_id", docID).
		Logger()

	defer func() {
		if rec := recover(); rec != nil {
			logger.Error().Interface("panic", rec).Msg("event dispatch panicked")
		}
	}()

	switch collection {
	case storage.CollectionProductLikes:
		metrics.RecordEventDispatched(collection)
		var like models.LikeRelation
		if err := decode(&like); err != nil {
			logger.Error().Err(err).Msg("failed to decode like document")
			return
		}
		d.reactor.OnLikeCreated(ctx, like)
	case storage.CollectionProductComments:
		metrics.RecordEventDispatched(collection)
		d.reactor.OnProductCommentCreated(ctx, docID)
	case storage.CollectionPostComments:
		metrics.RecordEventDispatched(collection)
		d.reactor.OnPostCommentCreated(ctx, docID)
	default:
		logger.Debug().Msg("no reaction registered for collection")
	}
}
