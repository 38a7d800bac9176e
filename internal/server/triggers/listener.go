package triggers

import (
	"context"
	"fmt"
	"sync"

	"cloud.google.com/go/firestore"
	"github.com/kamikazebr/engage-server/internal/logging"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Listener watches collections with Firestore snapshot queries and dispatches
// every document added after the initial snapshot.
type Listener struct {
	client      *firestore.Client
	dispatcher  *Dispatcher
	collections []string

	ready     chan struct{}
	readyOnce sync.Once
}

func NewListener(client *firestore.Client, dispatcher *Dispatcher, collections []string) *Listener {
	return &Listener{
		client:      client,
		dispatcher:  dispatcher,
		collections: collections,
		ready:       make(chan struct{}),
	}
}

// Ready is closed once every collection has delivered its initial snapshot.
func (l *Listener) Ready() <-chan struct{} {
	return l.ready
}

// Run blocks until ctx is cancelled or a watch fails. Documents already present
// when a watch starts are not dispatched.
func (l *Listener) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		initial  sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)

	initial.Add(len(l.collections))
	go func() {
		initial.Wait()
		l.readyOnce.Do(func() { close(l.ready) })
	}()

	for _, collection := range l.collections {
		wg.Add(1)
		go func(collection string) {
			defer wg.Done()
			if err := l.watch(ctx, collection, initial.Done); err != nil {
				errOnce.Do(func() {
					firstErr = err
					cancel()
				})
			}
		}(collection)
	}

	wg.Wait()
	return firstErr
}

func (l *Listener) watch(ctx context.Context, collection string, onInitial func()) error {
	logger := logging.WithComponent("listener").With().Str("collection", collection).Logger()

	iter := l.client.Collection(collection).Snapshots(ctx)
	defer iter.Stop()

	initialSeen := false
	markInitial := func() {
		if !initialSeen {
			initialSeen = true
			onInitial()
		}
	}
	// Unblock Ready even if the watch never got its first snapshot.
	defer markInitial()

	for {
		snap, err := iter.Next()
		if err != nil {
			if ctx.Err() != nil || status.Code(err) == codes.Canceled {
				return nil
			}
			return fmt.Errorf("snapshot listener on %s failed: %w", collection, err)
		}

		if !initialSeen {
			markInitial()
			logger.Info().Int("existing", snap.Size).Msg("listener attached")
			continue
		}

		for _, change := range snap.Changes {
			if change.Kind != firestore.DocumentAdded {
				continue
			}
			doc := change.Doc
			eventCtx := logging.ContextWithNewRequestID(ctx)
			go l.dispatcher.Dispatch(eventCtx, collection, doc.Ref.ID, doc.DataTo)
		}
	}
}
