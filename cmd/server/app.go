package main

import (
	"context"

	"github.com/joho/godotenv"
	"github.com/kamikazebr/engage-server/internal/config"
	"github.com/kamikazebr/engage-server/internal/logging"
	"github.com/kamikazebr/engage-server/internal/server/services"
	"github.com/kamikazebr/engage-server/internal/server/storage"
)

type repositories struct {
	codes         *storage.CodeRepository
	users         *storage.UserRepository
	products      *storage.ProductRepository
	notifications *storage.NotificationRepository
	documents     *storage.DocumentRepository
}

// app holds the shared Firebase handles used by serve and the admin commands.
type app struct {
	cfg   *config.Config
	db    *storage.DB
	push  *services.PushService
	repos repositories
}

func newApp(ctx context.Context) (*app, error) {
	if err := godotenv.Load(); err != nil {
		logging.Debug().Msg(".env file not found, using environment variables")
	}

	cfg := config.Load()
	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	fb, err := services.NewFirebaseService(ctx, cfg)
	if err != nil {
		return nil, err
	}

	fs, err := fb.Firestore(ctx)
	if err != nil {
		return nil, err
	}

	mc, err := fb.Messaging(ctx)
	if err != nil {
		_ = fs.Close()
		return nil, err
	}

	db := storage.NewDB(fs)
	return &app{
		cfg:  cfg,
		db:   db,
		push: services.NewPushService(mc),
		repos: repositories{
			codes:         storage.NewCodeRepository(db),
			users:         storage.NewUserRepository(db),
			products:      storage.NewProductRepository(db),
			notifications: storage.NewNotificationRepository(db),
			documents:     storage.NewDocumentRepository(db),
		},
	}, nil
}

func (a *app) Close() {
	if err := a.db.Close(); err != nil {
		logging.Warn().Err(err).Msg("failed to close Firestore client")
	}
}
