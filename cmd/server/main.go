package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kamikazebr/engage-server/internal/logging"
	"github.com/kamikazebr/engage-server/internal/server/api"
	"github.com/kamikazebr/engage-server/internal/server/services"
	"github.com/kamikazebr/engage-server/internal/server/triggers"
	"github.com/kamikazebr/engage-server/pkg/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "engage-server",
	Short: "Engage backend - verification codes and push notifications",
	Long:  "Server for the Engage app: email verification codes, direct push notifications and like-event reactions on Firestore",
	// Default to serve command if no subcommand provided
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd, args)
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  "Start the HTTP API and, when ENABLE_LISTENER is set, the Firestore event listener",
	RunE:  runServe,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.GetVersion("engage-server"))
	},
}

func init() {
	rootCmd.AddCommand(serveCmd, adminCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	logging.Info().Str("version", version.GetVersion("engage-server")).Msg("starting")

	emailService, err := services.NewEmailService(a.cfg)
	if err != nil {
		return err
	}

	tokenService, err := services.NewTokenService(a.cfg)
	if err != nil {
		return err
	}

	codeService := services.NewCodeService(a.repos.codes, emailService, tokenService)
	notificationService := services.NewNotificationService(a.repos.users, a.push)
	reactor := services.NewLikeReactor(a.repos.products, a.repos.users, a.repos.notifications, a.push)
	dispatcher := triggers.NewDispatcher(reactor)

	router := api.NewRouter(&api.Handlers{
		Codes:         api.NewCodeHandler(codeService),
		Notifications: api.NewNotificationHandler(notificationService),
		Events:        api.NewEventHandler(dispatcher, a.repos.documents),
	}, a.cfg)

	srv := &http.Server{
		Addr:         a.cfg.Addr(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 2)

	if a.cfg.EnableListener {
		listener := triggers.NewListener(a.db.Client, dispatcher, triggers.WatchedCollections)
		go func() {
			if err := listener.Run(ctx); err != nil {
				errCh <- fmt.Errorf("event listener: %w", err)
			}
		}()
		logging.Info().Strs("collections", triggers.WatchedCollections).Msg("event listener started")
	} else {
		logging.Info().Msg("event listener disabled, expecting events on /events")
		if a.cfg.EventsSecret == "" {
			logging.Warn().Msg("EVENTS_SECRET not set, every /events push will be rejected")
		}
	}

	go func() {
		logging.Info().Str("addr", srv.Addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
		logging.Info().Msg("server shutting down")
	case runErr = <-errCh:
		logging.Error().Err(runErr).Msg("server stopped unexpectedly")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	logging.Info().Msg("server stopped")
	return runErr
}
