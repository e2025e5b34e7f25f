package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"go-quiz/internal/config"
	"go-quiz/internal/deck"
	"go-quiz/internal/httpapi"
	"go-quiz/internal/logging"
	"go-quiz/internal/offline"
)

func main() {
	loaded, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	cfg := serverConfig(loaded)
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	logger, err := logging.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := serve(ctx, cfg, logger); err != nil {
		logger.Error("server stopped", zap.Error(err))
		log.Fatal(err)
	}
}

// serverConfig drops the client-only backend URL. The server always plays
// its own decks, so they are validated like an offline client.
func serverConfig(cfg config.Config) config.Config {
	cfg.APIURL = ""
	return cfg
}

// serve runs the offline backend over HTTP until ctx ends.
func serve(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	cards, err := deck.LoadCards(cfg.DeckPaths)
	if err != nil {
		return err
	}
	svc, err := offline.NewService(cards, offline.Options{
		PlayerName:         cfg.PlayerName,
		QuestionsPerBattle: cfg.QuestionsPerBattle,
	}, logger)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           httpapi.SetupRoutes(svc, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	serveErr := make(chan error, 1)
	logger.Info("listening", zap.String("addr", cfg.ListenAddr), zap.Int("cards", len(cards)))
	log.Printf("listening on %s", cfg.ListenAddr)
	go func() {
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}
