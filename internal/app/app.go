package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/rahul8600/govt-job-board/internal/llm"
	"github.com/rahul8600/govt-job-board/internal/llmextract"
	"github.com/rahul8600/govt-job-board/internal/server"
	"github.com/rahul8600/govt-job-board/internal/store"
)

const shutdownGrace = 10 * time.Second

// App owns the open database and the HTTP server.
type App struct {
	cfg Config
	db  *store.DB
	srv *http.Server
}

// New opens the store, runs migrations and assembles the handler. The
// LLM extractor is attached only when a model is configured.
func New(ctx context.Context, cfg Config) (*App, error) {
	db, err := store.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	if err := db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	var extractor *llmextract.Extractor
	if cfg.LLMModel != "" {
		extractor = &llmextract.Extractor{
			Client: llm.NewClient(cfg.LLMBaseURL, cfg.LLMAPIKey),
			Model:  cfg.LLMModel,
		}
		log.Info().Str("model", cfg.LLMModel).Msg("LLM extractor enabled")
	} else {
		log.Info().Msg("no LLM model configured, rule engine only")
	}

	s := server.New(db, extractor, cfg.AdminPassword, cfg.BaseURL)
	return &App{
		cfg: cfg,
		db:  db,
		srv: &http.Server{
			Addr:              cfg.Addr,
			Handler:           s.Handler(),
			ReadHeaderTimeout: 10 * time.Second,
		},
	}, nil
}

// Run serves HTTP until ctx is cancelled, then drains connections
// within the shutdown grace period.
func (a *App) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("addr", a.cfg.Addr).Msg("listening")
		if err := a.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		return a.srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// Close releases the database.
func (a *App) Close() error {
	return a.db.Close()
}
