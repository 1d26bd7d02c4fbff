package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"

	httpadapter "github.com/couchcryptid/virtual-events/internal/adapter/http"
	"github.com/couchcryptid/virtual-events/internal/adapter/site"
	"github.com/couchcryptid/virtual-events/internal/config"
	"github.com/couchcryptid/virtual-events/internal/observability"
	"github.com/couchcryptid/virtual-events/internal/pipeline"
	"github.com/couchcryptid/virtual-events/internal/render"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	templates, err := loadTemplates(cfg)
	if err != nil {
		logger.Error("failed to load templates", "error", err, "dir", cfg.TemplateDir)
		os.Exit(1)
	}

	dir := site.NewDir(cfg.OutputDir, logger)
	renderer := render.New(templates, cfg.SiteTitle)
	p := pipeline.New(dir, dir, renderer, clockwork.NewRealClock(), logger, metrics, pipeline.Options{
		Sources:   cfg.Sources,
		StaticDir: cfg.StaticDir,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if _, err := p.Run(ctx); err != nil {
		logger.Error("build failed", "error", err)
		os.Exit(1)
	}

	if cfg.PreviewAddr == "" {
		return
	}

	srv := httpadapter.NewServer(cfg.PreviewAddr, cfg.OutputDir, p, logger)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}

func loadTemplates(cfg *config.Config) (*render.Templates, error) {
	if cfg.TemplateDir == "" {
		return render.DefaultTemplates()
	}
	return render.LoadTemplates(os.DirFS(cfg.TemplateDir))
}
