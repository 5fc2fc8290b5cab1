package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"sizeguide-service/internal/config"
	"sizeguide-service/internal/sizing/service"
	serverhttp "sizeguide-service/server/http"
)

func main() {
	cfg := config.Load()
	logger := config.SetupLogger(cfg)

	reg := service.NewRegistry()
	loadCharts(cfg, reg, logger)

	r := serverhttp.NewRouter(cfg, reg, logger)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
	}
	logger.Info().Str("addr", cfg.Addr()).Strs("charts", reg.Categories()).Msg("server starting")

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("listen")
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("server shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("shutdown")
	}
	logger.Info().Msg("bye")
}

// loadCharts registers chart files from cfg.ChartDir. Bad files are logged and
// skipped; the built-in default chart is always there.
func loadCharts(cfg config.Config, reg *service.Registry, logger zerolog.Logger) {
	charts, failed, err := service.LoadDir(cfg.ChartDir)
	if err != nil {
		logger.Error().Err(err).Str("dir", cfg.ChartDir).Msg("chart dir")
		return
	}
	for path, ferr := range failed {
		logger.Warn().Err(ferr).Str("file", path).Msg("chart skipped")
	}
	for _, c := range charts {
		if err := reg.Put(c); err != nil {
			logger.Warn().Err(err).Str("category", c.Category).Msg("chart skipped")
			continue
		}
		logger.Info().Str("category", c.Category).Msg("chart loaded")
	}
}
