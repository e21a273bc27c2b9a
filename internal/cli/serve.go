package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpDelivery "github.com/hairdiag/backend/internal/delivery/http"
	"github.com/hairdiag/backend/internal/infrastructure/ratelimit"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	visitorTTL      = 10 * time.Minute
	shutdownTimeout = 10 * time.Second
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the questionnaire page and the recommendations API",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return serve(cmd)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve(cmd *cobra.Command) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting hairdiag",
		zap.String("version", version),
		zap.String("environment", cfg.Server.Environment),
		zap.String("port", cfg.Server.Port),
	)

	service := newRecommendationService(cfg, log)

	limiter := ratelimit.NewStore(cfg.RateLimit.PerIP, cfg.RateLimit.Burst, visitorTTL)
	defer limiter.Stop()
	log.Info("rate limiting",
		zap.Int("per_ip_per_minute", cfg.RateLimit.PerIP),
		zap.Int("burst", cfg.RateLimit.Burst),
		zap.Float64("catalog_per_second", cfg.RateLimit.Catalog),
	)

	handler := httpDelivery.NewHandler(service, log.Named("http"))
	router := httpDelivery.SetupRouter(cfg, handler, limiter, log.Named("http"))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}
	return nil
}
