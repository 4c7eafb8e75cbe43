// Package ops serves health and metrics next to the stdio tool server.
package ops

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"brewfather-mcp/config"
	"brewfather-mcp/internal/mw"
)

const (
	defaultRatePerSec = 10
	defaultBurst      = 5
	shutdownTimeout   = 5 * time.Second
)

// NewRouter creates the ops router. gatherer is exposed on /metrics.
func NewRouter(cfg config.OpsConfig, gatherer prometheus.Gatherer, version string, logger logrus.FieldLogger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	perSec, burst := cfg.RateLimitPerSec, cfg.RateLimitBurst
	if perSec <= 0 {
		perSec = defaultRatePerSec
	}
	if burst <= 0 {
		burst = defaultBurst
	}
	r.Use(mw.RateLimiter(mw.NewIPRateLimiter(rate.Limit(perSec), burst), logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "version": version})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	return r
}

// Serve runs handler on addr until ctx is cancelled, then shuts down gracefully.
func Serve(ctx context.Context, addr string, handler http.Handler, logger logrus.FieldLogger) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.WithField("addr", addr).Info("ops listener starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info("ops listener stopped")
	return nil
}
