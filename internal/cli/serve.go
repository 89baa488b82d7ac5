package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/klintqinami/sese-regions/internal/server"
	"github.com/klintqinami/sese-regions/pkg/buildinfo"
	"github.com/klintqinami/sese-regions/pkg/cache"
	"github.com/klintqinami/sese-regions/pkg/store"
)

// serveCommand creates the serve command exposing the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr     string
		redisStr string
		mongoURI string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the region analysis as an HTTP API",
		Long: `Serve the region analysis as an HTTP API.

Endpoints:
  POST /api/analyze        graph JSON in, full decomposition out
  POST /api/viz/{kind}     graph JSON in, rendered dot/svg/png out
  GET  /api/analyses/{id}  fetch an archived analysis (requires --mongo)

Render responses are cached in the local cache directory by default; pass --redis to share
the cache between instances. Pass --mongo to archive analyses.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr, redisStr, mongoURI)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&redisStr, "redis", "", "redis address for the shared render cache (host:port)")
	cmd.Flags().StringVar(&mongoURI, "mongo", "", "mongodb URI for the analysis archive")
	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr, redisAddr, mongoURI string) error {
	var renderCache cache.Cache
	if redisAddr != "" {
		rc, err := cache.NewRedisCache(ctx, redisAddr)
		if err != nil {
			return fmt.Errorf("connect redis %s: %w", redisAddr, err)
		}
		renderCache = rc
		c.Logger.Info("using redis render cache", "addr", redisAddr)
	} else {
		renderCache = newCache(false)
	}
	defer renderCache.Close()

	var archive store.Store
	if mongoURI != "" {
		ms, err := store.NewMongoStore(ctx, mongoURI)
		if err != nil {
			return fmt.Errorf("connect mongodb: %w", err)
		}
		archive = ms
		c.Logger.Info("archiving analyses to mongodb")
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = ms.Close(shutdownCtx)
		}()
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           server.New(c.Logger, renderCache, archive).Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("listening", "addr", addr, "build", buildinfo.Short())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		c.Logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
