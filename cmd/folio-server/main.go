package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/zhaoyu-io/folio/internal/config"
	"github.com/zhaoyu-io/folio/internal/content"
	"github.com/zhaoyu-io/folio/internal/frontend"
	"github.com/zhaoyu-io/folio/internal/health"
	"github.com/zhaoyu-io/folio/internal/logging"
	"github.com/zhaoyu-io/folio/internal/watch"
	"github.com/zhaoyu-io/folio/internal/ws"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

type options struct {
	configPath  string
	verbose     bool
	dev         bool
	port        int
	contentPath string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:          "folio-server",
		Short:        "Serve the folio landing page, its API and the live content feed",
		Version:      version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), opts)
		},
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "config.yaml", "path to config file")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	cmd.Flags().BoolVar(&opts.dev, "dev", false, "serve the frontend from the filesystem")
	cmd.Flags().IntVar(&opts.port, "port", 0, "override server port")
	cmd.Flags().StringVar(&opts.contentPath, "content", "", "override content file path")
	return cmd
}

func run(ctx context.Context, opts options) error {
	log, err := logging.New(logging.Options{Verbose: opts.verbose})
	if err != nil {
		return err
	}
	defer log.Sync()

	cfg, err := config.LoadOrDefault(opts.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.port > 0 {
		cfg.Server.Port = opts.port
	}
	if opts.contentPath != "" {
		cfg.Content.Path = opts.contentPath
	}
	if opts.dev {
		cfg.Server.Dev = true
	}

	c, err := content.LoadOrDefault(cfg.Content.Path)
	if err != nil {
		return fmt.Errorf("load content: %w", err)
	}
	store := content.NewStore(c)

	broadcaster := ws.NewBroadcaster(store, cfg.Server.BroadcastThrottle, cfg.Server.SnapshotInterval,
		cfg.Server.MaxConnections, log.Named("ws"))
	defer broadcaster.Stop()

	collector, err := health.NewCollector(version)
	if err != nil {
		log.Warn("health probes disabled", zap.Error(err))
	}

	frontendDir := cfg.Server.FrontendDir
	if cfg.Server.Dev && frontendDir == "" {
		frontendDir = "internal/frontend/static"
	}
	var embedded http.Handler
	if !cfg.Server.Dev {
		embedded = frontend.Handler()
		if embedded == nil && frontendDir != "" {
			log.Info("no embedded frontend, serving from filesystem", zap.String("dir", frontendDir))
			embedded = frontend.SPA(os.DirFS(frontendDir))
		}
	}

	server := ws.NewServer(store, broadcaster, ws.Options{
		FrontendDir:     frontendDir,
		Dev:             cfg.Server.Dev,
		EmbeddedHandler: embedded,
		AllowedOrigins:  cfg.Server.AllowedOrigins,
		AuthToken:       cfg.Server.AuthToken,
		Health:          collector,
		Reload: func() (uint64, error) {
			c, err := content.Load(cfg.Content.Path)
			if err != nil {
				return 0, err
			}
			return store.Set(c), nil
		},
		Logger: log.Named("http"),
	})

	mux := http.NewServeMux()
	server.SetupRoutes(mux)
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return ws.Serve(gctx, srv, log)
	})

	if cfg.Content.Watch {
		watcher, err := watch.New(cfg.Content.Path, store, cfg.Content.ReloadThrottle,
			func(_ *content.Content, v uint64) {
				log.Info("content reloaded", zap.Uint64("version", v))
				broadcaster.QueueUpdate()
			}, log.Named("watch"))
		if err != nil {
			log.Warn("content watch disabled", zap.Error(err))
		} else {
			g.Go(func() error {
				return watcher.Run(gctx)
			})
		}
	}

	err = g.Wait()
	log.Info("shut down")
	return err
}
