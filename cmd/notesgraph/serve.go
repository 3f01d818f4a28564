package main

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"notesgraph/internal/config"
	"notesgraph/internal/dom"
	"notesgraph/internal/handler"
	"notesgraph/internal/hub"
	"notesgraph/internal/metrics"
	"notesgraph/internal/service"
	"notesgraph/internal/watcher"
	"notesgraph/internal/widget"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type serveFlags struct {
	addr  string
	data  string
	watch bool
}

func serveCmd() *cobra.Command {
	var f serveFlags
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the interactive graph over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, path, err := loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Server.Addr = f.addr
			}
			if cmd.Flags().Changed("data") {
				cfg.Data.Source = f.data
			}
			if cmd.Flags().Changed("watch") {
				cfg.Data.Watch = f.watch
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return serve(cmd.Context(), cfg, path)
		},
	}
	cmd.Flags().StringVar(&f.addr, "addr", config.DefaultAddr, "listen address")
	cmd.Flags().StringVar(&f.data, "data", "", "dataset file or URL loaded at startup")
	cmd.Flags().BoolVar(&f.watch, "watch", false, "reload the dataset file when it changes")
	return cmd
}

func serve(ctx context.Context, cfg *config.Config, path string) error {
	logger, err := cfg.Logger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if path != "" {
		logger.Info("using config", zap.String("path", path))
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	doc := dom.NewDocument()
	container := dom.NewElement("div")
	container.SetAttr("id", "graph")
	container.Width = cfg.Canvas.Width
	container.Height = cfg.Canvas.Height
	doc.Body().AppendChild(container)

	reg := metrics.NewRegistry()
	bus := service.NewEventBus()
	bus.OnDrop(reg.RecordDroppedEvent)

	w := widget.New(doc, "#graph", cfg.Widget, logger,
		widget.WithPublisher(bus),
		widget.WithMetrics(reg),
	)
	svc := service.NewGraphService(w, bus, logger)
	events := hub.New(logger, reg)

	router := handler.NewRouter(handler.RouterConfig{
		Graph:       handler.NewGraphHandler(svc, w, logger),
		Events:      events,
		Metrics:     reg,
		CORSOrigins: cfg.Server.CORSOrigins,
		Logger:      logger,
	})

	server := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout.Duration(),
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	if src := cfg.Data.Source; src != "" {
		if err := svc.Load(ctx, src); err != nil {
			logger.Warn("initial load failed", zap.String("source", src), zap.Error(err))
		}
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return ignoreCanceled(events.Run(gctx, bus))
	})
	g.Go(func() error {
		return ignoreCanceled(w.Run(gctx))
	})

	if file, ok := localFile(cfg.Data.Source); ok && cfg.Data.Watch {
		fw := watcher.New(file, func() {
			if err := svc.Reload(gctx); err != nil {
				logger.Warn("reload failed", zap.String("source", file), zap.Error(err))
			}
		}, logger)
		g.Go(func() error {
			return ignoreCanceled(fw.Watch(gctx))
		})
	}

	g.Go(func() error {
		logger.Info("notesgraph listening",
			zap.String("addr", cfg.Server.Addr),
			zap.String("version", version),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout.Duration())
		defer cancel()
		err := server.Shutdown(shutdownCtx)
		w.Destroy()
		return err
	})

	if err := g.Wait(); err != nil {
		logger.Error("server stopped", zap.Error(err))
		return err
	}
	logger.Info("server stopped")
	return nil
}

// localFile reports the path behind source when it names a file rather
// than a URL
func localFile(source string) (string, bool) {
	if source == "" {
		return "", false
	}
	u, err := url.Parse(source)
	if err != nil {
		return source, true
	}
	switch u.Scheme {
	case "http", "https":
		return "", false
	case "file":
		return u.Path, true
	}
	return source, true
}

func ignoreCanceled(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
