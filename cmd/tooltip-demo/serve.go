package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/rvx-apps/ToolTip/internal/demo"
)

func serveCmd() *cobra.Command {
	var (
		addr        string
		fixturePath string
		staticDir   string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the demo page",
		Long: `Serve a page whose anchors carry tooltip attributes, together with the
stylesheet and the GopherJS bundle.

Build the bundle first, for example:

  gopherjs build -o example/app.js ./example`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fixture := demo.Default()
			if fixturePath != "" {
				f, err := demo.Load(fixturePath)
				if err != nil {
					return err
				}
				fixture = f
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, addr, demo.NewRouter(fixture, staticDir, slog.Default()))
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "Listen address")
	cmd.Flags().StringVar(&fixturePath, "fixture", "", "YAML fixture describing the anchors (default: bundled fixture)")
	cmd.Flags().StringVar(&staticDir, "static", "example", "Directory served under /static")

	return cmd
}

func serve(ctx context.Context, addr string, h http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		slog.Info("serving demo", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen on %s: %w", addr, err)
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
