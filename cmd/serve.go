package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gaurav-prasanna/sheetfolio/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var flagAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio as a JSON API",
	Long: `Serve loads every source once, then answers the portfolio API.
The works catalog is reloaded on each /api/works request.

Examples:
  sheetfolio serve
  sheetfolio serve --addr :9000 --verbose`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&flagAddr, "addr", "", "Listen address (default from SHEETFOLIO_ADDR)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	addr := cfg.Addr
	if flagAddr != "" {
		addr = flagAddr
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	s := newSite()
	s.Refresh(ctx)

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           server.New(s, newExtractor(), logger).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Listening", zap.String("addr", addr))
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serving: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}
