package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/radikecosa/postkit/internal/config"
	"github.com/radikecosa/postkit/internal/logger"
	"github.com/radikecosa/postkit/internal/robots"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the generated robots.txt over HTTP",
	Long: `Run an HTTP server exposing GET /robots.txt, built from site.url and
site.base. Stops cleanly on SIGINT or SIGTERM.

Example:
  postkit serve --addr :4321`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", ":4321", "Address to listen on")
}

func newServer(siteURL, base string) (*echo.Echo, error) {
	handler, err := robots.Handler(siteURL, base)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogMethod:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info("request", map[string]interface{}{
				"method":  v.Method,
				"uri":     v.URI,
				"status":  v.Status,
				"latency": v.Latency.String(),
			})
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.GET("/robots.txt", handler)

	return e, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Theme()
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	e, err := newServer(cfg.Site.URL, cfg.BasePath())
	if err != nil {
		return fmt.Errorf("failed to build server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- e.Start(serveAddr)
	}()
	fmt.Printf("✓ Serving robots.txt on %s\n", serveAddr)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}
