package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/adalundhe/restyle/api"
	restylemcp "github.com/adalundhe/restyle/mcp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the styling toolkit",
	Long:  `Run the toolkit as a long-lived HTTP or MCP server.`,
}

var serveHTTPAddr string

var serveHTTPCmd = &cobra.Command{
	Use:   "http",
	Short: "Serve the HTTP styling API",
	Long: `Serve the REST API for page-builder backends.

Examples:
  restyle serve http
  restyle serve http --addr :9090
  RESTYLE_HTTP_ADDR=:9090 restyle serve http`,
	RunE: runServeHTTP,
}

var serveMCPCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the MCP server on stdio",
	Long: `Serve the Model Context Protocol server over stdio so agent hosts can
drive style edits. Logs go to stderr; stdout carries the protocol.

Examples:
  restyle serve mcp`,
	RunE: runServeMCP,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.AddCommand(serveHTTPCmd)
	serveCmd.AddCommand(serveMCPCmd)

	serveHTTPCmd.Flags().StringVar(&serveHTTPAddr, "addr", "", "Listen address (overrides config)")
}

func runServeHTTP(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	toolkit, cleanup, err := buildToolkit(cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	addr := cfg.HTTP.Addr
	if serveHTTPAddr != "" {
		addr = serveHTTPAddr
	}

	server := &http.Server{
		Addr:         addr,
		Handler:      api.RegisterRoutes(toolkit),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	logger.Info("http server listening", "addr", addr)
	go func() {
		serveErr <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		logger.Info("http server stopped")
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

func runServeMCP(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	toolkit, cleanup, err := buildToolkit(cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("mcp server listening on stdio")
	if err := restylemcp.NewServer(toolkit).Serve(ctx); err != nil {
		return fmt.Errorf("serve mcp: %w", err)
	}
	logger.Info("mcp server stopped")
	return nil
}
