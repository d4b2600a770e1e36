package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/promptdeck/promptdeck-mcp/internal/config"
	"github.com/promptdeck/promptdeck-mcp/pkg/client"
	"github.com/promptdeck/promptdeck-mcp/pkg/mcpsrv"
)

const version = "1.0.0"

func main() {
	os.Exit(run())
}

func run() int {
	showVersion := flag.Bool("version", false, "Print version and exit")
	showConfig := flag.Bool("config", false, "Print effective configuration and exit")
	httpAddr := flag.String("http", "", "Serve MCP over streamable HTTP on host:port instead of stdio")
	flag.Parse()

	if *showVersion {
		fmt.Printf("promptdeck-mcp v%s\n", version)
		return 0
	}

	// Best-effort .env load; a missing file is not an error.
	_ = godotenv.Load()

	cfg := config.Load()

	if *showConfig {
		printConfig(cfg)
		return 0
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// The worker API base URL, per-attempt timeout, and retry count come
	// from MCP_WORKER_URL, MCP_API_TIMEOUT, and MCP_RETRIES.
	apiClient := client.New(
		client.WithBaseURL(cfg.WorkerURL),
		client.WithTimeout(cfg.APITimeout),
		client.WithMaxRetries(cfg.MaxRetries),
	)

	server, err := mcpsrv.NewServer(apiClient)
	if err != nil {
		slog.Error("failed to create MCP server", "error", err)
		return 1
	}
	defer server.Close()

	if *httpAddr != "" {
		slog.Info("starting promptdeck MCP server", "addr", *httpAddr, "worker_url", cfg.WorkerURL)
		err = server.RunHTTP(ctx, *httpAddr)
	} else {
		slog.Info("starting promptdeck MCP server on stdio", "worker_url", cfg.WorkerURL)
		err = server.Run(ctx)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("server error", "error", err)
		return 1
	}

	slog.Info("server stopped")
	return 0
}

func printConfig(cfg *config.Config) {
	fmt.Printf("promptdeck-mcp v%s\n\n", version)
	fmt.Println("Configuration:")
	fmt.Printf("  Worker URL:  %s\n", cfg.WorkerURL)
	fmt.Printf("  API timeout: %s\n", cfg.APITimeout)
	fmt.Printf("  Retries:     %d\n", cfg.MaxRetries)
	fmt.Println("\nProxy:")
	fmt.Printf("  HTTP_PROXY:  %s\n", envOr("HTTP_PROXY", "(unset)"))
	fmt.Printf("  HTTPS_PROXY: %s\n", envOr("HTTPS_PROXY", "(unset)"))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
