// espn-fantasy-mcp serves ESPN fantasy baseball league data and roster
// transactions as MCP tools.
//
// Usage:
//
//	espn-fantasy-mcp                             # stdio transport
//	espn-fantasy-mcp --transport http --addr :8080
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/pflag"

	"github.com/omarshaarawi/espn-fantasy-mcp/internal/api/espn"
	"github.com/omarshaarawi/espn-fantasy-mcp/internal/config"
	"github.com/omarshaarawi/espn-fantasy-mcp/internal/repository/memory"
	"github.com/omarshaarawi/espn-fantasy-mcp/internal/scheduler"
	"github.com/omarshaarawi/espn-fantasy-mcp/internal/service"
	"github.com/omarshaarawi/espn-fantasy-mcp/internal/tools"
)

const (
	serverName = "espn-fantasy"
	version    = "0.1.0"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Error running application", "error", err)
		os.Exit(1)
	}
}

func run() error {
	var transport, addr, logLevel string
	var showVersion bool

	flagSet := pflag.NewFlagSet("espn-fantasy-mcp", pflag.ContinueOnError)
	flagSet.StringVar(&transport, "transport", "stdio", "MCP transport: stdio or http")
	flagSet.StringVar(&addr, "addr", ":8080", "listen address for the http transport")
	flagSet.StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn or error")
	flagSet.BoolVar(&showVersion, "version", false, "print the version and exit")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}
	if showVersion {
		fmt.Printf("%s v%s\n", serverName, version)
		return nil
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		return fmt.Errorf("parsing --log-level: %w", err)
	}
	// stdout belongs to the stdio transport.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := godotenv.Load(); err != nil {
		slog.Error("Error loading .env file", "error", err)
	}

	cfg, err := config.New()
	if err != nil {
		return err
	}

	espnClient := espn.NewClient(cfg.ESPNAPI)
	espnAPI := espn.NewAPI(espnClient)

	directory := memory.NewDirectoryRepository()
	fantasyService := service.NewFantasyService(service.NewConnector(espnAPI, directory))

	if cfg.Directory.Refresh != "" {
		sched, err := scheduler.NewScheduler(directory, cfg.Directory.Refresh)
		if err != nil {
			return err
		}
		if err := sched.Start(); err != nil {
			return err
		}
		defer func() {
			if err := sched.Stop(); err != nil {
				slog.Error("Error stopping scheduler", "error", err)
			}
		}()
	}

	s := server.NewMCPServer(
		serverName,
		version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)
	tools.Register(s, fantasyService, cfg.ESPNAPI)

	slog.Info("Starting ESPN Fantasy MCP server", "transport", transport, "authenticated", cfg.ESPNAPI.HasAuth())

	switch transport {
	case "stdio":
		return server.ServeStdio(s)
	case "http":
		return serveHTTP(s, addr)
	default:
		return fmt.Errorf("unknown transport %q", transport)
	}
}

func serveHTTP(s *server.MCPServer, addr string) error {
	httpServer := server.NewStreamableHTTPServer(s)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.Start(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down gracefully...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}
