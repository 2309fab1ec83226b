// Command mailmodo-mcp-http serves the Mailmodo MCP server over
// streamable HTTP. Each request selects an isolated per-API-key server by
// the mmApiKey header, so one process can serve many tenants without
// sharing credentials.
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"
	"go.mau.fi/util/exhttp"

	"github.com/mailmodo/mailmodo-mcp/pkg/config"
	"github.com/mailmodo/mailmodo-mcp/pkg/mailmodo"
	"github.com/mailmodo/mailmodo-mcp/pkg/server"
)

const apiKeyHeader = "mmApiKey"

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.StampMilli,
	}).With().Timestamp().Logger()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		log = log.Level(level)
	}

	mgr := server.NewManager(func(apiKey string) *mcp.Server {
		return server.New(mailmodo.NewClient(apiKey,
			mailmodo.WithBaseURL(cfg.BaseURL),
			mailmodo.WithLogger(log),
		))
	})

	// Stateless matches the upstream API contract: the credential header
	// on each request is the whole session.
	mcpHandler := mcp.NewStreamableHTTPHandler(func(r *http.Request) *mcp.Server {
		apiKey := strings.TrimSpace(r.Header.Get(apiKeyHeader))
		if apiKey == "" {
			// Returning nil makes the handler reject the request.
			return nil
		}
		return mgr.ServerFor(apiKey)
	}, &mcp.StreamableHTTPOptions{Stateless: true})

	mux := http.NewServeMux()
	mux.Handle("/mcp", withRequestLog(log, mcpHandler))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		exhttp.WriteJSONResponse(w, http.StatusOK, map[string]any{"ok": true})
	})

	httpServer := &http.Server{
		Addr:    cfg.Listen,
		Handler: mux,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Str("listen", cfg.Listen).Msg("Starting Mailmodo MCP HTTP server")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("Shutdown did not complete cleanly")
	}
}

// withRequestLog attaches the logger to each request context so tool
// handlers can pick it up with zerolog.Ctx.
func withRequestLog(log zerolog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(log.WithContext(r.Context())))
	})
}
