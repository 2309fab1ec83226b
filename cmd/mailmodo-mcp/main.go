// Command mailmodo-mcp runs the Mailmodo MCP server over stdio for a
// single API key taken from the environment.
package main

import (
	"context"
	"os"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/mailmodo/mailmodo-mcp/pkg/mailmodo"
	"github.com/mailmodo/mailmodo-mcp/pkg/server"
)

func main() {
	// Stdout carries the MCP stream, so logs go to stderr.
	log := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.StampMilli,
	}).With().Timestamp().Logger()

	apiKey := os.Getenv("MAILMODO_API_KEY")
	if apiKey == "" {
		log.Fatal().Msg("MAILMODO_API_KEY is required")
	}

	client := mailmodo.NewClient(apiKey, mailmodo.WithLogger(log))
	srv := server.New(client)

	ctx := log.WithContext(context.Background())
	log.Info().Msg("Starting Mailmodo MCP server on stdio")
	if err := srv.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatal().Err(err).Msg("Server exited with error")
	}
}
