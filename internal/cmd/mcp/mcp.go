// Package mcp parses MCP command flags and selects stdio or HTTP transport.
package mcp

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/louisreis/tripwing/internal/platform/config"
	"github.com/louisreis/tripwing/internal/platform/otel"
	"github.com/louisreis/tripwing/internal/services/mcp/service"
)

// Config holds MCP command configuration.
type Config struct {
	APIKey    string `env:"KIWI_API_KEY"`
	BaseURL   string `env:"TRIPWING_KIWI_BASE_URL"`
	Transport string `env:"TRIPWING_MCP_TRANSPORT" envDefault:"stdio"`
	HTTPAddr  string `env:"TRIPWING_MCP_HTTP_ADDR" envDefault:"localhost:8081"`
}

// ParseConfig parses environment and flags into a Config. Flags override
// environment values; the API key is environment-only so it never appears in
// process listings.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "flight-search API base URL (empty for production)")
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP server address (for HTTP transport)")
	fs.StringVar(&cfg.Transport, "transport", cfg.Transport, "Transport type: stdio or http")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the MCP protocol adapter.
func Run(ctx context.Context, cfg Config) error {
	shutdown, err := otel.Setup(ctx, "mcp")
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			log.Printf("otel shutdown: %v", err)
		}
	}()

	return service.Run(ctx, service.Config{
		BaseURL:   cfg.BaseURL,
		APIKey:    cfg.APIKey,
		Transport: service.TransportKind(cfg.Transport),
		HTTPAddr:  cfg.HTTPAddr,
	})
}
