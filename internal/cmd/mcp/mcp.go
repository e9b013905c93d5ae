// Package mcp parses MCP command flags and serves legality tools on stdio.
package mcp

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/louisbranch/learnset/internal/legality"
	mcpserver "github.com/louisbranch/learnset/internal/mcp"
	"github.com/louisbranch/learnset/internal/platform/config"
	"github.com/louisbranch/learnset/internal/platform/i18n/names"
	"github.com/louisbranch/learnset/internal/platform/otel"
	"github.com/louisbranch/learnset/internal/storage/sqlite"
)

// Config holds MCP command configuration.
type Config struct {
	DBPath string `env:"LEARNSET_DB_PATH" envDefault:"learnset.db"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "path to the learnset database")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run loads the move-source registry and serves the MCP tools until the
// context is cancelled.
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

	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("close store: %v", err)
		}
	}()

	reg, err := store.LoadRegistry(ctx)
	if err != nil {
		return err
	}
	engine, err := legality.NewEngine(reg)
	if err != nil {
		return err
	}
	catalog, err := names.Load()
	if err != nil {
		return err
	}

	server, err := mcpserver.New(engine, catalog)
	if err != nil {
		return err
	}
	return server.Serve(ctx)
}
