package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	checkercmd "github.com/louisbranch/learnset/internal/cmd/checker"
	"github.com/louisbranch/learnset/internal/platform/config"
)

// main checks one case file against the learnset database.
func main() {
	_ = godotenv.Load()

	cfg, err := checkercmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := checkercmd.Run(ctx, cfg, os.Stdout); err != nil {
		config.Exitf("Error: %v", err)
	}
}
