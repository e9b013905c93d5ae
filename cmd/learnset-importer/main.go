package main

import (
	"context"
	"flag"
	"os"

	"github.com/louisbranch/learnset/internal/platform/config"
	learnsetimporter "github.com/louisbranch/learnset/internal/tools/importer/learnsets"
)

func main() {
	cfg, err := learnsetimporter.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	if err := learnsetimporter.Run(context.Background(), cfg, os.Stdout); err != nil {
		config.Exitf("Error: %v", err)
	}
}
