// Package checker parses checker CLI flags and prints a legality report
// for one case file.
package checker

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/louisbranch/learnset/internal/legality"
	"github.com/louisbranch/learnset/internal/platform/config"
	"github.com/louisbranch/learnset/internal/platform/i18n/names"
	"github.com/louisbranch/learnset/internal/platform/otel"
	"github.com/louisbranch/learnset/internal/storage/sqlite"
)

// Config holds checker command configuration.
type Config struct {
	DBPath   string `env:"LEARNSET_DB_PATH" envDefault:"learnset.db"`
	Locale   string `env:"LEARNSET_LOCALE"  envDefault:"en-US"`
	CaseFile string
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "path to the learnset database")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "locale for display names")
	fs.StringVar(&cfg.CaseFile, "case", "", "path to a YAML case file")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if strings.TrimSpace(cfg.CaseFile) == "" {
		return Config{}, errors.New("case is required")
	}
	return cfg, nil
}

// Run checks the case file's moves against the stored tables and writes a
// report to out.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if out == nil {
		out = io.Discard
	}

	shutdown, err := otel.Setup(ctx, "checker")
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

	cf, err := loadCaseFile(cfg.CaseFile)
	if err != nil {
		return err
	}
	return report(ctx, engine, catalog, cfg.Locale, cf, out)
}

// report runs the case file's queries and writes the outcome.
func report(ctx context.Context, engine *legality.Engine, catalog *names.Catalog, locale string, cf caseFile, out io.Writer) error {
	req, err := cf.checkRequest()
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s (level %d)\n", catalog.SpeciesName(locale, cf.Species), cf.Level)

	if len(cf.Moves) > 0 {
		result, err := engine.Check(ctx, req)
		if err != nil {
			return fmt.Errorf("legality check failed: %w", err)
		}
		for i, slot := range result.Results {
			name := catalog.MoveName(locale, cf.Moves[i])
			if slot.Resolved {
				fmt.Fprintf(out, "  %-16s ok   %s (gen %d)\n", name, slot.Method, slot.Generation)
			} else {
				fmt.Fprintf(out, "  %-16s FAIL unobtainable\n", name)
			}
		}
		if result.Legal() {
			fmt.Fprintln(out, "legal")
		} else {
			fmt.Fprintf(out, "illegal: %d of %d moves unresolved\n", len(result.Results)-result.Resolved, len(result.Results))
		}
	}

	if len(cf.Candidates) > 0 {
		mask, err := engine.CanLearn(ctx, legality.CanLearnRequest{
			Creature:  req.Creature,
			History:   req.History,
			Encounter: req.Encounter,
			Flags:     req.Flags,
			Option:    req.Option,
		})
		if err != nil {
			return fmt.Errorf("capability query failed: %w", err)
		}
		fmt.Fprintln(out, "candidates:")
		for _, move := range cf.Candidates {
			obtainable := move >= 0 && move < len(mask) && mask[move]
			verdict := "no"
			if obtainable {
				verdict = "yes"
			}
			fmt.Fprintf(out, "  %-16s %s\n", catalog.MoveName(locale, move), verdict)
		}
	}
	return nil
}
