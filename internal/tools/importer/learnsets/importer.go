// Package learnsetimporter loads move-source data files into the learnset
// database.
package learnsetimporter

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/louisbranch/learnset/internal/legality/source"
	"github.com/louisbranch/learnset/internal/storage/sqlite"
)

// Config holds configuration for the learnset importer.
type Config struct {
	Dir    string
	DBPath string
	DryRun bool
}

// ParseConfig parses CLI flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Config{
		DBPath: "learnset.db",
	}

	fs.StringVar(&cfg.Dir, "dir", "", "directory containing learnset data files")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "learnset database path")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "validate without writing to the database")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if strings.TrimSpace(cfg.Dir) == "" {
		return Config{}, errors.New("dir is required")
	}
	return cfg, nil
}

// Run executes the importer using the provided Config.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if out == nil {
		out = io.Discard
	}

	files, err := listDataFiles(cfg.Dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no data files found in %s", cfg.Dir)
	}

	var store *sqlite.Store
	if !cfg.DryRun {
		store, err = sqlite.Open(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("open learnset store: %w", err)
		}
		defer store.Close()
	}

	imported := 0
	for _, file := range files {
		data, err := readDataFile(file)
		if err != nil {
			return fmt.Errorf("read %s: %w", filepath.Base(file), err)
		}
		if err := validatePayload(data); err != nil {
			return fmt.Errorf("validate %s: %w", filepath.Base(file), err)
		}
		if !cfg.DryRun {
			if err := importPayload(ctx, store, data); err != nil {
				return fmt.Errorf("import %s: %w", filepath.Base(file), err)
			}
		}
		imported += len(data.Learnsets)
	}

	if cfg.DryRun {
		_, err = fmt.Fprintf(out, "validated %d learn set(s) across %d file(s)\n", imported, len(files))
		return err
	}
	_, err = fmt.Fprintf(out, "imported %d learn set(s) from %d file(s)\n", imported, len(files))
	return err
}

func listDataFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read data directory: %w", err)
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
			files = append(files, filepath.Join(dir, name))
		}
	}
	sort.Strings(files)
	return files, nil
}

func readDataFile(path string) (payload, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return payload{}, err
	}
	var data payload
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return payload{}, fmt.Errorf("decode yaml: %w", err)
	}
	return data, nil
}

func validatePayload(data payload) error {
	known := map[int]speciesRecord{}
	for _, record := range data.Species {
		if record.ID <= 0 {
			return fmt.Errorf("species id must be positive, got %d", record.ID)
		}
		if _, dup := known[record.ID]; dup {
			return fmt.Errorf("duplicate species %d", record.ID)
		}
		known[record.ID] = record
	}
	for _, record := range data.Learnsets {
		if record.Species <= 0 {
			return fmt.Errorf("learnset species id must be positive, got %d", record.Species)
		}
		if _, err := source.ParseVersion(record.Version); err != nil {
			return fmt.Errorf("learnset for species %d: %w", record.Species, err)
		}
		if record.Form < 0 {
			return fmt.Errorf("learnset form must not be negative, got %d", record.Form)
		}
		if info, ok := known[record.Species]; ok {
			formCount := info.FormCount
			if formCount < 1 {
				formCount = 1
			}
			if record.Form >= formCount {
				return fmt.Errorf("species %d form %d exceeds form count %d", record.Species, record.Form, formCount)
			}
		}
		for _, entry := range record.LevelUp {
			if entry.Level < 0 {
				return fmt.Errorf("species %d move %d has negative level", record.Species, entry.Move)
			}
		}
	}
	return nil
}

func importPayload(ctx context.Context, store *sqlite.Store, data payload) error {
	for _, record := range data.Species {
		err := store.UpsertSpecies(ctx, record.ID, source.PersonalInfo{
			FormCount:      record.FormCount,
			BaseFriendship: record.BaseFriendship,
			ScanAllForms:   record.ScanAllForms,
			HatchBonusMove: record.HatchBonusMove,
		})
		if err != nil {
			return err
		}
	}
	for _, record := range data.Learnsets {
		version, err := source.ParseVersion(record.Version)
		if err != nil {
			return err
		}
		set := source.LearnSet{
			Machine: record.Machine,
			Tutor:   record.Tutor,
			Egg:     record.Egg,
		}
		for _, entry := range record.LevelUp {
			set.LevelUp = append(set.LevelUp, source.LevelUpMove{Move: entry.Move, Level: entry.Level})
		}
		if err := store.ReplaceLearnSet(ctx, version, record.Species, record.Form, set); err != nil {
			return err
		}
	}
	return nil
}
