// Package sqlite persists move-source tables in SQLite and loads them into
// the in-memory registry consulted by legality checks.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/louisbranch/learnset/internal/legality/source"
	"github.com/louisbranch/learnset/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/learnset/internal/storage/sqlite/migrations"
)

// Learn method labels as stored in the learnset_moves table.
const (
	methodLevelUp = "level-up"
	methodMachine = "machine"
	methodTutor   = "tutor"
	methodEgg     = "egg"
)

// Store holds the SQLite handle for the learnset database.
type Store struct {
	sqlDB *sql.DB
}

// Open opens the learnset database and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// UpsertSpecies records the metadata for one species.
func (s *Store) UpsertSpecies(ctx context.Context, id int, info source.PersonalInfo) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if id <= 0 {
		return fmt.Errorf("species id must be positive")
	}
	formCount := info.FormCount
	if formCount < 1 {
		formCount = 1
	}
	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO species (id, form_count, base_friendship, scan_all_forms, hatch_bonus_move)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   form_count = excluded.form_count,
		   base_friendship = excluded.base_friendship,
		   scan_all_forms = excluded.scan_all_forms,
		   hatch_bonus_move = excluded.hatch_bonus_move`,
		id,
		formCount,
		info.BaseFriendship,
		boolToInt(info.ScanAllForms),
		info.HatchBonusMove,
	)
	if err != nil {
		return fmt.Errorf("upsert species %d: %w", id, err)
	}
	return nil
}

// ReplaceLearnSet replaces every stored move for a species+form in one
// version with the given learn set.
func (s *Store) ReplaceLearnSet(ctx context.Context, version source.GameVersion, species, form int, set source.LearnSet) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if species <= 0 {
		return fmt.Errorf("species id must be positive")
	}
	if version.Generation() == 0 {
		return fmt.Errorf("unknown game version %d", version)
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin learnset transaction: %w", err)
	}

	if _, err := tx.ExecContext(
		ctx,
		`DELETE FROM learnset_moves WHERE version = ? AND species = ? AND form = ?`,
		version.String(), species, form,
	); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("clear learnset: %w", err)
	}

	insert := func(method string, move, level int) error {
		_, err := tx.ExecContext(
			ctx,
			`INSERT INTO learnset_moves (version, species, form, method, move, level)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			version.String(), species, form, method, move, level,
		)
		return err
	}
	for _, entry := range set.LevelUp {
		if err := insert(methodLevelUp, entry.Move, entry.Level); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert level-up move: %w", err)
		}
	}
	for method, moves := range map[string][]int{
		methodMachine: set.Machine,
		methodTutor:   set.Tutor,
		methodEgg:     set.Egg,
	} {
		for _, move := range moves {
			if err := insert(method, move, 0); err != nil {
				_ = tx.Rollback()
				return fmt.Errorf("insert %s move: %w", method, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit learnset: %w", err)
	}
	return nil
}

// LoadRegistry reads every stored table into a fresh in-memory registry.
// The registry is treated as immutable once returned.
func (s *Store) LoadRegistry(ctx context.Context) (*source.Registry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	reg := source.NewRegistry()

	speciesRows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT id, form_count, base_friendship, scan_all_forms, hatch_bonus_move FROM species`,
	)
	if err != nil {
		return nil, fmt.Errorf("query species: %w", err)
	}
	defer speciesRows.Close()
	for speciesRows.Next() {
		var id, formCount, friendship, scanAll, hatchBonus int
		if err := speciesRows.Scan(&id, &formCount, &friendship, &scanAll, &hatchBonus); err != nil {
			return nil, fmt.Errorf("scan species row: %w", err)
		}
		reg.SetPersonal(id, source.PersonalInfo{
			FormCount:      formCount,
			BaseFriendship: friendship,
			ScanAllForms:   scanAll != 0,
			HatchBonusMove: hatchBonus,
		})
	}
	if err := speciesRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate species rows: %w", err)
	}

	moveRows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT version, species, form, method, move, level
		 FROM learnset_moves
		 ORDER BY version, species, form, method, level, move`,
	)
	if err != nil {
		return nil, fmt.Errorf("query learnset moves: %w", err)
	}
	defer moveRows.Close()

	type setKey struct {
		version source.GameVersion
		species int
		form    int
	}
	sets := map[setKey]*source.LearnSet{}
	var order []setKey

	for moveRows.Next() {
		var versionLabel, method string
		var speciesID, form, move, level int
		if err := moveRows.Scan(&versionLabel, &speciesID, &form, &method, &move, &level); err != nil {
			return nil, fmt.Errorf("scan learnset row: %w", err)
		}
		version, err := source.ParseVersion(versionLabel)
		if err != nil {
			return nil, fmt.Errorf("load learnset row: %w", err)
		}
		key := setKey{version: version, species: speciesID, form: form}
		set, ok := sets[key]
		if !ok {
			set = &source.LearnSet{}
			sets[key] = set
			order = append(order, key)
		}
		switch method {
		case methodLevelUp:
			set.LevelUp = append(set.LevelUp, source.LevelUpMove{Move: move, Level: level})
		case methodMachine:
			set.Machine = append(set.Machine, move)
		case methodTutor:
			set.Tutor = append(set.Tutor, move)
		case methodEgg:
			set.Egg = append(set.Egg, move)
		default:
			return nil, fmt.Errorf("unknown learn method %q", method)
		}
	}
	if err := moveRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate learnset rows: %w", err)
	}

	for _, key := range order {
		reg.SetLearnSet(key.version, key.species, key.form, *sets[key])
	}
	return reg, nil
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}
