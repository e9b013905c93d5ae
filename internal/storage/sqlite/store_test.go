package sqlite

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/louisbranch/learnset/internal/legality/source"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "learnset.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("close store: %v", err)
		}
	})
	return store
}

// TestOpenRequiresPath ensures a blank path is rejected.
func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open("  "); err == nil {
		t.Fatalf("expected error for blank path")
	}
}

// TestLearnSetRoundTrip ensures stored learn sets load back into the
// registry unchanged.
func TestLearnSetRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	set := source.LearnSet{
		LevelUp: []source.LevelUpMove{{Move: 33, Level: 1}, {Move: 85, Level: 42}},
		Machine: []int{91},
		Tutor:   []int{57},
		Egg:     []int{129},
	}
	if err := store.UpsertSpecies(ctx, 25, source.PersonalInfo{FormCount: 1, BaseFriendship: 70}); err != nil {
		t.Fatalf("upsert species: %v", err)
	}
	if err := store.ReplaceLearnSet(ctx, source.VersionB2W2, 25, 0, set); err != nil {
		t.Fatalf("replace learnset: %v", err)
	}

	reg, err := store.LoadRegistry(ctx)
	if err != nil {
		t.Fatalf("load registry: %v", err)
	}
	loaded, ok := reg.Lookup(source.VersionB2W2, 25, 0)
	if !ok {
		t.Fatalf("expected stored learn set in registry")
	}
	if !reflect.DeepEqual(loaded, set) {
		t.Fatalf("loaded learn set = %+v, want %+v", loaded, set)
	}
	info, ok := reg.Personal(25)
	if !ok || info.BaseFriendship != 70 {
		t.Fatalf("expected species metadata, got (%+v, %v)", info, ok)
	}
}

// TestReplaceLearnSetOverwrites ensures re-importing a species+form clears
// the previous rows.
func TestReplaceLearnSetOverwrites(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.ReplaceLearnSet(ctx, source.VersionBW, 25, 0, source.LearnSet{
		Machine: []int{91, 92},
	}); err != nil {
		t.Fatalf("replace learnset: %v", err)
	}
	if err := store.ReplaceLearnSet(ctx, source.VersionBW, 25, 0, source.LearnSet{
		Machine: []int{93},
	}); err != nil {
		t.Fatalf("replace learnset again: %v", err)
	}

	reg, err := store.LoadRegistry(ctx)
	if err != nil {
		t.Fatalf("load registry: %v", err)
	}
	set, ok := reg.Lookup(source.VersionBW, 25, 0)
	if !ok {
		t.Fatalf("expected learn set in registry")
	}
	if set.HasMachine(91) || set.HasMachine(92) || !set.HasMachine(93) {
		t.Fatalf("expected only the replacement rows, got %+v", set)
	}
}

// TestReplaceLearnSetRejectsUnknownVersion ensures version labels are
// validated before writing.
func TestReplaceLearnSetRejectsUnknownVersion(t *testing.T) {
	store := openTestStore(t)
	if err := store.ReplaceLearnSet(context.Background(), source.VersionUnknown, 25, 0, source.LearnSet{}); err == nil {
		t.Fatalf("expected error for unknown version")
	}
}

// TestLoadRegistryEmptyDatabase ensures an empty database yields an empty
// registry rather than an error.
func TestLoadRegistryEmptyDatabase(t *testing.T) {
	store := openTestStore(t)
	reg, err := store.LoadRegistry(context.Background())
	if err != nil {
		t.Fatalf("load registry: %v", err)
	}
	if reg.MoveUniverse() != 0 {
		t.Fatalf("expected empty move universe, got %d", reg.MoveUniverse())
	}
}
