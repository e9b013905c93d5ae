package source

import "testing"

// TestVersionPairCoversSupportedGenerations ensures every supported
// generation exposes an earlier/later sub-version pair.
func TestVersionPairCoversSupportedGenerations(t *testing.T) {
	tcs := []struct {
		gen     Generation
		earlier GameVersion
		later   GameVersion
	}{
		{Gen3, VersionRS, VersionEmerald},
		{Gen4, VersionDP, VersionHGSS},
		{Gen5, VersionBW, VersionB2W2},
	}
	for _, tc := range tcs {
		earlier, later, ok := VersionPair(tc.gen)
		if !ok {
			t.Fatalf("expected version pair for generation %d", tc.gen)
		}
		if earlier != tc.earlier || later != tc.later {
			t.Fatalf("generation %d pair = (%v, %v), want (%v, %v)", tc.gen, earlier, later, tc.earlier, tc.later)
		}
	}
	if _, _, ok := VersionPair(2); ok {
		t.Fatalf("expected no version pair for generation 2")
	}
}

// TestParseVersionRoundTrips ensures version labels parse back to their
// values.
func TestParseVersionRoundTrips(t *testing.T) {
	for _, v := range []GameVersion{VersionRS, VersionEmerald, VersionDP, VersionHGSS, VersionBW, VersionB2W2} {
		parsed, err := ParseVersion(v.String())
		if err != nil {
			t.Fatalf("ParseVersion(%q): %v", v.String(), err)
		}
		if parsed != v {
			t.Fatalf("ParseVersion(%q) = %v, want %v", v.String(), parsed, v)
		}
		if parsed.Generation() == 0 {
			t.Fatalf("expected %v to map to a generation", v)
		}
	}
	if _, err := ParseVersion("xy"); err == nil {
		t.Fatalf("expected error for unknown version label")
	}
}

// TestLevelUpAtHonorsCeiling ensures the level ceiling gates lookups.
func TestLevelUpAtHonorsCeiling(t *testing.T) {
	set := LearnSet{LevelUp: []LevelUpMove{{Move: 85, Level: 42}}}
	if _, ok := set.LevelUpAt(85, 10); ok {
		t.Fatalf("expected level 42 entry to be gated at ceiling 10")
	}
	level, ok := set.LevelUpAt(85, 42)
	if !ok || level != 42 {
		t.Fatalf("expected entry at ceiling 42, got (%d, %v)", level, ok)
	}
	if _, ok := set.LevelUpAt(85, -1); !ok {
		t.Fatalf("expected negative ceiling to disable gating")
	}
}

// TestRegistryLookup ensures entries are keyed by version, species, and
// form, and missing entries report not-found.
func TestRegistryLookup(t *testing.T) {
	reg := NewRegistry()
	reg.SetLearnSet(VersionB2W2, 25, 0, LearnSet{Machine: []int{85}})

	set, ok := reg.Lookup(VersionB2W2, 25, 0)
	if !ok || !set.HasMachine(85) {
		t.Fatalf("expected stored learn set, got (%+v, %v)", set, ok)
	}
	if _, ok := reg.Lookup(VersionBW, 25, 0); ok {
		t.Fatalf("expected miss for other version")
	}
	if _, ok := reg.Lookup(VersionB2W2, 25, 1); ok {
		t.Fatalf("expected miss for other form")
	}
}

// TestRegistryMoveUniverse ensures the universe tracks the highest move id
// across tables and metadata.
func TestRegistryMoveUniverse(t *testing.T) {
	reg := NewRegistry()
	if reg.MoveUniverse() != 0 {
		t.Fatalf("expected empty universe, got %d", reg.MoveUniverse())
	}
	reg.SetLearnSet(VersionBW, 25, 0, LearnSet{
		LevelUp: []LevelUpMove{{Move: 84, Level: 1}},
		Egg:     []int{91},
	})
	reg.SetPersonal(172, PersonalInfo{FormCount: 1, HatchBonusMove: 344})
	if reg.MoveUniverse() != 345 {
		t.Fatalf("expected universe 345, got %d", reg.MoveUniverse())
	}
}

// TestSetPersonalDefaultsFormCount ensures a zero form count is normalized
// to one.
func TestSetPersonalDefaultsFormCount(t *testing.T) {
	reg := NewRegistry()
	reg.SetPersonal(25, PersonalInfo{})
	info, ok := reg.Personal(25)
	if !ok || info.FormCount != 1 {
		t.Fatalf("expected form count 1, got (%+v, %v)", info, ok)
	}
}
