package names

import (
	"testing"
	"testing/fstest"
)

// TestLoadRequiresBaseLocale ensures catalogs without the base locale are
// rejected.
func TestLoadRequiresBaseLocale(t *testing.T) {
	catalogFS := fstest.MapFS{
		"locales/pt-BR.yaml": &fstest.MapFile{Data: []byte("moves:\n  33: Investida\n")},
	}
	if _, err := LoadFromFS(catalogFS); err == nil {
		t.Fatalf("expected error for missing base locale")
	}
}

// TestMatchResolvesRegionlessLocales ensures partial tags match their
// regional catalog.
func TestMatchResolvesRegionlessLocales(t *testing.T) {
	catalog, err := Load()
	if err != nil {
		t.Fatalf("load catalogs: %v", err)
	}
	if got := catalog.Match("pt"); got != "pt-BR" {
		t.Fatalf("Match(pt) = %q, want pt-BR", got)
	}
	if got := catalog.Match("ja"); got != BaseLocale {
		t.Fatalf("Match(ja) = %q, want %q", got, BaseLocale)
	}
	if got := catalog.Match("not a tag"); got != BaseLocale {
		t.Fatalf("Match(invalid) = %q, want %q", got, BaseLocale)
	}
}

// TestMoveNameFallsBack ensures lookups fall back to the base locale and
// then a placeholder.
func TestMoveNameFallsBack(t *testing.T) {
	catalog, err := Load()
	if err != nil {
		t.Fatalf("load catalogs: %v", err)
	}
	if got := catalog.MoveName("pt-BR", 33); got != "Investida" {
		t.Fatalf("MoveName(pt-BR, 33) = %q, want Investida", got)
	}
	if got := catalog.MoveName("ja", 33); got != "Tackle" {
		t.Fatalf("MoveName(ja, 33) = %q, want Tackle", got)
	}
	if got := catalog.MoveName("en-US", 9999); got != "move #9999" {
		t.Fatalf("MoveName(en-US, 9999) = %q, want placeholder", got)
	}
}

// TestSpeciesName ensures species lookups resolve like move lookups.
func TestSpeciesName(t *testing.T) {
	catalog, err := Load()
	if err != nil {
		t.Fatalf("load catalogs: %v", err)
	}
	if got := catalog.SpeciesName("en", 25); got != "Pikachu" {
		t.Fatalf("SpeciesName(en, 25) = %q, want Pikachu", got)
	}
	if got := catalog.SpeciesName("en", 9999); got != "species #9999" {
		t.Fatalf("SpeciesName(en, 9999) = %q, want placeholder", got)
	}
}
