package legality

import (
	"fmt"

	"github.com/louisbranch/learnset/internal/legality/source"
)

// EncounterKind tags the event that produced the creature.
type EncounterKind int

const (
	EncounterUnknown EncounterKind = iota
	EncounterWild
	EncounterStatic
	EncounterEgg
	EncounterTrade
)

func (k EncounterKind) String() string {
	switch k {
	case EncounterWild:
		return "wild"
	case EncounterStatic:
		return "static"
	case EncounterEgg:
		return "egg"
	case EncounterTrade:
		return "trade"
	default:
		return "unknown"
	}
}

// ParseEncounterKind converts an encounter kind label back into its
// value.
func ParseEncounterKind(label string) (EncounterKind, error) {
	for _, k := range []EncounterKind{EncounterWild, EncounterStatic, EncounterEgg, EncounterTrade} {
		if k.String() == label {
			return k, nil
		}
	}
	return EncounterUnknown, fmt.Errorf("unknown encounter kind %q", label)
}

// Encounter describes the origin event and the constraints it places on
// move legality. The egg-only fields are ignored for other kinds.
type Encounter struct {
	Kind       EncounterKind
	Generation source.Generation
	Species    int
	Form       int
	Version    source.GameVersion
	// InheritMoves permits level-up moves inherited from parents.
	InheritMoves bool
	// HatchBonus flags eligibility for the species' fixed hatchling bonus
	// move.
	HatchBonus bool
	// FixedMoves are moves granted directly by the encounter itself.
	FixedMoves []int
}

// IsEgg reports whether the creature hatched from an egg.
func (e Encounter) IsEgg() bool {
	return e.Kind == EncounterEgg
}
