package legality

import "github.com/louisbranch/learnset/internal/legality/source"

// Creature is the read-only projection of the individual being checked.
// The engine never mutates it.
type Creature struct {
	Species     int
	Form        int
	AbilitySlot int
	// Level gates level-up lookups under source.OptionCurrent.
	Level int
	// OriginGeneration is the generation the creature was produced in; the
	// learn-group chain never walks past it.
	OriginGeneration source.Generation
	// CurrentGeneration anchors the start of the chain. When zero, the
	// latest generation recorded in the history is used.
	CurrentGeneration source.Generation
	OriginVersion     source.GameVersion
}

// EvolutionStage is one (species, form) configuration the creature could
// have occupied within a generation.
type EvolutionStage struct {
	Species int
	Form    int
}

// History records, per generation, every evolutionary stage the creature
// could have occupied while present in that generation's games, ordered
// earliest stage first. It is supplied by the entity-history collaborator
// and read-only here.
type History struct {
	Stages map[source.Generation][]EvolutionStage
}

// Visited reports whether the creature was ever present in gen.
func (h History) Visited(gen source.Generation) bool {
	return len(h.Stages[gen]) > 0
}

// StagesIn returns the ordered stages occupied in gen.
func (h History) StagesIn(gen source.Generation) []EvolutionStage {
	return h.Stages[gen]
}

// Latest returns the highest generation with recorded stages, or zero.
func (h History) Latest() source.Generation {
	var latest source.Generation
	for gen := range h.Stages {
		if gen > latest && len(h.Stages[gen]) > 0 {
			latest = gen
		}
	}
	return latest
}
