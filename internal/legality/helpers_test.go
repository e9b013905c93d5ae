package legality

import "github.com/louisbranch/learnset/internal/legality/source"

// Shared fixture identifiers for the legality tests. The species form a
// two-stage evolution line plus a multi-form species; the moves cover every
// learn method.
const (
	speciesBaby  = 172
	speciesBasic = 25
	speciesShift = 585

	moveTackle    = 33
	moveGrowl     = 45
	moveShock     = 84
	moveBolt      = 85
	moveDig       = 91
	moveLeafStorm = 437
	moveVoltSurge = 344
)

// levelUp builds a level-up list from (move, level) pairs.
func levelUp(pairs ...int) []source.LevelUpMove {
	entries := make([]source.LevelUpMove, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		entries = append(entries, source.LevelUpMove{Move: pairs[i], Level: pairs[i+1]})
	}
	return entries
}

// runCheck drives the chain dispatcher directly with a fresh buffer.
func runCheck(reg *source.Registry, creature Creature, history History, enc Encounter, moves []int, flags source.Flags, opt source.Option) []MoveResult {
	results := make([]MoveResult, len(moves))
	resolveMoves(results, moves, evalContext{
		reg:       reg,
		creature:  creature,
		history:   history,
		encounter: enc,
		flags:     flags,
		option:    opt,
	})
	return results
}

// runMask drives the capability-flag variant with a fresh mask.
func runMask(reg *source.Registry, creature Creature, history History, enc Encounter, flags source.Flags, opt source.Option) []bool {
	mask := make([]bool, reg.MoveUniverse())
	resolveMask(mask, evalContext{
		reg:       reg,
		creature:  creature,
		history:   history,
		encounter: enc,
		flags:     flags,
		option:    opt,
	})
	return mask
}

// singleStage returns a history occupying one stage in each given
// generation.
func singleStage(species, form int, gens ...source.Generation) History {
	stages := map[source.Generation][]EvolutionStage{}
	for _, gen := range gens {
		stages[gen] = []EvolutionStage{{Species: species, Form: form}}
	}
	return History{Stages: stages}
}
