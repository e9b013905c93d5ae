package legality

import "github.com/louisbranch/learnset/internal/legality/source"

// resolveEggMoves supplies egg-sourced explanations for slots left
// unresolved by the evolutionary-stage scan. It runs once per check, only
// for eggs laid in gen, and processes slots from last to first. Per slot
// the first matching rule applies: egg move, then inherited level-up move,
// then the species' fixed hatchling bonus. Unlike the version-fork merge,
// this pass never overwrites an already-resolved slot.
func resolveEggMoves(gen source.Generation, results []MoveResult, moves []int, ctx evalContext) {
	earlier, later, ok := source.VersionPair(gen)
	if !ok {
		return
	}
	// The sub-version the egg originated in selects the primary tables;
	// the paired sub-version still contributes to inheritance, because
	// parents can be traded across the version fork.
	selected, paired := earlier, later
	if ctx.encounter.Version == later {
		selected, paired = later, earlier
	}
	selectedSet, selectedOK := ctx.reg.Lookup(selected, ctx.encounter.Species, ctx.encounter.Form)
	pairedSet, pairedOK := ctx.reg.Lookup(paired, ctx.encounter.Species, ctx.encounter.Form)
	if !selectedOK && !pairedOK {
		return
	}
	eggSet := selectedSet
	if !selectedOK {
		eggSet = pairedSet
	}
	info, _ := ctx.reg.Personal(ctx.encounter.Species)

	for i := len(moves) - 1; i >= 0; i-- {
		if results[i].Resolved {
			continue
		}
		move := moves[i]
		switch {
		case ctx.flags.Has(source.FlagEgg) && eggSet.HasEgg(move):
			results[i] = MoveResult{Resolved: true, Method: MethodEggMove, Generation: gen}
		case ctx.encounter.InheritMoves && canInheritLevelUp(selectedSet, selectedOK, pairedSet, pairedOK, move):
			// Parents may know any of the species' level-up moves, so
			// inheritance is never gated by the hatchling's level.
			results[i] = MoveResult{Resolved: true, Method: MethodInheritLevelUp, Generation: gen}
		case ctx.encounter.HatchBonus && info.HatchBonusMove != 0 && move == info.HatchBonusMove:
			results[i] = MoveResult{Resolved: true, Method: MethodSpecialFixed, Generation: gen}
		}
	}
}

func canInheritLevelUp(selected source.LearnSet, selectedOK bool, paired source.LearnSet, pairedOK bool, move int) bool {
	if selectedOK {
		if _, ok := selected.LevelUpAt(move, -1); ok {
			return true
		}
	}
	if pairedOK {
		if _, ok := paired.LevelUpAt(move, -1); ok {
			return true
		}
	}
	return false
}
