package legality

import "github.com/louisbranch/learnset/internal/legality/source"

// evaluateGeneration attempts to explain every still-unresolved slot using
// one generation's tables: for each evolutionary stage occupied in that
// generation (earliest first), and for each candidate form at that stage,
// it queries both sub-versions of the generation.
//
// Merge rule for the version fork: the later sub-version's full table is
// queried first; a level-up match in the earlier sub-version then
// overwrites the recorded provenance unconditionally, even when the later
// sub-version already explained the slot. Last match wins within this
// comparison. The overwrite never flips a slot back to unresolved and is
// scoped to a single (stage, form, slot) comparison: slots resolved by an
// earlier stage or generation are skipped outright.
func evaluateGeneration(gen source.Generation, results []MoveResult, moves []int, ctx evalContext) {
	earlier, later, ok := source.VersionPair(gen)
	if !ok {
		return
	}
	maxLevel := levelCeiling(ctx)

	for stageIdx, stage := range ctx.history.StagesIn(gen) {
		for _, form := range candidateForms(ctx.reg, stage) {
			laterSet, laterOK := ctx.reg.Lookup(later, stage.Species, form)
			earlierSet, earlierOK := ctx.reg.Lookup(earlier, stage.Species, form)
			// A species/form absent from one sub-version is skipped for
			// that sub-version only.
			if !laterOK && !earlierOK {
				continue
			}
			for i, move := range moves {
				if results[i].Resolved {
					continue
				}
				if laterOK {
					if method, found := matchFullTable(laterSet, move, ctx.flags, maxLevel); found {
						results[i] = MoveResult{Resolved: true, Method: method, Stage: stageIdx, Generation: gen}
					}
				}
				if earlierOK && ctx.flags.Has(source.FlagLevelUp) {
					if _, found := earlierSet.LevelUpAt(move, maxLevel); found {
						results[i] = MoveResult{Resolved: true, Method: MethodLevelUp, Stage: stageIdx, Generation: gen}
					}
				}
			}
		}
	}

	if !ctx.flags.Has(source.FlagEncounter) || ctx.encounter.Generation != gen {
		return
	}
	if ctx.encounter.IsEgg() {
		resolveEggMoves(gen, results, moves, ctx)
	}
	resolveFixedMoves(gen, results, moves, ctx)
}

// resolveFixedMoves explains still-unresolved slots whose move is granted
// directly by the origin encounter.
func resolveFixedMoves(gen source.Generation, results []MoveResult, moves []int, ctx evalContext) {
	if len(ctx.encounter.FixedMoves) == 0 {
		return
	}
	for i, move := range moves {
		if results[i].Resolved {
			continue
		}
		if containsFixedMove(ctx.encounter.FixedMoves, move) {
			results[i] = MoveResult{Resolved: true, Method: MethodEncounter, Generation: gen}
		}
	}
}

func containsFixedMove(fixed []int, move int) bool {
	for _, m := range fixed {
		if m == move {
			return true
		}
	}
	return false
}

// matchFullTable checks a full learn set in method order: level-up, then
// machine, then tutor, honoring the capability flags.
func matchFullTable(set source.LearnSet, move int, flags source.Flags, maxLevel int) (LearnMethod, bool) {
	if flags.Has(source.FlagLevelUp) {
		if _, ok := set.LevelUpAt(move, maxLevel); ok {
			return MethodLevelUp, true
		}
	}
	if flags.Has(source.FlagMachine) && set.HasMachine(move) {
		return MethodMachine, true
	}
	if flags.Has(source.FlagTutor) && set.HasTutor(move) {
		return MethodTutor, true
	}
	return MethodUnresolved, false
}

// candidateForms returns the form indexes to evaluate at a stage. Species
// whose level-up legality is not pinned to the creature's current form are
// expanded to every form index; form is data, not type.
func candidateForms(reg *source.Registry, stage EvolutionStage) []int {
	info, ok := reg.Personal(stage.Species)
	if !ok || !info.ScanAllForms || info.FormCount <= 1 {
		return []int{stage.Form}
	}
	forms := make([]int, info.FormCount)
	for i := range forms {
		forms[i] = i
	}
	return forms
}

// levelCeiling translates the learn option into a level-up lookup ceiling.
func levelCeiling(ctx evalContext) int {
	if ctx.option == source.OptionAtAnyLevel {
		return -1
	}
	return ctx.creature.Level
}
