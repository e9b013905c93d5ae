package legality

import "github.com/louisbranch/learnset/internal/legality/source"

// evaluateGenerationMask is the capability-flag variant of the generation
// evaluation: it marks every move present in the applicable tables for any
// stage and candidate form, plus moves granted by the origin encounter
// when it belongs to this generation. Presence is boolean only.
func evaluateGenerationMask(gen source.Generation, mask []bool, ctx evalContext) {
	earlier, later, ok := source.VersionPair(gen)
	if !ok {
		return
	}
	maxLevel := levelCeiling(ctx)

	for _, stage := range ctx.history.StagesIn(gen) {
		for _, form := range candidateForms(ctx.reg, stage) {
			for _, version := range []source.GameVersion{later, earlier} {
				set, found := ctx.reg.Lookup(version, stage.Species, form)
				if !found {
					continue
				}
				markLearnSet(mask, set, ctx.flags, maxLevel)
			}
		}
	}

	if ctx.encounter.Generation != gen || !ctx.flags.Has(source.FlagEncounter) {
		return
	}
	for _, move := range ctx.encounter.FixedMoves {
		markMove(mask, move)
	}
	if ctx.encounter.IsEgg() {
		markEggMoves(gen, mask, ctx)
	}
}

// markEggMoves marks egg-sourced moves with the same version selection and
// eligibility rules as the egg resolver.
func markEggMoves(gen source.Generation, mask []bool, ctx evalContext) {
	earlier, later, ok := source.VersionPair(gen)
	if !ok {
		return
	}
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
	if ctx.flags.Has(source.FlagEgg) {
		for _, move := range eggSet.Egg {
			markMove(mask, move)
		}
	}
	if ctx.encounter.InheritMoves {
		for _, set := range []struct {
			ls source.LearnSet
			ok bool
		}{{selectedSet, selectedOK}, {pairedSet, pairedOK}} {
			if !set.ok {
				continue
			}
			for _, entry := range set.ls.LevelUp {
				markMove(mask, entry.Move)
			}
		}
	}
	if ctx.encounter.HatchBonus {
		if info, ok := ctx.reg.Personal(ctx.encounter.Species); ok && info.HatchBonusMove != 0 {
			markMove(mask, info.HatchBonusMove)
		}
	}
}

func markLearnSet(mask []bool, set source.LearnSet, flags source.Flags, maxLevel int) {
	if flags.Has(source.FlagLevelUp) {
		for _, entry := range set.LevelUp {
			if maxLevel >= 0 && entry.Level > maxLevel {
				continue
			}
			markMove(mask, entry.Move)
		}
	}
	if flags.Has(source.FlagMachine) {
		for _, move := range set.Machine {
			markMove(mask, move)
		}
	}
	if flags.Has(source.FlagTutor) {
		for _, move := range set.Tutor {
			markMove(mask, move)
		}
	}
}

func markMove(mask []bool, move int) {
	if move >= 0 && move < len(mask) {
		mask[move] = true
	}
}
