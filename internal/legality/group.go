package legality

import "github.com/louisbranch/learnset/internal/legality/source"

// learnGroup evaluates move legality against a single generation's tables.
// Groups form a dispatch chain: each knows how to hand off to the most
// recent earlier generation the creature could have visited.
type learnGroup interface {
	Generation() source.Generation
	// HasVisited reports whether the history records presence in this
	// group's generation.
	HasVisited(history History) bool
	// Previous returns the group for the most recent earlier generation,
	// or nil once the origin generation has been evaluated or no earlier
	// generation applies.
	Previous(creature Creature, history History, encounter Encounter) learnGroup
	// Evaluate attempts to explain every still-unresolved slot using this
	// generation's learn methods.
	Evaluate(results []MoveResult, moves []int, ctx evalContext)
	// EvaluateMask marks every move obtainable in this generation.
	EvaluateMask(mask []bool, ctx evalContext)
}

// evalContext carries the per-check inputs shared by every group in one
// chain walk.
type evalContext struct {
	reg       *source.Registry
	creature  Creature
	history   History
	encounter Encounter
	flags     source.Flags
	option    source.Option
}

// The supported groups are a closed set; each is a thin tag over the
// shared generation evaluation body.
type (
	learnGroup3 struct{}
	learnGroup4 struct{}
	learnGroup5 struct{}
)

func (learnGroup3) Generation() source.Generation { return source.Gen3 }
func (learnGroup4) Generation() source.Generation { return source.Gen4 }
func (learnGroup5) Generation() source.Generation { return source.Gen5 }

func (g learnGroup3) HasVisited(h History) bool { return h.Visited(g.Generation()) }
func (g learnGroup4) HasVisited(h History) bool { return h.Visited(g.Generation()) }
func (g learnGroup5) HasVisited(h History) bool { return h.Visited(g.Generation()) }

// Generation 3 accepts no inbound transfers, so its group never has a
// predecessor.
func (learnGroup3) Previous(Creature, History, Encounter) learnGroup { return nil }

func (g learnGroup4) Previous(c Creature, h History, e Encounter) learnGroup {
	return previousGroup(g.Generation(), c)
}

func (g learnGroup5) Previous(c Creature, h History, e Encounter) learnGroup {
	return previousGroup(g.Generation(), c)
}

func (g learnGroup3) Evaluate(results []MoveResult, moves []int, ctx evalContext) {
	evaluateGeneration(g.Generation(), results, moves, ctx)
}

func (g learnGroup4) Evaluate(results []MoveResult, moves []int, ctx evalContext) {
	evaluateGeneration(g.Generation(), results, moves, ctx)
}

func (g learnGroup5) Evaluate(results []MoveResult, moves []int, ctx evalContext) {
	evaluateGeneration(g.Generation(), results, moves, ctx)
}

func (g learnGroup3) EvaluateMask(mask []bool, ctx evalContext) {
	evaluateGenerationMask(g.Generation(), mask, ctx)
}

func (g learnGroup4) EvaluateMask(mask []bool, ctx evalContext) {
	evaluateGenerationMask(g.Generation(), mask, ctx)
}

func (g learnGroup5) EvaluateMask(mask []bool, ctx evalContext) {
	evaluateGenerationMask(g.Generation(), mask, ctx)
}

// groupForGeneration selects the learn group for gen, or nil when the
// generation is unsupported.
func groupForGeneration(gen source.Generation) learnGroup {
	switch gen {
	case source.Gen3:
		return learnGroup3{}
	case source.Gen4:
		return learnGroup4{}
	case source.Gen5:
		return learnGroup5{}
	default:
		return nil
	}
}

// previousGroup hands off to the next earlier generation, stopping once the
// creature's origin generation has been evaluated. Termination is
// guaranteed: generation numbers strictly decrease and are bounded below.
func previousGroup(gen source.Generation, creature Creature) learnGroup {
	if creature.OriginGeneration >= gen {
		return nil
	}
	return groupForGeneration(gen - 1)
}

// resolveMoves is the chain dispatcher: starting from the creature's
// current generation, it invokes each group's evaluation in turn until the
// history is exhausted or the chain ends. Partial resolution is a valid
// outcome.
func resolveMoves(results []MoveResult, moves []int, ctx evalContext) {
	g := groupForGeneration(startGeneration(ctx))
	for g != nil && g.HasVisited(ctx.history) {
		g.Evaluate(results, moves, ctx)
		g = g.Previous(ctx.creature, ctx.history, ctx.encounter)
	}
}

// resolveMask is the capability-flag variant of the chain walk: it marks
// every move obtainable at any visited stage instead of checking a fixed
// slot list. No provenance is recorded.
func resolveMask(mask []bool, ctx evalContext) {
	g := groupForGeneration(startGeneration(ctx))
	for g != nil && g.HasVisited(ctx.history) {
		g.EvaluateMask(mask, ctx)
		g = g.Previous(ctx.creature, ctx.history, ctx.encounter)
	}
}

func startGeneration(ctx evalContext) source.Generation {
	if ctx.creature.CurrentGeneration != 0 {
		return ctx.creature.CurrentGeneration
	}
	return ctx.history.Latest()
}
