package legality

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/louisbranch/learnset/internal/legality/source"
)

// ErrMissingRegistry indicates the engine was built without move-source
// tables.
var ErrMissingRegistry = errors.New("move-source registry is required")

// ErrUnsupportedGeneration indicates no learn group exists for the
// generation a check starts from.
var ErrUnsupportedGeneration = errors.New("no learn group for generation")

// Engine evaluates move legality against a shared, read-only registry.
// Each check receives its own result buffer, so independent checks may run
// concurrently.
type Engine struct {
	reg    *source.Registry
	tracer trace.Tracer
}

// NewEngine builds an engine over the given registry.
func NewEngine(reg *source.Registry) (*Engine, error) {
	if reg == nil {
		return nil, ErrMissingRegistry
	}
	return &Engine{
		reg:    reg,
		tracer: otel.Tracer("learnset/legality"),
	}, nil
}

// CheckRequest carries every input for one legality check. Zero Flags
// means all source categories.
type CheckRequest struct {
	Creature  Creature
	History   History
	Encounter Encounter
	Moves     []int
	Flags     source.Flags
	Option    source.Option
}

// CheckResult is the per-slot outcome, index-aligned with the request's
// move list.
type CheckResult struct {
	Results  []MoveResult
	Resolved int
}

// Legal reports whether every slot was resolved.
func (r CheckResult) Legal() bool {
	return r.Resolved == len(r.Results)
}

// Check resolves the request's move slots across the creature's visited
// generations. Partial resolution is a valid outcome; the caller
// interprets unresolved slots as illegal moves.
func (e *Engine) Check(ctx context.Context, req CheckRequest) (CheckResult, error) {
	ctx, span := e.startSpan(ctx, "legality.check", req.Creature, len(req.Moves))
	defer span.End()

	ectx, err := e.evalContext(req)
	if err != nil {
		return CheckResult{}, err
	}

	results := make([]MoveResult, len(req.Moves))
	resolveMoves(results, req.Moves, ectx)

	resolved := 0
	for _, res := range results {
		if res.Resolved {
			resolved++
		}
	}
	span.SetAttributes(
		attribute.Int("legality.resolved", resolved),
		attribute.Bool("legality.legal", resolved == len(results)),
	)
	return CheckResult{Results: results, Resolved: resolved}, nil
}

// CanLearnRequest carries the inputs for a capability-flag query.
type CanLearnRequest struct {
	Creature  Creature
	History   History
	Encounter Encounter
	Flags     source.Flags
	Option    source.Option
}

// CanLearn populates a boolean mask, indexed by move identifier, of every
// move the creature could ever obtain given its history and encounter.
func (e *Engine) CanLearn(ctx context.Context, req CanLearnRequest) ([]bool, error) {
	ctx, span := e.startSpan(ctx, "legality.can_learn", req.Creature, 0)
	defer span.End()

	ectx, err := e.evalContext(CheckRequest{
		Creature:  req.Creature,
		History:   req.History,
		Encounter: req.Encounter,
		Flags:     req.Flags,
		Option:    req.Option,
	})
	if err != nil {
		return nil, err
	}

	mask := make([]bool, e.reg.MoveUniverse())
	resolveMask(mask, ectx)
	return mask, nil
}

func (e *Engine) evalContext(req CheckRequest) (evalContext, error) {
	flags := req.Flags
	if flags == 0 {
		flags = source.FlagAll
	}
	ectx := evalContext{
		reg:       e.reg,
		creature:  req.Creature,
		history:   req.History,
		encounter: req.Encounter,
		flags:     flags,
		option:    req.Option,
	}
	start := startGeneration(ectx)
	if groupForGeneration(start) == nil {
		return evalContext{}, fmt.Errorf("%w: %d", ErrUnsupportedGeneration, start)
	}
	return ectx, nil
}

func (e *Engine) startSpan(ctx context.Context, name string, creature Creature, moves int) (context.Context, trace.Span) {
	return e.tracer.Start(ctx, name, trace.WithAttributes(
		attribute.String("legality.invocation_id", uuid.NewString()),
		attribute.Int("legality.species", creature.Species),
		attribute.Int("legality.form", creature.Form),
		attribute.Int("legality.origin_generation", int(creature.OriginGeneration)),
		attribute.Int("legality.moves", moves),
	))
}
