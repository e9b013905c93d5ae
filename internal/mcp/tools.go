package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/louisbranch/learnset/internal/legality"
	"github.com/louisbranch/learnset/internal/legality/source"
	"github.com/louisbranch/learnset/internal/platform/i18n/names"
)

// StageInput is one evolutionary stage within a generation.
type StageInput struct {
	Species int `json:"species" jsonschema:"species identifier"`
	Form    int `json:"form" jsonschema:"form index"`
}

// HistoryInput lists the stages occupied in one generation, earliest
// first.
type HistoryInput struct {
	Generation int          `json:"generation" jsonschema:"generation number"`
	Stages     []StageInput `json:"stages" jsonschema:"stages occupied in this generation"`
}

// EncounterInput describes the origin encounter.
type EncounterInput struct {
	Kind         string `json:"kind" jsonschema:"encounter kind: wild, static, egg, or trade"`
	Generation   int    `json:"generation" jsonschema:"generation the encounter belongs to"`
	Species      int    `json:"species" jsonschema:"encountered species"`
	Form         int    `json:"form" jsonschema:"encountered form"`
	Version      string `json:"version" jsonschema:"originating game version label"`
	InheritMoves bool   `json:"inherit_moves,omitempty" jsonschema:"whether egg moves may be inherited from parents"`
	HatchBonus   bool   `json:"hatch_bonus,omitempty" jsonschema:"whether the hatchling bonus move applies"`
	FixedMoves   []int  `json:"fixed_moves,omitempty" jsonschema:"moves granted directly by the encounter"`
}

// CheckMovesInput is the MCP tool input for a legality check.
type CheckMovesInput struct {
	Species           int             `json:"species" jsonschema:"species identifier"`
	Form              int             `json:"form" jsonschema:"current form index"`
	Level             int             `json:"level" jsonschema:"current level"`
	OriginGeneration  int             `json:"origin_generation" jsonschema:"generation the creature was produced in"`
	CurrentGeneration int             `json:"current_generation,omitempty" jsonschema:"generation the creature currently lives in; defaults to the latest in the history"`
	Moves             []int           `json:"moves" jsonschema:"move identifiers to validate, in slot order"`
	History           []HistoryInput  `json:"history" jsonschema:"per-generation evolutionary history"`
	Encounter         *EncounterInput `json:"encounter,omitempty" jsonschema:"origin encounter descriptor"`
	Sources           []string        `json:"sources,omitempty" jsonschema:"learn-method categories to consult; empty means all"`
	AnyLevel          bool            `json:"any_level,omitempty" jsonschema:"resolve level-up moves above the current level"`
	Locale            string          `json:"locale,omitempty" jsonschema:"locale for display names"`
}

// SlotResult is the outcome for one move slot.
type SlotResult struct {
	Move       int    `json:"move" jsonschema:"move identifier"`
	Name       string `json:"name" jsonschema:"localized move name"`
	Resolved   bool   `json:"resolved" jsonschema:"whether the move is explainable"`
	Method     string `json:"method" jsonschema:"learn method that explained the move"`
	Generation int    `json:"generation,omitempty" jsonschema:"generation that explained the move"`
	Stage      int    `json:"stage,omitempty" jsonschema:"evolutionary stage index that explained the move"`
}

// CheckMovesResult is the MCP tool output for a legality check.
type CheckMovesResult struct {
	Species string       `json:"species" jsonschema:"localized species name"`
	Legal   bool         `json:"legal" jsonschema:"whether every move slot was resolved"`
	Results []SlotResult `json:"results" jsonschema:"per-slot outcomes, index-aligned with the input moves"`
}

// CanLearnInput is the MCP tool input for a capability query.
type CanLearnInput struct {
	Species           int             `json:"species" jsonschema:"species identifier"`
	Form              int             `json:"form" jsonschema:"current form index"`
	Level             int             `json:"level" jsonschema:"current level"`
	OriginGeneration  int             `json:"origin_generation" jsonschema:"generation the creature was produced in"`
	CurrentGeneration int             `json:"current_generation,omitempty" jsonschema:"generation the creature currently lives in"`
	Moves             []int           `json:"moves" jsonschema:"candidate move identifiers to test"`
	History           []HistoryInput  `json:"history" jsonschema:"per-generation evolutionary history"`
	Encounter         *EncounterInput `json:"encounter,omitempty" jsonschema:"origin encounter descriptor"`
	Sources           []string        `json:"sources,omitempty" jsonschema:"learn-method categories to consult; empty means all"`
	AnyLevel          bool            `json:"any_level,omitempty" jsonschema:"mark level-up moves above the current level"`
}

// CanLearnResult is the MCP tool output for a capability query.
type CanLearnResult struct {
	Moves      []int  `json:"moves" jsonschema:"candidate move identifiers"`
	Obtainable []bool `json:"obtainable" jsonschema:"whether each candidate is obtainable, index-aligned"`
}

// checkMovesTool defines the MCP tool schema for legality checks.
func checkMovesTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "check_moves",
		Description: "Checks whether a creature's moves are legally obtainable",
	}
}

// canLearnTool defines the MCP tool schema for capability queries.
func canLearnTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "can_learn",
		Description: "Reports which moves a creature could ever obtain",
	}
}

// checkMovesHandler executes a legality check.
func checkMovesHandler(engine *legality.Engine, catalog *names.Catalog) mcp.ToolHandlerFor[CheckMovesInput, CheckMovesResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CheckMovesInput) (*mcp.CallToolResult, CheckMovesResult, error) {
		req, err := buildCheckRequest(input.Species, input.Form, input.Level, input.OriginGeneration, input.CurrentGeneration, input.History, input.Encounter, input.Sources, input.AnyLevel)
		if err != nil {
			return nil, CheckMovesResult{}, err
		}
		req.Moves = input.Moves

		checked, err := engine.Check(ctx, req)
		if err != nil {
			return nil, CheckMovesResult{}, fmt.Errorf("legality check failed: %w", err)
		}

		result := CheckMovesResult{
			Species: catalog.SpeciesName(input.Locale, input.Species),
			Legal:   checked.Legal(),
			Results: make([]SlotResult, len(checked.Results)),
		}
		for i, slot := range checked.Results {
			result.Results[i] = SlotResult{
				Move:       input.Moves[i],
				Name:       catalog.MoveName(input.Locale, input.Moves[i]),
				Resolved:   slot.Resolved,
				Method:     slot.Method.String(),
				Generation: int(slot.Generation),
				Stage:      slot.Stage,
			}
		}
		return nil, result, nil
	}
}

// canLearnHandler executes a capability query.
func canLearnHandler(engine *legality.Engine) mcp.ToolHandlerFor[CanLearnInput, CanLearnResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CanLearnInput) (*mcp.CallToolResult, CanLearnResult, error) {
		req, err := buildCheckRequest(input.Species, input.Form, input.Level, input.OriginGeneration, input.CurrentGeneration, input.History, input.Encounter, input.Sources, input.AnyLevel)
		if err != nil {
			return nil, CanLearnResult{}, err
		}

		mask, err := engine.CanLearn(ctx, legality.CanLearnRequest{
			Creature:  req.Creature,
			History:   req.History,
			Encounter: req.Encounter,
			Flags:     req.Flags,
			Option:    req.Option,
		})
		if err != nil {
			return nil, CanLearnResult{}, fmt.Errorf("capability query failed: %w", err)
		}

		result := CanLearnResult{
			Moves:      input.Moves,
			Obtainable: make([]bool, len(input.Moves)),
		}
		for i, move := range input.Moves {
			result.Obtainable[i] = move >= 0 && move < len(mask) && mask[move]
		}
		return nil, result, nil
	}
}

// buildCheckRequest maps the shared tool input fields onto an engine
// request.
func buildCheckRequest(species, form, level, originGen, currentGen int, history []HistoryInput, encounter *EncounterInput, sources []string, anyLevel bool) (legality.CheckRequest, error) {
	flags, err := source.ParseFlags(sources)
	if err != nil {
		return legality.CheckRequest{}, err
	}

	stages := map[source.Generation][]legality.EvolutionStage{}
	for _, entry := range history {
		gen := source.Generation(entry.Generation)
		for _, stage := range entry.Stages {
			stages[gen] = append(stages[gen], legality.EvolutionStage{Species: stage.Species, Form: stage.Form})
		}
	}

	var enc legality.Encounter
	if encounter != nil {
		kind, err := legality.ParseEncounterKind(encounter.Kind)
		if err != nil {
			return legality.CheckRequest{}, err
		}
		version, err := source.ParseVersion(encounter.Version)
		if err != nil {
			return legality.CheckRequest{}, err
		}
		enc = legality.Encounter{
			Kind:         kind,
			Generation:   source.Generation(encounter.Generation),
			Species:      encounter.Species,
			Form:         encounter.Form,
			Version:      version,
			InheritMoves: encounter.InheritMoves,
			HatchBonus:   encounter.HatchBonus,
			FixedMoves:   encounter.FixedMoves,
		}
	}

	option := source.OptionCurrent
	if anyLevel {
		option = source.OptionAtAnyLevel
	}

	return legality.CheckRequest{
		Creature: legality.Creature{
			Species:           species,
			Form:              form,
			Level:             level,
			OriginGeneration:  source.Generation(originGen),
			CurrentGeneration: source.Generation(currentGen),
		},
		History:   legality.History{Stages: stages},
		Encounter: enc,
		Flags:     flags,
		Option:    option,
	}, nil
}
