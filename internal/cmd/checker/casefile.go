package checker

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/louisbranch/learnset/internal/legality"
	"github.com/louisbranch/learnset/internal/legality/source"
)

// caseStage is one evolutionary stage in a case file.
type caseStage struct {
	Species int `yaml:"species"`
	Form    int `yaml:"form"`
}

// caseHistory lists the stages occupied in one generation.
type caseHistory struct {
	Generation int         `yaml:"generation"`
	Stages     []caseStage `yaml:"stages"`
}

// caseEncounter describes the origin encounter in a case file.
type caseEncounter struct {
	Kind         string `yaml:"kind"`
	Generation   int    `yaml:"generation"`
	Species      int    `yaml:"species"`
	Form         int    `yaml:"form"`
	Version      string `yaml:"version"`
	InheritMoves bool   `yaml:"inherit_moves"`
	HatchBonus   bool   `yaml:"hatch_bonus"`
	FixedMoves   []int  `yaml:"fixed_moves"`
}

// caseFile is one legality check described in YAML.
type caseFile struct {
	Species           int            `yaml:"species"`
	Form              int            `yaml:"form"`
	Level             int            `yaml:"level"`
	OriginGeneration  int            `yaml:"origin_generation"`
	CurrentGeneration int            `yaml:"current_generation"`
	Moves             []int          `yaml:"moves"`
	History           []caseHistory  `yaml:"history"`
	Encounter         *caseEncounter `yaml:"encounter"`
	Sources           []string       `yaml:"sources"`
	AnyLevel          bool           `yaml:"any_level"`
	Candidates        []int          `yaml:"candidates"`
}

// loadCaseFile reads and decodes a YAML case file.
func loadCaseFile(path string) (caseFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return caseFile{}, fmt.Errorf("read case file: %w", err)
	}
	var cf caseFile
	if err := yaml.Unmarshal(raw, &cf); err != nil {
		return caseFile{}, fmt.Errorf("decode case file: %w", err)
	}
	if cf.Species <= 0 {
		return caseFile{}, fmt.Errorf("case file species must be positive")
	}
	if len(cf.Moves) == 0 && len(cf.Candidates) == 0 {
		return caseFile{}, fmt.Errorf("case file needs moves or candidates")
	}
	return cf, nil
}

// checkRequest maps the case file onto an engine request.
func (cf caseFile) checkRequest() (legality.CheckRequest, error) {
	flags, err := source.ParseFlags(cf.Sources)
	if err != nil {
		return legality.CheckRequest{}, err
	}

	stages := map[source.Generation][]legality.EvolutionStage{}
	for _, entry := range cf.History {
		gen := source.Generation(entry.Generation)
		for _, stage := range entry.Stages {
			stages[gen] = append(stages[gen], legality.EvolutionStage{Species: stage.Species, Form: stage.Form})
		}
	}

	var enc legality.Encounter
	if cf.Encounter != nil {
		kind, err := legality.ParseEncounterKind(cf.Encounter.Kind)
		if err != nil {
			return legality.CheckRequest{}, err
		}
		version, err := source.ParseVersion(cf.Encounter.Version)
		if err != nil {
			return legality.CheckRequest{}, err
		}
		enc = legality.Encounter{
			Kind:         kind,
			Generation:   source.Generation(cf.Encounter.Generation),
			Species:      cf.Encounter.Species,
			Form:         cf.Encounter.Form,
			Version:      version,
			InheritMoves: cf.Encounter.InheritMoves,
			HatchBonus:   cf.Encounter.HatchBonus,
			FixedMoves:   cf.Encounter.FixedMoves,
		}
	}

	option := source.OptionCurrent
	if cf.AnyLevel {
		option = source.OptionAtAnyLevel
	}

	return legality.CheckRequest{
		Creature: legality.Creature{
			Species:           cf.Species,
			Form:              cf.Form,
			Level:             cf.Level,
			OriginGeneration:  source.Generation(cf.OriginGeneration),
			CurrentGeneration: source.Generation(cf.CurrentGeneration),
		},
		History:   legality.History{Stages: stages},
		Encounter: enc,
		Moves:     cf.Moves,
		Flags:     flags,
		Option:    option,
	}, nil
}
