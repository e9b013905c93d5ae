package legality

import "github.com/louisbranch/learnset/internal/legality/source"

// LearnMethod is the category that explained a move slot.
type LearnMethod int

const (
	MethodUnresolved LearnMethod = iota
	MethodLevelUp
	MethodMachine
	MethodTutor
	MethodEggMove
	MethodInheritLevelUp
	MethodSpecialFixed
	MethodEncounter
)

func (m LearnMethod) String() string {
	switch m {
	case MethodLevelUp:
		return "level-up"
	case MethodMachine:
		return "machine"
	case MethodTutor:
		return "tutor"
	case MethodEggMove:
		return "egg-move"
	case MethodInheritLevelUp:
		return "inherited-level-up"
	case MethodSpecialFixed:
		return "special-fixed"
	case MethodEncounter:
		return "encounter"
	default:
		return "unresolved"
	}
}

// MoveResult is the outcome for one move slot. A slot transitions at most
// once from unresolved to resolved and never back; within a single
// generation's version-fork comparison the recorded provenance of an
// already-resolved slot may still be overwritten (see the evaluation
// merge rule).
type MoveResult struct {
	Resolved   bool
	Method     LearnMethod
	Stage      int
	Generation source.Generation
}
