package source

import "fmt"

// Flags selects which learn-method categories a query consults.
type Flags uint8

const (
	FlagLevelUp Flags = 1 << iota
	FlagMachine
	FlagTutor
	FlagEgg
	FlagEncounter
)

// FlagAll consults every source category.
const FlagAll = FlagLevelUp | FlagMachine | FlagTutor | FlagEgg | FlagEncounter

// Has reports whether any of the given categories are selected.
func (f Flags) Has(categories Flags) bool {
	return f&categories != 0
}

// ParseFlags converts category labels into a flag set. An empty list
// selects every category.
func ParseFlags(labels []string) (Flags, error) {
	if len(labels) == 0 {
		return FlagAll, nil
	}
	var flags Flags
	for _, label := range labels {
		switch label {
		case "level-up":
			flags |= FlagLevelUp
		case "machine":
			flags |= FlagMachine
		case "tutor":
			flags |= FlagTutor
		case "egg":
			flags |= FlagEgg
		case "encounter":
			flags |= FlagEncounter
		case "all":
			flags |= FlagAll
		default:
			return 0, fmt.Errorf("unknown source category %q", label)
		}
	}
	return flags, nil
}
