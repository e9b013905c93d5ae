package source

// Option controls whether resolution uses the creature's current known
// state or a hypothetical future one. It only affects whether level-up
// entries above the creature's current level count as learnable; it is
// threaded through every lookup rather than branching the traversal.
type Option int

const (
	// OptionCurrent gates level-up entries by the creature's level.
	OptionCurrent Option = iota
	// OptionAtAnyLevel accepts level-up entries at any level.
	OptionAtAnyLevel
)
