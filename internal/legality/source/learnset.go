package source

// LevelUpMove is one level-up table entry: a move and the minimum level at
// which it is learned.
type LevelUpMove struct {
	Move  int
	Level int
}

// LearnSet holds every move a species+form can learn in one game version,
// grouped by learn method.
type LearnSet struct {
	LevelUp []LevelUpMove
	Machine []int
	Tutor   []int
	Egg     []int
}

// LevelUpAt returns the minimum level at which move appears in the level-up
// table, honoring maxLevel as a ceiling. A negative maxLevel disables the
// ceiling.
func (ls LearnSet) LevelUpAt(move, maxLevel int) (int, bool) {
	for _, entry := range ls.LevelUp {
		if entry.Move != move {
			continue
		}
		if maxLevel >= 0 && entry.Level > maxLevel {
			continue
		}
		return entry.Level, true
	}
	return 0, false
}

// HasMachine reports whether move is teachable by machine.
func (ls LearnSet) HasMachine(move int) bool {
	return containsMove(ls.Machine, move)
}

// HasTutor reports whether move is teachable by tutor.
func (ls LearnSet) HasTutor(move int) bool {
	return containsMove(ls.Tutor, move)
}

// HasEgg reports whether move is inheritable as an egg move.
func (ls LearnSet) HasEgg(move int) bool {
	return containsMove(ls.Egg, move)
}

func containsMove(moves []int, move int) bool {
	for _, m := range moves {
		if m == move {
			return true
		}
	}
	return false
}
