package source

// PersonalInfo is the per-species metadata consulted while expanding
// lookups. ScanAllForms marks species whose level-up legality must be
// checked against every form index, because the creature could have held
// any of those forms while learning a move.
type PersonalInfo struct {
	FormCount      int
	BaseFriendship int
	ScanAllForms   bool
	// HatchBonusMove is the species' fixed hatchling bonus move, or zero
	// when the species has none.
	HatchBonusMove int
}

type tableKey struct {
	species int
	form    int
}

// Registry is the process-wide collection of move-source tables. It is
// populated once during startup and read-only afterwards.
type Registry struct {
	tables       map[GameVersion]map[tableKey]LearnSet
	personal     map[int]PersonalInfo
	moveUniverse int
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		tables:   make(map[GameVersion]map[tableKey]LearnSet),
		personal: make(map[int]PersonalInfo),
	}
}

// SetPersonal records the metadata for one species.
func (r *Registry) SetPersonal(species int, info PersonalInfo) {
	if info.FormCount < 1 {
		info.FormCount = 1
	}
	r.personal[species] = info
	r.trackMove(info.HatchBonusMove)
}

// SetLearnSet records the learn set for a species+form in one version.
func (r *Registry) SetLearnSet(version GameVersion, species, form int, set LearnSet) {
	table, ok := r.tables[version]
	if !ok {
		table = make(map[tableKey]LearnSet)
		r.tables[version] = table
	}
	table[tableKey{species: species, form: form}] = set

	for _, entry := range set.LevelUp {
		r.trackMove(entry.Move)
	}
	for _, group := range [][]int{set.Machine, set.Tutor, set.Egg} {
		for _, move := range group {
			r.trackMove(move)
		}
	}
}

// Lookup returns the learn set for a species+form in one version. A missing
// entry reports not-found; it never fails the surrounding check.
func (r *Registry) Lookup(version GameVersion, species, form int) (LearnSet, bool) {
	table, ok := r.tables[version]
	if !ok {
		return LearnSet{}, false
	}
	set, ok := table[tableKey{species: species, form: form}]
	return set, ok
}

// Personal returns the metadata for a species.
func (r *Registry) Personal(species int) (PersonalInfo, bool) {
	info, ok := r.personal[species]
	return info, ok
}

// MoveUniverse is the size of the move identifier universe: one greater
// than the highest move id recorded in any table. Capability masks are
// indexed by it.
func (r *Registry) MoveUniverse() int {
	return r.moveUniverse
}

func (r *Registry) trackMove(move int) {
	if move >= r.moveUniverse {
		r.moveUniverse = move + 1
	}
}
