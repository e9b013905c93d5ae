package source

import "fmt"

// Generation numbers an era of the game series. Each supported generation
// carries a pair of sub-versions that share machine, tutor, and egg tables
// but may diverge in their level-up tables.
type Generation int

// Supported generations. Generation 3 accepts no inbound transfers, so it
// terminates every learn-group chain.
const (
	Gen3 Generation = 3
	Gen4 Generation = 4
	Gen5 Generation = 5
)

// GameVersion identifies one sub-version of a generation.
type GameVersion int

const (
	VersionUnknown GameVersion = iota
	VersionRS
	VersionEmerald
	VersionDP
	VersionHGSS
	VersionBW
	VersionB2W2
)

// Generation returns the generation a version belongs to.
func (v GameVersion) Generation() Generation {
	switch v {
	case VersionRS, VersionEmerald:
		return Gen3
	case VersionDP, VersionHGSS:
		return Gen4
	case VersionBW, VersionB2W2:
		return Gen5
	default:
		return 0
	}
}

func (v GameVersion) String() string {
	switch v {
	case VersionRS:
		return "rs"
	case VersionEmerald:
		return "emerald"
	case VersionDP:
		return "dp"
	case VersionHGSS:
		return "hgss"
	case VersionBW:
		return "bw"
	case VersionB2W2:
		return "b2w2"
	default:
		return "unknown"
	}
}

// ParseVersion converts a version label back into a GameVersion.
func ParseVersion(label string) (GameVersion, error) {
	for _, v := range []GameVersion{VersionRS, VersionEmerald, VersionDP, VersionHGSS, VersionBW, VersionB2W2} {
		if v.String() == label {
			return v, nil
		}
	}
	return VersionUnknown, fmt.Errorf("unknown game version %q", label)
}

// VersionPair returns the earlier and later sub-versions of a generation.
// The later sub-version carries the full move tables; the earlier one may
// diverge only in its level-up table.
func VersionPair(gen Generation) (earlier, later GameVersion, ok bool) {
	switch gen {
	case Gen3:
		return VersionRS, VersionEmerald, true
	case Gen4:
		return VersionDP, VersionHGSS, true
	case Gen5:
		return VersionBW, VersionB2W2, true
	default:
		return VersionUnknown, VersionUnknown, false
	}
}
