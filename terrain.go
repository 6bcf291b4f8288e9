package wargame

import "strconv"

// Terrain is the physical surface of a tile.
type Terrain int

const (
	Land Terrain = iota
	Water
)

func (t Terrain) String() string {
	if t == Water {
		return "Water"
	}
	return "Land"
}

// PlayerNum identifies a player. Player numbers are small, dense, and
// start at 0.
type PlayerNum int

// Alignment is who, if anyone, controls a unit or city.
type Alignment struct {
	Neutral bool
	Player  PlayerNum
}

// NeutralAlignment is the alignment of unclaimed cities.
var NeutralAlignment = Alignment{Neutral: true}

// Belligerent builds the alignment of a unit/city owned by p.
func Belligerent(p PlayerNum) Alignment {
	return Alignment{Player: p}
}

// IsFriendlyTo reports whether other is the same belligerent as a.
// Two neutral alignments are not friendly to each other: neutral things
// don't act together, they just sit unclaimed.
func (a Alignment) IsFriendlyTo(other Alignment) bool {
	if a.Neutral || other.Neutral {
		return false
	}
	return a.Player == other.Player
}

// IsEnemyTo reports whether other is an enemy of a: anything that isn't
// the exact same belligerent, including neutral.
func (a Alignment) IsEnemyTo(other Alignment) bool {
	return !a.IsFriendlyTo(other)
}

func (a Alignment) String() string {
	if a.Neutral {
		return "Neutral"
	}
	return "Player" + strconv.Itoa(int(a.Player))
}
