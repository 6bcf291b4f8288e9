package wargame

// UnitSnapshot is what an observer remembers about the unit it last saw
// occupying a tile: enough to judge friend/foe and carrying capacity
// without a live reference into the authoritative map (§3, §4.C).
type UnitSnapshot struct {
	ID             UnitID
	Type           UnitType
	Alignment      Alignment
	HP             int
	FreeCarrySpace int // meaningful only if Type.IsCarrier()
}

// CitySnapshot is what an observer remembers about the city it last saw
// occupying a tile.
type CitySnapshot struct {
	ID        CityID
	Alignment Alignment
}

// Obs is one player's observation of a single tile: either never seen,
// or a snapshot taken the moment it was last observed (§3). The
// snapshot does not update until the tile is observed again — that's
// the whole point of fog of war.
type Obs struct {
	Observed   bool
	Tile       Tile
	Unit       *UnitSnapshot
	City       *CitySnapshot
	TurnNumber int
	Current    bool // true iff observed again this turn
}

// Unobserved is the zero-value Obs: Observed is false and every other
// field is meaningless.
var Unobserved = Obs{}

// ObsTracker is one player's sparse view of the map (§3, §4.C).
type ObsTracker struct {
	Dims  Dims
	Wrap  Wrap2d
	cells []Obs // row-major, len == Dims.Area()
	count int   // number of non-Unobserved entries
}

// NewObsTracker builds an all-Unobserved tracker sized to dims.
func NewObsTracker(dims Dims, wrap Wrap2d) *ObsTracker {
	return &ObsTracker{Dims: dims, Wrap: wrap, cells: make([]Obs, dims.Area())}
}

func (t *ObsTracker) index(loc Location) int {
	return loc.Y*t.Dims.Width + loc.X
}

// Get returns the observation recorded for loc.
func (t *ObsTracker) Get(loc Location) Obs {
	if !t.Dims.Contains(loc) {
		return Unobserved
	}
	return t.cells[t.index(loc)]
}

// TrackObservation replaces the entry at loc with a fresh snapshot of
// tile (plus whatever unit/city occupies it, resolved by the caller
// against the authoritative map) as observed on turn. Returns the (old,
// new) pair so callers can build a located-observation delta for a move
// transcript.
func (t *ObsTracker) TrackObservation(loc Location, tile Tile, unit *UnitSnapshot, city *CitySnapshot, turn int) (old, new Obs) {
	i := t.index(loc)
	old = t.cells[i]
	new = Obs{Observed: true, Tile: tile, Unit: unit, City: city, TurnNumber: turn, Current: true}
	if !old.Observed {
		t.count++
	}
	t.cells[i] = new
	return old, new
}

// Archive flips Current to false on every currently-observed entry,
// preserving the snapshot itself. Called at end of the player's turn
// (§4.C) so a UI can distinguish "still visible" from "last seen".
func (t *ObsTracker) Archive() {
	for i := range t.cells {
		if t.cells[i].Observed {
			t.cells[i].Current = false
		}
	}
}

// Count returns the number of distinct non-Unobserved entries, used for
// score computation (§4.C, §6).
func (t *ObsTracker) Count() int {
	return t.count
}

// Clone deep-copies the tracker (used by Game.Clone).
func (t *ObsTracker) Clone() *ObsTracker {
	c := &ObsTracker{Dims: t.Dims, Wrap: t.Wrap, cells: make([]Obs, len(t.cells)), count: t.count}
	copy(c.cells, t.cells)
	for i, cell := range t.cells {
		if cell.Unit != nil {
			u := *cell.Unit
			c.cells[i].Unit = &u
		}
		if cell.City != nil {
			ci := *cell.City
			c.cells[i].City = &ci
		}
	}
	return c
}

// LocatedObs pairs a location with the observation produced there,
// used in move transcripts (§3) and begin_turn's refresh result.
type LocatedObs struct {
	Loc Location
	Obs Obs
}
