package wargame

// Source is an abstract grid of T, implemented by both the true map and
// a player's observation tracker so the same search algorithm serves
// both (§4.D).
type Source[T any] interface {
	Dims() Dims
	Wrap() Wrap2d
	At(loc Location) T
}

// Filter decides whether loc (whose value is val) may be entered while
// searching a Source[T].
type Filter[T any] func(loc Location, val T) bool

// AndFilter admits a location only if every one of fs admits it.
func AndFilter[T any](fs ...Filter[T]) Filter[T] {
	return func(loc Location, val T) bool {
		for _, f := range fs {
			if !f(loc, val) {
				return false
			}
		}
		return true
	}
}

// ShortestPaths is the result of a single-source search: the distance
// (step count) to every reached location and its predecessor on the
// reconstructed path (§4.D).
type ShortestPaths struct {
	StartLoc Location
	Dist     map[Location]int
	Prev     map[Location]Location
}

// Reachable reports whether loc was reached by the search.
func (sp *ShortestPaths) Reachable(loc Location) bool {
	_, ok := sp.Dist[loc]
	return ok
}

// PathTo reconstructs the path from StartLoc to dest (inclusive of
// dest, exclusive of StartLoc), or false if dest was not reached.
func (sp *ShortestPaths) PathTo(dest Location) ([]Location, bool) {
	if _, ok := sp.Dist[dest]; !ok {
		return nil, false
	}
	if dest == sp.StartLoc {
		return nil, true
	}
	var rev []Location
	cur := dest
	for cur != sp.StartLoc {
		rev = append(rev, cur)
		prev, ok := sp.Prev[cur]
		if !ok {
			return nil, false
		}
		cur = prev
	}
	path := make([]Location, len(rev))
	for i, loc := range rev {
		path[len(rev)-1-i] = loc
	}
	return path, true
}

// Dijkstra runs a uniform-cost (BFS-equivalent) search from start over
// src, admitting only locations filter allows, out to maxDist steps. If
// target is non-nil, that single location is always admitted regardless
// of filter once adjacent to an admitted tile — this is what lets a move
// plan a path onto an enemy-held or city tile, where combat/occupation
// is resolved by the move algorithm rather than the filter (§4.D, §4.H).
// Neighbor expansion order is the fixed AllDirections table, so ties
// resolve deterministically to the first-reached path.
func Dijkstra[T any](src Source[T], filter Filter[T], start Location, target *Location, maxDist int) *ShortestPaths {
	dims := src.Dims()
	wrap := src.Wrap()

	dist := map[Location]int{start: 0}
	prev := map[Location]Location{}
	queue := []Location{start}

	isTarget := func(loc Location) bool {
		return target != nil && loc == *target
	}

	for len(queue) > 0 {
		loc := queue[0]
		queue = queue[1:]
		d := dist[loc]
		if d >= maxDist {
			continue
		}
		for _, dir := range AllDirections {
			next, ok := WrappedAdd(dims, loc, dir.Vec2d(), wrap)
			if !ok {
				continue
			}
			if _, seen := dist[next]; seen {
				continue
			}
			if !isTarget(next) && !filter(next, src.At(next)) {
				continue
			}
			dist[next] = d + 1
			prev[next] = loc
			queue = append(queue, next)
		}
	}

	return &ShortestPaths{StartLoc: start, Dist: dist, Prev: prev}
}

// TruncateToReach walks the predecessor chain from dest back toward
// sp.StartLoc, returning the farthest-along location whose recorded
// distance is within maxDist. Used by GoTo/Explore (§4.G) to commit to
// an ordinary move this turn even though the full path to dest may
// exceed the unit's remaining moves. Returns false if dest itself was
// never reached by the search.
func (sp *ShortestPaths) TruncateToReach(dest Location, maxDist int) (Location, bool) {
	if _, ok := sp.Dist[dest]; !ok {
		return Location{}, false
	}
	cur := dest
	for sp.Dist[cur] > maxDist {
		prev, ok := sp.Prev[cur]
		if !ok {
			return sp.StartLoc, true
		}
		cur = prev
	}
	return cur, true
}

// BFSNearest finds the nearest location admitted by targetFilter,
// expanding only through locations admitted by candidateFilter. Returns
// false if nothing matching targetFilter is reachable. Deterministic by
// the same fixed neighbor order Dijkstra uses.
func BFSNearest[T any](src Source[T], candidateFilter, targetFilter Filter[T], start Location) (Location, bool) {
	dims := src.Dims()
	wrap := src.Wrap()

	visited := map[Location]bool{start: true}
	queue := []Location{start}

	for len(queue) > 0 {
		loc := queue[0]
		queue = queue[1:]
		for _, dir := range AllDirections {
			next, ok := WrappedAdd(dims, loc, dir.Vec2d(), wrap)
			if !ok || visited[next] {
				continue
			}
			visited[next] = true
			val := src.At(next)
			if targetFilter(next, val) {
				return next, true
			}
			if candidateFilter(next, val) {
				queue = append(queue, next)
			}
		}
	}
	return Location{}, false
}

// -----------------------------------------------------------------------
// Sources
// -----------------------------------------------------------------------

// MapSource adapts a *MapData into Source[Tile].
type MapSource struct {
	Map *MapData
}

func (s MapSource) Dims() Dims        { return s.Map.Dims }
func (s MapSource) Wrap() Wrap2d      { return s.Map.Wrap }
func (s MapSource) At(loc Location) Tile {
	t, _ := s.Map.TileAt(loc)
	if t == nil {
		return Tile{}
	}
	return *t
}

// ObsSource adapts a *ObsTracker into Source[Obs].
type ObsSource struct {
	Tracker *ObsTracker
}

func (s ObsSource) Dims() Dims          { return s.Tracker.Dims }
func (s ObsSource) Wrap() Wrap2d        { return s.Tracker.Wrap }
func (s ObsSource) At(loc Location) Obs { return s.Tracker.Get(loc) }

// -----------------------------------------------------------------------
// Canonical filters (§4.D)
// -----------------------------------------------------------------------

// UnitMovementFilter builds the Filter[Tile] for planning an actual move
// on the true map: passable if terrain is compatible with the unit's
// transport mode (cities override terrain for their own alignment) and
// the destination is empty or a friendly carrier with free capacity.
func UnitMovementFilter(mapData *MapData, unit *Unit) Filter[Tile] {
	mode := unit.Type.Mode()
	return func(loc Location, tile Tile) bool {
		terrainOK := terrainCompatible(mode, tile.Terrain)
		if tile.CityID != nil {
			city, _ := mapData.CityByID(*tile.CityID)
			if unit.Alignment.IsFriendlyTo(city.Alignment) {
				terrainOK = true
			} else if !unit.Type.OccupiesCities() {
				return false
			}
		}
		if tile.UnitID == nil {
			return terrainOK
		}
		occupant, _ := mapData.UnitByID(*tile.UnitID)
		if occupant == nil || !unit.Alignment.IsFriendlyTo(occupant.Alignment) {
			// An enemy-occupied tile is never filter-passable; reaching one
			// to fight is only ever done via Dijkstra's target bypass.
			return false
		}
		// A friendly-occupied tile can only be entered by boarding: it
		// passes only when the occupant is a carrier that can take this
		// unit and has free space, whatever the terrain (e.g. a land unit
		// boarding a transport at sea).
		return occupant.IsCarrier() && occupant.Type.CanCarry(unit.Type) && len(occupant.Carrying) < occupant.Type.CarryCapacity()
	}
}

func terrainCompatible(mode TransportMode, terrain Terrain) bool {
	switch mode {
	case ModeLand:
		return terrain == Land
	case ModeSea:
		return terrain == Water
	case ModeAir:
		return true
	default:
		return false
	}
}

// PacifistXenophileUnitMovementFilter builds the Filter[Obs] used for
// GoTo planning: unobserved tiles are optimistically traversable, and
// tiles known to hold an enemy are never traversable (avoid combat).
func PacifistXenophileUnitMovementFilter(unit *Unit) Filter[Obs] {
	mode := unit.Type.Mode()
	return func(loc Location, obs Obs) bool {
		if !obs.Observed {
			return true
		}
		terrainOK := terrainCompatible(mode, obs.Tile.Terrain)
		if obs.City != nil {
			if !unit.Alignment.IsFriendlyTo(obs.City.Alignment) {
				return false // pacifist: never walk into a known enemy city
			}
			terrainOK = true
		}
		if !terrainOK {
			return false
		}
		if obs.Unit == nil {
			return true
		}
		if !unit.Alignment.IsFriendlyTo(obs.Unit.Alignment) {
			return false
		}
		return obs.Unit.Type.CanCarry(unit.Type) && obs.Unit.FreeCarrySpace > 0
	}
}

// ObservedReachableByPacifistUnit builds the Filter[Obs] used for
// Explore: a tile only counts as somewhere to route through if it has
// been observed, is passable terrain, holds no unit, and (if it holds a
// city) that city is friendly.
func ObservedReachableByPacifistUnit(unit *Unit) Filter[Obs] {
	mode := unit.Type.Mode()
	return func(loc Location, obs Obs) bool {
		if !obs.Observed {
			return false
		}
		if !terrainCompatible(mode, obs.Tile.Terrain) {
			return false
		}
		if obs.Unit != nil {
			return false
		}
		if obs.City != nil && !unit.Alignment.IsFriendlyTo(obs.City.Alignment) {
			return false
		}
		return true
	}
}

// Xenophile wraps an Obs filter so that unobserved tiles are always
// admitted, regardless of what the wrapped filter would say.
func Xenophile(f Filter[Obs]) Filter[Obs] {
	return func(loc Location, obs Obs) bool {
		if !obs.Observed {
			return true
		}
		return f(loc, obs)
	}
}
