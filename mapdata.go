package wargame

import "fmt"

// MapData is the authoritative world: a dense tile grid plus the
// indices needed to find a unit or city by id in O(1) (§3, §4.B).
type MapData struct {
	Dims Dims
	Wrap Wrap2d

	tiles []Tile // row-major, len == Dims.Area()

	units       map[UnitID]*Unit
	unitLocs    map[UnitID]Location // location of the tile directly containing the unit (top-level or its carrier's tile)
	unitCarrier map[UnitID]UnitID   // carried unit id -> carrier id

	cities   map[CityID]*City
	cityLocs map[CityID]Location

	nextUnitID UnitID
	nextCityID CityID
}

// NewMapData builds an all-Land map of the given dimensions. Callers
// typically overwrite individual tiles' Terrain afterward (map
// generation itself is an external collaborator, §1).
func NewMapData(dims Dims, wrap Wrap2d) *MapData {
	m := &MapData{
		Dims:        dims,
		Wrap:        wrap,
		tiles:       make([]Tile, dims.Area()),
		units:       make(map[UnitID]*Unit),
		unitLocs:    make(map[UnitID]Location),
		unitCarrier: make(map[UnitID]UnitID),
		cities:      make(map[CityID]*City),
		cityLocs:    make(map[CityID]Location),
		nextUnitID:  1,
		nextCityID:  1,
	}
	for y := 0; y < dims.Height; y++ {
		for x := 0; x < dims.Width; x++ {
			loc := Location{X: x, Y: y}
			m.tiles[m.index(loc)] = Tile{Loc: loc, Terrain: Land}
		}
	}
	return m
}

func (m *MapData) index(loc Location) int {
	return loc.Y*m.Dims.Width + loc.X
}

// TileAt returns the tile at loc, or false if loc is out of bounds.
func (m *MapData) TileAt(loc Location) (*Tile, bool) {
	if !m.Dims.Contains(loc) {
		return nil, false
	}
	return &m.tiles[m.index(loc)], true
}

// SetTerrain overwrites the terrain of the tile at loc.
func (m *MapData) SetTerrain(loc Location, t Terrain) error {
	tile, ok := m.TileAt(loc)
	if !ok {
		return ErrOutOfBounds
	}
	tile.Terrain = t
	return nil
}

// ToplevelUnitByLoc returns the unit sitting directly on loc's tile, if
// any.
func (m *MapData) ToplevelUnitByLoc(loc Location) (*Unit, bool) {
	tile, ok := m.TileAt(loc)
	if !ok || tile.UnitID == nil {
		return nil, false
	}
	return m.units[*tile.UnitID], true
}

// UnitByID returns the unit with the given id, top-level or carried.
func (m *MapData) UnitByID(id UnitID) (*Unit, bool) {
	u, ok := m.units[id]
	return u, ok
}

// CityByLoc returns the city at loc, if any.
func (m *MapData) CityByLoc(loc Location) (*City, bool) {
	tile, ok := m.TileAt(loc)
	if !ok || tile.CityID == nil {
		return nil, false
	}
	return m.cities[*tile.CityID], true
}

// CityByID returns the city with the given id, if any.
func (m *MapData) CityByID(id CityID) (*City, bool) {
	c, ok := m.cities[id]
	return c, ok
}

// AllCities returns every city on the map. Order is unspecified; callers
// needing determinism should sort by ID.
func (m *MapData) AllCities() []*City {
	out := make([]*City, 0, len(m.cities))
	for _, c := range m.cities {
		out = append(out, c)
	}
	return out
}

// AllUnits returns every unit on the map, top-level and carried.
func (m *MapData) AllUnits() []*Unit {
	out := make([]*Unit, 0, len(m.units))
	for _, u := range m.units {
		out = append(out, u)
	}
	return out
}

// NewUnit places a brand-new top-level unit at loc.
func (m *MapData) NewUnit(loc Location, t UnitType, alignment Alignment, name string) (UnitID, error) {
	tile, ok := m.TileAt(loc)
	if !ok {
		return 0, ErrOutOfBounds
	}
	if tile.UnitID != nil {
		return 0, ErrUnitAlreadyPresent
	}
	id := m.nextUnitID
	m.nextUnitID++
	u := &Unit{
		ID:             id,
		Loc:            loc,
		Type:           t,
		Alignment:      alignment,
		HP:             t.MaxHP(),
		Name:           name,
		MovesRemaining: t.MovesPerTurn(),
	}
	m.units[id] = u
	m.unitLocs[id] = loc
	tile.UnitID = &id
	return id, nil
}

// NewCity places a brand-new city at loc.
func (m *MapData) NewCity(loc Location, alignment Alignment, name string) (*City, error) {
	tile, ok := m.TileAt(loc)
	if !ok {
		return nil, ErrOutOfBounds
	}
	if tile.CityID != nil {
		return nil, ErrCityAlreadyPresent
	}
	id := m.nextCityID
	m.nextCityID++
	c := &City{ID: id, Loc: loc, Alignment: alignment, HP: 1, Name: name}
	m.cities[id] = c
	m.cityLocs[id] = loc
	tile.CityID = &id
	return c, nil
}

// PopToplevelUnitByID removes the top-level unit with the given id and
// returns it. Any units it was carrying are destroyed along with it
// (§3 invariant: destroying a carrier destroys its cargo).
func (m *MapData) PopToplevelUnitByID(id UnitID) (*Unit, bool) {
	u, ok := m.units[id]
	if !ok || u.IsCarried() {
		return nil, false
	}
	loc := m.unitLocs[id]
	tile, _ := m.TileAt(loc)
	if tile != nil && tile.UnitID != nil && *tile.UnitID == id {
		tile.UnitID = nil
	}
	for _, carriedID := range u.Carrying {
		delete(m.units, carriedID)
		delete(m.unitLocs, carriedID)
		delete(m.unitCarrier, carriedID)
	}
	delete(m.units, id)
	delete(m.unitLocs, id)
	return u, true
}

// PopCarriedUnitByID removes carriedID from whatever carrier holds it
// and returns it. The unit is also removed from m.units and the location
// index, so the caller must re-add it if it is to stay on the map.
func (m *MapData) PopCarriedUnitByID(carriedID UnitID) (*Unit, bool) {
	u, ok := m.units[carriedID]
	if !ok || !u.IsCarried() {
		return nil, false
	}
	carrierID := *u.CarrierID
	carrier := m.units[carrierID]
	if carrier != nil {
		carrier.Carrying = removeUnitID(carrier.Carrying, carriedID)
	}
	delete(m.unitCarrier, carriedID)
	delete(m.units, carriedID)
	delete(m.unitLocs, carriedID)
	u.CarrierID = nil
	return u, true
}

func removeUnitID(ids []UnitID, target UnitID) []UnitID {
	out := ids[:0]
	for _, id := range ids {
		if id != target {
			out = append(out, id)
		}
	}
	return out
}

// CarryUnitByID moves an existing top-level unit into a carrier's
// carrying space (§4.B, §4.F).
func (m *MapData) CarryUnitByID(carrierID, carriedID UnitID) error {
	carrier, ok := m.units[carrierID]
	if !ok {
		return ErrNoSuchUnit
	}
	carried, ok := m.units[carriedID]
	if !ok {
		return ErrNoSuchUnit
	}
	if !carrier.IsCarrier() {
		return ErrCannotCarryUnit
	}
	if len(carrier.Carrying) >= carrier.Type.CarryCapacity() {
		return ErrInsufficientCarrySpace
	}
	if !carrier.Type.CanCarry(carried.Type) {
		return ErrWrongTransportMode
	}
	if !carrier.Alignment.IsFriendlyTo(carried.Alignment) {
		return ErrOnlyAlliesCarry
	}

	// Remove the carried unit from the map top-level, clearing the tile
	// it was standing on (its own tile, next to or away from the carrier).
	loc := m.unitLocs[carriedID]
	tile, _ := m.TileAt(loc)
	if tile != nil && tile.UnitID != nil && *tile.UnitID == carriedID {
		tile.UnitID = nil
	}

	carried.CarrierID = &carrierID
	carried.Loc = carrier.Loc
	carrier.Carrying = append(carrier.Carrying, carriedID)
	m.unitCarrier[carriedID] = carrierID
	m.unitLocs[carriedID] = carrier.Loc
	return nil
}

// RelocateUnitByID moves the top-level unit id to newLoc, cascading the
// move to any units it carries. Errors if newLoc already has a distinct
// top-level unit.
func (m *MapData) RelocateUnitByID(id UnitID, newLoc Location) error {
	u, ok := m.units[id]
	if !ok || u.IsCarried() {
		return ErrNoSuchUnit
	}
	dstTile, ok := m.TileAt(newLoc)
	if !ok {
		return ErrOutOfBounds
	}
	if dstTile.UnitID != nil && *dstTile.UnitID != id {
		return ErrUnitAlreadyPresent
	}

	oldLoc := m.unitLocs[id]
	if srcTile, ok := m.TileAt(oldLoc); ok && srcTile.UnitID != nil && *srcTile.UnitID == id {
		srcTile.UnitID = nil
	}

	u.Loc = newLoc
	m.unitLocs[id] = newLoc
	dstTile.UnitID = &id

	for _, carriedID := range u.Carrying {
		if carried, ok := m.units[carriedID]; ok {
			carried.Loc = newLoc
			m.unitLocs[carriedID] = newLoc
		}
	}
	return nil
}

// OccupyCity changes the city at cityLoc to unit's alignment and moves
// the unit onto its tile. Only valid for Land-mode units (§4.B, §4.F).
func (m *MapData) OccupyCity(unitID UnitID, cityLoc Location) error {
	u, ok := m.units[unitID]
	if !ok {
		return ErrNoSuchUnit
	}
	if u.Type.Mode() != ModeLand {
		return ErrCannotOccupyGarrisonedCity
	}
	city, ok := m.CityByLoc(cityLoc)
	if !ok {
		return ErrNoCityAtLocation
	}
	city.Alignment = u.Alignment
	return m.RelocateUnitByID(unitID, cityLoc)
}

// DestroyUnit removes a unit (top-level or carried) from the map
// entirely, along with anything it was carrying.
func (m *MapData) DestroyUnit(id UnitID) {
	u, ok := m.units[id]
	if !ok {
		return
	}
	if u.IsCarried() {
		m.PopCarriedUnitByID(id)
		delete(m.units, id)
		return
	}
	m.PopToplevelUnitByID(id)
}

// SetCityProduction sets or clears the production target of the city at
// loc. Passing a nil unitType clears it.
func (m *MapData) SetCityProduction(loc Location, unitType *UnitType, ignoreCleared bool) error {
	city, ok := m.CityByLoc(loc)
	if !ok {
		return ErrNoCityAtLocation
	}
	city.Production = unitType
	if unitType == nil {
		city.ProductionProgress = 0
		city.IgnoreClearedProduction = ignoreCleared
	} else {
		city.IgnoreClearedProduction = false
	}
	return nil
}

// Validate checks the invariants of §8 item 1 (index completeness) and
// panics on violation: these are the "Fatal" class of bug the spec
// describes in §4.H / §7, not a recoverable error.
func (m *MapData) Validate() {
	for y := 0; y < m.Dims.Height; y++ {
		for x := 0; x < m.Dims.Width; x++ {
			loc := Location{X: x, Y: y}
			tile := m.tiles[m.index(loc)]
			if tile.UnitID != nil {
				loc2, ok := m.unitLocs[*tile.UnitID]
				if !ok || loc2 != loc {
					panic(fmt.Sprintf("wargame: invariant violation: tile %v references unit %d but index disagrees", loc, *tile.UnitID))
				}
			}
			if tile.CityID != nil {
				loc2, ok := m.cityLocs[*tile.CityID]
				if !ok || loc2 != loc {
					panic(fmt.Sprintf("wargame: invariant violation: tile %v references city %d but index disagrees", loc, *tile.CityID))
				}
			}
		}
	}
}

// Clone deep-copies the map store. Cost is O(map area) per §4.H / §9's
// requirement that Game::clone stay cheap enough for propose_* to be
// practical.
func (m *MapData) Clone() *MapData {
	c := &MapData{
		Dims:        m.Dims,
		Wrap:        m.Wrap,
		tiles:       make([]Tile, len(m.tiles)),
		units:       make(map[UnitID]*Unit, len(m.units)),
		unitLocs:    make(map[UnitID]Location, len(m.unitLocs)),
		unitCarrier: make(map[UnitID]UnitID, len(m.unitCarrier)),
		cities:      make(map[CityID]*City, len(m.cities)),
		cityLocs:    make(map[CityID]Location, len(m.cityLocs)),
		nextUnitID:  m.nextUnitID,
		nextCityID:  m.nextCityID,
	}
	for i, t := range m.tiles {
		c.tiles[i] = t.Clone()
	}
	for id, u := range m.units {
		c.units[id] = u.Clone()
	}
	for id, loc := range m.unitLocs {
		c.unitLocs[id] = loc
	}
	for id, carrierID := range m.unitCarrier {
		c.unitCarrier[id] = carrierID
	}
	for id, city := range m.cities {
		c.cities[id] = city.Clone()
	}
	for id, loc := range m.cityLocs {
		c.cityLocs[id] = loc
	}
	return c
}
