package wargame

// Tile is one cell of the map: its terrain plus whatever sits on it
// top-level (at most one unit and one city, §3).
type Tile struct {
	Loc     Location
	Terrain Terrain
	UnitID  *UnitID
	CityID  *CityID
}

// Clone copies a tile value (pointers to ids are copied by value since
// UnitID/CityID are plain integers boxed for optionality).
func (t Tile) Clone() Tile {
	c := t
	if t.UnitID != nil {
		id := *t.UnitID
		c.UnitID = &id
	}
	if t.CityID != nil {
		id := *t.CityID
		c.CityID = &id
	}
	return c
}
