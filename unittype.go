package wargame

// UnitType is the closed set of unit kinds the engine knows about.
type UnitType int

const (
	Infantry UnitType = iota
	Armor
	Fighter
	Bomber
	Transport
	Destroyer
	Submarine
	Cruiser
	Battleship
	Carrier
	numUnitTypes
)

// UnitTypes lists every unit type in table order (§6.F), stable for
// feature-vector encoding and for possible_actions() indexing.
var UnitTypes = [numUnitTypes]UnitType{
	Infantry, Armor, Fighter, Bomber, Transport,
	Destroyer, Submarine, Cruiser, Battleship, Carrier,
}

// TransportMode is the medium a unit moves through.
type TransportMode int

const (
	ModeLand TransportMode = iota
	ModeSea
	ModeAir
)

func (m TransportMode) String() string {
	switch m {
	case ModeLand:
		return "Land"
	case ModeSea:
		return "Sea"
	case ModeAir:
		return "Air"
	default:
		return "Unknown"
	}
}

// UnitTypeData is the static attribute row for a UnitType (§6.F table).
type UnitTypeData struct {
	Type            UnitType
	Name            string
	MaxHP           int
	Cost            int
	Sight           int
	MovesPerTurn    int
	Mode            TransportMode
	CarryCapacity   int      // 0 if this type cannot carry
	CarryMode       TransportMode // mode of units it can carry, meaningless if CarryCapacity==0
	OccupiesCities  bool
	MapKey          byte // lowercase key used by the map-text import format (§6)
}

var unitTypeTable = map[UnitType]UnitTypeData{
	Infantry:   {Type: Infantry, Name: "Infantry", MaxHP: 1, Cost: 6, Sight: 2, MovesPerTurn: 1, Mode: ModeLand, OccupiesCities: true, MapKey: 'i'},
	Armor:      {Type: Armor, Name: "Armor", MaxHP: 2, Cost: 12, Sight: 2, MovesPerTurn: 2, Mode: ModeLand, OccupiesCities: true, MapKey: 'a'},
	Fighter:    {Type: Fighter, Name: "Fighter", MaxHP: 1, Cost: 12, Sight: 4, MovesPerTurn: 5, Mode: ModeAir, MapKey: 'f'},
	Bomber:     {Type: Bomber, Name: "Bomber", MaxHP: 1, Cost: 12, Sight: 4, MovesPerTurn: 5, Mode: ModeAir, MapKey: 'b'},
	Transport:  {Type: Transport, Name: "Transport", MaxHP: 3, Cost: 30, Sight: 2, MovesPerTurn: 2, Mode: ModeSea, CarryCapacity: 4, CarryMode: ModeLand, MapKey: 't'},
	Destroyer:  {Type: Destroyer, Name: "Destroyer", MaxHP: 2, Cost: 24, Sight: 3, MovesPerTurn: 3, Mode: ModeSea, MapKey: 'd'},
	Submarine:  {Type: Submarine, Name: "Submarine", MaxHP: 2, Cost: 24, Sight: 3, MovesPerTurn: 2, Mode: ModeSea, MapKey: 's'},
	Cruiser:    {Type: Cruiser, Name: "Cruiser", MaxHP: 4, Cost: 36, Sight: 3, MovesPerTurn: 2, Mode: ModeSea, MapKey: 'c'},
	Battleship: {Type: Battleship, Name: "Battleship", MaxHP: 8, Cost: 60, Sight: 4, MovesPerTurn: 1, Mode: ModeSea, MapKey: 'p'},
	Carrier:    {Type: Carrier, Name: "Carrier", MaxHP: 6, Cost: 48, Sight: 4, MovesPerTurn: 1, Mode: ModeSea, CarryCapacity: 5, CarryMode: ModeAir, MapKey: 'k'},
}

// Data returns the static attribute row for t. Callers must only use
// values from UnitTypes, so this never needs an error return.
func (t UnitType) Data() UnitTypeData {
	return unitTypeTable[t]
}

func (t UnitType) String() string {
	return unitTypeTable[t].Name
}

func (t UnitType) MaxHP() int          { return unitTypeTable[t].MaxHP }
func (t UnitType) Cost() int           { return unitTypeTable[t].Cost }
func (t UnitType) Sight() int          { return unitTypeTable[t].Sight }
func (t UnitType) MovesPerTurn() int   { return unitTypeTable[t].MovesPerTurn }
func (t UnitType) Mode() TransportMode { return unitTypeTable[t].Mode }
func (t UnitType) CarryCapacity() int  { return unitTypeTable[t].CarryCapacity }
func (t UnitType) IsCarrier() bool     { return unitTypeTable[t].CarryCapacity > 0 }
func (t UnitType) OccupiesCities() bool {
	return unitTypeTable[t].OccupiesCities
}

// CanCarry reports whether a carrier of this type may carry a unit of
// carriedType.
func (t UnitType) CanCarry(carriedType UnitType) bool {
	d := unitTypeTable[t]
	return d.CarryCapacity > 0 && unitTypeTable[carriedType].Mode == d.CarryMode
}

// MaxUnitCost is the production-progress anti-overflow cap (§4.H): the
// most expensive unit type bounds how far any city's progress may climb.
func MaxUnitCost() int {
	max := 0
	for _, t := range UnitTypes {
		if c := t.Cost(); c > max {
			max = c
		}
	}
	return max
}

// UnitTypeFromMapKey resolves a lowercase map-text key to a UnitType.
func UnitTypeFromMapKey(key byte) (UnitType, bool) {
	for _, t := range UnitTypes {
		if unitTypeTable[t].MapKey == key {
			return t, true
		}
	}
	return 0, false
}
