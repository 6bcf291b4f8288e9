package wargame

// UnitID uniquely identifies a unit for the lifetime of a game.
type UnitID uint64

// Unit is a single military unit, either sitting directly on a tile or
// carried inside another unit's carrying space (§3).
type Unit struct {
	ID              UnitID
	Loc             Location
	Type            UnitType
	Alignment       Alignment
	HP              int
	Name            string
	MovesRemaining  int
	Orders          *Orders
	CarrierID       *UnitID // set iff this unit is carried
	Carrying        []UnitID // set iff this unit is a carrier; ids of units it holds
}

// MaxHP returns the unit's maximum hit points, from its type's static
// attributes.
func (u *Unit) MaxHP() int {
	return u.Type.MaxHP()
}

// IsCarrier reports whether this unit has carrying space at all (whether
// or not it is presently carrying anything).
func (u *Unit) IsCarrier() bool {
	return u.Type.IsCarrier()
}

// IsCarried reports whether this unit currently sits inside a carrier.
func (u *Unit) IsCarried() bool {
	return u.CarrierID != nil
}

// HasOrders reports whether the unit has a standing order.
func (u *Unit) HasOrders() bool {
	return u.Orders != nil
}

// Clone deep-copies a unit (used by Game.Clone and by propose_*).
func (u *Unit) Clone() *Unit {
	c := *u
	if u.CarrierID != nil {
		id := *u.CarrierID
		c.CarrierID = &id
	}
	if u.Orders != nil {
		o := *u.Orders
		c.Orders = &o
	}
	if u.Carrying != nil {
		c.Carrying = append([]UnitID(nil), u.Carrying...)
	}
	return &c
}
