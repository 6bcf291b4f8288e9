package wargame

import "testing"

func TestNewUnitAndToplevelLookup(t *testing.T) {
	m := NewMapData(Dims{Width: 3, Height: 3}, Wrap2d{})
	loc := Location{X: 1, Y: 1}
	id, err := m.NewUnit(loc, Infantry, Belligerent(0), "Alpha")
	if err != nil {
		t.Fatal(err)
	}
	u, ok := m.ToplevelUnitByLoc(loc)
	if !ok || u.ID != id {
		t.Fatalf("expected unit %d at %v, got %v %v", id, loc, u, ok)
	}
	if _, err := m.NewUnit(loc, Armor, Belligerent(0), "Beta"); err != ErrUnitAlreadyPresent {
		t.Fatalf("expected ErrUnitAlreadyPresent, got %v", err)
	}
}

func TestNewUnitOutOfBounds(t *testing.T) {
	m := NewMapData(Dims{Width: 2, Height: 2}, Wrap2d{})
	if _, err := m.NewUnit(Location{X: 5, Y: 5}, Infantry, Belligerent(0), "x"); err != ErrOutOfBounds {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
}

func TestCarryAndPopCarriedUnit(t *testing.T) {
	m := NewMapData(Dims{Width: 3, Height: 3}, Wrap2d{})
	loc := Location{X: 0, Y: 0}
	carrierID, _ := m.NewUnit(loc, Transport, Belligerent(0), "Ferry")
	// CarryUnitByID relocates logically, so the cargo starts on a
	// separate free tile rather than the carrier's own (already occupied).
	cargoID, _ := m.NewUnit(Location{X: 1, Y: 0}, Infantry, Belligerent(0), "Rider")

	if err := m.CarryUnitByID(carrierID, cargoID); err != nil {
		t.Fatal(err)
	}
	cargo, _ := m.UnitByID(cargoID)
	if !cargo.IsCarried() {
		t.Fatal("expected cargo to be carried")
	}
	if _, ok := m.ToplevelUnitByLoc(loc); !ok {
		t.Fatal("expected carrier to remain top-level at loc")
	}
	carrier, _ := m.UnitByID(carrierID)
	if len(carrier.Carrying) != 1 || carrier.Carrying[0] != cargoID {
		t.Fatalf("carrier.Carrying = %v", carrier.Carrying)
	}

	popped, ok := m.PopCarriedUnitByID(cargoID)
	if !ok || popped.ID != cargoID {
		t.Fatalf("got %v, %v", popped, ok)
	}
	carrier, _ = m.UnitByID(carrierID)
	if len(carrier.Carrying) != 0 {
		t.Fatalf("expected carrier empty after pop, got %v", carrier.Carrying)
	}
}

func TestCarryRejectsWrongMode(t *testing.T) {
	m := NewMapData(Dims{Width: 3, Height: 3}, Wrap2d{})
	loc := Location{X: 0, Y: 0}
	carrierID, _ := m.NewUnit(loc, Transport, Belligerent(0), "Ferry")
	seaID, _ := m.NewUnit(Location{X: 1, Y: 0}, Destroyer, Belligerent(0), "Escort")
	if err := m.CarryUnitByID(carrierID, seaID); err != ErrWrongTransportMode {
		t.Fatalf("expected ErrWrongTransportMode, got %v", err)
	}
}

func TestCarryRejectsOverCapacity(t *testing.T) {
	m := NewMapData(Dims{Width: 3, Height: 3}, Wrap2d{})
	loc := Location{X: 0, Y: 0}
	carrierID, _ := m.NewUnit(loc, Transport, Belligerent(0), "Ferry")
	staging := Location{X: 1, Y: 0}
	for i := 0; i < Transport.CarryCapacity(); i++ {
		// CarryUnitByID clears the cargo's own tile once loaded, so the same
		// staging tile can be reused for each successive unit.
		cargoID, err := m.NewUnit(staging, Infantry, Belligerent(0), "Rider")
		if err != nil {
			t.Fatalf("unexpected error placing cargo %d: %v", i, err)
		}
		if err := m.CarryUnitByID(carrierID, cargoID); err != nil {
			t.Fatalf("unexpected error loading cargo %d: %v", i, err)
		}
	}
	overflowID, _ := m.NewUnit(staging, Infantry, Belligerent(0), "Extra")
	if err := m.CarryUnitByID(carrierID, overflowID); err != ErrInsufficientCarrySpace {
		t.Fatalf("expected ErrInsufficientCarrySpace, got %v", err)
	}
}

func TestPopToplevelDestroysCargo(t *testing.T) {
	m := NewMapData(Dims{Width: 3, Height: 3}, Wrap2d{})
	loc := Location{X: 0, Y: 0}
	carrierID, _ := m.NewUnit(loc, Transport, Belligerent(0), "Ferry")
	cargoID, _ := m.NewUnit(Location{X: 1, Y: 0}, Infantry, Belligerent(0), "Rider")
	if err := m.CarryUnitByID(carrierID, cargoID); err != nil {
		t.Fatal(err)
	}
	if _, ok := m.PopToplevelUnitByID(carrierID); !ok {
		t.Fatal("expected pop to succeed")
	}
	if _, ok := m.UnitByID(cargoID); ok {
		t.Fatal("expected cargo to be destroyed along with its carrier")
	}
}

func TestOccupyCityChangesAlignment(t *testing.T) {
	m := NewMapData(Dims{Width: 3, Height: 3}, Wrap2d{})
	cityLoc := Location{X: 2, Y: 2}
	unitLoc := Location{X: 1, Y: 2}
	if _, err := m.NewCity(cityLoc, NeutralAlignment, "Capital"); err != nil {
		t.Fatal(err)
	}
	unitID, _ := m.NewUnit(unitLoc, Infantry, Belligerent(1), "Invader")
	if err := m.OccupyCity(unitID, cityLoc); err != nil {
		t.Fatal(err)
	}
	city, _ := m.CityByLoc(cityLoc)
	if city.Alignment.Neutral || city.Alignment.Player != 1 {
		t.Fatalf("expected city owned by player 1, got %v", city.Alignment)
	}
	u, _ := m.UnitByID(unitID)
	if u.Loc != cityLoc {
		t.Fatalf("expected unit relocated to city, got %v", u.Loc)
	}
}

func TestOccupyCityRejectsNonLandUnit(t *testing.T) {
	m := NewMapData(Dims{Width: 3, Height: 3}, Wrap2d{})
	cityLoc := Location{X: 2, Y: 2}
	m.SetTerrain(Location{X: 1, Y: 2}, Water)
	m.NewCity(cityLoc, NeutralAlignment, "Capital")
	unitID, _ := m.NewUnit(Location{X: 1, Y: 2}, Destroyer, Belligerent(1), "Warship")
	if err := m.OccupyCity(unitID, cityLoc); err != ErrCannotOccupyGarrisonedCity {
		t.Fatalf("expected ErrCannotOccupyGarrisonedCity, got %v", err)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	m := NewMapData(Dims{Width: 2, Height: 2}, Wrap2d{})
	id, _ := m.NewUnit(Location{X: 0, Y: 0}, Infantry, Belligerent(0), "Alpha")
	c := m.Clone()

	u, _ := c.UnitByID(id)
	u.HP = 99
	orig, _ := m.UnitByID(id)
	if orig.HP == 99 {
		t.Fatal("expected clone mutation not to affect original")
	}

	if _, err := c.NewUnit(Location{X: 1, Y: 1}, Armor, Belligerent(0), "Beta"); err != nil {
		t.Fatal(err)
	}
	if _, ok := m.ToplevelUnitByLoc(Location{X: 1, Y: 1}); ok {
		t.Fatal("expected original map to be unaffected by clone's new unit")
	}
}

func TestValidateDoesNotPanicOnConsistentMap(t *testing.T) {
	m := NewMapData(Dims{Width: 2, Height: 2}, Wrap2d{})
	m.NewUnit(Location{X: 0, Y: 0}, Infantry, Belligerent(0), "Alpha")
	m.NewCity(Location{X: 1, Y: 1}, NeutralAlignment, "Capital")
	m.Validate()
}
