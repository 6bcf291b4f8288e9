package wargame

import "testing"

func TestPlayerDelegatesOwnershipQueries(t *testing.T) {
	dims := Dims{Width: 3, Height: 3}
	g, secrets := NewGame(dims, Wrap2d{}, 2, false, nil, nil, blankMapGenerator(dims), 1)
	g.Map.NewCity(Location{X: 0, Y: 0}, Belligerent(0), "Capital")
	g.Map.NewUnit(Location{X: 1, Y: 1}, Infantry, Belligerent(0), "Guard")

	p0, err := NewPlayer(g, secrets[0])
	if err != nil {
		t.Fatal(err)
	}
	if p0.Num() != 0 {
		t.Fatalf("got num %d, want 0", p0.Num())
	}
	if !p0.IsMyTurn() {
		t.Fatal("expected player 0's turn to be active right after NewGame")
	}
	if len(p0.OwnedCities()) != 1 {
		t.Fatalf("got %d owned cities, want 1", len(p0.OwnedCities()))
	}
	if len(p0.OwnedUnits()) != 1 {
		t.Fatalf("got %d owned units, want 1", len(p0.OwnedUnits()))
	}
}

func TestPlayerNextAwaitingQueries(t *testing.T) {
	dims := Dims{Width: 3, Height: 3}
	g, secrets := NewGame(dims, Wrap2d{}, 1, false, nil, nil, blankMapGenerator(dims), 1)
	g.Map.NewCity(Location{X: 0, Y: 0}, Belligerent(0), "Capital")
	g.Map.NewUnit(Location{X: 1, Y: 1}, Infantry, Belligerent(0), "Guard")

	p, err := NewPlayer(g, secrets[0])
	if err != nil {
		t.Fatal(err)
	}
	city, ok := p.NextCityAwaitingProduction()
	if !ok || city.Name != "Capital" {
		t.Fatalf("got %v, %v", city, ok)
	}
	unit, ok := p.NextUnitAwaitingOrders()
	if !ok || unit.Name != "Guard" {
		t.Fatalf("got %v, %v", unit, ok)
	}

	if err := p.SetProductionByLoc(Location{X: 0, Y: 0}, Infantry); err != nil {
		t.Fatal(err)
	}
	if _, ok := p.NextCityAwaitingProduction(); ok {
		t.Fatal("expected no city awaiting production once target is set")
	}

	if err := p.OrderUnitSentry(unit.ID); err != nil {
		t.Fatal(err)
	}
	if _, ok := p.NextUnitAwaitingOrders(); ok {
		t.Fatal("expected no unit awaiting orders once sentried")
	}
}

func TestPlayerMoveUnitByIDDelegatesAndLocks(t *testing.T) {
	dims := Dims{Width: 3, Height: 1}
	g, secrets := NewGame(dims, Wrap2d{}, 1, false, nil, nil, blankMapGenerator(dims), 1)
	unitID, _ := g.Map.NewUnit(Location{X: 0, Y: 0}, Infantry, Belligerent(0), "Scout")
	u, _ := g.Map.UnitByID(unitID)
	u.MovesRemaining = 5

	p, err := NewPlayer(g, secrets[0])
	if err != nil {
		t.Fatal(err)
	}
	transcript, err := p.MoveUnitByID(unitID, Location{X: 2, Y: 0})
	if err != nil {
		t.Fatal(err)
	}
	if transcript.Unit.Loc != (Location{X: 2, Y: 0}) {
		t.Fatalf("got final loc %v, want (2,0)", transcript.Unit.Loc)
	}
}

func TestPlayerRejectsMovingAnotherPlayersUnit(t *testing.T) {
	dims := Dims{Width: 3, Height: 3}
	g, secrets := NewGame(dims, Wrap2d{}, 2, false, nil, nil, blankMapGenerator(dims), 1)
	unitID, _ := g.Map.NewUnit(Location{X: 0, Y: 0}, Infantry, Belligerent(1), "Enemy")

	p0, err := NewPlayer(g, secrets[0])
	if err != nil {
		t.Fatal(err)
	}
	// player 0 is current, but the unit belongs to player 1: the move must
	// fail authorization inside Game, not silently act on someone else's unit.
	if _, err := p0.MoveUnitByID(unitID, Location{X: 1, Y: 1}); err == nil {
		t.Fatal("expected moving another player's unit to fail")
	}
}

func TestPlayerFeaturesMatchesPackageLevelHelper(t *testing.T) {
	dims := Dims{Width: 2, Height: 2}
	g, secrets := NewGame(dims, Wrap2d{}, 1, false, nil, nil, blankMapGenerator(dims), 1)
	p, err := NewPlayer(g, secrets[0])
	if err != nil {
		t.Fatal(err)
	}
	got, err := p.Features()
	if err != nil {
		t.Fatal(err)
	}
	want, err := PlayerFeatures(g, secrets[0])
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(want) {
		t.Fatalf("got len %d, want %d", len(got), len(want))
	}
}
