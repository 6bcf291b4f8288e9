package wargame

import "testing"

func TestPlayerFeaturesLayoutForCityAndCarryingUnit(t *testing.T) {
	dims := Dims{Width: 2, Height: 1}
	g, secrets := NewGame(dims, Wrap2d{}, 2, false, nil, nil, blankMapGenerator(dims), 1)

	g.Map.NewCity(Location{X: 0, Y: 0}, Belligerent(0), "Capital")
	transportID, _ := g.Map.NewUnit(Location{X: 1, Y: 0}, Transport, Belligerent(1), "Ferry")
	// CarryUnitByID relocates the carried unit logically regardless of its
	// starting tile, so a fresh unit parked on the city tile works fine.
	cargoID, err := g.Map.NewUnit(Location{X: 0, Y: 0}, Infantry, Belligerent(1), "Rider")
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Map.CarryUnitByID(transportID, cargoID); err != nil {
		t.Fatal(err)
	}
	g.refreshObservations(0)

	got, err := PlayerFeatures(g, secrets[0])
	if err != nil {
		t.Fatal(err)
	}

	width := featureTileWidth(2)
	if len(got) != width*dims.Area() {
		t.Fatalf("got len %d, want %d", len(got), width*dims.Area())
	}

	numUnitTypes := len(UnitTypes)
	cityBitIdx := 1 + 2
	unitOnehotStart := cityBitIdx + 1

	// tile (0,0): the city, owned by player 0
	tile0 := got[0:width]
	if tile0[0] != 1 {
		t.Fatal("expected (0,0) marked observed")
	}
	if tile0[1] != 1 || tile0[2] != 0 {
		t.Fatalf("expected controlled-by-player-0 bit set on the city tile, got %v", tile0[1:3])
	}
	if tile0[cityBitIdx] != 1 {
		t.Fatal("expected city-present bit set on (0,0)")
	}
	for i := 0; i < numUnitTypes; i++ {
		if tile0[unitOnehotStart+i] != 0 {
			t.Fatalf("expected no unit one-hot bits set on a bare city tile, got nonzero at %d", i)
		}
	}

	// tile (1,0): the transport, owned by player 1, carrying one Infantry
	tile1 := got[width : 2*width]
	if tile1[0] != 1 {
		t.Fatal("expected (1,0) marked observed")
	}
	if tile1[1] != 0 || tile1[2] != 1 {
		t.Fatalf("expected controlled-by-player-1 bit set on the transport tile, got %v", tile1[1:3])
	}
	if tile1[cityBitIdx] != 0 {
		t.Fatal("expected no city-present bit on the transport tile")
	}
	for i := 0; i < numUnitTypes; i++ {
		want := float32(0)
		if UnitType(i) == Transport {
			want = 1
		}
		if tile1[unitOnehotStart+i] != want {
			t.Fatalf("unit one-hot index %d: got %v, want %v", i, tile1[unitOnehotStart+i], want)
		}
	}

	carriedBlockStart := unitOnehotStart + numUnitTypes
	for i := 0; i < numUnitTypes; i++ {
		want := float32(0)
		if UnitType(i) == Infantry {
			want = 1
		}
		if tile1[carriedBlockStart+i] != want {
			t.Fatalf("first carried one-hot index %d: got %v, want %v", i, tile1[carriedBlockStart+i], want)
		}
	}
	secondCarriedBlockStart := carriedBlockStart + numUnitTypes
	for i := 0; i < numUnitTypes; i++ {
		if tile1[secondCarriedBlockStart+i] != 0 {
			t.Fatalf("expected the second carried slot to stay all-zero with only one passenger, index %d nonzero", i)
		}
	}
}

func TestPlayerFeaturesUnobservedTileIsAllZero(t *testing.T) {
	dims := Dims{Width: 3, Height: 3}
	g, secrets := NewGame(dims, Wrap2d{}, 1, true, nil, nil, blankMapGenerator(dims), 1)
	// no units or cities placed, and no refresh forced: every tile stays
	// unobserved under fog of war.
	got, err := PlayerFeatures(g, secrets[0])
	if err != nil {
		t.Fatal(err)
	}
	width := featureTileWidth(1)
	for i, v := range got[:width] {
		if v != 0 {
			t.Fatalf("expected all-zero encoding for an unobserved tile, index %d = %v", i, v)
		}
	}
}
