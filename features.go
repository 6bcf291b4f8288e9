package wargame

// featureTileWidth is the per-tile slice length: 1 "observed" bit,
// num_players "controlled by player p" bits, 1 "city present" bit,
// len(UnitType) one-hot bits for the top-level unit, then 5 repeats of
// len(UnitType) one-hot bits for carried units (§6).
func featureTileWidth(numPlayers int) int {
	return 1 + numPlayers + 1 + len(UnitTypes) + 5*len(UnitTypes)
}

const maxEncodedCarried = 5

// PlayerFeatures encodes secret's player's observation tracker as a flat
// []float32, tile by tile in row-major order (matching LocationsIn), per
// the layout fixed in §6. Tile iteration is absolute (not centered on
// the next unit awaiting orders): that policy is simpler to keep stable
// across a changing "next unit" and is exactly as valid a choice as
// centering, per §6's "implementers should fix one policy".
func PlayerFeatures(g *Game, secret PlayerSecret) ([]float32, error) {
	p, err := g.playerForSecret(secret)
	if err != nil {
		return nil, err
	}
	tracker, err := g.ObservationsFor(secret)
	if err != nil {
		return nil, err
	}

	width := featureTileWidth(g.numPlayers)
	out := make([]float32, 0, width*g.Map.Dims.Area())

	for _, loc := range LocationsIn(g.Map.Dims) {
		obs := tracker.Get(loc)
		out = append(out, boolFeature(obs.Observed))

		for i := 0; i < g.numPlayers; i++ {
			controlled := obs.Observed && ((obs.Unit != nil && !obs.Unit.Alignment.Neutral && obs.Unit.Alignment.Player == PlayerNum(i)) ||
				(obs.City != nil && !obs.City.Alignment.Neutral && obs.City.Alignment.Player == PlayerNum(i)))
			out = append(out, boolFeature(controlled))
		}

		out = append(out, boolFeature(obs.Observed && obs.City != nil))

		out = append(out, oneHotUnitType(unitTypeOf(obs))...)

		carried := carriedTypesOf(g, obs)
		for i := 0; i < maxEncodedCarried; i++ {
			var t *UnitType
			if i < len(carried) {
				t = &carried[i]
			}
			out = append(out, oneHotUnitTypePtr(t)...)
		}
	}

	_ = p
	return out, nil
}

func boolFeature(b bool) float32 {
	if b {
		return 1
	}
	return 0
}

func unitTypeOf(obs Obs) *UnitType {
	if obs.Unit == nil {
		return nil
	}
	t := obs.Unit.Type
	return &t
}

// carriedTypesOf resolves carried-unit types for a top-level unit
// snapshot by consulting the true map. Observations only snapshot the
// top-level occupant's own facts (§4.C); the carried roster is public
// information once the carrier itself has been observed, since the
// tile cannot be examined without exposing what sits on it.
func carriedTypesOf(g *Game, obs Obs) []UnitType {
	if obs.Unit == nil {
		return nil
	}
	u, ok := g.Map.UnitByID(obs.Unit.ID)
	if !ok {
		return nil
	}
	out := make([]UnitType, 0, len(u.Carrying))
	for _, id := range u.Carrying {
		if carried, ok := g.Map.UnitByID(id); ok {
			out = append(out, carried.Type)
		}
	}
	return out
}

func oneHotUnitType(t *UnitType) []float32 {
	return oneHotUnitTypePtr(t)
}

func oneHotUnitTypePtr(t *UnitType) []float32 {
	out := make([]float32, len(UnitTypes))
	if t == nil {
		return out
	}
	for i, ut := range UnitTypes {
		if ut == *t {
			out[i] = 1
			break
		}
	}
	return out
}
