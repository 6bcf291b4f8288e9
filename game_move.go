package wargame

// moveUnitInternal plans a route from unit's current location to dest
// using the true map and the unit's own movement filter, then walks it
// one step at a time, applying boarding/combat/occupation effects and
// refreshing observations as it goes (§4.H). The route may be shorter
// than the straight-line distance; it always stops at dest if reachable
// within unit.MovesRemaining, or returns ErrNoRoute otherwise.
func (g *Game) moveUnitInternal(unit *Unit, dest Location) (*MoveTranscript, error) {
	if !g.Map.Dims.Contains(dest) {
		return nil, ErrDestinationOutOfBounds
	}
	if unit.Loc == dest {
		return nil, ErrZeroLengthMove
	}

	src := MapSource{Map: g.Map}
	filter := UnitMovementFilter(g.Map, unit)
	sp := Dijkstra[Tile](src, filter, unit.Loc, &dest, unit.MovesRemaining)
	path, ok := sp.PathTo(dest)
	if !ok {
		return nil, ErrNoRoute
	}

	transcript := &MoveTranscript{StartingLoc: unit.Loc}
	for _, step := range path {
		comp, halt, err := g.applyMoveStep(unit, step)
		if err != nil {
			return nil, err
		}
		transcript.Components = append(transcript.Components, comp)
		if halt {
			break
		}
	}
	transcript.Unit = *unit
	return transcript, nil
}

// applyMoveStep moves unit one tile onto loc, resolving whatever is
// there (§4.H step 3): boarding a friendly carrier, fighting an enemy
// unit and then (if victorious and able) an enemy/neutral city, or a
// plain relocation onto empty ground. halt is true once the unit has
// been destroyed or has nothing left to do at loc (boarding always
// halts the move, since the unit no longer has its own position to
// continue stepping from).
func (g *Game) applyMoveStep(unit *Unit, loc Location) (MoveComponent, bool, error) {
	tile, ok := g.Map.TileAt(loc)
	if !ok {
		return MoveComponent{}, true, ErrDestinationOutOfBounds
	}

	comp := MoveComponent{Loc: loc}

	if tile.UnitID != nil {
		occupant, _ := g.Map.UnitByID(*tile.UnitID)
		if unit.Alignment.IsFriendlyTo(occupant.Alignment) {
			carrierID := occupant.ID
			if err := g.Map.CarryUnitByID(carrierID, unit.ID); err != nil {
				return MoveComponent{}, true, err
			}
			unit.MovesRemaining--
			comp.Carrier = &carrierID
			comp.ObservationsAfterMove = g.observeAround(unit.Alignment.Player, loc, unit.Type.Sight())
			return comp, true, nil
		}

		outcome := ResolveCombat(unit, occupant, g.draw)
		comp.UnitCombat = outcome
		g.log.Debug("unit combat", "attacker", unit.ID, "defender", occupant.ID, "rounds", len(outcome.Rounds()), "destroyed", outcome.Destroyed())
		unit.MovesRemaining--
		if outcome.Destroyed() == unit {
			g.Map.DestroyUnit(unit.ID)
			return comp, true, nil
		}
		g.Map.DestroyUnit(occupant.ID)
		// Falls through: the tile may still hold a city to resolve.
	}

	if tile.CityID != nil {
		city, _ := g.Map.CityByID(*tile.CityID)
		if !unit.Alignment.IsFriendlyTo(city.Alignment) {
			if !unit.Type.OccupiesCities() {
				comp.ObservationsAfterMove = g.observeAround(unit.Alignment.Player, loc, unit.Type.Sight())
				return comp, true, nil
			}
			outcome := ResolveCityCombat(unit, city, g.draw)
			comp.CityCombat = outcome
			if comp.UnitCombat == nil {
				unit.MovesRemaining--
			}
			if outcome.AttackerDestroyed {
				g.Map.DestroyUnit(unit.ID)
				return comp, true, nil
			}
			city.HP = 1
			if err := g.Map.OccupyCity(unit.ID, loc); err != nil {
				return MoveComponent{}, true, err
			}
			comp.ObservationsAfterMove = g.observeAround(unit.Alignment.Player, loc, unit.Type.Sight())
			return comp, false, nil
		}
	}

	if err := g.Map.RelocateUnitByID(unit.ID, loc); err != nil {
		return MoveComponent{}, true, err
	}
	if comp.UnitCombat == nil {
		unit.MovesRemaining--
	}
	comp.ObservationsAfterMove = g.observeAround(unit.Alignment.Player, loc, unit.Type.Sight())
	return comp, false, nil
}

// MoveUnitByID authorizes secret against the current player, verifies
// they own unitID, and carries out a move to dest (§4.H).
func (g *Game) MoveUnitByID(secret PlayerSecret, unitID UnitID, dest Location) (*MoveTranscript, error) {
	p, err := g.authorizeCurrentPlayer(secret)
	if err != nil {
		return nil, err
	}
	unit, ok := g.Map.UnitByID(unitID)
	if !ok {
		return nil, ErrSourceUnitDoesNotExist
	}
	if unit.Alignment.Neutral || unit.Alignment.Player != p {
		return nil, ErrUnitNotControlledByCurrentPlayer
	}
	return g.moveUnitInternal(unit, dest)
}

// MoveUnitByIDInDirection is MoveUnitByID with dest computed by stepping
// one tile from the unit's current location in dir.
func (g *Game) MoveUnitByIDInDirection(secret PlayerSecret, unitID UnitID, dir Direction) (*MoveTranscript, error) {
	p, err := g.authorizeCurrentPlayer(secret)
	if err != nil {
		return nil, err
	}
	unit, ok := g.Map.UnitByID(unitID)
	if !ok {
		return nil, ErrSourceUnitDoesNotExist
	}
	if unit.Alignment.Neutral || unit.Alignment.Player != p {
		return nil, ErrUnitNotControlledByCurrentPlayer
	}
	dest, ok := WrappedAdd(g.Map.Dims, unit.Loc, dir.Vec2d(), g.wrap)
	if !ok {
		return nil, ErrDestinationOutOfBounds
	}
	return g.moveUnitInternal(unit, dest)
}

// ProposeMoveUnitByID runs MoveUnitByID against a clone of the game,
// returning the transcript (or error) without mutating the real game
// (§5, §9): a preview a player facade can show before committing.
func (g *Game) ProposeMoveUnitByID(secret PlayerSecret, unitID UnitID, dest Location) (*MoveTranscript, error) {
	return g.Clone().MoveUnitByID(secret, unitID, dest)
}

// SetProductionByLoc authorizes secret, verifies they own the city at
// loc, and sets its production target.
func (g *Game) SetProductionByLoc(secret PlayerSecret, loc Location, t UnitType) error {
	p, err := g.authorizeCurrentPlayer(secret)
	if err != nil {
		return err
	}
	city, ok := g.Map.CityByLoc(loc)
	if !ok {
		return ErrNoCityAtLocation
	}
	if city.Alignment.Neutral || city.Alignment.Player != p {
		return ErrCityNotControlledByCurrentPlayer
	}
	return g.Map.SetCityProduction(loc, &t, false)
}

// ClearProduction clears the city at loc's production target.
// ignoreCleared, if true, marks the city so TurnIsDone stops demanding a
// replacement target be set (§4.H, §8 boundary laws).
func (g *Game) ClearProduction(secret PlayerSecret, loc Location, ignoreCleared bool) error {
	p, err := g.authorizeCurrentPlayer(secret)
	if err != nil {
		return err
	}
	city, ok := g.Map.CityByLoc(loc)
	if !ok {
		return ErrNoCityAtLocation
	}
	if city.Alignment.Neutral || city.Alignment.Player != p {
		return ErrCityNotControlledByCurrentPlayer
	}
	return g.Map.SetCityProduction(loc, nil, ignoreCleared)
}

func (g *Game) setOrders(secret PlayerSecret, unitID UnitID, o Orders) error {
	p, err := g.authorizeCurrentPlayer(secret)
	if err != nil {
		return err
	}
	unit, ok := g.Map.UnitByID(unitID)
	if !ok {
		return ErrOrderedUnitDoesNotExist
	}
	if unit.Alignment.Neutral || unit.Alignment.Player != p {
		return ErrUnitNotControlledByCurrentPlayer
	}
	orders := o
	unit.Orders = &orders
	return nil
}

// OrderUnitSentry sets a unit to hold its position indefinitely (§4.G).
func (g *Game) OrderUnitSentry(secret PlayerSecret, unitID UnitID) error {
	return g.setOrders(secret, unitID, Orders{Kind: OrdersSentry})
}

// OrderUnitSkip gives the unit a Skip order, so it counts as having acted
// this turn; CarryOutOrders clears the Skip at the player's next begin_turn.
func (g *Game) OrderUnitSkip(secret PlayerSecret, unitID UnitID) error {
	return g.setOrders(secret, unitID, Orders{Kind: OrdersSkip})
}

// OrderUnitGoTo sets a standing order to path toward dest over however
// many turns it takes, replanning each turn against the player's own
// observations (§4.G).
func (g *Game) OrderUnitGoTo(secret PlayerSecret, unitID UnitID, dest Location) error {
	return g.setOrders(secret, unitID, Orders{Kind: OrdersGoTo, Dest: dest})
}

// OrderUnitExplore sets a standing order to walk toward the nearest
// unobserved tile each turn until none remains reachable (§4.G).
func (g *Game) OrderUnitExplore(secret PlayerSecret, unitID UnitID) error {
	return g.setOrders(secret, unitID, Orders{Kind: OrdersExplore})
}

// ProposeOrderUnitGoTo runs CarryOutOrders for a fresh GoTo order against
// a clone of the game, previewing what the first leg of the route would
// do (§5, §9).
func (g *Game) ProposeOrderUnitGoTo(secret PlayerSecret, unitID UnitID, dest Location) (*OrdersOutcome, error) {
	clone := g.Clone()
	if err := clone.setOrders(secret, unitID, Orders{Kind: OrdersGoTo, Dest: dest}); err != nil {
		return nil, err
	}
	return CarryOutOrders(clone, unitID), nil
}

// ProposeOrderUnitExplore previews the first leg of an Explore order
// against a clone of the game (§5, §9).
func (g *Game) ProposeOrderUnitExplore(secret PlayerSecret, unitID UnitID) (*OrdersOutcome, error) {
	clone := g.Clone()
	if err := clone.setOrders(secret, unitID, Orders{Kind: OrdersExplore}); err != nil {
		return nil, err
	}
	return CarryOutOrders(clone, unitID), nil
}

// ActivateUnitByLoc clears standing orders on the top-level unit at loc
// and everything it carries, so the player is asked for fresh orders
// next turn (§4.G).
func (g *Game) ActivateUnitByLoc(secret PlayerSecret, loc Location) error {
	p, err := g.authorizeCurrentPlayer(secret)
	if err != nil {
		return err
	}
	unit, ok := g.Map.ToplevelUnitByLoc(loc)
	if !ok {
		return ErrNoUnitAtLocation
	}
	if unit.Alignment.Neutral || unit.Alignment.Player != p {
		return ErrUnitNotControlledByCurrentPlayer
	}
	unit.Orders = nil
	for _, carriedID := range unit.Carrying {
		if carried, ok := g.Map.UnitByID(carriedID); ok {
			carried.Orders = nil
		}
	}
	return nil
}

// DisbandUnitByID removes a unit the caller owns from the game entirely.
func (g *Game) DisbandUnitByID(secret PlayerSecret, unitID UnitID) error {
	p, err := g.authorizeCurrentPlayer(secret)
	if err != nil {
		return err
	}
	unit, ok := g.Map.UnitByID(unitID)
	if !ok {
		return ErrSourceUnitDoesNotExist
	}
	if unit.Alignment.Neutral || unit.Alignment.Player != p {
		return ErrUnitNotControlledByCurrentPlayer
	}
	g.Map.DestroyUnit(unitID)
	return nil
}
