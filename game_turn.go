package wargame

// ProductionOutcome is what happened to one city's production target
// during a begin_turn's production tick (§4.H).
type ProductionOutcome struct {
	City     *City
	UnitType UnitType
	Unit     *Unit // nil when Blocked
	Blocked  bool  // a unit already occupies the city's tile; progress was not reset
}

// TurnStart is returned by begin_turn: everything that happened to ready
// the current player's turn (§4.H).
type TurnStart struct {
	Turn               int
	CurrentPlayer      PlayerNum
	OrdersResults      []*OrdersOutcome
	ProductionOutcomes []ProductionOutcome
	Observations       []LocatedObs
}

// BeginTurn verifies it is secret's player's turn and they are in
// PreTurn, then produces units for ready cities, refreshes the player's
// units' moves_remaining, refreshes their observations, and carries out
// any pending orders (§4.H).
func (g *Game) BeginTurn(secret PlayerSecret) (*TurnStart, error) {
	p, ok := g.playerOf[secret]
	if !ok {
		return nil, ErrBadSecret
	}
	if p != g.currentPlayer || g.phase != PreTurn {
		return nil, ErrNotPlayersTurn
	}
	g.phase = InTurn
	g.log.Debug("begin_turn", "turn", g.turn, "player", p)

	production := g.tickProduction(p)
	g.refreshMoves(p)
	observations := g.refreshObservations(p)
	ordersResults := g.runPendingOrders(p)

	return &TurnStart{
		Turn:               g.turn,
		CurrentPlayer:       p,
		OrdersResults:       ordersResults,
		ProductionOutcomes:  production,
		Observations:        observations,
	}, nil
}

// TurnIsDone reports whether p has no outstanding production decisions
// and no unit awaiting its first order this turn (§4.H, §6).
func (g *Game) TurnIsDone(p PlayerNum) bool {
	for _, c := range g.citiesOwnedBy(p) {
		if c.AwaitingProduction() {
			return false
		}
	}
	for _, u := range g.toplevelUnitsOwnedBy(p) {
		if u.Orders == nil && u.MovesRemaining > 0 {
			return false
		}
	}
	return true
}

// CurrentTurnIsDone is TurnIsDone for whichever player is current.
func (g *Game) CurrentTurnIsDone() bool {
	return g.TurnIsDone(g.currentPlayer)
}

// EndTurn archives the player's observations and advances current_player,
// but only when TurnIsDone; otherwise it fails with ErrTurnNotDone
// (§4.H).
func (g *Game) EndTurn(secret PlayerSecret) error {
	p, err := g.authorizeCurrentPlayer(secret)
	if err != nil {
		return err
	}
	if !g.TurnIsDone(p) {
		return ErrTurnNotDone
	}
	return g.advanceTurn(p)
}

// ForceEndTurn is EndTurn without the completeness check: outstanding
// production and orders requests simply roll over to next time it is
// this player's turn (§4.H, §5).
func (g *Game) ForceEndTurn(secret PlayerSecret) error {
	p, err := g.authorizeCurrentPlayer(secret)
	if err != nil {
		return err
	}
	return g.advanceTurn(p)
}

func (g *Game) advanceTurn(p PlayerNum) error {
	g.PerPlayerObs[p].Archive()
	g.currentPlayer = PlayerNum((int(p) + 1) % g.numPlayers)
	if g.currentPlayer == 0 {
		g.turn++
	}
	g.phase = PreTurn
	g.log.Debug("end_turn", "turn", g.turn, "next_player", g.currentPlayer)
	return nil
}

// tickProduction increments progress for every city of p with a
// production target (capped at MaxUnitCost to avoid unbounded overflow),
// then attempts to spawn a unit for every city whose progress reached
// its target's cost. A blocked spawn (tile occupied) leaves progress
// where it is so production catches up once the tile clears (§4.H).
func (g *Game) tickProduction(p PlayerNum) []ProductionOutcome {
	cities := g.citiesOwnedBy(p)
	cap := MaxUnitCost()

	for _, city := range cities {
		if city.Production == nil {
			continue
		}
		if city.ProductionProgress < cap {
			city.ProductionProgress++
		}
	}

	var outcomes []ProductionOutcome
	for _, city := range cities {
		if city.Production == nil {
			continue
		}
		t := *city.Production
		if city.ProductionProgress < t.Cost() {
			continue
		}
		if _, exists := g.Map.ToplevelUnitByLoc(city.Loc); exists {
			outcomes = append(outcomes, ProductionOutcome{City: city, UnitType: t, Blocked: true})
			continue
		}
		id, err := g.Map.NewUnit(city.Loc, t, city.Alignment, g.unitNamer.Next())
		if err != nil {
			outcomes = append(outcomes, ProductionOutcome{City: city, UnitType: t, Blocked: true})
			continue
		}
		unit, _ := g.Map.UnitByID(id)
		city.ProductionProgress = 0
		outcomes = append(outcomes, ProductionOutcome{City: city, UnitType: t, Unit: unit})
	}
	return outcomes
}

func (g *Game) refreshMoves(p PlayerNum) {
	for _, u := range g.Map.AllUnits() {
		if !u.Alignment.Neutral && u.Alignment.Player == p {
			u.MovesRemaining = u.Type.MovesPerTurn()
		}
	}
}

func (g *Game) runPendingOrders(p PlayerNum) []*OrdersOutcome {
	var results []*OrdersOutcome
	for _, u := range g.toplevelUnitsOwnedBy(p) {
		if u.Orders == nil {
			continue
		}
		results = append(results, CarryOutOrders(g, u.ID))
	}
	return results
}

// observeTile takes a fresh snapshot of loc and records it in tracker,
// returning the located delta.
func (g *Game) observeTile(tracker *ObsTracker, loc Location) LocatedObs {
	tile, _ := g.Map.TileAt(loc)

	var unitSnap *UnitSnapshot
	if tile.UnitID != nil {
		u, _ := g.Map.UnitByID(*tile.UnitID)
		free := 0
		if u.IsCarrier() {
			free = u.Type.CarryCapacity() - len(u.Carrying)
		}
		unitSnap = &UnitSnapshot{ID: u.ID, Type: u.Type, Alignment: u.Alignment, HP: u.HP, FreeCarrySpace: free}
	}

	var citySnap *CitySnapshot
	if tile.CityID != nil {
		c, _ := g.Map.CityByID(*tile.CityID)
		citySnap = &CitySnapshot{ID: c.ID, Alignment: c.Alignment}
	}

	_, fresh := tracker.TrackObservation(loc, tile.Clone(), unitSnap, citySnap, g.turn)
	return LocatedObs{Loc: loc, Obs: fresh}
}

// observeAround records observations for every location within sight of
// loc (Chebyshev radius), for player p's tracker.
func (g *Game) observeAround(p PlayerNum, loc Location, sight int) []LocatedObs {
	tracker := g.PerPlayerObs[p]
	var deltas []LocatedObs
	for dy := -sight; dy <= sight; dy++ {
		for dx := -sight; dx <= sight; dx++ {
			cand, ok := WrappedAdd(g.Map.Dims, loc, Vec2d{DX: dx, DY: dy}, g.wrap)
			if !ok {
				continue
			}
			deltas = append(deltas, g.observeTile(tracker, cand))
		}
	}
	return deltas
}

// refreshObservations rebuilds p's view of the map for this turn. Without
// fog of war every tile is recorded unconditionally; with it, only tiles
// within sight of a unit or city belonging to p are recorded (§4.H).
func (g *Game) refreshObservations(p PlayerNum) []LocatedObs {
	tracker := g.PerPlayerObs[p]

	if !g.fogOfWar {
		deltas := make([]LocatedObs, 0, g.Map.Dims.Area())
		for _, loc := range LocationsIn(g.Map.Dims) {
			deltas = append(deltas, g.observeTile(tracker, loc))
		}
		return deltas
	}

	seen := map[Location]bool{}
	var deltas []LocatedObs
	for _, loc := range LocationsIn(g.Map.Dims) {
		tile, _ := g.Map.TileAt(loc)
		sight := -1
		if tile.CityID != nil {
			c, _ := g.Map.CityByID(*tile.CityID)
			if !c.Alignment.Neutral && c.Alignment.Player == p && CitySightDistance > sight {
				sight = CitySightDistance
			}
		}
		if tile.UnitID != nil {
			u, _ := g.Map.UnitByID(*tile.UnitID)
			if !u.Alignment.Neutral && u.Alignment.Player == p && u.Type.Sight() > sight {
				sight = u.Type.Sight()
			}
		}
		if sight < 0 {
			continue
		}
		for dy := -sight; dy <= sight; dy++ {
			for dx := -sight; dx <= sight; dx++ {
				cand, ok := WrappedAdd(g.Map.Dims, loc, Vec2d{DX: dx, DY: dy}, g.wrap)
				if !ok || seen[cand] {
					continue
				}
				seen[cand] = true
				deltas = append(deltas, g.observeTile(tracker, cand))
			}
		}
	}
	return deltas
}
