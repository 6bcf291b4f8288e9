package wargame

// OrdersKind selects which standing order a unit is following (§3, §4.G).
type OrdersKind int

const (
	OrdersSkip OrdersKind = iota
	OrdersSentry
	OrdersGoTo
	OrdersExplore
)

func (k OrdersKind) String() string {
	switch k {
	case OrdersSkip:
		return "Skip"
	case OrdersSentry:
		return "Sentry"
	case OrdersGoTo:
		return "GoTo"
	case OrdersExplore:
		return "Explore"
	default:
		return "Unknown"
	}
}

// Orders is a standing order attached to a unit. Dest is only meaningful
// when Kind is OrdersGoTo.
type Orders struct {
	Kind OrdersKind
	Dest Location
}

// OrdersStatus reports whether carrying out an order finished it or left
// it pending for a later turn.
type OrdersStatus int

const (
	InProgress OrdersStatus = iota
	Completed
)

// OrdersOutcome is the transcript of one carry_out call (§3, §4.G). Err
// is non-nil when carrying out the order hit a recoverable problem
// (e.g. NoRoute); per §7 that does not by itself clear the order — only
// reaching Completed does.
type OrdersOutcome struct {
	UnitID   UnitID
	Orders   Orders
	Movement *MoveTranscript
	Status   OrdersStatus
	Err      error
}

// CarryOutOrders dispatches unitID's standing order and returns its
// outcome, mutating game state as needed. It is the single entry point
// named carry_out in §4.G; begin_turn calls it once per unit with
// outstanding orders.
func CarryOutOrders(g *Game, unitID UnitID) *OrdersOutcome {
	unit, ok := g.Map.UnitByID(unitID)
	if !ok || unit.Orders == nil {
		return &OrdersOutcome{UnitID: unitID, Status: Completed, Err: ErrOrderedUnitDoesNotExist}
	}
	orders := *unit.Orders

	switch orders.Kind {
	case OrdersSkip:
		unit.Orders = nil
		return &OrdersOutcome{UnitID: unitID, Orders: orders, Status: Completed}

	case OrdersSentry:
		return &OrdersOutcome{UnitID: unitID, Orders: orders, Status: InProgress}

	case OrdersGoTo:
		return carryOutGoTo(g, unit, orders)

	case OrdersExplore:
		return carryOutExplore(g, unit, orders)

	default:
		return &OrdersOutcome{UnitID: unitID, Orders: orders, Status: InProgress}
	}
}

func carryOutGoTo(g *Game, unit *Unit, orders Orders) *OrdersOutcome {
	tracker := g.PerPlayerObs[unit.Alignment.Player]
	src := ObsSource{Tracker: tracker}
	filter := PacifistXenophileUnitMovementFilter(unit)
	sp := Dijkstra[Obs](src, filter, unit.Loc, nil, tracker.Dims.Area())

	trunc, ok := sp.TruncateToReach(orders.Dest, unit.MovesRemaining)
	if !ok || trunc == unit.Loc {
		return &OrdersOutcome{UnitID: unit.ID, Orders: orders, Status: InProgress, Err: ErrNoRoute}
	}

	transcript, err := g.moveUnitInternal(unit, trunc)
	if err != nil {
		return &OrdersOutcome{UnitID: unit.ID, Orders: orders, Status: InProgress, Err: err}
	}
	if transcript.Unit.HP <= 0 {
		return &OrdersOutcome{UnitID: unit.ID, Orders: orders, Movement: transcript, Status: Completed}
	}
	if unit.Loc == orders.Dest {
		unit.Orders = nil
		return &OrdersOutcome{UnitID: unit.ID, Orders: orders, Movement: transcript, Status: Completed}
	}
	return &OrdersOutcome{UnitID: unit.ID, Orders: orders, Movement: transcript, Status: InProgress}
}

func carryOutExplore(g *Game, unit *Unit, orders Orders) *OrdersOutcome {
	var last *MoveTranscript

	for unit.MovesRemaining > 0 {
		tracker := g.PerPlayerObs[unit.Alignment.Player]
		src := ObsSource{Tracker: tracker}
		candidateFilter := ObservedReachableByPacifistUnit(unit)
		unobserved := func(loc Location, o Obs) bool { return !o.Observed }

		nearest, found := BFSNearest[Obs](src, candidateFilter, unobserved, unit.Loc)
		if !found {
			unit.Orders = nil
			return &OrdersOutcome{UnitID: unit.ID, Orders: orders, Movement: last, Status: Completed}
		}

		sp := Dijkstra[Obs](src, candidateFilter, unit.Loc, &nearest, tracker.Dims.Area())
		trunc, ok := sp.TruncateToReach(nearest, unit.MovesRemaining)
		if !ok || trunc == unit.Loc {
			return &OrdersOutcome{UnitID: unit.ID, Orders: orders, Movement: last, Status: InProgress}
		}

		transcript, err := g.moveUnitInternal(unit, trunc)
		if err != nil {
			return &OrdersOutcome{UnitID: unit.ID, Orders: orders, Movement: last, Status: InProgress, Err: err}
		}
		last = transcript
		if transcript.Unit.HP <= 0 {
			return &OrdersOutcome{UnitID: unit.ID, Orders: orders, Movement: last, Status: Completed}
		}
	}

	return &OrdersOutcome{UnitID: unit.ID, Orders: orders, Movement: last, Status: InProgress}
}
