// Package ai implements the enumerable action interface an automated
// player drives instead of a human UI (§4.J): a fixed, stably-indexed
// list of possible actions, a filter down to what is legal right now,
// and a single apply-one-action-at-a-time entry point.
package ai

import (
	"fmt"

	"github.com/turnforge/wargame"
)

// Action is one entry in the fixed global action list. Every Action
// applies to whatever the player facade reports as "next" (the next
// city awaiting production, or the next unit awaiting orders) — it
// never names a specific id itself, so the same finite list indexes
// identically across different game states (§4.J).
type Action interface {
	// Take applies the action against p, the acting player's facade.
	Take(p *wargame.Player) error
	String() string
}

// SetNextCityProduction sets the production target of the next city
// awaiting a decision.
type SetNextCityProduction struct {
	UnitType wargame.UnitType
}

func (a SetNextCityProduction) Take(p *wargame.Player) error {
	city, ok := p.NextCityAwaitingProduction()
	if !ok {
		return fmt.Errorf("wargame/ai: set_next_city_production: no city awaiting production")
	}
	return p.SetProductionByLoc(city.Loc, a.UnitType)
}

func (a SetNextCityProduction) String() string {
	return "SetNextCityProduction{" + a.UnitType.String() + "}"
}

// MoveNextUnit moves the next unit awaiting orders one tile in a fixed
// direction.
type MoveNextUnit struct {
	Direction wargame.Direction
}

func (a MoveNextUnit) Take(p *wargame.Player) error {
	unit, ok := p.NextUnitAwaitingOrders()
	if !ok {
		return fmt.Errorf("wargame/ai: move_next_unit: no unit awaiting orders")
	}
	_, err := p.MoveUnitByIDInDirection(unit.ID, a.Direction)
	return err
}

func (a MoveNextUnit) String() string {
	return "MoveNextUnit{" + a.Direction.String() + "}"
}

// DisbandNextUnit disbands the next unit awaiting orders.
type DisbandNextUnit struct{}

func (a DisbandNextUnit) Take(p *wargame.Player) error {
	unit, ok := p.NextUnitAwaitingOrders()
	if !ok {
		return fmt.Errorf("wargame/ai: disband_next_unit: no unit awaiting orders")
	}
	return p.DisbandUnitByID(unit.ID)
}

func (a DisbandNextUnit) String() string { return "DisbandNextUnit" }

// SkipNextUnit gives the next unit a Skip order, which begin_turn clears
// at this player's next turn.
type SkipNextUnit struct{}

func (a SkipNextUnit) Take(p *wargame.Player) error {
	unit, ok := p.NextUnitAwaitingOrders()
	if !ok {
		return fmt.Errorf("wargame/ai: skip_next_unit: no unit awaiting orders")
	}
	return p.OrderUnitSkip(unit.ID)
}

func (a SkipNextUnit) String() string { return "SkipNextUnit" }

// PossibleActions is the fixed, stably-ordered global action list: one
// SetNextCityProduction per unit type, one MoveNextUnit per direction,
// then Skip and Disband (§4.J, §6's from_idx/to_idx requirement).
func PossibleActions() []Action {
	actions := make([]Action, 0, len(wargame.UnitTypes)+len(wargame.AllDirections)+2)
	for _, t := range wargame.UnitTypes {
		actions = append(actions, SetNextCityProduction{UnitType: t})
	}
	for _, d := range wargame.AllDirections {
		actions = append(actions, MoveNextUnit{Direction: d})
	}
	actions = append(actions, SkipNextUnit{})
	actions = append(actions, DisbandNextUnit{})
	return actions
}

// ToIdx returns a's position in PossibleActions(), and false if a is not
// a member of the fixed list (e.g. an unrecognized implementation).
func ToIdx(a Action) (int, bool) {
	for i, candidate := range PossibleActions() {
		if candidate == a {
			return i, true
		}
	}
	return 0, false
}

// FromIdx is the inverse of ToIdx. Panics on an out-of-range index: an
// invalid index here is a caller bug, not a recoverable game error.
func FromIdx(i int) Action {
	all := PossibleActions()
	if i < 0 || i >= len(all) {
		panic(fmt.Sprintf("wargame/ai: from_idx: index %d out of range [0,%d)", i, len(all)))
	}
	return all[i]
}

// LegalActions filters PossibleActions() down to what p can actually
// take right now: production-setting only while a city awaits it,
// movement only in directions that land in bounds, skip/disband only
// while a unit awaits orders.
func LegalActions(p *wargame.Player) []Action {
	var out []Action

	if _, ok := p.NextCityAwaitingProduction(); ok {
		for _, t := range wargame.UnitTypes {
			out = append(out, SetNextCityProduction{UnitType: t})
		}
	}

	if unit, ok := p.NextUnitAwaitingOrders(); ok {
		dims := p.Dims()
		wrap := p.Wrapping()
		for _, d := range wargame.AllDirections {
			if _, inBounds := wargame.WrappedAdd(dims, unit.Loc, d.Vec2d(), wrap); inBounds {
				out = append(out, MoveNextUnit{Direction: d})
			}
		}
		out = append(out, SkipNextUnit{}, DisbandNextUnit{})
	}

	return out
}
