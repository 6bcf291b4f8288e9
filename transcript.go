package wargame

// MoveComponent is one step of a move: the tile entered, whether it was
// entered by boarding a friendly carrier, any combat that step
// triggered, and what the unit observed after entering it (§3).
type MoveComponent struct {
	Loc                   Location
	Carrier               *UnitID
	UnitCombat            *CombatOutcome
	CityCombat            *CityCombatOutcome
	ObservationsAfterMove []LocatedObs
}

// MoveTranscript is the full record of a move_unit_by_id call: the
// unit's post-move snapshot, where it started, and the sequence of
// steps taken. Components is never empty — a zero-length move is
// rejected before any step is taken (§3, §4.H).
type MoveTranscript struct {
	Unit        Unit
	StartingLoc Location
	Components  []MoveComponent
}
