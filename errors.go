package wargame

import "errors"

// Sentinel errors for the taxonomy in spec §7. Callers compare with
// errors.Is; the engine returns them unwrapped, and only the map-text
// parsers add context to the errors they return via fmt.Errorf's %w.
var (
	// AuthError
	ErrNotPlayersTurn = errors.New("wargame: not this player's turn")
	ErrBadSecret      = errors.New("wargame: secret does not match any player")

	// NotFound
	ErrNoSuchUnit           = errors.New("wargame: no such unit")
	ErrNoSuchCity           = errors.New("wargame: no such city")
	ErrNoCityAtLocation     = errors.New("wargame: no city at location")
	ErrNoUnitAtLocation     = errors.New("wargame: no unit at location")
	ErrLocationOutOfBounds  = errors.New("wargame: location out of bounds")

	// IllegalOwnership
	ErrUnitNotControlledByCurrentPlayer = errors.New("wargame: unit not controlled by current player")
	ErrCityNotControlledByCurrentPlayer = errors.New("wargame: city not controlled by current player")

	// Map store mutation errors
	ErrOutOfBounds         = errors.New("wargame: out of bounds")
	ErrUnitAlreadyPresent  = errors.New("wargame: a unit already occupies that tile")
	ErrCityAlreadyPresent  = errors.New("wargame: a city already occupies that tile")

	// CarryError
	ErrCannotCarryUnit        = errors.New("wargame: unit cannot carry units")
	ErrInsufficientCarrySpace = errors.New("wargame: carrier has no free space")
	ErrWrongTransportMode     = errors.New("wargame: carried unit's mode does not match carrier")
	ErrOnlyAlliesCarry        = errors.New("wargame: carrier will not carry a unit it does not own")

	// MoveError
	ErrZeroLengthMove         = errors.New("wargame: move: source equals destination")
	ErrRemainingMovesExceeded = errors.New("wargame: move: distance exceeds remaining moves")
	ErrSourceUnitDoesNotExist = errors.New("wargame: move: source unit does not exist")
	ErrNoRoute                = errors.New("wargame: move: no route to destination")
	ErrDestinationOutOfBounds = errors.New("wargame: move: destination out of bounds")
	ErrCannotOccupyGarrisonedCity = errors.New("wargame: move: city still garrisoned")

	// OrdersError
	ErrOrderedUnitDoesNotExist = errors.New("wargame: orders: unit does not exist")

	// ProductionError
	ErrCityNotOwned         = errors.New("wargame: production: city not controlled by caller")
	ErrUnknownProductionType = errors.New("wargame: production: unknown unit type")

	// Turn control
	ErrTurnNotDone = errors.New("wargame: end_turn: outstanding production or orders requests remain")
)
