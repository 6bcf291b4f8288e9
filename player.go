package wargame

import "sync"

// Player is the per-player facade onto a shared Game (§3, §9): every
// mutating call is authorized against the secret minted for this
// player at Game construction. The facade keeps no cache of its own:
// every call, read or write, goes straight to the shared Game under the
// facade's lock.
//
// cmd/cli/cmd/utils.go's "resolve context, then call through" shape is
// the model here, just turned into a local lock instead of an RPC
// client.
type Player struct {
	mu     sync.RWMutex
	game   *Game
	num    PlayerNum
	secret PlayerSecret
}

// NewPlayer wraps game for the player identified by secret.
func NewPlayer(game *Game, secret PlayerSecret) (*Player, error) {
	num, err := game.playerForSecret(secret)
	if err != nil {
		return nil, err
	}
	return &Player{game: game, num: num, secret: secret}, nil
}

// Num returns which player this facade acts as.
func (p *Player) Num() PlayerNum { return p.num }

// IsMyTurn reports whether the underlying game is waiting on this
// player right now.
func (p *Player) IsMyTurn() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.game.IsPlayerTurn(p.secret)
}

// BeginTurn starts this player's turn, running production, move
// refresh, observation refresh, and any pending orders.
func (p *Player) BeginTurn() (*TurnStart, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.game.BeginTurn(p.secret)
}

// EndTurn ends this player's turn, failing with ErrTurnNotDone unless
// every city has a production target (or was cleared with ignoreCleared)
// and every unit has orders or has exhausted its moves.
func (p *Player) EndTurn() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.game.EndTurn(p.secret)
}

// ForceEndTurn ends this player's turn regardless of completeness.
func (p *Player) ForceEndTurn() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.game.ForceEndTurn(p.secret)
}

// TurnIsDone reports whether this player has nothing left demanding a
// decision this turn.
func (p *Player) TurnIsDone() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.game.TurnIsDone(p.num)
}

// Observations returns a snapshot of this player's current view of the
// map (§4.C): never the true map, always what fog of war has revealed.
func (p *Player) Observations() (*ObsTracker, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.game.ObservationsFor(p.secret)
}

// MoveUnitByID moves unit to dest, resolving whatever combat or
// occupation happens along the way.
func (p *Player) MoveUnitByID(unitID UnitID, dest Location) (*MoveTranscript, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.game.MoveUnitByID(p.secret, unitID, dest)
}

// MoveUnitByIDInDirection moves unit one tile in dir.
func (p *Player) MoveUnitByIDInDirection(unitID UnitID, dir Direction) (*MoveTranscript, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.game.MoveUnitByIDInDirection(p.secret, unitID, dir)
}

// ProposeMoveUnitByID previews a move without committing it.
func (p *Player) ProposeMoveUnitByID(unitID UnitID, dest Location) (*MoveTranscript, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.game.ProposeMoveUnitByID(p.secret, unitID, dest)
}

// SetProductionByLoc sets the production target of the city at loc.
func (p *Player) SetProductionByLoc(loc Location, t UnitType) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.game.SetProductionByLoc(p.secret, loc, t)
}

// ClearProduction clears the production target of the city at loc.
func (p *Player) ClearProduction(loc Location, ignoreCleared bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.game.ClearProduction(p.secret, loc, ignoreCleared)
}

// OrderUnitSentry gives a unit a standing Sentry order.
func (p *Player) OrderUnitSentry(unitID UnitID) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.game.OrderUnitSentry(p.secret, unitID)
}

// OrderUnitSkip gives a unit a Skip order, which begin_turn clears at
// this player's next turn.
func (p *Player) OrderUnitSkip(unitID UnitID) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.game.OrderUnitSkip(p.secret, unitID)
}

// OrderUnitGoTo gives a unit a standing GoTo order toward dest.
func (p *Player) OrderUnitGoTo(unitID UnitID, dest Location) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.game.OrderUnitGoTo(p.secret, unitID, dest)
}

// OrderUnitExplore gives a unit a standing Explore order.
func (p *Player) OrderUnitExplore(unitID UnitID) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.game.OrderUnitExplore(p.secret, unitID)
}

// ProposeOrderUnitGoTo previews the first leg of a GoTo order.
func (p *Player) ProposeOrderUnitGoTo(unitID UnitID, dest Location) (*OrdersOutcome, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.game.ProposeOrderUnitGoTo(p.secret, unitID, dest)
}

// ProposeOrderUnitExplore previews the first leg of an Explore order.
func (p *Player) ProposeOrderUnitExplore(unitID UnitID) (*OrdersOutcome, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.game.ProposeOrderUnitExplore(p.secret, unitID)
}

// ActivateUnitByLoc clears standing orders on the unit at loc (and
// anything it carries) so it demands fresh orders next turn.
func (p *Player) ActivateUnitByLoc(loc Location) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.game.ActivateUnitByLoc(p.secret, loc)
}

// DisbandUnitByID removes one of this player's units from the game.
func (p *Player) DisbandUnitByID(unitID UnitID) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.game.DisbandUnitByID(p.secret, unitID)
}

// OwnedUnits returns every top-level unit this player owns.
func (p *Player) OwnedUnits() []*Unit {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.game.OwnedUnits(p.num)
}

// OwnedCities returns every city this player owns.
func (p *Player) OwnedCities() []*City {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.game.OwnedCities(p.num)
}

// NextCityAwaitingProduction returns the first city of this player with
// no production target set, for a UI or AI driving "what needs a
// decision next" (§4.J).
func (p *Player) NextCityAwaitingProduction() (*City, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.game.NextCityAwaitingProduction(p.num)
}

// NextUnitAwaitingOrders returns the first unit of this player with no
// standing order and moves remaining.
func (p *Player) NextUnitAwaitingOrders() (*Unit, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.game.NextUnitAwaitingOrders(p.num)
}

// Dims returns the map's dimensions.
func (p *Player) Dims() Dims {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.game.Dims()
}

// Wrapping returns the map's wrap configuration.
func (p *Player) Wrapping() Wrap2d {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.game.Wrapping()
}

// Turn returns the current turn counter.
func (p *Player) Turn() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.game.Turn()
}

// CurrentPlayer returns whichever player's turn it currently is.
func (p *Player) CurrentPlayer() PlayerNum {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.game.CurrentPlayer()
}

// Score returns this player's current score (§9 Open Question 3).
func (p *Player) Score() float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.game.Score(p.num)
}

// Features returns this player's feature vector (§6).
func (p *Player) Features() ([]float32, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return PlayerFeatures(p.game, p.secret)
}
