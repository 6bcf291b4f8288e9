package wargame

import (
	"log/slog"
	"math/rand"
	"sort"
)

// TurnPhase is the two-state machine each player's turn moves through
// (§3): PreTurn before begin_turn, InTurn once actions are permitted.
type TurnPhase int

const (
	PreTurn TurnPhase = iota
	InTurn
)

// CitySightDistance is how far a city radiates visibility under fog of
// war. The table in §4.F only assigns sight distance to units; cities
// are given this fixed value so "a tile containing a unit or city
// belonging to that player" (§4.H) has a concrete radius to use.
const CitySightDistance = 2

// MapGenerator builds the initial map a new Game plays on. Map
// generation algorithms are an external collaborator (§1); the engine
// only needs something that hands back a populated MapData.
type MapGenerator func(dims Dims, wrap Wrap2d, cityNamer, unitNamer Namer) *MapData

// DefaultMapGenerator builds an empty all-Land map with no cities or
// units, ignoring both namers. Real map generation lives outside the
// core.
func DefaultMapGenerator(dims Dims, wrap Wrap2d, cityNamer, unitNamer Namer) *MapData {
	return NewMapData(dims, wrap)
}

// Game is the authoritative engine state: the map, each player's
// observation tracker, the turn cursor, and enough RNG bookkeeping to
// make propose_* clones exact replays of the real call that follows
// (§3, §5).
type Game struct {
	Map          *MapData
	PerPlayerObs map[PlayerNum]*ObsTracker

	turn          int
	numPlayers    int
	currentPlayer PlayerNum
	phase         TurnPhase
	wrap          Wrap2d
	fogOfWar      bool

	secretOf map[PlayerNum]PlayerSecret
	playerOf map[PlayerSecret]PlayerNum

	unitNamer Namer

	rng      *rand.Rand
	rngSeed  int64
	rngDraws int

	log *slog.Logger
}

// GameOption configures optional Game behavior at construction time.
type GameOption func(*Game)

// WithLogger injects a structured logger for turn transitions and
// combat rolls. Defaults to slog.Default() if never set, matching the
// teacher's restraint of logging at Debug for request-path detail and
// never at Info or above for per-action noise.
func WithLogger(l *slog.Logger) GameOption {
	return func(g *Game) { g.log = l }
}

// NewGame generates the map, allocates one secret per player, and
// performs the first begin_turn so the game is ready for player 0
// (§4.H). Returns the engine and the per-player secret map the caller
// distributes to each player's facade.
func NewGame(dims Dims, wrap Wrap2d, numPlayers int, fogOfWar bool, cityNamer, unitNamer Namer, mapGen MapGenerator, seed int64, opts ...GameOption) (*Game, map[PlayerNum]PlayerSecret) {
	if mapGen == nil {
		mapGen = DefaultMapGenerator
	}
	if unitNamer == nil {
		unitNamer = NewSequentialNamer("Unit")
	}
	if cityNamer == nil {
		cityNamer = NewSequentialNamer("City")
	}

	m := mapGen(dims, wrap, cityNamer, unitNamer)

	secretOf := make(map[PlayerNum]PlayerSecret, numPlayers)
	playerOf := make(map[PlayerSecret]PlayerNum, numPlayers)
	obs := make(map[PlayerNum]*ObsTracker, numPlayers)
	for i := 0; i < numPlayers; i++ {
		p := PlayerNum(i)
		s := NewPlayerSecret()
		secretOf[p] = s
		playerOf[s] = p
		// m.Dims, not the caller-supplied dims: a MapGenerator is free to
		// build a map of its own size (e.g. parsed from a fixture), and
		// every ObsTracker must match the map it actually observes (§8
		// invariant 4).
		obs[p] = NewObsTracker(m.Dims, wrap)
	}

	g := &Game{
		Map:          m,
		PerPlayerObs: obs,
		numPlayers:   numPlayers,
		currentPlayer: 0,
		phase:         PreTurn,
		wrap:          wrap,
		fogOfWar:      fogOfWar,
		secretOf:      secretOf,
		playerOf:      playerOf,
		unitNamer:     unitNamer,
		rng:           rand.New(rand.NewSource(seed)),
		rngSeed:       seed,
		log:           slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}

	g.log.Debug("game started", "dims", dims, "num_players", numPlayers, "fog_of_war", fogOfWar, "seed", seed)
	g.BeginTurn(secretOf[0])
	return g, secretOf
}

// draw returns a uniform value in [0,n), counting the call so Clone can
// fast-forward a fresh RNG to the same point deterministically.
func (g *Game) draw(n int) int {
	g.rngDraws++
	return int(g.rng.Int63() % int64(n))
}

// Clone deep-copies the map and every observation tracker, and
// fast-forwards a freshly seeded RNG by the number of draws already
// consumed so the clone's next draw matches what the original's would
// have been. Cost is O(map area) plus O(rngDraws), per §4.H / §9's
// requirement that clone stay cheap enough for propose_* to be
// practical.
func (g *Game) Clone() *Game {
	c := &Game{
		Map:           g.Map.Clone(),
		PerPlayerObs:  make(map[PlayerNum]*ObsTracker, len(g.PerPlayerObs)),
		turn:          g.turn,
		numPlayers:    g.numPlayers,
		currentPlayer: g.currentPlayer,
		phase:         g.phase,
		wrap:          g.wrap,
		fogOfWar:      g.fogOfWar,
		secretOf:      g.secretOf, // immutable after construction, safe to share
		playerOf:      g.playerOf,
		unitNamer:     g.unitNamer,
		rngSeed:       g.rngSeed,
		rngDraws:      g.rngDraws,
		log:           g.log,
	}
	for p, obs := range g.PerPlayerObs {
		c.PerPlayerObs[p] = obs.Clone()
	}
	c.rng = rand.New(rand.NewSource(g.rngSeed))
	for i := 0; i < g.rngDraws; i++ {
		c.rng.Int63()
	}
	return c
}

// Dims returns the map's dimensions.
func (g *Game) Dims() Dims { return g.Map.Dims }

// Wrapping returns the map's wrap configuration.
func (g *Game) Wrapping() Wrap2d { return g.wrap }

// NumPlayers returns the number of players in the game.
func (g *Game) NumPlayers() int { return g.numPlayers }

// CurrentPlayer returns whichever player's turn it currently is.
func (g *Game) CurrentPlayer() PlayerNum { return g.currentPlayer }

// Turn returns the turn counter, incremented each time the player
// cursor wraps back to player 0.
func (g *Game) Turn() int { return g.turn }

func (g *Game) playerForSecret(secret PlayerSecret) (PlayerNum, error) {
	p, ok := g.playerOf[secret]
	if !ok {
		return 0, ErrBadSecret
	}
	return p, nil
}

func (g *Game) authorizeCurrentPlayer(secret PlayerSecret) (PlayerNum, error) {
	p, err := g.playerForSecret(secret)
	if err != nil {
		return 0, err
	}
	if p != g.currentPlayer || g.phase != InTurn {
		return 0, ErrNotPlayersTurn
	}
	return p, nil
}

// IsPlayerTurn reports whether secret identifies the current player and
// their turn is in progress.
func (g *Game) IsPlayerTurn(secret PlayerSecret) bool {
	p, ok := g.playerOf[secret]
	return ok && p == g.currentPlayer && g.phase == InTurn
}

// ObservationsFor returns a copy of the caller's observation tracker, for
// a player facade to seed or resynchronize its private cache.
func (g *Game) ObservationsFor(secret PlayerSecret) (*ObsTracker, error) {
	p, err := g.playerForSecret(secret)
	if err != nil {
		return nil, err
	}
	return g.PerPlayerObs[p].Clone(), nil
}

func (g *Game) citiesOwnedBy(p PlayerNum) []*City {
	var out []*City
	for _, c := range g.Map.AllCities() {
		if !c.Alignment.Neutral && c.Alignment.Player == p {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (g *Game) toplevelUnitsOwnedBy(p PlayerNum) []*Unit {
	var out []*Unit
	for _, u := range g.Map.AllUnits() {
		if u.IsCarried() {
			continue
		}
		if !u.Alignment.Neutral && u.Alignment.Player == p {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// OwnedUnits returns every top-level unit belonging to p, sorted by id.
func (g *Game) OwnedUnits(p PlayerNum) []*Unit {
	return g.toplevelUnitsOwnedBy(p)
}

// OwnedCities returns every city belonging to p, sorted by id.
func (g *Game) OwnedCities(p PlayerNum) []*City {
	return g.citiesOwnedBy(p)
}

// NextCityAwaitingProduction returns the first (by id order) city of p
// with no production target set, for an AI or UI driving "act on
// whatever needs a decision next" (§4.J).
func (g *Game) NextCityAwaitingProduction(p PlayerNum) (*City, bool) {
	for _, c := range g.citiesOwnedBy(p) {
		if c.AwaitingProduction() {
			return c, true
		}
	}
	return nil, false
}

// NextUnitAwaitingOrders returns the first (by id order) top-level unit
// of p with no standing order and moves remaining, for the same purpose
// as NextCityAwaitingProduction.
func (g *Game) NextUnitAwaitingOrders(p PlayerNum) (*Unit, bool) {
	for _, u := range g.toplevelUnitsOwnedBy(p) {
		if u.Orders == nil && u.MovesRemaining > 0 {
			return u, true
		}
	}
	return nil, false
}

// Victor scans all cities and top-level units and returns the sole
// belligerent player represented, if there is exactly one (§4.H).
// Neutral cities never contribute.
func (g *Game) Victor() (PlayerNum, bool) {
	players := map[PlayerNum]bool{}
	for _, c := range g.Map.AllCities() {
		if !c.Alignment.Neutral {
			players[c.Alignment.Player] = true
		}
	}
	for _, u := range g.Map.AllUnits() {
		if u.IsCarried() {
			continue
		}
		if !u.Alignment.Neutral {
			players[u.Alignment.Player] = true
		}
	}
	if len(players) != 1 {
		return 0, false
	}
	for p := range players {
		return p, true
	}
	return 0, false
}

// PlayerScore is one player's standing on the leaderboard.
type PlayerScore struct {
	Player PlayerNum
	Score  float64
}

// Score computes player p's score: 2 points per owned city, 1 point per
// hp of owned units, and a tenth of a point per distinct tile the player
// has ever observed (§6, resolving the spec's open scoring question).
func (g *Game) Score(p PlayerNum) float64 {
	cities := 0
	for range g.citiesOwnedBy(p) {
		cities++
	}
	hpSum := 0
	for _, u := range g.Map.AllUnits() {
		if !u.Alignment.Neutral && u.Alignment.Player == p {
			hpSum += u.HP
		}
	}
	observed := 0
	if tracker, ok := g.PerPlayerObs[p]; ok {
		observed = tracker.Count()
	}
	return float64(2*cities+hpSum) + float64(observed)/10.0
}

// Leaderboard returns every player's score, highest first.
func (g *Game) Leaderboard() []PlayerScore {
	out := make([]PlayerScore, g.numPlayers)
	for i := 0; i < g.numPlayers; i++ {
		out[i] = PlayerScore{Player: PlayerNum(i), Score: g.Score(PlayerNum(i))}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}
