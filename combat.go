package wargame

// RandomDraw returns a uniformly distributed value in [0,n). The engine
// supplies one backed by its seeded RNG so combat participates in the
// deterministic replay story used by propose_* clones (§5, §9).
type RandomDraw func(n int) int

// CombatOutcome is the result of resolving a fight between an attacker
// and a defender, exposing the per-round damage sequence so a UI can
// animate it (§4.E).
type CombatOutcome struct {
	attacker          *Unit
	defender          *Unit
	rounds            []bool // true if the attacker took damage that round, false if the defender did
	attackerDestroyed bool
	defenderDestroyed bool
}

// Attacker returns the unit that initiated the fight.
func (o *CombatOutcome) Attacker() *Unit { return o.attacker }

// Defender returns the unit that was fought.
func (o *CombatOutcome) Defender() *Unit { return o.defender }

// Destroyed returns the unit that reached hp=0, or nil if neither did
// (which never happens: ResolveCombat always runs to a decision).
func (o *CombatOutcome) Destroyed() *Unit {
	switch {
	case o.attackerDestroyed:
		return o.attacker
	case o.defenderDestroyed:
		return o.defender
	default:
		return nil
	}
}

// Victorious returns the unit still standing.
func (o *CombatOutcome) Victorious() *Unit {
	if o.attackerDestroyed {
		return o.defender
	}
	return o.attacker
}

// Rounds is the recorded damage sequence: rounds[i] is true if the
// attacker was the one hit in round i.
func (o *CombatOutcome) Rounds() []bool {
	return o.rounds
}

// ResolveCombat fights attacker against defender to a decision, mutating
// each unit's hp as damage lands. Each round exactly one side loses one
// hp, chosen by a fair draw weighted by the *other* side's current hp: a
// participant with hp=3 facing hp=1 takes damage with probability 1/4
// (the opponent's share of total hp), so the side with less hp is more
// likely to be the one still losing hp as the fight wears on (§4.E).
//
// draw is supplied by the caller (the Game wraps its own seeded source
// and counts draws) so that combat outcomes participate in the game's
// deterministic replay story used by propose_* clones.
func ResolveCombat(attacker, defender *Unit, draw RandomDraw) *CombatOutcome {
	o := &CombatOutcome{attacker: attacker, defender: defender}
	for attacker.HP > 0 && defender.HP > 0 {
		total := attacker.HP + defender.HP
		attackerHit := draw(total) < defender.HP
		o.rounds = append(o.rounds, attackerHit)
		if attackerHit {
			attacker.HP--
		} else {
			defender.HP--
		}
	}
	o.attackerDestroyed = attacker.HP == 0
	o.defenderDestroyed = defender.HP == 0
	return o
}

// CityCombatOutcome is the result of an attacker fighting a city's
// one-hp garrison (§4.E, invoked after the moving unit defeats any
// occupying unit, when it is capable of occupying cities).
type CityCombatOutcome struct {
	Attacker          *Unit
	City              *City
	Rounds            []bool // true if the attacker took damage that round
	AttackerDestroyed bool
	CityDestroyed     bool
}

// ResolveCityCombat fights attacker against city to a decision using the
// same hp-weighted fair draw as ResolveCombat, treating the city's
// single hp as the defender's.
func ResolveCityCombat(attacker *Unit, city *City, draw RandomDraw) *CityCombatOutcome {
	o := &CityCombatOutcome{Attacker: attacker, City: city}
	for attacker.HP > 0 && city.HP > 0 {
		total := attacker.HP + city.HP
		attackerHit := draw(total) < city.HP
		o.Rounds = append(o.Rounds, attackerHit)
		if attackerHit {
			attacker.HP--
		} else {
			city.HP--
		}
	}
	o.AttackerDestroyed = attacker.HP == 0
	o.CityDestroyed = city.HP == 0
	return o
}
