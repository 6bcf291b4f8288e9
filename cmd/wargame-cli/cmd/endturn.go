package cmd

import "fmt"

func runBeginTurn(sess *session) error {
	start, err := sess.current().BeginTurn()
	if err != nil {
		return err
	}
	text := fmt.Sprintf("turn %d begun for player %d: %d production outcome(s), %d order outcome(s)\n",
		sess.game.Turn(), sess.current().Num(), len(start.ProductionOutcomes), len(start.OrdersResults))
	for _, o := range start.ProductionOutcomes {
		if o.Unit != nil {
			text += fmt.Sprintf("  city %d produced %s\n", o.City.ID, o.Unit.Type)
		} else {
			text += fmt.Sprintf("  city %d blocked producing %s\n", o.City.ID, o.UnitType)
		}
	}
	return printResult(text, start)
}

func runEndTurn(sess *session) error {
	p := sess.current()
	if err := p.EndTurn(); err != nil {
		return err
	}
	return printResult(fmt.Sprintf("player %d ended their turn", p.Num()), nil)
}

func runForceEndTurn(sess *session) error {
	p := sess.current()
	if err := p.ForceEndTurn(); err != nil {
		return err
	}
	return printResult(fmt.Sprintf("player %d's turn force-ended", p.Num()), nil)
}
