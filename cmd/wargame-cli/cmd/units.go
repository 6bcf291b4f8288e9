package cmd

import (
	"fmt"
	"strings"
)

func runUnits(sess *session) error {
	p := sess.current()
	units := p.OwnedUnits()
	cities := p.OwnedCities()

	var sb strings.Builder
	fmt.Fprintf(&sb, "Player %d units:\n", p.Num())
	for _, u := range units {
		orders := "none"
		if u.Orders != nil {
			orders = u.Orders.Kind.String()
		}
		fmt.Fprintf(&sb, "  #%d %s at %s hp=%d moves=%d/%d orders=%s\n",
			u.ID, u.Type, u.Loc, u.HP, u.MovesRemaining, u.Type.MovesPerTurn(), orders)
	}
	fmt.Fprintf(&sb, "Player %d cities:\n", p.Num())
	for _, c := range cities {
		production := "none"
		if c.Production != nil {
			production = c.Production.String()
		}
		fmt.Fprintf(&sb, "  #%d %s at %s progress=%d production=%s\n",
			c.ID, c.Name, c.Loc, c.ProductionProgress, production)
	}

	return printResult(sb.String(), map[string]any{"units": units, "cities": cities})
}
