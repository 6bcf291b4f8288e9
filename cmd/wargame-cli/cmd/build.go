package cmd

import "fmt"

func runBuild(sess *session, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: build <x,y> <unit-type>")
	}
	loc, err := parseLocation(args[0])
	if err != nil {
		return err
	}
	t, err := parseUnitType(args[1])
	if err != nil {
		return err
	}
	if err := sess.current().SetProductionByLoc(loc, t); err != nil {
		return err
	}
	return printResult(fmt.Sprintf("city at %s now producing %s", loc, t), nil)
}

func runClear(sess *session, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: clear <x,y>")
	}
	loc, err := parseLocation(args[0])
	if err != nil {
		return err
	}
	if err := sess.current().ClearProduction(loc, true); err != nil {
		return err
	}
	return printResult(fmt.Sprintf("city at %s production cleared", loc), nil)
}
