package cmd

import "fmt"

func runMove(sess *session, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: move <unit-id> <x,y>")
	}
	id, err := parseUnitID(args[0])
	if err != nil {
		return err
	}
	dest, err := parseLocation(args[1])
	if err != nil {
		return err
	}
	transcript, err := sess.current().MoveUnitByID(id, dest)
	if err != nil {
		return err
	}
	return printResult(fmt.Sprintf("moved unit %d: %d step(s), ended at %s, hp=%d",
		id, len(transcript.Components), transcript.Unit.Loc, transcript.Unit.HP), transcript)
}

func runMoveDirection(sess *session, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: dir <unit-id> <direction>")
	}
	id, err := parseUnitID(args[0])
	if err != nil {
		return err
	}
	dir, err := parseDirection(args[1])
	if err != nil {
		return err
	}
	transcript, err := sess.current().MoveUnitByIDInDirection(id, dir)
	if err != nil {
		return err
	}
	return printResult(fmt.Sprintf("moved unit %d: ended at %s, hp=%d",
		id, transcript.Unit.Loc, transcript.Unit.HP), transcript)
}

func runOrder(sess *session, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: order <unit-id> sentry|skip|goto <x,y>|explore")
	}
	id, err := parseUnitID(args[0])
	if err != nil {
		return err
	}
	p := sess.current()

	switch args[1] {
	case "sentry":
		if err := p.OrderUnitSentry(id); err != nil {
			return err
		}
	case "skip":
		if err := p.OrderUnitSkip(id); err != nil {
			return err
		}
	case "explore":
		if err := p.OrderUnitExplore(id); err != nil {
			return err
		}
	case "goto":
		if len(args) != 3 {
			return fmt.Errorf("usage: order <unit-id> goto <x,y>")
		}
		dest, err := parseLocation(args[2])
		if err != nil {
			return err
		}
		if err := p.OrderUnitGoTo(id, dest); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown order kind %q", args[1])
	}

	return printResult(fmt.Sprintf("unit %d ordered: %s", id, args[1]), nil)
}

func runActivate(sess *session, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: activate <x,y>")
	}
	loc, err := parseLocation(args[0])
	if err != nil {
		return err
	}
	if err := sess.current().ActivateUnitByLoc(loc); err != nil {
		return err
	}
	return printResult(fmt.Sprintf("activated unit at %s", loc), nil)
}

func runDisband(sess *session, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: disband <unit-id>")
	}
	id, err := parseUnitID(args[0])
	if err != nil {
		return err
	}
	if err := sess.current().DisbandUnitByID(id); err != nil {
		return err
	}
	return printResult(fmt.Sprintf("disbanded unit %d", id), nil)
}
