package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/turnforge/wargame"
)

func runRepl(c *cobra.Command, args []string) error {
	sess, err := newSessionFromFlags()
	if err != nil {
		return err
	}

	fmt.Printf("wargame-cli: new game, %d player(s), turn %d, player %d to act\n",
		len(sess.players), sess.game.Turn(), sess.game.CurrentPlayer())
	fmt.Println(`commands: status, units, move <unit> <x,y>, dir <unit> <North|NorthEast|East|SouthEast|South|SouthWest|West|NorthWest>,
  order <unit> sentry|skip|goto <x,y>|explore, activate <x,y>, disband <unit>,
  build <x,y> <unittype>, clear <x,y>, begin, end, force-end, features, quit`)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("wargame> ")
		if !scanner.Scan() {
			return nil
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		cmdName := fields[0]
		rest := fields[1:]

		if cmdName == "quit" || cmdName == "exit" {
			return nil
		}

		if err := dispatch(sess, cmdName, rest); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
	}
}

func dispatch(sess *session, cmdName string, args []string) error {
	switch cmdName {
	case "status":
		return runStatus(sess)
	case "units":
		return runUnits(sess)
	case "move":
		return runMove(sess, args)
	case "dir":
		return runMoveDirection(sess, args)
	case "order":
		return runOrder(sess, args)
	case "activate":
		return runActivate(sess, args)
	case "disband":
		return runDisband(sess, args)
	case "build":
		return runBuild(sess, args)
	case "clear":
		return runClear(sess, args)
	case "begin":
		return runBeginTurn(sess)
	case "end":
		return runEndTurn(sess)
	case "force-end":
		return runForceEndTurn(sess)
	case "features":
		return runFeatures(sess)
	default:
		return fmt.Errorf("unknown command %q", cmdName)
	}
}

func parseUnitID(s string) (wargame.UnitID, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid unit id %q: %w", s, err)
	}
	return wargame.UnitID(n), nil
}

func parseLocation(s string) (wargame.Location, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return wargame.Location{}, fmt.Errorf("invalid location %q, want \"x,y\"", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return wargame.Location{}, fmt.Errorf("invalid location %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return wargame.Location{}, fmt.Errorf("invalid location %q: %w", s, err)
	}
	return wargame.Location{X: x, Y: y}, nil
}

func parseDirection(s string) (wargame.Direction, error) {
	for _, d := range wargame.AllDirections {
		if strings.EqualFold(d.String(), s) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

func parseUnitType(s string) (wargame.UnitType, error) {
	for _, t := range wargame.UnitTypes {
		if strings.EqualFold(t.String(), s) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown unit type %q", s)
}
