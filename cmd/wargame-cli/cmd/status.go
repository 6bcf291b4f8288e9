package cmd

import "fmt"

func runStatus(sess *session) error {
	g := sess.game
	leaderboard := g.Leaderboard()

	text := fmt.Sprintf("Turn: %d\nCurrent player: %d\n", g.Turn(), g.CurrentPlayer())
	for _, score := range leaderboard {
		text += fmt.Sprintf("  player %d: score %.1f\n", score.Player, score.Score)
	}

	var victor any
	if v, ok := g.Victor(); ok {
		text += fmt.Sprintf("Victor: player %d\n", v)
		victor = v
	}

	return printResult(text, map[string]any{
		"turn":           g.Turn(),
		"current_player": g.CurrentPlayer(),
		"leaderboard":    leaderboard,
		"victor":         victor,
	})
}
