package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
	"github.com/turnforge/wargame"
)

// session holds the one live game this process drives, plus a facade
// per player (§4.I). There is no persistence layer (§1 Non-goals): the
// session exists only for the lifetime of the process.
type session struct {
	game    *wargame.Game
	players []*wargame.Player
}

func newSessionFromFlags() (*session, error) {
	// Read through viper so config-file and WARGAME_* environment values
	// apply, not only command-line flags.
	mapFile := viper.GetString("map")
	numPlayers := viper.GetInt("players")
	fogOfWar := viper.GetBool("fog")
	seed := viper.GetInt64("seed")
	wrap := wargame.Wrap2d{WrapX: viper.GetBool("wrap-x"), WrapY: viper.GetBool("wrap-y")}

	var (
		game    *wargame.Game
		secrets map[wargame.PlayerNum]wargame.PlayerSecret
	)

	if mapFile != "" {
		text, err := os.ReadFile(mapFile)
		if err != nil {
			return nil, fmt.Errorf("wargame-cli: read map file: %w", err)
		}
		mapGen := func(dims wargame.Dims, wrap wargame.Wrap2d, cityNamer, unitNamer wargame.Namer) *wargame.MapData {
			m, err := wargame.ParseMapText(string(text), wrap, cityNamer, unitNamer)
			if err != nil {
				panic(err)
			}
			return m
		}
		// dims are overridden by the parsed text itself via mapGen
		game, secrets = wargame.NewGame(wargame.Dims{Width: 1, Height: 1}, wrap, numPlayers, fogOfWar, nil, nil, mapGen, seed)
	} else {
		dims := wargame.Dims{Width: viper.GetInt("width"), Height: viper.GetInt("height")}
		game, secrets = wargame.NewGame(dims, wrap, numPlayers, fogOfWar, nil, nil, nil, seed)
	}

	players := make([]*wargame.Player, numPlayers)
	for i := 0; i < numPlayers; i++ {
		p, err := wargame.NewPlayer(game, secrets[wargame.PlayerNum(i)])
		if err != nil {
			return nil, fmt.Errorf("wargame-cli: build player facade: %w", err)
		}
		players[i] = p
	}

	return &session{game: game, players: players}, nil
}

func (s *session) current() *wargame.Player {
	return s.players[s.game.CurrentPlayer()]
}
