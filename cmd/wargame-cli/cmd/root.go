// Package cmd is the wargame-cli command tree: a cobra/viper-driven
// demo consumer of the core engine, in the same structure as the
// teacher's cmd/cli/cmd package (root.go's OnInitialize + PersistentFlags
// + viper binding), adapted from a remote-server presenter to a local,
// in-process game held for the lifetime of one REPL session. The core
// engine has no save/load (§1 Non-goals), so this CLI doesn't either —
// it builds one fresh game at startup and plays it interactively.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile    string
	mapFile    string
	mapWidth   int
	mapHeight  int
	numPlayers int
	fogOfWar   bool
	wrapX      bool
	wrapY      bool
	seed       int64
	jsonOut    bool
)

var rootCmd = &cobra.Command{
	Use:   "wargame-cli",
	Short: "Interactive command-line driver for the wargame engine",
	Long: `wargame-cli starts a fresh game from the given configuration (or a
map-text fixture) and drops into an interactive session where each line
is one command: status, units, move, dir, order, activate, disband,
build, clear, begin, end, force-end, features, quit.

Examples:
  wargame-cli --map fixtures/conquest.txt --players 2
  wargame-cli --width 10 --height 10 --players 2 --fog --wrap-x`,
	SilenceUsage: true,
	RunE:         runRepl,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $HOME/.wargame.yaml)")
	rootCmd.PersistentFlags().StringVar(&mapFile, "map", "", "path to a map-text fixture (see spec §6); overrides --width/--height")
	rootCmd.PersistentFlags().IntVar(&mapWidth, "width", 10, "map width, if not loading --map")
	rootCmd.PersistentFlags().IntVar(&mapHeight, "height", 10, "map height, if not loading --map")
	rootCmd.PersistentFlags().IntVar(&numPlayers, "players", 2, "number of players")
	rootCmd.PersistentFlags().BoolVar(&fogOfWar, "fog", false, "enable fog of war")
	rootCmd.PersistentFlags().BoolVar(&wrapX, "wrap-x", false, "wrap the map horizontally")
	rootCmd.PersistentFlags().BoolVar(&wrapY, "wrap-y", false, "wrap the map vertically")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 1, "RNG seed, for reproducible combat")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "emit JSON instead of text tables")

	viper.BindPFlag("map", rootCmd.PersistentFlags().Lookup("map"))
	viper.BindPFlag("width", rootCmd.PersistentFlags().Lookup("width"))
	viper.BindPFlag("height", rootCmd.PersistentFlags().Lookup("height"))
	viper.BindPFlag("players", rootCmd.PersistentFlags().Lookup("players"))
	viper.BindPFlag("fog", rootCmd.PersistentFlags().Lookup("fog"))
	viper.BindPFlag("wrap-x", rootCmd.PersistentFlags().Lookup("wrap-x"))
	viper.BindPFlag("wrap-y", rootCmd.PersistentFlags().Lookup("wrap-y"))
	viper.BindPFlag("seed", rootCmd.PersistentFlags().Lookup("seed"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".wargame")
	}

	viper.SetEnvPrefix("WARGAME")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	_ = viper.ReadInConfig()
}

func isJSONOutput() bool {
	return viper.GetBool("json")
}
