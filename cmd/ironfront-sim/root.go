package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	scenarioPath string
	jsonOut      bool
	verbose      bool
	budgetFlag   int
)

// rootCmd is the base command when ironfront-sim is called without a
// subcommand.
var rootCmd = &cobra.Command{
	Use:          "ironfront-sim",
	Short:        "Run hierarchical unit-pathfinding scenarios against the Driver",
	SilenceUsage: true,
	Long: `ironfront-sim drives pathing.Driver against scenario fixtures: a grid,
its gateways and zones, a unit roster, and a list of moves to issue.

Examples:
  ironfront-sim run --scenario testdata/crossing.yaml
  ironfront-sim validate --scenario testdata/crossing.yaml --json

Global Flags:
  --scenario string   Path to the scenario fixture (or IRONFRONT_SCENARIO env var)
  --budget int        Per-tick search iteration budget (or IRONFRONT_BUDGET env var)
  --json              Output in JSON format
  --verbose           Show per-tick driver verdicts`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&scenarioPath, "scenario", "", "scenario fixture path (env: IRONFRONT_SCENARIO)")
	rootCmd.PersistentFlags().IntVar(&budgetFlag, "budget", 0, "search iteration budget per tick (env: IRONFRONT_BUDGET)")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "show per-tick driver verdicts")

	viper.BindPFlag("scenario", rootCmd.PersistentFlags().Lookup("scenario"))
	viper.BindPFlag("budget", rootCmd.PersistentFlags().Lookup("budget"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	viper.SetEnvPrefix("IRONFRONT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func getScenarioPath() (string, error) {
	if rootCmd.PersistentFlags().Changed("scenario") {
		return scenarioPath, nil
	}
	if p := viper.GetString("scenario"); p != "" {
		return p, nil
	}
	return "", fmt.Errorf("scenario fixture is required (set --scenario flag or IRONFRONT_SCENARIO env var)")
}

func getBudget() int {
	if rootCmd.PersistentFlags().Changed("budget") {
		return budgetFlag
	}
	if b := viper.GetInt("budget"); b != 0 {
		return b
	}
	return 0
}

func isJSONOutput() bool { return viper.GetBool("json") }
func isVerbose() bool    { return viper.GetBool("verbose") }

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
