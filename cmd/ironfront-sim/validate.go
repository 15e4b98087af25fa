package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/turnforge/ironfront/simfixture"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Load a scenario fixture and report its grid/gateway/unit counts",
	Long: `validate parses a scenario fixture without running any moves, useful
for catching a malformed fixture before a long run.

Examples:
  ironfront-sim validate --scenario testdata/crossing.yaml`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

type validation struct {
	Width    int32 `json:"width"`
	Height   int32 `json:"height"`
	Blocked  int   `json:"blocked_tiles"`
	Zones    int   `json:"zones"`
	Gateways int   `json:"gateways"`
	Units    int   `json:"units"`
	Moves    int   `json:"moves"`
}

func runValidate(cmd *cobra.Command, args []string) error {
	path, err := getScenarioPath()
	if err != nil {
		return err
	}
	sc, err := simfixture.Load(path)
	if err != nil {
		return err
	}

	v := validation{
		Width: sc.Width, Height: sc.Height,
		Blocked: len(sc.Blocked), Zones: len(sc.Zones),
		Gateways: len(sc.Gateways), Units: len(sc.Units), Moves: len(sc.Moves),
	}

	if isJSONOutput() {
		return NewOutputFormatter().Print(v)
	}
	fmt.Printf("scenario %s: %dx%d grid, %d blocked tiles, %d zones, %d gateways, %d units, %d moves\n",
		path, v.Width, v.Height, v.Blocked, v.Zones, v.Gateways, v.Units, v.Moves)
	return nil
}
