package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/turnforge/ironfront/pathing"
	"github.com/turnforge/ironfront/services/tracedump"
	"github.com/turnforge/ironfront/simfixture"
)

var (
	traceBucket    string
	traceRegion    string
	traceEndpoint  string
	traceAccessKey string
	traceSecretKey string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a scenario's moves through the Driver until they settle or ticks run out",
	Long: `run drives every scenario move through pathing.Driver, one tick at a
time, until every unit reaches OK or FAILED or the scenario's tick budget
is exhausted, then prints one line per move. With --verbose it also prints
every pending unit's verdict on every tick.

Examples:
  ironfront-sim run --scenario testdata/crossing.yaml
  ironfront-sim run --scenario testdata/crossing.yaml --trace-bucket stuck-routes`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVar(&traceBucket, "trace-bucket", "", "upload stuck/failed routes to this S3 bucket (optional)")
	runCmd.Flags().StringVar(&traceRegion, "trace-region", "us-east-1", "region for --trace-bucket")
	runCmd.Flags().StringVar(&traceEndpoint, "trace-endpoint", "", "S3-compatible endpoint URL for --trace-bucket (R2/minio)")
	runCmd.Flags().StringVar(&traceAccessKey, "trace-access-key", "", "access key for --trace-bucket")
	runCmd.Flags().StringVar(&traceSecretKey, "trace-secret-key", "", "secret key for --trace-bucket")
	rootCmd.AddCommand(runCmd)
}

type moveOutcome struct {
	Unit      string              `json:"unit"`
	Verdict   string              `json:"verdict"`
	Tick      int                 `json:"settled_tick"`
	Waypoints []pathing.TileCoord `json:"waypoints,omitempty"`
}

func runRun(cmd *cobra.Command, args []string) error {
	path, err := getScenarioPath()
	if err != nil {
		return err
	}
	sc, err := simfixture.Load(path)
	if err != nil {
		return err
	}

	driver, w := simfixture.NewDriver(sc)

	budgetLimit := getBudget()
	if budgetLimit == 0 {
		budgetLimit = sc.Budget
	}

	var dumper *tracedump.Store
	if traceBucket != "" {
		s, err := tracedump.NewStore(context.Background(), tracedump.Config{
			Region: traceRegion, Bucket: traceBucket, EndpointURL: traceEndpoint,
			AccessKey: traceAccessKey, SecretKey: traceSecretKey,
		})
		if err != nil {
			return fmt.Errorf("ironfront-sim: trace store: %w", err)
		}
		dumper = s
	}

	pending := make(map[string]simfixture.ScenarioMove, len(sc.Moves))
	for _, m := range sc.Moves {
		pending[m.Unit] = m
	}
	outcomes := make(map[string]*moveOutcome, len(sc.Moves))

	budget := &pathing.SearchBudget{Limit: budgetLimit}
	for tick := 1; tick <= sc.Ticks && len(pending) > 0; tick++ {
		w.Tick()
		driver.UpdateTick(budget)

		for id, m := range pending {
			unit := w.ByID(id)
			if unit == nil {
				delete(pending, id)
				continue
			}
			rv := driver.Route(unit, m.TargetX, m.TargetY, budget)
			if isVerbose() {
				fmt.Printf("tick %d: %s -> %s\n", tick, id, colorVerdict(rv))
			}
			switch rv {
			case pathing.RESCHEDULE:
				w.Enqueue(unit)
			case pathing.OK, pathing.FAILED:
				outcomes[id] = &moveOutcome{Unit: id, Verdict: rv.String(), Tick: tick, Waypoints: unit.Move.Waypoints}
				delete(pending, id)
				if rv == pathing.FAILED && dumper != nil {
					snap := tracedump.NewSnapshot(unit, rv.String(), m.TargetX, m.TargetY, w.FrameNumber())
					if _, err := dumper.Upload(context.Background(), snap); err != nil {
						fmt.Printf("ironfront-sim: trace upload failed for %s: %v\n", id, err)
					}
				}
			}
		}
	}

	for id, m := range pending {
		unit := w.ByID(id)
		outcomes[id] = &moveOutcome{Unit: id, Verdict: "TIMEOUT", Tick: sc.Ticks, Waypoints: unit.Move.Waypoints}
		if dumper != nil {
			snap := tracedump.NewSnapshot(unit, "TIMEOUT", m.TargetX, m.TargetY, w.FrameNumber())
			dumper.Upload(context.Background(), snap)
		}
	}

	results := make([]*moveOutcome, 0, len(outcomes))
	for _, m := range sc.Moves {
		if o, ok := outcomes[m.Unit]; ok {
			results = append(results, o)
		}
	}

	if isJSONOutput() {
		return NewOutputFormatter().Print(results)
	}
	for _, o := range results {
		fmt.Printf("%-12s settled %-9s at tick %-3d  %d waypoints\n", o.Unit, o.Verdict, o.Tick, len(o.Waypoints))
	}
	return nil
}
