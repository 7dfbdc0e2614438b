package main

import (
	"context"
	"fmt"
	"os"

	"github.com/birdayz/automat/bt"
	"github.com/birdayz/automat/loop"
	"github.com/birdayz/automat/pkg/log"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a patrol scenario",
	Long:  `Feeds every tick of the scenario to the patrol and alertness agents and logs the actions they take.`,
	Run: func(cmd *cobra.Command, args []string) {
		path, _ := cmd.Flags().GetString("scenario")
		if path == "" && len(args) > 0 {
			path = args[0]
		}
		if err := runScenario(path); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().String("scenario", "", "Scenario YAML file (built-in night watch if empty)")

	// Make 'run' the default if no command is provided.
	rootCmd.Run = runCmd.Run
}

func runScenario(path string) error {
	sc := DefaultScenario()
	if path != "" {
		loaded, err := LoadScenario(path)
		if err != nil {
			return err
		}
		sc = loaded
	}

	logger := log.New().With("scenario", sc.Name)

	patrolIn := make(chan string, len(sc.Ticks))
	alertIn := make(chan string, len(sc.Ticks))
	for _, tick := range sc.Ticks {
		patrolIn <- tick
		alertIn <- tick
	}
	close(patrolIn)
	close(alertIn)

	patrol := NewPatrolMachine(sc.Waypoints, sc.LookTicks)
	patrolLog := logger.With("agent", "patrol")
	alertLog := logger.With("agent", "alertness")

	host := loop.New(loop.WithLog(logger))
	loop.MustRegister(host, loop.NewAgent("patrol", patrol, patrolIn, func(action string) error {
		patrolLog.Info(action, "depth", patrol.Depth())
		return nil
	}))
	loop.MustRegister(host, loop.NewAgent("alertness", NewAlertness(sc.AlarmThreshold), alertIn,
		func(point bt.Statepoint[int, string]) error {
			if alarm, ok := point.Term(); ok {
				alertLog.Warn(alarm)
			}
			return nil
		}))

	return host.Run(context.Background())
}
