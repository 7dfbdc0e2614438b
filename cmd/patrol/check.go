package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check <scenario.yaml>",
	Short: "Validate a scenario file and print its shape",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		sc, err := LoadScenario(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		noises := 0
		for _, tick := range sc.Ticks {
			if tick == inputNoise {
				noises++
			}
		}
		fmt.Printf("%s: %d ticks, %d noises, %d waypoints, alarm at %d\n",
			sc.Name, len(sc.Ticks), noises, sc.Waypoints, sc.AlarmThreshold)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
