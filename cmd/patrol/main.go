package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "patrol",
	Short: "Patrol drives a guard agent built from composed state machines",
	Long: `Patrol feeds a scripted scenario to a guard built from a pushdown patrol
machine and a noise alertness node, and logs every action the agents take.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
