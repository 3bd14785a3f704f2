// Package main provides choresctl, the operator tool of the chore rotation
// service: household seeding, scheduler triggers and calendar inspection.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const appName = "choresctl"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   appName,
		Short: "Operate the chore rotation service",
		Long: `choresctl operates the chore rotation service.

It provides:
- seed: provision members, chores and first assignments from a YAML file
- trigger: call the rotate and mark-late endpoints like the scheduler does
- cycle: print the calendar facts of an instant`,
		SilenceUsage: true,
	}

	cmd.AddCommand(seedCmd(), triggerCmd(), cycleCmd())
	return cmd
}
