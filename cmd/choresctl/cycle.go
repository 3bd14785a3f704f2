package main

import (
	"fmt"
	"io"
	"time"
	_ "time/tzdata"

	"chore-app/internal/calendar"
	"chore-app/internal/entities"

	"github.com/spf13/cobra"
)

func cycleCmd() *cobra.Command {
	var (
		at string
		tz string
	)

	cmd := &cobra.Command{
		Use:   "cycle",
		Short: "Print the calendar facts of an instant",
		RunE: func(cmd *cobra.Command, _ []string) error {
			loc, err := time.LoadLocation(tz)
			if err != nil {
				return fmt.Errorf("timezone %q: %w", tz, err)
			}
			now := time.Now()
			if at != "" {
				if now, err = time.Parse(time.RFC3339, at); err != nil {
					return fmt.Errorf("--at: %w", err)
				}
			}
			printCycle(cmd.OutOrStdout(), entities.DescribeCycle(now.In(loc)))
			return nil
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "Instant to describe (RFC3339, default now)")
	cmd.Flags().StringVar(&tz, "tz", "UTC", "Household time zone")
	return cmd
}

func printCycle(out io.Writer, info entities.CycleInfo) {
	_, _ = fmt.Fprintf(out, "now:               %s (%s)\n", info.Now.Format(time.RFC3339), info.Now.Weekday())
	_, _ = fmt.Fprintf(out, "cycle:             %s - %s\n", info.Cycle.Display(), info.CycleEnd.Display())
	_, _ = fmt.Fprintf(out, "week_start_date:   %s\n", info.Cycle)
	_, _ = fmt.Fprintf(out, "next cycle:        %s\n", info.Next)
	_, _ = fmt.Fprintf(out, "rated cycle:       %s\n", info.Previous)
	_, _ = fmt.Fprintf(out, "rotation day:      %t (%s)\n", info.IsRotationDay, calendar.RotationDay)
	_, _ = fmt.Fprintf(out, "quality check day: %t (%s)\n", info.IsQualityCheckDay, calendar.QualityCheckDay)
}
