package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/rotinasync/rotina/internal/storage"
	"github.com/spf13/cobra"
)

var (
	activityBed      string
	activityWake     string
	activityTime     string
	activityDistance string
)

var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Show or update the sleep and cardio log",
	RunE: func(cmd *cobra.Command, args []string) error {
		st := storage.NewStorage()
		routine := storage.NewRoutineStore(st)

		log, err := routine.Activity()
		if err != nil {
			return fmt.Errorf("failed to load activity log: %w", err)
		}

		changed := false
		if cmd.Flags().Changed("bed") {
			log.BedTime = activityBed
			changed = true
		}
		if cmd.Flags().Changed("wake") {
			log.WakeTime = activityWake
			changed = true
		}
		if cmd.Flags().Changed("cardio-time") {
			log.CardioTime = activityTime
			changed = true
		}
		if cmd.Flags().Changed("cardio-distance") {
			log.CardioDistance = activityDistance
			changed = true
		}

		if changed {
			if err := routine.SaveActivity(log); err != nil {
				return fmt.Errorf("failed to save activity log: %w", err)
			}
		}

		cyan := color.New(color.FgCyan).SprintFunc()
		fmt.Printf("%s %s → %s\n", cyan("Sleep:"), orDash(log.BedTime), orDash(log.WakeTime))
		fmt.Printf("%s %s, %s km\n", cyan("Cardio:"), orDash(log.CardioTime), orDash(log.CardioDistance))
		return nil
	},
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

func init() {
	rootCmd.AddCommand(activityCmd)

	activityCmd.Flags().StringVar(&activityBed, "bed", "", "Bed time, e.g. 23:00")
	activityCmd.Flags().StringVar(&activityWake, "wake", "", "Wake time, e.g. 07:00")
	activityCmd.Flags().StringVar(&activityTime, "cardio-time", "", "Cardio duration, e.g. 30 min")
	activityCmd.Flags().StringVar(&activityDistance, "cardio-distance", "", "Cardio distance in km")
}
