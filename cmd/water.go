package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/rotinasync/rotina/internal/storage"
	"github.com/spf13/cobra"
)

var (
	waterAddML  int
	waterGoalML int
	waterReset  bool
)

var waterCmd = &cobra.Command{
	Use:   "water",
	Short: "Show or update the daily water counter",
	RunE: func(cmd *cobra.Command, args []string) error {
		st := storage.NewStorage()
		routine := storage.NewRoutineStore(st)

		state, err := routine.Water()
		if err != nil {
			return fmt.Errorf("failed to load water counter: %w", err)
		}

		changed := false
		if waterReset {
			state.ConsumedML = 0
			changed = true
		}
		if waterAddML > 0 {
			state.ConsumedML += waterAddML
			changed = true
		}
		if waterGoalML > 0 {
			state.GoalML = waterGoalML
			changed = true
		}

		if changed {
			if err := routine.SaveWater(state); err != nil {
				return fmt.Errorf("failed to save water counter: %w", err)
			}
		}

		blue := color.New(color.FgBlue, color.Bold).SprintFunc()
		fmt.Printf("%s / %.2f L\n", blue(fmt.Sprintf("%.2f", float64(state.ConsumedML)/1000)), float64(state.GoalML)/1000)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(waterCmd)

	waterCmd.Flags().IntVarP(&waterAddML, "add", "a", 0, "Add this many milliliters")
	waterCmd.Flags().IntVarP(&waterGoalML, "goal", "g", 0, "Set the daily goal in milliliters")
	waterCmd.Flags().BoolVarP(&waterReset, "reset", "r", false, "Reset the counter to zero")
}
