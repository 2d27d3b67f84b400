package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/rotinasync/rotina/internal/storage"
	"github.com/spf13/cobra"
)

// statusCmd prints a one-screen summary of the day's routine.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show a summary of today's routine",
	RunE: func(cmd *cobra.Command, args []string) error {
		st := storage.NewStorage()
		routine := storage.NewRoutineStore(st)

		water, err := routine.Water()
		if err != nil {
			return fmt.Errorf("failed to load water counter: %w", err)
		}
		tasks, err := routine.Tasks()
		if err != nil {
			return fmt.Errorf("failed to load tasks: %w", err)
		}
		records, err := storage.NewHistoryLog(st).Load()
		if err != nil {
			return fmt.Errorf("failed to load history: %w", err)
		}

		done := 0
		for _, t := range tasks {
			if t.Done {
				done++
			}
		}

		cyan := color.New(color.FgCyan).SprintFunc()
		fmt.Printf("%s %.2f / %.2f L\n", cyan("Water:"), float64(water.ConsumedML)/1000, float64(water.GoalML)/1000)
		fmt.Printf("%s %d/%d done\n", cyan("Tasks:"), done, len(tasks))
		fmt.Printf("%s %d session(s) recorded\n", cyan("Workouts:"), len(records))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
