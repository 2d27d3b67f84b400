package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/rotinasync/rotina/internal/storage"
	"github.com/rotinasync/rotina/internal/utils"
	"github.com/spf13/cobra"
)

var historyLimit int

// historyCmd lists finalized sessions, newest first.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Display the workout history, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		st := storage.NewStorage()

		records, err := storage.NewHistoryLog(st).Load()
		if err != nil {
			return fmt.Errorf("failed to retrieve history: %w", err)
		}

		if len(records) == 0 {
			fmt.Println("No sessions recorded yet")
			return nil
		}

		if historyLimit > 0 && len(records) > historyLimit {
			records = records[:historyLimit]
		}

		green := color.New(color.FgGreen).SprintFunc()
		cyan := color.New(color.FgCyan).SprintFunc()
		yellow := color.New(color.FgYellow).SprintFunc()

		for _, rec := range records {
			fmt.Printf("%s %s\n", green(rec.TemplateName), utils.FormatSaoPaulo(rec.RecordedAt))
			fmt.Printf("  %s %s\n", cyan("Duration:"), utils.FormatClock(rec.DurationSeconds))
			if len(rec.Genres) > 0 {
				fmt.Printf("  %s %s\n", cyan("Soundtrack:"), strings.Join(rec.Genres, ", "))
			}
			for _, ex := range rec.Exercises {
				fmt.Printf("  %s\n", yellow(ex.Name))
				for setIdx, set := range ex.Series {
					mark := " "
					if set.Completed {
						mark = "✓"
					}
					fmt.Printf("    [%s] Set %d: %s × %skg\n", mark, setIdx+1, set.Reps, set.Weight)
				}
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "l", 0, "Show at most this many sessions (0 = all)")
}
