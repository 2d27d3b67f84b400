package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/rotinasync/rotina/internal/storage"
	"github.com/spf13/cobra"
)

var (
	nutritionBreakfast string
	nutritionLunch     string
	nutritionDinner    string
	nutritionSnacks    string
)

var nutritionCmd = &cobra.Command{
	Use:   "nutrition",
	Short: "Show or update the meal diary",
	RunE: func(cmd *cobra.Command, args []string) error {
		st := storage.NewStorage()
		routine := storage.NewRoutineStore(st)

		log, err := routine.Nutrition()
		if err != nil {
			return fmt.Errorf("failed to load meal diary: %w", err)
		}

		changed := false
		if cmd.Flags().Changed("breakfast") {
			log.Breakfast = nutritionBreakfast
			changed = true
		}
		if cmd.Flags().Changed("lunch") {
			log.Lunch = nutritionLunch
			changed = true
		}
		if cmd.Flags().Changed("dinner") {
			log.Dinner = nutritionDinner
			changed = true
		}
		if cmd.Flags().Changed("snacks") {
			log.Snacks = nutritionSnacks
			changed = true
		}

		if changed {
			if err := routine.SaveNutrition(log); err != nil {
				return fmt.Errorf("failed to save meal diary: %w", err)
			}
		}

		cyan := color.New(color.FgCyan).SprintFunc()
		fmt.Printf("%s %s\n", cyan("Breakfast:"), orDash(log.Breakfast))
		fmt.Printf("%s %s\n", cyan("Lunch:"), orDash(log.Lunch))
		fmt.Printf("%s %s\n", cyan("Dinner:"), orDash(log.Dinner))
		fmt.Printf("%s %s\n", cyan("Snacks:"), orDash(log.Snacks))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(nutritionCmd)

	nutritionCmd.Flags().StringVar(&nutritionBreakfast, "breakfast", "", "What you had for breakfast")
	nutritionCmd.Flags().StringVar(&nutritionLunch, "lunch", "", "What you had for lunch")
	nutritionCmd.Flags().StringVar(&nutritionDinner, "dinner", "", "What you had for dinner")
	nutritionCmd.Flags().StringVar(&nutritionSnacks, "snacks", "", "Snacks along the day")
}
