package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/rotinasync/rotina/internal/storage"
	"github.com/spf13/cobra"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List all saved workout templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		st := storage.NewStorage()

		templates, err := storage.NewTemplateStore(st).Load()
		if err != nil {
			return fmt.Errorf("Failed to load templates: %w", err)
		}

		if len(templates) == 0 {
			fmt.Println("No templates yet. Create one with 'rotina create-template'")
			return nil
		}

		yellow := color.New(color.FgYellow).SprintFunc()
		cyan := color.New(color.FgCyan).SprintFunc()

		for i, t := range templates {
			sets := 0
			for _, ex := range t.Exercises {
				sets += len(ex.Sets)
			}
			fmt.Printf("%s %s %s\n",
				cyan(fmt.Sprintf("%d.", i+1)),
				yellow(t.Name),
				fmt.Sprintf("(%d exercises, %d sets)", len(t.Exercises), sets))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(templatesCmd)
}
