package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/rotinasync/rotina/internal/storage"
	"github.com/spf13/cobra"
)

var showTemplateCmd = &cobra.Command{
	Use:   "show-template [name]",
	Short: "Show one template with its target sets",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st := storage.NewStorage()

		template, err := storage.NewTemplateStore(st).Find(args[0])
		if err != nil {
			return err
		}

		green := color.New(color.FgGreen).SprintFunc()
		cyan := color.New(color.FgCyan).SprintFunc()
		yellow := color.New(color.FgYellow).SprintFunc()

		fmt.Printf("%s\n", green(template.Name))
		fmt.Printf("%s %s\n\n", cyan("Created:"), template.CreatedAt.Format("2006-01-02"))

		for exIdx, ex := range template.Exercises {
			fmt.Printf("%s %s\n", cyan(fmt.Sprintf("%d.", exIdx+1)), yellow(ex.Name))
			for setIdx, set := range ex.Sets {
				fmt.Printf("   Set %d: %s reps @ %s kg\n", setIdx+1, set.Reps, set.Weight)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showTemplateCmd)
}
