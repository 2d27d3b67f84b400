package cmd

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rotinasync/rotina/internal/models"
	"github.com/rotinasync/rotina/internal/storage"
	"github.com/rotinasync/rotina/internal/utils"
	"github.com/spf13/cobra"
)

var (
	newTemplateName  string
	newTemplateFile  string
	newExerciseSpecs []string
)

var createTemplateCmd = &cobra.Command{
	Use:   "create-template",
	Short: "Create a new workout template from flags or a TOML file",
	RunE: func(cmd *cobra.Command, args []string) error {
		var template *models.Template

		if newTemplateFile != "" {
			parsed, err := utils.ParseTemplateFromTOML(newTemplateFile)
			if err != nil {
				return fmt.Errorf("Failed to parse template file: %w", err)
			}
			template = parsed
		} else {
			template = &models.Template{Name: newTemplateName}
			for _, spec := range newExerciseSpecs {
				exercise, err := utils.ParseExerciseFlag(spec)
				if err != nil {
					return err
				}
				template.Exercises = append(template.Exercises, exercise)
			}
		}

		template.ID = uuid.New().String()
		template.CreatedAt = time.Now().UTC()

		if err := template.Validate(); err != nil {
			return err
		}

		st := storage.NewStorage()
		if err := storage.NewTemplateStore(st).Add(*template); err != nil {
			return fmt.Errorf("Failed to save template: %w", err)
		}

		fmt.Printf("✅ Created template '%s' with %d exercise(s)\n", template.Name, len(template.Exercises))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(createTemplateCmd)

	createTemplateCmd.Flags().StringVarP(&newTemplateName, "name", "n", "", "Template name")
	createTemplateCmd.Flags().StringVarP(&newTemplateFile, "file", "f", "", "TOML file with the template definition")
	createTemplateCmd.Flags().StringArrayVarP(&newExerciseSpecs, "exercise", "e", nil,
		"Exercise with target sets, e.g. \"Supino:10@50,8@55\" (repeatable)")
}
