package cmd

import (
	"fmt"

	"github.com/rotinasync/rotina/internal/storage"
	"github.com/spf13/cobra"
)

var (
	backupExportPath string
	backupImportPath string
)

// backupCmd dumps or restores the whole key/value namespace as TOML.
var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Export or import all data as a TOML dump",
	RunE: func(cmd *cobra.Command, args []string) error {
		if (backupExportPath == "") == (backupImportPath == "") {
			return fmt.Errorf("use exactly one of --export or --import")
		}

		st := storage.NewStorage()

		if backupExportPath != "" {
			if err := st.ExportToTOML(backupExportPath); err != nil {
				return fmt.Errorf("failed to export: %w", err)
			}
			fmt.Printf("✅ Exported data to %s\n", backupExportPath)
			return nil
		}

		if err := st.ImportFromTOML(backupImportPath); err != nil {
			return fmt.Errorf("failed to import: %w", err)
		}
		fmt.Printf("✅ Imported data from %s\n", backupImportPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(backupCmd)

	backupCmd.Flags().StringVarP(&backupExportPath, "export", "e", "", "Write the dump to this file")
	backupCmd.Flags().StringVarP(&backupImportPath, "import", "i", "", "Restore the dump from this file")
}
