package cmd

import (
	"fmt"

	"github.com/rotinasync/rotina/internal/storage"
	"github.com/spf13/cobra"
)

var spotifyLogoutCmd = &cobra.Command{
	Use:   "spotify-logout",
	Short: "Remove the stored Spotify token",
	RunE: func(cmd *cobra.Command, args []string) error {
		st := storage.NewStorage()

		if err := storage.NewTokenStore(st).Clear(); err != nil {
			return fmt.Errorf("failed to clear token: %w", err)
		}

		fmt.Println("✅ Signed out of Spotify")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(spotifyLogoutCmd)
}
