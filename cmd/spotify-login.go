package cmd

import (
	"fmt"

	"github.com/rotinasync/rotina/internal/storage"
	"github.com/spf13/cobra"
)

var spotifyToken string

// The OAuth/PKCE dance happens outside this program; this command just
// stores the resulting bearer token.
var spotifyLoginCmd = &cobra.Command{
	Use:   "spotify-login",
	Short: "Store a Spotify bearer token for genre correlation",
	RunE: func(cmd *cobra.Command, args []string) error {
		st := storage.NewStorage()

		if err := storage.NewTokenStore(st).SetToken(spotifyToken); err != nil {
			return fmt.Errorf("failed to store token: %w", err)
		}

		fmt.Println("✅ Spotify token stored")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(spotifyLoginCmd)

	spotifyLoginCmd.Flags().StringVarP(&spotifyToken, "token", "t", "", "Bearer access token")
	spotifyLoginCmd.MarkFlagRequired("token")
}
