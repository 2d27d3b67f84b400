package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rotina",
	Short: "Personal routine tracker: workouts, water, tasks and a Spotify-linked history",
}

func Execute() error {
	return rootCmd.Execute()
}
