package cmd

import (
	"context"
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/rotinasync/rotina/internal/spotify"
	"github.com/rotinasync/rotina/internal/storage"
	"github.com/spf13/cobra"
)

// profileCmd shows the linked Spotify account and what has been playing.
var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the linked Spotify profile and recent plays",
	RunE: func(cmd *cobra.Command, args []string) error {
		st := storage.NewStorage()
		client := spotify.NewClient(storage.NewTokenStore(st))
		ctx := context.Background()

		profile, err := client.Me(ctx)
		if err != nil {
			return fmt.Errorf("failed to load profile (try 'rotina spotify-login'): %w", err)
		}

		green := color.New(color.FgGreen).SprintFunc()
		cyan := color.New(color.FgCyan).SprintFunc()

		name := profile.DisplayName
		if name == "" {
			name = profile.ID
		}
		fmt.Printf("%s %s\n\n", green("Spotify:"), name)

		events, err := client.RecentlyPlayed(ctx)
		if err != nil {
			return fmt.Errorf("failed to load recent plays: %w", err)
		}
		if len(events) == 0 {
			fmt.Println("Nothing played recently")
			return nil
		}

		fmt.Println(cyan("Recently played:"))
		artistCount := make(map[string]int)
		for _, ev := range events {
			var artist string
			if len(ev.Track.Artists) > 0 {
				artist = ev.Track.Artists[0].Name
			}
			for _, a := range ev.Track.Artists {
				artistCount[a.Name]++
			}
			fmt.Printf("  %s — %s\n", ev.Track.Name, artist)
		}

		type tally struct {
			name  string
			plays int
		}
		tallies := make([]tally, 0, len(artistCount))
		for name, plays := range artistCount {
			tallies = append(tallies, tally{name, plays})
		}
		sort.Slice(tallies, func(i, j int) bool {
			if tallies[i].plays != tallies[j].plays {
				return tallies[i].plays > tallies[j].plays
			}
			return tallies[i].name < tallies[j].name
		})

		fmt.Printf("\n%s\n", cyan("Top artists:"))
		for i, t := range tallies {
			if i == 5 {
				break
			}
			fmt.Printf("  %d. %s (%d plays)\n", i+1, t.name, t.plays)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
}
