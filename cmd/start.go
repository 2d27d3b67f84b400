package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/rotinasync/rotina/internal/session"
	"github.com/rotinasync/rotina/internal/spotify"
	"github.com/rotinasync/rotina/internal/storage"
	"github.com/rotinasync/rotina/internal/utils"
	"github.com/spf13/cobra"
)

var startCmd = &cobra.Command{
	Use:   "start [template]",
	Short: "Start a live workout session from a template",
	Long: `Starts a timed session and drops into an interactive prompt:

  show                      print the session with the current log
  time                      print the elapsed time
  reps <ex> <set> <value>   log the reps of one set
  weight <ex> <set> <value> log the weight of one set
  check <ex> <set>          toggle a set's completed flag
  finish                    finalize and save to history (asks first)
  cancel                    abandon the session, nothing is saved`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st := storage.NewStorage()

		template, err := storage.NewTemplateStore(st).Find(args[0])
		if err != nil {
			return err
		}
		if len(template.Exercises) == 0 {
			return fmt.Errorf("template %q has no exercises", template.Name)
		}

		history := storage.NewHistoryLog(st)
		gateway := spotify.NewClient(storage.NewTokenStore(st))

		eng := session.New(*template, history, gateway)
		defer eng.Stop()

		green := color.New(color.FgGreen).SprintFunc()
		fmt.Printf("%s Session started for '%s'. Type 'help' for commands.\n", green("✅"), template.Name)
		printSession(eng)

		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print("> ")
			if !scanner.Scan() {
				// EOF abandons the session, same as cancel.
				fmt.Println("\nSession abandoned, nothing was saved")
				return nil
			}

			fields := strings.Fields(scanner.Text())
			if len(fields) == 0 {
				continue
			}

			done, err := runSessionCommand(eng, scanner, fields)
			if err != nil {
				color.New(color.FgRed).Printf("❌ %v\n", err)
				continue
			}
			if done {
				return nil
			}
		}
	},
}

// runSessionCommand executes one line of the session prompt. It returns true
// when the loop should exit.
func runSessionCommand(eng *session.Engine, scanner *bufio.Scanner, fields []string) (bool, error) {
	switch fields[0] {
	case "help":
		fmt.Println("Commands: show, time, reps <ex> <set> <value>, weight <ex> <set> <value>, check <ex> <set>, finish, cancel")

	case "show":
		printSession(eng)

	case "time":
		fmt.Println(utils.FormatClock(eng.Elapsed()))

	case "reps", "weight":
		if len(fields) != 4 {
			return false, fmt.Errorf("usage: %s <exercise> <set> <value>", fields[0])
		}
		exIdx, setIdx, err := parseIndices(fields[1], fields[2])
		if err != nil {
			return false, err
		}
		field := session.FieldReps
		if fields[0] == "weight" {
			field = session.FieldWeight
		}
		if err := eng.UpdateSet(exIdx, setIdx, field, fields[3]); err != nil {
			return false, err
		}

	case "check":
		if len(fields) != 3 {
			return false, fmt.Errorf("usage: check <exercise> <set>")
		}
		exIdx, setIdx, err := parseIndices(fields[1], fields[2])
		if err != nil {
			return false, err
		}
		if err := eng.ToggleSet(exIdx, setIdx); err != nil {
			return false, err
		}

	case "finish":
		fmt.Print("Finalize this session? [y/N] ")
		if !scanner.Scan() || !strings.EqualFold(strings.TrimSpace(scanner.Text()), "y") {
			fmt.Println("Not finalized, session is still running")
			return false, nil
		}

		record, err := eng.Finalize(context.Background())
		if err != nil {
			return false, fmt.Errorf("%w — the session is still active, you can retry", err)
		}

		color.New(color.FgGreen).Printf("✅ Session saved to history (%s)\n", utils.FormatClock(record.DurationSeconds))
		if len(record.Genres) > 0 {
			fmt.Printf("Soundtrack: %s\n", strings.Join(record.Genres, ", "))
		}
		return true, nil

	case "cancel":
		eng.Stop()
		fmt.Println("Session abandoned, nothing was saved")
		return true, nil

	default:
		return false, fmt.Errorf("unknown command %q, type 'help'", fields[0])
	}
	return false, nil
}

func printSession(eng *session.Engine) {
	cyan := color.New(color.FgCyan).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	template := eng.Template()
	fmt.Printf("\n%s %s\n\n", red("Elapsed:"), utils.FormatClock(eng.Elapsed()))

	for exIdx, ex := range template.Exercises {
		fmt.Printf("%s %s\n", cyan(fmt.Sprintf("%d.", exIdx+1)), yellow(ex.Name))

		fmt.Println("   ┌───────┬───────────────┬───────────────┬──────┐")
		fmt.Println("   │  Set  │ Target        │ Logged        │ Done │")
		fmt.Println("   ├───────┼───────────────┼───────────────┼──────┤")
		for setIdx, target := range ex.Sets {
			entry, _ := eng.Entry(exIdx, setIdx)
			mark := " "
			if entry.Completed {
				mark = "x"
			}
			fmt.Printf("   │ %-5d │ %-13s │ %-13s │  %s   │\n",
				setIdx+1,
				fmt.Sprintf("%s × %skg", target.Reps, target.Weight),
				fmt.Sprintf("%s × %skg", entry.Reps, entry.Weight),
				mark)
		}
		fmt.Println("   └───────┴───────────────┴───────────────┴──────┘")
	}
}

func parseIndices(exArg, setArg string) (int, int, error) {
	exIdx, err := strconv.Atoi(exArg)
	if err != nil || exIdx < 1 {
		return 0, 0, fmt.Errorf("Invalid exercise index. Must be a positive integer")
	}
	setIdx, err := strconv.Atoi(setArg)
	if err != nil || setIdx < 1 {
		return 0, 0, fmt.Errorf("Invalid set index. Must be a positive integer")
	}
	return exIdx - 1, setIdx - 1, nil
}

func init() {
	rootCmd.AddCommand(startCmd)
}
