package cmd

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/rotinasync/rotina/internal/models"
	"github.com/rotinasync/rotina/internal/storage"
	"github.com/spf13/cobra"
)

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "List the daily tasks",
	RunE: func(cmd *cobra.Command, args []string) error {
		st := storage.NewStorage()

		tasks, err := storage.NewRoutineStore(st).Tasks()
		if err != nil {
			return fmt.Errorf("failed to load tasks: %w", err)
		}

		if len(tasks) == 0 {
			fmt.Println("No tasks. Add one with 'rotina add-task'")
			return nil
		}

		green := color.New(color.FgGreen).SprintFunc()
		for i, t := range tasks {
			mark := " "
			text := t.Text
			if t.Done {
				mark = green("✓")
			}
			fmt.Printf("%d. [%s] %s\n", i+1, mark, text)
		}
		return nil
	},
}

var addTaskCmd = &cobra.Command{
	Use:   "add-task [text]",
	Short: "Add a task to the daily list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if args[0] == "" {
			return fmt.Errorf("task text cannot be empty")
		}

		st := storage.NewStorage()
		routine := storage.NewRoutineStore(st)

		tasks, err := routine.Tasks()
		if err != nil {
			return fmt.Errorf("failed to load tasks: %w", err)
		}
		tasks = append(tasks, models.Task{
			ID:   uuid.New().String(),
			Text: args[0],
		})
		if err := routine.SaveTasks(tasks); err != nil {
			return fmt.Errorf("failed to save tasks: %w", err)
		}

		fmt.Println("✅ Task added")
		return nil
	},
}

var toggleTaskCmd = &cobra.Command{
	Use:   "toggle-task [index]",
	Short: "Toggle a task's done state",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st := storage.NewStorage()
		routine := storage.NewRoutineStore(st)

		tasks, err := routine.Tasks()
		if err != nil {
			return fmt.Errorf("failed to load tasks: %w", err)
		}
		idx, err := taskIndex(args[0], len(tasks))
		if err != nil {
			return err
		}

		tasks[idx].Done = !tasks[idx].Done
		if err := routine.SaveTasks(tasks); err != nil {
			return fmt.Errorf("failed to save tasks: %w", err)
		}

		fmt.Printf("✅ Toggled '%s'\n", tasks[idx].Text)
		return nil
	},
}

var removeTaskCmd = &cobra.Command{
	Use:   "remove-task [index]",
	Short: "Remove a task from the daily list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st := storage.NewStorage()
		routine := storage.NewRoutineStore(st)

		tasks, err := routine.Tasks()
		if err != nil {
			return fmt.Errorf("failed to load tasks: %w", err)
		}
		idx, err := taskIndex(args[0], len(tasks))
		if err != nil {
			return err
		}

		removed := tasks[idx].Text
		tasks = append(tasks[:idx], tasks[idx+1:]...)
		if err := routine.SaveTasks(tasks); err != nil {
			return fmt.Errorf("failed to save tasks: %w", err)
		}

		fmt.Printf("✅ Removed '%s'\n", removed)
		return nil
	},
}

func taskIndex(arg string, count int) (int, error) {
	idx, err := strconv.Atoi(arg)
	if err != nil || idx < 1 {
		return 0, fmt.Errorf("Invalid task index. Must be a positive integer")
	}
	if idx > count {
		return 0, fmt.Errorf("Task index out of range")
	}
	return idx - 1, nil
}

func init() {
	rootCmd.AddCommand(tasksCmd)
	rootCmd.AddCommand(addTaskCmd)
	rootCmd.AddCommand(toggleTaskCmd)
	rootCmd.AddCommand(removeTaskCmd)
}
