// Package main implements tick, the command-line interface to the task
// service. It operates on the same backing file as the API server; each
// invocation reloads, mutates, and persists the full collection.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/phrazzld/tick/internal/domain"
	"github.com/phrazzld/tick/internal/service"
	"github.com/phrazzld/tick/internal/store"
)

var (
	storageFile string

	rootCmd = &cobra.Command{
		Use:           "tick",
		Short:         "A minimal task tracker",
		Long:          `tick manages short text tasks persisted to a JSON file, shared with the tick API server.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	addCmd = &cobra.Command{
		Use:   "add <title>",
		Short: "Add a new task",
		Args:  cobra.ExactArgs(1),
		RunE:  runAdd,
	}

	listCmd = &cobra.Command{
		Use:   "list",
		Short: "List all tasks",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}

	toggleCmd = &cobra.Command{
		Use:   "toggle <id>",
		Short: "Toggle task completion status",
		Args:  cobra.ExactArgs(1),
		RunE:  runToggle,
	}

	deleteCmd = &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE:  runDelete,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&storageFile, "file", defaultStorageFile(),
		"path of the JSON file holding the task collection")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(toggleCmd)
	rootCmd.AddCommand(deleteCmd)
}

// defaultStorageFile resolves the backing file the same way the server
// does: TICK_STORAGE_FILE when set, tasks.json otherwise.
func defaultStorageFile() string {
	if path := os.Getenv("TICK_STORAGE_FILE"); path != "" {
		return path
	}
	return "tasks.json"
}

// newTaskService builds the service for one CLI invocation. Log output goes
// to stderr at warn level so corrupt-file notices stay visible without
// polluting command output.
func newTaskService() (service.TaskService, error) {
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	fileStore, err := store.NewFileStore(storageFile, log)
	if err != nil {
		return nil, err
	}
	return service.NewTaskService(fileStore, log)
}

// formatTask renders a task for terminal display.
func formatTask(task domain.Task) string {
	status := "NOT DONE"
	if task.Done {
		status = "DONE"
	}
	return fmt.Sprintf("[%d] %s - %s", task.ID, task.Title, status)
}

// parseTaskID parses a command argument as a positive task ID.
func parseTaskID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid task ID %q: expected a positive integer", arg)
	}
	return id, nil
}

func runAdd(cmd *cobra.Command, args []string) error {
	svc, err := newTaskService()
	if err != nil {
		return err
	}

	task, err := svc.Create(context.Background(), args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Task added: %s\n", formatTask(task))
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	svc, err := newTaskService()
	if err != nil {
		return err
	}

	tasks, err := svc.List(context.Background())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(tasks) == 0 {
		fmt.Fprintln(out, "No tasks found.")
		return nil
	}
	for _, task := range tasks {
		fmt.Fprintln(out, formatTask(task))
	}
	return nil
}

func runToggle(cmd *cobra.Command, args []string) error {
	id, err := parseTaskID(args[0])
	if err != nil {
		return err
	}

	svc, err := newTaskService()
	if err != nil {
		return err
	}

	task, err := svc.Toggle(context.Background(), id)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Task %d toggled: %s\n", task.ID, formatTask(task))
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	id, err := parseTaskID(args[0])
	if err != nil {
		return err
	}

	svc, err := newTaskService()
	if err != nil {
		return err
	}

	if err := svc.Delete(context.Background(), id); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Task %d deleted.\n", id)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
