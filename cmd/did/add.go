package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/daydid/daydid/internal/config"
	"github.com/daydid/daydid/internal/logging"
	"github.com/daydid/daydid/todo"
)

var addCmd = &cobra.Command{
	Use:   "add <task> [priority]",
	Short: "Add a todo without opening the interface",
	Long: `Add a todo to today's list. Hashtags in the task text become tags.
The optional priority is one of high, medium, or low (default medium).`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runAdd,
}

var addPersistent bool

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().BoolVarP(&addPersistent, "persistent", "p", false, "Keep the todo across daily resets")
	addPersistentFlagAliases(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := logging.New(os.Stderr, logging.ParseLevel(cfg.LogLevel))
	store, err := openStore(cfg, logger)
	if err != nil {
		return err
	}

	var priority todo.Priority
	if len(args) == 2 {
		priority = todo.Priority(args[1])
	}

	todos, err := store.Add(args[0], priority, addPersistent)
	if err != nil {
		return err
	}

	added := todos[len(todos)-1]
	fmt.Printf("added todo %d: %s\n", added.ID, added.Task)
	return nil
}
