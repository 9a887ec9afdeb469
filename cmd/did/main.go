// Package main implements the did CLI tool.
package main

import (
	"errors"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/daydid/daydid/internal/config"
	"github.com/daydid/daydid/internal/git"
	"github.com/daydid/daydid/internal/logging"
	"github.com/daydid/daydid/internal/paths"
	"github.com/daydid/daydid/internal/tui"
	"github.com/daydid/daydid/todo"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "did",
	Short: "Daydid - a daily todo list and activity feed",
	RunE:  runRoot,
}

func runRoot(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("did is interactive; run it from a terminal, or use `did add` from scripts")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logFile, err := paths.DefaultLogFile()
	if err != nil {
		return err
	}

	// The TUI takes over the terminal, so logs go to a file.
	logger, closeLog, err := logging.NewFile(logFile, logging.ParseLevel(cfg.LogLevel))
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := openStore(cfg, logger)
	if err != nil {
		return err
	}

	return tui.Run(cmd.Context(), store, git.New(), cfg.Days, logger)
}

// openStore builds the todo store at the configured document location.
func openStore(cfg *config.Config, logger *log.Logger) (*todo.Store, error) {
	dataFile, err := cfg.ResolveDataFile()
	if err != nil {
		return nil, err
	}

	return todo.NewStore(dataFile, logger), nil
}
