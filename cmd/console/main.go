// Package main implements the web projects console: a terminal UI over
// the project store service plus a few scripting subcommands.
package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/webprojects/webprojects/config"
	"github.com/webprojects/webprojects/internal/console"
	"github.com/webprojects/webprojects/internal/console/tui"
	"github.com/webprojects/webprojects/internal/logging"
)

var (
	// serverURL is the base URL of the project store service
	serverURL string
	// timeout bounds every request to the service
	timeout time.Duration
	// logFile receives the diagnostic log while the UI owns the terminal
	logFile string

	settings *config.Config
	version  = "dev"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "console",
	Short: "Browse and edit web projects",
	Long: `console is a terminal client for the web projects service.

Run without a subcommand to open the interactive list.

Examples:
  # Open the UI against a local service
  console

  # Use a different server
  console --server http://localhost:8080

  # Scripted access
  console list
  console add --title "Tetris" --url https://github.com/me/tetris`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
	RunE:              runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "project service URL (default $PROJECTS_API_URL or "+console.DefaultBaseURL+")")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "per-request timeout (default $CONSOLE_TIMEOUT or 10s)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "console.log", "diagnostic log file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(deleteCmd)
}

// loadSettings fills unset flags from the environment.
func loadSettings(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	settings = cfg

	if serverURL == "" {
		serverURL = cfg.Console.APIURL
	}
	if timeout <= 0 {
		timeout = cfg.Console.Timeout
	}
	return nil
}

func newClient() *console.Client {
	return console.NewClient(serverURL, timeout)
}

// runTUI opens the interactive project list.
func runTUI(_ *cobra.Command, _ []string) error {
	level := "info"
	if settings != nil {
		level = settings.Log.Level
	}
	logger, err := logging.New(logging.Options{
		Level:       level,
		Format:      "json",
		OutputPaths: []string{logFile},
		Fields:      map[string]string{"component": "console"},
	})
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	client := newClient()
	logger.Info("console started", zap.String("server", client.BaseURL()))

	model := tui.NewModel(client, logger, timeout)
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
