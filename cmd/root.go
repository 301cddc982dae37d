package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the taskdeck application
var rootCmd = &cobra.Command{
	Use:   "taskdeck",
	Short: "A personal task manager with a terminal interface",
	Long: `taskdeck keeps your tasks in Firestore and lets you work with them
from the terminal.

It can run as:
  - An interactive terminal interface (default)
  - One-shot commands for listing, adding and completing tasks

Without Firebase credentials, use --demo to work against an in-memory
store.`,
	SilenceUsage: true,
}

// Persistent flags shared by all subcommands
var (
	configPath string
	demoMode   bool
	debugMode  bool
)

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "taskdeck version %s\n" .Version}}`)

	// If no subcommand is provided, open the interactive interface
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "tui")
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the config file (default: ~/.config/taskdeck/config.toml)")
	rootCmd.PersistentFlags().BoolVar(&demoMode, "demo", false, "Use an in-memory store and a local demo identity instead of Firebase")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(newTuiCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newCalendarCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newAddCmd())
	rootCmd.AddCommand(newEditCmd())
	rootCmd.AddCommand(newDoneCmd())
	rootCmd.AddCommand(newRmCmd())
	rootCmd.AddCommand(newWhoamiCmd())
	rootCmd.AddCommand(newSignoutCmd())
	rootCmd.AddCommand(newVersionCmd())
}
