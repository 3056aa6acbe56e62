// Package main is the keyhud command line entry point.
//
// The overlay core is programmatic; this binary is the tooling around it:
// profile validation, binding inspection, and a line-driven demo runner
// standing in for the platform capture hook.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

var settingsPath string

func init() {
	rootCmd.PersistentFlags().StringVarP(&settingsPath, "settings", "s", "", "Settings file (TOML)")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(bindingsCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(versionCmd)
}

var rootCmd = &cobra.Command{
	Use:   "keyhud",
	Short: "keyhud overlays live key-binding state for .rkp profiles",
	Long: `keyhud loads vendor .rkp key-binding profiles, indexes them, and
matches live input against them. The run command drives the matcher from
normalized events on stdin; check and bindings are profile tooling.`,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("keyhud %s (%s)\n", version, commit)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newLogger builds the process logger at the given level name.
func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
