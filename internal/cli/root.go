// Package cli implements the EcoTrack command-line interface using Cobra.
// Each subcommand maps to one tracker operation (toggle, quiz, footprint…).
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ecotrack-app/ecotrack/internal/app/tracker"
	"github.com/ecotrack-app/ecotrack/internal/daemon"
)

var rootCmd = &cobra.Command{
	Use:   "ecotrack",
	Short: "EcoTrack — Personal sustainability tracker",
	Long: `EcoTrack tracks your sustainable practices, climate knowledge, and
carbon footprint. All data stays on your machine.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var cliVersion string

// Execute runs the root command. Called from main.go.
func Execute(version string) {
	cliVersion = version
	rootCmd.Version = version

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// openSession initializes the daemon and hands back its tracker session.
// The caller owns the close.
func openSession() (*tracker.Session, func(), error) {
	d, err := daemon.New(cliVersion)
	if err != nil {
		return nil, nil, err
	}
	return d.Session, d.Close, nil
}
