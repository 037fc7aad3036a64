// Package cmd implements the autofit CLI commands.
//
// The command structure follows standard cobra patterns with a root command
// that dispatches to subcommands (init, fit, replay, version).
package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-drift/autofit/cmd/autofit/internal/config"
	"github.com/go-drift/autofit/pkg/errors"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

var (
	projectDir string
	verbose    bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "autofit",
		Short: "Scale content down to fit its container",
		Long: `autofit computes how far content must shrink to fit inside a container
and replays layout scenarios through the same controller views use at runtime.

Configuration is read from autofit.yaml in the project directory (or the file
named by AUTOFIT_CONFIG), after loading variables from .env.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			errors.SetHandler(&errors.LogHandler{
				Verbose: verbose,
				Logger:  log.New(cmd.ErrOrStderr(), "", 0),
			})
		},
	}
	root.PersistentFlags().StringVarP(&projectDir, "dir", "C", "", "project directory (default: enclosing Go module or cwd)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log soft measurement errors")

	root.AddCommand(newInitCmd(), newFitCmd(), newReplayCmd(), newVersionCmd())
	return root
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func resolveConfig() (*config.Resolved, error) {
	dir := projectDir
	if dir == "" {
		root, err := config.FindProjectRoot()
		if err != nil {
			return nil, err
		}
		dir = root
	}
	return config.Resolve(dir, Version)
}
