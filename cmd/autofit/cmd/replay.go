package cmd

import (
	"github.com/spf13/cobra"

	"github.com/go-drift/autofit/cmd/autofit/internal/scenario"
)

func newReplayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "replay <scenario.yaml>",
		Short: "Replay a layout scenario and print its frames",
		Long: `Replay a scripted sequence of container sizes, descriptor changes and
frames against an autofit view, printing a line for every print step.

View options and the text font come from the resolved configuration.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := scenario.Load(args[0])
			if err != nil {
				return err
			}
			cfg, err := resolveConfig()
			if err != nil {
				return err
			}
			r := &scenario.Runner{
				Options: cfg.Options,
				Text:    cfg.Text,
				Frames:  cfg.Frames,
				Out:     cmd.OutOrStdout(),
			}
			return r.Run(sc)
		},
	}
}
