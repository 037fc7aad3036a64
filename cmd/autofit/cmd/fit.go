package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-drift/autofit/pkg/content"
	"github.com/go-drift/autofit/pkg/graphics"
	"github.com/go-drift/autofit/pkg/host"
	"github.com/go-drift/autofit/pkg/layout"
)

func newFitCmd() *cobra.Command {
	var containerFlag, contentFlag, textFlag string

	c := &cobra.Command{
		Use:   "fit",
		Short: "Compute the fit scale for a container and content size",
		Long: `Compute the scale that fits content into a container without upscaling.

Content is either an explicit --content WxH size or --text, measured with the
configured font.`,
		Example: `  autofit fit --container 200x100 --content 800x100
  autofit fit --container 320x48 --text "x^2 + y^2 = z^2"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := graphics.ParseSize(containerFlag)
			if err != nil {
				return fmt.Errorf("--container: %w", err)
			}

			var natural graphics.Size
			switch {
			case contentFlag != "" && textFlag != "":
				return fmt.Errorf("--content and --text are mutually exclusive")
			case textFlag != "":
				cfg, err := resolveConfig()
				if err != nil {
					return err
				}
				r, err := content.NewTextRenderer(host.New(nil), cfg.Text)
				if err != nil {
					return err
				}
				defer r.Close()
				natural = r.Measure(textFlag)
			case contentFlag != "":
				natural, err = graphics.ParseSize(contentFlag)
				if err != nil {
					return fmt.Errorf("--content: %w", err)
				}
			default:
				return fmt.Errorf("one of --content or --text is required")
			}

			fit := layout.FitScale(&container, &natural)
			box := natural.Scale(fit)
			bounds := graphics.RectFromLTWH(0, 0, container.Width, container.Height).Inscribe(box)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "content %s\n", natural)
			fmt.Fprintf(out, "fit     %.4f\n", fit)
			fmt.Fprintf(out, "box     %s\n", box)
			fmt.Fprintf(out, "offset  %g,%g\n", bounds.Left, bounds.Top)
			return nil
		},
	}
	c.Flags().StringVar(&containerFlag, "container", "", "container size as WxH")
	c.Flags().StringVar(&contentFlag, "content", "", "natural content size as WxH")
	c.Flags().StringVar(&textFlag, "text", "", "text to measure as content")
	_ = c.MarkFlagRequired("container")
	return c
}
