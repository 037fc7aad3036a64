package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-drift/autofit/cmd/autofit/internal/templates"
)

func newInitCmd() *cobra.Command {
	var viewID string
	var force bool

	c := &cobra.Command{
		Use:   "init [directory]",
		Short: "Write a starter autofit.yaml and scenario",
		Long: `Write a starter autofit.yaml and scenarios/shrink.yaml into a directory.

The view ID defaults to the directory basename. Existing files are left alone
unless --force is given.`,
		Example: `  autofit init
  autofit init ./mathview --id eq`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = filepath.Clean(args[0])
			}
			abs, err := filepath.Abs(dir)
			if err != nil {
				return err
			}
			if viewID == "" {
				viewID = strings.ToLower(filepath.Base(abs))
			}
			data := &templates.TemplateData{
				ViewID:        viewID,
				EngineVersion: Version,
			}
			return scaffold(cmd, dir, data, force)
		},
	}
	c.Flags().StringVar(&viewID, "id", "", "view ID written to autofit.yaml")
	c.Flags().BoolVarP(&force, "force", "f", false, "overwrite existing files")
	return c
}

// scaffold writes every init template into dir.
func scaffold(cmd *cobra.Command, dir string, data *templates.TemplateData, force bool) error {
	if !force {
		for _, f := range templates.InitFiles {
			dest := filepath.Join(dir, f.Dest)
			if _, err := os.Stat(dest); err == nil {
				return fmt.Errorf("%s already exists (use --force to overwrite)", dest)
			}
		}
	}

	for _, f := range templates.InitFiles {
		out, err := templates.Render(f.Template, data)
		if err != nil {
			return fmt.Errorf("failed to render %s: %w", f.Template, err)
		}
		dest := filepath.Join(dir, f.Dest)
		if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
		if err := os.WriteFile(dest, []byte(out), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", f.Dest, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  Created %s\n", dest)
	}
	return nil
}
