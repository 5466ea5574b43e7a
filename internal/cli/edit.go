package cli

import (
	"context"

	"github.com/spf13/cobra"
)

type editOpts struct {
	output  string
	noCache bool
}

// editCommand creates the edit command for the terminal matrix editor.
func (c *CLI) editCommand() *cobra.Command {
	var opts editOpts

	cmd := &cobra.Command{
		Use:   "edit [document]",
		Short: "Edit the confrontation matrix in the terminal",
		Long: `Open the confrontation matrix of a document in a full-screen editor.

Strategy notes are written straight into the matrix; press s to save the
document back to its file and p to export both PNGs. A missing document
starts from the sample analysis and is created on the first save.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := c.Config.StateFile
			if len(args) > 0 {
				path = args[0]
			}
			if opts.output == "" {
				opts.output = c.Config.OutputDir
			}
			return c.runEdit(cmd.Context(), path, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "directory for PNG exports (default from config)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "skip the render cache")

	return cmd
}

func (c *CLI) runEdit(ctx context.Context, path string, opts editOpts) error {
	ws, err := loadWorkspace(ctx, path, false)
	if err != nil {
		return err
	}
	if !ws.Generated() {
		if err := ws.Generate(ctx, ws.Input()); err != nil {
			return err
		}
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Cache.Close()

	final, err := runEditor(ctx, NewEditorModel(ctx, ws, runner, path, opts.output))
	if err != nil {
		return err
	}
	if final.Dirty {
		printWarning("Unsaved changes to %s were discarded", path)
	}
	return nil
}
