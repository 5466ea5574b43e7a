package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/swotboard/pkg/io"
)

// initCommand creates the init command that writes the example document.
func (c *CLI) initCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write the example SWOT document",
		Long: `Write the built-in example document to path (default: the configured
state file). A .toml extension writes TOML, anything else JSON.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := c.Config.StateFile
			if len(args) > 0 {
				path = args[0]
			}
			return runInit(path, force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")

	return cmd
}

func runInit(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}
	if err := io.Export(io.Default(), path); err != nil {
		return err
	}

	printSuccess("Wrote example document")
	printFile(path)
	printNextStep("Edit the matrix", "swotboard edit "+path)
	printNextStep("Export PNGs", "swotboard render "+path)
	return nil
}
