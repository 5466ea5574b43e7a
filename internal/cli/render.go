package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	apperr "github.com/matzehuels/swotboard/pkg/errors"
	"github.com/matzehuels/swotboard/pkg/io"
	"github.com/matzehuels/swotboard/pkg/pipeline"
	"github.com/matzehuels/swotboard/pkg/swot"
	"github.com/matzehuels/swotboard/pkg/workspace"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string   // directory receiving the PNGs
	kinds   []string // exports: swot, matrix
	watch   bool     // re-render whenever the document changes
	noCache bool     // skip the render cache

	// Entry fields given on the command line instead of a document.
	strengths     string
	weaknesses    string
	opportunities string
	threats       string
}

var listFlags = []string{"strengths", "weaknesses", "opportunities", "threats"}

// renderCommand creates the render command for exporting PNGs.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [document]",
		Short: "Export the SWOT analysis and confrontation matrix as PNG",
		Long: `Export swot-analysis.png and confrontation-matrix.png.

The analysis comes from a JSON or TOML document (default: the configured
state file), or from the --strengths/--weaknesses/--opportunities/--threats
flags, one item per line.`,
		Example: `  swotboard render swot.json -o out
  swotboard render swot.toml --watch
  swotboard render --strengths "Brand"$'\n'"Team" --threats "Rivals" -t swot`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds, err := pipeline.ParseKinds(opts.kinds)
			if err != nil {
				return err
			}
			if opts.output == "" {
				opts.output = c.Config.OutputDir
			}

			if fromFlags(cmd) {
				if len(args) > 0 || opts.watch {
					return errors.New("list flags cannot be combined with a document or --watch")
				}
				return c.renderInput(cmd.Context(), opts.input(), kinds, &opts)
			}

			path := c.Config.StateFile
			if len(args) > 0 {
				path = args[0]
			}
			return c.renderDocument(cmd.Context(), path, kinds, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output directory (default from config)")
	cmd.Flags().StringSliceVarP(&opts.kinds, "type", "t", nil, "export(s): swot, matrix (default both)")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "re-render whenever the document changes")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "skip the render cache")
	cmd.Flags().StringVar(&opts.strengths, "strengths", "", "strengths, one per line")
	cmd.Flags().StringVar(&opts.weaknesses, "weaknesses", "", "weaknesses, one per line")
	cmd.Flags().StringVar(&opts.opportunities, "opportunities", "", "opportunities, one per line")
	cmd.Flags().StringVar(&opts.threats, "threats", "", "threats, one per line")

	return cmd
}

func fromFlags(cmd *cobra.Command) bool {
	for _, name := range listFlags {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

func (o *renderOpts) input() swot.Input {
	return swot.Input{
		Strengths:     unescapeNewlines(o.strengths),
		Weaknesses:    unescapeNewlines(o.weaknesses),
		Opportunities: unescapeNewlines(o.opportunities),
		Threats:       unescapeNewlines(o.threats),
	}
}

// unescapeNewlines lets shells without $'...' quoting pass "\n".
func unescapeNewlines(s string) string {
	return strings.ReplaceAll(s, `\n`, "\n")
}

func (c *CLI) renderInput(ctx context.Context, in swot.Input, kinds []pipeline.Kind, opts *renderOpts) error {
	ws := workspace.New()
	if err := ws.Generate(ctx, in); err != nil {
		return err
	}
	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Cache.Close()

	return c.export(ctx, runner, pipeline.Request{Workspace: ws, Kinds: kinds}, opts.output)
}

func (c *CLI) renderDocument(ctx context.Context, path string, kinds []pipeline.Kind, opts *renderOpts) error {
	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Cache.Close()

	render := func() error {
		data, err := os.ReadFile(path)
		if err != nil {
			return apperr.Wrap(apperr.ErrCodeLoadFailure, err, "could not load %s", path)
		}
		doc, err := io.Decode(path, data)
		if err != nil {
			return err
		}
		ws := workspace.New()
		if err := ws.Load(ctx, path, doc); err != nil {
			return err
		}
		if orphans := ws.Orphans(); len(orphans) > 0 {
			printWarning("%d strategies are outside the matrix and not exported: %s", len(orphans), keyList(orphans))
		}
		req := pipeline.Request{Workspace: ws, Kinds: kinds, Content: data}
		return c.export(ctx, runner, req, opts.output)
	}

	if err := render(); err != nil {
		if !opts.watch {
			return err
		}
		printError("%s", apperr.Detail(err))
	}
	if !opts.watch {
		return nil
	}

	printInfo("Watching %s %s", StyleValue.Render(path), StyleDim.Render("(ctrl+c to stop)"))
	return watchFile(ctx, path, defaultDebounce, render)
}

// export renders req and writes the PNGs into dir.
func (c *CLI) export(ctx context.Context, runner *pipeline.Runner, req pipeline.Request, dir string) error {
	spinner := newSpinnerWithContext(ctx, "Rendering...")
	spinner.Start()
	prog := newProgress(c.Logger)

	res, err := runner.Export(ctx, req)
	if err != nil {
		spinner.Stop()
		return err
	}
	paths, err := pipeline.WriteFiles(dir, res.Artifacts)
	spinner.Stop()
	if err != nil {
		return err
	}

	prog.done(fmt.Sprintf("Rendered %d image(s)", len(paths)))
	printSuccess("Exported")
	for _, p := range paths {
		printFile(p)
	}
	printCacheStatus(res.CacheInfo.AllHit())
	return nil
}

func keyList(keys []swot.Key) string {
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	return strings.Join(names, ", ")
}
