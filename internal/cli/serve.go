package cli

import (
	"context"
	"errors"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/matzehuels/swotboard/internal/server"
	"github.com/matzehuels/swotboard/pkg/io"
	"github.com/matzehuels/swotboard/pkg/workspace"
)

type serveOpts struct {
	addr    string
	state   string
	noCache bool

	// stateRequired is set when --state was given, making a missing file an error.
	stateRequired bool
}

// serveCommand creates the serve command for hosting the interactive page.
func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the interactive SWOT page",
		Long: `Serve the interactive page: four entry fields, the SWOT image and the
editable confrontation matrix, with PNG downloads for both.

The state document is loaded on start. A missing default document is
ignored; a missing --state document is an error.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.addr == "" {
				opts.addr = c.Config.Addr
			}
			opts.stateRequired = cmd.Flags().Changed("state")
			if opts.state == "" {
				opts.state = c.Config.StateFile
			}
			return c.runServe(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.addr, "addr", "a", "", "listen address (default from config, "+server.DefaultAddr+")")
	cmd.Flags().StringVarP(&opts.state, "state", "s", "", "document to load on start (default from config)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "render every download afresh")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, opts serveOpts) error {
	ws, err := loadWorkspace(ctx, opts.state, opts.stateRequired)
	if err != nil {
		return err
	}

	cache, err := newCache(opts.noCache)
	if err != nil {
		return err
	}
	defer cache.Close()

	srv, err := server.New(ws,
		server.WithAddr(opts.addr),
		server.WithLogger(c.Logger),
		server.WithCache(cache),
	)
	if err != nil {
		return err
	}

	printSuccess("Serving on %s", StyleLink.Render("http://"+srv.Addr()))
	printDetail("press ctrl+c to stop")
	return srv.Run(ctx)
}

// loadWorkspace returns a workspace seeded from the document at path. A
// missing file is only an error when required; otherwise the workspace
// keeps its sample input.
func loadWorkspace(ctx context.Context, path string, required bool) (*workspace.Workspace, error) {
	ws := workspace.New()
	if path == "" {
		return ws, nil
	}

	doc, err := io.Import(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			loggerFromContext(ctx).Debug("no state document", "path", path)
			return ws, nil
		}
		return nil, err
	}
	if err := ws.Load(ctx, path, doc); err != nil {
		return nil, err
	}
	loggerFromContext(ctx).Info("loaded", "path", path, "strategies", len(ws.Strategies()))
	return ws, nil
}
