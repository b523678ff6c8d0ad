// Package cli implements the dotpng command-line interface.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/jsattler/dotpng/pkg/buildinfo"
	"github.com/jsattler/dotpng/pkg/render"
)

// appName is the application name used for display.
const appName = "dotpng"

// Log levels exported for use in main.go. The default is warn so that a
// successful render prints nothing; --verbose switches to debug.
const (
	LogDebug = log.DebugLevel
	LogWarn  = log.WarnLevel
)

// RenderFunc renders the graph-description file at path and returns the
// path of the written image. It matches the signature of [render.PNG].
type RenderFunc func(ctx context.Context, path string) (string, error)

// CLI holds shared state for all commands.
type CLI struct {
	// Out receives user-facing validation messages (standard output).
	Out    io.Writer
	Logger *log.Logger

	// render delegates to the Graphviz engine; replaced in tests.
	render RenderFunc
}

// New creates a new CLI instance. User messages go to out, log output
// to logw at the given level.
func New(out, logw io.Writer, level log.Level) *CLI {
	return &CLI{
		Out:    out,
		Logger: newLogger(logw, level),
		render: render.PNG,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command. Rendering is the root
// action itself; there are no rendering subcommands or options.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName + " [file]",
		Short: "Render a Graphviz DOT file to a PNG image",
		Long: `dotpng renders a graph-description file in Graphviz DOT syntax to a PNG
raster image. The image is written next to the source file with .png
appended (graph.dot renders to graph.dot.png).

Layout and encoding are performed by the embedded Graphviz engine; dotpng
itself only validates the path and delegates.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		// Extra positional arguments are accepted and ignored; only the
		// first one is read.
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.AddCommand(c.completionCommand())

	return root
}
