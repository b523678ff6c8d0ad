package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	apperrors "github.com/jsattler/dotpng/pkg/errors"
)

// Fixed user-facing validation messages. These are contractual; tests
// and shell callers rely on the exact wording.
const (
	msgNoPath       = "no path given as argument to script"
	msgEmptyPath    = "path is empty"
	msgPathNotFound = "path does not exist"
)

// resolvePath extracts and validates the source path from the positional
// arguments. Only the first argument is considered; extras are ignored.
//
// The checks are fail-fast and run in a fixed order: argument presence,
// emptiness, existence. Any stat failure counts as non-existence.
func resolvePath(args []string) (string, error) {
	if len(args) == 0 {
		return "", apperrors.New(apperrors.ErrCodeMissingPath, msgNoPath)
	}
	path := args[0]
	if path == "" {
		return "", apperrors.New(apperrors.ErrCodeEmptyPath, msgEmptyPath)
	}
	if _, err := os.Stat(path); err != nil {
		return "", apperrors.New(apperrors.ErrCodePathNotFound, msgPathNotFound)
	}
	return path, nil
}

// runRender validates the arguments and delegates rendering to the
// Graphviz engine. Validation failures are reported on c.Out and
// returned as coded errors; rendering failures are returned unmodified
// for main to surface at the process boundary.
func (c *CLI) runRender(ctx context.Context, args []string) error {
	path, err := resolvePath(args)
	if err != nil {
		fmt.Fprintln(c.Out, apperrors.UserMessage(err))
		return err
	}

	c.Logger.Debugf("Rendering %s", path)

	p := newProgress(c.Logger)
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", filepath.Base(path)))
	spinner.Start()

	out, err := c.render(ctx, path)
	if err != nil {
		spinner.StopWithError("Rendering failed")
		return fmt.Errorf("render %s: %w", path, err)
	}
	spinner.Stop()

	p.done(fmt.Sprintf("Rendered %s", out))
	return nil
}
