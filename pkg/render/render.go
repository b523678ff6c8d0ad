// Package render delegates graph rendering to the Graphviz layout engine.
//
// The heavy lifting (dot layout, PNG encoding) is owned entirely by
// github.com/goccy/go-graphviz, which embeds Graphviz as WebAssembly, so
// no system Graphviz installation is required.
package render

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/goccy/go-graphviz"
)

// OutputPath returns the path the rendered image is written to.
// Graphviz convention: the format extension is appended to the source
// path, so graph.dot renders to graph.dot.png.
func OutputPath(path string) string {
	return path + ".png"
}

// PNG renders the DOT file at path to a PNG image using Graphviz.
//
// The output is written to [OutputPath] next to the source file and
// overwrites any previous render. It returns the output path.
//
// Failures (unreadable source, malformed DOT syntax, engine failure,
// write failure) are returned wrapped with context and are never
// retried.
func PNG(ctx context.Context, path string) (string, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	gv, err := graphviz.New(ctx)
	if err != nil {
		return "", fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes(src)
	if err != nil {
		return "", fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.PNG, &buf); err != nil {
		return "", fmt.Errorf("render: %w", err)
	}

	out := OutputPath(path)
	if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", out, err)
	}
	return out, nil
}
