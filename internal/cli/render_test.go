package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	apperrors "github.com/jsattler/dotpng/pkg/errors"
)

// renderRecorder is a RenderFunc stub that records delegated calls.
type renderRecorder struct {
	paths []string
	err   error
}

func (r *renderRecorder) render(_ context.Context, path string) (string, error) {
	r.paths = append(r.paths, path)
	if r.err != nil {
		return "", r.err
	}
	return path + ".png", nil
}

func newTestCLI(out io.Writer, rec *renderRecorder) *CLI {
	c := New(out, io.Discard, LogWarn)
	c.render = rec.render
	return c
}

func execute(t *testing.T, c *CLI, args ...string) error {
	t.Helper()
	root := c.RootCommand()
	if args == nil {
		args = []string{} // nil would make cobra fall back to os.Args
	}
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return root.ExecuteContext(context.Background())
}

func dotFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.dot")
	if err := os.WriteFile(path, []byte("digraph { a -> b }\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestResolvePath(t *testing.T) {
	existing := dotFixture(t)

	tests := []struct {
		name     string
		args     []string
		wantPath string
		wantCode apperrors.Code
	}{
		{"no args", nil, "", apperrors.ErrCodeMissingPath},
		{"empty arg", []string{""}, "", apperrors.ErrCodeEmptyPath},
		{"nonexistent path", []string{"/tmp/definitely-does-not-exist-xyz.dot"}, "", apperrors.ErrCodePathNotFound},
		{"existing path", []string{existing}, existing, ""},
		{"extra args ignored", []string{existing, "other.dot"}, existing, ""},
		{"extra args do not rescue missing first", []string{"/tmp/definitely-does-not-exist-xyz.dot", existing}, "", apperrors.ErrCodePathNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, err := resolvePath(tt.args)
			if tt.wantCode != "" {
				if !apperrors.Is(err, tt.wantCode) {
					t.Fatalf("resolvePath() error = %v, want code %s", err, tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("resolvePath() error = %v", err)
			}
			if path != tt.wantPath {
				t.Errorf("resolvePath() = %q, want %q", path, tt.wantPath)
			}
		})
	}
}

func TestRenderNoArgs(t *testing.T) {
	var out bytes.Buffer
	rec := &renderRecorder{}
	c := newTestCLI(&out, rec)

	err := execute(t, c)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !apperrors.IsValidation(err) {
		t.Errorf("error should be a validation failure, got %v", err)
	}
	if got, want := out.String(), msgNoPath+"\n"; got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
	if len(rec.paths) != 0 {
		t.Errorf("render was called %d times, want 0", len(rec.paths))
	}
}

func TestRenderEmptyPath(t *testing.T) {
	var out bytes.Buffer
	rec := &renderRecorder{}
	c := newTestCLI(&out, rec)

	err := execute(t, c, "")
	if !apperrors.Is(err, apperrors.ErrCodeEmptyPath) {
		t.Fatalf("error = %v, want EMPTY_PATH", err)
	}
	if got, want := out.String(), msgEmptyPath+"\n"; got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
	if len(rec.paths) != 0 {
		t.Errorf("render was called %d times, want 0", len(rec.paths))
	}
}

func TestRenderPathNotFound(t *testing.T) {
	var out bytes.Buffer
	rec := &renderRecorder{}
	c := newTestCLI(&out, rec)

	err := execute(t, c, "/tmp/definitely-does-not-exist-xyz.dot")
	if !apperrors.Is(err, apperrors.ErrCodePathNotFound) {
		t.Fatalf("error = %v, want PATH_NOT_FOUND", err)
	}
	if got, want := out.String(), msgPathNotFound+"\n"; got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
	if len(rec.paths) != 0 {
		t.Errorf("render was called %d times, want 0", len(rec.paths))
	}
}

func TestRenderHappyPath(t *testing.T) {
	path := dotFixture(t)
	var out bytes.Buffer
	rec := &renderRecorder{}
	c := newTestCLI(&out, rec)

	if err := execute(t, c, path); err != nil {
		t.Fatalf("execute error = %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("stdout = %q, want empty", out.String())
	}
	if len(rec.paths) != 1 || rec.paths[0] != path {
		t.Errorf("render calls = %v, want exactly [%s]", rec.paths, path)
	}
}

func TestRenderExtraArgsIgnored(t *testing.T) {
	path := dotFixture(t)
	var out bytes.Buffer
	rec := &renderRecorder{}
	c := newTestCLI(&out, rec)

	if err := execute(t, c, path, "second.dot", "third.dot"); err != nil {
		t.Fatalf("execute error = %v", err)
	}
	if len(rec.paths) != 1 || rec.paths[0] != path {
		t.Errorf("render calls = %v, want exactly [%s]", rec.paths, path)
	}
	if out.Len() != 0 {
		t.Errorf("stdout = %q, want empty", out.String())
	}
}

func TestRenderDelegateFailurePropagates(t *testing.T) {
	path := dotFixture(t)
	var out bytes.Buffer
	cause := fmt.Errorf("parse DOT: syntax error in line 1")
	rec := &renderRecorder{err: cause}
	c := newTestCLI(&out, rec)

	err := execute(t, c, path)
	if err == nil {
		t.Fatal("delegate failure must not be suppressed")
	}
	if !errors.Is(err, cause) {
		t.Errorf("error = %v, want wrapped %v", err, cause)
	}
	if apperrors.IsValidation(err) {
		t.Error("delegate failure must not be classified as a validation failure")
	}
	if out.Len() != 0 {
		t.Errorf("stdout = %q, want empty", out.String())
	}
}

func TestRenderRepeatedInvocation(t *testing.T) {
	path := dotFixture(t)
	var out bytes.Buffer
	rec := &renderRecorder{}
	c := newTestCLI(&out, rec)

	for i := 0; i < 2; i++ {
		if err := execute(t, c, path); err != nil {
			t.Fatalf("run %d: execute error = %v", i+1, err)
		}
	}
	if len(rec.paths) != 2 {
		t.Errorf("render calls = %d, want 2", len(rec.paths))
	}
}
