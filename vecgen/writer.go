package vecgen

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"sync"

	"github.com/kballard/go-shellquote"

	"github.com/teranos/cvecgen/errors"
	"github.com/teranos/cvecgen/logger"
)

// Default directories, relative to the output root
const (
	DefaultHeaderDir = "include"
	DefaultSourceDir = "src"
)

const (
	dirPermissions  = 0755
	filePermissions = 0644
)

// Writer receives the documents of one unit. Run may call Write from
// several goroutines at once.
type Writer interface {
	Write(ctx context.Context, docs *Documents) error
}

// WriterFunc adapts a function to Writer
type WriterFunc func(ctx context.Context, docs *Documents) error

// Write calls f
func (f WriterFunc) Write(ctx context.Context, docs *Documents) error {
	return f(ctx, docs)
}

// DirWriter writes <Root>/<HeaderDir>/<unit>.h and <Root>/<SourceDir>/<unit>.c,
// creating or overwriting them.
type DirWriter struct {
	Root      string
	HeaderDir string
	SourceDir string

	// FormatCommand, when set, runs on each written file with the path
	// appended, e.g. "clang-format -i"
	FormatCommand string
}

// NewDirWriter returns a DirWriter with the default include/ and src/ dirs
func NewDirWriter(root string) *DirWriter {
	return &DirWriter{
		Root:      root,
		HeaderDir: DefaultHeaderDir,
		SourceDir: DefaultSourceDir,
	}
}

// Paths returns where the unit's header and source are written
func (w *DirWriter) Paths(unit string) (header, source string) {
	return filepath.Join(w.Root, w.HeaderDir, unit+".h"),
		filepath.Join(w.Root, w.SourceDir, unit+".c")
}

// Write writes the header then the source
func (w *DirWriter) Write(ctx context.Context, docs *Documents) error {
	header, source := w.Paths(docs.Unit)

	if err := w.writeFile(ctx, header, docs.Header); err != nil {
		return err
	}
	return w.writeFile(ctx, source, docs.Source)
}

func (w *DirWriter) writeFile(ctx context.Context, path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPermissions); err != nil {
		return errors.Wrap(err, "failed to create output directory")
	}
	if err := os.WriteFile(path, []byte(content), filePermissions); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}

	logger.ComponentLogger("vecgen.writer").Debugw("Wrote file",
		logger.FieldPath, path,
		logger.FieldBytes, len(content))

	if w.FormatCommand != "" {
		if err := runFormatter(ctx, w.FormatCommand, path); err != nil {
			return errors.Wrapf(err, "failed to format %s", path)
		}
	}
	return nil
}

// runFormatter splits command with shell quoting rules and runs it on path
func runFormatter(ctx context.Context, command, path string) error {
	args, err := shellquote.Split(command)
	if err != nil {
		return errors.Wrapf(err, "invalid format command %q", command)
	}
	if len(args) == 0 {
		return nil
	}

	cmd := exec.CommandContext(ctx, args[0], append(args[1:], path)...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return errors.WithDetail(errors.Wrapf(err, "%s exited with error", args[0]), string(out))
	}
	return nil
}

// StreamWriter prints both documents of each unit to Out, each preceded by a
// file marker comment.
type StreamWriter struct {
	Out io.Writer
	mu  sync.Mutex
}

// NewStreamWriter returns a StreamWriter printing to out
func NewStreamWriter(out io.Writer) *StreamWriter {
	return &StreamWriter{Out: out}
}

// Write prints the header then the source; units never interleave
func (w *StreamWriter) Write(_ context.Context, docs *Documents) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	_, err := fmt.Fprintf(w.Out, "// File: %s.h\n%s\n// File: %s.c\n%s\n",
		docs.Unit, docs.Header, docs.Unit, docs.Source)
	return err
}
