package unpack

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/deploymenttheory/go-bootimg/pkg/app"
)

// lazyFile creates its destination on the first non-empty Write, so a region
// that fails before producing data leaves no file behind
type lazyFile struct {
	path   string
	mkdir  func(dir string) error
	file   *os.File
	closed bool
}

func newLazyFile(path string, mkdir func(dir string) error) *lazyFile {
	return &lazyFile{path: path, mkdir: mkdir}
}

func (f *lazyFile) Write(p []byte) (int, error) {
	if f.closed {
		return 0, os.ErrClosed
	}
	if f.file == nil {
		if len(p) == 0 {
			return 0, nil
		}
		if f.mkdir != nil {
			if err := f.mkdir(filepath.Dir(f.path)); err != nil {
				return 0, err
			}
		}
		file, err := os.Create(f.path)
		if err != nil {
			return 0, fmt.Errorf("failed to create '%s': %w", f.path, err)
		}
		f.file = file
	}
	return f.file.Write(p)
}

// Created reports whether the destination file exists
func (f *lazyFile) Created() bool {
	return f.file != nil
}

// Close flushes and closes the destination if it was created
func (f *lazyFile) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true
	if f.file == nil {
		return nil
	}
	if err := f.file.Close(); err != nil {
		return fmt.Errorf("failed to close '%s': %w", f.path, err)
	}
	return nil
}

// Discard closes and removes the destination if it was created
func (f *lazyFile) Discard() error {
	created := f.file != nil
	_ = f.Close()
	if !created {
		return nil
	}
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove '%s': %w", f.path, err)
	}
	return nil
}

// dirCreator creates destination directories once per run and reports the
// ones it had to create
type dirCreator struct {
	mu      sync.Mutex
	console *app.Console
	ready   map[string]bool
}

func newDirCreator(console *app.Console) *dirCreator {
	return &dirCreator{console: console, ready: make(map[string]bool)}
}

func (d *dirCreator) ensure(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.ready[dir] {
		return nil
	}

	info, err := os.Stat(dir)
	switch {
	case err == nil && !info.IsDir():
		return fmt.Errorf("'%s' exists and is not a directory", dir)
	case err == nil:
		d.ready[dir] = true
		return nil
	case !os.IsNotExist(err):
		return fmt.Errorf("failed to stat '%s': %w", dir, err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("could not create '%s' directory: %w", dir, err)
	}
	d.ready[dir] = true
	if d.console != nil {
		d.console.Status("Created", "directory '%s'.", dir)
	}
	return nil
}
