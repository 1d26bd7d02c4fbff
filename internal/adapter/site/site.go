package site

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/couchcryptid/virtual-events/internal/domain"
)

// Dir reads source documents from disk and writes artifacts under an
// output root. Writes overwrite existing files; nothing is cleaned up on
// failure.
type Dir struct {
	root   string
	logger *slog.Logger
}

// NewDir creates a Dir writing under root.
func NewDir(root string, logger *slog.Logger) *Dir {
	return &Dir{root: root, logger: logger}
}

// Root returns the output root directory.
func (d *Dir) Root() string { return d.root }

// Load reads one source document. The format follows the file extension.
func (d *Dir) Load(_ context.Context, path string) (domain.Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Source{}, fmt.Errorf("%w: read source %s: %v", domain.ErrIO, path, err)
	}
	return domain.Source{
		Name:   filepath.Base(path),
		Format: domain.FormatFromPath(path),
		Data:   data,
	}, nil
}

// Write stores data at name relative to the output root, creating parent
// directories as needed.
func (d *Dir) Write(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path := filepath.Join(d.root, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("%w: create dir for %s: %v", domain.ErrIO, name, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %v", domain.ErrIO, name, err)
	}
	d.logger.Debug("artifact written", "path", path, "bytes", len(data))
	return nil
}

// CopyStatic copies every regular file under dir into the output root,
// keeping relative paths. A missing dir is not an error.
func (d *Dir) CopyStatic(ctx context.Context, dir string) (int, error) {
	if dir == "" {
		return 0, nil
	}
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		d.logger.Info("static dir not found, skipping", "dir", dir)
		return 0, nil
	}

	copied := 0
	err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("%w: walk %s: %v", domain.ErrIO, path, err)
		}
		if !entry.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return fmt.Errorf("%w: %v", domain.ErrIO, err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("%w: read static %s: %v", domain.ErrIO, path, err)
		}
		if err := d.Write(ctx, filepath.ToSlash(rel), data); err != nil {
			return err
		}
		copied++
		return nil
	})
	return copied, err
}
