package fs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// ErrExists is returned when a write would replace an existing file.
var ErrExists = errors.New("file already exists")

// Exists reports whether path is present on fs.
func Exists(fs afero.Fs, path string) bool {
	_, err := fs.Stat(path)
	return err == nil
}

// WriteExclusive creates path, which must not exist yet, and fills it with
// encode. A failed or empty write leaves no file behind. It returns the
// number of bytes written.
func WriteExclusive(fs afero.Fs, path string, encode func(io.Writer) error) (int64, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := fs.MkdirAll(dir, 0755); err != nil {
			return 0, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := fs.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return 0, fmt.Errorf("%w: %s", ErrExists, path)
		}
		return 0, fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := encode(f); err != nil {
		f.Close()
		fs.Remove(path)
		return 0, fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		fs.Remove(path)
		return 0, fmt.Errorf("failed to close %s: %w", path, err)
	}

	info, err := fs.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.Size() == 0 {
		fs.Remove(path)
		return 0, fmt.Errorf("%s is empty after writing", path)
	}
	return info.Size(), nil
}
