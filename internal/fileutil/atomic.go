// Package fileutil collects input files and writes transformed files atomically.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	ownerReadWrite = 0o600
	executableBits = 0o111
)

// WriteAtomic writes data to dst through a temporary file in the same directory and
// renames it into place. The output keeps the executable bits of src and, when
// preserveTimestamps is set, its modification time. It returns the size written.
func WriteAtomic(src, dst string, data []byte, preserveTimestamps bool) (size int64, err error) {
	info, err := os.Stat(src)
	if err != nil {
		return 0, fmt.Errorf("getting file info for %q: %w", src, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(dst), ".tmp-*")
	if err != nil {
		return 0, fmt.Errorf("creating temporary file: %w", err)
	}

	defer func() {
		tmp.Close() //nolint:errcheck,gosec // best-effort cleanup

		if err != nil {
			os.Remove(tmp.Name()) //nolint:errcheck,gosec // best-effort cleanup
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return 0, fmt.Errorf("writing temporary file: %w", err)
	}

	if err = tmp.Chmod(ownerReadWrite | info.Mode()&executableBits); err != nil {
		return 0, fmt.Errorf("setting file permissions: %w", err)
	}

	if err = tmp.Close(); err != nil {
		return 0, fmt.Errorf("closing temporary file: %w", err)
	}

	if err = os.Rename(tmp.Name(), dst); err != nil {
		return 0, fmt.Errorf("renaming output file: %w", err)
	}

	if preserveTimestamps {
		if err = os.Chtimes(dst, info.ModTime(), info.ModTime()); err != nil {
			return 0, fmt.Errorf("preserving timestamps: %w", err)
		}
	}

	return int64(len(data)), nil
}
