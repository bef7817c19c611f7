// fileutil/write.go
package fileutil

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// EnsureWrite copies (or moves) src to dst, creating the destination
// directory as needed. An existing destination is left alone unless
// overwrite is set; skipped reports that case. With dryRun nothing is
// touched and the return values describe what a real run would do.
func EnsureWrite(src, dst string, move, overwrite, dryRun bool) (skipped bool, err error) {
	if _, statErr := os.Stat(dst); statErr == nil {
		if !overwrite {
			return true, nil
		}
		if !dryRun {
			if err := os.Remove(dst); err != nil {
				return false, fmt.Errorf("remove existing %s: %w", dst, err)
			}
		}
	} else if !errors.Is(statErr, fs.ErrNotExist) {
		return false, statErr
	}

	if dryRun {
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return false, err
	}
	if move {
		return false, moveFile(src, dst)
	}
	return false, copyFile(src, dst)
}

// moveFile renames src to dst, falling back to copy+delete when the two
// sit on different filesystems.
func moveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}
	if err := copyFile(src, dst); err != nil {
		return err
	}
	return os.Remove(src)
}

// copyFile copies contents and keeps the source's permissions and mtime.
func copyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return os.Chtimes(dst, time.Now(), info.ModTime())
}
