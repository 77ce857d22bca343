// Package output writes rendered greetings to their destination.
package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// FileMode is the permission of files written by WriteAtomic.
const FileMode os.FileMode = 0o644

// WriteAtomic replaces path with data via a sibling temp file and rename,
// so readers see either the old content or the new, never a partial write.
func WriteAtomic(afs afero.Fs, path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	if err := afs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	tmp, err := afero.TempFile(afs, dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file in %s: %w", dir, err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			_ = afs.Remove(tmpPath)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", tmpPath, err)
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync %s: %w", tmpPath, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmpPath, err)
	}
	// TempFile creates 0600
	if err = afs.Chmod(tmpPath, FileMode); err != nil {
		return fmt.Errorf("chmod %s: %w", tmpPath, err)
	}
	if err = afs.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename %s to %s: %w", tmpPath, path, err)
	}
	return nil
}
