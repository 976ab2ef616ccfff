package fs

import (
	"os"
	"path/filepath"
)

const tempPattern = ".aocday-tmp-*"

// WriteFileAtomic writes data to path using a temp file in the same
// directory followed by a rename. On failure the original file (if any) is
// left unchanged and the temp file is removed. The parent directory must exist.
func WriteFileAtomic(fsys FS, path string, data []byte, perm os.FileMode) error {
	tmpPath, w, err := fsys.CreateTemp(filepath.Dir(path), tempPattern)
	if err != nil {
		return err
	}

	success := false
	defer func() {
		if !success {
			fsys.Remove(tmpPath)
		}
	}()

	if _, err := w.Write(data); err != nil {
		w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	// CreateTemp uses 0600; apply the requested mode before the file becomes visible.
	if err := fsys.Chmod(tmpPath, perm); err != nil {
		return err
	}
	if err := fsys.Rename(tmpPath, path); err != nil {
		return err
	}

	success = true
	return nil
}

// RewriteFileAtomic reads path, passes its content through edit, and writes
// the result back with WriteFileAtomic, keeping the file's permission bits.
// If edit returns an error the file is not touched.
func RewriteFileAtomic(fsys FS, path string, edit func([]byte) ([]byte, error)) error {
	info, err := fsys.Stat(path)
	if err != nil {
		return err
	}
	content, err := fsys.ReadFile(path)
	if err != nil {
		return err
	}
	updated, err := edit(content)
	if err != nil {
		return err
	}
	return WriteFileAtomic(fsys, path, updated, info.Mode().Perm())
}
