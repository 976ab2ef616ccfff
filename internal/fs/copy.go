package fs

import (
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
)

// CopyResult reports what CopyTree created.
type CopyResult struct {
	Dirs  int // directories created, including the root
	Files int
}

// CopyTree copies every directory and file of src into dst.
//
// dst itself is created with Mkdir, so CopyTree fails with an os.IsExist
// error (and writes nothing) if dst is already present. Regular files are
// written 0644, or 0755 when any execute bit is set in the source. Symlinks
// in src are followed; other irregular entries are rejected.
func CopyTree(fsys FS, src iofs.FS, dst string) (CopyResult, error) {
	var result CopyResult

	if err := fsys.Mkdir(dst, 0755); err != nil {
		return result, err
	}
	result.Dirs++

	err := iofs.WalkDir(src, ".", func(p string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p == "." {
			return nil
		}
		target := filepath.Join(dst, filepath.FromSlash(p))

		if d.IsDir() {
			if err := fsys.Mkdir(target, 0755); err != nil {
				return err
			}
			result.Dirs++
			return nil
		}

		if !d.Type().IsRegular() && d.Type()&iofs.ModeSymlink == 0 {
			return fmt.Errorf("%s: unsupported file type %s", p, d.Type())
		}

		data, err := iofs.ReadFile(src, p)
		if err != nil {
			return err
		}
		perm := os.FileMode(0644)
		if info, err := iofs.Stat(src, p); err == nil && info.Mode()&0111 != 0 {
			perm = 0755
		}
		if err := fsys.WriteFile(target, data, perm); err != nil {
			return err
		}
		// WriteFile is subject to umask
		if err := fsys.Chmod(target, perm); err != nil {
			return err
		}
		result.Files++
		return nil
	})
	return result, err
}
