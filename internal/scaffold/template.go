// Package scaffold provides the day-project template and the manifest
// rewrite applied to each copy.
package scaffold

import (
	"embed"
	iofs "io/fs"
	"os"

	"github.com/NielsdaWheelz/aocday/internal/errors"
)

//go:embed template
var embedded embed.FS

// EmbeddedSource is the Source.Name of the built-in template.
const EmbeddedSource = "embedded"

// Source is a template tree to copy.
type Source struct {
	Name string // EmbeddedSource or the directory path
	FS   iofs.FS
}

// Embedded returns the template compiled into the binary.
func Embedded() Source {
	sub, err := iofs.Sub(embedded, "template")
	if err != nil {
		// the embed pattern guarantees the directory
		panic(err)
	}
	return Source{Name: EmbeddedSource, FS: sub}
}

// FromDir returns dir as a template Source, or the embedded template when
// dir is empty. Returns E_TEMPLATE if dir is not a readable directory.
func FromDir(dir string) (Source, error) {
	if dir == "" {
		return Embedded(), nil
	}
	info, err := os.Stat(dir)
	if err != nil {
		return Source{}, errors.WrapWithDetails(errors.ETemplate, "template directory unavailable: "+dir, err,
			map[string]string{"template": dir})
	}
	if !info.IsDir() {
		return Source{}, errors.NewWithDetails(errors.ETemplate, "template is not a directory: "+dir,
			map[string]string{"template": dir})
	}
	return Source{Name: dir, FS: os.DirFS(dir)}, nil
}
