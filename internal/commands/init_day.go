package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/NielsdaWheelz/aocday/internal/errors"
	"github.com/NielsdaWheelz/aocday/internal/fetch"
	"github.com/NielsdaWheelz/aocday/internal/fs"
	"github.com/NielsdaWheelz/aocday/internal/logging"
	"github.com/NielsdaWheelz/aocday/internal/scaffold"
)

// InitDayOpts holds options for the init_day command.
type InitDayOpts struct {
	Path         string
	Coord        fetch.Coordinate
	Template     scaffold.Source
	ManifestFile string // slash-separated, relative to Path
	InputFile    string
	NameStyle    string
}

// InitDayResult holds the result of init_day for output formatting.
type InitDayResult struct {
	Path          string
	Template      string
	Name          string
	ManifestLines int
	InputStatus   int
	InputBytes    int64
}

// InitDay implements `init_day <path> <year> <day>`.
//
// Copies the template to opts.Path, renames the manifest package and fetches
// the puzzle input into opts.InputFile inside the new directory. Returns
// E_PATH_EXISTS without touching anything if opts.Path is already present.
//
// Nothing is rolled back: if the fetch fails, the copied directory stays
// with whatever part of the input was written.
func InitDay(ctx context.Context, fsys fs.FS, fetcher InputFetcher, opts InitDayOpts, stdin io.Reader, stdout io.Writer, logger *zap.Logger) error {
	logger = logging.OrNop(logger)

	credential, err := fetch.ReadCredential(stdin)
	if err != nil {
		return err
	}
	if credential == "" {
		logger.Warn("empty session on stdin; the request will not be authenticated")
	}

	exists, err := fs.Exists(fsys, opts.Path)
	if err != nil {
		return errors.Wrap(errors.EInternal, "failed to check "+opts.Path, err)
	}
	if exists {
		return pathExists(opts.Path)
	}

	copied, err := fs.CopyTree(fsys, opts.Template.FS, opts.Path)
	if err != nil {
		if os.IsExist(err) && copied.Dirs == 0 {
			// created by someone else after the check above
			return pathExists(opts.Path)
		}
		return errors.WrapWithDetails(errors.ECopyFailed, "failed to copy template: "+err.Error(), err,
			map[string]string{"template": opts.Template.Name, "path": opts.Path})
	}
	logger.Debug("template copied",
		zap.String("template", opts.Template.Name),
		zap.String("path", opts.Path),
		zap.Int("dirs", copied.Dirs),
		zap.Int("files", copied.Files))

	result := InitDayResult{
		Path:     opts.Path,
		Template: opts.Template.Name,
		Name:     scaffold.PackageName(opts.Coord, opts.NameStyle),
	}

	manifestPath := filepath.Join(opts.Path, filepath.FromSlash(opts.ManifestFile))
	err = fs.RewriteFileAtomic(fsys, manifestPath, func(content []byte) ([]byte, error) {
		updated, n := scaffold.RenameManifest(content, result.Name)
		result.ManifestLines = n
		return updated, nil
	})
	if err != nil {
		return errors.Wrap(errors.EManifestFailed, "failed to rewrite "+manifestPath+": "+err.Error(), err)
	}
	if result.ManifestLines == 0 {
		logger.Warn("manifest has no template name line; left unchanged",
			zap.String("manifest", manifestPath),
			zap.String("expected", scaffold.TemplateName))
	}

	status, n, err := fetchInto(ctx, fsys, fetcher, opts, credential)
	result.InputStatus, result.InputBytes = status, n
	if err != nil {
		return err
	}

	writeInitDayOutput(stdout, result)
	return nil
}

// fetchInto streams the puzzle input into the input file of the new project.
func fetchInto(ctx context.Context, fsys fs.FS, fetcher InputFetcher, opts InitDayOpts, credential string) (int, int64, error) {
	inputPath := filepath.Join(opts.Path, opts.InputFile)

	w, err := fsys.Create(inputPath)
	if err != nil {
		return 0, 0, errors.Wrap(errors.EInputWriteFailed, "failed to create "+inputPath, err)
	}

	res, fetchErr := fetcher.FetchInput(ctx, opts.Coord, credential, w)
	closeErr := w.Close()
	if fetchErr != nil {
		return res.StatusCode, res.Bytes, fetchErr
	}
	if closeErr != nil {
		return res.StatusCode, res.Bytes, errors.Wrap(errors.EInputWriteFailed, "failed to write "+inputPath, closeErr)
	}
	return res.StatusCode, res.Bytes, nil
}

func pathExists(path string) error {
	return errors.NewWithDetails(errors.EPathExists, "output path already exists: "+path,
		map[string]string{"path": path})
}

// writeInitDayOutput writes the stable key: value output for init_day.
func writeInitDayOutput(w io.Writer, r InitDayResult) {
	fmt.Fprintf(w, "path: %s\n", r.Path)
	fmt.Fprintf(w, "template: %s\n", r.Template)
	fmt.Fprintf(w, "name: %s\n", r.Name)
	fmt.Fprintf(w, "manifest_lines_rewritten: %d\n", r.ManifestLines)
	fmt.Fprintf(w, "input_status: %d\n", r.InputStatus)
	fmt.Fprintf(w, "input_bytes: %d\n", r.InputBytes)
}
