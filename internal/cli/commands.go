package cli

import (
	"github.com/spf13/cobra"

	"github.com/NielsdaWheelz/aocday/internal/commands"
	"github.com/NielsdaWheelz/aocday/internal/config"
	"github.com/NielsdaWheelz/aocday/internal/errors"
	"github.com/NielsdaWheelz/aocday/internal/fetch"
	"github.com/NielsdaWheelz/aocday/internal/fs"
	"github.com/NielsdaWheelz/aocday/internal/scaffold"
)

const fetchLong = `fetch_input - download an Advent of Code puzzle input

Reads the session token from stdin and writes the input for <year> <day>
to stdout, exactly as the server returned it (error pages included).

example:
  fetch_input 2023 5 < ~/.aoc_session > input`

const initDayLong = `init_day - create a project directory for one Advent of Code day

Copies the day template to <path>, sets the manifest package name to
aoc_<year>_<day>, and downloads the puzzle input into <path>/input using
the session token read from stdin. <path> must not exist.

example:
  init_day ./day05 2023 5 < ~/.aoc_session`

func newClient(d Deps, s *session) *fetch.Client {
	return fetch.NewClient(fetch.Options{
		BaseURL:   s.cfg.BaseURL,
		Timeout:   s.cfg.Timeout,
		Transport: d.Transport,
		Logger:    s.logger,
	})
}

func newFetchCommand(d Deps) *cobra.Command {
	s := &session{}
	cmd := newRoot(s, d, "fetch_input <year> <day>", "Download a puzzle input", fetchLong, 2, errors.EUsage)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		opts := commands.FetchOpts{
			Coord: fetch.Coordinate{Year: args[0], Day: args[1]},
		}
		return commands.Fetch(cmd.Context(), newClient(d, s), opts, cmd.InOrStdin(), cmd.OutOrStdout(), s.logger)
	}
	return cmd
}

func newInitDayCommand(d Deps) *cobra.Command {
	s := &session{}
	cmd := newRoot(s, d, "init_day <path> <year> <day>", "Scaffold a day project", initDayLong, 3, errors.EScaffoldUsage)

	var templateDir string
	var legacyName bool
	cmd.Flags().StringVar(&templateDir, "template", "", "template directory (default: built-in template)")
	cmd.Flags().BoolVar(&legacyName, "legacy-name", false, "name the package aoc__<day> like the old shell script")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg := s.cfg
		if templateDir != "" {
			cfg.TemplateDir = templateDir
		}
		if legacyName {
			cfg.NameStyle = config.NameStyleLegacy
		}

		src, err := scaffold.FromDir(cfg.TemplateDir)
		if err != nil {
			return err
		}

		filesystem := d.FS
		if filesystem == nil {
			filesystem = fs.NewRealFS()
		}

		opts := commands.InitDayOpts{
			Path:         args[0],
			Coord:        fetch.Coordinate{Year: args[1], Day: args[2]},
			Template:     src,
			ManifestFile: cfg.ManifestFile,
			InputFile:    cfg.InputFile,
			NameStyle:    cfg.NameStyle,
		}
		return commands.InitDay(cmd.Context(), filesystem, newClient(d, s), opts, cmd.InOrStdin(), cmd.OutOrStdout(), s.logger)
	}
	return cmd
}
