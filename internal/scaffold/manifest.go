package scaffold

import (
	"strings"

	"github.com/NielsdaWheelz/aocday/internal/config"
	"github.com/NielsdaWheelz/aocday/internal/fetch"
)

// TemplateName is the package name the template manifest ships with.
const TemplateName = "aoc_day_template"

// templateNameLine is the only line form that gets rewritten.
const templateNameLine = `name = "` + TemplateName + `"`

// PackageName returns the manifest name for coord.
//
// NameStyleFixed gives aoc_<year>_<day>. NameStyleLegacy gives aoc__<day>:
// the old shell scaffolder expanded "$YEAR_" as an unset variable and so
// never wrote the year.
func PackageName(coord fetch.Coordinate, style string) string {
	if style == config.NameStyleLegacy {
		return "aoc__" + coord.Day
	}
	return "aoc_" + coord.Year + "_" + coord.Day
}

// RenameManifest replaces every line that is exactly
// `name = "aoc_day_template"` with `name = "<name>"` and returns the new
// content and the number of lines replaced. Lines with extra whitespace,
// comments, or a CR line ending are left alone.
func RenameManifest(content []byte, name string) ([]byte, int) {
	lines := strings.Split(string(content), "\n")
	replaced := 0
	for i, line := range lines {
		if line == templateNameLine {
			lines[i] = `name = "` + name + `"`
			replaced++
		}
	}
	return []byte(strings.Join(lines, "\n")), replaced
}
