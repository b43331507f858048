// Package commands wires the CLI surface: the rename command and the
// metadata listing command.
package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/symfony-cli/console"

	"github.com/dkarlovi/exifrename/config"
	"github.com/dkarlovi/exifrename/rename"
)

// Commands returns the application's command set.
func Commands() []*console.Command {
	return []*console.Command{renameCmd, metaCmd}
}

// commonFlags are shared by every command that selects and inspects
// files.
func commonFlags() []console.Flag {
	return []console.Flag{
		&console.StringFlag{Name: "config", Usage: "Path to the configuration file"},
		&console.BoolFlag{Name: "recursive", Usage: "Recursively process all files if PATH is a directory; with --glob, enables recursive globbing"},
		&console.BoolFlag{Name: "glob", Usage: "Use PATH as a glob pattern instead of a single file or directory"},
		&console.BoolFlag{Name: "verbose", Usage: "Enable debug logging"},
		&console.StringSliceFlag{Name: "filter", Usage: "Filter files by metadata, key=value; repeatable, all filters must match"},
		&console.StringFlag{Name: "modify-time", Usage: "Modify the creation time, unit=value with unit one of weeks|days|hours|minutes|seconds"},
		&console.StringFlag{Name: "target-timezone", Usage: "Convert all times to the given timezone (IANA name, +HH, +HHMM or +HH:MM)"},
		&console.BoolFlag{Name: "ignore-timezone", Usage: "Treat timestamps without timezone information as UTC"},
		&console.StringFlag{Name: "prefix", Usage: "Override the filename prefix"},
		&console.StringFlag{Name: "suffix", Usage: "Append a suffix to the file names"},
		&console.StringFlag{Name: "time-format", Usage: "Override the strftime pattern used for file names"},
	}
}

// newLogger builds the run's logger; the commands own its lifecycle and
// hand it down to the engine.
func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}
	return zerolog.New(writer).With().Timestamp().Logger().Level(level)
}

// runOptions translates the common flags into engine options.
func runOptions(c *console.Context) (rename.Options, error) {
	filters, err := parseFilters(c.StringSlice("filter"))
	if err != nil {
		return rename.Options{}, err
	}
	adjust, err := parseAdjustment(c.String("modify-time"))
	if err != nil {
		return rename.Options{}, err
	}
	zone, err := parseTimezone(c.String("target-timezone"))
	if err != nil {
		return rename.Options{}, err
	}
	return rename.Options{
		Filters:    filters,
		Adjust:     adjust,
		TargetZone: zone,
		AssumeUTC:  c.Bool("ignore-timezone"),
	}, nil
}

// namingFor merges the config defaults for one kind with the flag
// overrides, which apply to every kind (matching the flag semantics of
// the prefix/suffix/time-format options).
func namingFor(c *console.Context, kind config.KindConfig) rename.NamingConfig {
	naming := rename.NamingConfig{
		Prefix:     kind.Prefix,
		Suffix:     kind.Suffix,
		TimeFormat: kind.TimeFormat,
		Extensions: kind.Extensions,
	}
	if v := c.String("prefix"); v != "" {
		naming.Prefix = v
	}
	if v := c.String("suffix"); v != "" {
		naming.Suffix = v
	}
	if v := c.String("time-format"); v != "" {
		naming.TimeFormat = v
	}
	return naming
}

// printSummary writes the processed total and per-outcome counts.
func printSummary(c *console.Context, counts map[rename.Outcome]int) {
	total := 0
	for _, n := range counts {
		total += n
	}
	fmt.Fprintf(c.App.Writer, "Processed <info>%d</> files\n", total)
	for _, outcome := range []rename.Outcome{rename.OutcomeRenamed, rename.OutcomeUnchanged, rename.OutcomeError} {
		if n, ok := counts[outcome]; ok {
			fmt.Fprintf(c.App.Writer, "  <comment>%s</>: %d\n", outcome, n)
		}
	}
}

// newEngine assembles the extractor set and engine for one run.
func newEngine(c *console.Context, cfg *config.Config, log zerolog.Logger, withThumbnails bool) *rename.Engine {
	var post func(path string) error
	if withThumbnails && !cfg.Thumbnail.Skip && !c.Bool("skip-thumbnail") {
		width := c.Int("thumbnail-width")
		if width <= 0 {
			width = cfg.Thumbnail.Width
		}
		post = rename.NewThumbnailer(width, log).Embed
	}

	extractors := []*rename.Extractor{
		rename.NewImageExtractor(namingFor(c, cfg.Image)),
		rename.NewVideoExtractor(namingFor(c, cfg.Video), post),
	}
	return rename.NewEngine(extractors, rename.OSFS{}, log)
}
