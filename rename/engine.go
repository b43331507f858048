package rename

import (
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/dkarlovi/exifrename/metadata"
)

// Outcome is the tri-state per-file result.
type Outcome int

const (
	OutcomeError Outcome = iota
	OutcomeRenamed
	OutcomeUnchanged
)

func (o Outcome) String() string {
	switch o {
	case OutcomeError:
		return "error"
	case OutcomeRenamed:
		return "renamed"
	case OutcomeUnchanged:
		return "unchanged"
	default:
		return "unknown"
	}
}

// Options are the per-run knobs applied to every file.
type Options struct {
	// Filters are metadata key/value pairs that must all match (string
	// equality) for a file to be processed. Keys may be "Group.Key" or a
	// bare key searched across groups.
	Filters map[string]string

	// Adjust is added to the resolved creation time.
	Adjust time.Duration

	// TargetZone converts the creation time into an explicit zone. Naive
	// timestamps are interpreted as local time first.
	TargetZone *time.Location

	// AssumeUTC reinterprets naive timestamps as UTC without shifting
	// the wall-clock value.
	AssumeUTC bool

	// DryRun computes and logs the intended rename without touching the
	// filesystem.
	DryRun bool
}

// Result is the terminal outcome for one file. Path is the file's
// location after processing (unchanged unless Outcome is Renamed, or a
// post-process failure occurred after the rename).
type Result struct {
	Outcome Outcome
	Path    string
	Time    time.Time
	Err     error
}

// Engine orchestrates extractor selection, filtering, timestamp
// resolution and the collision-safe rename for a single file at a time.
type Engine struct {
	extractors []*Extractor
	fs         FS
	log        zerolog.Logger
}

// NewEngine builds an engine. Extractor order is the dispatch priority.
func NewEngine(extractors []*Extractor, fs FS, log zerolog.Logger) *Engine {
	return &Engine{extractors: extractors, fs: fs, log: log}
}

// Process renames one file according to its creation-time metadata.
// Every failure is converted into an Error result here; nothing is fatal
// to the batch.
func (e *Engine) Process(path string, opts Options) Result {
	x, tree, err := e.selectExtractor(path, opts.Filters)
	if err != nil {
		return e.fail(path, err)
	}

	if tree == nil {
		if tree, err = x.Source.Probe(path); err != nil {
			return e.fail(path, err)
		}
	}

	cand, err := x.CreationTime(tree)
	if err != nil {
		return e.fail(path, err)
	}
	e.log.Debug().
		Str("file", path).
		Str("group", cand.Group).
		Str("key", cand.Key).
		Str("layout", cand.Layout).
		Msg("resolved creation time")

	t := e.adjustTime(cand, opts)
	return e.rename(x, path, t, opts.DryRun)
}

// Inspect returns the full metadata tree and the creation time that a
// rename would use, without renaming anything.
func (e *Engine) Inspect(path string, opts Options) (metadata.Tree, time.Time, error) {
	x, tree, err := e.selectExtractor(path, opts.Filters)
	if err != nil {
		return nil, time.Time{}, err
	}
	if tree == nil {
		if tree, err = x.Source.Probe(path); err != nil {
			return nil, time.Time{}, err
		}
	}
	cand, err := x.CreationTime(tree)
	if err != nil {
		return tree, time.Time{}, err
	}
	return tree, e.adjustTime(cand, opts), nil
}

// selectExtractor picks the first variant that claims the file and whose
// metadata satisfies the filters. The probed tree is returned when
// filtering forced a probe, so Process does not probe twice.
func (e *Engine) selectExtractor(path string, filters map[string]string) (*Extractor, metadata.Tree, error) {
	filtered := false
	for _, x := range e.extractors {
		if !x.Claims(path) {
			e.log.Debug().Str("file", path).Str("kind", x.Kind).Msg("extension not claimed")
			continue
		}
		if len(filters) == 0 {
			return x, nil, nil
		}
		tree, err := x.Source.Probe(path)
		if err != nil {
			return nil, nil, err
		}
		if !matchFilters(tree, filters) {
			filtered = true
			continue
		}
		return x, tree, nil
	}
	if filtered {
		return nil, nil, ErrFiltered
	}
	return nil, nil, ErrUnsupported
}

// matchFilters applies AND semantics: every key must exist and its value
// must be string-equal to the expected one.
func matchFilters(tree metadata.Tree, filters map[string]string) bool {
	for key, want := range filters {
		got, ok := tree.Find(key)
		if !ok || got != want {
			return false
		}
	}
	return true
}

// adjustTime applies the fixed offset and timezone handling to a
// resolved candidate.
func (e *Engine) adjustTime(cand Candidate, opts Options) time.Time {
	t := cand.Time
	if opts.Adjust != 0 {
		t = t.Add(opts.Adjust)
	}
	switch {
	case opts.TargetZone != nil:
		if !cand.Zoned {
			t = rebuildIn(t, time.Local)
		}
		t = t.In(opts.TargetZone)
	case opts.AssumeUTC && !cand.Zoned:
		t = rebuildIn(t, time.UTC)
	}
	return t
}

// rename generates candidate names until one is free, then performs the
// rename unless this is a dry run. Names are deterministic per (time,
// naming config), so re-running over already-renamed files short-circuits
// to Unchanged instead of stacking counters.
func (e *Engine) rename(x *Extractor, path string, t time.Time, dry bool) Result {
	dir := filepath.Dir(path)
	base := filepath.Base(path)
	suffixes := Suffixes(base)

	name := FormatName(t, x.Naming, 0, suffixes)
	if name == base {
		e.log.Debug().Str("file", path).Msg("name already correct")
		return Result{Outcome: OutcomeUnchanged, Path: path, Time: t}
	}

	target := filepath.Join(dir, name)
	for counter := 2; e.fs.Exists(target); counter++ {
		name = FormatName(t, x.Naming, counter, suffixes)
		if name == base {
			e.log.Debug().Str("file", path).Msg("name already correct")
			return Result{Outcome: OutcomeUnchanged, Path: path, Time: t}
		}
		target = filepath.Join(dir, name)
	}

	if dry {
		e.log.Info().Msgf("[%s]: would rename %s -> %s", dir, base, name)
		return Result{Outcome: OutcomeUnchanged, Path: path, Time: t}
	}

	if err := e.fs.Rename(path, target); err != nil {
		return e.fail(path, err)
	}
	e.log.Info().Msgf("[%s]: %s -> %s", dir, base, name)

	if x.PostRename != nil {
		if err := x.PostRename(target); err != nil {
			// The rename stays in place; the outcome is downgraded so
			// the summary surfaces the failed post step.
			perr := &PostProcessError{Path: target, Err: err}
			e.log.Error().Err(perr).Str("file", target).Msg("post-rename step failed")
			return Result{Outcome: OutcomeError, Path: target, Time: t, Err: perr}
		}
	}

	return Result{Outcome: OutcomeRenamed, Path: target, Time: t}
}

func (e *Engine) fail(path string, err error) Result {
	if err == ErrFiltered {
		e.log.Debug().Str("file", path).Msg("skipped by metadata filter")
	} else {
		e.log.Error().Err(err).Str("file", path).Msg("cannot rename")
	}
	return Result{Outcome: OutcomeError, Path: path, Err: err}
}
