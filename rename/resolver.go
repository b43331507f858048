package rename

import (
	"strconv"
	"strings"
	"time"

	"github.com/dkarlovi/exifrename/metadata"
)

// TagRef addresses one metadata entry by group and key.
type TagRef struct {
	Group string
	Key   string
}

// Candidate is a resolved creation timestamp, tagged with where it came
// from so logs can show which fallback won.
type Candidate struct {
	Time   time.Time
	Zoned  bool
	Group  string
	Key    string
	Layout string
}

// ResolveTimestamp walks dateKeys in order and returns the first entry
// whose value parses against one of layouts. A value that is present but
// parses against no layout is treated as absent and the search moves on.
// Once a timestamp parses, a timezone offset is looked up within the
// same group via zoneKeys; without one the result stays naive.
func ResolveTimestamp(tree metadata.Tree, dateKeys []TagRef, layouts []string, zoneKeys map[string][]string) (Candidate, error) {
	for _, ref := range dateKeys {
		value, ok := tree.Lookup(ref.Group, ref.Key)
		if !ok {
			continue
		}
		for _, layout := range layouts {
			t, err := time.Parse(layout, value)
			if err != nil {
				continue
			}
			cand := Candidate{
				Time:   t,
				Zoned:  layoutZoned(layout),
				Group:  ref.Group,
				Key:    ref.Key,
				Layout: layout,
			}
			if !cand.Zoned {
				if loc, ok := resolveZone(ref.Group, tree, zoneKeys); ok {
					cand.Time = rebuildIn(t, loc)
					cand.Zoned = true
				}
			}
			return cand, nil
		}
	}
	return Candidate{}, ErrNoTimestamp
}

// resolveZone tries the group's timezone keys against the known textual
// offset forms. Absence of a match is not an error; the caller keeps the
// timestamp naive.
func resolveZone(group string, tree metadata.Tree, zoneKeys map[string][]string) (*time.Location, bool) {
	for _, key := range zoneKeys[group] {
		value, ok := tree.Lookup(group, key)
		if !ok {
			continue
		}
		for _, parse := range offsetParsers {
			if loc, ok := parse(strings.TrimSpace(value)); ok {
				return loc, true
			}
		}
	}
	return nil, false
}

// offsetParsers is the ordered list of textual offset forms: signed
// hour:minute, unsigned hour:minute, signed hour, unsigned hour. First
// parse wins.
var offsetParsers = []func(string) (*time.Location, bool){
	parseSignedHourMinute,
	parseHourMinute,
	parseSignedHour,
	parseHour,
}

func parseSignedHourMinute(s string) (*time.Location, bool) {
	if len(s) == 0 || (s[0] != '+' && s[0] != '-') {
		return nil, false
	}
	loc, ok := parseHourMinute(s[1:])
	if ok && s[0] == '-' {
		return negateZone(loc), true
	}
	return loc, ok
}

func parseHourMinute(s string) (*time.Location, bool) {
	hh, mm, found := strings.Cut(s, ":")
	if !found {
		return nil, false
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return nil, false
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return nil, false
	}
	return fixedZone(h*3600 + m*60), true
}

func parseSignedHour(s string) (*time.Location, bool) {
	if len(s) == 0 || (s[0] != '+' && s[0] != '-') {
		return nil, false
	}
	loc, ok := parseHour(s[1:])
	if ok && s[0] == '-' {
		return negateZone(loc), true
	}
	return loc, ok
}

func parseHour(s string) (*time.Location, bool) {
	h, err := strconv.Atoi(s)
	if err != nil || h < 0 || h > 23 {
		return nil, false
	}
	return fixedZone(h * 3600), true
}

func fixedZone(offsetSeconds int) *time.Location {
	name := "UTC"
	if offsetSeconds != 0 {
		sign := "+"
		secs := offsetSeconds
		if secs < 0 {
			sign = "-"
			secs = -secs
		}
		name = "UTC" + sign + strconv.Itoa(secs/3600)
		if rem := (secs % 3600) / 60; rem != 0 {
			name += ":" + twoDigits(rem)
		}
	}
	return time.FixedZone(name, offsetSeconds)
}

func negateZone(loc *time.Location) *time.Location {
	_, offset := time.Date(2000, 1, 1, 0, 0, 0, 0, loc).Zone()
	return fixedZone(-offset)
}

func twoDigits(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

// layoutZoned reports whether a layout carries timezone information, in
// which case time.Parse already produced a zoned value.
func layoutZoned(layout string) bool {
	return strings.Contains(layout, "Z07") || strings.Contains(layout, "-07") || strings.Contains(layout, "MST")
}

// rebuildIn reinterprets a wall-clock value in loc without shifting it.
func rebuildIn(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc)
}
