package commands

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// adjustmentUnits maps the supported --modify-time units to their
// duration. Months and years are deliberately absent: they are not fixed
// durations.
var adjustmentUnits = map[string]time.Duration{
	"weeks":   7 * 24 * time.Hour,
	"days":    24 * time.Hour,
	"hours":   time.Hour,
	"minutes": time.Minute,
	"seconds": time.Second,
}

// parseAdjustment parses a "unit=value" time modification, e.g.
// "hours=-3". An empty expression means no adjustment.
func parseAdjustment(expr string) (time.Duration, error) {
	if expr == "" {
		return 0, nil
	}
	unit, value, found := strings.Cut(expr, "=")
	if !found {
		return 0, fmt.Errorf("invalid time modification %q, expected unit=value", expr)
	}
	d, ok := adjustmentUnits[unit]
	if !ok {
		return 0, fmt.Errorf("unsupported time modification unit %q", unit)
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid time modification value %q: %w", value, err)
	}
	return time.Duration(n) * d, nil
}

// parseTimezone parses a target timezone expression: an IANA zone name,
// or a sign followed by hours (+2, +02), hours and minutes (+0200) or
// hour:minute (+02:00). An empty expression means no conversion.
func parseTimezone(expr string) (*time.Location, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, nil
	}

	if expr[0] == '+' || expr[0] == '-' {
		sign := 1
		if expr[0] == '-' {
			sign = -1
		}
		rest := expr[1:]

		var hours, minutes int
		var err error
		switch {
		case strings.Contains(rest, ":"):
			hh, mm, _ := strings.Cut(rest, ":")
			if hours, err = strconv.Atoi(hh); err != nil {
				return nil, fmt.Errorf("invalid timezone %q", expr)
			}
			if minutes, err = strconv.Atoi(mm); err != nil {
				return nil, fmt.Errorf("invalid timezone %q", expr)
			}
		case len(rest) == 1 || len(rest) == 2:
			if hours, err = strconv.Atoi(rest); err != nil {
				return nil, fmt.Errorf("invalid timezone %q", expr)
			}
		case len(rest) == 4:
			if hours, err = strconv.Atoi(rest[:2]); err != nil {
				return nil, fmt.Errorf("invalid timezone %q", expr)
			}
			if minutes, err = strconv.Atoi(rest[2:]); err != nil {
				return nil, fmt.Errorf("invalid timezone %q", expr)
			}
		default:
			return nil, fmt.Errorf("invalid timezone %q", expr)
		}
		if hours > 23 || minutes > 59 {
			return nil, fmt.Errorf("invalid timezone %q", expr)
		}
		offset := sign * (hours*3600 + minutes*60)
		return time.FixedZone(expr, offset), nil
	}

	loc, err := time.LoadLocation(expr)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q", expr)
	}
	return loc, nil
}

// parseFilters turns repeated "key=value" arguments into the filter map.
func parseFilters(args []string) (map[string]string, error) {
	if len(args) == 0 {
		return nil, nil
	}
	filters := make(map[string]string, len(args))
	for _, arg := range args {
		key, value, found := strings.Cut(arg, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid filter %q, expected key=value", arg)
		}
		filters[key] = value
	}
	return filters, nil
}
