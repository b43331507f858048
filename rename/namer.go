package rename

import (
	"strconv"
	"strings"
	"time"

	strftime "github.com/ncruces/go-strftime"
)

// DefaultTimeFormat is the strftime pattern used when neither config nor
// flags override it.
const DefaultTimeFormat = "%Y%m%d_%H%M%S"

// NamingConfig controls how a target filename is built. Extensions, when
// set, is a fixed output suffix chain used verbatim; when empty the
// original file's suffixes are kept.
type NamingConfig struct {
	Prefix     string
	Suffix     string
	TimeFormat string
	Extensions []string
}

// FormatName builds `[prefix]<time>[_counter][suffix]<extensions>`. The
// counter segment only appears for counter >= 2: the bare name is always
// tried first and the counter is purely a collision disambiguator.
func FormatName(t time.Time, cfg NamingConfig, counter int, origSuffixes string) string {
	format := cfg.TimeFormat
	if format == "" {
		format = DefaultTimeFormat
	}

	var b strings.Builder
	b.WriteString(cfg.Prefix)
	b.WriteString(strftime.Format(format, t))
	if counter >= 2 {
		b.WriteString("_")
		b.WriteString(strconv.Itoa(counter))
	}
	b.WriteString(cfg.Suffix)
	if len(cfg.Extensions) > 0 {
		for _, ext := range cfg.Extensions {
			b.WriteString(ext)
		}
	} else {
		b.WriteString(origSuffixes)
	}
	return b.String()
}

// Suffixes returns the full dot-suffix chain of a file name, so that
// multi-part extensions survive the rename intact.
func Suffixes(base string) string {
	i := strings.IndexByte(base, '.')
	if i <= 0 {
		// A leading dot is a hidden file, not an extension.
		return ""
	}
	return base[i:]
}
