package sorter

import (
	"regexp"
	"strings"
)

// Include represents a single #include directive line
type Include struct {
	Line     string // raw line, leading whitespace and terminator included
	SortKey  string // line with leading whitespace stripped, case-folded when configured
	DedupKey string // path between the include delimiters
}

var (
	// includeLinePattern matches an include directive: optional leading
	// blanks, #include, at least one blank, then < or ".
	includeLinePattern = regexp.MustCompile(`^[ \t]*#include[ \t]+[<"]`)

	// includePathPattern captures the delimited path of a well-formed
	// include directive.
	includePathPattern = regexp.MustCompile(`^[ \t]*#include[ \t]+(?:<([^>]*)>|"([^"]*)")`)
)

// IsIncludeLine checks if a line is an #include directive. Nothing after
// the opening delimiter is validated, so an unterminated include still
// counts.
func IsIncludeLine(line string) bool {
	return includeLinePattern.MatchString(line)
}

// newInclude derives the sort and dedup keys for an include line.
func newInclude(line string, ignoreCase bool) Include {
	sortKey := strings.TrimLeft(line, " \t")
	if ignoreCase {
		sortKey = strings.ToLower(sortKey)
	}
	return Include{
		Line:     line,
		SortKey:  sortKey,
		DedupKey: dedupKeyOf(line),
	}
}

// dedupKeyOf extracts the path between the include delimiters. A directive
// with no closing delimiter falls back to everything after the opener,
// line terminator excluded.
func dedupKeyOf(line string) string {
	if m := includePathPattern.FindStringSubmatch(line); m != nil {
		if m[1] != "" {
			return m[1]
		}
		return m[2]
	}
	i := strings.IndexAny(line, `<"`)
	if i < 0 {
		return strings.TrimRight(line, "\r\n")
	}
	return strings.TrimRight(line[i+1:], "\r\n")
}
