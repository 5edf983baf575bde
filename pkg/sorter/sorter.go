package sorter

import (
	"sort"
)

// SorterConfig carries the per-run options. The value is immutable once
// handed to New; concurrent workers share it read-only.
type SorterConfig struct {
	IgnoreCase bool     // compare sort keys case-insensitively
	DryRun     bool     // report changes without rewriting files
	Verbose    bool     // print a line for unchanged files too
	Jobs       int      // number of files processed in parallel
	Extensions []string // recognized source file extensions
	Exclude    []string // directory basenames skipped while walking
}

// sorter handles the include block sorting logic
type sorter struct {
	config SorterConfig
}

// New creates a new sorter with the specified configuration
func New(config SorterConfig) *sorter {
	return &sorter{
		config: config,
	}
}

func (s *sorter) getIgnoreCase() bool {
	return s.config.IgnoreCase
}

func (s *sorter) getDryRun() bool {
	return s.config.DryRun
}

func (s *sorter) getVerbose() bool {
	return s.config.Verbose
}

func (s *sorter) getJobs() int {
	return s.config.Jobs
}

func (s *sorter) getExtensions() []string {
	return s.config.Extensions
}

func (s *sorter) getExclude() []string {
	return s.config.Exclude
}

// Process reorders every include block in lines and reports whether the
// result differs from the input. An include block is a maximal run of
// consecutive #include lines. Non-include lines keep their content and
// relative order, and a block of a single include line is never touched.
func (s *sorter) Process(lines []string) ([]string, bool) {
	output := make([]string, 0, len(lines))
	var pending []Include
	changed := false

	flush := func() {
		if len(pending) == 0 {
			return
		}
		if len(pending) == 1 {
			output = append(output, pending[0].Line)
		} else {
			block, blockChanged := resolveBlock(pending)
			for _, inc := range block {
				output = append(output, inc.Line)
			}
			if blockChanged {
				changed = true
			}
		}
		pending = pending[:0]
	}

	for _, line := range lines {
		if IsIncludeLine(line) {
			pending = append(pending, newInclude(line, s.getIgnoreCase()))
			continue
		}
		flush()
		output = append(output, line)
	}
	flush()

	return output, changed
}

// resolveBlock deduplicates and sorts one include block. Callers only pass
// blocks of at least two lines. A block counts as changed when a duplicate
// was removed or when the deduplicated sequence was not already in sorted
// order; a sort that merely reorders equal keys does not count.
func resolveBlock(block []Include) ([]Include, bool) {
	seen := make(map[string]bool, len(block))
	deduped := make([]Include, 0, len(block))
	for _, inc := range block {
		if seen[inc.DedupKey] {
			continue
		}
		seen[inc.DedupKey] = true
		deduped = append(deduped, inc)
	}

	less := func(i, j int) bool {
		return deduped[i].SortKey < deduped[j].SortKey
	}
	changed := len(deduped) < len(block) || !sort.SliceIsSorted(deduped, less)
	sort.SliceStable(deduped, less)

	return deduped, changed
}
