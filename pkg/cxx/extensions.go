package cxx

import (
	"sort"
	"strings"
)

// SourceExtensions is the set of file extensions recognized as C/C++ source
// or header files. Keys are lowercase and include the leading dot.
var SourceExtensions = map[string]bool{
	".c":   true,
	".h":   true,
	".cpp": true,
	".hpp": true,
}

// IsSourceExtension checks if a file extension belongs to a C/C++ source or
// header file. The comparison is case-insensitive so DOS-style names like
// FOO.CPP are recognized.
func IsSourceExtension(ext string) bool {
	return SourceExtensions[strings.ToLower(ext)]
}

// DefaultExtensions returns the recognized extensions as a sorted slice,
// suitable for seeding a configuration default.
func DefaultExtensions() []string {
	exts := make([]string, 0, len(SourceExtensions))
	for ext := range SourceExtensions {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}
