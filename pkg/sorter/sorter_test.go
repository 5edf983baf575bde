package sorter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSorter_Process(t *testing.T) {
	tests := []struct {
		name        string
		ignoreCase  bool
		input       []string
		expected    []string
		wantChanged bool
	}{
		{
			name:        "already sorted no duplicates",
			input:       []string{"#include <a.h>\n", "#include <b.h>\n"},
			expected:    []string{"#include <a.h>\n", "#include <b.h>\n"},
			wantChanged: false,
		},
		{
			name:        "needs reorder",
			input:       []string{"#include <b.h>\n", "#include <a.h>\n"},
			expected:    []string{"#include <a.h>\n", "#include <b.h>\n"},
			wantChanged: true,
		},
		{
			name:        "duplicate removal",
			input:       []string{"#include <a.h>\n", "#include <a.h>\n"},
			expected:    []string{"#include <a.h>\n"},
			wantChanged: true,
		},
		{
			name: "mixed content with trailing single-line block",
			input: []string{
				"#include <b.h>\n",
				"#include <a.h>\n",
				"int x;\n",
				"#include <d.h>\n",
			},
			expected: []string{
				"#include <a.h>\n",
				"#include <b.h>\n",
				"int x;\n",
				"#include <d.h>\n",
			},
			wantChanged: true,
		},
		{
			name:        "case sensitive uppercase first",
			input:       []string{"#include <B.h>\n", "#include <a.h>\n"},
			expected:    []string{"#include <B.h>\n", "#include <a.h>\n"},
			wantChanged: false,
		},
		{
			name:        "case insensitive lowercase a first",
			ignoreCase:  true,
			input:       []string{"#include <B.h>\n", "#include <a.h>\n"},
			expected:    []string{"#include <a.h>\n", "#include <B.h>\n"},
			wantChanged: true,
		},
		{
			name:        "single include line untouched",
			input:       []string{"#include <z.h>\n"},
			expected:    []string{"#include <z.h>\n"},
			wantChanged: false,
		},
		{
			name:        "empty input",
			input:       []string{},
			expected:    []string{},
			wantChanged: false,
		},
		{
			name:        "no includes at all",
			input:       []string{"int main() {\n", "\treturn 0;\n", "}\n"},
			expected:    []string{"int main() {\n", "\treturn 0;\n", "}\n"},
			wantChanged: false,
		},
		{
			name: "blank line splits blocks",
			input: []string{
				"#include <b.h>\n",
				"\n",
				"#include <a.h>\n",
			},
			expected: []string{
				"#include <b.h>\n",
				"\n",
				"#include <a.h>\n",
			},
			wantChanged: false,
		},
		{
			name: "conditional lines end the run",
			input: []string{
				"#ifdef _WIN32\n",
				"#include <windows.h>\n",
				"#endif\n",
				"#include <b.h>\n",
				"#include <a.h>\n",
			},
			expected: []string{
				"#ifdef _WIN32\n",
				"#include <windows.h>\n",
				"#endif\n",
				"#include <a.h>\n",
				"#include <b.h>\n",
			},
			wantChanged: true,
		},
		{
			name:        "quoted sorts before angled",
			input:       []string{"#include <a.h>\n", "#include \"b.h\"\n"},
			expected:    []string{"#include \"b.h\"\n", "#include <a.h>\n"},
			wantChanged: true,
		},
		{
			name:        "same path across delimiters is a duplicate",
			input:       []string{"#include <a.h>\n", "#include <b.h>\n", "#include \"a.h\"\n"},
			expected:    []string{"#include <a.h>\n", "#include <b.h>\n"},
			wantChanged: true,
		},
		{
			name:        "indented block keeps indentation",
			input:       []string{"\t#include <b.h>\n", "  #include <a.h>\n"},
			expected:    []string{"  #include <a.h>\n", "\t#include <b.h>\n"},
			wantChanged: true,
		},
		{
			name:        "final unterminated include participates",
			input:       []string{"#include <b.h>\n", "#include <a.h>"},
			expected:    []string{"#include <a.h>", "#include <b.h>\n"},
			wantChanged: true,
		},
		{
			name:        "crlf lines keep their terminators",
			input:       []string{"#include <b.h>\r\n", "#include <a.h>\r\n"},
			expected:    []string{"#include <a.h>\r\n", "#include <b.h>\r\n"},
			wantChanged: true,
		},
		{
			name:        "unterminated duplicates dedupe via fallback key",
			input:       []string{"#include <a.h\n", "#include <a.h\n"},
			expected:    []string{"#include <a.h\n"},
			wantChanged: true,
		},
		{
			name:        "differing unterminated literals both survive",
			input:       []string{"#include <b.h\n", "#include <a.h\n"},
			expected:    []string{"#include <a.h\n", "#include <b.h\n"},
			wantChanged: true,
		},
		{
			name:       "equal folded keys stay stable and unchanged",
			ignoreCase: true,
			input:      []string{"#include <A.h>\n", "#include <a.h>\n"},
			expected:   []string{"#include <A.h>\n", "#include <a.h>\n"},
			// dedup is case-exact so both survive; equal sort keys are
			// already in order, so nothing changed.
			wantChanged: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			s := New(SorterConfig{IgnoreCase: tt.ignoreCase})
			output, changed := s.Process(tt.input)
			req.Equal(tt.expected, output, "Process output mismatch")
			req.Equal(tt.wantChanged, changed, "Process changed flag mismatch")
		})
	}
}

func TestSorter_Process_unterminatedDedupChange(t *testing.T) {
	req := require.New(t)
	s := New(SorterConfig{})

	// The duplicate fallback key triggers dedup, and dedup alone marks the
	// block changed even though the surviving order was already sorted.
	input := []string{"#include <a.h\n", "#include <b.h>\n", "#include <a.h\n"}
	output, changed := s.Process(input)
	req.Equal([]string{"#include <a.h\n", "#include <b.h>\n"}, output)
	req.True(changed)
}

func TestSorter_Process_idempotence(t *testing.T) {
	req := require.New(t)

	inputs := [][]string{
		{"#include <b.h>\n", "#include <a.h>\n"},
		{"#include <a.h>\n", "#include <a.h>\n", "#include <c.h>\n"},
		{
			"// header\n",
			"#include <z.h>\n",
			"#include \"y.h\"\n",
			"\n",
			"#include <b.h>\n",
			"#include <B.h>\n",
			"int main() { return 0; }\n",
		},
		{"#include <only.h>\n"},
		{"no includes here\n"},
		{},
	}

	for _, ignoreCase := range []bool{false, true} {
		s := New(SorterConfig{IgnoreCase: ignoreCase})
		for _, input := range inputs {
			once, _ := s.Process(input)
			twice, changed := s.Process(once)
			req.False(changed, "second Process reported a change for %v (ignoreCase=%v)", input, ignoreCase)
			req.Equal(once, twice, "second Process altered output for %v (ignoreCase=%v)", input, ignoreCase)
		}
	}
}

func TestSorter_Process_preservesNonIncludeLines(t *testing.T) {
	req := require.New(t)
	s := New(SorterConfig{})

	input := []string{
		"// copyright\n",
		"#include <z.h>\n",
		"#include <a.h>\n",
		"\n",
		"#ifdef FOO\n",
		"#include <foo.h>\n",
		"#endif\n",
		"int x;\n",
		"#include <m.h>\n",
		"#include <k.h>\n",
		"int y;\n",
	}

	output, changed := s.Process(input)
	req.True(changed)

	filter := func(lines []string) []string {
		var rest []string
		for _, line := range lines {
			if !IsIncludeLine(line) {
				rest = append(rest, line)
			}
		}
		return rest
	}
	req.Equal(filter(input), filter(output), "non-include lines must keep content and relative order")
}

func TestResolveBlock(t *testing.T) {
	req := require.New(t)

	build := func(ignoreCase bool, lines ...string) []Include {
		block := make([]Include, 0, len(lines))
		for _, line := range lines {
			block = append(block, newInclude(line, ignoreCase))
		}
		return block
	}

	t.Run("first duplicate occurrence wins", func(t *testing.T) {
		block := build(false,
			"#include <a.h>\n",
			"#include <a.h> // second\n",
			"#include <a.h> // third\n",
		)
		resolved, changed := resolveBlock(block)
		req.True(changed)
		req.Len(resolved, 1)
		req.Equal("#include <a.h>\n", resolved[0].Line, "the topmost duplicate must survive")
	})

	t.Run("dedup keys unique in output", func(t *testing.T) {
		block := build(false,
			"#include <b.h>\n",
			"#include \"a.h\"\n",
			"#include <b.h>\n",
			"#include <a.h>\n",
		)
		resolved, changed := resolveBlock(block)
		req.True(changed)
		seen := make(map[string]bool)
		for _, inc := range resolved {
			req.False(seen[inc.DedupKey], "duplicate dedup key %q in output", inc.DedupKey)
			seen[inc.DedupKey] = true
		}
	})

	t.Run("sorted keys are non-decreasing", func(t *testing.T) {
		block := build(true,
			"#include <Zebra.h>\n",
			"#include <apple.h>\n",
			"#include <Mango.h>\n",
		)
		resolved, changed := resolveBlock(block)
		req.True(changed)
		for i := 1; i < len(resolved); i++ {
			req.LessOrEqual(resolved[i-1].SortKey, resolved[i].SortKey, "keys out of order at %d", i)
		}
	})

	t.Run("sorted input without duplicates is unchanged", func(t *testing.T) {
		block := build(false,
			"#include <a.h>\n",
			"#include <b.h>\n",
			"#include <c.h>\n",
		)
		resolved, changed := resolveBlock(block)
		req.False(changed)
		req.Equal(block, resolved)
	})
}
