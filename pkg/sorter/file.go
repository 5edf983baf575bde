package sorter

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vincentdm05/sortinclude/pkg/errors"
)

// SplitLines splits data into lines, each retaining its own terminator
// ("\n" or "\r\n"). A trailing chunk without a newline becomes a final
// unterminated line; empty input yields no lines.
func SplitLines(data []byte) []string {
	var lines []string
	start := 0
	for i, b := range data {
		if b == '\n' {
			lines = append(lines, string(data[start:i+1]))
			start = i + 1
		}
	}
	if start < len(data) {
		lines = append(lines, string(data[start:]))
	}
	return lines
}

// processFile sorts the include blocks of a single file, rewriting it in
// place only when something changed. An unchanged file is not written to,
// so its modification time is preserved. In dry-run mode nothing is ever
// written and the changed result is still reported.
func (s *sorter) processFile(path string) (changed bool, err error) {
	file, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return false, fmt.Errorf("%s: %w", errors.ErrMsgFailedToOpenFile, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%s: %w", errors.ErrMsgFailedToRewriteFile, cerr)
		}
	}()

	data, err := io.ReadAll(file)
	if err != nil {
		return false, fmt.Errorf("%s: %w", errors.ErrMsgFailedToReadFile, err)
	}

	var lines []string
	lines, changed = s.Process(SplitLines(data))
	if !changed || s.getDryRun() {
		return changed, nil
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return true, fmt.Errorf("%s: %w", errors.ErrMsgFailedToRewriteFile, err)
	}
	if err := file.Truncate(0); err != nil {
		return true, fmt.Errorf("%s: %w", errors.ErrMsgFailedToRewriteFile, err)
	}
	if _, err := file.WriteString(strings.Join(lines, "")); err != nil {
		return true, fmt.Errorf("%s: %w", errors.ErrMsgFailedToRewriteFile, err)
	}
	return true, nil
}
