package sorter

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/vincentdm05/sortinclude/pkg/errors"
	"github.com/vincentdm05/sortinclude/pkg/ui"
	"github.com/vincentdm05/sortinclude/pkg/utils"
)

// ProcessPath processes a single file or directory path.
func (s *sorter) ProcessPath(path string) error {
	return s.ProcessPaths([]string{path})
}

// ProcessPaths expands every PATH argument into target files and processes
// them. Directories are searched recursively; explicitly listed files that
// fail validation are warned about and skipped.
func (s *sorter) ProcessPaths(paths []string) error {
	if s.getDryRun() {
		ui.Info(errors.InfoMsgDryRun)
	}

	files, err := s.collectFiles(paths)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return nil
	}

	return s.ProcessFiles(files)
}

// collectFiles builds the deduplicated target list for a set of path
// arguments, first occurrence winning, in argument order.
func (s *sorter) collectFiles(paths []string) ([]string, error) {
	var files []string

	for _, path := range paths {
		isDir, err := utils.IsDirectory(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", errors.ErrMsgFailedToCheckPath, err)
		}

		if isDir {
			found, err := utils.FindSourceFiles(path, s.getExtensions(), s.getExclude())
			if err != nil {
				return nil, fmt.Errorf("%s: %w", errors.ErrMsgFailedToFindSourceFiles, err)
			}
			if len(found) == 0 {
				ui.Info(errors.InfoMsgNoSourceFilesFound, path)
				continue
			}
			ui.Info(errors.InfoMsgFoundSourceFiles, len(found), path)
			files = append(files, found...)
			continue
		}

		regular, err := utils.IsRegularFile(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", errors.ErrMsgFailedToCheckPath, err)
		}
		switch {
		case !regular:
			ui.Warning(errors.WarnMsgSkippingNotRegular, path)
		case !utils.HasValidName(path):
			ui.Warning(errors.WarnMsgSkippingInvalidName, path)
		case !utils.IsSourceFile(filepath.Base(path), s.getExtensions()):
			ui.Warning(errors.WarnMsgSkippingUnsupportedExt, path)
		default:
			files = append(files, path)
		}
	}

	seen := make(map[string]bool, len(files))
	unique := files[:0]
	for _, file := range files {
		if seen[file] {
			continue
		}
		seen[file] = true
		unique = append(unique, file)
	}

	return unique, nil
}

// ProcessFiles processes multiple source files, sharded across the
// configured number of workers. Each file is owned by exactly one worker;
// a failed file is reported and counted but never aborts the run.
func (s *sorter) ProcessFiles(filePaths []string) error {
	workers := s.getJobs()
	if workers < 1 {
		workers = 1
	}

	var (
		wg             sync.WaitGroup
		mu             sync.Mutex
		processedCount int
		changedCount   int
		errorCount     int
	)

	queue := make(chan string)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range queue {
				changed, err := s.processFile(path)

				mu.Lock()
				switch {
				case err != nil:
					errorCount++
					ui.Error(errors.InfoMsgErrorProcessing, path, err)
				case changed && s.getDryRun():
					processedCount++
					changedCount++
					ui.Info(errors.InfoMsgWouldSort, path)
				case changed:
					processedCount++
					changedCount++
					ui.Success(errors.InfoMsgSorted, path)
				default:
					processedCount++
					if s.getVerbose() {
						ui.Info(errors.InfoMsgUnchanged, path)
					}
				}
				mu.Unlock()
			}
		}()
	}

	for _, path := range filePaths {
		queue <- path
	}
	close(queue)
	wg.Wait()

	fmt.Printf(errors.InfoMsgProcessedCount, processedCount, changedCount)
	if errorCount > 0 {
		fmt.Printf(errors.InfoMsgErrorCount, errorCount)
	}
	fmt.Println()

	if errorCount > 0 {
		return fmt.Errorf(errors.ErrMsgFilesFailedToProcess, errorCount)
	}
	return nil
}
