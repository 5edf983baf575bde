package errors

// Error message constants for the sortinclude application
const (
	// File processing errors
	ErrMsgFailedToOpenFile    = "failed to open file"
	ErrMsgFailedToReadFile    = "failed to read file"
	ErrMsgFailedToRewriteFile = "failed to rewrite file"

	// Directory processing errors
	ErrMsgFailedToCheckPath       = "failed to check path"
	ErrMsgFailedToFindSourceFiles = "failed to find C/C++ source files in directory"
	ErrMsgFilesFailedToProcess    = "%d files failed to process"

	// Configuration errors
	ErrMsgFailedToLoadConfig  = "failed to load config"
	ErrMsgFailedToWriteConfig = "failed to write config"

	// Info/warning messages
	WarnMsgSkippingInvalidName    = "Warning: skipping %s: filename contains reserved characters"
	WarnMsgSkippingUnsupportedExt = "Warning: skipping %s: not a recognized C/C++ source file"
	WarnMsgSkippingNotRegular     = "Warning: skipping %s: not a regular file"
	InfoMsgNoSourceFilesFound     = "No C/C++ source files found in directory: %s"
	InfoMsgFoundSourceFiles       = "Found %d C/C++ source files in directory: %s"
	InfoMsgDryRun                 = "Dry run: no files will be modified."
	InfoMsgWouldSort              = "Would sort: %s"
	InfoMsgSorted                 = "Sorted: %s"
	InfoMsgUnchanged              = "Unchanged: %s"
	InfoMsgErrorProcessing        = "Error processing %s: %v"
	InfoMsgProcessedCount         = "\nProcessed %d files, %d changed"
	InfoMsgErrorCount             = ", %d files had errors"
	InfoMsgWroteConfig            = "Wrote %s"
)
