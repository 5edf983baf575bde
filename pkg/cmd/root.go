package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vincentdm05/sortinclude/pkg/config"
	"github.com/vincentdm05/sortinclude/pkg/errors"
	"github.com/vincentdm05/sortinclude/pkg/sorter"
	"github.com/vincentdm05/sortinclude/pkg/utils"
	"github.com/vincentdm05/sortinclude/pkg/version"
)

const (
	UseDescription   = "sortinclude [flags] PATH..."
	ShortDescription = "Sort #include blocks in C/C++ source files"
	LongDescription  = `sortinclude is a command-line tool that rewrites C/C++ source files in
place, sorting each block of consecutive #include directives and dropping
duplicate includes.

A block is a maximal run of consecutive #include lines. Everything between
blocks (code, comments, preprocessor conditionals) is never moved, and a
file whose blocks are already sorted is left untouched.

PATH arguments can be files or directories. Directories are searched
recursively for C/C++ sources and headers (.c, .h, .cpp, .hpp by default);
hidden directories and configured excludes are skipped.

Settings are read from the nearest .sortinclude.yaml above the first PATH.
Precedence for ignore-case: the --ignore-case flag, then the
SORTINCLUDE_IGNORE_CASE environment variable, then the config file.`
)

var (
	ignoreCase  bool
	dryRun      bool
	verbose     bool
	jobs        int
	writeConfig bool
	showVersion bool
	versionStr  string
)

var rootCmd = &cobra.Command{
	Use:          UseDescription,
	Short:        ShortDescription,
	Long:         LongDescription,
	Args:         validateArgs,
	RunE:         run,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&ignoreCase, "ignore-case", "i", false, "Compare include lines case-insensitively when sorting")
	rootCmd.PersistentFlags().BoolVarP(&dryRun, "dry-run", "n", false, "Report files that would change without modifying them")
	rootCmd.PersistentFlags().IntVarP(&jobs, "jobs", "j", 0, "Number of files to process in parallel (default: config file, then number of CPUs)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Also print a line for every unchanged file")
	rootCmd.PersistentFlags().BoolVar(&writeConfig, "write-config", false, "Write the effective configuration to .sortinclude.yaml in the first PATH and exit")
	rootCmd.PersistentFlags().BoolVar(&showVersion, "version", false, "Show version information")
}

func validateArgs(cmd *cobra.Command, args []string) error {
	// If version flag is set, we don't need path arguments
	if showVersion {
		return nil
	}
	return cobra.MinimumNArgs(1)(cmd, args)
}

func run(cmd *cobra.Command, args []string) error {
	// Handle version flag
	if showVersion {
		info := version.Get()
		info.Version = version.Resolve(versionStr)
		fmt.Println(info.String())
		return nil
	}

	cfg, err := loadConfig(args[0])
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToLoadConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToLoadConfig, err)
	}

	effectiveIgnoreCase := cfg.ResolveIgnoreCase(cmd.Flags().Changed("ignore-case"), ignoreCase)
	effectiveJobs := cfg.ResolveJobs(cmd.Flags().Changed("jobs"), jobs)

	if writeConfig {
		return saveConfig(cmd, cfg, args[0], effectiveIgnoreCase)
	}

	s := sorter.New(sorter.SorterConfig{
		IgnoreCase: effectiveIgnoreCase,
		DryRun:     dryRun,
		Verbose:    verbose,
		Jobs:       effectiveJobs,
		Extensions: cfg.Extensions,
		Exclude:    cfg.Exclude,
	})
	return s.ProcessPaths(args)
}

// loadConfig reads .sortinclude.yaml from the nearest ancestor of the
// first PATH argument, falling back to defaults when none exists.
func loadConfig(path string) (*config.Config, error) {
	root := utils.FindConfigRoot(path, config.File)
	if root == "" {
		return config.DefaultConfig(), nil
	}
	return config.Load(root)
}

// saveConfig writes the effective configuration next to the first PATH:
// into the directory itself, or beside a file argument.
func saveConfig(cmd *cobra.Command, cfg *config.Config, path string, effectiveIgnoreCase bool) error {
	isDir, err := utils.IsDirectory(path)
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToCheckPath, err)
	}
	dir := path
	if !isDir {
		dir = filepath.Dir(path)
	}

	cfg.IgnoreCase = effectiveIgnoreCase
	if cmd.Flags().Changed("jobs") {
		cfg.Jobs = jobs
	}
	if err := cfg.Save(dir); err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToWriteConfig, err)
	}

	fmt.Printf(errors.InfoMsgWroteConfig+"\n", filepath.Join(dir, config.File))
	return nil
}

func Execute(version string) error {
	versionStr = version
	return rootCmd.Execute()
}
