package cmd

import (
	"fmt"

	"github.com/opsplat/xplat/internal/globmatch"
	"github.com/opsplat/xplat/internal/paths"
	"github.com/spf13/cobra"
)

var (
	matchFilesExclude []string
	matchFilesDir     string
)

// MatchFilesCmd is the direct, multi-exclude entry point to GetFiles, useful
// when a caller already has an include filespec and a list of excludes
// (e.g. mirroring a Taskfile's sources/excludes block) and wants the exact
// same enumeration xplat uses internally.
var MatchFilesCmd = &cobra.Command{
	Use:   "match-files <include>",
	Short: "Resolve an include filespec against a set of excludes",
	Long: `Resolve a single include filespec against zero or more exclude
filespecs and print the resulting file list, one path per line, relative to
the project directory.

This is the same operation internal/taskfile uses to resolve a task's
sources/excludes fields, exposed directly for scripting and debugging.

Example:
  xplat os match-files "src/**/*.go" --exclude "src/**/*_test.go" --exclude "src/vendor/**"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		projectDir, err := paths.ProjectDirectory(matchFilesDir)
		if err != nil {
			return err
		}
		matches, err := globmatch.GetFiles(globmatch.OSFileSystem{}, projectDir, args[0], matchFilesExclude)
		if err != nil {
			return err
		}
		for _, m := range matches {
			fmt.Println(m)
		}
		return nil
	},
}

func init() {
	MatchFilesCmd.Flags().StringArrayVar(&matchFilesExclude, "exclude", nil, "exclude filespec (repeatable)")
	MatchFilesCmd.Flags().StringVar(&matchFilesDir, "dir", "", "project directory to resolve paths against (default: current directory)")
}
