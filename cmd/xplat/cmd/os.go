package cmd

import (
	"github.com/spf13/cobra"
)

// OsCmd is the parent command for cross-platform OS utilities.
var OsCmd = &cobra.Command{
	Use:   "os",
	Short: "Cross-platform OS utilities",
	Long: `Cross-platform OS utilities that work identically on macOS, Linux, and Windows.

File matching:
  glob         - Expand a glob pattern (item-spec engine, or --shell for doublestar)
  match-files  - Resolve an include filespec against a set of excludes

Examples:
  xplat os glob "**/*.go"
  xplat os match-files "src/**/*.go" --exclude "src/**/*_test.go"`,
}

func init() {
	OsCmd.AddCommand(GlobCmd)
	OsCmd.AddCommand(MatchFilesCmd)
}
