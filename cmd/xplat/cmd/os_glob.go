package cmd

import (
	"fmt"

	"github.com/opsplat/xplat/internal/globmatch"
	"github.com/opsplat/xplat/internal/osutil"
	"github.com/opsplat/xplat/internal/paths"
	"github.com/spf13/cobra"
)

var (
	globShell   bool
	globExclude []string
	globDir     string
)

// GlobCmd expands a single item-spec filespec (the glob-match enumeration
// engine) and prints matching files, one per line. With --shell it falls
// back to shell-style doublestar matching instead, for patterns that need
// brace expansion or character classes the item-spec engine doesn't support.
var GlobCmd = &cobra.Command{
	Use:   "glob <pattern>",
	Short: "Expand a glob pattern",
	Long: `Expand a glob pattern and print matching files, one per line.

Default mode evaluates <pattern> as a project item spec: '*' matches any
run of characters within one path segment, '?' matches a single character,
and '**' matches any number of path segments including zero. Excludes can be
layered on with repeated --exclude flags, evaluated against the same base
directory as the include pattern.

--shell switches to shell-style glob matching (doublestar), which adds
brace expansion ("{a,b}") and character classes ("[abc]") at the cost of
not supporting --exclude.

Examples:
  xplat os glob "src/**/*.go"
  xplat os glob "src/**/*.go" --exclude "src/**/*_test.go"
  xplat os glob --shell "src/**/*.{ts,tsx}"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pattern := args[0]

		if globShell {
			matches, err := osutil.ShellGlob(pattern)
			if err != nil {
				return err
			}
			for _, m := range matches {
				fmt.Println(m)
			}
			return nil
		}

		projectDir, err := paths.ProjectDirectory(globDir)
		if err != nil {
			return err
		}
		matches, err := globmatch.GetFiles(globmatch.OSFileSystem{}, projectDir, pattern, globExclude)
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
	GlobCmd.Flags().BoolVar(&globShell, "shell", false, "use shell-style glob matching (brace expansion, character classes) instead of the item-spec engine")
	GlobCmd.Flags().StringArrayVar(&globExclude, "exclude", nil, "exclude filespec (repeatable)")
	GlobCmd.Flags().StringVar(&globDir, "dir", "", "project directory to resolve the pattern against (default: current directory)")
}
