// xplat - cross-platform file matching and task running for Taskfile projects
//
// A single binary that provides consistent glob/item-spec file enumeration
// and an embedded Task runner across macOS, Linux, and Windows.
package main

import (
	"os"

	// Bootstrap MUST be imported first to set the log level before anything
	// else in the tree logs.
	_ "github.com/opsplat/xplat/internal/bootstrap"

	"github.com/opsplat/xplat/cmd/xplat/cmd"
	"github.com/opsplat/xplat/internal/config"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	config.ApplyCacheEnv()

	rootCmd := &cobra.Command{
		Use:   "xplat",
		Short: "File matching and task running for plat-* projects",
		Long: `xplat resolves item-spec file patterns (the same include/exclude
glob syntax used by Taskfile sources/excludes) and runs the tasks that
consume them.

KEY COMMANDS:
  os        - glob/match-files: item-spec file enumeration
  manifest  - inspect xplat.yaml manifests and resolve their file sets
  task      - run Taskfile tasks (embedded Task runner)`,
	}

	cmd.SetVersion(Version)

	rootCmd.AddCommand(cmd.VersionCmd)
	rootCmd.AddCommand(cmd.OsCmd)
	rootCmd.AddCommand(cmd.ManifestCmd)
	rootCmd.AddCommand(cmd.TaskCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
