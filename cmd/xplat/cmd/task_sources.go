package cmd

import (
	"fmt"

	"github.com/opsplat/xplat/internal/config"
	"github.com/opsplat/xplat/internal/taskfile"
	"github.com/spf13/cobra"
)

var (
	taskSourcesFile string
	taskSourcesDir  string
)

// taskSourcesCmd resolves a single task's declared sources/excludes fields
// through internal/globmatch, without invoking the task itself. Useful for
// checking what a task's up-to-date check would actually see.
var taskSourcesCmd = &cobra.Command{
	Use:   "sources <task>",
	Short: "Resolve a task's sources/excludes file list",
	Long: `Parse a Taskfile and print the files matched by the named task's
sources field, after applying its excludes field, one per line.

Example:
  xplat task sources build
  xplat task sources build -t taskfiles/Taskfile.dummy.yml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file := taskSourcesFile
		if file == "" {
			file = config.DefaultTaskfile
		}

		tf, err := taskfile.Parse(file)
		if err != nil {
			return err
		}

		t, ok := tf.GetTask(args[0])
		if !ok {
			return fmt.Errorf("task %q not found in %s", args[0], file)
		}

		dir := taskSourcesDir
		if dir == "" {
			dir = "."
		}

		files, err := t.ResolveSources(dir)
		if err != nil {
			return err
		}
		for _, f := range files {
			fmt.Println(f)
		}
		return nil
	},
}

func init() {
	taskSourcesCmd.Flags().StringVarP(&taskSourcesFile, "taskfile", "t", "", "Taskfile to read (default: Taskfile.yml)")
	taskSourcesCmd.Flags().StringVarP(&taskSourcesDir, "dir", "d", "", "directory to resolve sources against (default: current directory)")
	TaskCmd.AddCommand(taskSourcesCmd)
}
