package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/opsplat/xplat/internal/manifest"
	"github.com/spf13/cobra"
)

var (
	manifestDir string
)

// ManifestCmd is the parent command for manifest operations.
var ManifestCmd = &cobra.Command{
	Use:   "manifest",
	Short: "Work with xplat.yaml manifests",
	Long:  `Load, validate, and resolve the file sets declared by xplat.yaml package manifests.`,
}

var manifestValidateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate an xplat.yaml manifest",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runManifestValidate,
}

var manifestShowCmd = &cobra.Command{
	Use:   "show [path]",
	Short: "Show manifest details",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runManifestShow,
}

var manifestFilesCmd = &cobra.Command{
	Use:   "files [path]",
	Short: "Resolve and print the manifest's declared file set",
	Long: `Resolve the include/exclude filespecs under a manifest's files
section against the manifest's directory and print the matching files,
one per line.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runManifestFiles,
}

var manifestDiscoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Discover xplat.yaml manifests under --dir",
	RunE:  runManifestDiscover,
}

func init() {
	ManifestCmd.PersistentFlags().StringVarP(&manifestDir, "dir", "d", ".", "directory to search for manifests")

	ManifestCmd.AddCommand(manifestValidateCmd)
	ManifestCmd.AddCommand(manifestShowCmd)
	ManifestCmd.AddCommand(manifestFilesCmd)
	ManifestCmd.AddCommand(manifestDiscoverCmd)
}

func loadManifestFromArg(path string) (*manifest.Manifest, string, error) {
	if path == "" {
		path = "."
	}

	loader := manifest.NewLoader()

	info, err := os.Stat(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to stat path: %w", err)
	}

	if info.IsDir() {
		m, err := loader.LoadDir(path)
		return m, path, err
	}

	m, err := loader.LoadFile(path)
	return m, filepath.Dir(path), err
}

func runManifestValidate(cmd *cobra.Command, args []string) error {
	path := ""
	if len(args) > 0 {
		path = args[0]
	}

	m, _, err := loadManifestFromArg(path)
	if err != nil {
		return err
	}

	fmt.Printf("valid manifest: %s v%s\n", m.Name, m.Version)
	return nil
}

func runManifestShow(cmd *cobra.Command, args []string) error {
	path := ""
	if len(args) > 0 {
		path = args[0]
	}

	m, _, err := loadManifestFromArg(path)
	if err != nil {
		return err
	}

	fmt.Printf("Name:        %s\n", m.Name)
	fmt.Printf("Version:     %s\n", m.Version)
	fmt.Printf("Description: %s\n", m.Description)
	fmt.Printf("Author:      %s\n", m.Author)
	fmt.Printf("License:     %s\n", m.License)

	if m.Taskfile != nil {
		fmt.Printf("\nTaskfile:\n")
		fmt.Printf("  Path: %s\n", m.Taskfile.Path)
		fmt.Printf("  Namespace: %s\n", m.Taskfile.Namespace)
	}

	if m.HasFiles() {
		fmt.Printf("\nFiles:\n")
		fmt.Printf("  Include: %v\n", m.Files.Include)
		if len(m.Files.Exclude) > 0 {
			fmt.Printf("  Exclude: %v\n", m.Files.Exclude)
		}
	}

	if m.HasGitignore() {
		fmt.Printf("\nGitignore patterns: %v\n", m.Gitignore.Patterns)
	}

	return nil
}

func runManifestFiles(cmd *cobra.Command, args []string) error {
	path := ""
	if len(args) > 0 {
		path = args[0]
	}

	m, dir, err := loadManifestFromArg(path)
	if err != nil {
		return err
	}

	files, err := m.ResolveFiles(dir)
	if err != nil {
		return err
	}

	for _, f := range files {
		fmt.Println(f)
	}
	return nil
}

func runManifestDiscover(cmd *cobra.Command, args []string) error {
	loader := manifest.NewLoader()
	manifests, err := loader.Discover(manifestDir)
	if err != nil {
		return err
	}

	for _, m := range manifests {
		fmt.Printf("%s v%s\n", m.Name, m.Version)
	}
	return nil
}
