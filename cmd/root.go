package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Global flags used across multiple commands
var (
	registryFile string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bm_tag_tool",
	Short: "Create SVN release tags from BM line configurations",
	Long:  `A CLI tool that creates a tag folder in an SVN repository and copies configured BM folders, pinned at their revisions, into it based on XML release configurations.`,
}

// Initialize adds all child commands to the root command
func Initialize() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&registryFile, "config", "c", "input_xml_files/bm_lines.yml", "Path to the release-line registry file")

	initTagCmd()
	initListCmd()

	rootCmd.AddCommand(tagCmd)
	rootCmd.AddCommand(listCmd)
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
