package cmd

import (
	"fmt"
	"os"

	"bm_tag_tool/config"
	"bm_tag_tool/log"

	"github.com/spf13/cobra"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the BM lines available in the registry",
	Run:   runListCmd,
}

// initListCmd initializes the list command with its flags
func initListCmd() {
	// The list command already has access to the global registryFile flag
}

// runListCmd is the main function for the list command
func runListCmd(cmd *cobra.Command, args []string) {
	registry, err := config.ReadRegistry(registryFile)
	if err != nil {
		log.PrintError(log.ErrRegistryReadFailed, "Error reading registry", err)
	}

	log.PrintInfo("Configured BM lines:")
	log.PrintInfo("--------------------")
	for i, line := range registry.Lines {
		status := "✓"
		if _, err := os.Stat(registry.FilePath(line)); os.IsNotExist(err) {
			status = "✗ (file missing)"
		}
		log.PrintInfo(fmt.Sprintf("%d. %s (%s) %s", i+1, line.DisplayName(), line.File, status))
	}

	log.PrintInfo(fmt.Sprintf("\nOperation log: %s", registry.LogPath()))
}
