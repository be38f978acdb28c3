package cmd

import (
	"errors"
	"fmt"
	"os"

	"bm_tag_tool/config"
	"bm_tag_tool/log"
	"bm_tag_tool/svn"

	"github.com/spf13/cobra"
)

// tagCmd represents the tag command
var tagCmd = &cobra.Command{
	Use:   "tag",
	Short: "Create an SVN tag and copy the configured BM folders into it",
	Long: `Create a new tag folder in the SVN repository and copy each BM folder of the
selected release line, pinned at its configured revision, into that tag.

The release line is chosen from an interactive menu, or non-interactively with
the --line flag. Each successful copy is recorded in the BM_log file next to
the release configurations. A failed copy is reported but does not stop the
remaining copies.

Example:
  bm_tag_tool tag
  bm_tag_tool tag --line 2`,
	Run: runTagCmd,
}

var lineNumber int

// initTagCmd initializes the tag command with its flags
func initTagCmd() {
	tagCmd.Flags().IntVarP(&lineNumber, "line", "l", 0, "Menu number of the BM line to tag (skips the interactive prompt)")
}

// runTagCmd is the main function for the tag command
func runTagCmd(cmd *cobra.Command, args []string) {
	registry, err := config.ReadRegistry(registryFile)
	if err != nil {
		log.PrintError(log.ErrRegistryReadFailed, "Error reading registry", err)
	}
	if len(registry.Lines) == 0 {
		log.PrintError(log.ErrRegistryEmpty, "No release lines defined in the registry", nil)
	}

	var line config.ReleaseLine
	if lineNumber > 0 {
		// Non-interactive selection: an invalid number is a usage error,
		// there is nobody to re-prompt
		var ok bool
		line, ok = registry.Lookup(lineNumber)
		if !ok {
			log.PrintError(log.ErrInvalidArgument, fmt.Sprintf("No BM line with number %d, the registry has %d entries", lineNumber, len(registry.Lines)), nil)
		}
	} else {
		line, err = selectReleaseLine(registry, os.Stdin, os.Stdout)
		if err != nil {
			log.PrintError(log.ErrInvalidArgument, "Error reading selection", err)
		}
	}

	releaseCfg, err := config.ReadReleaseConfig(registry.FilePath(line))
	if err != nil {
		var missing *config.MissingFieldError
		if errors.As(err, &missing) {
			log.PrintError(log.ErrReleaseFieldMissing, fmt.Sprintf("Incomplete release configuration %s", line.File), err)
		} else {
			log.PrintError(log.ErrReleaseParseFailed, fmt.Sprintf("Error parsing release configuration %s", line.File), err)
		}
	}

	if len(releaseCfg.Folders) == 0 {
		log.PrintWarning(fmt.Sprintf("No folders configured for %s, only the tag folder will be created", line.DisplayName()))
	}

	log.PrintOperation(fmt.Sprintf("Creating BM tag %s for %s", releaseCfg.TagName, line.DisplayName()))

	opLog := log.NewOpLog(registry.LogPath())
	results, err := executeTagging(svn.NewCLI(), releaseCfg, opLog)
	if err != nil {
		log.PrintError(log.ErrSvnMkdirFailed, fmt.Sprintf("Error creating tag %s", releaseCfg.TagURL()), err)
	}

	failed := 0
	for _, result := range results {
		if result.Err != nil {
			failed++
		}
	}
	if failed > 0 {
		log.PrintWarning(fmt.Sprintf("%d of %d folder copies failed, see messages above", failed, len(results)))
	}
}

// executeTagging runs the tagging workflow for a parsed release configuration:
// one tag-folder commit, then one copy commit per folder. Copy failures do not
// abort the run; the per-folder outcomes are returned.
func executeTagging(backend svn.Backend, releaseCfg *config.ReleaseConfig, opLog *log.OpLog) ([]svn.CopyResult, error) {
	tagURL := releaseCfg.TagURL()
	if err := svn.CreateTag(backend, tagURL); err != nil {
		return nil, err
	}

	results := svn.CopyFolders(backend, releaseCfg, opLog)

	// Blank line separating this run's block in the log from future runs
	if err := opLog.EndSession(); err != nil {
		log.PrintErrorNoExit(log.ErrOpLogWriteFailed, "Error finalizing operation log", err)
	}

	log.PrintSuccess(fmt.Sprintf("BM tag creation successful: %s", tagURL))
	return results, nil
}
