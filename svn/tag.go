package svn

import (
	"fmt"

	"bm_tag_tool/config"
	"bm_tag_tool/log"
)

// CopyResult records the outcome of one folder copy attempt
type CopyResult struct {
	Folder      config.FolderSpec
	Destination string
	Output      string
	Err         error
}

// CreateTag creates the tag folder as a single commit. This runs exactly once
// per tagging run, before any folder is copied.
func CreateTag(backend Backend, tagURL string) error {
	message := fmt.Sprintf("Creating BM-tag at %s", tagURL)
	if _, err := backend.Mkdir(tagURL, message); err != nil {
		return err
	}

	log.PrintSuccess(fmt.Sprintf("Created BM-tag folder %s", tagURL))
	return nil
}

// CopyFolders copies each configured folder into the tag, one commit per
// folder, in configuration order. Each attempt is recorded in the operation
// log before the copy runs. A failed copy is reported and the loop continues
// with the remaining folders; the per-folder outcomes are returned so callers
// can inspect them.
func CopyFolders(backend Backend, cfg *config.ReleaseConfig, opLog *log.OpLog) []CopyResult {
	results := make([]CopyResult, 0, len(cfg.Folders))

	for _, folder := range cfg.Folders {
		source := cfg.SourceURL(folder)
		destination := cfg.DestinationURL(folder)

		if err := opLog.Record(folder.DisplayName(), destination); err != nil {
			log.PrintErrorNoExit(log.ErrOpLogWriteFailed, fmt.Sprintf("Error logging copy of %s", folder.Name), err)
		}

		message := fmt.Sprintf("Copying BM %q from revision %q to Tag %q.", folder.Name, folder.Revision, cfg.TagName)
		output, err := backend.Copy(source, folder.Revision, destination, message)
		if err != nil {
			log.PrintErrorNoExit(log.ErrSvnCopyFailed, fmt.Sprintf("Failed to copy %s@%s to %s", source, folder.Revision, destination), err)
		} else {
			log.PrintSuccess(fmt.Sprintf("Copied %s@%s to %s", source, folder.Revision, destination))
			if output != "" {
				log.PrintInfo(output)
			}
		}

		results = append(results, CopyResult{
			Folder:      folder,
			Destination: destination,
			Output:      output,
			Err:         err,
		})
	}

	return results
}
