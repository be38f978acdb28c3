package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"bm_tag_tool/config"
	"bm_tag_tool/log"
)

// selectReleaseLine presents the numbered menu and reads selections from in
// until a valid release line whose XML file exists on disk is chosen. Every
// invalid selection re-prompts: non-integer input, numbers outside the menu,
// and entries whose file is missing.
func selectReleaseLine(registry *config.Registry, in io.Reader, out io.Writer) (config.ReleaseLine, error) {
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprintln(out, "Select a BM line:")
		for i, line := range registry.Lines {
			fmt.Fprintf(out, "%d. %s\n", i+1, line.DisplayName())
		}
		fmt.Fprint(out, "\nEnter your choice: ")

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return config.ReleaseLine{}, fmt.Errorf("failed to read selection: %v", err)
			}
			return config.ReleaseLine{}, fmt.Errorf("input ended before a valid selection was made")
		}

		key, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err != nil {
			log.PrintErrorNoExit(log.ErrInvalidArgument, fmt.Sprintf("Invalid input: please enter a number between 1 and %d", len(registry.Lines)), nil)
			continue
		}

		line, ok := registry.Lookup(key)
		if !ok {
			log.PrintErrorNoExit(log.ErrInvalidArgument, fmt.Sprintf("Invalid choice: please enter a number between 1 and %d", len(registry.Lines)), nil)
			continue
		}

		filePath := registry.FilePath(line)
		if _, err := os.Stat(filePath); os.IsNotExist(err) {
			log.PrintErrorNoExit(log.ErrReleaseFileNotFound, fmt.Sprintf("The file '%s' was not found, please check if the file exists", filePath), nil)
			continue
		}

		fmt.Fprintf(out, "Selected release configuration:\n%s\n\n", filePath)
		return line, nil
	}
}
