package log

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// OpLog appends one line per copied folder to the shared BM_log file.
// The file is append-only and is never read back by the tool; blocks
// from different runs are separated by a blank line.
type OpLog struct {
	fs   afero.Fs
	path string
}

// NewOpLog creates an OpLog writing to the given path on the real filesystem
func NewOpLog(path string) *OpLog {
	return NewOpLogFs(afero.NewOsFs(), path)
}

// NewOpLogFs creates an OpLog on an explicit filesystem, used by tests
func NewOpLogFs(fs afero.Fs, path string) *OpLog {
	return &OpLog{fs: fs, path: path}
}

// Path returns the log file path
func (l *OpLog) Path() string {
	return l.path
}

// Record appends one log line for a copied folder
func (l *OpLog) Record(displayName string, destinationURL string) error {
	return l.append(fmt.Sprintf("%s : %s\n", displayName, destinationURL))
}

// EndSession appends the blank line that separates this run's block from the next
func (l *OpLog) EndSession() error {
	return l.append("\n")
}

// append opens the log file in append mode, writes the entry and closes it again
func (l *OpLog) append(entry string) error {
	dir := filepath.Dir(l.path)
	if err := l.fs.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %v", err)
	}

	file, err := l.fs.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %v", err)
	}
	defer file.Close()

	if _, err := file.WriteString(entry); err != nil {
		return fmt.Errorf("failed to write log entry: %v", err)
	}

	return nil
}
