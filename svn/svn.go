package svn

import (
	"fmt"
	"os/exec"
	"strings"
)

// Backend is the narrow surface of the version-control system the tool needs.
// Implementations perform one commit per call.
type Backend interface {
	// Mkdir creates a folder in the repository and returns the backend's output
	Mkdir(url string, message string) (string, error)
	// Copy copies a folder pinned at a revision to a new destination
	Copy(source string, revision string, destination string, message string) (string, error)
}

// CLI invokes the svn command-line client as an external process.
// Calls block until the process exits; there is no timeout.
type CLI struct {
	Binary string
}

// NewCLI returns a CLI using the svn binary found on PATH
func NewCLI() *CLI {
	return &CLI{Binary: "svn"}
}

// Mkdir runs `svn mkdir <url> -m <message>`
func (c *CLI) Mkdir(url string, message string) (string, error) {
	return c.run("mkdir", url, "-m", message)
}

// Copy runs `svn cp <source>@<revision> <destination> -m <message>`
func (c *CLI) Copy(source string, revision string, destination string, message string) (string, error) {
	return c.run("cp", source+"@"+revision, destination, "-m", message)
}

// run executes the svn binary and returns its stdout. On a non-zero exit the
// returned error carries the diagnostic text from the backend's stderr.
func (c *CLI) run(args ...string) (string, error) {
	cmd := exec.Command(c.Binary, args...)
	out, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return "", fmt.Errorf("svn %s failed: %s", args[0], strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", fmt.Errorf("failed to invoke %s: %v", c.Binary, err)
	}
	return strings.TrimSpace(string(out)), nil
}
