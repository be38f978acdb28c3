package log

import (
	"fmt"
	"strings"
)

// Error codes for all application errors
const (
	// Registry and configuration errors (1xx)
	ErrRegistryReadFailed  = "E101" // Error reading the release-line registry
	ErrRegistryEmpty       = "E102" // No release lines defined in the registry
	ErrReleaseParseFailed  = "E103" // Error parsing a release configuration XML
	ErrReleaseFieldMissing = "E104" // Required element or attribute missing in the XML
	ErrReleaseFileNotFound = "E105" // Release configuration file not found on disk

	// SVN operation errors (2xx)
	ErrSvnMkdirFailed = "E201" // Failed to create the tag folder in SVN
	ErrSvnCopyFailed  = "E202" // Failed to copy a folder into the tag
	ErrSvnNotFound    = "E203" // The svn binary could not be invoked

	// Operation log errors (3xx)
	ErrOpLogWriteFailed = "E301" // Failed to append to the BM_log file

	// General errors (9xx)
	ErrInvalidArgument = "E901" // Invalid argument passed
	ErrOperationFailed = "E999" // Generic operation failed
)

// FormatError formats an error with a consistent structure including the error code
func FormatError(code string, description string, err error) string {
	if err != nil {
		return fmt.Sprintf("[%s] %s: %v", code, description, err)
	}
	return fmt.Sprintf("[%s] %s", code, description)
}

// GetErrorCode extracts the error code from a formatted error message
func GetErrorCode(errorMsg string) string {
	if strings.HasPrefix(errorMsg, "[E") && len(errorMsg) >= 6 {
		return errorMsg[1:5]
	}
	return ""
}
