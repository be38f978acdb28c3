package config

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
)

// FolderSpec names one folder to copy into the tag, pinned at a revision
type FolderSpec struct {
	Name     string
	Revision string
}

// DisplayName derives the name used in the operation log: the folder name is
// split at its first two underscores, and if that yields exactly three
// segments only the third one is used. The copy itself always uses the full name.
func (f FolderSpec) DisplayName() string {
	parts := strings.SplitN(f.Name, "_", 3)
	if len(parts) == 3 {
		return parts[2]
	}
	return f.Name
}

// ReleaseConfig is the parsed release configuration for one tagging run.
// It is immutable after parsing.
type ReleaseConfig struct {
	TagName    string       // Name of the tag folder to create
	TagBase    string       // SVN path under which tags live
	SourceBase string       // SVN path the folders are copied from
	Folders    []FolderSpec // Folders to copy, in document order
}

// TagURL returns the fully-qualified URL of the tag folder
func (c *ReleaseConfig) TagURL() string {
	return joinURL(c.TagBase, c.TagName)
}

// SourceURL returns the fully-qualified source URL of a folder (without revision)
func (c *ReleaseConfig) SourceURL(f FolderSpec) string {
	return joinURL(c.SourceBase, f.Name)
}

// DestinationURL returns the fully-qualified URL of a folder inside the tag
func (c *ReleaseConfig) DestinationURL(f FolderSpec) string {
	return joinURL(c.TagURL(), f.Name)
}

// joinURL joins an SVN base URL and a path segment with a single slash
func joinURL(base, segment string) string {
	return strings.TrimRight(base, "/") + "/" + segment
}

// MissingFieldError reports a required element or attribute absent from the XML
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("required field %q is missing or empty", e.Field)
}

// ReadReleaseConfig parses a release configuration XML file.
//
// The document carries a root_tag child with a name attribute, a root_svn_path
// child whose text is the base path for tags, a root_source child with an
// svn_path attribute, and folder elements (name and revision attributes)
// located anywhere under a BM grouping element.
func ReadReleaseConfig(path string) (*ReleaseConfig, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, fmt.Errorf("failed to parse release configuration: %v", err)
	}

	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("failed to parse release configuration: document has no root element")
	}

	tagName, err := requiredAttr(root, "root_tag", "name")
	if err != nil {
		return nil, err
	}

	tagBase, err := requiredText(root, "root_svn_path")
	if err != nil {
		return nil, err
	}

	sourceBase, err := requiredAttr(root, "root_source", "svn_path")
	if err != nil {
		return nil, err
	}

	var folders []FolderSpec
	for _, el := range root.FindElements(".//BM/folder") {
		name := el.SelectAttrValue("name", "")
		if name == "" {
			return nil, &MissingFieldError{Field: "folder/@name"}
		}
		revision := el.SelectAttrValue("revision", "")
		if revision == "" {
			return nil, &MissingFieldError{Field: "folder/@revision"}
		}
		folders = append(folders, FolderSpec{Name: name, Revision: revision})
	}

	return &ReleaseConfig{
		TagName:    tagName,
		TagBase:    tagBase,
		SourceBase: sourceBase,
		Folders:    folders,
	}, nil
}

// requiredAttr extracts an attribute from a direct child element of root
func requiredAttr(root *etree.Element, child, attr string) (string, error) {
	el := root.SelectElement(child)
	if el == nil {
		return "", &MissingFieldError{Field: child}
	}
	value := el.SelectAttrValue(attr, "")
	if value == "" {
		return "", &MissingFieldError{Field: child + "/@" + attr}
	}
	return value, nil
}

// requiredText extracts the text content of a direct child element of root
func requiredText(root *etree.Element, child string) (string, error) {
	el := root.SelectElement(child)
	if el == nil {
		return "", &MissingFieldError{Field: child}
	}
	value := strings.TrimSpace(el.Text())
	if value == "" {
		return "", &MissingFieldError{Field: child}
	}
	return value, nil
}
