// Package files selects the build-source filesystem of a session and reads
// from it: decide_filesystem, list_files and read_file.
package files

import (
	"encoding/json"
	"errors"
)

// SourceType tags the backend of a Source.
type SourceType string

const (
	SourceGitHub   SourceType = "GITHUB"
	SourceUploadID SourceType = "UPLOAD_ID"
)

// Paging bounds.
const (
	MaxListLimit     = 64
	MaxReadLimit     = 1024
	DefaultReadLimit = 256
)

// ErrNoFilesystem is returned by list_files and read_file before
// decide_filesystem has run in the session.
var ErrNoFilesystem = errors.New("No filesystem provided. Run 'decide_filesystem' to decide which filesystem to use.")

// GitHubSource references a repository revision. A nil Ref means the
// default branch.
type GitHubSource struct {
	RepoID int     `json:"repo_id" validate:"required"`
	Ref    *string `json:"ref,omitempty"`
}

// Source describes a build source. Exactly the member named by Type is
// consulted.
type Source struct {
	Type     SourceType    `json:"type" validate:"required,oneof=GITHUB UPLOAD_ID"`
	GitHub   *GitHubSource `json:"github,omitempty" validate:"required_if=Type GITHUB,omitempty"`
	UploadID string        `json:"upload_id,omitempty" validate:"required_if=Type UPLOAD_ID"`
}

// Selection reports the backend picked by decide_filesystem.
type Selection struct {
	Picked SourceType `json:"picked"`
}

// ListInput is the input of list_files. A zero Limit lists everything past
// Offset.
type ListInput struct {
	Path   string `json:"path"`
	Limit  int    `json:"limit" validate:"gte=0,max=64"`
	Offset int    `json:"offset" validate:"gte=0"`
}

// Defaults sets the page size.
func (in *ListInput) Defaults() {
	in.Limit = MaxListLimit
}

// ReadInput is the input of read_file. Limit and Offset count characters;
// a zero Limit reads to the end of the file.
type ReadInput struct {
	Path   string `json:"path"`
	Limit  int    `json:"limit" validate:"gte=0,max=1024"`
	Offset int    `json:"offset" validate:"gte=0"`
}

// Defaults sets the window size.
func (in *ReadInput) Defaults() {
	in.Limit = DefaultReadLimit
}

// ReadResult is one window of a file.
type ReadResult struct {
	Content  string       `json:"content"`
	Metadata ReadMetadata `json:"metadata"`
}

// ReadMetadata locates a window within the file. NextOffset is null on the
// last window and omitted entirely when the read was unbounded.
type ReadMetadata struct {
	TotalLength    int  `json:"totalLength"`
	StartPosition  int  `json:"startPosition"`
	EndPosition    int  `json:"endPosition"`
	HasMore        bool `json:"hasMore"`
	ReturnedLength int  `json:"returnedLength"`
	NextOffset     *int `json:"nextOffset"`

	unbounded bool
}

func (m ReadMetadata) MarshalJSON() ([]byte, error) {
	type fields ReadMetadata
	if m.unbounded {
		return json.Marshal(struct {
			fields
			NextOffset *int `json:"nextOffset,omitempty"`
		}{fields: fields(m)})
	}
	return json.Marshal(fields(m))
}
