// Package deploy builds deployment specifications and submits them with
// deploy_from_specification.
package deploy

import (
	"github.com/jamesprial/zeabur-mcp/internal/files"
	"github.com/jamesprial/zeabur-mcp/internal/schema"
)

// SourceKind selects how a deployment obtains its image.
type SourceKind string

const (
	BuildFromSource SourceKind = "BUILD_FROM_SOURCE"
	DockerImage     SourceKind = "DOCKER_IMAGE"
)

// Dockerfile is given either inline or as a path in the selected filesystem.
// Empty strings count as unset.
type Dockerfile struct {
	Content *string `json:"content,omitempty"`
	Path    *string `json:"path,omitempty"`
}

func (d Dockerfile) content() string { return deref(d.Content) }
func (d Dockerfile) path() string    { return deref(d.Path) }

// Build describes a build from a repository or an uploaded archive.
type Build struct {
	Source     files.Source `json:"source" validate:"required"`
	Dockerfile Dockerfile   `json:"dockerfile"`
}

// Source is the tagged image source of a deployment.
type Source struct {
	Type            SourceKind `json:"type" validate:"required,oneof=BUILD_FROM_SOURCE DOCKER_IMAGE"`
	BuildFromSource *Build     `json:"build_from_source,omitempty" validate:"required_if=Type BUILD_FROM_SOURCE,omitempty"`
	DockerImage     string     `json:"docker_image,omitempty" validate:"required_if=Type DOCKER_IMAGE"`
}

// EnvVar is an environment variable declared by the deployment.
type EnvVar struct {
	Key    string `json:"key" validate:"required"`
	Value  string `json:"value"`
	Expose bool   `json:"expose"`
}

// Input is the input of deploy_from_specification.
type Input struct {
	ServiceID string   `json:"service_id" validate:"required"`
	Source    Source   `json:"source" validate:"required"`
	Env       []EnvVar `json:"env" validate:"dive"`
}

// Check enforces that a source build names exactly one Dockerfile origin.
func (in *Input) Check() error {
	if in.Source.Type != BuildFromSource || in.Source.BuildFromSource == nil {
		return nil
	}
	d := in.Source.BuildFromSource.Dockerfile
	switch {
	case d.content() == "" && d.path() == "":
		return schema.Invalid("source.build_from_source.dockerfile",
			"no Dockerfile provided, specify either content or path")
	case d.content() != "" && d.path() != "":
		return schema.Invalid("source.build_from_source.dockerfile",
			"specify either content or path, not both")
	}
	return nil
}

// Specification is the DeploymentSpecification sent to the API.
type Specification struct {
	Source SpecSource `json:"source"`
	Env    []SpecEnv  `json:"env"`
}

// SpecSource carries the members relevant to one source kind; the others
// are omitted.
type SpecSource struct {
	Source     files.SourceType `json:"source,omitempty"`
	RepoID     int              `json:"repoID,omitempty"`
	Branch     string           `json:"branch,omitempty"`
	UploadID   string           `json:"uploadID,omitempty"`
	Image      string           `json:"image,omitempty"`
	Dockerfile string           `json:"dockerfile,omitempty"`
}

// SpecEnv is an environment variable in API form.
type SpecEnv struct {
	Key     string `json:"key"`
	Default string `json:"default"`
	Expose  bool   `json:"expose"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
