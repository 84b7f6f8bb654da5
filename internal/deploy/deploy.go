package deploy

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jamesprial/zeabur-mcp/internal/files"
	"github.com/jamesprial/zeabur-mcp/internal/graphql"
	"github.com/jamesprial/zeabur-mcp/internal/schema"
	"github.com/jamesprial/zeabur-mcp/internal/session"
)

const deployFromSpecificationMutation = `mutation DeployFromSpecification($serviceId: ObjectID!, $specification: DeploymentSpecification!) {
  deployFromSpecification(serviceID: $serviceId, specification: $specification) {
    deploymentID
  }
}`

// Response wraps the data member of the API response.
type Response struct {
	Data json.RawMessage `json:"data"`
}

// Deploy builds the specification for in and submits it for the service.
// Dockerfile paths are read through the filesystem selected in s.
func Deploy(ctx context.Context, s *session.Session, in Input) (*Response, error) {
	if err := schema.Validate(&in); err != nil {
		return nil, err
	}
	spec, err := BuildSpecification(ctx, s.Filesystem(), in)
	if err != nil {
		return nil, err
	}
	data, err := graphql.Run(ctx, s.Client(), deployFromSpecificationMutation, map[string]any{
		"serviceId":     in.ServiceID,
		"specification": spec,
	})
	if err != nil {
		return nil, fmt.Errorf("deploy from specification: %w", err)
	}
	return &Response{Data: data}, nil
}

// BuildSpecification turns validated input into a Specification. fs is only
// consulted when the Dockerfile is given by path; a nil fs is then a
// validation error.
func BuildSpecification(ctx context.Context, fs session.Filesystem, in Input) (*Specification, error) {
	spec := &Specification{Env: make([]SpecEnv, 0, len(in.Env))}
	for _, e := range in.Env {
		spec.Env = append(spec.Env, SpecEnv{Key: e.Key, Default: e.Value, Expose: e.Expose})
	}

	switch in.Source.Type {
	case DockerImage:
		spec.Source = SpecSource{Image: in.Source.DockerImage}
		return spec, nil
	case BuildFromSource:
	default:
		return nil, schema.Invalid("source.type", fmt.Sprintf("invalid source type %q", in.Source.Type))
	}

	build := in.Source.BuildFromSource
	if build == nil {
		return nil, schema.Invalid("source.build_from_source", "is required when type is BUILD_FROM_SOURCE")
	}
	dockerfile, err := dockerfileContent(ctx, fs, build.Dockerfile)
	if err != nil {
		return nil, err
	}

	src := build.Source
	switch src.Type {
	case files.SourceGitHub:
		if src.GitHub == nil {
			return nil, schema.Invalid("source.build_from_source.source.github", "is required when type is GITHUB")
		}
		spec.Source = SpecSource{
			Source:     files.SourceGitHub,
			RepoID:     src.GitHub.RepoID,
			Branch:     deref(src.GitHub.Ref),
			Dockerfile: dockerfile,
		}
	case files.SourceUploadID:
		spec.Source = SpecSource{
			Source:     files.SourceUploadID,
			UploadID:   src.UploadID,
			Dockerfile: dockerfile,
		}
	default:
		return nil, schema.Invalid("source.build_from_source.source.type", fmt.Sprintf("invalid source type %q", src.Type))
	}
	return spec, nil
}

func dockerfileContent(ctx context.Context, fs session.Filesystem, d Dockerfile) (string, error) {
	if c := d.content(); c != "" {
		return c, nil
	}
	path := d.path()
	if path == "" {
		return "", schema.Invalid("source.build_from_source.dockerfile", "no Dockerfile provided, specify either content or path")
	}
	if fs == nil {
		return "", schema.Invalid("source.build_from_source.dockerfile.path", files.ErrNoFilesystem.Error())
	}
	content, err := fs.Read(ctx, path)
	if err != nil {
		return "", fmt.Errorf("deploy read dockerfile %s: %w", path, err)
	}
	return content, nil
}
