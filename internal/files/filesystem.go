package files

import (
	"context"
	"fmt"

	"github.com/jamesprial/zeabur-mcp/internal/graphql"
	"github.com/jamesprial/zeabur-mcp/internal/schema"
	"github.com/jamesprial/zeabur-mcp/internal/session"
)

const (
	listUploadFilesQuery = `query ListUploadIdFiles($uploadID: ObjectID!, $path: String) {
  files(uploadID: $uploadID, path: $path)
}`
	readUploadFileQuery = `query ReadUploadIdFile($uploadID: ObjectID!, $path: String) {
  fileContent(uploadID: $uploadID, path: $path)
}`
	listGitHubFilesQuery = `query ListGitHubFiles($repoID: Int!, $ref: String, $path: String) {
  files(gitRef: { repoID: $repoID, ref: $ref }, path: $path)
}`
	readGitHubFileQuery = `query ReadGitHubFile($repoID: Int!, $ref: String, $path: String) {
  fileContent(gitRef: { repoID: $repoID, ref: $ref }, path: $path)
}`
)

// UploadFilesystem browses an uploaded source archive.
type UploadFilesystem struct {
	client   graphql.Client
	uploadID string
}

// GitHubFilesystem browses a GitHub repository at a ref.
type GitHubFilesystem struct {
	client graphql.Client
	repoID int
	ref    *string
}

var (
	_ session.Filesystem = (*UploadFilesystem)(nil)
	_ session.Filesystem = (*GitHubFilesystem)(nil)
)

// NewFilesystem returns the backend described by src.
func NewFilesystem(client graphql.Client, src Source) (session.Filesystem, error) {
	switch src.Type {
	case SourceGitHub:
		if src.GitHub == nil {
			return nil, schema.Invalid("github", "is required when type is GITHUB")
		}
		return &GitHubFilesystem{client: client, repoID: src.GitHub.RepoID, ref: src.GitHub.Ref}, nil
	case SourceUploadID:
		if src.UploadID == "" {
			return nil, schema.Invalid("upload_id", "is required when type is UPLOAD_ID")
		}
		return &UploadFilesystem{client: client, uploadID: src.UploadID}, nil
	default:
		return nil, schema.Invalid("type", fmt.Sprintf("invalid filesystem type %q", src.Type))
	}
}

func (f *UploadFilesystem) List(ctx context.Context, path string, limit, offset int) ([]string, error) {
	return list(ctx, f.client, listUploadFilesQuery, map[string]any{
		"uploadID": f.uploadID,
		"path":     path,
	}, limit, offset)
}

func (f *UploadFilesystem) Read(ctx context.Context, path string) (string, error) {
	return read(ctx, f.client, readUploadFileQuery, map[string]any{
		"uploadID": f.uploadID,
		"path":     path,
	})
}

func (f *GitHubFilesystem) List(ctx context.Context, path string, limit, offset int) ([]string, error) {
	return list(ctx, f.client, listGitHubFilesQuery, f.vars(path), limit, offset)
}

func (f *GitHubFilesystem) Read(ctx context.Context, path string) (string, error) {
	return read(ctx, f.client, readGitHubFileQuery, f.vars(path))
}

func (f *GitHubFilesystem) vars(path string) map[string]any {
	var ref any
	if f.ref != nil {
		ref = *f.ref
	}
	return map[string]any{"repoID": f.repoID, "ref": ref, "path": path}
}

// list fetches every entry under path and pages it locally; the API has no
// paging arguments.
func list(ctx context.Context, c graphql.Client, query string, vars map[string]any, limit, offset int) ([]string, error) {
	var resp struct {
		Files []string `json:"files"`
	}
	if err := graphql.Decode(ctx, c, query, vars, &resp); err != nil {
		return nil, fmt.Errorf("files list: %w", err)
	}
	return page(resp.Files, limit, offset), nil
}

func read(ctx context.Context, c graphql.Client, query string, vars map[string]any) (string, error) {
	var resp struct {
		FileContent string `json:"fileContent"`
	}
	if err := graphql.Decode(ctx, c, query, vars, &resp); err != nil {
		return "", fmt.Errorf("files read: %w", err)
	}
	return resp.FileContent, nil
}

func page(names []string, limit, offset int) []string {
	offset = min(max(offset, 0), len(names))
	end := len(names)
	if limit > 0 {
		end = min(offset+limit, end)
	}
	out := make([]string, end-offset)
	copy(out, names[offset:end])
	return out
}
