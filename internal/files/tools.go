package files

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jamesprial/zeabur-mcp/internal/session"
	"github.com/jamesprial/zeabur-mcp/internal/tools"
)

const (
	toolNameDecideFilesystem = "decide_filesystem"
	toolNameListFiles        = "list_files"
	toolNameReadFile         = "read_file"
)

// Tools returns the filesystem tool registrations. Each call acts on the
// session of the calling MCP client.
func Tools(sessions *session.Registry, deps tools.Deps) []tools.Registration {
	return []tools.Registration{
		toolDecideFilesystem(sessions, deps),
		toolListFiles(sessions, deps),
		toolReadFile(sessions, deps),
	}
}

func toolDecideFilesystem(sessions *session.Registry, deps tools.Deps) tools.Registration {
	tool := mcp.NewTool(toolNameDecideFilesystem,
		mcp.WithDescription("Select the filesystem that list_files, read_file and Dockerfile paths read from: a GitHub repository or an uploaded archive."),
		mcp.WithString("type",
			mcp.Required(),
			mcp.Description("Filesystem backend."),
			mcp.Enum(string(SourceGitHub), string(SourceUploadID)),
		),
		mcp.WithObject("github",
			mcp.Description("Repository reference, required when type is GITHUB."),
			mcp.Properties(map[string]any{
				"repo_id": map[string]any{"type": "number", "description": "GitHub repository ID."},
				"ref":     map[string]any{"type": "string", "description": "Branch, tag or commit. Defaults to the default branch."},
			}),
		),
		mcp.WithString("upload_id",
			mcp.Description("Upload ID, required when type is UPLOAD_ID."),
		),
	)

	handler := tools.Handler(toolNameDecideFilesystem, deps, func(ctx context.Context, in *Source) (any, error) {
		return Select(sessions.FromContext(ctx), *in)
	})

	return tools.Registration{Tool: tool, Handler: handler}
}

func toolListFiles(sessions *session.Registry, deps tools.Deps) tools.Registration {
	tool := mcp.NewTool(toolNameListFiles,
		mcp.WithDescription("List the entries of a directory in the selected filesystem."),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Directory path, relative to the source root."),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of entries to return."),
			mcp.DefaultNumber(MaxListLimit),
			mcp.Max(MaxListLimit),
		),
		mcp.WithNumber("offset",
			mcp.Description("Number of entries to skip."),
			mcp.DefaultNumber(0),
		),
	)

	handler := tools.Handler(toolNameListFiles, deps, func(ctx context.Context, in *ListInput) (any, error) {
		return List(ctx, sessions.FromContext(ctx), *in)
	})

	return tools.Registration{Tool: tool, Handler: handler}
}

func toolReadFile(sessions *session.Registry, deps tools.Deps) tools.Registration {
	tool := mcp.NewTool(toolNameReadFile,
		mcp.WithDescription("Read a window of a file in the selected filesystem. Use metadata.nextOffset to continue."),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("File path, relative to the source root."),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of characters to return. 0 reads to the end."),
			mcp.DefaultNumber(DefaultReadLimit),
			mcp.Max(MaxReadLimit),
		),
		mcp.WithNumber("offset",
			mcp.Description("Character offset to start from."),
			mcp.DefaultNumber(0),
		),
	)

	handler := tools.Handler(toolNameReadFile, deps, func(ctx context.Context, in *ReadInput) (any, error) {
		return Read(ctx, sessions.FromContext(ctx), *in)
	})

	return tools.Registration{Tool: tool, Handler: handler}
}
