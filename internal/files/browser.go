package files

import (
	"context"

	"github.com/jamesprial/zeabur-mcp/internal/schema"
	"github.com/jamesprial/zeabur-mcp/internal/session"
)

// Select validates src and makes it the filesystem of s, replacing any
// earlier selection.
func Select(s *session.Session, src Source) (*Selection, error) {
	if err := schema.Validate(&src); err != nil {
		return nil, err
	}
	fs, err := NewFilesystem(s.Client(), src)
	if err != nil {
		return nil, err
	}
	s.SetFilesystem(fs)
	return &Selection{Picked: src.Type}, nil
}

// List lists the entries under in.Path in the selected filesystem.
func List(ctx context.Context, s *session.Session, in ListInput) ([]string, error) {
	fs := s.Filesystem()
	if fs == nil {
		return nil, ErrNoFilesystem
	}
	names, err := fs.List(ctx, in.Path, in.Limit, in.Offset)
	if err != nil {
		return nil, err
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

// Read returns a window of the file at in.Path. Positions count runes, and an
// offset past the end yields an empty window.
func Read(ctx context.Context, s *session.Session, in ReadInput) (*ReadResult, error) {
	fs := s.Filesystem()
	if fs == nil {
		return nil, ErrNoFilesystem
	}
	full, err := fs.Read(ctx, in.Path)
	if err != nil {
		return nil, err
	}
	return window(full, in.Limit, in.Offset), nil
}

func window(full string, limit, offset int) *ReadResult {
	runes := []rune(full)
	total := len(runes)
	start := min(max(offset, 0), total)

	if limit == 0 {
		content := string(runes[start:])
		return &ReadResult{
			Content: content,
			Metadata: ReadMetadata{
				TotalLength:    total,
				StartPosition:  offset,
				EndPosition:    total,
				ReturnedLength: total - start,
				unbounded:      true,
			},
		}
	}

	end := min(start+limit, total)
	md := ReadMetadata{
		TotalLength:    total,
		StartPosition:  offset,
		EndPosition:    end,
		HasMore:        end < total,
		ReturnedLength: end - start,
	}
	if md.HasMore {
		md.NextOffset = &end
	}
	return &ReadResult{Content: string(runes[start:end]), Metadata: md}
}
