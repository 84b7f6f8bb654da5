package deploy

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/jamesprial/zeabur-mcp/internal/files"
	"github.com/jamesprial/zeabur-mcp/internal/graphql"
	"github.com/jamesprial/zeabur-mcp/internal/graphql/graphqltest"
	"github.com/jamesprial/zeabur-mcp/internal/schema"
	"github.com/jamesprial/zeabur-mcp/internal/session"
)

type recordingFS struct {
	content string
	reads   []string
}

func (f *recordingFS) List(context.Context, string, int, int) ([]string, error) { return nil, nil }

func (f *recordingFS) Read(_ context.Context, path string) (string, error) {
	f.reads = append(f.reads, path)
	return f.content, nil
}

func strPtr(s string) *string { return &s }

func githubBuild(d Dockerfile) Source {
	return Source{
		Type: BuildFromSource,
		BuildFromSource: &Build{
			Source:     files.Source{Type: files.SourceGitHub, GitHub: &files.GitHubSource{RepoID: 99, Ref: strPtr("release")}},
			Dockerfile: d,
		},
	}
}

func specJSON(t *testing.T, call graphqltest.Call) string {
	t.Helper()
	b, err := json.Marshal(call.Variables["specification"])
	if err != nil {
		t.Fatalf("marshal specification: %v", err)
	}
	return string(b)
}

func Test_Deploy_Specifications(t *testing.T) {
	tests := []struct {
		name      string
		in        Input
		fs        *recordingFS
		wantSpec  string
		wantReads int
	}{
		{
			name: "docker image with env",
			in: Input{
				ServiceID: "svc-1",
				Source:    Source{Type: DockerImage, DockerImage: "nginx:1.27"},
				Env:       []EnvVar{{Key: "PORT", Value: "8080", Expose: true}, {Key: "MODE", Value: "prod"}},
			},
			wantSpec: `{"source":{"image":"nginx:1.27"},"env":[{"key":"PORT","default":"8080","expose":true},{"key":"MODE","default":"prod","expose":false}]}`,
		},
		{
			name:     "github with inline dockerfile skips filesystem",
			in:       Input{ServiceID: "svc-1", Source: githubBuild(Dockerfile{Content: strPtr("FROM scratch")})},
			fs:       &recordingFS{content: "FROM alpine"},
			wantSpec: `{"source":{"source":"GITHUB","repoID":99,"branch":"release","dockerfile":"FROM scratch"},"env":[]}`,
		},
		{
			name: "upload with dockerfile path",
			in: Input{ServiceID: "svc-1", Source: Source{
				Type: BuildFromSource,
				BuildFromSource: &Build{
					Source:     files.Source{Type: files.SourceUploadID, UploadID: "up-7"},
					Dockerfile: Dockerfile{Path: strPtr("docker/Dockerfile")},
				},
			}},
			fs:        &recordingFS{content: "FROM golang:1.24"},
			wantSpec:  `{"source":{"source":"UPLOAD_ID","uploadID":"up-7","dockerfile":"FROM golang:1.24"},"env":[]}`,
			wantReads: 1,
		},
		{
			name: "github on default branch",
			in: Input{ServiceID: "svc-1", Source: Source{
				Type: BuildFromSource,
				BuildFromSource: &Build{
					Source:     files.Source{Type: files.SourceGitHub, GitHub: &files.GitHubSource{RepoID: 5}},
					Dockerfile: Dockerfile{Content: strPtr("FROM x"), Path: strPtr("")},
				},
			}},
			wantSpec: `{"source":{"source":"GITHUB","repoID":5,"dockerfile":"FROM x"},"env":[]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := graphqltest.Respond(`{"deployFromSpecification":{"deploymentID":"dep-1"}}`)
			s := session.New(client)
			if tt.fs != nil {
				s.SetFilesystem(tt.fs)
			}

			resp, err := Deploy(context.Background(), s, tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(resp.Data) != `{"deployFromSpecification":{"deploymentID":"dep-1"}}` {
				t.Errorf("data = %s", resp.Data)
			}

			call := client.LastCall()
			if !strings.Contains(call.Query, "deployFromSpecification(serviceID: $serviceId, specification: $specification)") {
				t.Errorf("query = %q", call.Query)
			}
			if call.Variables["serviceId"] != "svc-1" {
				t.Errorf("serviceId = %v", call.Variables["serviceId"])
			}
			if got := specJSON(t, call); got != tt.wantSpec {
				t.Errorf("specification = %s\nwant            %s", got, tt.wantSpec)
			}
			if tt.fs != nil && len(tt.fs.reads) != tt.wantReads {
				t.Errorf("filesystem reads = %v, want %d", tt.fs.reads, tt.wantReads)
			}
		})
	}
}

func Test_Deploy_Validation(t *testing.T) {
	tests := []struct {
		name      string
		in        Input
		withFS    bool
		wantField string
		wantMsg   string
	}{
		{
			name:      "no dockerfile",
			in:        Input{ServiceID: "svc", Source: githubBuild(Dockerfile{})},
			withFS:    true,
			wantField: "source.build_from_source.dockerfile",
			wantMsg:   "no Dockerfile provided, specify either content or path",
		},
		{
			name:      "both content and path",
			in:        Input{ServiceID: "svc", Source: githubBuild(Dockerfile{Content: strPtr("FROM x"), Path: strPtr("Dockerfile")})},
			withFS:    true,
			wantField: "source.build_from_source.dockerfile",
		},
		{
			name:      "path without selected filesystem",
			in:        Input{ServiceID: "svc", Source: githubBuild(Dockerfile{Path: strPtr("Dockerfile")})},
			wantField: "source.build_from_source.dockerfile.path",
			wantMsg:   files.ErrNoFilesystem.Error(),
		},
		{
			name:      "build without build_from_source",
			in:        Input{ServiceID: "svc", Source: Source{Type: BuildFromSource}},
			wantField: "source.build_from_source",
		},
		{
			name:      "docker image without image",
			in:        Input{ServiceID: "svc", Source: Source{Type: DockerImage}},
			wantField: "source.docker_image",
			wantMsg:   "is required when type is DOCKER_IMAGE",
		},
		{
			name:      "github source without repository",
			in:        Input{ServiceID: "svc", Source: Source{Type: BuildFromSource, BuildFromSource: &Build{Source: files.Source{Type: files.SourceGitHub}, Dockerfile: Dockerfile{Content: strPtr("x")}}}},
			wantField: "source.build_from_source.source.github",
		},
		{
			name:      "missing service",
			in:        Input{Source: Source{Type: DockerImage, DockerImage: "nginx"}},
			wantField: "service_id",
		},
		{
			name:      "env without key",
			in:        Input{ServiceID: "svc", Source: Source{Type: DockerImage, DockerImage: "nginx"}, Env: []EnvVar{{Value: "v"}}},
			wantField: "env[0].key",
		},
		{
			name:      "unknown source type",
			in:        Input{ServiceID: "svc", Source: Source{Type: "HELM"}},
			wantField: "source.type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := graphqltest.Respond(`{}`)
			s := session.New(client)
			fs := &recordingFS{content: "FROM x"}
			if tt.withFS {
				s.SetFilesystem(fs)
			}

			_, err := Deploy(context.Background(), s, tt.in)
			var ve *schema.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("error = %v, want *schema.ValidationError", err)
			}
			if ve.Fields[0].Field != tt.wantField {
				t.Errorf("field = %q, want %q", ve.Fields[0].Field, tt.wantField)
			}
			if tt.wantMsg != "" && ve.Fields[0].Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", ve.Fields[0].Message, tt.wantMsg)
			}
			if client.CallCount() != 0 || len(fs.reads) != 0 {
				t.Errorf("transport calls = %d, filesystem reads = %d, want none", client.CallCount(), len(fs.reads))
			}
		})
	}
}

func Test_Deploy_RemoteError(t *testing.T) {
	remote := &graphql.RemoteError{Errors: []graphql.GraphQLError{{Message: "service not found"}}}
	s := session.New(graphqltest.Fail(remote))

	_, err := Deploy(context.Background(), s, Input{ServiceID: "svc", Source: Source{Type: DockerImage, DockerImage: "nginx"}})
	var re *graphql.RemoteError
	if !errors.As(err, &re) {
		t.Fatalf("error = %v, want *graphql.RemoteError", err)
	}
}

func Test_Response_JSON(t *testing.T) {
	b, err := json.Marshal(&Response{Data: json.RawMessage(`{"deployFromSpecification":{"deploymentID":"d"}}`)})
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `{"data":{"deployFromSpecification":{"deploymentID":"d"}}}` {
		t.Errorf("json = %s", b)
	}
}
