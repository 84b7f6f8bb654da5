package render_test

import (
	"strings"
	"testing"

	"github.com/jamesprial/zeabur-mcp/internal/render"
	"github.com/jamesprial/zeabur-mcp/internal/tools"
	"github.com/jamesprial/zeabur-mcp/internal/tools/toolstest"
)

func Test_RenderTools(t *testing.T) {
	regs := render.Tools(tools.Deps{})

	tests := []struct {
		name string
		tool string
		args map[string]any
		want string
	}{
		{
			name: "region selector",
			tool: "render_region_selector",
			args: map[string]any{"showServers": false},
			want: "{\n  \"type\": \"region-selector\",\n  \"showServers\": false\n}",
		},
		{
			name: "project selector",
			tool: "render_project_selector",
			args: map[string]any{"showCreateNew": true},
			want: "{\n  \"type\": \"project-selector\",\n  \"showCreateNew\": true\n}",
		},
		{
			name: "service card",
			tool: "render_service_card",
			args: map[string]any{"projectID": "p1", "serviceID": "s1"},
			want: "{\n  \"type\": \"service-card\",\n  \"projectID\": \"p1\",\n  \"serviceID\": \"s1\"\n}",
		},
		{
			name: "dockerfile default language",
			tool: "render_dockerfile",
			args: map[string]any{"dockerfile": "FROM alpine"},
			want: "{\n  \"type\": \"dockerfile\",\n  \"content\": \"FROM alpine\",\n  \"language\": \"dockerfile\"\n}",
		},
		{
			name: "dockerfile empty language falls back",
			tool: "render_dockerfile",
			args: map[string]any{"dockerfile": "FROM alpine", "language": ""},
			want: "{\n  \"type\": \"dockerfile\",\n  \"content\": \"FROM alpine\",\n  \"language\": \"dockerfile\"\n}",
		},
		{
			name: "recommendation",
			tool: "render_recommendation",
			args: map[string]any{"options": []any{map[string]any{"label": "Add a domain"}}},
			want: "{\n  \"type\": \"recommendation\",\n  \"options\": [\n    {\n      \"label\": \"Add a domain\"\n    }\n  ]\n}",
		},
		{
			name: "floating button defaults",
			tool: "render_floating_button",
			args: map[string]any{"url": "https://app.zeabur.app"},
			want: "{\n  \"type\": \"floating-button\",\n  \"url\": \"https://app.zeabur.app\",\n  \"title\": \"Visit Website\",\n  \"isExternal\": true\n}",
		},
		{
			name: "floating button explicit",
			tool: "render_floating_button",
			args: map[string]any{"url": "/dash", "title": "Open", "description": "Dashboard", "isExternal": false},
			want: "{\n  \"type\": \"floating-button\",\n  \"url\": \"/dash\",\n  \"title\": \"Open\",\n  \"description\": \"Dashboard\",\n  \"isExternal\": false\n}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := toolstest.Call(t, regs, tt.tool, tt.args); got != tt.want {
				t.Errorf("text =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func Test_RenderTools_Validation(t *testing.T) {
	regs := render.Tools(tools.Deps{})

	tests := []struct {
		tool string
		args map[string]any
		want string
	}{
		{tool: "render_region_selector", args: nil, want: "error: invalid input: showServers: is required"},
		{tool: "render_service_card", args: map[string]any{"projectID": "p1"}, want: "error: invalid input: serviceID: is required"},
		{tool: "render_recommendation", args: map[string]any{"options": []any{map[string]any{}}}, want: "error: invalid input: options[0].label: is required"},
	}

	for _, tt := range tests {
		t.Run(tt.tool, func(t *testing.T) {
			if got := toolstest.Call(t, regs, tt.tool, tt.args); got != tt.want {
				t.Errorf("text = %q, want %q", got, tt.want)
			}
		})
	}
}

func Test_RenderTools_AllReadOnly(t *testing.T) {
	for _, r := range render.Tools(tools.Deps{}) {
		if !strings.HasPrefix(r.Tool.Name, "render_") {
			t.Errorf("unexpected tool %s", r.Tool.Name)
		}
		if r.Tool.Annotations.ReadOnlyHint == nil || !*r.Tool.Annotations.ReadOnlyHint {
			t.Errorf("%s should be read-only", r.Tool.Name)
		}
	}
}
