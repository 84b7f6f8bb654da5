package variables_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jamesprial/zeabur-mcp/internal/graphql/graphqltest"
	"github.com/jamesprial/zeabur-mcp/internal/safety"
	"github.com/jamesprial/zeabur-mcp/internal/tools"
	"github.com/jamesprial/zeabur-mcp/internal/tools/toolstest"
	"github.com/jamesprial/zeabur-mcp/internal/variables"
)

func Test_Tools_Registration(t *testing.T) {
	regs := variables.Tools(variables.NewManager(graphqltest.Respond(`{}`)), tools.Deps{})
	want := "create_environment_variable,update_environment_variable,delete_environment_variable,get_service_variables"
	if got := strings.Join(tools.Names(regs), ","); got != want {
		t.Errorf("tools = %s, want %s", got, want)
	}

	del := toolstest.Find(t, regs, "delete_environment_variable")
	if del.Tool.Annotations.DestructiveHint == nil || !*del.Tool.Annotations.DestructiveHint {
		t.Error("delete_environment_variable should be annotated destructive")
	}
	if _, ok := del.Tool.InputSchema.Properties[tools.ConfirmationTokenParam]; !ok {
		t.Error("delete_environment_variable should accept a confirmation token")
	}
}

func Test_DeleteVariable_RequiresConfirmation(t *testing.T) {
	client := graphqltest.Respond(`{"deleteSingleEnvironmentVariable":{"key":"PORT"}}`)
	deps := tools.Deps{Confirm: safety.NewConfirmationTracker(variables.DestructiveTools)}
	regs := variables.Tools(variables.NewManager(client), deps)
	args := map[string]any{"serviceId": "s1", "environmentId": "e1", "key": "PORT"}

	prompt := toolstest.Call(t, regs, "delete_environment_variable", args)
	if !strings.Contains(prompt, `"s1/e1/PORT"`) {
		t.Fatalf("prompt = %q", prompt)
	}
	if client.CallCount() != 0 {
		t.Fatal("variable deleted before confirmation")
	}

	args["confirmation_token"] = toolstest.Token(t, prompt)
	text := toolstest.Call(t, regs, "delete_environment_variable", args)
	if !strings.Contains(text, `"key": "PORT"`) {
		t.Errorf("text = %q", text)
	}
	if client.CallCount() != 1 {
		t.Errorf("transport calls = %d, want 1", client.CallCount())
	}
}

func Test_CreateVariable_ValueNotAudited(t *testing.T) {
	var buf bytes.Buffer
	deps := tools.Deps{Audit: safety.NewAuditLogger(&buf)}
	regs := variables.Tools(variables.NewManager(graphqltest.Respond(`{}`)), deps)

	toolstest.Call(t, regs, "create_environment_variable", map[string]any{
		"serviceId": "s1", "environmentId": "e1", "key": "API_KEY", "value": "sk-live-123",
	})
	if strings.Contains(buf.String(), "sk-live-123") {
		t.Errorf("audit log contains the variable value: %s", buf.String())
	}
	if !strings.Contains(buf.String(), "API_KEY") {
		t.Errorf("audit log missing the key: %s", buf.String())
	}
}
