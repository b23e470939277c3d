package hook_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/nugate/nugate/internal/adapters/inbound/hook"
	"github.com/nugate/nugate/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_PreWriteEvent(t *testing.T) {
	raw := `{"tool_input":{"file_path":"scripts/deploy.nu","content":"def main [] { }"}}`

	in, err := hook.Decode(strings.NewReader(raw))
	require.NoError(t, err)

	assert.Equal(t, "scripts/deploy.nu", in.FilePath())
	assert.Equal(t, "def main [] { }", in.Content())
}

func TestDecode_PostWriteEvent(t *testing.T) {
	raw := `{"tool_result":{"file_path":"scripts/deploy.nu"}}`

	in, err := hook.Decode(strings.NewReader(raw))
	require.NoError(t, err)

	assert.Equal(t, "scripts/deploy.nu", in.FilePath())
	assert.Empty(t, in.Content())
}

func TestFilePath_PrefersToolInput(t *testing.T) {
	raw := `{"tool_input":{"file_path":"a.nu"},"tool_result":{"file_path":"b.nu"}}`

	in, err := hook.Decode(strings.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, "a.nu", in.FilePath())
}

func TestFilePath_Empty(t *testing.T) {
	in, err := hook.Decode(strings.NewReader(`{}`))
	require.NoError(t, err)
	assert.Empty(t, in.FilePath())
}

func TestDecode_Malformed(t *testing.T) {
	_, err := hook.Decode(strings.NewReader("{not json"))
	assert.Error(t, err)
}

func TestWriteDecision(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, hook.WriteDecision(&buf, domain.Deny("2 critical issues")))

	var out map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, "deny", out["action"])
	assert.Equal(t, "2 critical issues", out["message"])
}

func TestWriteDecision_ApproveOmitsMessage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, hook.WriteDecision(&buf, domain.Approve()))

	assert.JSONEq(t, `{"action":"approve"}`, buf.String())
}

func TestWriteSystemMessage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, hook.WriteSystemMessage(&buf, "validation failed"))

	assert.JSONEq(t, `{"systemMessage":"validation failed"}`, buf.String())
}
