package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePosture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "posture.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestValidateCommand_ValidFile(t *testing.T) {
	path := writePosture(t, `
frameworks:
  - name: SOC2
    status: compliant
    score: 1.0
`)

	out, err := runCommand(t, "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "OK")
}

func TestValidateCommand_BadStatus(t *testing.T) {
	path := writePosture(t, `
frameworks:
  - name: SOC2
    status: audited
    score: 1.0
`)

	_, err := runCommand(t, "validate", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "framework_status")
}

func TestRenderCommand_DeriveOverridesStoredPosture(t *testing.T) {
	path := writePosture(t, `
compliance_posture: unknown
frameworks:
  - name: SOC2
    status: compliant
    score: 1.0
`)

	out, err := runCommand(t, "render", path, "--derive")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "compliant", doc["compliance_posture"])
}

func TestRenderCommand_YAMLOutput(t *testing.T) {
	path := writePosture(t, "compliance_posture: non_compliant\n")

	out, err := runCommand(t, "render", path, "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "compliance_posture: non_compliant")
}
