package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/touchall/internal/controller"
	"github.com/mouse-blink/touchall/internal/domain"
)

func examplesFile(t *testing.T) string {
	t.Helper()

	return filepath.Join("..", "examples", "models.py")
}

// executeRoot runs the root command with the given args, capturing output and
// restoring the shared command state afterwards.
func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	ui = controller.NewSimpleUI(rootCmd, false)

	t.Cleanup(func() {
		ui = nil
		strictFlag = false
		parallelFlag = 0
		configFlag = ".touchall.toml"
		plainFlag = false
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()

	return out.String(), err
}

func TestRootCmd_ReportsDiagnostics(t *testing.T) {
	out, err := executeRoot(t, examplesFile(t))
	require.ErrorIs(t, err, domain.ErrIssuesFound)

	assert.Contains(t, out, "examples/models.py:")
	assert.Contains(t, out, "14:14 - Error: User's required fields are missing: age")
	assert.Contains(t, out, "14:14 - Error: User's optional fields are unused: address, nickname")
	assert.Contains(t, out, "Found 5 errors.")
}

func TestRootCmd_StrictMode(t *testing.T) {
	out, err := executeRoot(t, "--strict", examplesFile(t))
	require.ErrorIs(t, err, domain.ErrIssuesFound)

	assert.Contains(t, out, "required fields are missing: age")
	assert.NotContains(t, out, "optional fields are unused")
	assert.Contains(t, out, "Found 1 error.")
}

func TestRootCmd_CheckSubcommand(t *testing.T) {
	out, err := executeRoot(t, "check", examplesFile(t))
	require.ErrorIs(t, err, domain.ErrIssuesFound)

	assert.Contains(t, out, "Found 5 errors.")
}

func TestRootCmd_NoArgsShowsHelp(t *testing.T) {
	out, err := executeRoot(t)
	require.NoError(t, err)

	assert.Contains(t, out, "Usage:")
}

func TestRootCmd_MissingFile(t *testing.T) {
	_, err := executeRoot(t, "/nonexistent/file.py")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrIssuesFound)
}

func TestListCmd_Summary(t *testing.T) {
	out, err := executeRoot(t, "list", examplesFile(t))
	require.NoError(t, err)

	assert.Contains(t, out, "models.py")
	assert.Contains(t, out, "8")
}
