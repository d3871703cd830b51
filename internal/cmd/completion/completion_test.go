package completion

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createTestRootCmd creates a minimal root command for testing.
func createTestRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "cnmap",
		Short: "Test CLI",
	}
	root.AddCommand(NewCmdCompletion())
	return root
}

func TestNewCmdCompletion(t *testing.T) {
	cmd := NewCmdCompletion()

	assert.Equal(t, "completion", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
		assert.Contains(t, sub.Long, "cnmap completion "+sub.Name())
	}
	assert.ElementsMatch(t, []string{"bash", "zsh", "fish", "powershell"}, names)
}

func TestCompletionScripts(t *testing.T) {
	testCases := []struct {
		shell  string
		marker string
	}{
		{"bash", "bash completion"},
		{"zsh", "compdef"},
		{"fish", "complete -c cnmap"},
		{"powershell", "Register-ArgumentCompleter"},
	}

	for _, tc := range testCases {
		t.Run(tc.shell, func(t *testing.T) {
			root := createTestRootCmd()

			buf := new(bytes.Buffer)
			root.SetOut(buf)
			root.SetArgs([]string{"completion", tc.shell})

			err := root.Execute()
			require.NoError(t, err)
			assert.Contains(t, buf.String(), tc.marker)
		})
	}
}

func TestCompletionRejectsExtraArgs(t *testing.T) {
	for _, s := range shells {
		t.Run(s.name, func(t *testing.T) {
			root := createTestRootCmd()
			root.SetArgs([]string{"completion", s.name, "unexpected-arg"})

			err := root.Execute()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "unknown command")
		})
	}
}
