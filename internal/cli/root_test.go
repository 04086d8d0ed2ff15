package cli

import (
	"bytes"
	"os"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"

	"github.com/Norgate-AV/winkit"
	"github.com/Norgate-AV/winkit/internal/version"
)

func TestRootCmd_Version(t *testing.T) {
	output := captureCommandOutput(t, []string{"--version"})

	expectedVersion := version.GetVersion()
	assert.Contains(t, output, expectedVersion, "Should print version information")
}

func TestRootCmd_Help(t *testing.T) {
	output := captureCommandOutput(t, []string{"--help"})

	assert.Contains(t, output, "winkit", "Should show usage")
	assert.Contains(t, output, "--verbose", "Should list verbose flag")
	assert.Contains(t, output, "--logs", "Should list logs flag")
	assert.Contains(t, output, "list", "Should list the list subcommand")
	assert.Contains(t, output, "focus", "Should list the focus subcommand")
	assert.Contains(t, output, "msgbox", "Should list the msgbox subcommand")
}

func TestValidateMoveArgs(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		expectErr string
	}{
		{
			name: "valid geometry",
			args: []string{"Notepad", "10", "20", "300", "400"},
		},
		{
			name: "negative position is allowed",
			args: []string{"Notepad", "-100", "-200", "300", "400"},
		},
		{
			name:      "too few arguments",
			args:      []string{"Notepad", "10", "20"},
			expectErr: "accepts 5 arg(s), received 3",
		},
		{
			name:      "non-numeric coordinate",
			args:      []string{"Notepad", "ten", "20", "300", "400"},
			expectErr: "x must be an integer",
		},
		{
			name:      "negative width",
			args:      []string{"Notepad", "10", "20", "-300", "400"},
			expectErr: "width must be nonnegative",
		},
		{
			name:      "negative height",
			args:      []string{"Notepad", "10", "20", "300", "-400"},
			expectErr: "height must be nonnegative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateMoveArgs(&cobra.Command{}, tt.args)

			if tt.expectErr == "" {
				assert.NoError(t, err)
				return
			}

			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectErr)
		})
	}
}

func TestParseGeometry(t *testing.T) {
	x, y, width, height, err := parseGeometry([]string{"-5", "7", "800", "600"})

	assert.NoError(t, err)
	assert.Equal(t, int32(-5), x)
	assert.Equal(t, int32(7), y)
	assert.Equal(t, int32(800), width)
	assert.Equal(t, int32(600), height)
}

func TestParseShowAction(t *testing.T) {
	tests := []struct {
		action   string
		expected winkit.ShowCmd
		valid    bool
	}{
		{action: "show", expected: winkit.ShowCmdShow, valid: true},
		{action: "hide", expected: winkit.ShowCmdHide, valid: true},
		{action: "minimize", expected: winkit.ShowCmdMinimized, valid: true},
		{action: "maximize", expected: winkit.ShowCmdMaximized, valid: true},
		{action: "restore", expected: winkit.ShowCmdRestore, valid: true},
		{action: "shrink", valid: false},
		{action: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.action, func(t *testing.T) {
			cmd, err := parseShowAction(tt.action)

			if !tt.valid {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, cmd)
		})
	}
}

func TestParseBoxType(t *testing.T) {
	tests := []struct {
		name     string
		expected winkit.BoxType
		valid    bool
	}{
		{name: "ok", expected: winkit.OK, valid: true},
		{name: "ok-cancel", expected: winkit.OkCancel, valid: true},
		{name: "abort-retry-ignore", expected: winkit.AbortRetryIgnore, valid: true},
		{name: "yes-no-cancel", expected: winkit.YesNoCancel, valid: true},
		{name: "yes-no", expected: winkit.YesNo, valid: true},
		{name: "retry-cancel", expected: winkit.RetryCancel, valid: true},
		{name: "cancel-try-continue", expected: winkit.CancelTryContinue, valid: true},
		{name: "maybe", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			boxType, err := parseBoxType(tt.name)

			if !tt.valid {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, boxType)
		})
	}
}

// Helper function to capture command output
func captureCommandOutput(_ *testing.T, args []string) string {
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	RootCmd.SetOut(w)
	RootCmd.SetArgs(args)
	_ = RootCmd.Execute()

	w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)

	return buf.String()
}
