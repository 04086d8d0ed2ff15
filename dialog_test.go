package winkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Norgate-AV/winkit/internal/winapi"
)

func TestMessageBox_ResultMapping(t *testing.T) {
	tests := []struct {
		name     string
		id       uintptr
		expected ButtonResult
	}{
		{name: "ok", id: winapi.IDOK, expected: ButtonOK},
		{name: "cancel", id: winapi.IDCANCEL, expected: ButtonCancel},
		{name: "abort", id: winapi.IDABORT, expected: ButtonAbort},
		{name: "retry", id: winapi.IDRETRY, expected: ButtonRetry},
		{name: "ignore", id: winapi.IDIGNORE, expected: ButtonIgnore},
		{name: "yes", id: winapi.IDYES, expected: ButtonYes},
		{name: "no", id: winapi.IDNO, expected: ButtonNo},
		{name: "try again", id: winapi.IDTRYAGAIN, expected: ButtonTryAgain},
		{name: "continue", id: winapi.IDCONTINUE, expected: ButtonContinue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := installMock(t)
			mock.WithMessageBoxResult(tt.id)

			result, err := MessageBox(Window{}, "text", "caption", CancelTryContinue)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestMessageBox_OkCancel_UserCancels(t *testing.T) {
	mock := installMock(t)
	mock.WithMessageBoxResult(winapi.IDCANCEL)

	result, err := MessageBox(Window{}, "Proceed?", "Confirm", OkCancel)
	require.NoError(t, err)
	assert.Equal(t, ButtonCancel, result)
	assert.Equal(t, "cancel", result.String())
}

func TestMessageBox_UnownedDialog(t *testing.T) {
	mock := installMock(t)

	// The zero Window is a valid owner meaning "no owner".
	result, err := MessageBox(Window{}, "Disk full", "Error", OK)
	require.NoError(t, err)
	assert.Equal(t, ButtonOK, result)
	assert.Equal(t, 1, mock.CallsNamed("MessageBoxW"))
}

func TestMessageBox_Failure(t *testing.T) {
	mock := installMock(t)
	mock.WithFailure("MessageBoxW", 8).
		WithMessage(8, "Not enough memory resources are available to process this command.")

	_, err := MessageBox(Window{}, "text", "caption", YesNo)

	var callErr *NativeCallError
	require.ErrorAs(t, err, &callErr)
	assert.Equal(t, "MessageBoxW", callErr.Call)
	assert.Equal(t, uint32(8), callErr.Code)
}

func TestButtonResult_String(t *testing.T) {
	assert.Equal(t, "ok", ButtonOK.String())
	assert.Equal(t, "cancel", ButtonCancel.String())
	assert.Equal(t, "abort", ButtonAbort.String())
	assert.Equal(t, "retry", ButtonRetry.String())
	assert.Equal(t, "ignore", ButtonIgnore.String())
	assert.Equal(t, "yes", ButtonYes.String())
	assert.Equal(t, "no", ButtonNo.String())
	assert.Equal(t, "try again", ButtonTryAgain.String())
	assert.Equal(t, "continue", ButtonContinue.String())
	assert.Equal(t, "unknown", ButtonResult(99).String())
}
