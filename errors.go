package winkit

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidHandle reports that a zero value was supplied where a live
	// window handle is required.
	ErrInvalidHandle = errors.New("winkit: window handle must be a nonzero value")

	// ErrSetForegroundWindow reports that SetForegroundWindow refused the
	// request. Windows does not publish an error code for this call, so no
	// code or message is attached and the last-error slot is never consulted.
	ErrSetForegroundWindow = errors.New("winkit: unable to set the foreground window")

	// ErrNotImplemented marks operations whose native binding is unfinished.
	// They fail loudly instead of silently succeeding.
	ErrNotImplemented = errors.New("winkit: not implemented")
)

// NativeCallError reports a native call that signalled failure through its
// zero-result convention. Code and Message come from the thread's last-error
// slot, fetched immediately after the failing call.
type NativeCallError struct {
	Call    string // native entry point that failed
	Code    uint32
	Message string
}

func (e *NativeCallError) Error() string {
	return fmt.Sprintf("winkit: %s failed: error code %d: %s", e.Call, e.Code, e.Message)
}

// ValidationError reports an argument combination rejected by this layer
// before any native call was issued.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "winkit: " + e.Reason
}
