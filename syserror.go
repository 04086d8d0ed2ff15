package winkit

// LastError returns the calling thread's most recent error code. It is only
// meaningful when called immediately after a failing operation: any native
// call in between, including successful ones, may overwrite the slot, after
// which the value is unspecified for the original failure. The Go scheduler
// can also migrate a goroutine to another OS thread between calls; pin the
// goroutine with runtime.LockOSThread when the code must be exact.
func LastError() uint32 {
	return api.GetLastError()
}

// FormatMessage translates a system error code into its human-readable text.
// The OS allocates the message buffer; it is copied out and released before
// this function returns, exactly once, on every path.
func FormatMessage(code uint32) string {
	return api.FormatMessage(code)
}

// lastCallError composes the last-error code and its formatted text into a
// *NativeCallError for the named call. It must run immediately after the
// failing native call, with no native calls in between on the same thread.
// This ordering fragility belongs to the OS contract being wrapped and is
// preserved, not hidden.
func lastCallError(call string) error {
	code := api.GetLastError()

	return &NativeCallError{Call: call, Code: code, Message: api.FormatMessage(code)}
}
