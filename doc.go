// Package winkit wraps a small, fixed set of Windows user-interface calls
// (window lookup, geometry, text, visibility, z-order, message boxes and
// monitor queries) behind typed Go functions and a Window value type. Each
// operation is a single blocking round-trip to the operating system; nothing
// is cached, retried or recovered.
//
// Window handles are recycled by the OS. A Window is a lookup key, not a
// durable reference: a handle that was valid a moment ago may now name a
// different window or none at all. Any "is this still the same window" check
// must re-query the OS.
//
// Failure convention: most native calls report failure through a zero result,
// in which case winkit reads the thread-local last-error slot immediately and
// returns a *NativeCallError carrying the code and its formatted text. The
// slot is overwritten by any subsequent native call on the thread, and the Go
// scheduler may move goroutines between OS threads, so the code attached to
// an error is only as reliable as the underlying OS contract allows. This
// fragility is inherent to the API being wrapped and is documented rather
// than hidden. A few calls are exceptions: SetForegroundWindow publishes no
// error code at all, and the foreground/active window lookups return a null
// handle as a valid "no such window" answer.
package winkit
