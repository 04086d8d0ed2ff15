package winapi

// ShowWindow commands.
const (
	SW_HIDE            = 0
	SW_SHOWNORMAL      = 1
	SW_SHOWMINIMIZED   = 2
	SW_SHOWMAXIMIZED   = 3
	SW_MAXIMIZE        = 3
	SW_SHOWNOACTIVATE  = 4
	SW_SHOW            = 5
	SW_MINIMIZE        = 6
	SW_SHOWMINNOACTIVE = 7
	SW_SHOWNA          = 8
	SW_RESTORE         = 9
	SW_SHOWDEFAULT     = 10
	SW_FORCEMINIMIZE   = 11
)

// FormatMessage flags.
const (
	FORMAT_MESSAGE_ALLOCATE_BUFFER = 0x00000100
	FORMAT_MESSAGE_IGNORE_INSERTS  = 0x00000200
	FORMAT_MESSAGE_FROM_SYSTEM     = 0x00001000
)

// AnimateWindow flags.
const (
	AW_HOR_POSITIVE = 0x00000001
	AW_HOR_NEGATIVE = 0x00000002
	AW_VER_POSITIVE = 0x00000004
	AW_VER_NEGATIVE = 0x00000008
	AW_CENTER       = 0x00000010
	AW_HIDE         = 0x00010000
	AW_ACTIVATE     = 0x00020000
	AW_SLIDE        = 0x00040000
	AW_BLEND        = 0x00080000
)

// GetWindow relationship commands.
const (
	GW_HWNDFIRST    = 0
	GW_HWNDLAST     = 1
	GW_HWNDNEXT     = 2
	GW_HWNDPREV     = 3
	GW_OWNER        = 4
	GW_CHILD        = 5
	GW_ENABLEDPOPUP = 6
)

// LockSetForegroundWindow lock codes.
const (
	LSFW_LOCK   = 1
	LSFW_UNLOCK = 2
)

// MessageBox button layouts.
const (
	MB_OK                = 0x00000000
	MB_OKCANCEL          = 0x00000001
	MB_ABORTRETRYIGNORE  = 0x00000002
	MB_YESNOCANCEL       = 0x00000003
	MB_YESNO             = 0x00000004
	MB_RETRYCANCEL       = 0x00000005
	MB_CANCELTRYCONTINUE = 0x00000006
	MB_HELP              = 0x00004000
)

// MessageBox button results.
const (
	IDOK       = 1
	IDCANCEL   = 2
	IDABORT    = 3
	IDRETRY    = 4
	IDIGNORE   = 5
	IDYES      = 6
	IDNO       = 7
	IDTRYAGAIN = 10
	IDCONTINUE = 11
)

// MonitorFrom* fallback flags.
const (
	MONITOR_DEFAULTTONULL    = 0x00000000
	MONITOR_DEFAULTTOPRIMARY = 0x00000001
	MONITOR_DEFAULTTONEAREST = 0x00000002
)

// WINDOWPLACEMENT flag bits.
const (
	WPF_SETMINPOSITION       = 0x0001
	WPF_RESTORETOMAXIMIZED   = 0x0002
	WPF_ASYNCWINDOWPLACEMENT = 0x0004
)

// SetWindowPos z-order anchors. HWND_TOPMOST and HWND_NOTOPMOST are the
// two's-complement encodings of -1 and -2.
const (
	HWND_TOP       = 0
	HWND_BOTTOM    = 1
	HWND_TOPMOST   = ^uintptr(0)
	HWND_NOTOPMOST = ^uintptr(0) - 1
)

// SetWindowPos flags.
const (
	SWP_NOSIZE        = 0x0001
	SWP_NOMOVE        = 0x0002
	SWP_NOZORDER      = 0x0004
	SWP_NOACTIVATE    = 0x0010
	SWP_SHOWWINDOW    = 0x0040
	SWP_HIDEWINDOW    = 0x0080
	SWP_NOOWNERZORDER = 0x0200
)
