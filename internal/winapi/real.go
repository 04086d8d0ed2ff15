//go:build windows

package winapi

import (
	"strings"
	"sync"
	"syscall"
	"unsafe"
)

var (
	user32 = syscall.NewLazyDLL("user32.dll")

	procAnimateWindow            = user32.NewProc("AnimateWindow")
	procBringWindowToTop         = user32.NewProc("BringWindowToTop")
	procClipCursor               = user32.NewProc("ClipCursor")
	procCloseWindow              = user32.NewProc("CloseWindow")
	procDestroyWindow            = user32.NewProc("DestroyWindow")
	procEnumWindows              = user32.NewProc("EnumWindows")
	procFindWindowW              = user32.NewProc("FindWindowW")
	procGetActiveWindow          = user32.NewProc("GetActiveWindow")
	procGetClientRect            = user32.NewProc("GetClientRect")
	procGetCursorPos             = user32.NewProc("GetCursorPos")
	procGetDesktopWindow         = user32.NewProc("GetDesktopWindow")
	procGetForegroundWindow      = user32.NewProc("GetForegroundWindow")
	procGetWindow                = user32.NewProc("GetWindow")
	procGetWindowPlacement       = user32.NewProc("GetWindowPlacement")
	procGetWindowRect            = user32.NewProc("GetWindowRect")
	procGetWindowTextLengthW     = user32.NewProc("GetWindowTextLengthW")
	procGetWindowTextW           = user32.NewProc("GetWindowTextW")
	procGetWindowThreadProcessId = user32.NewProc("GetWindowThreadProcessId")
	procIsChild                  = user32.NewProc("IsChild")
	procIsIconic                 = user32.NewProc("IsIconic")
	procIsProcessDPIAware        = user32.NewProc("IsProcessDPIAware")
	procIsWindow                 = user32.NewProc("IsWindow")
	procIsWindowUnicode          = user32.NewProc("IsWindowUnicode")
	procIsWindowVisible          = user32.NewProc("IsWindowVisible")
	procIsZoomed                 = user32.NewProc("IsZoomed")
	procLockSetForegroundWindow  = user32.NewProc("LockSetForegroundWindow")
	procLogicalToPhysicalPoint   = user32.NewProc("LogicalToPhysicalPoint")
	procMessageBoxW              = user32.NewProc("MessageBoxW")
	procMonitorFromPoint         = user32.NewProc("MonitorFromPoint")
	procMonitorFromRect          = user32.NewProc("MonitorFromRect")
	procMonitorFromWindow        = user32.NewProc("MonitorFromWindow")
	procMoveWindow               = user32.NewProc("MoveWindow")
	procOpenIcon                 = user32.NewProc("OpenIcon")
	procPhysicalToLogicalPoint   = user32.NewProc("PhysicalToLogicalPoint")
	procSetForegroundWindow      = user32.NewProc("SetForegroundWindow")
	procSetWindowPos             = user32.NewProc("SetWindowPos")
	procSetWindowTextW           = user32.NewProc("SetWindowTextW")
	procShowWindow               = user32.NewProc("ShowWindow")
	procShowWindowAsync          = user32.NewProc("ShowWindowAsync")
	procWaitMessage              = user32.NewProc("WaitMessage")
	procWindowFromPhysicalPoint  = user32.NewProc("WindowFromPhysicalPoint")
	procWindowFromPoint          = user32.NewProc("WindowFromPoint")

	kernel32 = syscall.NewLazyDLL("kernel32.dll")

	procFormatMessageW = kernel32.NewProc("FormatMessageW")
	procGetLastError   = kernel32.NewProc("GetLastError")
	procLocalFree      = kernel32.NewProc("LocalFree")

	shcore = syscall.NewLazyDLL("shcore.dll")

	procGetScaleFactorForDevice = shcore.NewProc("GetScaleFactorForDevice")
)

// systemCaller implements Caller against the live operating system.
type systemCaller struct{}

// NewSystemCaller returns the Caller backed by the real Windows API. The
// error-path procs are resolved eagerly: lazy resolution issues its own
// system calls, which would overwrite the last-error slot of the failure
// being inspected.
func NewSystemCaller() Caller {
	_ = procGetLastError.Find()
	_ = procFormatMessageW.Find()
	_ = procLocalFree.Find()

	return systemCaller{}
}

// pack packs a POINT into the single register slot the x64 calling
// convention uses for 8-byte structs passed by value.
func (p POINT) pack() uintptr {
	return uintptr(uint32(p.X)) | uintptr(uint32(p.Y))<<32
}

func utf16Ptr(s string) *uint16 {
	p, err := syscall.UTF16PtrFromString(s)
	if err != nil {
		return nil
	}

	return p
}

func (systemCaller) AnimateWindow(hwnd uintptr, milliseconds, flags uint32) uintptr {
	ret, _, _ := procAnimateWindow.Call(hwnd, uintptr(milliseconds), uintptr(flags))
	return ret
}

func (systemCaller) BringWindowToTop(hwnd uintptr) uintptr {
	ret, _, _ := procBringWindowToTop.Call(hwnd)
	return ret
}

func (systemCaller) ClipCursor(r *RECT) uintptr {
	var arg uintptr
	if r != nil {
		arg = uintptr(unsafe.Pointer(r))
	}

	ret, _, _ := procClipCursor.Call(arg)
	return ret
}

func (systemCaller) CloseWindow(hwnd uintptr) uintptr {
	ret, _, _ := procCloseWindow.Call(hwnd)
	return ret
}

func (systemCaller) DestroyWindow(hwnd uintptr) uintptr {
	ret, _, _ := procDestroyWindow.Call(hwnd)
	return ret
}

var (
	enumMu    sync.Mutex
	enumVisit func(hwnd uintptr) bool

	// The process can only register a bounded number of callbacks, so one
	// is created for all enumerations and the visitor is handed over
	// through enumVisit under enumMu.
	enumCallback = sync.OnceValue(func() uintptr {
		return syscall.NewCallback(func(hwnd uintptr, lparam uintptr) uintptr {
			if enumVisit != nil && !enumVisit(hwnd) {
				return 0 // stop enumeration
			}

			return 1
		})
	})
)

func (systemCaller) EnumWindows(visit func(hwnd uintptr) bool) {
	enumMu.Lock()
	defer enumMu.Unlock()

	enumVisit = visit
	defer func() { enumVisit = nil }()

	procEnumWindows.Call(enumCallback(), 0)
}

func (systemCaller) FindWindow(name string) uintptr {
	namePtr := utf16Ptr(name)
	if namePtr == nil {
		return 0
	}

	ret, _, _ := procFindWindowW.Call(0, uintptr(unsafe.Pointer(namePtr)))
	return ret
}

// FormatMessage asks the system to allocate the message buffer, copies the
// text out, and releases the buffer before returning. The buffer is freed
// exactly once on every path, including when no text was produced.
func (systemCaller) FormatMessage(code uint32) string {
	var buf *uint16

	ret, _, _ := procFormatMessageW.Call(
		FORMAT_MESSAGE_FROM_SYSTEM|FORMAT_MESSAGE_ALLOCATE_BUFFER|FORMAT_MESSAGE_IGNORE_INSERTS,
		0,
		uintptr(code),
		0, // dwLanguageId
		uintptr(unsafe.Pointer(&buf)),
		0, // nSize: minimum size of the allocated buffer
		0,
	)

	if buf == nil {
		return ""
	}
	defer procLocalFree.Call(uintptr(unsafe.Pointer(buf)))

	if ret == 0 {
		return ""
	}

	// ret is the count of characters written, excluding the terminator.
	return strings.TrimRight(syscall.UTF16ToString(unsafe.Slice(buf, ret)), "\r\n ")
}

func (systemCaller) GetActiveWindow() uintptr {
	ret, _, _ := procGetActiveWindow.Call()
	return ret
}

func (systemCaller) GetClientRect(hwnd uintptr) (RECT, uintptr) {
	var r RECT

	ret, _, _ := procGetClientRect.Call(hwnd, uintptr(unsafe.Pointer(&r)))
	return r, ret
}

func (systemCaller) GetCursorPos() (POINT, uintptr) {
	var p POINT

	ret, _, _ := procGetCursorPos.Call(uintptr(unsafe.Pointer(&p)))
	return p, ret
}

func (systemCaller) GetDesktopWindow() uintptr {
	ret, _, _ := procGetDesktopWindow.Call()
	return ret
}

func (systemCaller) GetForegroundWindow() uintptr {
	ret, _, _ := procGetForegroundWindow.Call()
	return ret
}

func (systemCaller) GetLastError() uint32 {
	ret, _, _ := procGetLastError.Call()
	return uint32(ret)
}

func (systemCaller) GetScaleFactorForDevice(deviceType uint32) uintptr {
	ret, _, _ := procGetScaleFactorForDevice.Call(uintptr(deviceType))
	return ret
}

func (systemCaller) GetWindow(hwnd uintptr, cmd uint32) uintptr {
	ret, _, _ := procGetWindow.Call(hwnd, uintptr(cmd))
	return ret
}

func (systemCaller) GetWindowPlacement(hwnd uintptr) (WINDOWPLACEMENT, uintptr) {
	var wp WINDOWPLACEMENT
	wp.Length = uint32(unsafe.Sizeof(wp))

	ret, _, _ := procGetWindowPlacement.Call(hwnd, uintptr(unsafe.Pointer(&wp)))
	return wp, ret
}

func (systemCaller) GetWindowRect(hwnd uintptr) (RECT, uintptr) {
	var r RECT

	ret, _, _ := procGetWindowRect.Call(hwnd, uintptr(unsafe.Pointer(&r)))
	return r, ret
}

func (systemCaller) GetWindowText(hwnd uintptr, buf []uint16) int32 {
	if len(buf) == 0 {
		return 0
	}

	ret, _, _ := procGetWindowTextW.Call(hwnd, uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	return int32(ret)
}

func (systemCaller) GetWindowTextLength(hwnd uintptr) int32 {
	ret, _, _ := procGetWindowTextLengthW.Call(hwnd)
	return int32(ret)
}

func (systemCaller) GetWindowThreadProcessID(hwnd uintptr) (tid, pid uint32) {
	var p uint32

	ret, _, _ := procGetWindowThreadProcessId.Call(hwnd, uintptr(unsafe.Pointer(&p)))
	return uint32(ret), p
}

func (systemCaller) IsChild(parent, child uintptr) bool {
	ret, _, _ := procIsChild.Call(parent, child)
	return ret != 0
}

func (systemCaller) IsIconic(hwnd uintptr) bool {
	ret, _, _ := procIsIconic.Call(hwnd)
	return ret != 0
}

func (systemCaller) IsProcessDPIAware() bool {
	ret, _, _ := procIsProcessDPIAware.Call()
	return ret != 0
}

func (systemCaller) IsWindow(hwnd uintptr) bool {
	ret, _, _ := procIsWindow.Call(hwnd)
	return ret != 0
}

func (systemCaller) IsWindowUnicode(hwnd uintptr) bool {
	ret, _, _ := procIsWindowUnicode.Call(hwnd)
	return ret != 0
}

func (systemCaller) IsWindowVisible(hwnd uintptr) bool {
	ret, _, _ := procIsWindowVisible.Call(hwnd)
	return ret != 0
}

func (systemCaller) IsZoomed(hwnd uintptr) bool {
	ret, _, _ := procIsZoomed.Call(hwnd)
	return ret != 0
}

func (systemCaller) LockSetForegroundWindow(lockCode uint32) uintptr {
	ret, _, _ := procLockSetForegroundWindow.Call(uintptr(lockCode))
	return ret
}

func (systemCaller) LogicalToPhysicalPoint(hwnd uintptr, p *POINT) uintptr {
	ret, _, _ := procLogicalToPhysicalPoint.Call(hwnd, uintptr(unsafe.Pointer(p)))
	return ret
}

func (systemCaller) MessageBox(owner uintptr, text, caption string, boxType uint32) uintptr {
	textPtr := utf16Ptr(text)
	captionPtr := utf16Ptr(caption)

	if textPtr == nil || captionPtr == nil {
		return 0
	}

	ret, _, _ := procMessageBoxW.Call(
		owner,
		uintptr(unsafe.Pointer(textPtr)),
		uintptr(unsafe.Pointer(captionPtr)),
		uintptr(boxType),
	)

	return ret
}

func (systemCaller) MonitorFromPoint(p POINT, flags uint32) uintptr {
	ret, _, _ := procMonitorFromPoint.Call(p.pack(), uintptr(flags))
	return ret
}

func (systemCaller) MonitorFromRect(r RECT, flags uint32) uintptr {
	ret, _, _ := procMonitorFromRect.Call(uintptr(unsafe.Pointer(&r)), uintptr(flags))
	return ret
}

func (systemCaller) MonitorFromWindow(hwnd uintptr, flags uint32) uintptr {
	ret, _, _ := procMonitorFromWindow.Call(hwnd, uintptr(flags))
	return ret
}

func (systemCaller) MoveWindow(hwnd uintptr, x, y, width, height int32, repaint bool) uintptr {
	var rep uintptr
	if repaint {
		rep = 1
	}

	ret, _, _ := procMoveWindow.Call(
		hwnd,
		uintptr(x),
		uintptr(y),
		uintptr(width),
		uintptr(height),
		rep,
	)

	return ret
}

func (systemCaller) OpenIcon(hwnd uintptr) uintptr {
	ret, _, _ := procOpenIcon.Call(hwnd)
	return ret
}

func (systemCaller) PhysicalToLogicalPoint(hwnd uintptr, p *POINT) uintptr {
	ret, _, _ := procPhysicalToLogicalPoint.Call(hwnd, uintptr(unsafe.Pointer(p)))
	return ret
}

func (systemCaller) SetForegroundWindow(hwnd uintptr) uintptr {
	ret, _, _ := procSetForegroundWindow.Call(hwnd)
	return ret
}

func (systemCaller) SetWindowPos(hwnd, insertAfter uintptr, x, y, cx, cy int32, flags uint32) uintptr {
	ret, _, _ := procSetWindowPos.Call(
		hwnd,
		insertAfter,
		uintptr(x),
		uintptr(y),
		uintptr(cx),
		uintptr(cy),
		uintptr(flags),
	)

	return ret
}

func (systemCaller) SetWindowText(hwnd uintptr, text string) uintptr {
	textPtr := utf16Ptr(text)
	if textPtr == nil {
		return 0
	}

	ret, _, _ := procSetWindowTextW.Call(hwnd, uintptr(unsafe.Pointer(textPtr)))
	return ret
}

func (systemCaller) ShowWindow(hwnd uintptr, cmd int32) uintptr {
	ret, _, _ := procShowWindow.Call(hwnd, uintptr(cmd))
	return ret
}

func (systemCaller) ShowWindowAsync(hwnd uintptr, cmd int32) uintptr {
	ret, _, _ := procShowWindowAsync.Call(hwnd, uintptr(cmd))
	return ret
}

func (systemCaller) WaitMessage() uintptr {
	ret, _, _ := procWaitMessage.Call()
	return ret
}

func (systemCaller) WindowFromPhysicalPoint(p POINT) uintptr {
	ret, _, _ := procWindowFromPhysicalPoint.Call(p.pack())
	return ret
}

func (systemCaller) WindowFromPoint(p POINT) uintptr {
	ret, _, _ := procWindowFromPoint.Call(p.pack())
	return ret
}
