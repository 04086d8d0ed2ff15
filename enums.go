package winkit

import "github.com/Norgate-AV/winkit/internal/winapi"

// ShowCmd selects the action performed by Window.ShowWindow.
type ShowCmd int32

const (
	ShowCmdHide          ShowCmd = winapi.SW_HIDE
	ShowCmdNormal        ShowCmd = winapi.SW_SHOWNORMAL
	ShowCmdMinimized     ShowCmd = winapi.SW_SHOWMINIMIZED
	ShowCmdMaximized     ShowCmd = winapi.SW_SHOWMAXIMIZED
	ShowCmdNoActivate    ShowCmd = winapi.SW_SHOWNOACTIVATE
	ShowCmdShow          ShowCmd = winapi.SW_SHOW
	ShowCmdMinimize      ShowCmd = winapi.SW_MINIMIZE
	ShowCmdMinNoActive   ShowCmd = winapi.SW_SHOWMINNOACTIVE
	ShowCmdNA            ShowCmd = winapi.SW_SHOWNA
	ShowCmdRestore       ShowCmd = winapi.SW_RESTORE
	ShowCmdDefault       ShowCmd = winapi.SW_SHOWDEFAULT
	ShowCmdForceMinimize ShowCmd = winapi.SW_FORCEMINIMIZE
)

// Relationship selects the window returned by Window.Related.
type Relationship uint32

const (
	RelFirst        Relationship = winapi.GW_HWNDFIRST
	RelLast         Relationship = winapi.GW_HWNDLAST
	RelNext         Relationship = winapi.GW_HWNDNEXT
	RelPrev         Relationship = winapi.GW_HWNDPREV
	RelOwner        Relationship = winapi.GW_OWNER
	RelChild        Relationship = winapi.GW_CHILD
	RelEnabledPopup Relationship = winapi.GW_ENABLEDPOPUP
)

// MonitorFallback selects what the MonitorFrom* lookups return when no
// monitor contains the queried point, rectangle or window.
type MonitorFallback uint32

const (
	NullOnNoMatch  MonitorFallback = winapi.MONITOR_DEFAULTTONULL
	PrimaryMonitor MonitorFallback = winapi.MONITOR_DEFAULTTOPRIMARY
	NearestMonitor MonitorFallback = winapi.MONITOR_DEFAULTTONEAREST
)

// BoxType selects the button layout of a MessageBox.
type BoxType uint32

const (
	OK                BoxType = winapi.MB_OK
	OkCancel          BoxType = winapi.MB_OKCANCEL
	AbortRetryIgnore  BoxType = winapi.MB_ABORTRETRYIGNORE
	YesNoCancel       BoxType = winapi.MB_YESNOCANCEL
	YesNo             BoxType = winapi.MB_YESNO
	RetryCancel       BoxType = winapi.MB_RETRYCANCEL
	CancelTryContinue BoxType = winapi.MB_CANCELTRYCONTINUE
)

// ButtonResult identifies the button a user dismissed a MessageBox with.
type ButtonResult int32

const (
	ButtonOK       ButtonResult = winapi.IDOK
	ButtonCancel   ButtonResult = winapi.IDCANCEL
	ButtonAbort    ButtonResult = winapi.IDABORT
	ButtonRetry    ButtonResult = winapi.IDRETRY
	ButtonIgnore   ButtonResult = winapi.IDIGNORE
	ButtonYes      ButtonResult = winapi.IDYES
	ButtonNo       ButtonResult = winapi.IDNO
	ButtonTryAgain ButtonResult = winapi.IDTRYAGAIN
	ButtonContinue ButtonResult = winapi.IDCONTINUE
)

func (b ButtonResult) String() string {
	switch b {
	case ButtonOK:
		return "ok"
	case ButtonCancel:
		return "cancel"
	case ButtonAbort:
		return "abort"
	case ButtonRetry:
		return "retry"
	case ButtonIgnore:
		return "ignore"
	case ButtonYes:
		return "yes"
	case ButtonNo:
		return "no"
	case ButtonTryAgain:
		return "try again"
	case ButtonContinue:
		return "continue"
	default:
		return "unknown"
	}
}

// AnimationFlags control Window.Animate. AnimActivate and AnimHide are
// mutually exclusive.
type AnimationFlags uint32

const (
	AnimHorPositive AnimationFlags = winapi.AW_HOR_POSITIVE
	AnimHorNegative AnimationFlags = winapi.AW_HOR_NEGATIVE
	AnimVerPositive AnimationFlags = winapi.AW_VER_POSITIVE
	AnimVerNegative AnimationFlags = winapi.AW_VER_NEGATIVE
	AnimCenter      AnimationFlags = winapi.AW_CENTER
	AnimHide        AnimationFlags = winapi.AW_HIDE
	AnimActivate    AnimationFlags = winapi.AW_ACTIVATE
	AnimSlide       AnimationFlags = winapi.AW_SLIDE
	AnimBlend       AnimationFlags = winapi.AW_BLEND
)

// ZOrder anchors a window's position in the stacking order for SetPos.
type ZOrder uintptr

const (
	ZOrderTop       ZOrder = ZOrder(winapi.HWND_TOP)
	ZOrderBottom    ZOrder = ZOrder(winapi.HWND_BOTTOM)
	ZOrderTopMost   ZOrder = ZOrder(winapi.HWND_TOPMOST)
	ZOrderNoTopMost ZOrder = ZOrder(winapi.HWND_NOTOPMOST)
)

// SetPos flags, passed through to SetWindowPos unchanged.
const (
	PosNoSize     uint32 = winapi.SWP_NOSIZE
	PosNoMove     uint32 = winapi.SWP_NOMOVE
	PosNoZOrder   uint32 = winapi.SWP_NOZORDER
	PosNoActivate uint32 = winapi.SWP_NOACTIVATE
	PosShowWindow uint32 = winapi.SWP_SHOWWINDOW
	PosHideWindow uint32 = winapi.SWP_HIDEWINDOW
)
