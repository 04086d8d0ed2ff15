package winapi

// POINT is the win32 POINT structure.
type POINT struct {
	X int32
	Y int32
}

// RECT is the win32 RECT structure. Coordinates are screen or client
// relative depending on the call that filled it; no ordering of Left/Right
// or Top/Bottom is guaranteed.
type RECT struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}

// WINDOWPLACEMENT is the win32 WINDOWPLACEMENT structure. Length must be set
// to the struct size before passing it to GetWindowPlacement.
type WINDOWPLACEMENT struct {
	Length           uint32
	Flags            uint32
	ShowCmd          uint32
	PtMinPosition    POINT
	PtMaxPosition    POINT
	RcNormalPosition RECT
	RcDevice         RECT
}
