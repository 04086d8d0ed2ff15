package winkit

import "github.com/Norgate-AV/winkit/internal/winapi"

// Point is a pair of screen or client coordinates.
type Point struct {
	X int32
	Y int32
}

// Rect is a rectangle in screen or client coordinates, depending on the call
// that produced it. No edge ordering is enforced: Right may be less than Left
// in degenerate system states, and callers must tolerate that.
type Rect struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}

// Width returns Right - Left.
func (r Rect) Width() int32 { return r.Right - r.Left }

// Height returns Bottom - Top.
func (r Rect) Height() int32 { return r.Bottom - r.Top }

// WindowPlacement is a snapshot of a window's show state and its minimized,
// maximized and restored positions. It is produced by Window.Placement and
// never constructed by callers.
type WindowPlacement struct {
	ShowCmd        ShowCmd
	Flags          uint32
	MinPosition    Point
	MaxPosition    Point
	NormalPosition Rect
}

func pointFromNative(p winapi.POINT) Point {
	return Point{X: p.X, Y: p.Y}
}

func rectFromNative(r winapi.RECT) Rect {
	return Rect{Left: r.Left, Top: r.Top, Right: r.Right, Bottom: r.Bottom}
}

func (r Rect) native() winapi.RECT {
	return winapi.RECT{Left: r.Left, Top: r.Top, Right: r.Right, Bottom: r.Bottom}
}
