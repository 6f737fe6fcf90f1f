package navigation

import "github.com/1broseidon/focusdir/internal/platform"

// Eligible reports whether candidate sits on the focused window's monitor and
// on the requested side of the focused window.
//
// Only the top-left corner is tested, both for the monitor bounds (inclusive
// on all four edges) and for the side. A window whose corner lies off the
// monitor is excluded even when the rest of it overlaps the monitor.
func Eligible(candidate, focused, monitor platform.Rect, dir Direction) bool {
	if !cornerOn(candidate, monitor) {
		return false
	}

	switch dir {
	case DirLeft:
		return candidate.X < focused.X
	case DirRight:
		return candidate.X > focused.X
	case DirUp:
		return candidate.Y < focused.Y
	case DirDown:
		return candidate.Y > focused.Y
	}
	return false
}

func cornerOn(r, monitor platform.Rect) bool {
	return between(r.X, monitor.X, monitor.X+monitor.Width) &&
		between(r.Y, monitor.Y, monitor.Y+monitor.Height)
}

func between(v, lo, hi int) bool {
	return lo <= v && v <= hi
}
