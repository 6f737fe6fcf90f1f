package navigation

import "github.com/1broseidon/focusdir/internal/platform"

// Closer reports whether a should replace best as the current pick when
// moving in dir away from focused. A nil best means nothing has been picked
// yet, and any a wins.
//
// The rules are checked in order and the first one that applies decides:
//
//  1. Alignment: if exactly one of a and best shares the focused window's row
//     (column for up/down), that one wins.
//  2. Non-overlap: a wins when it lies wholly between best's trailing edge
//     and the focused window. For left that is a.X > best.X+best.Width; for
//     right a.X+a.Width < best.X.
//  3. Same leading edge: when a and best start at the same coordinate on
//     the travel axis, the one whose cross-axis offset from focused is
//     smaller wins.
//
// Otherwise a does not replace best. This is an ordering of rules, not a
// distance, and it is not transitive. Overlapping candidates with different
// leading edges are left unordered, so the first one seen is kept.
func Closer(a platform.Rect, best *platform.Rect, focused platform.Rect, dir Direction) bool {
	if best == nil {
		return true
	}
	b := *best

	if !dir.Horizontal() {
		a, b, focused = transpose(a), transpose(b), transpose(focused)
	}

	aligned, bestAligned := a.Y == focused.Y, b.Y == focused.Y
	if aligned != bestAligned {
		return aligned
	}

	switch dir {
	case DirLeft, DirUp:
		if a.X > b.X+b.Width {
			return true
		}
	case DirRight, DirDown:
		if a.X+a.Width < b.X {
			return true
		}
	}

	return a.X == b.X && abs(a.Y-focused.Y) < abs(b.Y-focused.Y)
}

// transpose swaps the axes so the up/down rules can reuse the left/right ones.
func transpose(r platform.Rect) platform.Rect {
	return platform.Rect{X: r.Y, Y: r.X, Width: r.Height, Height: r.Width}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
