package navigation

import "github.com/1broseidon/focusdir/internal/platform"

// Context is the snapshot a single selection runs against. It is built once
// per invocation and never modified.
type Context struct {
	Focused   platform.Window
	Monitor   platform.Rect
	Direction Direction
}

// Eligible applies the monitor and side test for this context. The focused
// window itself is never eligible.
func (c Context) Eligible(w platform.Window) bool {
	if w.ID == c.Focused.ID {
		return false
	}
	return Eligible(w.Bounds, c.Focused.Bounds, c.Monitor, c.Direction)
}

// Select scans candidates once, in the order given, and returns the closest
// eligible window in the context's direction. ok is false when no candidate
// qualifies, which is a normal outcome.
func Select(candidates []platform.Window, ctx Context) (target platform.Window, ok bool) {
	var best *platform.Window
	for i := range candidates {
		c := &candidates[i]
		if !ctx.Eligible(*c) {
			continue
		}
		var bestBounds *platform.Rect
		if best != nil {
			bestBounds = &best.Bounds
		}
		if Closer(c.Bounds, bestBounds, ctx.Focused.Bounds, ctx.Direction) {
			best = c
		}
	}
	if best == nil {
		return platform.Window{}, false
	}
	return *best, true
}
