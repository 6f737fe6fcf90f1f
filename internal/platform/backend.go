package platform

// WindowID is a platform-neutral window identifier.
type WindowID uint32

// Rect describes a rectangular region in screen coordinates. X and Y are the
// top-left corner.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Center returns the rectangle's center point, rounding toward the origin.
func (r Rect) Center() (x, y int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Contains reports whether the point lies inside r, edges included.
func (r Rect) Contains(x, y int) bool {
	return r.X <= x && x <= r.X+r.Width && r.Y <= y && y <= r.Y+r.Height
}

// Window is a top-level window and its geometry.
type Window struct {
	ID     WindowID
	Bounds Rect
}

// ActivationPolicy selects how a window is given focus.
type ActivationPolicy string

const (
	// ActivationAuto uses EWMH when the window manager advertises
	// _NET_ACTIVE_WINDOW and direct input focus otherwise.
	ActivationAuto ActivationPolicy = "auto"
	// ActivationEWMH asks the window manager to activate the window.
	ActivationEWMH ActivationPolicy = "ewmh"
	// ActivationInputFocus assigns input focus directly.
	ActivationInputFocus ActivationPolicy = "input-focus"
)

// ResolveActivation turns a configured policy into the concrete strategy to
// use for the rest of the run.
func ResolveActivation(policy ActivationPolicy, ewmhSupported bool) ActivationPolicy {
	switch policy {
	case ActivationEWMH, ActivationInputFocus:
		return policy
	}
	if ewmhSupported {
		return ActivationEWMH
	}
	return ActivationInputFocus
}

// Backend abstracts the window-system queries and the one command a
// directional focus switch needs.
type Backend interface {
	// FocusedWindow returns the top-level window holding input focus.
	FocusedWindow() (Window, error)
	// MonitorContaining returns the bounds of the monitor holding the
	// window's center, or the whole screen when none does.
	MonitorContaining(w Window) Rect
	// Windows lists top-level windows in enumeration order.
	Windows() ([]Window, error)
	// Activate requests that the window receive focus.
	Activate(id WindowID) error
	// Describe returns a short human-readable label for logs.
	Describe(id WindowID) string
}
