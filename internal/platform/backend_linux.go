//go:build linux

package platform

import (
	"fmt"
	"log/slog"

	"github.com/1broseidon/focusdir/internal/x11"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/xrect"
)

// LinuxBackend wraps an X11 connection behind the platform Backend interface.
// EWMH support and the activation strategy are resolved once, when the
// backend is created.
type LinuxBackend struct {
	conn          *x11.Connection
	logger        *slog.Logger
	ewmhSupported bool
	activation    ActivationPolicy
}

var _ Backend = (*LinuxBackend)(nil)

// NewLinuxBackend creates a Linux platform backend from an existing X11 connection.
func NewLinuxBackend(conn *x11.Connection, policy ActivationPolicy, logger *slog.Logger) *LinuxBackend {
	if logger == nil {
		logger = slog.Default()
	}
	ewmhSupported := conn.SupportsActiveWindow()
	b := &LinuxBackend{
		conn:          conn,
		logger:        logger,
		ewmhSupported: ewmhSupported,
		activation:    ResolveActivation(policy, ewmhSupported),
	}
	logger.Debug("activation strategy resolved",
		"policy", string(policy),
		"ewmh_supported", ewmhSupported,
		"strategy", string(b.activation))
	return b
}

// NewLinuxBackendFromDisplay creates a new Linux backend by opening a fresh X11 connection.
func NewLinuxBackendFromDisplay(policy ActivationPolicy, logger *slog.Logger) (*LinuxBackend, error) {
	conn, err := x11.NewConnection()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEnvironmentUnavailable, err)
	}
	return NewLinuxBackend(conn, policy, logger), nil
}

// Disconnect closes the underlying X11 connection.
func (b *LinuxBackend) Disconnect() {
	if b != nil && b.conn != nil {
		b.conn.Close()
	}
}

// Activation returns the strategy Activate uses.
func (b *LinuxBackend) Activation() ActivationPolicy {
	return b.activation
}

// FocusedWindow returns the focused top-level window and its geometry.
func (b *LinuxBackend) FocusedWindow() (Window, error) {
	wid, err := b.conn.FocusedWindow(b.ewmhSupported)
	if err != nil {
		return Window{}, fmt.Errorf("%w: %v", ErrFocusResolution, err)
	}

	geom, err := b.conn.WindowGeometry(wid)
	if err != nil {
		return Window{}, fmt.Errorf("%w: %v", ErrFocusResolution, err)
	}

	return Window{ID: WindowID(wid), Bounds: rectFromX(geom)}, nil
}

// MonitorContaining returns the monitor holding the window's center.
func (b *LinuxBackend) MonitorContaining(w Window) Rect {
	cx, cy := w.Bounds.Center()
	mon := b.conn.MonitorContaining(cx, cy)
	b.logger.Debug("monitor resolved",
		"name", mon.Name,
		"x", mon.X, "y", mon.Y,
		"width", mon.Width, "height", mon.Height)
	return Rect{X: mon.X, Y: mon.Y, Width: mon.Width, Height: mon.Height}
}

// Windows lists top-level windows with their geometry, in the order the
// window system reports them. Windows that vanish while being queried are
// skipped.
func (b *LinuxBackend) Windows() ([]Window, error) {
	clients, err := b.conn.ClientWindows()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEnumeration, err)
	}

	windows := make([]Window, 0, len(clients))
	for _, windowID := range clients {
		geom, err := b.conn.WindowGeometry(windowID)
		if err != nil {
			b.logger.Debug("skipping window", "window", fmt.Sprintf("0x%x", windowID), "err", err)
			continue
		}
		windows = append(windows, Window{ID: WindowID(windowID), Bounds: rectFromX(geom)})
	}
	return windows, nil
}

// Activate focuses a window with the resolved strategy. A failed EWMH
// request falls back to direct input focus.
func (b *LinuxBackend) Activate(id WindowID) error {
	win := xproto.Window(id)
	if b.activation == ActivationEWMH {
		err := b.conn.FocusWindow(win)
		if err == nil {
			return nil
		}
		b.logger.Warn("EWMH activation failed, assigning input focus",
			"window", fmt.Sprintf("0x%x", id), "err", err)
	}
	return b.conn.SetInputFocus(win)
}

// Describe returns the window id and its WM_CLASS.
func (b *LinuxBackend) Describe(id WindowID) string {
	if class := b.conn.WindowClass(xproto.Window(id)); class != "" {
		return fmt.Sprintf("0x%x (%s)", id, class)
	}
	return fmt.Sprintf("0x%x", id)
}

func rectFromX(r xrect.Rect) Rect {
	return Rect{X: r.X(), Y: r.Y(), Width: r.Width(), Height: r.Height()}
}
