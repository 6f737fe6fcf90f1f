package x11

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/xwindow"
)

const netActiveWindow = "_NET_ACTIVE_WINDOW"

// ErrNoFocus is returned when input focus is on the root window or nowhere.
var ErrNoFocus = errors.New("no window has input focus")

// SupportsActiveWindow reports whether the window manager lists
// _NET_ACTIVE_WINDOW in _NET_SUPPORTED.
func (c *Connection) SupportsActiveWindow() bool {
	supported, err := ewmh.SupportedGet(c.XUtil)
	if err != nil {
		return false
	}
	return hasAtom(supported, netActiveWindow)
}

func hasAtom(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

// FocusedWindow returns the top-level window that holds input focus. With
// useEWMH set, the window manager's _NET_ACTIVE_WINDOW is preferred;
// otherwise the input-focus window is walked up to the child of root.
func (c *Connection) FocusedWindow(useEWMH bool) (xproto.Window, error) {
	focus, err := xproto.GetInputFocus(c.XUtil.Conn()).Reply()
	if err != nil {
		return 0, fmt.Errorf("failed to query input focus: %w", err)
	}
	if focus.Focus == c.Root || focus.Focus == xproto.WindowNone {
		return 0, ErrNoFocus
	}

	if useEWMH {
		if active, err := ewmh.ActiveWindowGet(c.XUtil); err == nil && active != xproto.WindowNone {
			return active, nil
		}
	}

	return c.topLevel(focus.Focus)
}

// topLevel walks up the window tree until it reaches a child of root.
func (c *Connection) topLevel(windowID xproto.Window) (xproto.Window, error) {
	win := xwindow.New(c.XUtil, windowID)
	for {
		parent, err := win.Parent()
		if err != nil {
			return 0, err
		}
		if parent.Id == c.Root {
			return win.Id, nil
		}
		if parent.Id == xproto.WindowNone {
			return 0, fmt.Errorf("window 0x%x is not attached to the root window", windowID)
		}
		win = parent
	}
}

// FocusWindow activates and raises a window using _NET_ACTIVE_WINDOW.
// Sends a client message to the root window per EWMH spec.
// We build the message manually because the xgbutil ewmh helpers panic on
// this library version.
func (c *Connection) FocusWindow(windowID xproto.Window) error {
	atomReply, err := xproto.InternAtom(c.XUtil.Conn(), false,
		uint16(len(netActiveWindow)), netActiveWindow).Reply()
	if err != nil {
		return fmt.Errorf("failed to intern %s: %w", netActiveWindow, err)
	}

	const sourceIndication = 2 // pager/direct action
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: windowID,
		Type:   atomReply.Atom,
		Data:   xproto.ClientMessageDataUnionData32New([]uint32{sourceIndication, 0, 0, 0, 0}),
	}

	return xproto.SendEventChecked(
		c.XUtil.Conn(),
		false,
		c.Root,
		xproto.EventMaskSubstructureRedirect|xproto.EventMaskSubstructureNotify,
		string(ev.Bytes()),
	).Check()
}

// SetInputFocus assigns input focus directly, reverting to the pointer root.
func (c *Connection) SetInputFocus(windowID xproto.Window) error {
	return xproto.SetInputFocusChecked(
		c.XUtil.Conn(),
		xproto.InputFocusPointerRoot,
		windowID,
		xproto.TimeCurrentTime,
	).Check()
}
