package x11

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/xrect"
)

// ClientWindows lists top-level windows. The window manager's
// _NET_CLIENT_LIST is preferred; without it the viewable children of the
// root window are used.
func (c *Connection) ClientWindows() ([]xproto.Window, error) {
	clients, err := ewmh.ClientListGet(c.XUtil)
	if err == nil {
		return clients, nil
	}

	tree, treeErr := xproto.QueryTree(c.XUtil.Conn(), c.Root).Reply()
	if treeErr != nil {
		return nil, fmt.Errorf("client list: %v; query tree: %w", err, treeErr)
	}

	windows := make([]xproto.Window, 0, len(tree.Children))
	for _, child := range tree.Children {
		attrs, err := xproto.GetWindowAttributes(c.XUtil.Conn(), child).Reply()
		if err != nil || attrs.MapState != xproto.MapStateViewable {
			continue
		}
		windows = append(windows, child)
	}
	return windows, nil
}

// WindowGeometry returns the window's size and its position translated to
// root coordinates.
func (c *Connection) WindowGeometry(windowID xproto.Window) (xrect.Rect, error) {
	geom, err := xproto.GetGeometry(c.XUtil.Conn(), xproto.Drawable(windowID)).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to get geometry of 0x%x: %w", windowID, err)
	}

	translate, err := xproto.TranslateCoordinates(
		c.XUtil.Conn(),
		windowID,
		c.Root,
		0, 0,
	).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to translate coordinates of 0x%x: %w", windowID, err)
	}

	return xrect.New(int(translate.DstX), int(translate.DstY), int(geom.Width), int(geom.Height)), nil
}

// WindowClass returns the WM_CLASS class name, or "" if unset.
func (c *Connection) WindowClass(windowID xproto.Window) string {
	wmClass, err := icccm.WmClassGet(c.XUtil, windowID)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(wmClass.Class)
}
