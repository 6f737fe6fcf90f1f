package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/randr"
	xgbxinerama "github.com/BurntSushi/xgb/xinerama"
	"github.com/BurntSushi/xgbutil/xinerama"
)

// Monitor represents a physical display
type Monitor struct {
	ID     int
	Name   string
	X      int
	Y      int
	Width  int
	Height int
}

// Contains reports whether the point lies on the monitor, edges included.
func (m Monitor) Contains(x, y int) bool {
	return m.X <= x && x <= m.X+m.Width && m.Y <= y && y <= m.Y+m.Height
}

// GetMonitors retrieves all active monitors using XRandR
func (c *Connection) GetMonitors() ([]Monitor, error) {
	if err := randr.Init(c.XUtil.Conn()); err != nil {
		return nil, fmt.Errorf("randr init failed: %w", err)
	}

	resources, err := randr.GetScreenResources(c.XUtil.Conn(), c.Root).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to get screen resources: %w", err)
	}

	var monitors []Monitor

	for i, crtc := range resources.Crtcs {
		crtcInfo, err := randr.GetCrtcInfo(c.XUtil.Conn(), crtc, resources.ConfigTimestamp).Reply()
		if err != nil {
			continue
		}

		// Skip disabled CRTCs
		if crtcInfo.Width == 0 || crtcInfo.Height == 0 || len(crtcInfo.Outputs) == 0 {
			continue
		}

		outputName := fmt.Sprintf("Monitor%d", i)
		outputInfo, err := randr.GetOutputInfo(c.XUtil.Conn(), crtcInfo.Outputs[0], resources.ConfigTimestamp).Reply()
		if err == nil {
			outputName = string(outputInfo.Name)
		}

		monitors = append(monitors, Monitor{
			ID:     i,
			Name:   outputName,
			X:      int(crtcInfo.X),
			Y:      int(crtcInfo.Y),
			Width:  int(crtcInfo.Width),
			Height: int(crtcInfo.Height),
		})
	}

	return monitors, nil
}

// GetXineramaHeads retrieves the physical heads reported by Xinerama.
func (c *Connection) GetXineramaHeads() ([]Monitor, error) {
	if err := xgbxinerama.Init(c.XUtil.Conn()); err != nil {
		return nil, fmt.Errorf("xinerama init failed: %w", err)
	}

	heads, err := xinerama.PhysicalHeads(c.XUtil)
	if err != nil {
		return nil, fmt.Errorf("failed to query xinerama screens: %w", err)
	}

	monitors := make([]Monitor, 0, len(heads))
	for i, head := range heads {
		monitors = append(monitors, Monitor{
			ID:     i,
			Name:   fmt.Sprintf("Xinerama%d", i),
			X:      head.X(),
			Y:      head.Y(),
			Width:  head.Width(),
			Height: head.Height(),
		})
	}
	return monitors, nil
}

// ScreenMonitor returns the full bounds of the default screen.
func (c *Connection) ScreenMonitor() Monitor {
	screen := c.XUtil.Screen()
	return Monitor{
		Name:   "screen",
		Width:  int(screen.WidthInPixels),
		Height: int(screen.HeightInPixels),
	}
}

// MonitorAt returns the first monitor containing the point, or nil.
func MonitorAt(monitors []Monitor, x, y int) *Monitor {
	for i := range monitors {
		if monitors[i].Contains(x, y) {
			return &monitors[i]
		}
	}
	return nil
}

// MonitorContaining returns the monitor holding the point. RandR is asked
// first, then Xinerama; if neither reports a monitor containing the point
// the whole screen is returned.
func (c *Connection) MonitorContaining(x, y int) Monitor {
	for _, source := range []func() ([]Monitor, error){c.GetMonitors, c.GetXineramaHeads} {
		monitors, err := source()
		if err != nil {
			continue
		}
		if mon := MonitorAt(monitors, x, y); mon != nil {
			return *mon
		}
	}
	return c.ScreenMonitor()
}
