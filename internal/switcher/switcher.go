// Package switcher runs one directional focus change against a window
// system backend.
package switcher

import (
	"fmt"
	"log/slog"

	"github.com/1broseidon/focusdir/internal/navigation"
	"github.com/1broseidon/focusdir/internal/platform"
)

// Switcher moves input focus to the closest window in a direction.
type Switcher struct {
	backend platform.Backend
	logger  *slog.Logger
}

// New creates a Switcher. A nil logger uses slog.Default.
func New(backend platform.Backend, logger *slog.Logger) *Switcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Switcher{backend: backend, logger: logger}
}

// Snapshot captures the focused window, its monitor and the candidate list.
// Any query failure is returned as is; none of them is retried.
func (s *Switcher) Snapshot(dir navigation.Direction) (navigation.Context, []platform.Window, error) {
	focused, err := s.backend.FocusedWindow()
	if err != nil {
		return navigation.Context{}, nil, err
	}

	ctx := navigation.Context{
		Focused:   focused,
		Monitor:   s.backend.MonitorContaining(focused),
		Direction: dir,
	}

	candidates, err := s.backend.Windows()
	if err != nil {
		return navigation.Context{}, nil, err
	}
	return ctx, candidates, nil
}

// Focus selects the closest window in dir and activates it. found is false
// when there is no window in that direction; that is not an error and
// nothing is activated.
func (s *Switcher) Focus(dir navigation.Direction) (target platform.Window, found bool, err error) {
	ctx, candidates, err := s.Snapshot(dir)
	if err != nil {
		return platform.Window{}, false, err
	}

	s.logger.Debug("selecting",
		"direction", dir.String(),
		"focused", s.backend.Describe(ctx.Focused.ID),
		"bounds", ctx.Focused.Bounds,
		"monitor", ctx.Monitor,
		"candidates", len(candidates))

	target, found = navigation.Select(candidates, ctx)
	if !found {
		s.logger.Debug("no window in direction", "direction", dir.String())
		return platform.Window{}, false, nil
	}

	s.logger.Debug("activating", "target", s.backend.Describe(target.ID), "bounds", target.Bounds)
	if err := s.backend.Activate(target.ID); err != nil {
		return target, true, fmt.Errorf("failed to activate window 0x%x: %w", target.ID, err)
	}
	return target, true, nil
}
