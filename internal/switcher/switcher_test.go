package switcher

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/1broseidon/focusdir/internal/navigation"
	"github.com/1broseidon/focusdir/internal/platform"
)

type fakeBackend struct {
	focused     platform.Window
	focusErr    error
	monitor     platform.Rect
	windows     []platform.Window
	windowsErr  error
	activateErr error

	monitorQueries []platform.Window
	activated      []platform.WindowID
}

func (f *fakeBackend) FocusedWindow() (platform.Window, error) {
	return f.focused, f.focusErr
}

func (f *fakeBackend) MonitorContaining(w platform.Window) platform.Rect {
	f.monitorQueries = append(f.monitorQueries, w)
	return f.monitor
}

func (f *fakeBackend) Windows() ([]platform.Window, error) {
	return f.windows, f.windowsErr
}

func (f *fakeBackend) Activate(id platform.WindowID) error {
	f.activated = append(f.activated, id)
	return f.activateErr
}

func (f *fakeBackend) Describe(id platform.WindowID) string {
	return fmt.Sprintf("0x%x", id)
}

func newFake() *fakeBackend {
	focused := platform.Window{ID: 1, Bounds: platform.Rect{X: 500, Y: 500, Width: 100, Height: 100}}
	return &fakeBackend{
		focused: focused,
		monitor: platform.Rect{X: 0, Y: 0, Width: 1920, Height: 1080},
		windows: []platform.Window{
			focused,
			{ID: 2, Bounds: platform.Rect{X: 100, Y: 500, Width: 100, Height: 100}},
			{ID: 3, Bounds: platform.Rect{X: 900, Y: 500, Width: 100, Height: 100}},
			{ID: 4, Bounds: platform.Rect{X: 2000, Y: 500, Width: 100, Height: 100}},
		},
	}
}

func TestFocus_ActivatesTarget(t *testing.T) {
	tests := []struct {
		dir      navigation.Direction
		expected platform.WindowID
	}{
		{navigation.DirLeft, 2},
		{navigation.DirRight, 3},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			fake := newFake()
			target, found, err := New(fake, nil).Focus(tt.dir)
			if err != nil {
				t.Fatalf("Focus(%v) error: %v", tt.dir, err)
			}
			if !found || target.ID != tt.expected {
				t.Fatalf("Focus(%v) = %d, %v; want %d", tt.dir, target.ID, found, tt.expected)
			}
			if !reflect.DeepEqual(fake.activated, []platform.WindowID{tt.expected}) {
				t.Fatalf("activated = %v, want [%d]", fake.activated, tt.expected)
			}
			if len(fake.monitorQueries) != 1 || fake.monitorQueries[0].ID != fake.focused.ID {
				t.Fatalf("monitor queried with %v, want focused window once", fake.monitorQueries)
			}
		})
	}
}

func TestFocus_NoTargetIsNotAnError(t *testing.T) {
	fake := newFake()
	_, found, err := New(fake, nil).Focus(navigation.DirUp)
	if err != nil {
		t.Fatalf("Focus(up) error: %v", err)
	}
	if found {
		t.Fatal("expected no target above the focused window")
	}
	if len(fake.activated) != 0 {
		t.Fatalf("activated = %v, want none", fake.activated)
	}
}

func TestFocus_PropagatesCollaboratorFailures(t *testing.T) {
	t.Run("focus", func(t *testing.T) {
		fake := newFake()
		fake.focusErr = fmt.Errorf("%w: no window has input focus", platform.ErrFocusResolution)
		_, _, err := New(fake, nil).Focus(navigation.DirLeft)
		if !errors.Is(err, platform.ErrFocusResolution) {
			t.Fatalf("error = %v, want ErrFocusResolution", err)
		}
		if len(fake.activated) != 0 {
			t.Fatalf("activated = %v, want none", fake.activated)
		}
	})

	t.Run("enumeration", func(t *testing.T) {
		fake := newFake()
		fake.windowsErr = fmt.Errorf("%w: query tree failed", platform.ErrEnumeration)
		_, _, err := New(fake, nil).Focus(navigation.DirLeft)
		if !errors.Is(err, platform.ErrEnumeration) {
			t.Fatalf("error = %v, want ErrEnumeration", err)
		}
		if len(fake.activated) != 0 {
			t.Fatalf("activated = %v, want none", fake.activated)
		}
	})

	t.Run("activation", func(t *testing.T) {
		fake := newFake()
		sendErr := errors.New("BadWindow")
		fake.activateErr = sendErr
		target, found, err := New(fake, nil).Focus(navigation.DirRight)
		if !errors.Is(err, sendErr) {
			t.Fatalf("error = %v, want %v", err, sendErr)
		}
		if !found || target.ID != 3 {
			t.Fatalf("target = %d, %v; want 3", target.ID, found)
		}
	})
}

func TestSnapshot(t *testing.T) {
	fake := newFake()
	ctx, candidates, err := New(fake, nil).Snapshot(navigation.DirDown)
	if err != nil {
		t.Fatalf("Snapshot error: %v", err)
	}
	want := navigation.Context{Focused: fake.focused, Monitor: fake.monitor, Direction: navigation.DirDown}
	if ctx != want {
		t.Fatalf("ctx = %+v, want %+v", ctx, want)
	}
	if len(candidates) != len(fake.windows) {
		t.Fatalf("candidates = %d, want %d", len(candidates), len(fake.windows))
	}
}
