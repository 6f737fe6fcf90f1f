package navigation

import (
	"errors"
	"testing"
)

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in      string
		want    Direction
		wantErr bool
	}{
		{"left", DirLeft, false},
		{"Right", DirRight, false},
		{"UP", DirUp, false},
		{"dOwN", DirDown, false},
		{"", 0, true},
		{"north", 0, true},
		{" left", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDirection(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownDirection) {
					t.Fatalf("ParseDirection(%q) error = %v, want ErrUnknownDirection", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDirection(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseDirection(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDirection_StringRoundTrip(t *testing.T) {
	for _, d := range []Direction{DirLeft, DirRight, DirUp, DirDown} {
		got, err := ParseDirection(d.String())
		if err != nil || got != d {
			t.Errorf("ParseDirection(%q) = %v, %v; want %v", d.String(), got, err, d)
		}
	}
	if s := Direction(42).String(); s != "unknown" {
		t.Errorf("Direction(42).String() = %q, want unknown", s)
	}
}
