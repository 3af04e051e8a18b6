package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(10, 5)

	if s.Width() != 10 || s.Height() != 5 {
		t.Fatalf("size = %dx%d, want 10x5", s.Width(), s.Height())
	}
	for y := 0; y < 5; y++ {
		if s.Row(y) != strings.Repeat(" ", 10) {
			t.Errorf("row %d not blank: %q", y, s.Row(y))
		}
	}
}

func TestScreenSetOutOfBounds(t *testing.T) {
	s := NewScreen(4, 4)

	// Must not panic
	s.Set(-1, 0, 'X')
	s.Set(0, -1, 'X')
	s.Set(4, 0, 'X')
	s.SetColor(0, 4, 'X', ColorRed)

	if got := s.Get(10, 10); got != ' ' {
		t.Errorf("Get out of bounds = %q, want space", got)
	}
}

func TestScreenSetColor(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetColor(1, 2, '*', ColorYellow)

	c := s.GetCell(1, 2)
	if c.Rune != '*' || c.Color != ColorYellow {
		t.Errorf("GetCell = %+v, want '*' yellow", c)
	}

	// Set keeps the colour
	s.Set(1, 2, '+')
	if c := s.GetCell(1, 2); c.Color != ColorYellow {
		t.Errorf("Set changed colour to %v", c.Color)
	}

	s.Clear()
	if c := s.GetCell(1, 2); c.Rune != ' ' || c.Color != ColorDefault {
		t.Errorf("Clear left %+v", c)
	}
}

func TestScreenDrawLine(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		cells          [][2]int
	}{
		{"horizontal", 0, 1, 3, 1, [][2]int{{0, 1}, {1, 1}, {2, 1}, {3, 1}}},
		{"vertical", 2, 0, 2, 2, [][2]int{{2, 0}, {2, 1}, {2, 2}}},
		{"diagonal", 0, 0, 3, 3, [][2]int{{0, 0}, {1, 1}, {2, 2}, {3, 3}}},
		{"reversed", 3, 0, 0, 0, [][2]int{{0, 0}, {1, 0}, {2, 0}, {3, 0}}},
		{"single point", 1, 1, 1, 1, [][2]int{{1, 1}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(5, 5)
			s.DrawLine(tc.x0, tc.y0, tc.x1, tc.y1, '#', ColorWhite)

			count := 0
			for y := 0; y < 5; y++ {
				count += strings.Count(s.Row(y), "#")
			}
			if count != len(tc.cells) {
				t.Errorf("drew %d cells, want %d", count, len(tc.cells))
			}
			for _, c := range tc.cells {
				if s.Get(c[0], c[1]) != '#' {
					t.Errorf("cell (%d,%d) not drawn", c[0], c[1])
				}
			}
		})
	}
}

func TestScreenDrawPolyline(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawPolyline([]Vec2{V(0, 4), V(4.4, 0), V(9, 0)}, '.', ColorWhite)

	if s.Get(0, 4) != '.' || s.Get(4, 0) != '.' || s.Get(9, 0) != '.' {
		t.Errorf("polyline endpoints missing:\n%s", s.String())
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 0, "abcd")

	s.Resize(2, 3)
	if s.Width() != 2 || s.Height() != 3 {
		t.Fatalf("size = %dx%d after resize", s.Width(), s.Height())
	}
	if s.Row(0) != "ab" {
		t.Errorf("row 0 = %q, want %q", s.Row(0), "ab")
	}
	if s.Row(2) != "  " {
		t.Errorf("new row = %q, want blank", s.Row(2))
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "hi")
	s.DrawTextColor(0, 1, "yo!", ColorGreen)

	want := "hi \nyo!"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
