package core

import (
	"strings"
	"testing"
)

// rowOf returns row y of the uncolored screen text.
func rowOf(s *Screen, y int) string {
	return strings.Split(s.String(), "\n")[y]
}

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(12, 4)
	if s.Width() != 12 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, expected 12x4", s.Width(), s.Height())
	}
	want := strings.Repeat(strings.Repeat(" ", 12)+"\n", 3) + strings.Repeat(" ", 12)
	if s.String() != want {
		t.Errorf("new screen = %q, expected blanks", s.String())
	}
}

func TestScreenBounds(t *testing.T) {
	s := NewScreen(5, 5)
	for _, p := range [][2]int{{-1, 0}, {5, 0}, {0, -1}, {0, 5}} {
		s.SetColor(p[0], p[1], 'X', ColorRed) // must not panic
		if s.Get(p[0], p[1]) != ' ' {
			t.Errorf("Get(%d, %d) out of bounds should be a space", p[0], p[1])
		}
	}
	s.DrawText(3, 0, "clipped")
	if got := rowOf(s, 0); got != "   cl" {
		t.Errorf("row 0 = %q, expected clipped text", got)
	}
}

func TestScreenClearResetsColor(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawTextColor(0, 1, "ab", ColorCyan)
	s.Clear()
	if c := s.GetCell(0, 1); c != blankCell {
		t.Errorf("after Clear cell = %+v, expected blank", c)
	}
}

func TestScreenDrawBoxColor(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBoxColor(NewRect(0, 0, 5, 3), ColorGray)

	want := []string{"┌───┐ ", "│   │ ", "└───┘ ", "      "}
	for y, w := range want {
		if got := rowOf(s, y); got != w {
			t.Errorf("row %d = %q, expected %q", y, got, w)
		}
	}
	if s.GetCell(4, 2).Color != ColorGray {
		t.Errorf("box corner color = %v, expected gray", s.GetCell(4, 2).Color)
	}
}

func TestScreenDrawRectOverlay(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawTextColor(0, 1, "#####", ColorRed)
	s.DrawRect(NewRect(1, 0, 3, 3), ' ')

	if got := rowOf(s, 1); got != "#   #" {
		t.Errorf("row 1 = %q, expected the rect cut out", got)
	}
	if s.GetCell(2, 1).Color != ColorDefault {
		t.Error("DrawRect should reset the color it covers")
	}
}

func TestScreenResizeKeepsCells(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawTextColor(0, 0, "Match", ColorYellow)

	s.Resize(3, 2)
	if got := rowOf(s, 0); got != "Mat" {
		t.Errorf("after shrink row 0 = %q", got)
	}

	s.Resize(8, 3)
	if got := rowOf(s, 0); got != "Mat     " {
		t.Errorf("after grow row 0 = %q", got)
	}
	if s.GetCell(1, 0).Color != ColorYellow {
		t.Error("resize should keep cell colors")
	}
}

func TestScreenColors(t *testing.T) {
	s := NewScreen(10, 3)
	s.SetColor(1, 1, '●', ColorRed)
	s.DrawTextColor(3, 0, "ok", ColorGreen)

	if c := s.GetCell(1, 1); c.Rune != '●' || c.Color != ColorRed {
		t.Errorf("GetCell(1, 1) = %+v, expected red ●", c)
	}
	if c := s.GetCell(4, 0); c.Rune != 'k' || c.Color != ColorGreen {
		t.Errorf("GetCell(4, 0) = %+v, expected green k", c)
	}

	s.Set(1, 1, 'x')
	if c := s.GetCell(1, 1); c.Color != ColorDefault {
		t.Errorf("Set should reset color, got %v", c.Color)
	}

	if c := s.GetCell(-1, 0); c.Rune != ' ' || c.Color != ColorDefault {
		t.Errorf("Out of bounds GetCell should be blank, got %+v", c)
	}
}

func TestScreenDrawTextCenteredMultibyte(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextCentered(0, "★★")
	if s.Get(4, 0) != '★' || s.Get(5, 0) != '★' {
		t.Errorf("multibyte text should center by rune count, row = %q", strings.Split(s.String(), "\n")[0])
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name  string
		want  Color
		known bool
	}{
		{"red", ColorRed, true},
		{"Bright-Cyan", ColorBrightCyan, true},
		{" orange ", ColorOrange, true},
		{"grey", ColorGray, true},
		{"ultraviolet", ColorDefault, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseColor(tc.name)
			if got != tc.want || ok != tc.known {
				t.Errorf("ParseColor(%q) = %v, %v; expected %v, %v", tc.name, got, ok, tc.want, tc.known)
			}
		})
	}
}

func TestColorBright(t *testing.T) {
	if ColorBlue.Bright() != ColorBrightBlue {
		t.Errorf("Blue.Bright() = %v", ColorBlue.Bright())
	}
	if ColorOrange.Bright() != ColorOrange {
		t.Errorf("Orange.Bright() should be unchanged")
	}
}
