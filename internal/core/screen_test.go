package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(12, 4)

	if s.Width() != 12 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, expected 12x4", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		if s.Row(y) != strings.Repeat(" ", 12) {
			t.Errorf("Row(%d) = %q, expected blanks", y, s.Row(y))
		}
	}
}

func TestScreenSetCell(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(3, 4, '@', ColorCyan)
	cell := s.GetCell(3, 4)
	if cell.Rune != '@' || cell.Color != ColorCyan {
		t.Errorf("GetCell(3, 4) = %+v, expected '@' in cyan", cell)
	}

	s.Set(1, 1, 'x')
	if s.GetCell(1, 1).Color != ColorDefault {
		t.Error("Set() should use the default colour")
	}

	// Out of bounds writes are ignored, reads are blank.
	s.SetCell(-1, 0, 'A', ColorRed)
	s.SetCell(0, 10, 'A', ColorRed)
	if s.Get(-1, 0) != ' ' || s.Get(10, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 2)

	s.DrawText(7, 0, "HELLO", ColorGreen)
	if got := s.Row(0); got != "       HEL" {
		t.Errorf("Row(0) = %q, expected clipped text", got)
	}

	s.DrawTextCentered(1, "ab", ColorDefault)
	if got := s.Row(1); got != "    ab    " {
		t.Errorf("Row(1) = %q, expected centred text", got)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawBox(NewRect(0, 0, 4, 3), ColorGray)

	expected := "┌──┐\n│  │\n└──┘"
	if got := s.String(); got != expected {
		t.Errorf("String() =\n%s\nexpected\n%s", got, expected)
	}
}

func TestScreenResizeClears(t *testing.T) {
	s := NewScreen(5, 5)
	s.Set(2, 2, '#')
	s.Resize(8, 3)

	if s.Width() != 8 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 8x3", s.Width(), s.Height())
	}
	if s.Get(2, 2) != ' ' {
		t.Error("Resize() should blank the buffer")
	}
}
