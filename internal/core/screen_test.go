package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("New screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(5, 5, Cell{Rune: 'X', Color: ColorCyan})
	if got := s.GetCell(5, 5); got.Rune != 'X' || got.Color != ColorCyan {
		t.Errorf("GetCell(5, 5) = %+v, expected cyan 'X'", got)
	}
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds writes are dropped
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' || s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(s.Bounds(), Cell{Rune: 'X', Color: ColorRed})

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if c := s.GetCell(x, y); c != (Cell{Rune: ' '}) {
				t.Errorf("After Clear, expected blank at (%d, %d), got %+v", x, y, c)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 2)
	s.DrawTextColor(7, 0, "Score", ColorYellow)

	if s.Row(0) != "       Sco" {
		t.Errorf("Row(0) = %q, expected clipped text", s.Row(0))
	}
	if s.GetCell(8, 0).Color != ColorYellow {
		t.Error("DrawTextColor did not apply color")
	}

	// Multi-byte runes advance one column each.
	s.DrawText(0, 1, "██·")
	if s.Get(2, 1) != '·' {
		t.Errorf("Get(2, 1) = %q, expected '·'", s.Get(2, 1))
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawTextCentered(s.Bounds(), 1, "GAME OVER", ColorRed)

	if !strings.HasPrefix(s.Row(1), "     GAME OVER") {
		t.Errorf("Row(1) = %q, expected centered text", s.Row(1))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(5, 4)
	s.DrawBox(NewRect(0, 0, 5, 4), ColorGray)

	expected := "┌───┐\n│   │\n│   │\n└───┘"
	if s.String() != expected {
		t.Errorf("DrawBox output:\n%s\nexpected:\n%s", s.String(), expected)
	}
	if s.GetCell(0, 0).Color != ColorGray {
		t.Error("DrawBox did not apply color")
	}

	// Degenerate boxes draw nothing.
	s.Clear()
	s.DrawBox(NewRect(1, 1, 1, 3), ColorGray)
	if strings.TrimSpace(s.String()) != "" {
		t.Errorf("degenerate box drew %q", s.String())
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(5, 5)
	s.SetCell(2, 2, Cell{Rune: 'X', Color: ColorRed})
	s.Set(4, 4, 'Y')

	s.Resize(10, 3)

	if s.Width() != 10 || s.Height() != 3 {
		t.Fatalf("after Resize size = %dx%d, expected 10x3", s.Width(), s.Height())
	}
	if c := s.GetCell(2, 2); c.Rune != 'X' || c.Color != ColorRed {
		t.Errorf("Resize should keep content, got %+v", c)
	}
	if s.Get(7, 1) != ' ' {
		t.Error("new area should be blank")
	}
}

func TestScreenSpans(t *testing.T) {
	s := NewScreen(6, 1)
	s.DrawTextColor(1, 0, "ab", ColorCyan)
	s.DrawTextColor(3, 0, "c", ColorRed)

	spans := s.Spans(0)
	expected := []Span{
		{Text: " ", Color: ColorDefault},
		{Text: "ab", Color: ColorCyan},
		{Text: "c", Color: ColorRed},
		{Text: "  ", Color: ColorDefault},
	}
	if len(spans) != len(expected) {
		t.Fatalf("Spans(0) = %+v, expected %+v", spans, expected)
	}
	for i := range expected {
		if spans[i] != expected[i] {
			t.Errorf("Spans(0)[%d] = %+v, expected %+v", i, spans[i], expected[i])
		}
	}

	if s.Spans(5) != nil {
		t.Error("Spans out of range should be nil")
	}
}
