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

	// Check that it's initialized with spaces
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X', ColorEnemy)
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}
	if s.GetCell(5, 5).Color != ColorEnemy {
		t.Errorf("GetCell(5, 5).Color = %v, expected ColorEnemy", s.GetCell(5, 5).Color)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A', ColorDefault)
	s.Set(100, 0, 'A', ColorDefault)

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenFillRectScales(t *testing.T) {
	s := NewScreen(10, 5)
	s.SetWorld(100, 50) // 10x10 pixels per cell

	s.FillRect(NewRect(20, 10, 30, 10), ColorPlatform)

	for x := 2; x < 5; x++ {
		if s.Get(x, 1) != GlyphBlock {
			t.Errorf("expected block at (%d, 1), got %q", x, s.Get(x, 1))
		}
	}
	if s.Get(1, 1) != ' ' || s.Get(5, 1) != ' ' {
		t.Error("FillRect should not paint outside the covered cells")
	}
	if s.Get(2, 0) != ' ' || s.Get(2, 2) != ' ' {
		t.Error("FillRect should not paint rows outside the rect")
	}
}

func TestScreenFillRectTinyStillVisible(t *testing.T) {
	s := NewScreen(10, 5)
	s.SetWorld(100, 50)

	s.FillRect(NewRect(41, 21, 2, 2), ColorBullet)
	if s.Get(4, 2) != GlyphBlock {
		t.Errorf("tiny rect should cover its cell, got %q", s.Get(4, 2))
	}
}

func TestScreenShadeKeepsRunes(t *testing.T) {
	s := NewScreen(4, 2)
	s.Set(1, 1, 'Z', ColorText)
	s.FillRect(NewRect(0, 0, 4, 2), ColorShade)

	cell := s.GetCell(1, 1)
	if cell.Rune != 'Z' || cell.Color != ColorShade {
		t.Errorf("shade should dim without erasing, got %+v", cell)
	}
}

func TestScreenFillCircle(t *testing.T) {
	s := NewScreen(10, 10)
	s.SetWorld(100, 100)

	s.FillCircle(55, 55, 3, ColorProjectile)
	if s.Get(5, 5) != GlyphCircle {
		t.Errorf("small circle should mark its center cell, got %q", s.Get(5, 5))
	}

	// Background cut-out smaller than a cell is skipped
	s.FillCircle(55, 55, 2, ColorBackground)
	if s.GetCell(5, 5).Color != ColorProjectile {
		t.Error("tiny background circle should not erase the cell")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.SetWorld(200, 50)

	s.DrawText("Hello", 20, 10, ColorText)
	expected := "Hello"
	for i, ch := range expected {
		if s.Get(2+i, 1) != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, s.Get(2+i, 1))
		}
	}

	if s.MeasureText("Hello") != 50 {
		t.Errorf("MeasureText = %v, expected 50", s.MeasureText("Hello"))
	}

	// Text should be clipped at boundaries
	s.PutText(18, 0, "Hello", ColorText)
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.PutText(0, 0, "AAAAA", ColorDefault)
	s.PutText(0, 1, "BBBBB", ColorDefault)
	s.PutText(0, 2, "CCCCC", ColorDefault)

	result := s.String()
	expected := "AAAAA\nBBBBB\nCCCCC"

	if result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.PutText(0, 0, "Hello", ColorDefault)

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if strings.TrimSpace(s.Row(0)) != "" {
		t.Errorf("Resize should clear content, row 0 = %q", s.Row(0))
	}
}
