package graphics

import "testing"

func newTestCanvas(w, h int) (*Canvas, []uint32) {
	buf := make([]uint32, w*h)
	return NewCanvas(buf, w, h), buf
}

func TestSetPixelBounds(t *testing.T) {
	c, buf := newTestCanvas(4, 4)

	c.SetPixel(1, 2, RGB(10, 20, 30))
	if got := Color(buf[2*4+1]); got != RGB(10, 20, 30) {
		t.Errorf("pixel (1,2) = %06x, want %06x", got, RGB(10, 20, 30))
	}

	// Out-of-bounds writes are ignored, not panics.
	c.SetPixel(-1, 0, ColorWhite)
	c.SetPixel(4, 0, ColorWhite)
	c.SetPixel(0, 4, ColorWhite)
	for i, px := range buf {
		if i == 2*4+1 {
			continue
		}
		if px != 0 {
			t.Fatalf("unexpected write at index %d", i)
		}
	}
}

func TestClipGatesWrites(t *testing.T) {
	c, buf := newTestCanvas(8, 8)
	clip := Rect{X: 2, Y: 2, Width: 3, Height: 3}
	c.SetClip(&clip)

	c.FillRect(Rect{Width: 8, Height: 8}, ColorWhite)

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			inside := clip.Contains(x, y)
			got := buf[y*8+x] != 0
			if got != inside {
				t.Errorf("pixel (%d,%d): written=%v, inside clip=%v", x, y, got, inside)
			}
		}
	}

	c.SetClip(nil)
	c.SetPixel(0, 0, ColorWhite)
	if buf[0] == 0 {
		t.Error("write after clearing clip was dropped")
	}
}

func TestClearIgnoresClip(t *testing.T) {
	c, buf := newTestCanvas(4, 4)
	clip := Rect{X: 1, Y: 1, Width: 1, Height: 1}
	c.SetClip(&clip)

	c.Clear(ColorGray)
	for i, px := range buf {
		if Color(px) != ColorGray {
			t.Fatalf("pixel %d not cleared: %06x", i, px)
		}
	}
}

func TestDrawImageWithClip(t *testing.T) {
	c, buf := newTestCanvas(6, 6)
	img := NewImageFilled(4, 4, RGB(1, 2, 3))

	clip := Rect{X: 0, Y: 0, Width: 3, Height: 3}
	c.DrawImage(img, 1, 1, &clip)

	if Color(buf[1*6+1]) != RGB(1, 2, 3) {
		t.Error("pixel inside clip not drawn")
	}
	if buf[3*6+3] != 0 {
		t.Error("pixel outside clip was drawn")
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 20, Height: 20}
	tests := []struct {
		x, y int
		want bool
	}{
		{10, 10, true},
		{29, 29, true},
		{30, 30, false}, // exclusive edges
		{9, 10, false},
		{15, 35, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRectIntersect(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	b := Rect{X: 5, Y: 5, Width: 10, Height: 10}
	got := a.Intersect(b)
	want := Rect{X: 5, Y: 5, Width: 5, Height: 5}
	if got != want {
		t.Errorf("Intersect = %+v, want %+v", got, want)
	}

	c := Rect{X: 20, Y: 20, Width: 5, Height: 5}
	if !a.Intersect(c).IsEmpty() {
		t.Error("disjoint rects should intersect to empty")
	}
}
