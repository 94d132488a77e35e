package canvas

import (
	"image"
	"image/color"
	"testing"
)

func TestNewBufferSize(t *testing.T) {
	b := NewBuffer(128, 64)

	if w, h := b.Size(); w != 128 || h != 64 {
		t.Errorf("expected (128, 64), got (%d, %d)", w, h)
	}
	if b.Width() != 128 || b.Height() != 64 {
		t.Error("Width/Height disagree with Size")
	}
	if b.Generation() != 0 {
		t.Errorf("fresh buffer should be at generation 0, got %d", b.Generation())
	}
}

func TestBufferClearAndPixel(t *testing.T) {
	b := NewBuffer(8, 8)
	red := color.RGBA{R: 255, A: 255}

	b.Clear(red)

	if got := b.Pixel(0, 0); got != red {
		t.Errorf("expected %v, got %v", red, got)
	}
	if got := b.Pixel(7, 7); got != red {
		t.Errorf("expected %v, got %v", red, got)
	}
	if b.Generation() != 1 {
		t.Errorf("clear must bump the generation, got %d", b.Generation())
	}
}

func TestBufferSetPixelBounds(t *testing.T) {
	b := NewBuffer(4, 4)
	green := color.RGBA{G: 255, A: 255}

	b.SetPixel(2, 3, green)
	if got := b.Pixel(2, 3); got != green {
		t.Errorf("expected %v, got %v", green, got)
	}

	// Out-of-range writes and reads are clipped, not panics.
	b.SetPixel(-1, 0, green)
	b.SetPixel(4, 0, green)
	if got := b.Pixel(-1, 0); got != (color.RGBA{}) {
		t.Errorf("out-of-range read should be zero, got %v", got)
	}
}

func TestBufferFillClips(t *testing.T) {
	b := NewBuffer(8, 8)
	blue := color.RGBA{B: 255, A: 255}

	b.Fill(6, 6, 10, 10, blue)

	if got := b.Pixel(7, 7); got != blue {
		t.Errorf("inside fill: expected %v, got %v", blue, got)
	}
	if got := b.Pixel(5, 5); got == blue {
		t.Error("outside fill: pixel should be untouched")
	}
}

func TestBufferBlit(t *testing.T) {
	b := NewBuffer(16, 16)
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			src.Set(x, y, white)
		}
	}

	b.Blit(src, 4, 4, 8, 8)

	if got := b.Pixel(8, 8); got != white {
		t.Errorf("blit center: expected %v, got %v", white, got)
	}
	if got := b.Pixel(0, 0); got == white {
		t.Error("blit must not touch pixels outside the destination rect")
	}
}

func TestBufferResize(t *testing.T) {
	b := NewBuffer(8, 8)
	b.Clear(color.RGBA{R: 200, A: 255})
	gen := b.Generation()

	b.Resize(16, 16)

	if w, h := b.Size(); w != 16 || h != 16 {
		t.Errorf("expected (16, 16), got (%d, %d)", w, h)
	}
	if b.Generation() != gen+1 {
		t.Error("resize must bump the generation")
	}
	// Content is scaled, so the old fill color survives.
	if got := b.Pixel(10, 10); got == (color.RGBA{}) {
		t.Error("resize should scale existing content, got an empty pixel")
	}

	// Same-size resize is a no-op.
	b.Resize(16, 16)
	if b.Generation() != gen+1 {
		t.Error("same-size resize must not bump the generation")
	}
}
