package canvas

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
)

/**
 * @brief An off-screen, programmatically rendered pixel surface.
 *
 * A Buffer is the dynamic counterpart to a cache-resident texture: sprites
 * can bind to it directly and its contents may be redrawn between frames.
 * Pixel data is RGBA, 4 bytes per pixel.
 */
type Buffer struct {
	rgba       *image.RGBA
	width      uint32
	height     uint32
	generation uint32
}

// NewBuffer creates an off-screen buffer with the given dimensions.
func NewBuffer(width, height uint32) *Buffer {
	return &Buffer{
		rgba:   image.NewRGBA(image.Rect(0, 0, int(width), int(height))),
		width:  width,
		height: height,
	}
}

// Size reports the pixel dimensions of the buffer.
func (b *Buffer) Size() (uint32, uint32) {
	return b.width, b.height
}

func (b *Buffer) Width() uint32 {
	return b.width
}

func (b *Buffer) Height() uint32 {
	return b.height
}

// Generation is incremented on every content or dimension change, so
// consumers can detect stale copies of the surface.
func (b *Buffer) Generation() uint32 {
	return b.generation
}

// Image exposes the drawable surface. The buffer retains ownership.
func (b *Buffer) Image() *image.RGBA {
	return b.rgba
}

// Clear fills the entire buffer with the given color.
func (b *Buffer) Clear(c color.Color) {
	r, g, bl, a := c.RGBA()
	px := [4]uint8{uint8(r >> 8), uint8(g >> 8), uint8(bl >> 8), uint8(a >> 8)}
	for i := 0; i < len(b.rgba.Pix); i += 4 {
		b.rgba.Pix[i+0] = px[0]
		b.rgba.Pix[i+1] = px[1]
		b.rgba.Pix[i+2] = px[2]
		b.rgba.Pix[i+3] = px[3]
	}
	b.generation++
}

// SetPixel sets the color of a single pixel. Out-of-range coordinates are ignored.
func (b *Buffer) SetPixel(x, y int, c color.Color) {
	if x < 0 || x >= int(b.width) || y < 0 || y >= int(b.height) {
		return
	}
	b.rgba.Set(x, y, c)
	b.generation++
}

// Pixel returns the color of a single pixel.
func (b *Buffer) Pixel(x, y int) color.Color {
	if x < 0 || x >= int(b.width) || y < 0 || y >= int(b.height) {
		return color.RGBA{}
	}
	return b.rgba.At(x, y)
}

// Fill paints the given rectangle with a solid color, clipped to the buffer.
func (b *Buffer) Fill(x, y, w, h int, c color.Color) {
	r := image.Rect(x, y, x+w, y+h).Intersect(b.rgba.Bounds())
	xdraw.Draw(b.rgba, r, &image.Uniform{C: c}, image.Point{}, xdraw.Src)
	b.generation++
}

// Blit draws src scaled into the destination rectangle of the buffer.
func (b *Buffer) Blit(src image.Image, x, y, w, h int) {
	r := image.Rect(x, y, x+w, y+h)
	xdraw.ApproxBiLinear.Scale(b.rgba, r, src, src.Bounds(), xdraw.Over, nil)
	b.generation++
}

// Resize replaces the underlying surface with one of the new dimensions.
// Existing content is scaled to fit.
func (b *Buffer) Resize(width, height uint32) {
	if width == b.width && height == b.height {
		return
	}
	next := image.NewRGBA(image.Rect(0, 0, int(width), int(height)))
	xdraw.ApproxBiLinear.Scale(next, next.Bounds(), b.rgba, b.rgba.Bounds(), xdraw.Src, nil)
	b.rgba = next
	b.width = width
	b.height = height
	b.generation++
}
