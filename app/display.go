package app

import (
	"image/color"

	"sparkcalc/hal"

	"tinygo.org/x/drivers"
)

var _ drivers.Displayer = (*fbDisplay)(nil)

// fbDisplay adapts an RGB565 framebuffer to the tinyfont drawing surface.
type fbDisplay struct {
	fb hal.Framebuffer
}

func newFBDisplay(fb hal.Framebuffer) *fbDisplay {
	return &fbDisplay{fb: fb}
}

func (d *fbDisplay) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *fbDisplay) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	buf := d.fb.Buffer()
	if buf == nil {
		return
	}

	ix := int(x)
	iy := int(y)
	if ix < 0 || ix >= d.fb.Width() || iy < 0 || iy >= d.fb.Height() {
		return
	}

	pixel := rgb565From888(c.R, c.G, c.B)
	off := iy*d.fb.StrideBytes() + ix*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

func (d *fbDisplay) Display() error {
	if d.fb == nil {
		return nil
	}
	return d.fb.Present()
}

func (d *fbDisplay) fillRect(r rect, c color.RGBA) {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	buf := d.fb.Buffer()
	if buf == nil {
		return
	}

	w := d.fb.Width()
	h := d.fb.Height()
	x0 := clampInt(r.x, 0, w)
	y0 := clampInt(r.y, 0, h)
	x1 := clampInt(r.x+r.w, 0, w)
	y1 := clampInt(r.y+r.h, 0, h)
	if x0 >= x1 || y0 >= y1 {
		return
	}

	pixel := rgb565From888(c.R, c.G, c.B)
	lo := byte(pixel)
	hi := byte(pixel >> 8)

	stride := d.fb.StrideBytes()
	for py := y0; py < y1; py++ {
		row := py * stride
		for px := x0; px < x1; px++ {
			off := row + px*2
			if off+1 >= len(buf) {
				continue
			}
			buf[off] = lo
			buf[off+1] = hi
		}
	}
}

func (d *fbDisplay) outlineRect(r rect, c color.RGBA) {
	d.fillRect(rect{r.x, r.y, r.w, 1}, c)
	d.fillRect(rect{r.x, r.y + r.h - 1, r.w, 1}, c)
	d.fillRect(rect{r.x, r.y, 1, r.h}, c)
	d.fillRect(rect{r.x + r.w - 1, r.y, 1, r.h}, c)
}

func rgb565From888(r, g, b uint8) uint16 {
	return (uint16(r)&0xF8)<<8 | (uint16(g)&0xFC)<<3 | uint16(b)>>3
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
