package core

import (
	"strings"
)

// Framebuffer is a 1 bit per pixel drawing surface. Pixels are packed in
// 8-row pages like the SSD1306 GDDRAM: byte x + (y/8)*width holds rows
// y&^7 .. y|7 of column x, least significant bit on top.
//
// Framebuffer satisfies hw.Display with a no-op Show; platforms that own a
// real output wrap it and push the pixels on Show.
type Framebuffer struct {
	width  int
	height int
	buf    []byte
}

// NewFramebuffer creates a cleared framebuffer. Height is rounded up to a
// whole page.
func NewFramebuffer(width, height int) *Framebuffer {
	pages := (height + 7) / 8
	return &Framebuffer{
		width:  width,
		height: height,
		buf:    make([]byte, width*pages),
	}
}

// Width returns the framebuffer width in pixels.
func (f *Framebuffer) Width() int {
	return f.width
}

// Height returns the framebuffer height in pixels.
func (f *Framebuffer) Height() int {
	return f.height
}

// Clear turns every pixel off.
func (f *Framebuffer) Clear() {
	f.Fill(ColorOff)
}

// Fill sets every pixel to c.
func (f *Framebuffer) Fill(c Color) {
	var v byte
	if c != ColorOff {
		v = 0xFF
	}
	for i := range f.buf {
		f.buf[i] = v
	}
}

// Set changes one pixel. Out-of-bounds coordinates are silently ignored.
func (f *Framebuffer) Set(x, y int, c Color) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	i := x + (y/8)*f.width
	bit := byte(1) << uint(y%8)
	if c != ColorOff {
		f.buf[i] |= bit
	} else {
		f.buf[i] &^= bit
	}
}

// Get reports whether the pixel at (x, y) is lit. Out of bounds reads dark.
func (f *Framebuffer) Get(x, y int) bool {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return false
	}
	return f.buf[x+(y/8)*f.width]&(byte(1)<<uint(y%8)) != 0
}

// FillRect fills a w x h rectangle with its top-left corner at (x, y).
// The part outside the framebuffer is clipped.
func (f *Framebuffer) FillRect(x, y, w, h int, c Color) {
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			f.Set(px, py, c)
		}
	}
}

// DrawText draws s with its first glyph's top-left corner at (x, y).
// Glyphs that extend beyond the framebuffer are clipped.
func (f *Framebuffer) DrawText(s string, x, y int, c Color) {
	for _, r := range s {
		g := glyphFor(r)
		for row := 0; row < GlyphH; row++ {
			bits := g[row]
			for col := 0; col < GlyphW; col++ {
				if bits&(1<<uint(GlyphW-1-col)) != 0 {
					f.Set(x+col, y+row, c)
				}
			}
		}
		x += GlyphAdvance
	}
}

// Show is a no-op; a bare framebuffer has no device to push to.
func (f *Framebuffer) Show() error {
	return nil
}

// Lit returns the number of lit pixels.
func (f *Framebuffer) Lit() int {
	n := 0
	for _, b := range f.buf {
		for ; b != 0; b &= b - 1 {
			n++
		}
	}
	return n
}

// Snapshot returns a copy of the packed page buffer.
func (f *Framebuffer) Snapshot() []byte {
	out := make([]byte, len(f.buf))
	copy(out, f.buf)
	return out
}

// CopyFrom replaces the contents with a snapshot of the same geometry.
func (f *Framebuffer) CopyFrom(snapshot []byte) {
	copy(f.buf, snapshot)
}

// String renders the framebuffer as text, '#' for lit and '.' for dark
// pixels, one line per row.
func (f *Framebuffer) String() string {
	var sb strings.Builder
	sb.Grow((f.width + 1) * f.height)

	for y := 0; y < f.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < f.width; x++ {
			if f.Get(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
