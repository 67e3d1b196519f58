// Package image1bit provides a 1-bit image format laid out for the SSD1306 display.
//
// Pixels are stored in vertical pages of 8 rows, one byte per column per page, with
// the least significant bit at the top. Byte 0 is reserved for the transport.
package image1bit

import (
	"errors"
	"image"
	"image/color"
)

// Bit represents a monochrome pixel: true is lit, false is dark.
type Bit bool

const (
	On  = Bit(true)
	Off = Bit(false)
)

// RGBA converts the Bit to opaque white or black.
func (c Bit) RGBA() (r, g, b, a uint32) {
	if c {
		return 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF
	}
	return 0, 0, 0, 0xFFFF
}

func (c Bit) String() string {
	if c {
		return "On"
	}
	return "Off"
}

// toBit converts any color.Color to Bit.
func toBit(c color.Color) color.Color {
	if b, ok := c.(Bit); ok {
		return b
	}
	r, g, b, _ := c.RGBA()
	// Standard grayscale conversion: 0.299R + 0.587G + 0.114B
	y := (299*r + 587*g + 114*b + 500) / 1000
	return Bit(y >= 0x8000)
}

// BitModel converts colors to Bit.
var BitModel = color.ModelFunc(toBit)

// BufferSize returns the number of bytes needed for a width x height framebuffer,
// header byte included.
func BufferSize(width, height int) int {
	return 1 + width*(height/8)
}

// Framebuffer is a page-packed 1-bit image.
type Framebuffer struct {
	Pix  []byte          // Header byte followed by W*(H/8) page bytes
	Rect image.Rectangle // Image bounds, always anchored at (0, 0)
}

// New allocates a Framebuffer of the given size.
func New(width, height int) (*Framebuffer, error) {
	if err := checkSize(width, height); err != nil {
		return nil, err
	}
	return &Framebuffer{
		Pix:  make([]byte, BufferSize(width, height)),
		Rect: image.Rect(0, 0, width, height),
	}, nil
}

// Wrap returns a Framebuffer drawing into buf, which stays owned by the caller.
// buf must hold at least BufferSize(width, height) bytes; extra bytes are never touched.
func Wrap(buf []byte, width, height int) (*Framebuffer, error) {
	if err := checkSize(width, height); err != nil {
		return nil, err
	}
	n := BufferSize(width, height)
	if len(buf) < n {
		return nil, errors.New("image1bit: buffer too small")
	}
	return &Framebuffer{
		Pix:  buf[:n:n],
		Rect: image.Rect(0, 0, width, height),
	}, nil
}

func checkSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return errors.New("image1bit: width and height must be positive")
	}
	if height%8 != 0 {
		return errors.New("image1bit: height must be a multiple of 8")
	}
	return nil
}

// ColorModel returns the color model of the image.
func (p *Framebuffer) ColorModel() color.Model {
	return BitModel
}

// Bounds returns the image bounds.
func (p *Framebuffer) Bounds() image.Rectangle {
	return p.Rect
}

// Width returns the width in pixels.
func (p *Framebuffer) Width() int {
	return p.Rect.Dx()
}

// Height returns the height in pixels.
func (p *Framebuffer) Height() int {
	return p.Rect.Dy()
}

// Pages returns the number of 8-pixel pages.
func (p *Framebuffer) Pages() int {
	return p.Rect.Dy() / 8
}

// Bytes returns the whole buffer, header byte included.
func (p *Framebuffer) Bytes() []byte {
	return p.Pix
}

// PixelData returns the buffer without the header byte.
func (p *Framebuffer) PixelData() []byte {
	return p.Pix[1:]
}

// PageOffset returns the buffer index of column x in the given page.
func (p *Framebuffer) PageOffset(x, page int) int {
	return 1 + x + page*p.Rect.Dx()
}

// PixOffset returns the buffer index and bit mask of pixel (x, y).
// Every pixel access in this module goes through it.
// The caller must ensure (x, y) is inside the bounds.
func (p *Framebuffer) PixOffset(x, y int) (index int, mask byte) {
	page := y / 8
	index = p.PageOffset(x, page)
	mask = 1 << uint(y-page*8)
	return
}

func (p *Framebuffer) in(x, y int) bool {
	return x >= 0 && y >= 0 && x < p.Rect.Dx() && y < p.Rect.Dy()
}

// Clear zeroes all pixel data. The header byte is left untouched.
func (p *Framebuffer) Clear() {
	clear(p.Pix[1:])
}

// SetPixel lights pixel (x, y). Drawing only ever adds lit pixels.
// Out of bounds coordinates are ignored.
func (p *Framebuffer) SetPixel(x, y int) {
	if !p.in(x, y) {
		return
	}
	i, m := p.PixOffset(x, y)
	p.Pix[i] |= m
}

// BitAt reports whether pixel (x, y) is lit. Out of bounds reads return false.
func (p *Framebuffer) BitAt(x, y int) bool {
	if !p.in(x, y) {
		return false
	}
	i, m := p.PixOffset(x, y)
	return p.Pix[i]&m != 0
}

// At returns the color of the pixel at (x, y).
// It implements the image.Image interface.
func (p *Framebuffer) At(x, y int) color.Color {
	return Bit(p.BitAt(x, y))
}

// Set sets or clears the pixel at (x, y) depending on c.
// Unlike SetPixel it can turn a pixel off.
func (p *Framebuffer) Set(x, y int, c color.Color) {
	if !p.in(x, y) {
		return
	}
	i, m := p.PixOffset(x, y)
	if BitModel.Convert(c).(Bit) {
		p.Pix[i] |= m
	} else {
		p.Pix[i] &^= m
	}
}

// SetByte overwrites the 8 pixels of column x in the given page.
// Out of bounds addresses are ignored.
func (p *Framebuffer) SetByte(x, page int, b byte) {
	if x < 0 || x >= p.Rect.Dx() || page < 0 || page >= p.Pages() {
		return
	}
	p.Pix[p.PageOffset(x, page)] = b
}

// ByteAt returns the 8 pixels of column x in the given page.
func (p *Framebuffer) ByteAt(x, page int) byte {
	if x < 0 || x >= p.Rect.Dx() || page < 0 || page >= p.Pages() {
		return 0
	}
	return p.Pix[p.PageOffset(x, page)]
}
