// Package text renders strings into an image1bit.Framebuffer with a glyph.Table.
//
// A Writer keeps a cursor made of a pixel column and a page row. Glyphs are
// copied byte for byte into the framebuffer, replacing whatever the cell held,
// and the cursor wraps to the next line when a glyph does not fit. When the
// last line is full the rest of the string is dropped.
package text

import (
	"errors"

	"github.com/flavioheleno/ssd1306/glyph"
	"github.com/flavioheleno/ssd1306/image1bit"
)

// Writer draws text at a cursor position.
//
// A Writer is not safe for concurrent use.
type Writer struct {
	fb   *image1bit.Framebuffer
	font *glyph.Table

	col int // Pixel column of the next glyph's left edge
	row int // Page of the next glyph's top
}

// New returns a Writer drawing into fb with a copy of font, cursor at the
// top-left corner.
func New(fb *image1bit.Framebuffer, font *glyph.Table) (*Writer, error) {
	if fb == nil || font == nil {
		return nil, errors.New("text: framebuffer and font are required")
	}
	// Later changes to the caller's table must not reach the blit
	font = font.Clone()
	if err := font.Validate(); err != nil {
		return nil, err
	}
	if font.Pages() > fb.Pages() {
		return nil, errors.New("text: font is taller than the framebuffer")
	}
	return &Writer{fb: fb, font: font}, nil
}

// Font returns the Writer's copy of the glyph table.
func (w *Writer) Font() *glyph.Table {
	return w.font
}

// Cursor returns the current column in pixels and row in pages.
func (w *Writer) Cursor() (col, row int) {
	return w.col, w.row
}

// lastRow is the lowest page a glyph can start on.
func (w *Writer) lastRow() int {
	return w.fb.Pages() - w.font.Pages()
}

// SetCursor moves the cursor, clamping it so a glyph at the cursor starts on
// the framebuffer.
func (w *Writer) SetCursor(col, row int) {
	w.col = clamp(col, 0, w.fb.Width()-1)
	w.row = clamp(row, 0, w.lastRow())
}

// NextLine moves the cursor to the start of the next line of glyphs.
// It returns false and leaves the cursor alone when there is no room left.
func (w *Writer) NextLine() bool {
	next := w.row + w.font.Pages()
	if next > w.lastRow() {
		return false
	}
	w.col = 0
	w.row = next
	return true
}

// DrawText draws s at the cursor and advances it.
//
// Spaces move the cursor by the font's space width without drawing. Characters
// outside the font are skipped. A glyph that would reach the right edge wraps
// to the next line; when the bottom line is full drawing stops and the rest of
// s is dropped. DrawText returns the number of bytes of s consumed.
func (w *Writer) DrawText(s string) int {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == ' ' {
			w.SetCursor(w.col+w.font.Space(), w.row)
			continue
		}
		if !w.font.IsPrintable(c) {
			continue
		}

		gw := w.font.GlyphWidth(c)
		if w.col+gw >= w.fb.Width() {
			if !w.NextLine() {
				return i
			}
		}
		w.blit(c, gw)

		if i+1 < len(s) && s[i+1] == ' ' {
			w.SetCursor(w.col+gw, w.row)
		} else {
			w.SetCursor(w.col+gw+w.font.Separation, w.row)
		}
	}
	return len(s)
}

// blit copies c's glyph to the cursor, one page at a time.
// Columns past the right edge are cut.
func (w *Writer) blit(c byte, gw int) {
	src := w.font.GlyphOffset(c)
	n := min(gw, w.fb.Width()-w.col)
	for p := 0; p < w.font.Pages(); p++ {
		dst := w.fb.PageOffset(w.col, w.row+p)
		copy(w.fb.Pix[dst:dst+n], w.font.Data[src:src+n])
		src += gw
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
