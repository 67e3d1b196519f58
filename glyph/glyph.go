// Package glyph describes bitmap fonts laid out for page-packed displays.
//
// A Table holds the bitmaps of a contiguous ASCII range. Each glyph is stored
// page-major: all columns of its top page left to right, then the next page,
// one byte per column, bit 0 at the top. Tables are built once and only read
// afterwards. Text writers keep their own copy.
package glyph

import (
	"errors"
	"fmt"
)

// Kind tells how glyph widths and offsets are found.
type Kind int

const (
	// FixedWidth fonts use CellWidth for every glyph; offsets are computed.
	FixedWidth Kind = iota
	// VariableWidth fonts carry per-glyph Widths and Offsets.
	VariableWidth
)

func (k Kind) String() string {
	switch k {
	case FixedWidth:
		return "FixedWidth"
	case VariableWidth:
		return "VariableWidth"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Table is a pre-baked bitmap font.
type Table struct {
	Kind Kind

	// First and Last bound the printable range, inclusive.
	First, Last byte

	// CellWidth is the glyph width of FixedWidth fonts, also used as space advance.
	CellWidth int
	// SpaceWidth is the space advance of VariableWidth fonts.
	SpaceWidth int
	// Separation is the number of blank columns between consecutive glyphs.
	Separation int
	// PageHeight is the glyph height in 8-pixel pages.
	PageHeight int

	// Data holds all glyph bitmaps back to back.
	Data []byte
	// Widths and Offsets are indexed by c - First (VariableWidth only).
	Widths  []uint8
	Offsets []uint16
}

// Clone returns a deep copy of t.
func (t *Table) Clone() *Table {
	c := *t
	c.Data = append([]byte(nil), t.Data...)
	c.Widths = append([]uint8(nil), t.Widths...)
	c.Offsets = append([]uint16(nil), t.Offsets...)
	return &c
}

// IsPrintable reports whether c has a glyph.
func (t *Table) IsPrintable(c byte) bool {
	return c >= t.First && c <= t.Last
}

// GlyphWidth returns the width in pixels of c's glyph. c must be printable.
func (t *Table) GlyphWidth(c byte) int {
	if t.Kind == VariableWidth {
		return int(t.Widths[c-t.First])
	}
	return t.CellWidth
}

// GlyphOffset returns the index in Data of c's first byte. c must be printable.
func (t *Table) GlyphOffset(c byte) int {
	i := int(c - t.First)
	if t.Kind == VariableWidth {
		return int(t.Offsets[i])
	}
	return i * t.CellWidth * t.PageHeight
}

// Pages returns the glyph height in pages.
func (t *Table) Pages() int {
	return t.PageHeight
}

// Space returns the cursor advance for a space character.
func (t *Table) Space() int {
	if t.Kind == VariableWidth {
		return t.SpaceWidth
	}
	return t.CellWidth
}

// Validate checks that every glyph lookup stays inside the table.
func (t *Table) Validate() error {
	if t.First > t.Last {
		return errors.New("glyph: first character after last")
	}
	if t.PageHeight < 1 {
		return errors.New("glyph: page height must be at least 1")
	}
	if t.Separation < 0 {
		return errors.New("glyph: negative separation")
	}
	n := int(t.Last-t.First) + 1
	switch t.Kind {
	case FixedWidth:
		if t.CellWidth < 1 {
			return errors.New("glyph: fixed width font needs a positive cell width")
		}
		if need := n * t.CellWidth * t.PageHeight; len(t.Data) < need {
			return fmt.Errorf("glyph: data holds %d bytes, %d glyphs need %d", len(t.Data), n, need)
		}
	case VariableWidth:
		if t.SpaceWidth < 0 {
			return errors.New("glyph: negative space width")
		}
		if len(t.Widths) < n || len(t.Offsets) < n {
			return fmt.Errorf("glyph: widths and offsets must cover %d glyphs", n)
		}
		for i := 0; i < n; i++ {
			if end := int(t.Offsets[i]) + int(t.Widths[i])*t.PageHeight; end > len(t.Data) {
				return fmt.Errorf("glyph: glyph %q ends at %d, past data length %d", rune(int(t.First)+i), end, len(t.Data))
			}
		}
	default:
		return fmt.Errorf("glyph: unknown kind %v", t.Kind)
	}
	return nil
}
