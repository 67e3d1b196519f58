// Package bake converts fonts that are already loaded in memory into
// page-packed glyph tables.
//
// Two sources are supported: any golang.org/x/image/font.Face, such as
// basicfont.Face7x13, and any tinygo.org/x/tinyfont.Fonter. Each character is
// drawn into a scratch image1bit.Framebuffer, then copied out page by page.
package bake

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"

	"github.com/flavioheleno/ssd1306/glyph"
	"github.com/flavioheleno/ssd1306/image1bit"
)

// Opts selects which characters to bake.
type Opts struct {
	First, Last byte // Inclusive character range (default '!' to '~')
	Separation  int  // Blank columns between glyphs (default 0)
}

func (o *Opts) withDefaults() Opts {
	if o == nil {
		return Opts{First: '!', Last: '~'}
	}
	return *o
}

// rendered is one baked glyph before it is packed into a table.
type rendered struct {
	width int
	data  []byte
}

// FromFace bakes face into a glyph table. Faces whose characters all share the
// same advance become FixedWidth tables; the rest become VariableWidth.
func FromFace(face font.Face, opts *Opts) (*glyph.Table, error) {
	o := opts.withDefaults()
	if face == nil {
		return nil, errors.New("bake: nil face")
	}
	if o.First > o.Last {
		return nil, errors.New("bake: first character after last")
	}

	m := face.Metrics()
	ascent := m.Ascent.Ceil()
	pages := pagesFor(ascent + m.Descent.Ceil())
	if pages < 1 {
		return nil, errors.New("bake: face has no height")
	}

	glyphs := make([]rendered, 0, int(o.Last-o.First)+1)
	for c := int(o.First); c <= int(o.Last); c++ {
		adv, _ := face.GlyphAdvance(rune(c))
		w := adv.Ceil()
		if w <= 0 {
			glyphs = append(glyphs, rendered{})
			continue
		}
		fb, err := image1bit.New(w, pages*8)
		if err != nil {
			return nil, fmt.Errorf("bake: %w", err)
		}
		dr, mask, maskp, _, ok := face.Glyph(fixed.P(0, ascent), rune(c))
		if ok {
			draw.DrawMask(fb, dr, image.NewUniform(image1bit.On), image.Point{}, mask, maskp, draw.Over)
		}
		glyphs = append(glyphs, rendered{width: w, data: pack(fb)})
	}

	space, _ := face.GlyphAdvance(' ')
	return build(glyphs, o, pages, space.Ceil(), false)
}

// FromFonter bakes a tinyfont font into a VariableWidth glyph table.
func FromFonter(f tinyfont.Fonter, opts *Opts) (*glyph.Table, error) {
	o := opts.withDefaults()
	if f == nil {
		return nil, errors.New("bake: nil font")
	}
	if o.First > o.Last {
		return nil, errors.New("bake: first character after last")
	}

	// The baseline sits low enough for the tallest glyph and the page count
	// covers the deepest descender.
	ascent, descent := 0, 0
	for c := int(o.First); c <= int(o.Last); c++ {
		info := f.GetGlyph(rune(c)).Info()
		ascent = max(ascent, -int(info.YOffset))
		descent = max(descent, int(info.YOffset)+int(info.Height))
	}
	pages := pagesFor(ascent + descent)
	if pages < 1 {
		return nil, errors.New("bake: font has no height")
	}

	glyphs := make([]rendered, 0, int(o.Last-o.First)+1)
	for c := int(o.First); c <= int(o.Last); c++ {
		g := f.GetGlyph(rune(c))
		info := g.Info()
		w := max(int(info.XAdvance), int(info.XOffset)+int(info.Width))
		if w <= 0 {
			glyphs = append(glyphs, rendered{})
			continue
		}
		fb, err := image1bit.New(w, pages*8)
		if err != nil {
			return nil, fmt.Errorf("bake: %w", err)
		}
		g.Draw(canvas{fb}, 0, int16(ascent), color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})
		glyphs = append(glyphs, rendered{width: w, data: pack(fb)})
	}

	space := int(f.GetGlyph(' ').Info().XAdvance)
	return build(glyphs, o, pages, space, true)
}

func pagesFor(height int) int {
	return (height + 7) / 8
}

// pack reads fb page-major, the order glyph tables store bitmaps in.
func pack(fb *image1bit.Framebuffer) []byte {
	out := make([]byte, 0, fb.Width()*fb.Pages())
	for p := 0; p < fb.Pages(); p++ {
		for x := 0; x < fb.Width(); x++ {
			out = append(out, fb.ByteAt(x, p))
		}
	}
	return out
}

// build packs glyphs into a table. Unless variable is set, glyphs sharing one
// width produce a FixedWidth table.
func build(glyphs []rendered, o Opts, pages, space int, variable bool) (*glyph.Table, error) {
	fixedWidth := 0
	if !variable {
		fixedWidth = glyphs[0].width
		for _, g := range glyphs {
			if g.width != fixedWidth {
				fixedWidth = 0
				break
			}
		}
	}

	t := &glyph.Table{
		First:      o.First,
		Last:       o.Last,
		Separation: o.Separation,
		PageHeight: pages,
	}
	if fixedWidth > 0 {
		t.Kind = glyph.FixedWidth
		t.CellWidth = fixedWidth
		for _, g := range glyphs {
			t.Data = append(t.Data, g.data...)
		}
		return t, t.Validate()
	}

	t.Kind = glyph.VariableWidth
	t.SpaceWidth = space
	for _, g := range glyphs {
		if g.width > math.MaxUint8 {
			return nil, fmt.Errorf("bake: glyph width %d too large", g.width)
		}
		if len(t.Data) > math.MaxUint16 {
			return nil, errors.New("bake: glyph data too large")
		}
		t.Widths = append(t.Widths, uint8(g.width))
		t.Offsets = append(t.Offsets, uint16(len(t.Data)))
		t.Data = append(t.Data, g.data...)
	}
	return t, t.Validate()
}

// canvas lets tinyfont glyphs draw into a framebuffer.
type canvas struct {
	fb *image1bit.Framebuffer
}

var _ drivers.Displayer = canvas{}

func (c canvas) Size() (x, y int16) {
	return int16(c.fb.Width()), int16(c.fb.Height())
}

func (c canvas) SetPixel(x, y int16, col color.RGBA) {
	if image1bit.BitModel.Convert(col).(image1bit.Bit) {
		c.fb.SetPixel(int(x), int(y))
	}
}

func (c canvas) Display() error {
	return nil
}
