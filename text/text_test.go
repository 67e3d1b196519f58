package text

import (
	"bytes"
	"testing"

	"github.com/flavioheleno/ssd1306/glyph"
	"github.com/flavioheleno/ssd1306/image1bit"
)

// fixed5 is a one-page font for 'A'..'C', 5 columns wide, 1 column apart.
// Every byte of 'A' is 0x11, of 'B' 0x22 and of 'C' 0x33.
func fixed5() *glyph.Table {
	data := make([]byte, 0, 15)
	for _, b := range []byte{0x11, 0x22, 0x33} {
		data = append(data, bytes.Repeat([]byte{b}, 5)...)
	}
	return &glyph.Table{
		Kind:       glyph.FixedWidth,
		First:      'A',
		Last:       'C',
		CellWidth:  5,
		Separation: 1,
		PageHeight: 1,
		Data:       data,
	}
}

func newWriter(t *testing.T, w, h int, font *glyph.Table) (*Writer, *image1bit.Framebuffer) {
	t.Helper()
	fb, err := image1bit.New(w, h)
	if err != nil {
		t.Fatalf("image1bit.New() error = %v", err)
	}
	tw, err := New(fb, font)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return tw, fb
}

// row returns the bytes of the given page.
func row(fb *image1bit.Framebuffer, page int) []byte {
	start := fb.PageOffset(0, page)
	return fb.Pix[start : start+fb.Width()]
}

func TestDrawTextFixedSpacing(t *testing.T) {
	tw, fb := newWriter(t, 32, 8, fixed5())

	if n := tw.DrawText("AB"); n != 2 {
		t.Errorf("DrawText() = %d, want 2", n)
	}

	want := []byte{
		0x11, 0x11, 0x11, 0x11, 0x11, // A at [0,5)
		0x00,                         // separation
		0x22, 0x22, 0x22, 0x22, 0x22, // B at [6,11)
	}
	if got := row(fb, 0)[:11]; !bytes.Equal(got, want) {
		t.Errorf("page 0 = % X, want % X", got, want)
	}
	if col, r := tw.Cursor(); col != 12 || r != 0 {
		t.Errorf("Cursor() = (%d, %d), want (12, 0)", col, r)
	}
}

func TestDrawTextSpace(t *testing.T) {
	tw, fb := newWriter(t, 32, 8, fixed5())
	tw.DrawText("A B")

	// No separation before a space; the space advances one cell.
	if got := row(fb, 0)[5:10]; !bytes.Equal(got, make([]byte, 5)) {
		t.Errorf("gap = % X, want zeros", got)
	}
	if got := row(fb, 0)[10:15]; !bytes.Equal(got, bytes.Repeat([]byte{0x22}, 5)) {
		t.Errorf("B = % X, want at columns [10,15)", got)
	}
	if col, _ := tw.Cursor(); col != 16 {
		t.Errorf("cursor column = %d, want 16", col)
	}
}

func TestDrawTextSkipsUnknown(t *testing.T) {
	tw, fb := newWriter(t, 32, 8, fixed5())
	tw.DrawText("A\tz~B")

	if got := row(fb, 0)[6:11]; !bytes.Equal(got, bytes.Repeat([]byte{0x22}, 5)) {
		t.Errorf("B = % X, want at columns [6,11)", got)
	}
}

func TestDrawTextOverwrites(t *testing.T) {
	font := fixed5()
	font.Data[0] = 0x00
	tw, fb := newWriter(t, 32, 8, font)

	fb.SetPixel(0, 5)
	fb.SetPixel(1, 7)
	tw.DrawText("A")

	if got := fb.ByteAt(0, 0); got != 0x00 {
		t.Errorf("column 0 = 0x%02X, want 0x00 (glyph replaces cell)", got)
	}
	if got := fb.ByteAt(1, 0); got != 0x11 {
		t.Errorf("column 1 = 0x%02X, want 0x11 (glyph replaces cell)", got)
	}
}

func TestDrawTextWraps(t *testing.T) {
	tw, fb := newWriter(t, 16, 16, fixed5())
	if n := tw.DrawText("ABC"); n != 3 {
		t.Errorf("DrawText() = %d, want 3", n)
	}

	if got := row(fb, 0)[12:16]; !bytes.Equal(got, make([]byte, 4)) {
		t.Errorf("page 0 tail = % X, want zeros", got)
	}
	if got := row(fb, 1)[:5]; !bytes.Equal(got, bytes.Repeat([]byte{0x33}, 5)) {
		t.Errorf("page 1 = % X, want C at [0,5)", got)
	}
	if col, r := tw.Cursor(); col != 6 || r != 1 {
		t.Errorf("Cursor() = (%d, %d), want (6, 1)", col, r)
	}
}

func TestDrawTextWrapsOnExactFit(t *testing.T) {
	// B would end exactly at the right edge; it still wraps.
	tw, fb := newWriter(t, 11, 16, fixed5())
	tw.DrawText("AB")

	if got := row(fb, 0)[6:11]; !bytes.Equal(got, make([]byte, 5)) {
		t.Errorf("page 0 = % X, want B moved to the next line", got)
	}
	if got := row(fb, 1)[:5]; !bytes.Equal(got, bytes.Repeat([]byte{0x22}, 5)) {
		t.Errorf("page 1 = % X, want B", got)
	}
}

func TestDrawTextTruncatesOnLastLine(t *testing.T) {
	tw, fb := newWriter(t, 16, 8, fixed5())
	before := len(fb.Pix)

	if n := tw.DrawText("ABCA"); n != 2 {
		t.Errorf("DrawText() = %d, want 2 (C and the rest dropped)", n)
	}
	if len(fb.Pix) != before {
		t.Errorf("buffer length changed to %d", len(fb.Pix))
	}
	if got := row(fb, 0)[11:]; !bytes.Equal(got, make([]byte, 5)) {
		t.Errorf("page 0 tail = % X, want zeros", got)
	}
	if col, r := tw.Cursor(); col != 12 || r != 0 {
		t.Errorf("Cursor() = (%d, %d), want (12, 0) unchanged", col, r)
	}
	if fb.Pix[0] != 0 {
		t.Errorf("header byte = 0x%02X, want 0", fb.Pix[0])
	}
}

func TestDrawTextWideGlyphClipped(t *testing.T) {
	font := &glyph.Table{
		Kind:       glyph.FixedWidth,
		First:      'W',
		Last:       'W',
		CellWidth:  10,
		PageHeight: 1,
		Data:       bytes.Repeat([]byte{0xFF}, 10),
	}
	tw, fb := newWriter(t, 8, 16, font)
	tw.DrawText("W")

	if got := row(fb, 1); !bytes.Equal(got, bytes.Repeat([]byte{0xFF}, 8)) {
		t.Errorf("page 1 = % X, want the glyph cut at the edge", got)
	}
	if got := row(fb, 0); !bytes.Equal(got, make([]byte, 8)) {
		t.Errorf("page 0 = % X, want zeros", got)
	}
}

func TestDrawTextVariableWidthPageMajor(t *testing.T) {
	font := &glyph.Table{
		Kind:       glyph.VariableWidth,
		First:      'i',
		Last:       'm',
		SpaceWidth: 3,
		Separation: 1,
		PageHeight: 2,
		// i: 1 column; m: 3 columns. Page 0 bytes come first.
		Data:    []byte{0xA1, 0xA2, 0xB1, 0xB2, 0xB3, 0xC1, 0xC2, 0xC3},
		Widths:  []uint8{1, 0, 0, 0, 3},
		Offsets: []uint16{0, 0, 0, 0, 2},
	}
	tw, fb := newWriter(t, 32, 16, font)
	tw.DrawText("i m")

	tests := []struct {
		col, page int
		want      byte
	}{
		{0, 0, 0xA1},
		{0, 1, 0xA2},
		{1, 0, 0x00}, // no separation before a space
		{4, 0, 0xB1}, // 1 + space of 3
		{5, 0, 0xB2},
		{6, 0, 0xB3},
		{4, 1, 0xC1},
		{5, 1, 0xC2},
		{6, 1, 0xC3},
	}
	for _, tt := range tests {
		if got := fb.ByteAt(tt.col, tt.page); got != tt.want {
			t.Errorf("ByteAt(%d, %d) = 0x%02X, want 0x%02X", tt.col, tt.page, got, tt.want)
		}
	}
	if col, _ := tw.Cursor(); col != 8 {
		t.Errorf("cursor column = %d, want 8", col)
	}
}

func TestSetCursorClamps(t *testing.T) {
	font := fixed5()
	font.PageHeight = 2
	font.Data = append(font.Data, font.Data...)
	tw, _ := newWriter(t, 32, 32, font)

	tests := []struct {
		col, row         int
		wantCol, wantRow int
	}{
		{5, 1, 5, 1},
		{500, 9, 31, 2},
		{-4, -1, 0, 0},
		{31, 2, 31, 2},
	}
	for _, tt := range tests {
		tw.SetCursor(tt.col, tt.row)
		if col, r := tw.Cursor(); col != tt.wantCol || r != tt.wantRow {
			t.Errorf("SetCursor(%d, %d) -> (%d, %d), want (%d, %d)",
				tt.col, tt.row, col, r, tt.wantCol, tt.wantRow)
		}
	}
}

func TestNextLine(t *testing.T) {
	tw, _ := newWriter(t, 32, 24, fixed5())
	tw.SetCursor(7, 0)

	if !tw.NextLine() {
		t.Fatal("NextLine() = false on first line")
	}
	if col, r := tw.Cursor(); col != 0 || r != 1 {
		t.Errorf("Cursor() = (%d, %d), want (0, 1)", col, r)
	}

	tw.SetCursor(9, 2)
	if tw.NextLine() {
		t.Error("NextLine() = true on last line")
	}
	if col, r := tw.Cursor(); col != 9 || r != 2 {
		t.Errorf("Cursor() = (%d, %d), want (9, 2) unchanged", col, r)
	}
}

func TestNewErrors(t *testing.T) {
	fb, _ := image1bit.New(32, 8)
	tall := fixed5()
	tall.PageHeight = 2
	tall.Data = append(tall.Data, tall.Data...)
	broken := fixed5()
	broken.Data = nil

	tests := []struct {
		name string
		fb   *image1bit.Framebuffer
		font *glyph.Table
	}{
		{"nil framebuffer", nil, fixed5()},
		{"nil font", fb, nil},
		{"font taller than display", fb, tall},
		{"invalid font", fb, broken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.fb, tt.font); err == nil {
				t.Error("New() should fail")
			}
		})
	}
}

func TestWriterKeepsOwnFont(t *testing.T) {
	font := fixed5()
	w, fb := newWriter(t, 32, 8, font)

	// Break the caller's table after New
	font.Data = font.Data[:3]
	font.CellWidth = 40
	font.Last = 'Z'

	if n := w.DrawText("AC"); n != 2 {
		t.Errorf("DrawText() = %d, want 2", n)
	}
	want := []byte{0x11, 0x11, 0x11, 0x11, 0x11, 0, 0x33, 0x33, 0x33, 0x33, 0x33}
	if got := row(fb, 0)[:11]; !bytes.Equal(got, want) {
		t.Errorf("row = % X, want % X", got, want)
	}
	if w.Font() == font {
		t.Error("Font() returned the caller's table")
	}
}
