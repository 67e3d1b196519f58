// Package ssd1306 controls a SSD1306 OLED display via I²C or SPI.
//
// The SSD1306 is a monochrome OLED controller supporting up to 128x64 pixels.
// Common display resolutions are 128x64 and 128x32.
//
// See the examples for how to use this package.
package ssd1306

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"tinygo.org/x/drivers"

	"github.com/flavioheleno/ssd1306/image1bit"
)

// Command bytes.
const (
	cmdSetLowColumn       = 0x00
	cmdSetHighColumn      = 0x10
	cmdSetMemoryMode      = 0x20
	cmdSetColumnAddr      = 0x21
	cmdSetPageAddr        = 0x22
	cmdDeactivateScroll   = 0x2E
	cmdActivateScroll     = 0x2F
	cmdSetStartLine       = 0x40
	cmdSetContrast        = 0x81
	cmdChargePump         = 0x8D
	cmdSegmentRemapOff    = 0xA0
	cmdSegmentRemapOn     = 0xA1
	cmdSetVerticalArea    = 0xA3
	cmdResumeToRAM        = 0xA4
	cmdEntireDisplayOn    = 0xA5
	cmdNormalDisplay      = 0xA6
	cmdInverseDisplay     = 0xA7
	cmdSetMuxRatio        = 0xA8
	cmdDisplayOff         = 0xAE
	cmdDisplayOn          = 0xAF
	cmdSetPageStart       = 0xB0
	cmdScanNormal         = 0xC0
	cmdScanRemapped       = 0xC8
	cmdSetDisplayOffset   = 0xD3
	cmdSetClock           = 0xD5
	cmdSetPrecharge       = 0xD9
	cmdSetCOMPins         = 0xDA
	cmdSetDeselectLevel   = 0xDB
	chargePumpEnabled     = 0x14
	chargePumpDisabled    = 0x10
	comPinsFixedBit       = 0x02
	comPinsAlternative    = 0x10
	comPinsLeftRightRemap = 0x20
)

// I²C control bytes, sent ahead of every transfer.
const (
	controlCommand = 0x00
	controlData    = 0x40
)

// Controller RAM limits.
const (
	maxColumns = 128
	maxPages   = 8
)

// AddressingMode selects how the controller advances through RAM on writes.
type AddressingMode byte

const (
	Horizontal AddressingMode = 0x00
	Vertical   AddressingMode = 0x01
	Page       AddressingMode = 0x02
)

func (a AddressingMode) String() string {
	switch a {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	case Page:
		return "Page"
	default:
		return fmt.Sprintf("AddressingMode(%d)", byte(a))
	}
}

// DeselectLevel is the V_COMH deselect level as a fraction of Vcc.
type DeselectLevel byte

const (
	Deselect065 DeselectLevel = 0x00
	Deselect077 DeselectLevel = 0x20
	Deselect083 DeselectLevel = 0x30
)

// Opts is the configuration for the SSD1306 display.
//
// Start from DefaultOpts and adjust. MuxRatio, EndColumn and EndPage left at
// zero are derived from the display size.
type Opts struct {
	// Display dimensions in pixels
	W int // Width (default: 128, at most 128)
	H int // Height (default: 64, multiple of 8 between 16 and 64)

	Contrast   byte           // 0-255
	Inverse    bool           // A 0 in RAM lights the pixel
	Addressing AddressingMode // RAM addressing mode

	// RAM window. The display's column 0 maps to StartColumn.
	StartColumn, EndColumn byte
	StartPage, EndPage     byte

	StartLine     byte // Display start line (0-63)
	SegmentRemap  bool // Map column 127 to SEG0 (mirror horizontally)
	MuxRatio      byte // Multiplex ratio (15-63)
	ScanRemapped  bool // Scan COM[N-1] to COM0 (mirror vertically)
	DisplayOffset byte // Vertical shift by COM (0-63)

	AlternativeCOM    bool // Alternative COM pin configuration
	COMLeftRightRemap bool // COM left/right remap

	ClockDivider        byte // Display clock divide ratio (0-15)
	OscillatorFrequency byte // Oscillator frequency (0-15)
	Phase1, Phase2      byte // Pre-charge periods (1-15)

	Deselect   DeselectLevel // V_COMH deselect level
	ChargePump bool          // Internal charge pump, needed by most modules without external Vcc

	// Optional hardware reset pin
	RST gpio.PinIO // Reset pin (optional, nil if not used)
}

// DefaultOpts returns the controller's reset configuration for a 128x64 display.
func DefaultOpts() Opts {
	return Opts{
		W:                   128,
		H:                   64,
		Contrast:            0x7F,
		Addressing:          Page,
		AlternativeCOM:      true,
		OscillatorFrequency: 8,
		Phase1:              2,
		Phase2:              2,
		Deselect:            Deselect077,
	}
}

// normalize fills derived fields.
func (o Opts) normalize() Opts {
	if o.MuxRatio == 0 && o.H > 0 {
		o.MuxRatio = byte(o.H - 1)
	}
	if o.EndColumn == 0 && o.W > 0 {
		o.EndColumn = o.StartColumn + byte(o.W-1)
	}
	if o.EndPage == 0 && o.H >= 16 {
		o.EndPage = o.StartPage + byte(o.H/8-1)
	}
	return o
}

// validate checks a normalized Opts.
func (o *Opts) validate() error {
	if o.W <= 0 || o.W > maxColumns {
		return errors.New("ssd1306: width must be between 1 and 128")
	}
	if o.H < 16 || o.H > 64 || o.H%8 != 0 {
		return errors.New("ssd1306: height must be a multiple of 8 between 16 and 64")
	}
	if o.Addressing > Page {
		return errors.New("ssd1306: invalid addressing mode")
	}
	if int(o.StartColumn)+o.W > maxColumns || o.EndColumn < o.StartColumn || o.EndColumn >= maxColumns {
		return errors.New("ssd1306: column window out of range")
	}
	if int(o.StartPage)+o.H/8 > maxPages || o.EndPage < o.StartPage || o.EndPage >= maxPages {
		return errors.New("ssd1306: page window out of range")
	}
	if o.MuxRatio < 15 || o.MuxRatio > 63 {
		return errors.New("ssd1306: mux ratio must be between 15 and 63")
	}
	if o.StartLine > 63 || o.DisplayOffset > 63 {
		return errors.New("ssd1306: start line and display offset must be at most 63")
	}
	if o.ClockDivider > 15 || o.OscillatorFrequency > 15 {
		return errors.New("ssd1306: clock divider and oscillator frequency must be at most 15")
	}
	if o.Phase1 < 1 || o.Phase1 > 15 || o.Phase2 < 1 || o.Phase2 > 15 {
		return errors.New("ssd1306: pre-charge phases must be between 1 and 15")
	}
	switch o.Deselect {
	case Deselect065, Deselect077, Deselect083:
	default:
		return errors.New("ssd1306: invalid deselect level")
	}
	return nil
}

// commands returns the configuration sequence for a normalized Opts.
func (o *Opts) commands() []byte {
	seg := byte(cmdSegmentRemapOff)
	if o.SegmentRemap {
		seg = cmdSegmentRemapOn
	}
	scan := byte(cmdScanNormal)
	if o.ScanRemapped {
		scan = cmdScanRemapped
	}
	com := byte(comPinsFixedBit)
	if o.AlternativeCOM {
		com |= comPinsAlternative
	}
	if o.COMLeftRightRemap {
		com |= comPinsLeftRightRemap
	}
	mode := byte(cmdNormalDisplay)
	if o.Inverse {
		mode = cmdInverseDisplay
	}
	pump := byte(chargePumpDisabled)
	if o.ChargePump {
		pump = chargePumpEnabled
	}

	return []byte{
		cmdDisplayOff,
		cmdSetMuxRatio, o.MuxRatio,
		cmdSetDisplayOffset, o.DisplayOffset,
		cmdSetStartLine | (o.StartLine & 0x3F),
		seg,
		scan,
		cmdSetCOMPins, com,
		cmdSetContrast, o.Contrast,
		cmdResumeToRAM,
		mode,
		cmdSetClock, o.OscillatorFrequency<<4 | (o.ClockDivider & 0x0F),
		cmdSetPrecharge, o.Phase1<<4 | (o.Phase2 & 0x0F),
		cmdSetDeselectLevel, byte(o.Deselect),
		cmdSetMemoryMode, byte(o.Addressing),
		cmdSetLowColumn | (o.StartColumn & 0x0F),
		cmdSetHighColumn | (o.StartColumn >> 4 & 0x0F),
		cmdSetPageStart | (o.StartPage & 0x07),
		cmdSetColumnAddr, o.StartColumn, o.EndColumn,
		cmdSetPageAddr, o.StartPage, o.EndPage,
		cmdChargePump, pump,
	}
}

// Dev is the device handle for the SSD1306 display.
type Dev struct {
	// Communication
	c   conn.Conn   // I²C or SPI connection
	dc  gpio.PinOut // Data/Command pin (SPI only, nil on I²C)
	rst gpio.PinIO  // Reset pin (optional)

	// Display geometry
	rect       image.Rectangle
	addressing AddressingMode
	startCol   int // RAM column of the display's column 0
	startPage  int // RAM page of the display's page 0

	// Pixel buffers
	fb   *image1bit.Framebuffer // Frame being drawn
	last []byte                 // Pixel data as last sent, for differential updates
	full bool                   // Next refresh sends the whole frame

	// State
	halted bool
}

var _ drivers.Displayer = (*Dev)(nil)

// NewI2C creates a new SSD1306 device connected via I²C at addr (usually 0x3C or 0x3D).
//
// opts can be nil to use defaults (128x64 display).
func NewI2C(b i2c.Bus, addr uint16, opts *Opts) (*Dev, error) {
	if b == nil {
		return nil, errors.New("ssd1306: nil I²C bus")
	}
	return newDev(&i2c.Dev{Bus: b, Addr: addr}, nil, opts)
}

// NewSPI creates a new SSD1306 device connected via 4-wire SPI.
//
// The SPI port is configured for 8MHz, Mode0 (CPOL=0, CPHA=0), 8-bit transfers.
// The dc (Data/Command) GPIO pin must be provided and configured as an output.
//
// opts can be nil to use defaults (128x64 display).
func NewSPI(p spi.Port, dc gpio.PinOut, opts *Opts) (*Dev, error) {
	if dc == nil {
		return nil, errors.New("ssd1306: SPI needs a data/command pin")
	}
	if p == nil {
		return nil, errors.New("ssd1306: nil SPI port")
	}
	// SSD1306 accepts up to 10MHz on its serial interface
	c, err := p.Connect(8*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("ssd1306: failed to connect SPI: %w", err)
	}
	return newDev(c, dc, opts)
}

func newDev(c conn.Conn, dc gpio.PinOut, opts *Opts) (*Dev, error) {
	o := DefaultOpts()
	if opts != nil {
		o = *opts
	}
	o = o.normalize()
	if err := o.validate(); err != nil {
		return nil, err
	}

	fb, err := image1bit.New(o.W, o.H)
	if err != nil {
		return nil, fmt.Errorf("ssd1306: %w", err)
	}

	d := &Dev{
		c:          c,
		dc:         dc,
		rst:        o.RST,
		rect:       fb.Bounds(),
		addressing: o.Addressing,
		startCol:   int(o.StartColumn),
		startPage:  int(o.StartPage),
		fb:         fb,
	}

	if err := d.init(&o); err != nil {
		return nil, err
	}
	return d, nil
}

// init resets the controller, configures it, clears its RAM and turns the panel on.
func (d *Dev) init(o *Opts) error {
	// Hardware reset sequence (if RST pin is provided)
	if d.rst != nil {
		if err := d.rst.Out(gpio.Low); err != nil {
			return fmt.Errorf("ssd1306: failed to pull RST low: %w", err)
		}
		time.Sleep(10 * time.Millisecond)

		if err := d.rst.Out(gpio.High); err != nil {
			return fmt.Errorf("ssd1306: failed to pull RST high: %w", err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	if err := d.sendCommands(o.commands()...); err != nil {
		return err
	}

	// Clear display RAM; the framebuffer starts blank
	if err := d.sendWindow(0, d.rect.Dx()-1, 0, d.fb.Pages()-1); err != nil {
		return err
	}
	d.last = make([]byte, len(d.fb.PixelData()))

	Logger().Debug("ssd1306: initialized", "dev", d.String(), "addressing", d.addressing.String())

	return d.sendCommands(cmdDisplayOn)
}

// sendCommands sends command bytes.
func (d *Dev) sendCommands(cmds ...byte) error {
	if d.dc == nil {
		return d.tx(append([]byte{controlCommand}, cmds...))
	}
	if err := d.dc.Out(gpio.Low); err != nil {
		return err
	}
	return d.tx(cmds)
}

// sendData sends display RAM bytes.
func (d *Dev) sendData(data []byte) error {
	if d.dc == nil {
		return d.tx(append([]byte{controlData}, data...))
	}
	if err := d.dc.Out(gpio.High); err != nil {
		return err
	}
	return d.tx(data)
}

// sendFrame sends the whole framebuffer in a single transfer. On I²C the
// reserved header byte carries the data control byte.
func (d *Dev) sendFrame() error {
	if d.dc == nil {
		d.fb.Pix[0] = controlData
		return d.tx(d.fb.Pix)
	}
	if err := d.dc.Out(gpio.High); err != nil {
		return err
	}
	return d.tx(d.fb.PixelData())
}

func (d *Dev) tx(w []byte) error {
	if err := d.c.Tx(w, nil); err != nil {
		return fmt.Errorf("ssd1306: %w", err)
	}
	return nil
}

// sendWindow writes columns c0..c1 of pages p0..p1 from the framebuffer to the
// display, in the order the addressing mode expects.
func (d *Dev) sendWindow(c0, c1, p0, p1 int) error {
	colStart, colEnd := byte(d.startCol+c0), byte(d.startCol+c1)
	pageStart, pageEnd := byte(d.startPage+p0), byte(d.startPage+p1)
	width := c1 - c0 + 1

	switch d.addressing {
	case Horizontal:
		if err := d.sendCommands(cmdSetColumnAddr, colStart, colEnd, cmdSetPageAddr, pageStart, pageEnd); err != nil {
			return err
		}
		if c0 == 0 && c1 == d.rect.Dx()-1 && p0 == 0 && p1 == d.fb.Pages()-1 {
			return d.sendFrame()
		}
		data := make([]byte, 0, width*(p1-p0+1))
		for p := p0; p <= p1; p++ {
			i := d.fb.PageOffset(c0, p)
			data = append(data, d.fb.Pix[i:i+width]...)
		}
		return d.sendData(data)

	case Vertical:
		if err := d.sendCommands(cmdSetColumnAddr, colStart, colEnd, cmdSetPageAddr, pageStart, pageEnd); err != nil {
			return err
		}
		data := make([]byte, 0, width*(p1-p0+1))
		for x := c0; x <= c1; x++ {
			for p := p0; p <= p1; p++ {
				data = append(data, d.fb.ByteAt(x, p))
			}
		}
		return d.sendData(data)

	default:
		for p := p0; p <= p1; p++ {
			if err := d.sendCommands(
				cmdSetPageStart|(byte(d.startPage+p)&0x07),
				cmdSetLowColumn|(colStart&0x0F),
				cmdSetHighColumn|(colStart>>4&0x0F),
			); err != nil {
				return err
			}
			i := d.fb.PageOffset(c0, p)
			if err := d.sendData(d.fb.Pix[i : i+width]); err != nil {
				return err
			}
		}
		return nil
	}
}

// ColorModel returns the color model of the display.
func (d *Dev) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds returns the image bounds of the display.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// Framebuffer returns the frame being drawn. Changes show up on the next
// Refresh.
func (d *Dev) Framebuffer() *image1bit.Framebuffer {
	return d.fb
}

// Refresh sends the framebuffer to the display. Only the smallest
// column/page window holding changes since the last transfer is sent.
func (d *Dev) Refresh() error {
	if d.halted {
		return errors.New("ssd1306: halted")
	}

	minCol, maxCol, minPage, maxPage := d.calculateDiff()
	if d.full {
		minCol, maxCol, minPage, maxPage = 0, d.rect.Dx()-1, 0, d.fb.Pages()-1
	}
	if minCol > maxCol {
		// No changes
		return nil
	}

	Logger().Debug("ssd1306: refresh",
		"cols", [2]int{minCol, maxCol},
		"pages", [2]int{minPage, maxPage},
		"bytes", (maxCol-minCol+1)*(maxPage-minPage+1))

	if err := d.sendWindow(minCol, maxCol, minPage, maxPage); err != nil {
		return err
	}
	copy(d.last, d.fb.PixelData())
	d.full = false
	return nil
}

// calculateDiff compares the framebuffer with the last transfer to find the
// changed window. Returns (minCol, maxCol, minPage, maxPage) or (w, -1, pages, -1)
// if nothing changed.
func (d *Dev) calculateDiff() (minCol, maxCol, minPage, maxPage int) {
	width := d.rect.Dx()
	pages := d.fb.Pages()
	cur := d.fb.PixelData()

	minPage, maxPage = pages, -1
	minCol, maxCol = width, -1

	// Scan page by page to find differences
	for p := 0; p < pages; p++ {
		start := p * width
		end := start + width

		if bytes.Equal(d.last[start:end], cur[start:end]) {
			continue
		}
		minPage = min(minPage, p)
		maxPage = max(maxPage, p)

		// Scan columns within this page for precise boundaries
		for x := 0; x < width; x++ {
			if d.last[start+x] != cur[start+x] {
				minCol = min(minCol, x)
				maxCol = max(maxCol, x)
			}
		}
	}
	return
}

// Write writes raw page data to the display, W*H/8 bytes without the header byte.
func (d *Dev) Write(pixels []byte) (int, error) {
	if d.halted {
		return 0, errors.New("ssd1306: halted")
	}
	if len(pixels) != len(d.last) {
		return 0, errors.New("ssd1306: invalid buffer size")
	}
	copy(d.fb.PixelData(), pixels)
	if err := d.sendWindow(0, d.rect.Dx()-1, 0, d.fb.Pages()-1); err != nil {
		return 0, err
	}
	copy(d.last, pixels)
	d.full = false
	return len(pixels), nil
}

// Draw draws an image onto the display and sends the changed window.
// The dst rectangle specifies the destination region on the display.
// The src image is positioned at src point sp within the destination.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if d.halted {
		return errors.New("ssd1306: halted")
	}

	// Clip to display bounds
	dst = dst.Intersect(d.rect)
	if dst.Empty() {
		return nil
	}

	// Fast path: source is already a full-size framebuffer
	if srcImg, ok := src.(*image1bit.Framebuffer); ok && srcImg != d.fb {
		if dst == d.rect && sp == (image.Point{}) && srcImg.Rect == d.rect {
			copy(d.fb.PixelData(), srcImg.PixelData())
			return d.Refresh()
		}
	}

	draw.Draw(d.fb, dst, src, sp, draw.Src)
	return d.Refresh()
}

// Size returns the display size. It implements drivers.Displayer.
func (d *Dev) Size() (x, y int16) {
	return int16(d.rect.Dx()), int16(d.rect.Dy())
}

// SetPixel lights or clears a pixel of the framebuffer depending on c.
// It implements drivers.Displayer, so tinyfont can draw on the display.
func (d *Dev) SetPixel(x, y int16, c color.RGBA) {
	d.fb.Set(int(x), int(y), c)
}

// Display sends pending changes. It implements drivers.Displayer.
func (d *Dev) Display() error {
	return d.Refresh()
}

// SetContrast sets the display contrast (0-255).
func (d *Dev) SetContrast(contrast byte) error {
	if d.halted {
		return errors.New("ssd1306: halted")
	}
	return d.sendCommands(cmdSetContrast, contrast)
}

// Invert inverts the display colors (a 0 in RAM lights the pixel).
func (d *Dev) Invert(invert bool) error {
	if d.halted {
		return errors.New("ssd1306: halted")
	}
	mode := byte(cmdNormalDisplay)
	if invert {
		mode = cmdInverseDisplay
	}
	return d.sendCommands(mode)
}

// Show turns the panel on or puts it to sleep. RAM content is kept.
func (d *Dev) Show(on bool) error {
	if d.halted {
		return errors.New("ssd1306: halted")
	}
	cmd := byte(cmdDisplayOff)
	if on {
		cmd = cmdDisplayOn
	}
	return d.sendCommands(cmd)
}

// EntireDisplayOn lights every pixel regardless of RAM when on is true, and
// resumes showing RAM content when false.
func (d *Dev) EntireDisplayOn(on bool) error {
	if d.halted {
		return errors.New("ssd1306: halted")
	}
	cmd := byte(cmdResumeToRAM)
	if on {
		cmd = cmdEntireDisplayOn
	}
	return d.sendCommands(cmd)
}

// ScrollMode is the direction of a hardware scroll.
type ScrollMode byte

const (
	ScrollRight         ScrollMode = 0x26
	ScrollLeft          ScrollMode = 0x27
	ScrollVerticalRight ScrollMode = 0x29
	ScrollVerticalLeft  ScrollMode = 0x2A
)

func (m ScrollMode) vertical() bool {
	return m == ScrollVerticalRight || m == ScrollVerticalLeft
}

// ScrollRate is the interval between scroll steps, in frames.
type ScrollRate byte

const (
	Rate5Frames ScrollRate = iota
	Rate64Frames
	Rate128Frames
	Rate256Frames
	Rate3Frames
	Rate4Frames
	Rate25Frames
	Rate2Frames
)

// ScrollOpts describes a hardware scroll.
type ScrollOpts struct {
	Mode               ScrollMode
	Rate               ScrollRate
	StartPage, EndPage byte // Pages moved horizontally (0-7)

	// Vertical modes only
	FixedRows      byte // Rows at the top that do not scroll
	ScrollRows     byte // Rows in the vertical scroll area
	VerticalOffset byte // Rows moved per step (0-63)
}

// commands returns the scroll setup bytes, activation included.
func (s *ScrollOpts) commands() []byte {
	if !s.Mode.vertical() {
		return []byte{
			byte(s.Mode),
			0x00, // Dummy byte
			s.StartPage,
			byte(s.Rate),
			s.EndPage,
			0x00, 0xFF, // Dummy bytes
			cmdActivateScroll,
		}
	}
	return []byte{
		cmdSetVerticalArea, s.FixedRows, s.ScrollRows,
		byte(s.Mode),
		0x00, // Dummy byte
		s.StartPage,
		byte(s.Rate),
		s.EndPage,
		s.VerticalOffset,
		cmdActivateScroll,
	}
}

// Scroll starts a hardware scroll. RAM written while scrolling is not shown
// where expected, so call StopScroll and redraw before updating content.
func (d *Dev) Scroll(s ScrollOpts) error {
	if d.halted {
		return errors.New("ssd1306: halted")
	}

	switch s.Mode {
	case ScrollRight, ScrollLeft, ScrollVerticalRight, ScrollVerticalLeft:
	default:
		return errors.New("ssd1306: invalid scroll mode")
	}
	if s.Rate > Rate2Frames {
		return errors.New("ssd1306: invalid scroll rate")
	}
	if s.StartPage >= maxPages || s.EndPage >= maxPages || s.EndPage < s.StartPage {
		return errors.New("ssd1306: scroll page out of range")
	}
	if s.Mode.vertical() {
		if int(s.FixedRows)+int(s.ScrollRows) > d.rect.Dy() {
			return errors.New("ssd1306: vertical scroll area out of range")
		}
		if s.VerticalOffset > 63 {
			return errors.New("ssd1306: vertical offset must be at most 63")
		}
	}

	// Scroll setup is only accepted while scrolling is stopped
	return d.sendCommands(append([]byte{cmdDeactivateScroll}, s.commands()...)...)
}

// StopScroll stops scrolling. Scrolling corrupts display RAM, so the next
// Refresh sends the whole frame.
func (d *Dev) StopScroll() error {
	if d.halted {
		return errors.New("ssd1306: halted")
	}
	if err := d.sendCommands(cmdDeactivateScroll); err != nil {
		return err
	}
	d.full = true
	return nil
}

// Halt powers off the display.
// After calling Halt, the display will not respond to further commands
// until the device is re-initialized.
func (d *Dev) Halt() error {
	d.halted = true
	return d.sendCommands(cmdDisplayOff)
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("ssd1306.Dev{%dx%d}", d.rect.Dx(), d.rect.Dy())
}
