// Package ssd1306 controls a SSD1306 OLED display via I²C or SPI.
//
// The SSD1306 is a monochrome OLED controller with 128x64 bits of display RAM,
// organized as 8 pages of 128 column bytes. Bit 0 of a byte is the top pixel of
// its page.
//
// # Display Characteristics
//
// - 1 bit per pixel
// - Resolutions of up to 128x64 (typically 128x64 or 128x32)
// - Horizontal, vertical and page RAM addressing
// - Hardware scrolling (horizontal and diagonal)
// - Adjustable contrast (0-255)
// - Display inversion and entire-display-on test mode
//
// # Hardware Connection
//
// Most modules use I²C:
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 3.3V
//	SCL         → I²C Clock
//	SDA         → I²C Data
//
// SPI modules additionally need a DC pin and optionally RES:
//
//	SCL/CLK     → SPI Clock (SCLK)
//	SDA/MOSI    → SPI Data (MOSI)
//	DC          → GPIO (any available pin)
//	CS          → SPI Chip Select (or GND if always selected)
//	RES         → Optional: GPIO for hardware reset
//
// # Basic Usage
//
//	package main
//
//	import (
//		"periph.io/x/conn/v3/i2c/i2creg"
//		"periph.io/x/host/v3"
//
//		"github.com/flavioheleno/ssd1306"
//		"github.com/flavioheleno/ssd1306/gfx"
//	)
//
//	func main() {
//		host.Init()
//
//		bus, _ := i2creg.Open("")
//		defer bus.Close()
//
//		opts := ssd1306.DefaultOpts()
//		opts.ChargePump = true
//		dev, _ := ssd1306.NewI2C(bus, 0x3C, &opts)
//		defer dev.Halt()
//
//		fb := dev.Framebuffer()
//		gfx.Circle(fb, 64, 32, 20)
//		gfx.Line(fb, 0, 0, 127, 63)
//		dev.Refresh()
//	}
//
// # Drawing
//
// Dev owns an image1bit.Framebuffer. Draw into it with the gfx and text
// packages, or anything accepting a draw.Image, then call Refresh. Refresh
// compares the framebuffer with what was last sent and transfers only the
// changed column/page window:
//
//	gfx.Pixel(dev.Framebuffer(), 10, 10)
//	dev.Refresh() // sends a single byte
//
// Dev also implements drivers.Displayer from tinygo.org/x/drivers, so tinyfont
// can draw on it directly:
//
//	tinyfont.WriteLine(dev, &proggy.TinySZ8pt7b, 0, 10, "hello", color.RGBA{255, 255, 255, 255})
//	dev.Display()
//
// Write replaces the whole frame with raw page-major bytes:
//
//	pixels := make([]byte, 128*64/8)
//	dev.Write(pixels)
//
// # Text
//
// The text package renders glyph tables, page-packed bitmaps addressed by
// character code. Tables are baked from golang.org/x/image/font faces or
// tinyfont fonts with the glyph/bake package:
//
//	font, _ := bake.FromFace(basicfont.Face7x13, nil)
//	w, _ := text.New(dev.Framebuffer(), font)
//	w.DrawText("Hello, world")
//	dev.Refresh()
//
// # Hardware Scrolling
//
//	dev.Scroll(ssd1306.ScrollOpts{
//		Mode:    ssd1306.ScrollLeft,
//		Rate:    ssd1306.Rate5Frames,
//		EndPage: 7,
//	})
//	time.Sleep(5 * time.Second)
//	dev.StopScroll()
//
// Scrolling moves RAM content, so the next Refresh after StopScroll resends
// the whole frame.
//
// # Datasheet
//
// https://cdn-shop.adafruit.com/datasheets/SSD1306.pdf
package ssd1306
