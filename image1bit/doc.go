// Package image1bit provides a 1-bit monochrome image format for the SSD1306 display controller.
//
// The SSD1306 stores pixels in vertical pages: the display is split into horizontal
// strips 8 pixels tall, and each byte holds one column of one page. Bit 0 is the top
// row of the page.
//
// Memory layout for a 4x8 image (one page):
//
//	Column:  0     1     2     3
//	Index:   1     2     3     4
//	         (bit 0 = y 0 ... bit 7 = y 7)
//
// Byte 0 of the buffer is reserved for the transport control byte and never holds
// pixel data. A W×H image therefore needs 1 + W*(H/8) bytes, see BufferSize.
//
// This package provides:
//
// - Bit: A color type representing a lit or dark pixel
// - BitModel: A color model for converting standard Go colors to Bit
// - Framebuffer: An image.Image and draw.Image implementation laid out for the SSD1306
//
// Example usage:
//
//	// Create a 128x64 image
//	img, _ := image1bit.New(128, 64)
//
//	// Light a pixel; repeated draws accumulate
//	img.SetPixel(10, 20)
//
//	// Read it back
//	println(img.BitAt(10, 20)) // Output: true
//
//	// Use with standard Go image operations
//	draw.Draw(img, img.Bounds(), image.NewUniform(image1bit.On), image.Point{}, draw.Src)
package image1bit
