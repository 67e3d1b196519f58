// Package gfx draws lines, circles and polygons into an image1bit.Framebuffer.
//
// All primitives take signed coordinates. Line endpoints are clamped to the
// framebuffer so shapes running off the canvas are cut at the border rather than
// rejected. Nothing here returns an error.
package gfx

import (
	"image"

	"github.com/flavioheleno/ssd1306/image1bit"
)

// Pixel lights pixel (x, y). Out of bounds coordinates are ignored.
func Pixel(fb *image1bit.Framebuffer, x, y int) {
	fb.SetPixel(x, y)
}

// Line draws a line from (x1, y1) to (x2, y2) using Bresenham's algorithm.
// Swapping the endpoints produces the same pixels.
func Line(fb *image1bit.Framebuffer, x1, y1, x2, y2 int) {
	w, h := fb.Width(), fb.Height()
	x1, y1 = clamp(x1, 0, w-1), clamp(y1, 0, h-1)
	x2, y2 = clamp(x2, 0, w-1), clamp(y2, 0, h-1)

	// Always step from the same end so the pixel set does not depend on direction.
	if x1 > x2 || (x1 == x2 && y1 > y2) {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}

	dx, sx := abs(x2-x1), sign(x2-x1)
	dy, sy := -abs(y2-y1), sign(y2-y1)
	e := dx + dy

	for {
		fb.SetPixel(x1, y1)
		de := 2 * e
		if de >= dy {
			if x1 == x2 {
				break
			}
			e += dy
			x1 += sx
		}
		if de <= dx {
			if y1 == y2 {
				break
			}
			e += dx
			y1 += sy
		}
	}
}

// Circle draws a circle of radius r centered on (cx, cy) with the midpoint
// algorithm. Each step plots four points, one per quadrant, while the error
// term walks the quadrant through 90°. A negative radius is treated as zero,
// which plots the center only. Points outside the framebuffer are dropped.
func Circle(fb *image1bit.Framebuffer, cx, cy, r int) {
	if r < 0 {
		r = 0
	}
	x, y := -r, 0
	e := 2 - 2*r

	for {
		fb.SetPixel(cx-x, cy+y)
		fb.SetPixel(cx-y, cy-x)
		fb.SetPixel(cx+x, cy-y)
		fb.SetPixel(cx+y, cy+x)

		r = e
		if r <= y {
			y++
			e += y*2 + 1
		}
		if r > x || e > y {
			x++
			e += x*2 + 1
		}
		if x >= 0 {
			break
		}
	}
}

// Polygon connects pts in order and closes the shape back to the first point.
// Fewer than two points draw nothing.
func Polygon(fb *image1bit.Framebuffer, pts []image.Point) {
	if len(pts) < 2 {
		return
	}
	Polyline(fb, pts)
	last := pts[len(pts)-1]
	Line(fb, last.X, last.Y, pts[0].X, pts[0].Y)
}

// Polyline connects pts in order without closing the shape.
// Fewer than two points draw nothing.
func Polyline(fb *image1bit.Framebuffer, pts []image.Point) {
	for i := 0; i+1 < len(pts); i++ {
		Line(fb, pts[i].X, pts[i].Y, pts[i+1].X, pts[i+1].Y)
	}
}

// Rect draws the outline of r. The far edges r.Max are exclusive.
func Rect(fb *image1bit.Framebuffer, r image.Rectangle) {
	r = r.Canon()
	if r.Empty() {
		return
	}
	Polygon(fb, []image.Point{
		{r.Min.X, r.Min.Y},
		{r.Max.X - 1, r.Min.Y},
		{r.Max.X - 1, r.Max.Y - 1},
		{r.Min.X, r.Max.Y - 1},
	})
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

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	if v < 0 {
		return -1
	}
	return 1
}
