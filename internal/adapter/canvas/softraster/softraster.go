// Package softraster is a software implementation of the Canvas port that
// draws into an image.RGBA. It is the backend used by the fyne raster
// widget and by tests; renderers themselves never depend on it.
package softraster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/tejashwikalptaru/soundscape/internal/paint"
	"github.com/tejashwikalptaru/soundscape/internal/ports"
)

// Canvas draws into a backing RGBA image with clipped, alpha-blended
// pixel writes. Not safe for concurrent use.
type Canvas struct {
	img *image.RGBA
}

// New creates a canvas with the given dimensions. Non-positive dimensions
// are clamped to 1x1.
func New(w, h int) *Canvas {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// Resize replaces the backing image when dimensions change; contents are
// discarded.
func (c *Canvas) Resize(w, h int) {
	cw, ch := c.Size()
	if cw == w && ch == h {
		return
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	c.img = image.NewRGBA(image.Rect(0, 0, w, h))
}

// Image exposes the backing image for display.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Size implements ports.Canvas.
func (c *Canvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// Clear implements ports.Canvas.
func (c *Canvas) Clear(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// FillRect implements ports.Canvas.
func (c *Canvas) FillRect(x, y, w, h float64, p *paint.Paint) {
	c.fillRectRounded(x, y, w, h, 0, p)
}

// FillRoundedRect implements ports.Canvas.
func (c *Canvas) FillRoundedRect(x, y, w, h, r float64, p *paint.Paint) {
	maxR := math.Min(w, h) / 2
	if r > maxR {
		r = maxR
	}
	c.fillRectRounded(x, y, w, h, r, p)
}

func (c *Canvas) fillRectRounded(x, y, w, h, r float64, p *paint.Paint) {
	if w <= 0 || h <= 0 {
		return
	}
	x0, y0 := int(math.Floor(x)), int(math.Floor(y))
	x1, y1 := int(math.Ceil(x+w)), int(math.Ceil(y+h))

	for py := y0; py < y1; py++ {
		col := p.Color
		if len(p.Gradient) > 0 {
			col = gradientAt(p.Gradient, (float64(py)-y)/h)
		}
		for px := x0; px < x1; px++ {
			if r > 0 && !insideRounded(float64(px)+0.5, float64(py)+0.5, x, y, w, h, r) {
				continue
			}
			c.blend(px, py, col)
		}
	}
}

// insideRounded tests a point against a rounded rectangle.
func insideRounded(px, py, x, y, w, h, r float64) bool {
	cx := math.Max(x+r, math.Min(px, x+w-r))
	cy := math.Max(y+r, math.Min(py, y+h-r))
	dx, dy := px-cx, py-cy
	return dx*dx+dy*dy <= r*r || (px >= x && px < x+w && py >= y+r && py < y+h-r) ||
		(py >= y && py < y+h && px >= x+r && px < x+w-r)
}

// FillCircle implements ports.Canvas.
func (c *Canvas) FillCircle(cx, cy, r float64, p *paint.Paint) {
	if r <= 0 {
		return
	}
	if p.BlurRadius > 0 {
		c.glowCircle(cx, cy, r, p)
	}
	c.fillCircleFlat(cx, cy, r, p.Color)
}

func (c *Canvas) fillCircleFlat(cx, cy, r float64, col color.RGBA) {
	ri := int(math.Ceil(r))
	for dy := -ri; dy <= ri; dy++ {
		for dx := -ri; dx <= ri; dx++ {
			if float64(dx*dx+dy*dy) <= r*r {
				c.blend(int(cx)+dx, int(cy)+dy, col)
			}
		}
	}
}

// glowCircle draws layered translucent rings beyond the circle edge,
// approximating a blur without a convolution pass.
func (c *Canvas) glowCircle(cx, cy, r float64, p *paint.Paint) {
	steps := int(p.BlurRadius)
	if steps < 1 {
		return
	}
	for s := steps; s >= 1; s-- {
		alpha := float64(p.Color.A) * 0.15 * (1 - float64(s)/float64(steps+1))
		col := p.Color
		col.A = uint8(alpha)
		c.fillCircleFlat(cx, cy, r+float64(s), col)
	}
}

// StrokeCircle implements ports.Canvas.
func (c *Canvas) StrokeCircle(cx, cy, r float64, p *paint.Paint) {
	if r <= 0 {
		return
	}
	steps := int(2 * math.Pi * r)
	if steps < 36 {
		steps = 36
	}
	for i := 0; i < steps; i++ {
		angle := 2 * math.Pi * float64(i) / float64(steps)
		px := cx + math.Cos(angle)*r
		py := cy + math.Sin(angle)*r
		c.dot(px, py, p.StrokeWidth, p.Color)
	}
}

// StrokeLine implements ports.Canvas.
func (c *Canvas) StrokeLine(x1, y1, x2, y2 float64, p *paint.Paint) {
	if p.BlurRadius > 0 {
		glow := *p
		glow.BlurRadius = 0
		glow.StrokeWidth = p.StrokeWidth + p.BlurRadius*2
		glow.Color.A = uint8(float64(p.Color.A) * 0.25)
		c.strokeLineFlat(x1, y1, x2, y2, &glow)
	}
	c.strokeLineFlat(x1, y1, x2, y2, p)
}

func (c *Canvas) strokeLineFlat(x1, y1, x2, y2 float64, p *paint.Paint) {
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length == 0 {
		c.dot(x1, y1, p.StrokeWidth, p.Color)
		return
	}

	// Perpendicular unit vector for thickness
	perpX := -dy / length
	perpY := dx / length
	thickness := int(math.Max(p.StrokeWidth, 1))
	steps := int(length) + 1

	for t := -thickness / 2; t <= thickness/2; t++ {
		offX := float64(t) * perpX
		offY := float64(t) * perpY
		for i := 0; i <= steps; i++ {
			progress := float64(i) / float64(steps)
			c.blend(int(x1+dx*progress+offX), int(y1+dy*progress+offY), p.Color)
		}
	}
}

// StrokePath implements ports.Canvas.
func (c *Canvas) StrokePath(path *paint.Path, p *paint.Paint) {
	for _, sub := range path.Subpaths() {
		pts := sub.Points
		for i := 1; i < len(pts); i++ {
			c.StrokeLine(pts[i-1].X, pts[i-1].Y, pts[i].X, pts[i].Y, p)
		}
		if sub.Closed && len(pts) > 2 {
			c.StrokeLine(pts[len(pts)-1].X, pts[len(pts)-1].Y, pts[0].X, pts[0].Y, p)
		}
	}
}

// FillPath implements ports.Canvas. Closed subpaths are filled with an
// even-odd scanline pass; open subpaths are ignored.
func (c *Canvas) FillPath(path *paint.Path, p *paint.Paint) {
	for _, sub := range path.Subpaths() {
		if !sub.Closed || len(sub.Points) < 3 {
			continue
		}
		c.fillPolygon(sub.Points, p)
	}
}

func (c *Canvas) fillPolygon(pts []paint.Point, p *paint.Paint) {
	minY, maxY := pts[0].Y, pts[0].Y
	for _, pt := range pts[1:] {
		minY = math.Min(minY, pt.Y)
		maxY = math.Max(maxY, pt.Y)
	}

	var xs []float64
	for y := int(minY); y <= int(maxY); y++ {
		fy := float64(y) + 0.5
		xs = xs[:0]
		j := len(pts) - 1
		for i := range pts {
			a, b := pts[i], pts[j]
			if (a.Y <= fy && b.Y > fy) || (b.Y <= fy && a.Y > fy) {
				xs = append(xs, a.X+(fy-a.Y)/(b.Y-a.Y)*(b.X-a.X))
			}
			j = i
		}
		if len(xs) < 2 {
			continue
		}
		sortFloats(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			col := p.Color
			if len(p.Gradient) > 0 {
				col = gradientAt(p.Gradient, (fy-minY)/math.Max(maxY-minY, 1))
			}
			for x := int(xs[i]); x < int(xs[i+1]); x++ {
				c.blend(x, y, col)
			}
		}
	}
}

// SnapshotInto implements ports.Canvas.
func (c *Canvas) SnapshotInto(dst *image.RGBA) *image.RGBA {
	b := c.img.Bounds()
	if dst == nil || dst.Bounds() != b {
		dst = image.NewRGBA(b)
	}
	copy(dst.Pix, c.img.Pix)
	return dst
}

// Blit implements ports.Canvas.
func (c *Canvas) Blit(src *image.RGBA, sx, sy, sw, sh, dx, dy int) {
	r := image.Rect(dx, dy, dx+sw, dy+sh)
	draw.Draw(c.img, r, src, image.Point{X: sx, Y: sy}, draw.Src)
}

// dot draws a small filled square, used for stroke endpoints and outlines.
func (c *Canvas) dot(x, y, size float64, col color.RGBA) {
	s := int(math.Max(size, 1))
	for dyy := -s / 2; dyy <= s/2; dyy++ {
		for dxx := -s / 2; dxx <= s/2; dxx++ {
			c.blend(int(x)+dxx, int(y)+dyy, col)
		}
	}
}

// blend writes one pixel with src-over alpha compositing, clipped to the
// surface bounds.
func (c *Canvas) blend(x, y int, col color.RGBA) {
	b := c.img.Bounds()
	if x < b.Min.X || x >= b.Max.X || y < b.Min.Y || y >= b.Max.Y {
		return
	}
	if col.A == 255 {
		c.img.SetRGBA(x, y, col)
		return
	}
	if col.A == 0 {
		return
	}
	dst := c.img.RGBAAt(x, y)
	a := float64(col.A) / 255
	c.img.SetRGBA(x, y, color.RGBA{
		R: uint8(float64(col.R)*a + float64(dst.R)*(1-a)),
		G: uint8(float64(col.G)*a + float64(dst.G)*(1-a)),
		B: uint8(float64(col.B)*a + float64(dst.B)*(1-a)),
		A: 255,
	})
}

// gradientAt linearly interpolates the stop list at position t in [0, 1].
func gradientAt(stops []paint.Stop, t float64) color.RGBA {
	if len(stops) == 1 {
		return stops[0].Color
	}
	t = math.Min(math.Max(t, 0), 1)
	for i := 1; i < len(stops); i++ {
		if t <= stops[i].Pos {
			span := stops[i].Pos - stops[i-1].Pos
			frac := 0.0
			if span > 0 {
				frac = (t - stops[i-1].Pos) / span
			}
			return lerpColor(stops[i-1].Color, stops[i].Color, frac)
		}
	}
	return stops[len(stops)-1].Color
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(a.R) + (float64(b.R)-float64(a.R))*t),
		G: uint8(float64(a.G) + (float64(b.G)-float64(a.G))*t),
		B: uint8(float64(a.B) + (float64(b.B)-float64(a.B))*t),
		A: uint8(float64(a.A) + (float64(b.A)-float64(a.A))*t),
	}
}

// sortFloats is a small insertion sort; scanline crossing lists are short.
func sortFloats(xs []float64) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j] < xs[j-1]; j-- {
			xs[j], xs[j-1] = xs[j-1], xs[j]
		}
	}
}

// Verify interface implementation at compile time.
var _ ports.Canvas = (*Canvas)(nil)
