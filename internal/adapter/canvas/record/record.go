// Package record implements the Canvas port as a flat draw-op log.
// It backs the geometry idempotence tests: rendering the same simulation
// state twice must produce identical op logs.
package record

import (
	"fmt"
	"image"
	"image/color"

	"github.com/tejashwikalptaru/soundscape/internal/paint"
	"github.com/tejashwikalptaru/soundscape/internal/ports"
)

// Canvas records every draw call as a formatted string. Paint state is
// captured at call time, so later mutation of a pooled paint does not
// alter recorded ops.
type Canvas struct {
	W, H int
	Ops  []string
}

// New creates a recording canvas of the given logical size.
func New(w, h int) *Canvas {
	return &Canvas{W: w, H: h}
}

// ResetOps clears the op log without touching the logical size.
func (c *Canvas) ResetOps() {
	c.Ops = c.Ops[:0]
}

func (c *Canvas) log(format string, args ...any) {
	c.Ops = append(c.Ops, fmt.Sprintf(format, args...))
}

func paintKey(p *paint.Paint) string {
	return fmt.Sprintf("c=%v s=%d w=%.2f b=%.2f g=%d", p.Color, p.Style, p.StrokeWidth, p.BlurRadius, len(p.Gradient))
}

// Size implements ports.Canvas.
func (c *Canvas) Size() (int, int) { return c.W, c.H }

// Clear implements ports.Canvas.
func (c *Canvas) Clear(col color.Color) { c.log("clear %v", col) }

// FillRect implements ports.Canvas.
func (c *Canvas) FillRect(x, y, w, h float64, p *paint.Paint) {
	c.log("fillrect %.2f %.2f %.2f %.2f %s", x, y, w, h, paintKey(p))
}

// FillRoundedRect implements ports.Canvas.
func (c *Canvas) FillRoundedRect(x, y, w, h, r float64, p *paint.Paint) {
	c.log("roundrect %.2f %.2f %.2f %.2f %.2f %s", x, y, w, h, r, paintKey(p))
}

// FillCircle implements ports.Canvas.
func (c *Canvas) FillCircle(cx, cy, r float64, p *paint.Paint) {
	c.log("fillcircle %.2f %.2f %.2f %s", cx, cy, r, paintKey(p))
}

// StrokeCircle implements ports.Canvas.
func (c *Canvas) StrokeCircle(cx, cy, r float64, p *paint.Paint) {
	c.log("strokecircle %.2f %.2f %.2f %s", cx, cy, r, paintKey(p))
}

// StrokeLine implements ports.Canvas.
func (c *Canvas) StrokeLine(x1, y1, x2, y2 float64, p *paint.Paint) {
	c.log("line %.2f %.2f %.2f %.2f %s", x1, y1, x2, y2, paintKey(p))
}

// StrokePath implements ports.Canvas.
func (c *Canvas) StrokePath(path *paint.Path, p *paint.Paint) {
	c.log("strokepath %s %s", pathKey(path), paintKey(p))
}

// FillPath implements ports.Canvas.
func (c *Canvas) FillPath(path *paint.Path, p *paint.Paint) {
	c.log("fillpath %s %s", pathKey(path), paintKey(p))
}

// SnapshotInto implements ports.Canvas; the returned image is blank.
func (c *Canvas) SnapshotInto(dst *image.RGBA) *image.RGBA {
	c.log("snapshot")
	r := image.Rect(0, 0, c.W, c.H)
	if dst == nil || dst.Bounds() != r {
		dst = image.NewRGBA(r)
	}
	return dst
}

// Blit implements ports.Canvas.
func (c *Canvas) Blit(_ *image.RGBA, sx, sy, sw, sh, dx, dy int) {
	c.log("blit %d %d %d %d %d %d", sx, sy, sw, sh, dx, dy)
}

func pathKey(p *paint.Path) string {
	key := ""
	for _, sub := range p.Subpaths() {
		key += "m"
		for _, pt := range sub.Points {
			key += fmt.Sprintf("%.2f,%.2f;", pt.X, pt.Y)
		}
		if sub.Closed {
			key += "z"
		}
	}
	return key
}

// Verify interface implementation at compile time.
var _ ports.Canvas = (*Canvas)(nil)
