// Package ports defines the interfaces between the rendering core and its
// collaborators: the 2D drawing surface, the spectrum source, the random
// source and the renderers themselves. Following the ports and adapters
// pattern, implementations live under internal/adapter.
package ports

import (
	"image"
	"image/color"

	"github.com/tejashwikalptaru/soundscape/internal/paint"
)

// Canvas is the 2D drawing surface the renderers draw against. Coordinates
// are in pixels with the origin at the top left. Implementations are not
// required to be safe for concurrent use; one renderer draws one frame at
// a time.
type Canvas interface {
	// Size returns the current surface dimensions in pixels.
	Size() (width, height int)

	// Clear fills the whole surface with a color.
	Clear(c color.Color)

	// FillRect fills an axis-aligned rectangle.
	FillRect(x, y, w, h float64, p *paint.Paint)

	// FillRoundedRect fills a rectangle with rounded corners of radius r.
	FillRoundedRect(x, y, w, h, r float64, p *paint.Paint)

	// FillCircle fills a circle centered at (cx, cy).
	FillCircle(cx, cy, r float64, p *paint.Paint)

	// StrokeCircle draws a circle outline.
	StrokeCircle(cx, cy, r float64, p *paint.Paint)

	// StrokeLine draws a straight line segment.
	StrokeLine(x1, y1, x2, y2 float64, p *paint.Paint)

	// StrokePath strokes all subpaths of the given path.
	StrokePath(path *paint.Path, p *paint.Paint)

	// FillPath fills all closed subpaths of the given path.
	FillPath(path *paint.Path, p *paint.Paint)

	// SnapshotInto copies the current surface contents into dst and
	// returns it, allocating a new buffer only when dst is nil or its
	// dimensions differ. Used by compositing effects that re-blit
	// distorted stripes of the frame without per-frame allocation.
	SnapshotInto(dst *image.RGBA) *image.RGBA

	// Blit copies the src rectangle (sx, sy, sw, sh) onto the surface at
	// (dx, dy), clipped to the surface bounds.
	Blit(src *image.RGBA, sx, sy, sw, sh, dx, dy int)
}
