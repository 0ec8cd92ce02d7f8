// Package fyneui adapts the rendering core to Fyne. The visualizer
// widget hosts one renderer behind a canvas raster; the host pushes
// spectrum frames and the raster callback drives the render pipeline.
package fyneui

import (
	"image"
	"image/color"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/tejashwikalptaru/soundscape/internal/adapter/canvas/softraster"
	"github.com/tejashwikalptaru/soundscape/internal/domain"
	"github.com/tejashwikalptaru/soundscape/internal/ports"
)

// VisualizerWidget displays one renderer and forwards spectrum frames to
// it. The active renderer can be swapped at runtime to switch styles.
type VisualizerWidget struct {
	widget.BaseWidget

	raster *canvas.Raster

	mu       sync.Mutex
	renderer ports.Renderer
	frame    domain.Frame

	surface *softraster.Canvas

	onDoubleTap func()
}

// NewVisualizerWidget creates a widget hosting the given renderer.
func NewVisualizerWidget(renderer ports.Renderer) *VisualizerWidget {
	w := &VisualizerWidget{
		renderer: renderer,
		surface:  softraster.New(1, 1),
	}
	w.raster = canvas.NewRaster(w.render)
	w.ExtendBaseWidget(w)
	return w
}

// CreateRenderer implements fyne.Widget.
func (w *VisualizerWidget) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(w.raster)
}

// MinSize returns the minimum size of the widget.
func (w *VisualizerWidget) MinSize() fyne.Size {
	return fyne.NewSize(0, 0)
}

// UpdateSpectrum feeds the next frame and schedules a redraw.
// This should be called periodically (e.g. 30fps) by the host loop.
func (w *VisualizerWidget) UpdateSpectrum(frame domain.Frame) {
	w.mu.Lock()
	w.frame = frame
	w.mu.Unlock()

	w.raster.Refresh()
}

// SetRenderer swaps the hosted renderer, e.g. on a style change.
func (w *VisualizerWidget) SetRenderer(renderer ports.Renderer) {
	w.mu.Lock()
	w.renderer = renderer
	w.mu.Unlock()

	w.raster.Refresh()
}

// Renderer returns the currently hosted renderer.
func (w *VisualizerWidget) Renderer() ports.Renderer {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.renderer
}

// SetOnDoubleTap registers the double-tap callback, used by the host to
// cycle styles.
func (w *VisualizerWidget) SetOnDoubleTap(fn func()) {
	w.onDoubleTap = fn
}

// DoubleTapped implements fyne.DoubleTappable.
func (w *VisualizerWidget) DoubleTapped(_ *fyne.PointEvent) {
	if w.onDoubleTap != nil {
		w.onDoubleTap()
	}
}

// render is the raster generator; it runs the full per-frame pipeline of
// the hosted renderer against the software surface.
func (w *VisualizerWidget) render(width, height int) image.Image {
	w.mu.Lock()
	renderer := w.renderer
	frame := w.frame
	w.mu.Unlock()

	w.surface.Resize(width, height)
	w.surface.Clear(color.Black)

	if renderer != nil {
		renderer.Render(w.surface, frame)
	}
	return w.surface.Image()
}

// Verify interface implementations at compile time.
var (
	_ fyne.Widget         = (*VisualizerWidget)(nil)
	_ fyne.DoubleTappable = (*VisualizerWidget)(nil)
)
