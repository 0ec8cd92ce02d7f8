package softraster

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tejashwikalptaru/soundscape/internal/paint"
)

func fillPaint(c color.RGBA) *paint.Paint {
	p := &paint.Paint{}
	p.Reset()
	p.Color = c
	return p
}

func TestNewClampsDimensions(t *testing.T) {
	c := New(0, -5)
	w, h := c.Size()
	assert.Equal(t, 1, w)
	assert.Equal(t, 1, h)
}

func TestResize(t *testing.T) {
	c := New(10, 10)
	img := c.Image()

	c.Resize(10, 10)
	assert.Same(t, img, c.Image(), "same dimensions keep the backing image")

	c.Resize(20, 5)
	w, h := c.Size()
	assert.Equal(t, 20, w)
	assert.Equal(t, 5, h)
	assert.NotSame(t, img, c.Image())
}

func TestClearAndFillRect(t *testing.T) {
	c := New(10, 10)
	c.Clear(color.Black)

	red := color.RGBA{R: 255, A: 255}
	c.FillRect(2, 2, 4, 4, fillPaint(red))

	assert.Equal(t, red, c.Image().RGBAAt(3, 3))
	assert.Equal(t, color.RGBA{A: 255}, c.Image().RGBAAt(8, 8), "outside stays cleared")
}

func TestDrawingOutOfBoundsIsSafe(t *testing.T) {
	c := New(8, 8)
	p := fillPaint(color.RGBA{G: 255, A: 255})

	assert.NotPanics(t, func() {
		c.FillRect(-10, -10, 100, 100, p)
		c.FillCircle(-5, 4, 20, p)
		c.StrokeLine(-50, -50, 50, 50, p)
		c.StrokeCircle(4, 4, 100, p)
	})
}

func TestBlendAlpha(t *testing.T) {
	c := New(4, 4)
	c.Clear(color.Black)

	half := color.RGBA{R: 200, A: 128}
	c.FillRect(0, 0, 4, 4, fillPaint(half))

	got := c.Image().RGBAAt(1, 1)
	assert.InDelta(t, 100, int(got.R), 2, "half alpha blends toward the background")
	assert.Equal(t, uint8(255), got.A)
}

func TestZeroAlphaDrawsNothing(t *testing.T) {
	c := New(4, 4)
	c.Clear(color.White)

	c.FillRect(0, 0, 4, 4, fillPaint(color.RGBA{R: 10, A: 0}))
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, c.Image().RGBAAt(2, 2))
}

func TestGradientFill(t *testing.T) {
	c := New(4, 20)
	p := fillPaint(color.RGBA{A: 255})
	p.SetGradient(
		paint.Stop{Pos: 0, Color: color.RGBA{R: 255, A: 255}},
		paint.Stop{Pos: 1, Color: color.RGBA{B: 255, A: 255}},
	)
	c.FillRect(0, 0, 4, 20, p)

	top := c.Image().RGBAAt(2, 0)
	bottom := c.Image().RGBAAt(2, 19)
	assert.Greater(t, top.R, top.B)
	assert.Greater(t, bottom.B, bottom.R)
}

func TestFillRoundedRectClipsCorners(t *testing.T) {
	c := New(20, 20)
	c.Clear(color.Black)
	c.FillRoundedRect(0, 0, 20, 20, 8, fillPaint(color.RGBA{R: 255, A: 255}))

	assert.Equal(t, color.RGBA{A: 255}, c.Image().RGBAAt(0, 0), "corner is outside the radius")
	assert.Equal(t, color.RGBA{R: 255, A: 255}, c.Image().RGBAAt(10, 10))
}

func TestFillPath(t *testing.T) {
	c := New(20, 20)
	c.Clear(color.Black)

	var path paint.Path
	path.MoveTo(2, 2)
	path.LineTo(18, 2)
	path.LineTo(18, 18)
	path.LineTo(2, 18)
	path.Close()

	c.FillPath(&path, fillPaint(color.RGBA{B: 255, A: 255}))
	assert.Equal(t, color.RGBA{B: 255, A: 255}, c.Image().RGBAAt(10, 10))
	assert.Equal(t, color.RGBA{A: 255}, c.Image().RGBAAt(0, 0))
}

func TestFillPathIgnoresOpenSubpaths(t *testing.T) {
	c := New(20, 20)
	c.Clear(color.Black)

	var path paint.Path
	path.MoveTo(2, 2)
	path.LineTo(18, 2)
	path.LineTo(18, 18)

	c.FillPath(&path, fillPaint(color.RGBA{B: 255, A: 255}))
	assert.Equal(t, color.RGBA{A: 255}, c.Image().RGBAAt(10, 10))
}

func TestSnapshotIntoReusesBuffer(t *testing.T) {
	c := New(16, 16)
	c.Clear(color.White)

	snap := c.SnapshotInto(nil)
	require.NotNil(t, snap)
	assert.Equal(t, c.Image().Pix, snap.Pix)

	again := c.SnapshotInto(snap)
	assert.Same(t, snap, again, "matching bounds reuse the buffer")

	c.Resize(32, 32)
	bigger := c.SnapshotInto(snap)
	assert.NotSame(t, snap, bigger, "dimension change reallocates")
}

func TestSnapshotIsDetached(t *testing.T) {
	c := New(8, 8)
	c.Clear(color.Black)
	snap := c.SnapshotInto(nil)

	c.Clear(color.White)
	assert.Equal(t, uint8(0), snap.Pix[0], "snapshot does not alias the surface")
}

func TestBlitShiftsContent(t *testing.T) {
	c := New(16, 8)
	c.Clear(color.Black)
	c.FillRect(0, 0, 4, 8, fillPaint(color.RGBA{R: 255, A: 255}))

	snap := c.SnapshotInto(nil)
	c.Blit(snap, 0, 0, 4, 8, 10, 0)

	assert.Equal(t, color.RGBA{R: 255, A: 255}, c.Image().RGBAAt(11, 3))
}

func TestBlitOutOfBoundsIsClipped(t *testing.T) {
	c := New(8, 8)
	snap := c.SnapshotInto(nil)

	assert.NotPanics(t, func() {
		c.Blit(snap, 0, 0, 8, 8, 100, 100)
		c.Blit(snap, 0, 0, 8, 8, -4, -4)
	})
}
