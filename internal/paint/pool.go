package paint

import (
	"sync"
	"sync/atomic"
)

// Pool lends transient Paint and Path scratch objects to renderers.
// Every rented object must be returned exactly once; the WithPaint and
// WithPath helpers guarantee the return on all exit paths, including
// panics from the drawing layer.
type Pool struct {
	paints sync.Pool
	paths  sync.Pool

	outPaints atomic.Int64
	outPaths  atomic.Int64
}

// NewPool creates an empty pool. Objects are created lazily on first rent.
func NewPool() *Pool {
	p := &Pool{}
	p.paints.New = func() any { return &Paint{} }
	p.paths.New = func() any { return &Path{} }
	return p
}

// RentPaint hands out a paint with unspecified prior state.
func (p *Pool) RentPaint() *Paint {
	p.outPaints.Add(1)
	return p.paints.Get().(*Paint)
}

// ReturnPaint gives a paint back to the pool.
func (p *Pool) ReturnPaint(pt *Paint) {
	if pt == nil {
		return
	}
	p.outPaints.Add(-1)
	p.paints.Put(pt)
}

// RentPath hands out a path with unspecified prior state; callers reset it
// before building geometry.
func (p *Pool) RentPath() *Path {
	p.outPaths.Add(1)
	return p.paths.Get().(*Path)
}

// ReturnPath gives a path back to the pool.
func (p *Pool) ReturnPath(pt *Path) {
	if pt == nil {
		return
	}
	p.outPaths.Add(-1)
	p.paths.Put(pt)
}

// WithPaint rents a reset paint for the duration of fn and returns it on
// every exit path.
func (p *Pool) WithPaint(fn func(*Paint) error) error {
	pt := p.RentPaint()
	defer p.ReturnPaint(pt)
	pt.Reset()
	return fn(pt)
}

// WithPath rents a reset path for the duration of fn and returns it on
// every exit path.
func (p *Pool) WithPath(fn func(*Path) error) error {
	pt := p.RentPath()
	defer p.ReturnPath(pt)
	pt.Reset()
	return fn(pt)
}

// Outstanding reports the number of rented objects that have not been
// returned. Zero between frames means no leaks.
func (p *Pool) Outstanding() int {
	return int(p.outPaints.Load() + p.outPaths.Load())
}
