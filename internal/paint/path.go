package paint

// Point is a 2D coordinate in canvas space.
type Point struct {
	X, Y float64
}

// Subpath is one contiguous polyline of a Path.
type Subpath struct {
	Points []Point
	Closed bool
}

// Path is a mutable scratch path builder. Renderers that draw multi-entity
// geometry reset a single rented path between passes instead of renting a
// fresh one, keeping allocation out of the frame loop.
type Path struct {
	subs []Subpath
}

// Reset clears all subpaths while keeping the backing arrays.
func (p *Path) Reset() {
	for i := range p.subs {
		p.subs[i].Points = p.subs[i].Points[:0]
		p.subs[i].Closed = false
	}
	p.subs = p.subs[:0]
}

// MoveTo starts a new subpath at the given point.
func (p *Path) MoveTo(x, y float64) {
	if n := len(p.subs); n < cap(p.subs) {
		p.subs = p.subs[:n+1]
		p.subs[n].Points = append(p.subs[n].Points[:0], Point{X: x, Y: y})
		p.subs[n].Closed = false
		return
	}
	p.subs = append(p.subs, Subpath{Points: []Point{{X: x, Y: y}}})
}

// LineTo extends the current subpath with a straight segment. Calling
// LineTo before any MoveTo starts a subpath at the given point.
func (p *Path) LineTo(x, y float64) {
	if len(p.subs) == 0 {
		p.MoveTo(x, y)
		return
	}
	last := &p.subs[len(p.subs)-1]
	last.Points = append(last.Points, Point{X: x, Y: y})
}

// Close marks the current subpath as closed.
func (p *Path) Close() {
	if len(p.subs) == 0 {
		return
	}
	p.subs[len(p.subs)-1].Closed = true
}

// Subpaths exposes the built geometry for backends. The returned slice is
// owned by the path and valid until the next Reset.
func (p *Path) Subpaths() []Subpath {
	return p.subs
}

// Empty reports whether the path holds no drawable segments.
func (p *Path) Empty() bool {
	for i := range p.subs {
		if len(p.subs[i].Points) >= 2 {
			return false
		}
	}
	return true
}
