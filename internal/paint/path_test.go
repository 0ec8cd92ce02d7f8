package paint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathBuild(t *testing.T) {
	var p Path
	assert.True(t, p.Empty())

	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.LineTo(10, 10)
	p.Close()

	subs := p.Subpaths()
	require.Len(t, subs, 1)
	assert.Len(t, subs[0].Points, 3)
	assert.True(t, subs[0].Closed)
	assert.False(t, p.Empty())
}

func TestPathLineToWithoutMoveTo(t *testing.T) {
	var p Path
	p.LineTo(5, 5)
	p.LineTo(6, 6)

	subs := p.Subpaths()
	require.Len(t, subs, 1)
	assert.Equal(t, Point{X: 5, Y: 5}, subs[0].Points[0])
}

func TestPathResetKeepsCapacity(t *testing.T) {
	var p Path
	p.MoveTo(0, 0)
	p.LineTo(1, 1)
	p.MoveTo(2, 2)
	p.LineTo(3, 3)
	p.Close()

	p.Reset()
	assert.True(t, p.Empty())
	assert.Empty(t, p.Subpaths())

	// Rebuilt subpaths must not carry closed flags or points from before.
	p.MoveTo(7, 7)
	subs := p.Subpaths()
	require.Len(t, subs, 1)
	assert.Len(t, subs[0].Points, 1)
	assert.False(t, subs[0].Closed)
}

func TestPathSinglePointIsEmpty(t *testing.T) {
	var p Path
	p.MoveTo(1, 1)
	assert.True(t, p.Empty(), "one point is not a drawable segment")
}
