package emptyrect

import (
	"math"
	"testing"

	"github.com/osuushi/emptyrect/geom"
	"github.com/osuushi/emptyrect/internal/fixture"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertEmpty(t *testing.T, bounds, r Rectangle, obstacles []Segment) {
	t.Helper()
	assert.True(t, bounds.Contains(r, 1e-9), "%s is not inside %s", r, bounds)
	for _, s := range obstacles {
		assert.False(t, geom.SegmentIntersectsRectangle(s, r), "%s passes through %s", s, r)
	}
}

// Smoke test. The internals are already tested.
func TestSolve(t *testing.T) {
	bounds := Rectangle{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}
	result, err := Solve(bounds, geom.Seg(5, 0, 5, 10))
	require.NoError(t, err)
	assert.InDelta(t, 50, result.Area(), 1e-9)
}

func TestSolve_NoObstacles(t *testing.T) {
	bounds := geom.Rect(-5, -5, 5, 5)
	result, err := Solve(bounds)
	require.NoError(t, err)
	assert.Equal(t, bounds, result)
}

func TestSolve_Fixtures(t *testing.T) {
	cases := []struct {
		name    string
		minArea float64
		maxArea float64
	}{
		{"cross", 1990, 5000},
		{"u_shape", 3000, 3000},
		{"pillars", 4000, 4000},
		{"slanted", 1, math.Inf(1)},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			scene := fixture.Load(c.name)
			result, err := Solve(scene.Bounds, scene.Obstacles...)
			require.NoError(t, err)
			assertEmpty(t, scene.Bounds, result, scene.Obstacles)
			assert.GreaterOrEqual(t, result.Area(), c.minArea-1e-6)
			assert.LessOrEqual(t, result.Area(), c.maxArea+1e-6)
		})
	}
}

func TestSolve_InvalidInput(t *testing.T) {
	bounds := geom.Rect(0, 0, 10, 10)
	cases := []struct {
		name      string
		bounds    Rectangle
		obstacles []Segment
		expected  error
	}{
		{"inverted x", geom.Rect(10, 0, 0, 10), nil, ErrInvalidBounds},
		{"inverted y", geom.Rect(0, 10, 10, 0), nil, ErrInvalidBounds},
		{"nan bounds", geom.Rect(0, 0, math.NaN(), 10), nil, ErrInvalidBounds},
		{"infinite bounds", geom.Rect(0, 0, math.Inf(1), 10), nil, ErrInvalidBounds},
		{"nan obstacle", bounds, []Segment{geom.Seg(1, 1, 2, 2), geom.Seg(math.NaN(), 1, 2, 2)}, ErrInvalidObstacle},
		{"infinite obstacle", bounds, []Segment{geom.Seg(1, math.Inf(-1), 2, 2)}, ErrInvalidObstacle},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			result, err := Solve(c.bounds, c.obstacles...)
			require.Error(t, err)
			assert.Equal(t, c.expected, errors.Cause(err))
			assert.Equal(t, Rectangle{}, result)
		})
	}
}

func TestSolve_DegenerateBounds(t *testing.T) {
	result, err := Solve(geom.Rect(3, 3, 3, 8), geom.PointObstacle(3, 5))
	require.NoError(t, err)
	assert.Equal(t, 0.0, result.Area())
}

func TestSolveRects(t *testing.T) {
	bounds := geom.Rect(0, 0, 100, 100)
	obstacles := []Rectangle{
		geom.Rect(10, 10, 30, 30),
		geom.Rect(70, 10, 90, 30),
		geom.Rect(10, 70, 30, 90),
		geom.Rect(70, 70, 90, 90),
	}
	result, err := SolveRects(bounds, obstacles...)
	require.NoError(t, err)
	assert.InDelta(t, 4000, result.Area(), 1e-6)
	for _, r := range obstacles {
		edges := r.Edges()
		assertEmpty(t, bounds, result, edges[:])
	}

	_, err = SolveRects(bounds, geom.Rect(5, 5, 1, 1))
	assert.Equal(t, ErrInvalidObstacle, errors.Cause(err))
}
