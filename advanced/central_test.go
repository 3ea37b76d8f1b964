package advanced

import (
	"math/rand"
	"testing"

	"github.com/osuushi/emptyrect/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveCentral(t *testing.T) {
	center := geom.Point{X: 50, Y: 50}
	obstacles := []geom.Segment{
		geom.PointObstacle(70, 80),
		geom.PointObstacle(60, 30),
		geom.PointObstacle(80, 50),
		geom.PointObstacle(20, 60),
	}

	result := SolveCentral(center, obstacles, square)
	assert.Equal(t, geom.Rect(20, 0, 60, 100), result)
	assertEmptyRect(t, result, obstacles)
}

func TestSolveCentral_NoObstacles(t *testing.T) {
	result := SolveCentral(geom.Point{X: 30, Y: 70}, nil, square)
	assert.Equal(t, square, result)
}

func TestSolveCentral_Blocked(t *testing.T) {
	obstacles := []geom.Segment{geom.Seg(40, 50, 60, 50)}
	result := SolveCentral(geom.Point{X: 50, Y: 50}, obstacles, square)
	assert.Equal(t, 0.0, result.Area())
	assert.Equal(t, geom.Point{X: 50, Y: 50}, result.Center())
}

func TestSolveCentral_Corridor(t *testing.T) {
	// Two walls leave a horizontal corridor through the center; posts on
	// either side of the center cut it short.
	obstacles := []geom.Segment{
		geom.Seg(0, 60, 100, 60),
		geom.Seg(0, 40, 100, 40),
		geom.Seg(10, 45, 10, 55),
		geom.Seg(85, 40, 85, 60),
	}
	result := SolveCentral(geom.Point{X: 50, Y: 50}, obstacles, square)
	assert.Equal(t, geom.Rect(10, 40, 85, 60), result)
	assertEmptyRect(t, result, obstacles)
}

func TestPairRect(t *testing.T) {
	left := Step{Offset: 10, X: 40, Top: 90, Bottom: 20}
	right := Step{Offset: 30, X: 80, Top: 70, Bottom: 10}
	assert.Equal(t, geom.Rect(40, 20, 80, 70), pairRect(left, right))

	closed := Step{Offset: 30, X: 80, Top: 15, Bottom: 10}
	assert.Equal(t, 0.0, pairRect(left, closed).Area())
}

func TestBestPair_BandsShrinkingFromBothSides(t *testing.T) {
	// The middle left stair does best with the first right stair, which would
	// hide the far right stair from the top row of a monotone search.
	left := Staircase{
		{Offset: 0, X: 0, Top: 100, Bottom: 0},
		{Offset: 10, X: -10, Top: 100, Bottom: 40},
		{Offset: 20, X: -20, Top: 60, Bottom: 40},
	}
	right := Staircase{
		{Offset: 0, X: 0, Top: 100, Bottom: 0},
		{Offset: 10, X: 10, Top: 50, Bottom: 0},
		{Offset: 100, X: 100, Top: 45, Bottom: 0},
	}
	empty := geom.Rectangle{}
	assert.Equal(t, geom.Rect(0, 0, 100, 45), bestPair(empty, left, right))
}

// A staircase from x=0 outward in direction, with bands that shrink from both
// sides at random.
func randomStaircase(rng *rand.Rand, direction float64) Staircase {
	top, bottom := 100.0, 0.0
	stairs := Staircase{{Offset: 0, X: 0, Top: top, Bottom: bottom}}
	offset := 0.0
	for i := 0; i < 12; i++ {
		offset += float64(1 + rng.Intn(10))
		if rng.Intn(2) == 0 {
			top -= float64(rng.Intn(15))
		} else {
			bottom += float64(rng.Intn(15))
		}
		if top <= bottom {
			break
		}
		stairs = append(stairs, Step{Offset: offset, X: direction * offset, Top: top, Bottom: bottom})
	}
	return stairs
}

func TestBestPair_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 500; trial++ {
		left := randomStaircase(rng, -1)
		right := randomStaircase(rng, 1)

		bruteArea := 0.0
		for _, l := range left {
			for _, r := range right {
				if area := pairRect(l, r).Area(); area > bruteArea {
					bruteArea = area
				}
			}
		}

		result := bestPair(geom.Rectangle{}, left, right)
		require.InDelta(t, bruteArea, result.Area(), 1e-9, "trial %d", trial)
	}
}
