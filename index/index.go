// Package index answers "which obstacles pass through this rectangle" with an
// R-tree over obstacle bounding boxes, so solved rectangles can be checked
// without scanning every obstacle.
package index

import (
	"github.com/dhconnelly/rtreego"
	"github.com/osuushi/emptyrect/geom"
)

// Bounding boxes are grown by this much on every side, since the tree rejects
// boxes with zero extent and most obstacles are axis-parallel or points.
const padding = 1e-6

type entry struct {
	segment geom.Segment
	bounds  rtreego.Rect
}

func (e *entry) Bounds() rtreego.Rect {
	return e.bounds
}

type Index struct {
	tree *rtreego.Rtree
	size int
}

func New(obstacles []geom.Segment) *Index {
	spatials := make([]rtreego.Spatial, 0, len(obstacles))
	for _, s := range obstacles {
		spatials = append(spatials, &entry{
			segment: s,
			bounds:  box(s.MinX(), s.MinY(), s.MaxX(), s.MaxY()),
		})
	}
	return &Index{
		tree: rtreego.NewTree(2, 25, 50, spatials...),
		size: len(obstacles),
	}
}

func (idx *Index) Len() int {
	return idx.size
}

// Blocking returns the obstacles that pass through the interior of r.
func (idx *Index) Blocking(r geom.Rectangle) []geom.Segment {
	var result []geom.Segment
	for _, spatial := range idx.tree.SearchIntersect(box(r.MinX, r.MinY, r.MaxX, r.MaxY)) {
		s := spatial.(*entry).segment
		if geom.SegmentIntersectsRectangle(s, r) {
			result = append(result, s)
		}
	}
	return result
}

func box(minX, minY, maxX, maxY float64) rtreego.Rect {
	rect, err := rtreego.NewRect(
		rtreego.Point{minX - padding, minY - padding},
		[]float64{maxX - minX + 2*padding, maxY - minY + 2*padding},
	)
	if err != nil {
		// Every length is at least 2*padding
		panic(err)
	}
	return rect
}
