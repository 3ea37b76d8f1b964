package input

import (
	"github.com/osuushi/emptyrect/geom"
	"github.com/pkg/errors"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"
)

// ReadDXF reads obstacles from the LINE and LWPOLYLINE entities of a DXF
// drawing. Lightweight polylines are taken as closed outlines. Other entity
// types are skipped; their count is returned so callers can warn about them.
// DXF has no notion of a bounding region, so the scene never has bounds.
func ReadDXF(path string) (scene Scene, skipped int, err error) {
	drawing, err := dxf.Open(path)
	if err != nil {
		return Scene{}, 0, errors.Wrapf(err, "opening dxf %s", path)
	}

	for _, ent := range drawing.Entities() {
		switch e := ent.(type) {
		case *entity.Line:
			scene.Obstacles = append(scene.Obstacles, geom.Seg(e.Start[0], e.Start[1], e.End[0], e.End[1]))

		case *entity.LwPolyline:
			points := make([]geom.Point, 0, len(e.Vertices))
			for _, v := range e.Vertices {
				points = append(points, geom.Point{X: v[0], Y: v[1]})
			}
			scene.Obstacles = append(scene.Obstacles, chain(points, true)...)

		default:
			skipped++
		}
	}
	return scene, skipped, nil
}
