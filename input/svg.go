package input

import (
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/emptyrect/geom"
	"github.com/pkg/errors"
)

// ReadSVG reads obstacles from the line, polyline, polygon and rect elements
// of an SVG document. This is not a full SVG reader: transforms, paths and
// styles are ignored, and coordinates are taken as they are, y axis pointing
// down. The root viewBox, if present, becomes the bounds.
func ReadSVG(in io.Reader) (Scene, error) {
	root, err := svgparser.Parse(in, false)
	if err != nil {
		return Scene{}, errors.Wrap(err, "parsing svg")
	}

	var scene Scene
	if viewBox, ok := root.Attributes["viewBox"]; ok {
		bounds, err := ParseBounds(viewBox)
		if err != nil {
			return Scene{}, errors.Wrap(err, "viewBox")
		}
		// viewBox is "x y width height"
		bounds.MaxX += bounds.MinX
		bounds.MaxY += bounds.MinY
		scene.Bounds = bounds
		scene.HasBounds = true
	}

	for _, el := range root.FindAll("line") {
		values, err := attributeFloats(el, "x1", "y1", "x2", "y2")
		if err != nil {
			return Scene{}, err
		}
		scene.Obstacles = append(scene.Obstacles, geom.Seg(values[0], values[1], values[2], values[3]))
	}

	for _, name := range []string{"polyline", "polygon"} {
		for _, el := range root.FindAll(name) {
			points, err := parsePoints(el.Attributes["points"])
			if err != nil {
				return Scene{}, errors.Wrapf(err, "%s points", name)
			}
			scene.Obstacles = append(scene.Obstacles, chain(points, name == "polygon")...)
		}
	}

	for _, el := range root.FindAll("rect") {
		values, err := attributeFloats(el, "x", "y", "width", "height")
		if err != nil {
			return Scene{}, err
		}
		r := geom.Rect(values[0], values[1], values[0]+values[2], values[1]+values[3])
		edges := r.Edges()
		scene.Obstacles = append(scene.Obstacles, edges[:]...)
	}

	return scene, nil
}

// Read numeric attributes. Missing attributes are zero, as in SVG.
func attributeFloats(el *svgparser.Element, names ...string) ([]float64, error) {
	values := make([]float64, len(names))
	for i, name := range names {
		raw, ok := el.Attributes[name]
		if !ok {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "%s attribute %s=%q", el.Name, name, raw)
		}
		values[i] = v
	}
	return values, nil
}

// Parse an SVG points list, "x1,y1 x2,y2 ...". Commas and whitespace are
// interchangeable.
func parsePoints(s string) ([]geom.Point, error) {
	values, err := parseFloats(strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\n' || r == '\t' || r == '\r'
	}))
	if err != nil {
		return nil, err
	}
	if len(values)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates in %q", s)
	}
	points := make([]geom.Point, 0, len(values)/2)
	for i := 0; i < len(values); i += 2 {
		points = append(points, geom.Point{X: values[i], Y: values[i+1]})
	}
	return points, nil
}
