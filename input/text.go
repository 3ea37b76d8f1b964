package input

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/osuushi/emptyrect/geom"
	"github.com/pkg/errors"
)

// ReadText reads obstacles in a line-based format:
//
//	# comment
//	bounds 0 0 100 100
//	20 50 80 50
//	50 50
//
// Four numbers are a segment, two numbers a point obstacle. A bounds line
// declares the bounding region. Blank lines are ignored.
func ReadText(in io.Reader) (Scene, error) {
	var scene Scene
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		if fields[0] == "bounds" {
			values, err := parseFloats(fields[1:])
			if err != nil {
				return Scene{}, errors.Wrapf(err, "line %d", lineNumber)
			}
			if len(values) != 4 {
				return Scene{}, errors.Errorf("line %d: bounds needs 4 values, got %d", lineNumber, len(values))
			}
			scene.Bounds = geom.Rect(values[0], values[1], values[2], values[3])
			scene.HasBounds = true
			continue
		}

		values, err := parseFloats(fields)
		if err != nil {
			return Scene{}, errors.Wrapf(err, "line %d", lineNumber)
		}
		switch len(values) {
		case 2:
			scene.Obstacles = append(scene.Obstacles, geom.PointObstacle(values[0], values[1]))
		case 4:
			scene.Obstacles = append(scene.Obstacles, geom.Seg(values[0], values[1], values[2], values[3]))
		default:
			return Scene{}, errors.Errorf("line %d: expected 2 or 4 values, got %d", lineNumber, len(values))
		}
	}
	if err := scanner.Err(); err != nil {
		return Scene{}, errors.Wrap(err, "reading obstacles")
	}
	return scene, nil
}

// ParseBounds parses "minX,minY,maxX,maxY", separated by commas or any
// whitespace.
func ParseBounds(s string) (geom.Rectangle, error) {
	values, err := parseFloats(strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	}))
	if err != nil {
		return geom.Rectangle{}, errors.Wrapf(err, "bounds %q", s)
	}
	if len(values) != 4 {
		return geom.Rectangle{}, errors.Errorf("bounds %q: need 4 values, got %d", s, len(values))
	}
	return geom.Rect(values[0], values[1], values[2], values[3]), nil
}

func parseFloats(fields []string) ([]float64, error) {
	values := make([]float64, len(fields))
	for i, field := range fields {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid number %q", field)
		}
		values[i] = v
	}
	return values, nil
}
