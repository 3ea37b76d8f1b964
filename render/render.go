// Package render draws a solved scene: the bounds, the obstacles and the
// empty rectangle that was found.
package render

import (
	"image"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/emptyrect/geom"
	"github.com/pkg/errors"
)

// Padding around the bounds, in pixels
const Padding = 20

type Options struct {
	// Pixels per unit. Zero picks a scale that makes the longer side of the
	// bounds 800 pixels.
	Scale float64
}

func (o Options) scaleFor(bounds geom.Rectangle) float64 {
	if o.Scale > 0 {
		return o.Scale
	}
	longest := bounds.Width()
	if bounds.Height() > longest {
		longest = bounds.Height()
	}
	if longest <= 0 {
		return 1
	}
	return 800 / longest
}

// Draw renders the scene with the y axis pointing up.
func Draw(bounds geom.Rectangle, obstacles []geom.Segment, result geom.Rectangle, opts Options) image.Image {
	scale := opts.scaleFor(bounds)
	width := int(scale*bounds.Width()) + Padding*2
	height := int(scale*bounds.Height()) + Padding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(Padding, Padding)
	c.Scale(scale, scale)
	c.Translate(-bounds.MinX, -bounds.MinY)

	// Line widths are in user space, so undo the scale
	lineWidth := 2 / scale

	c.DrawRectangle(bounds.MinX, bounds.MinY, bounds.Width(), bounds.Height())
	c.SetRGB(0.5, 0.5, 0.5)
	c.SetLineWidth(lineWidth)
	c.Stroke()

	c.DrawRectangle(result.MinX, result.MinY, result.Width(), result.Height())
	c.SetRGBA(0, 0.8, 0.2, 0.4)
	c.FillPreserve()
	c.SetRGB(0, 1, 0.3)
	c.SetLineWidth(lineWidth)
	c.Stroke()

	c.SetRGB(0, 1, 1)
	for _, s := range obstacles {
		if s.IsPoint() {
			c.DrawCircle(s.P1.X, s.P1.Y, 2*lineWidth)
			c.Fill()
			continue
		}
		c.DrawLine(s.P1.X, s.P1.Y, s.P2.X, s.P2.Y)
		c.SetLineWidth(lineWidth)
		c.Stroke()
	}

	return c.Image()
}

// SavePNG renders the scene to a PNG file.
func SavePNG(path string, bounds geom.Rectangle, obstacles []geom.Segment, result geom.Rectangle, opts Options) error {
	img := Draw(bounds, obstacles, result, opts)
	if err := gg.SavePNG(path, img); err != nil {
		return errors.Wrapf(err, "saving %s", path)
	}
	return nil
}

// Preview prints the rendered scene to the terminal. This only works in
// terminals that support inline images, such as iTerm.
func Preview(bounds geom.Rectangle, obstacles []geom.Segment, result geom.Rectangle, opts Options) error {
	dir, err := os.MkdirTemp("", "emptyrect")
	if err != nil {
		return errors.Wrap(err, "creating preview directory")
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "preview.png")
	if err := SavePNG(path, bounds, obstacles, result, opts); err != nil {
		return err
	}
	imgcat.CatFile(path, os.Stdout)
	return nil
}
