package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/osuushi/emptyrect"
	"github.com/osuushi/emptyrect/advanced"
	"github.com/osuushi/emptyrect/input"
	"github.com/osuushi/emptyrect/internal/fixture"
	"github.com/osuushi/emptyrect/render"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Finds the maximum empty rectangle for a set of obstacles and prints it as
// "minX minY maxX maxY".
//
// By default, obstacles are read from stdin, one per line: "x y" for a point or
// "x1 y1 x2 y2" for a segment. A "bounds minX minY maxX maxY" line sets the
// bounding rectangle. Without bounds, the bounding box of the obstacles is
// used.
var (
	boundsFlag  = kingpin.Flag("bounds", "Bounding rectangle as minX,minY,maxX,maxY. Overrides bounds from the input.").String()
	svgFlag     = kingpin.Flag("svg", "Read obstacles from an SVG file. The viewBox gives the bounds.").ExistingFile()
	dxfFlag     = kingpin.Flag("dxf", "Read obstacles from the LINE and LWPOLYLINE entities of a DXF file.").ExistingFile()
	fixtureFlag = kingpin.Flag("fixture", "Solve one of the built in test scenes.").Enum(fixture.Names()...)
	pngFlag     = kingpin.Flag("png", "Write a picture of the result to this path.").String()
	scaleFlag   = kingpin.Flag("scale", "Pixels per unit in pictures. Zero fits the bounds to 800 pixels.").Default("0").Float64()
	imgcatFlag  = kingpin.Flag("imgcat", "Show a picture of the result in the terminal.").Bool()
	stepFlag    = kingpin.Flag("step", "Trace each partition step to stderr.").Short('s').Bool()
)

func main() {
	kingpin.CommandLine.Help = "Find the largest axis-aligned rectangle that no obstacle passes through."
	kingpin.Parse()
	log.SetFlags(0)

	scene, err := readScene()
	if err != nil {
		log.Fatal(err)
	}

	if *boundsFlag != "" {
		scene.Bounds, err = input.ParseBounds(*boundsFlag)
		if err != nil {
			log.Fatal(err)
		}
		scene.HasBounds = true
	}
	bounds := scene.Extent()

	var result emptyrect.Rectangle
	if *stepFlag {
		result, err = solveStepwise(os.Stderr, bounds, scene.Obstacles)
	} else {
		result, err = emptyrect.Solve(bounds, scene.Obstacles...)
	}
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%g %g %g %g\n", result.MinX, result.MinY, result.MaxX, result.MaxY)
	fmt.Fprintf(os.Stderr, "Area: %g\n", result.Area())

	opts := render.Options{Scale: *scaleFlag}
	if *pngFlag != "" {
		if err := render.SavePNG(*pngFlag, bounds, scene.Obstacles, result, opts); err != nil {
			log.Fatal(err)
		}
	}
	if *imgcatFlag {
		if err := render.Preview(bounds, scene.Obstacles, result, opts); err != nil {
			log.Fatal(err)
		}
	}
}

func readScene() (input.Scene, error) {
	switch {
	case *fixtureFlag != "":
		return fixture.Load(*fixtureFlag), nil
	case *svgFlag != "":
		f, err := os.Open(*svgFlag)
		if err != nil {
			return input.Scene{}, err
		}
		defer f.Close()
		return input.ReadSVG(f)
	case *dxfFlag != "":
		scene, skipped, err := input.ReadDXF(*dxfFlag)
		if skipped > 0 {
			log.Printf("Skipped %d unsupported DXF entities", skipped)
		}
		return scene, err
	default:
		return input.ReadText(os.Stdin)
	}
}

// Run the solver one job at a time, printing every event. The input is
// validated by a plain solve first, which also gives the result to check the
// trace against.
func solveStepwise(out io.Writer, bounds emptyrect.Rectangle, obstacles []emptyrect.Segment) (result emptyrect.Rectangle, err error) {
	expected, err := emptyrect.Solve(bounds, obstacles...)
	if err != nil {
		return emptyrect.Rectangle{}, err
	}

	defer func() {
		recoveredErr := advanced.HandleSolvePanicRecover(recover())
		if recoveredErr != nil {
			result = emptyrect.Rectangle{}
			err = recoveredErr
		}
	}()

	stepper := advanced.NewStepper(bounds, obstacles)
	for {
		event, ok := stepper.Step()
		if !ok {
			break
		}
		fmt.Fprintf(out, "%4d %s\n", stepper.Processed(), event)
	}
	result = stepper.Best()
	if result != expected {
		log.Printf("Stepwise result %s differs from %s", result, expected)
	}
	fmt.Fprintf(out, "%d jobs\n", stepper.Processed())
	return result, nil
}
