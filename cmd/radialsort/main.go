package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/osuushi/radial"
	"github.com/osuushi/radial/internal"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Demo of angular sorting. Input on stdin should be newline separated points in
// the form "x y", or an SVG file can be given instead. The sorted points are
// printed one per line in the same "x y" form.
var (
	app = kingpin.New("radialsort", "Sort 2D points angularly around a center.")

	strategy  = app.Flag("strategy", "Comparator to sort with.").Default("less").Enum("less", "atan2")
	centerArg = app.Flag("center", "Center as X,Y. Defaults to the centroid of the points.").String()
	svgPath   = app.Flag("svg", "Read points from an SVG file instead of stdin.").ExistingFile()
	pngPath   = app.Flag("png", "Also draw the sorted ring to this PNG file.").String()
	preview   = app.Flag("imgcat", "Print the drawing to the terminal (iTerm only). Implies --png.").Bool()
	scale     = app.Flag("scale", "Pixels per unit when drawing.").Default("40").Float64()
	verbose   = app.Flag("verbose", "Log debug output.").Short('v').Bool()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	log := logrus.New()
	log.SetOutput(os.Stderr)
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	// The sorted points go to stdout, so the image preview goes to stderr
	if err := run(log, os.Stdin, os.Stdout, os.Stderr); err != nil {
		log.WithError(err).Fatal("radialsort failed")
	}
}

func run(log logrus.FieldLogger, in io.Reader, out, term io.Writer) error {
	points, err := readInput(in)
	if err != nil {
		return err
	}
	log.WithField("count", len(points)).Info("read points")

	var center *internal.Point
	if *centerArg != "" {
		center, err = parseCenter(*centerArg)
		if err != nil {
			return err
		}
	} else {
		center, err = radial.Center(points...)
		if err != nil {
			return err
		}
	}

	cmp := radial.Less
	if *strategy == "atan2" {
		cmp = radial.AngularOrder
	}
	log.WithFields(logrus.Fields{
		"center":   center.String(),
		"strategy": *strategy,
	}).Info("sorting")

	if err := radial.SortAround(center, points, cmp); err != nil {
		return err
	}
	log.Debugf("sorted:\n%s", points.DebugString(center))

	for _, p := range points {
		fmt.Fprintf(out, "%g %g\n", p.X, p.Y)
	}

	if path := drawingPath(); path != "" {
		if *preview {
			err = points.Preview(center, path, *scale, term)
		} else {
			err = points.DrawPNG(center, path, *scale)
		}
		if err != nil {
			return err
		}
		log.WithField("path", path).Info("drew points")
	}
	return nil
}

// Where to draw, if anywhere. Previewing without --png draws to a temp file.
func drawingPath() string {
	if *pngPath == "" && *preview {
		return filepath.Join(os.TempDir(), "radialsort.png")
	}
	return *pngPath
}

func readInput(in io.Reader) (internal.PointList, error) {
	if *svgPath != "" {
		f, err := os.Open(*svgPath)
		if err != nil {
			return nil, errors.Wrap(err, "could not open svg")
		}
		defer f.Close()
		return internal.LoadSVGPoints(f)
	}
	return readPoints(in)
}

func readPoints(in io.Reader) (internal.PointList, error) {
	var points internal.PointList
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		if len(parts) != 2 {
			return nil, errors.Errorf("line %d: expected \"x y\", got %q", lineNumber, line)
		}
		point, err := parsePoint(parts[0], parts[1])
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	return points, errors.Wrap(scanner.Err(), "could not read points")
}

func parseCenter(arg string) (*internal.Point, error) {
	parts := strings.Split(arg, ",")
	if len(parts) != 2 {
		return nil, errors.Errorf("center must be X,Y, got %q", arg)
	}
	return parsePoint(strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]))
}

func parsePoint(xs, ys string) (*internal.Point, error) {
	x, err := strconv.ParseFloat(xs, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid x value %q", xs)
	}
	y, err := strconv.ParseFloat(ys, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid y value %q", ys)
	}
	return &internal.Point{X: x, Y: y}, nil
}
