package internal

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/fogleman/gg"
	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/radial/internal/dbg"
	"github.com/pkg/errors"
)

// Padding around the points, so the labels on the outermost ones stay visible
const dbgDrawPadding = 40

// Largest scaled span, in pixels, that DrawPNG will allocate a canvas for
const maxDrawExtent = 1 << 13

// Render the list as a closed ring in its current order, with the center
// marked and each point labeled by its index. Sort first to see the winding.
func (list PointList) DrawPNG(center *Point, path string, scale float64) error {
	if len(list) == 0 {
		return errors.Wrap(ErrEmptyInput, "nothing to draw")
	}
	minX, minY := center.X, center.Y
	maxX, maxY := center.X, center.Y
	for _, p := range list {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	spanX := scale * (maxX - minX)
	spanY := scale * (maxY - minY)
	for _, span := range []float64{spanX, spanY} {
		// Also false for NaN
		if !(span >= 0 && span <= maxDrawExtent) {
			return errors.Errorf("cannot draw a %gx%g pixel canvas (scale %g)", spanX, spanY, scale)
		}
	}

	// Set up the context
	width := int(spanX) + dbgDrawPadding*2
	height := int(spanY) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left, pad, scale, and
	// translate to min
	toCanvas := gg.Identity().
		Translate(0, float64(height)).
		Scale(1, -1).
		Translate(dbgDrawPadding, dbgDrawPadding).
		Scale(scale, scale).
		Translate(-minX, -minY)

	c.SetLineWidth(2)
	for i, p := range list {
		x, y := toCanvas.TransformPoint(p.X, p.Y)
		if i == 0 {
			c.MoveTo(x, y)
		} else {
			c.LineTo(x, y)
		}
	}
	c.ClosePath()
	c.SetRGB(0, 1, 1)
	c.Stroke()

	// Center
	cx, cy := toCanvas.TransformPoint(center.X, center.Y)
	c.SetRGB(1, 0, 0)
	c.DrawCircle(cx, cy, 4)
	c.Fill()

	// Points and their positions in the order
	for i, p := range list {
		x, y := toCanvas.TransformPoint(p.X, p.Y)
		c.SetRGB(0, 1, 0)
		c.DrawCircle(x, y, 3)
		c.Fill()
		c.SetRGB(1, 1, 1)
		c.DrawStringAnchored(fmt.Sprint(i), x, y-6, 0.5, 0)
	}

	return errors.Wrapf(c.SavePNG(path), "could not save %s", path)
}

// Draw to path and print the image to w, which should be an iTerm terminal.
// This is for debugging purposes only.
func (list PointList) Preview(center *Point, path string, scale float64, w io.Writer) error {
	if err := list.DrawPNG(center, path, scale); err != nil {
		return err
	}
	return imgcat.CatFile(path, w)
}

// One point per line, with a readable name colored by which half plane of the
// center the point lies in: green for right, cyan for left, and red for points
// exactly on the vertical through the center.
func (list PointList) DebugString(center *Point) string {
	var b strings.Builder
	for i, p := range list {
		name := dbg.Name(p)
		switch dx := p.X - center.X; {
		case dx > 0:
			name = aurora.Green(name).String()
		case dx < 0:
			name = aurora.Cyan(name).String()
		default:
			name = aurora.Red(name).String()
		}
		fmt.Fprintf(&b, "%d: %s %s angle=%.4f\n", i, name, p, Angle(center, p))
	}
	return b.String()
}
