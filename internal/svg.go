package internal

import (
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

// Reads points out of an SVG document. This is not a full (or even correct) svg
// parser. Every <polygon> and <polyline> contributes its vertices, and every
// <circle> contributes its center, in document order. Everything else is
// ignored, including transforms.
func LoadSVGPoints(r io.Reader) (PointList, error) {
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse svg")
	}

	var points PointList
	var walk func(el *svgparser.Element) error
	walk = func(el *svgparser.Element) error {
		switch el.Name {
		case "polygon", "polyline":
			vertices, err := parsePointsAttribute(el.Attributes["points"])
			if err != nil {
				return errors.Wrapf(err, "bad %s", el.Name)
			}
			points = append(points, vertices...)
		case "circle":
			x, err := parseCoordinate(el.Attributes["cx"])
			if err != nil {
				return errors.Wrap(err, "bad circle cx")
			}
			y, err := parseCoordinate(el.Attributes["cy"])
			if err != nil {
				return errors.Wrap(err, "bad circle cy")
			}
			points = append(points, &Point{x, y})
		}
		for _, child := range el.Children {
			if err := walk(child); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(root); err != nil {
		return nil, err
	}
	return points, nil
}

// The points attribute is a list of numbers separated by commas and/or
// whitespace, taken in x,y pairs.
func parsePointsAttribute(attr string) (PointList, error) {
	fields := strings.FieldsFunc(attr, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates in %q", attr)
	}
	points := make(PointList, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid x value %q", fields[i])
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid y value %q", fields[i+1])
		}
		points = append(points, &Point{x, y})
	}
	return points, nil
}

// Missing coordinates default to 0, as in SVG itself.
func parseCoordinate(attr string) (float64, error) {
	if attr == "" {
		return 0, nil
	}
	return strconv.ParseFloat(attr, 64)
}
