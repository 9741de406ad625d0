package internal

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

// Read newline separated points in the form "x y". Blank lines and lines
// starting with # are skipped.
func ReadPoints(r io.Reader) ([]Point, error) {
	var points []Point
	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Fields(line)
		if len(parts) != 2 {
			return nil, errors.Errorf("line %d: expected \"x y\", got %q", lineNumber, line)
		}
		x, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, errors.Wrapf(err, "line %d: invalid x value", lineNumber)
		}
		y, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, errors.Wrapf(err, "line %d: invalid y value", lineNumber)
		}
		points = append(points, Point{x, y})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading points")
	}
	return points, nil
}

// Read points from the centers of every <circle> in an SVG document, in
// document order. This is not a full SVG reader: transforms are ignored, and
// coordinates are rounded to the nearest integer.
func ReadSVGPoints(r io.Reader) ([]Point, error) {
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	circles := root.FindAll("circle")
	points := make([]Point, 0, len(circles))
	for i, circle := range circles {
		x, err := parseCoordinate(circle.Attributes["cx"])
		if err != nil {
			return nil, errors.Wrapf(err, "circle %d: invalid cx", i)
		}
		y, err := parseCoordinate(circle.Attributes["cy"])
		if err != nil {
			return nil, errors.Wrapf(err, "circle %d: invalid cy", i)
		}
		points = append(points, Point{x, y})
	}
	return points, nil
}

func parseCoordinate(s string) (int, error) {
	// A missing attribute is 0 in SVG
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return int(math.Round(v)), nil
}
