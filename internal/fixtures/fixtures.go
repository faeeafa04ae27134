package fixtures

import (
	"embed"
	"log"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"

	"github.com/osuushi/lpvisu/geometry"
)

// This file parses the svg fixtures and outputs polygons. This is not a full
// (or even correct) svg parser. It parses the SVG and then finds whatever the
// first polygon is, then converts that into a CCW polygon. If anything goes
// wrong, it exits.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.
// Coordinates are in problem space, y up.

//go:embed fixtures
var fixtures embed.FS

func Load(name string) geometry.Polygon {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	// Find the first polygon
	polygons := rootEl.FindAll("polygon")
	if len(polygons) == 0 {
		log.Fatalf("No polygons found in fixture %q", name)
	}
	if len(polygons) > 1 {
		log.Fatalf("More than one polygon found in fixture %q", name)
	}

	points, err := ParsePoints(polygons[0].Attributes["points"])
	if err != nil {
		log.Fatalf("Invalid points in fixture %q: %v", name, err)
	}
	result := geometry.Polygon{Points: points}

	// Ensure that the polygon is CCW
	if !result.IsCCW() {
		result = result.Reverse()
	}
	return result
}

// ParsePoints reads the "x,y x,y ..." syntax of the SVG points attribute.
func ParsePoints(pointString string) ([]geometry.Point, error) {
	pointStrings := strings.Fields(pointString)
	points := make([]geometry.Point, 0, len(pointStrings))
	for _, pointString := range pointStrings {
		pointStrings := strings.Split(pointString, ",")
		if len(pointStrings) != 2 {
			return nil, strconv.ErrSyntax
		}
		x, err := strconv.ParseFloat(pointStrings[0], 64)
		if err != nil {
			return nil, err
		}
		y, err := strconv.ParseFloat(pointStrings[1], 64)
		if err != nil {
			return nil, err
		}
		points = append(points, geometry.Point{X: x, Y: y})
	}
	return points, nil
}
