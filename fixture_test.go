package simplify

import (
	"embed"
	"log"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures and outputs shapes. This is not a full
// (or even correct) svg parser. It parses the SVG and then finds the single
// polygon or polyline in it; polygons load as closed shapes, polylines as
// open ones. If anything goes wrong, it panics.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) Shape {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygons := rootEl.FindAll("polygon")
	polylines := rootEl.FindAll("polyline")
	if len(polygons)+len(polylines) != 1 {
		log.Fatalf("Expected exactly one polygon or polyline in fixture %q", name)
	}

	var el *svgparser.Element
	closed := false
	if len(polygons) == 1 {
		el = polygons[0]
		closed = true
	} else {
		el = polylines[0]
	}

	pointString := el.Attributes["points"]
	pointStrings := strings.Split(pointString, " ")
	points := make([]Point, 0, len(pointStrings))
	for _, pointString := range pointStrings {
		if pointString == "" {
			continue
		}

		coordStrings := strings.Split(pointString, ",")
		if len(coordStrings) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(coordStrings[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", coordStrings[0], err)
		}
		y, err := strconv.ParseFloat(coordStrings[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", coordStrings[1], err)
		}
		points = append(points, Point{x, y})
	}
	return Shape{Points: points, Closed: closed}
}
