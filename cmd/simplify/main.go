package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/logrusorgru/aurora"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/hoshigaki/simplify"
)

// Demo of chord-tolerance simplification. Input on stdin should be newline
// separated points in the form "x y", with each shape separated by an extra
// newline. Alternatively, --svg reads every polygon and polyline element
// from an SVG file. Simplified shapes are written to stdout in the stdin
// format; per-shape summaries go to stderr.

var (
	tolerance = kingpin.Flag("tolerance", "Maximum distance a dropped point may have from its chord. Negative disables simplification.").Default("0").Float64()
	closed    = kingpin.Flag("closed", "Treat stdin shapes as closed polygons.").Bool()
	svgFile   = kingpin.Flag("svg", "Read shapes from an SVG file instead of stdin.").String()
	draw      = kingpin.Flag("draw", "Render each shape before/after in the terminal (iTerm only).").Bool()
	verbose   = kingpin.Flag("verbose", "Print the run decomposition of each shape.").Bool()
)

func main() {
	kingpin.Parse()

	var shapes []simplify.Shape
	if *svgFile != "" {
		shapes = readSVG(*svgFile)
	} else {
		shapes = readShapes(os.Stdin)
	}

	s := simplify.New(nil, *tolerance)
	for i, shape := range shapes {
		reduced := s.Simplify(shape)
		fmt.Fprintf(os.Stderr, "Shape %d: %s\n", i, summarize(shape, reduced))

		if *verbose && !s.IsDisabled() {
			for _, run := range s.Runs(shape.Points, shape.Closed) {
				fmt.Fprintln(os.Stderr, "  ", run)
			}
		}
		if *draw {
			if err := simplify.DebugDraw(shape, reduced, 4); err != nil {
				log.Fatalf("Could not render shape %d: %v", i, err)
			}
		}

		if i > 0 {
			fmt.Println()
		}
		for _, p := range reduced.Points {
			fmt.Printf("%g %g\n", p.X, p.Y)
		}
	}
}

func summarize(original, reduced simplify.Shape) string {
	in := len(original.Points)
	out := len(reduced.Points)
	if out == in {
		return aurora.Yellow(fmt.Sprintf("%d points, nothing removed", in)).String()
	}
	percent := 100 * float64(in-out) / float64(in)
	return aurora.Green(fmt.Sprintf("%d points → %d (-%.0f%%)", in, out, percent)).String()
}

func readShapes(in *os.File) []simplify.Shape {
	shapes := []simplify.Shape{}
	// Scan lines
	scanner := bufio.NewScanner(in)
	points := []simplify.Point{}
	for scanner.Scan() {
		line := scanner.Text()

		// If it's empty, and we collected any points, this is the end of the shape
		if line == "" {
			if len(points) > 0 {
				shapes = append(shapes, simplify.Shape{Points: points, Closed: *closed})
				points = []simplify.Point{}
			}
			continue
		}

		points = append(points, parsePoint(line))
	}

	// Handle trailing shape if any
	if len(points) > 0 {
		shapes = append(shapes, simplify.Shape{Points: points, Closed: *closed})
	}
	return shapes
}

func parsePoint(line string) simplify.Point {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		log.Fatalf("Invalid point line %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		log.Fatalf("Invalid x value %q: %v", parts[0], err)
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		log.Fatalf("Invalid y value %q: %v", parts[1], err)
	}
	return simplify.Point{X: x, Y: y}
}

// readSVG pulls every polygon and polyline element out of an SVG file.
// Polygons are closed shapes, polylines open ones.
func readSVG(path string) []simplify.Shape {
	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("Could not open %q: %v", path, err)
	}
	defer f.Close()

	rootEl, err := svgparser.Parse(f, true)
	if err != nil {
		log.Fatalf("Failed to parse %q: %v", path, err)
	}

	var shapes []simplify.Shape
	for _, el := range rootEl.FindAll("polygon") {
		shapes = append(shapes, simplify.Shape{Points: parsePointsAttr(el.Attributes["points"]), Closed: true})
	}
	for _, el := range rootEl.FindAll("polyline") {
		shapes = append(shapes, simplify.Shape{Points: parsePointsAttr(el.Attributes["points"]), Closed: false})
	}
	if len(shapes) == 0 {
		log.Fatalf("No polygons or polylines found in %q", path)
	}
	return shapes
}

func parsePointsAttr(attr string) []simplify.Point {
	var points []simplify.Point
	for _, pair := range strings.Fields(attr) {
		coords := strings.Split(pair, ",")
		if len(coords) != 2 {
			log.Fatalf("Invalid point string %q", pair)
		}
		x, err := strconv.ParseFloat(coords[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", coords[0], err)
		}
		y, err := strconv.ParseFloat(coords[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", coords[1], err)
		}
		points = append(points, simplify.Point{X: x, Y: y})
	}
	return points
}
