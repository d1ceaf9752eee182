package simplify

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// Debug rendering for eyeballing a simplification in the terminal (iTerm
// only). The original outline is drawn dim with every input point marked;
// the simplified outline is overlaid bright with the retained points marked
// larger.

const dbgDrawPadding = 20

// DebugDraw renders original and simplified on top of each other and prints
// the image to stdout.
func DebugDraw(original, simplified Shape, scale float64) error {
	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, p := range original.Points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	// Original outline, dim, with a small dot at every input point
	tracePath(c, original)
	c.SetRGB(0.4, 0.4, 0.4)
	c.SetLineWidth(1)
	c.Stroke()
	for _, p := range original.Points {
		c.DrawCircle(p.X, p.Y, 2/scale)
	}
	c.SetRGB(0.6, 0.6, 0.6)
	c.Fill()

	// Simplified outline, bright, with larger dots at the retained points
	tracePath(c, simplified)
	c.SetRGB(0, 1, 1)
	c.SetLineWidth(2)
	c.Stroke()
	for _, p := range simplified.Points {
		c.DrawCircle(p.X, p.Y, 4/scale)
	}
	c.SetRGB(0, 1, 0)
	c.Fill()

	if err := c.SavePNG("/tmp/simplify.png"); err != nil {
		return err
	}
	imgcat.CatFile("/tmp/simplify.png", os.Stdout)
	return nil
}

func tracePath(c *gg.Context, shape Shape) {
	if len(shape.Points) == 0 {
		return
	}
	c.MoveTo(shape.Points[0].X, shape.Points[0].Y)
	for _, p := range shape.Points[1:] {
		c.LineTo(p.X, p.Y)
	}
	if shape.Closed {
		c.ClosePath()
	}
}
