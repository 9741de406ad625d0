package internal

import (
	"image"
	"io"
	"math"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// Static rendering of a triangulation and its dual. This is a snapshot for
// inspecting results, not an interactive view.

// Padding around the drawing, in pixels.
const drawPadding = 20

// Largest canvas side, in pixels. The scale is reduced to fit.
const MaxCanvasSize = 4096

type RenderOptions struct {
	// Pixels per unit
	Scale float64
	// Dual edges to draw over the triangulation, if any
	Voronoi []Segment
	// Restrict the viewport to the points' bounding box. Otherwise it grows to
	// include Voronoi vertices, up to one span of the points past each side:
	// circumcenters of thin hull triangles can land millions of units away.
	ClipToPoints bool
}

func Render(points []Point, triangles []Triangle, opts RenderOptions) image.Image {
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	grow := func(x, y float64) {
		minX = math.Min(minX, x)
		minY = math.Min(minY, y)
		maxX = math.Max(maxX, x)
		maxY = math.Max(maxY, y)
	}
	for _, p := range points {
		grow(float64(p.X), float64(p.Y))
	}
	if math.IsInf(minX, 1) {
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}
	if !opts.ClipToPoints {
		span := math.Max(math.Max(maxX-minX, maxY-minY), 1)
		limitMinX, limitMinY := minX-span, minY-span
		limitMaxX, limitMaxY := maxX+span, maxY+span
		clamp := func(x, y float64) {
			grow(
				math.Min(math.Max(x, limitMinX), limitMaxX),
				math.Min(math.Max(y, limitMinY), limitMaxY),
			)
		}
		for _, s := range opts.Voronoi {
			clamp(s.Start.X, s.Start.Y)
			clamp(s.End.X, s.End.Y)
		}
	}

	if extent := math.Max(maxX-minX, maxY-minY); scale*extent > MaxCanvasSize-2*drawPadding {
		scale = (MaxCanvasSize - 2*drawPadding) / extent
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(drawPadding, drawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	c.SetLineWidth(1)
	for _, t := range triangles {
		c.MoveTo(float64(t.a.X), float64(t.a.Y))
		c.LineTo(float64(t.b.X), float64(t.b.Y))
		c.LineTo(float64(t.c.X), float64(t.c.Y))
		c.ClosePath()
		c.SetRGBA(0, 0.5, 0, 0.5)
		c.FillPreserve()
		c.SetRGB(0, 1, 1)
		c.Stroke()
	}

	c.SetLineWidth(2)
	c.SetRGB(1, 0.6, 0)
	for _, s := range opts.Voronoi {
		c.DrawLine(s.Start.X, s.Start.Y, s.End.X, s.End.Y)
		c.Stroke()
	}

	c.SetRGB(1, 0, 0)
	for _, p := range points {
		c.DrawCircle(float64(p.X), float64(p.Y), 3/scale)
		c.Fill()
	}

	return c.Image()
}

func SavePNG(path string, img image.Image) error {
	return gg.SavePNG(path, img)
}

// Print a PNG file to the terminal (iTerm only).
func CatPNG(path string, w io.Writer) {
	imgcat.CatFile(path, w)
}
