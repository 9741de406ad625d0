package main

import (
	"fmt"
	"io"
	"os"

	"github.com/logrusorgru/aurora"
	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/delaunay"
	"github.com/osuushi/delaunay/internal"
)

// Demo of triangulation. Reads points from stdin as newline separated "x y"
// integer pairs (or from the circles of an SVG file), triangulates them and
// prints the triangles, optionally along with the Voronoi dual. With --png the
// result is also drawn to an image.

type config struct {
	svgPath   string
	voronoi   bool
	dedup     bool
	margin    int
	pngPath   string
	showImage bool
	scale     float64
	clip      bool
}

func main() {
	app := kingpin.New("delaunay", "Delaunay triangulation and Voronoi dual of integer points.")

	var cfg config
	app.Flag("svg", "Read points from the <circle> centers of an SVG file instead of stdin.").ExistingFileVar(&cfg.svgPath)
	app.Flag("voronoi", "Also compute the Voronoi dual.").BoolVar(&cfg.voronoi)
	app.Flag("dedup", "Merge duplicate points instead of rejecting them.").BoolVar(&cfg.dedup)
	app.Flag("margin", "Super triangle margin factor.").Default(fmt.Sprint(delaunay.DefaultMarginFactor)).IntVar(&cfg.margin)
	app.Flag("png", "Render the result to this PNG file.").StringVar(&cfg.pngPath)
	app.Flag("imgcat", "Print the rendered PNG to the terminal (iTerm only). Requires --png.").BoolVar(&cfg.showImage)
	app.Flag("scale", "Pixels per unit when rendering.").Default("1").Float64Var(&cfg.scale)
	app.Flag("clip", "Render only the points' bounding box, even if Voronoi vertices lie outside it.").BoolVar(&cfg.clip)
	verbose := app.Flag("verbose", "Development logging.").Short('v').Bool()

	kingpin.MustParse(app.Parse(os.Args[1:]))

	logger := newLogger(*verbose)
	defer logger.Sync()

	if err := run(cfg, logger, os.Stdin, os.Stdout); err != nil {
		logger.Fatal("delaunay failed", zap.Error(err))
	}
}

func newLogger(verbose bool) *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)
	if verbose {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		// Logging is not essential to the result
		return zap.NewNop()
	}
	return logger
}

func run(cfg config, logger *zap.Logger, stdin io.Reader, stdout io.Writer) error {
	points, err := readPoints(cfg, stdin)
	if err != nil {
		return err
	}
	logger.Debug("read points", zap.Int("count", len(points)))

	if cfg.dedup {
		before := len(points)
		points = delaunay.Dedup(points)
		if removed := before - len(points); removed > 0 {
			logger.Info("merged duplicate points", zap.Int("removed", removed))
		}
	}

	triangles, err := delaunay.Triangulate(points, delaunay.Options{MarginFactor: cfg.margin})
	if err != nil {
		return err
	}
	logger.Debug("triangulated", zap.Int("triangles", len(triangles)))

	fmt.Fprintf(stdout, "%s %d points, %d triangles\n", aurora.Bold("Delaunay:"), len(points), len(triangles))
	for _, t := range triangles {
		fmt.Fprintf(stdout, "  %s %s %s\n", t.A(), t.B(), t.C())
	}

	var segments []delaunay.Segment
	if cfg.voronoi {
		edges, err := delaunay.Voronoi(triangles)
		if err != nil {
			return err
		}
		segments, err = delaunay.VoronoiSegments(triangles)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "%s %d edges\n", aurora.Bold("Voronoi:"), len(edges))
		for _, e := range edges {
			line := fmt.Sprintf("  %s %s", e.A(), e.B())
			// Zero length duals come from cocircular neighbors
			if e.IsDegenerate() {
				fmt.Fprintln(stdout, aurora.Yellow(line))
				continue
			}
			fmt.Fprintln(stdout, line)
		}
	}

	if cfg.pngPath != "" {
		img := internal.Render(points, triangles, internal.RenderOptions{Scale: cfg.scale, Voronoi: segments, ClipToPoints: cfg.clip})
		if err := internal.SavePNG(cfg.pngPath, img); err != nil {
			return err
		}
		logger.Info("wrote image", zap.String("path", cfg.pngPath))
		if cfg.showImage {
			internal.CatPNG(cfg.pngPath, stdout)
		}
	}
	return nil
}

func readPoints(cfg config, stdin io.Reader) ([]delaunay.Point, error) {
	if cfg.svgPath == "" {
		return internal.ReadPoints(stdin)
	}
	f, err := os.Open(cfg.svgPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return internal.ReadSVGPoints(f)
}
