package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/osuushi/delaunay"
)

const square = "0 0\n10 0\n10 10\n0 10\n"

func defaultConfig() config {
	return config{margin: delaunay.DefaultMarginFactor, scale: 1}
}

func TestRun(t *testing.T) {
	var out bytes.Buffer
	cfg := defaultConfig()
	cfg.voronoi = true
	require.NoError(t, run(cfg, zap.NewNop(), strings.NewReader(square), &out))

	output := out.String()
	assert.Contains(t, output, "4 points, 2 triangles")
	assert.Contains(t, output, "1 edges")
	assert.Contains(t, output, "(5, 5) (5, 5)")
}

func TestRun_Duplicates(t *testing.T) {
	input := square + "10 0\n"

	err := run(defaultConfig(), zap.NewNop(), strings.NewReader(input), &bytes.Buffer{})
	assert.True(t, errors.Is(err, delaunay.ErrDuplicatePoint), "got %v", err)

	var out bytes.Buffer
	cfg := defaultConfig()
	cfg.dedup = true
	require.NoError(t, run(cfg, zap.NewNop(), strings.NewReader(input), &out))
	assert.Contains(t, out.String(), "4 points, 2 triangles")
}

func TestRun_Collinear(t *testing.T) {
	err := run(defaultConfig(), zap.NewNop(), strings.NewReader("0 0\n1 1\n2 2\n"), &bytes.Buffer{})
	assert.True(t, errors.Is(err, delaunay.ErrDegenerateTriangle), "got %v", err)
}

func TestRun_SVGAndPNG(t *testing.T) {
	dir := t.TempDir()
	svgPath := filepath.Join(dir, "points.svg")
	svg := `<svg xmlns="http://www.w3.org/2000/svg">
  <circle cx="0" cy="0" r="1"/>
  <circle cx="40" cy="0" r="1"/>
  <circle cx="20" cy="30" r="1"/>
  <circle cx="20" cy="10" r="1"/>
</svg>`
	require.NoError(t, os.WriteFile(svgPath, []byte(svg), 0o644))

	var out bytes.Buffer
	cfg := defaultConfig()
	cfg.svgPath = svgPath
	cfg.voronoi = true
	cfg.pngPath = filepath.Join(dir, "out.png")
	cfg.scale = 4
	require.NoError(t, run(cfg, zap.NewNop(), strings.NewReader(""), &out))

	assert.Contains(t, out.String(), "4 points, 3 triangles")
	assert.FileExists(t, cfg.pngPath)
}
