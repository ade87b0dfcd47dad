// Package svg records scene frames as SVG files, one per report cycle.
// Rasterization reuses the terminal backend's projection; each braille
// dot becomes a filled circle.
package svg

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/san-kum/mbviz/internal/backend/tui"
	"github.com/san-kum/mbviz/internal/scene"
)

const (
	defaultScale = 4.0
	background   = "#0a0a0a"
	foreground   = "#00ff00"
)

// Recorder is a headless scene backend that writes frame-NNNN.svg files
// into a directory.
type Recorder struct {
	*tui.Backend
	dir    string
	frames int
}

// NewRecorder creates the output directory and a recorder drawing on a
// canvas of w x h character cells.
func NewRecorder(dir string, w, h int) (*Recorder, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("svg: create output dir: %w", err)
	}
	return &Recorder{
		Backend: tui.NewBackend(io.Discard, w, h),
		dir:     dir,
	}, nil
}

var _ scene.Backend = (*Recorder)(nil)

// Render rasterizes the scene, then snapshots the canvas to the next
// numbered file.
func (r *Recorder) Render() error {
	if err := r.Backend.Render(); err != nil {
		return err
	}
	path := filepath.Join(r.dir, fmt.Sprintf("frame-%04d.svg", r.frames))
	if err := os.WriteFile(path, []byte(CanvasToSVG(r.Canvas(), defaultScale)), 0o644); err != nil {
		return fmt.Errorf("svg: write frame: %w", err)
	}
	r.frames++
	return nil
}

// Frames returns how many files have been written.
func (r *Recorder) Frames() int { return r.frames }

// CanvasToSVG converts a braille canvas to an SVG document, dot by dot.
// scale is the edge of one sub-pixel in SVG units.
func CanvasToSVG(canvas *tui.Canvas, scale float64) string {
	width := float64(canvas.Width) * scale * 2
	height := float64(canvas.Height) * scale * 4
	dotRadius := scale * 0.4

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
<g fill="%s">
`, width, height, width, height, background, foreground)

	for y := 0; y < canvas.Height*4; y++ {
		for x := 0; x < canvas.Width*2; x++ {
			if !canvas.On(x, y) {
				continue
			}
			cx := float64(x)*scale + scale/2
			cy := float64(y)*scale + scale/2
			fmt.Fprintf(&sb, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\"/>\n", cx, cy, dotRadius)
		}
	}

	sb.WriteString("</g>\n</svg>\n")
	return sb.String()
}
