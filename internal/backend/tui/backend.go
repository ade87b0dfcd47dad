package tui

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"cogentcore.org/core/math32"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/mbviz/internal/decor"
	"github.com/san-kum/mbviz/internal/scene"
	"github.com/san-kum/mbviz/internal/spatial"
)

// ErrClosed indicates a render on a backend that has been shut down.
var ErrClosed = errors.New("tui: backend is closed")

var (
	canvasStyle = lipgloss.NewStyle().Padding(0, 1)
	frameStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// proxy is one drawable on a terminal backend: a shape plus a world
// pose, re-rasterized every frame.
type proxy struct {
	shape    decor.Geometry
	hasShape bool
	style    decor.Style
	pose     spatial.Transform
}

func (p *proxy) SetShape(g decor.Geometry) { p.shape = g; p.hasShape = true }
func (p *proxy) SetStyle(st decor.Style)   { p.style = st }

func (p *proxy) SetTranslation(v math32.Vector3) { p.pose.Pos = v }

func (p *proxy) SetRotation(angle float32, axis math32.Vector3) {
	p.pose = spatial.FromAxisAngle(axis, angle, p.pose.Pos)
}

func (p *proxy) Release() {}

// Backend renders the scene as a braille wireframe, one full frame per
// Render call, written to out.
type Backend struct {
	out    io.Writer
	canvas *Canvas
	cam    camera
	scene  map[*proxy]bool
	frames int
	closed bool
}

// NewBackend builds a terminal backend with a canvas of w x h character
// cells.
func NewBackend(out io.Writer, w, h int) *Backend {
	return &Backend{
		out:    out,
		canvas: NewCanvas(w, h),
		cam:    newCamera(),
		scene:  map[*proxy]bool{},
	}
}

func (b *Backend) NewProxy() scene.Proxy { return &proxy{pose: spatial.Identity()} }

func (b *Backend) Add(p scene.Proxy)    { b.scene[p.(*proxy)] = true }
func (b *Backend) Remove(p scene.Proxy) { delete(b.scene, p.(*proxy)) }

func (b *Backend) SetCameraLocation(p math32.Vector3)    { b.cam.loc = p }
func (b *Backend) SetCameraFocalPoint(p math32.Vector3)  { b.cam.focal = p }
func (b *Backend) SetCameraUpDirection(d math32.Vector3) { b.cam.up = d }
func (b *Backend) SetCameraClippingRange(near, _ float32) {
	if near > 0 {
		b.cam.near = near
	}
}

func (b *Backend) Zoom(factor float32) { b.cam.dolly(factor) }

// ZoomToAllGeometry reframes around the bounding sphere of everything in
// the scene. An empty scene keeps the current framing.
func (b *Backend) ZoomToAllGeometry() {
	box := math32.B3Empty()
	any := false
	for p := range b.scene {
		if !p.hasShape {
			continue
		}
		for _, s := range tessellate(p.shape, p.pose) {
			box.ExpandByPoint(s.a)
			box.ExpandByPoint(s.b)
			any = true
		}
	}
	if !any {
		return
	}
	center := box.Min.Add(box.Max).MulScalar(0.5)
	radius := box.Max.Sub(box.Min).Length() / 2
	b.cam.frame(center, radius)
}

// Render rasterizes the scene back to front and writes one frame.
func (b *Backend) Render() error {
	if b.closed {
		return ErrClosed
	}
	b.canvas.Clear()

	sw, sh := b.canvas.Width*2, b.canvas.Height*4
	type edge struct {
		x1, y1, x2, y2 int
		depth          float32
		points         bool
	}
	edges := make([]edge, 0, len(b.scene)*4)
	for p := range b.scene {
		if !p.hasShape {
			continue
		}
		points := p.style.Representation == decor.Points
		for _, s := range tessellate(p.shape, p.pose) {
			x1, y1, d1, ok1 := b.cam.project(s.a, sw, sh)
			x2, y2, d2, ok2 := b.cam.project(s.b, sw, sh)
			if ok1 || ok2 {
				edges = append(edges, edge{x1, y1, x2, y2, (d1 + d2) / 2, points})
			}
		}
	}
	// painter's order, far first
	sort.Slice(edges, func(i, j int) bool { return edges[i].depth > edges[j].depth })
	for _, e := range edges {
		if e.points {
			b.canvas.Set(e.x1, e.y1)
			b.canvas.Set(e.x2, e.y2)
		} else {
			b.canvas.Line(e.x1, e.y1, e.x2, e.y2)
		}
	}

	b.frames++
	frame := canvasStyle.Render(b.canvas.String()) + "\n" +
		frameStyle.Render(fmt.Sprintf("frame %d  proxies %d", b.frames, len(b.scene))) + "\n"
	_, err := io.WriteString(b.out, frame)
	return err
}

// Frame returns the current canvas as plain text, for embedding in a
// larger view instead of streaming to out.
func (b *Backend) Frame() string { return b.canvas.String() }

// Canvas exposes the underlying grid, used by the SVG recorder.
func (b *Backend) Canvas() *Canvas { return b.canvas }

func (b *Backend) Closed() bool { return b.closed }

func (b *Backend) Close() { b.closed = true }
