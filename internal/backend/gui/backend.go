// Package gui renders scenes in a Raylib window.
package gui

import (
	"math"

	"cogentcore.org/core/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/mbviz/internal/decor"
	"github.com/san-kum/mbviz/internal/scene"
	"github.com/san-kum/mbviz/internal/spatial"
)

const (
	windowWidth  = 1280
	windowHeight = 720
	targetFPS    = 60
)

var colBg = rl.NewColor(10, 10, 10, 255)

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

// Backend owns a Raylib window and draws every proxy each Render call.
// Closed flips when the user closes the window.
type Backend struct {
	proxies map[*proxy]bool
	camera  rl.Camera3D
	closed  bool
}

// NewBackend opens the window. There can be only one per process.
func NewBackend(title string) *Backend {
	rl.InitWindow(windowWidth, windowHeight, title)
	rl.SetTargetFPS(targetFPS)
	rl.SetExitKey(0)
	return &Backend{
		proxies: map[*proxy]bool{},
		camera: rl.NewCamera3D(
			rl.NewVector3(0, 0.1, 1),
			rl.NewVector3(0, 0, 0),
			rl.NewVector3(0, 1, 0),
			45.0,
			rl.CameraPerspective,
		),
	}
}

func (b *Backend) NewProxy() scene.Proxy { return &proxy{pose: spatial.Identity()} }

func (b *Backend) Add(p scene.Proxy)    { b.proxies[p.(*proxy)] = true }
func (b *Backend) Remove(p scene.Proxy) { delete(b.proxies, p.(*proxy)) }

func (b *Backend) SetCameraLocation(p math32.Vector3) {
	b.camera.Position = vec(p)
}

func (b *Backend) SetCameraFocalPoint(p math32.Vector3) {
	b.camera.Target = vec(p)
}

func (b *Backend) SetCameraUpDirection(d math32.Vector3) {
	b.camera.Up = vec(d)
}

// SetCameraClippingRange is a no-op; Raylib manages its own depth range.
func (b *Backend) SetCameraClippingRange(near, far float32) {}

func (b *Backend) ZoomToAllGeometry() {
	box := math32.B3Empty()
	any := false
	for p := range b.proxies {
		if !p.hasShape {
			continue
		}
		g := p.shape
		g.Placement = p.pose.Mul(g.Placement)
		bb := g.Bounds()
		box.ExpandByPoint(bb.Min)
		box.ExpandByPoint(bb.Max)
		any = true
	}
	if !any {
		return
	}
	center := box.Min.Add(box.Max).MulScalar(0.5)
	radius := box.Max.Sub(box.Min).Length() / 2
	if radius <= 0 {
		radius = 1
	}
	dir := fromVec(b.camera.Position).Sub(fromVec(b.camera.Target))
	if dir.Length() < 1e-6 {
		dir = math32.Vec3(0, 0, 1)
	}
	dist := radius / float32(math.Tan(float64(b.camera.Fovy)*math.Pi/360)) * 1.2
	b.camera.Target = vec(center)
	b.camera.Position = vec(center.Add(dir.Normal().MulScalar(dist)))
}

func (b *Backend) Zoom(factor float32) {
	if factor <= 0 {
		return
	}
	target := fromVec(b.camera.Target)
	off := fromVec(b.camera.Position).Sub(target)
	b.camera.Position = vec(target.Add(off.MulScalar(1 / factor)))
}

func (b *Backend) Render() error {
	if b.closed {
		return nil
	}
	rl.BeginDrawing()
	rl.ClearBackground(colBg)
	rl.BeginMode3D(b.camera)
	rl.DrawGrid(20, 0.25)
	for p := range b.proxies {
		if p.hasShape {
			drawShape(p)
		}
	}
	rl.EndMode3D()
	rl.EndDrawing()
	if rl.WindowShouldClose() {
		b.closed = true
	}
	return nil
}

func (b *Backend) Closed() bool { return b.closed }

func (b *Backend) Close() {
	if b.closed {
		return
	}
	b.closed = true
	rl.CloseWindow()
}

func vec(v math32.Vector3) rl.Vector3 { return rl.NewVector3(v.X, v.Y, v.Z) }

func fromVec(v rl.Vector3) math32.Vector3 { return math32.Vec3(v.X, v.Y, v.Z) }
