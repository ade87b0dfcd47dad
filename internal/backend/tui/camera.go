package tui

import (
	"math"

	"cogentcore.org/core/math32"
)

// camera projects world points onto the canvas with a simple look-at
// perspective model.
type camera struct {
	loc   math32.Vector3
	focal math32.Vector3
	up    math32.Vector3
	fov   float32 // full vertical field of view, radians
	near  float32
}

func newCamera() camera {
	return camera{
		loc:   math32.Vec3(0, 0.1, 1),
		focal: math32.Vector3{},
		up:    math32.Vec3(0, 1, 0),
		fov:   math.Pi / 4,
		near:  0.01,
	}
}

// basis returns the camera's right, up, and forward unit vectors.
func (c *camera) basis() (right, up, fwd math32.Vector3) {
	fwd = c.focal.Sub(c.loc).Normal()
	right = fwd.Cross(c.up).Normal()
	up = right.Cross(fwd)
	return right, up, fwd
}

// project maps a world point to sub-pixel canvas coordinates. The depth
// is the distance along the view axis; ok is false behind the near
// plane.
func (c *camera) project(p math32.Vector3, sw, sh int) (x, y int, depth float32, ok bool) {
	right, up, fwd := c.basis()
	rel := p.Sub(c.loc)
	cx := rel.Dot(right)
	cy := rel.Dot(up)
	cz := rel.Dot(fwd)
	if cz <= c.near {
		return 0, 0, 0, false
	}
	f := float32(sh) / 2 / float32(math.Tan(float64(c.fov)/2))
	x = int(cx/cz*f) + sw/2
	y = sh/2 - int(cy/cz*f)
	return x, y, cz, true
}

// frame points the camera at the center of a bounding sphere and backs
// up far enough to fit it, keeping the current view direction.
func (c *camera) frame(center math32.Vector3, radius float32) {
	if radius <= 0 {
		radius = 1
	}
	dir := c.loc.Sub(c.focal)
	if dir.Length() < 1e-6 {
		dir = math32.Vec3(0, 0, 1)
	}
	dir = dir.Normal()
	dist := radius / float32(math.Tan(float64(c.fov)/2)) * 1.2
	c.focal = center
	c.loc = center.Add(dir.MulScalar(dist))
}

// dolly moves the camera toward (factor > 1) or away from the focal
// point.
func (c *camera) dolly(factor float32) {
	if factor <= 0 {
		return
	}
	off := c.loc.Sub(c.focal)
	c.loc = c.focal.Add(off.MulScalar(1 / factor))
}

// orbit swings the camera around the focal point about the world Y axis.
func (c *camera) orbit(angle float32) {
	off := c.loc.Sub(c.focal)
	sin, cos := math.Sincos(float64(angle))
	s, co := float32(sin), float32(cos)
	c.loc = c.focal.Add(math32.Vec3(off.X*co+off.Z*s, off.Y, -off.X*s+off.Z*co))
}
