package tui

import (
	"math"

	"cogentcore.org/core/math32"

	"github.com/san-kum/mbviz/internal/decor"
	"github.com/san-kum/mbviz/internal/spatial"
)

// segment is one world-space edge of a tessellated shape.
type segment struct {
	a, b math32.Vector3
}

const circleSegments = 16

// tessellate breaks a shape into world-space line segments. pose is the
// owning proxy's pose; the shape's own placement is composed beneath it.
func tessellate(g decor.Geometry, pose spatial.Transform) []segment {
	world := pose.Mul(g.Placement)
	switch g.Kind {
	case decor.KindLine:
		return []segment{{world.Apply(g.P1), world.Apply(g.P2)}}
	case decor.KindSphere:
		return ellipsoidEdges(world, math32.Vec3(g.Radius, g.Radius, g.Radius))
	case decor.KindEllipsoid:
		return ellipsoidEdges(world, g.Half)
	case decor.KindBrick:
		return brickEdges(world, g.Half)
	case decor.KindFrame:
		o := world.Apply(math32.Vector3{})
		return []segment{
			{o, world.Apply(math32.Vec3(g.Axis, 0, 0))},
			{o, world.Apply(math32.Vec3(0, g.Axis, 0))},
			{o, world.Apply(math32.Vec3(0, 0, g.Axis))},
		}
	case decor.KindCircle:
		return circleEdges(world, g.Radius)
	}
	return nil
}

// circleEdges polygonizes a circle in the local XY plane.
func circleEdges(world spatial.Transform, radius float32) []segment {
	segs := make([]segment, 0, circleSegments)
	prev := world.Apply(math32.Vec3(radius, 0, 0))
	for i := 1; i <= circleSegments; i++ {
		a := 2 * math.Pi * float64(i) / circleSegments
		p := world.Apply(math32.Vec3(radius*float32(math.Cos(a)), radius*float32(math.Sin(a)), 0))
		segs = append(segs, segment{prev, p})
		prev = p
	}
	return segs
}

// ellipsoidEdges draws the three principal cross sections.
func ellipsoidEdges(world spatial.Transform, radii math32.Vector3) []segment {
	segs := make([]segment, 0, 3*circleSegments)
	ring := func(point func(cos, sin float32) math32.Vector3) {
		prev := point(1, 0)
		for i := 1; i <= circleSegments; i++ {
			a := 2 * math.Pi * float64(i) / circleSegments
			p := point(float32(math.Cos(a)), float32(math.Sin(a)))
			segs = append(segs, segment{world.Apply(prev), world.Apply(p)})
			prev = p
		}
	}
	ring(func(c, s float32) math32.Vector3 { return math32.Vec3(radii.X*c, radii.Y*s, 0) })
	ring(func(c, s float32) math32.Vector3 { return math32.Vec3(0, radii.Y*c, radii.Z*s) })
	ring(func(c, s float32) math32.Vector3 { return math32.Vec3(radii.X*c, 0, radii.Z*s) })
	return segs
}

func brickEdges(world spatial.Transform, half math32.Vector3) []segment {
	corner := func(sx, sy, sz float32) math32.Vector3 {
		return world.Apply(math32.Vec3(sx*half.X, sy*half.Y, sz*half.Z))
	}
	var v [8]math32.Vector3
	i := 0
	for _, sz := range []float32{-1, 1} {
		for _, sy := range []float32{-1, 1} {
			for _, sx := range []float32{-1, 1} {
				v[i] = corner(sx, sy, sz)
				i++
			}
		}
	}
	pairs := [12][2]int{
		{0, 1}, {2, 3}, {4, 5}, {6, 7}, // x edges
		{0, 2}, {1, 3}, {4, 6}, {5, 7}, // y edges
		{0, 4}, {1, 5}, {2, 6}, {3, 7}, // z edges
	}
	segs := make([]segment, 0, 12)
	for _, pr := range pairs {
		segs = append(segs, segment{v[pr[0]], v[pr[1]]})
	}
	return segs
}
