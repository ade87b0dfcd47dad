package gui

import (
	"math"

	"cogentcore.org/core/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/mbviz/internal/decor"
	"github.com/san-kum/mbviz/internal/spatial"
)

const ringSegments = 24

func drawShape(p *proxy) {
	world := p.pose.Mul(p.shape.Placement)
	col := color(p.style)

	switch p.shape.Kind {
	case decor.KindLine:
		rl.DrawLine3D(vec(world.Apply(p.shape.P1)), vec(world.Apply(p.shape.P2)), col)

	case decor.KindSphere:
		center := vec(world.Apply(math32.Vector3{}))
		if p.style.Representation == decor.Surface {
			rl.DrawSphere(center, p.shape.Radius, col)
		} else {
			rl.DrawSphereWires(center, p.shape.Radius, 8, 8, col)
		}

	case decor.KindBrick:
		drawBoxEdges(world, p.shape.Half, col)

	case decor.KindFrame:
		o := vec(world.Apply(math32.Vector3{}))
		a := p.shape.Axis
		rl.DrawLine3D(o, vec(world.Apply(math32.Vec3(a, 0, 0))), col)
		rl.DrawLine3D(o, vec(world.Apply(math32.Vec3(0, a, 0))), col)
		rl.DrawLine3D(o, vec(world.Apply(math32.Vec3(0, 0, a))), col)

	case decor.KindCircle:
		drawRing(world, func(c, s float32) math32.Vector3 {
			return math32.Vec3(p.shape.Radius*c, p.shape.Radius*s, 0)
		}, col)

	case decor.KindEllipsoid:
		h := p.shape.Half
		drawRing(world, func(c, s float32) math32.Vector3 { return math32.Vec3(h.X*c, h.Y*s, 0) }, col)
		drawRing(world, func(c, s float32) math32.Vector3 { return math32.Vec3(0, h.Y*c, h.Z*s) }, col)
		drawRing(world, func(c, s float32) math32.Vector3 { return math32.Vec3(h.X*c, 0, h.Z*s) }, col)
	}
}

func drawRing(world spatial.Transform, point func(cos, sin float32) math32.Vector3, col rl.Color) {
	prev := point(1, 0)
	for i := 1; i <= ringSegments; i++ {
		a := 2 * math.Pi * float64(i) / ringSegments
		p := point(float32(math.Cos(a)), float32(math.Sin(a)))
		rl.DrawLine3D(vec(world.Apply(prev)), vec(world.Apply(p)), col)
		prev = p
	}
}

func drawBoxEdges(world spatial.Transform, half math32.Vector3, col rl.Color) {
	var v [8]rl.Vector3
	i := 0
	for _, sz := range []float32{-1, 1} {
		for _, sy := range []float32{-1, 1} {
			for _, sx := range []float32{-1, 1} {
				v[i] = vec(world.Apply(math32.Vec3(sx*half.X, sy*half.Y, sz*half.Z)))
				i++
			}
		}
	}
	pairs := [12][2]int{
		{0, 1}, {2, 3}, {4, 5}, {6, 7},
		{0, 2}, {1, 3}, {4, 6}, {5, 7},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	}
	for _, pr := range pairs {
		rl.DrawLine3D(v[pr[0]], v[pr[1]], col)
	}
}

func color(st decor.Style) rl.Color {
	return rl.NewColor(
		channel(st.Color.R),
		channel(st.Color.G),
		channel(st.Color.B),
		channel(st.Opacity),
	)
}

func channel(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v * 255)
}
