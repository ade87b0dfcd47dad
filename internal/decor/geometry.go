package decor

import (
	"cogentcore.org/core/math32"

	"github.com/san-kum/mbviz/internal/spatial"
)

// Kind identifies a geometric primitive.
type Kind int

const (
	KindLine Kind = iota
	KindSphere
	KindBrick
	KindFrame
	KindCircle
	KindEllipsoid
)

func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindSphere:
		return "sphere"
	case KindBrick:
		return "brick"
	case KindFrame:
		return "frame"
	case KindCircle:
		return "circle"
	case KindEllipsoid:
		return "ellipsoid"
	}
	return "unknown"
}

// Representation selects how a shape is rasterized.
type Representation int

const (
	Points Representation = iota
	Wireframe
	Surface
)

func (r Representation) String() string {
	switch r {
	case Points:
		return "points"
	case Wireframe:
		return "wireframe"
	case Surface:
		return "surface"
	}
	return "unknown"
}

// Geometry describes one drawable shape. It is a value type: the engine
// copies descriptors at submission and never mutates a caller's copy.
//
// Placement positions the shape within its owning body's frame. For
// persistent decorations the engine composes caller offsets into it; for
// ephemeral geometry the owning body's world transform is composed in at
// display time.
type Geometry struct {
	Kind      Kind
	Placement spatial.Transform
	Body      int

	// primitive parameters, by Kind
	P1, P2 math32.Vector3 // line endpoints
	Radius float32        // sphere, circle
	Half   math32.Vector3 // brick half-extents, ellipsoid radii
	Axis   float32        // frame axis length

	Color          Opt[Color]
	Opacity        Opt[float32]
	LineWidth      Opt[float32]
	Representation Opt[Representation]
}

// NewLine returns a line from p1 to p2.
func NewLine(p1, p2 math32.Vector3) Geometry {
	return Geometry{Kind: KindLine, Placement: spatial.Identity(), P1: p1, P2: p2}
}

// NewSphere returns a sphere of the given radius centered at the origin.
func NewSphere(radius float32) Geometry {
	return Geometry{Kind: KindSphere, Placement: spatial.Identity(), Radius: radius}
}

// NewBrick returns an axis-aligned box with the given half-extents.
func NewBrick(half math32.Vector3) Geometry {
	return Geometry{Kind: KindBrick, Placement: spatial.Identity(), Half: half}
}

// NewFrame returns a coordinate-frame marker whose three axes have the
// given length.
func NewFrame(axis float32) Geometry {
	return Geometry{Kind: KindFrame, Placement: spatial.Identity(), Axis: axis}
}

// NewCircle returns a circle of the given radius in the local XY plane.
func NewCircle(radius float32) Geometry {
	return Geometry{Kind: KindCircle, Placement: spatial.Identity(), Radius: radius}
}

// NewEllipsoid returns an ellipsoid with the given per-axis radii.
func NewEllipsoid(radii math32.Vector3) Geometry {
	return Geometry{Kind: KindEllipsoid, Placement: spatial.Identity(), Half: radii}
}

// WithPlacement returns a copy placed at tr within the owning body frame.
func (g Geometry) WithPlacement(tr spatial.Transform) Geometry {
	g.Placement = tr
	return g
}

// WithBody returns a copy owned by the given body.
func (g Geometry) WithBody(body int) Geometry {
	g.Body = body
	return g
}

// WithColor returns a copy with an explicit color.
func (g Geometry) WithColor(c Color) Geometry {
	g.Color = Set(c)
	return g
}

// WithOpacity returns a copy with an explicit opacity in [0, 1].
func (g Geometry) WithOpacity(o float32) Geometry {
	g.Opacity = Set(o)
	return g
}

// WithLineWidth returns a copy with an explicit line width.
func (g Geometry) WithLineWidth(w float32) Geometry {
	g.LineWidth = Set(w)
	return g
}

// WithRepresentation returns a copy with an explicit draw representation.
func (g Geometry) WithRepresentation(r Representation) Geometry {
	g.Representation = Set(r)
	return g
}

// Bounds returns the shape's bounding box in the frame its Placement maps
// into. Used by backends to frame the camera around visible geometry.
func (g Geometry) Bounds() math32.Box3 {
	b := math32.B3Empty()
	switch g.Kind {
	case KindLine:
		b.ExpandByPoint(g.Placement.Apply(g.P1))
		b.ExpandByPoint(g.Placement.Apply(g.P2))
	case KindSphere, KindCircle:
		c := g.Placement.Apply(math32.Vector3{})
		b.ExpandByPoint(c.SubScalar(g.Radius))
		b.ExpandByPoint(c.AddScalar(g.Radius))
	case KindBrick, KindEllipsoid:
		for _, sx := range []float32{-1, 1} {
			for _, sy := range []float32{-1, 1} {
				for _, sz := range []float32{-1, 1} {
					p := math32.Vec3(sx*g.Half.X, sy*g.Half.Y, sz*g.Half.Z)
					b.ExpandByPoint(g.Placement.Apply(p))
				}
			}
		}
	case KindFrame:
		b.ExpandByPoint(g.Placement.Apply(math32.Vector3{}))
		b.ExpandByPoint(g.Placement.Apply(math32.Vec3(g.Axis, 0, 0)))
		b.ExpandByPoint(g.Placement.Apply(math32.Vec3(0, g.Axis, 0)))
		b.ExpandByPoint(g.Placement.Apply(math32.Vec3(0, 0, g.Axis)))
	}
	return b
}
