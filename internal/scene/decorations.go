package scene

import (
	"github.com/san-kum/mbviz/internal/decor"
	"github.com/san-kum/mbviz/internal/spatial"
)

// decoration is one persistent visual attached to one body. It owns
// exactly one proxy, created at AddDecoration time and never recreated;
// the resolved geometry and style are retained for cloning.
type decoration struct {
	geom  decor.Geometry
	style decor.Style
	proxy *ownedProxy
}

// AddDecoration attaches a persistent shape to a body. The offset is
// composed with the descriptor's own placement, so a caller-supplied
// local offset stacks with the shape's intrinsic position. Style fields
// left unset resolve against the body's defaults, once, here. There is no
// removal: decorations live until the reporter is closed.
func (r *Reporter) AddDecoration(body int, offset spatial.Transform, g decor.Geometry) error {
	if r.disposed {
		return nil
	}
	invalidated, err := r.addDecoration(body, offset, g)
	if invalidated {
		r.needsFraming = true
	}
	return err
}

// addDecoration reports whether it invalidated the current camera
// framing, so the caller can accumulate the decision instead of the
// store mutating framing state behind the synchronizer's back.
func (r *Reporter) addDecoration(body int, offset spatial.Transform, g decor.Geometry) (invalidated bool, err error) {
	if err := r.checkBody(body); err != nil {
		return false, err
	}
	g.Body = body
	g.Placement = offset.Mul(g.Placement)

	style, err := g.Resolve(r.bodies[body].defaultColor)
	if err != nil {
		return false, err
	}

	own := newOwnedProxy(r.backend, style)
	own.proxy.SetShape(g)
	r.bodies[body].decorations = append(r.bodies[body].decorations, &decoration{
		geom:  g,
		style: style,
		proxy: own,
	})
	return true, nil
}

// setConfiguration applies a body's world transform to every proxy it
// owns: translation directly, orientation as a single absolute
// angle-axis rotation.
func (r *Reporter) setConfiguration(body int, tr spatial.Transform) {
	axis, angle := tr.AxisAngle()
	for _, d := range r.bodies[body].decorations {
		d.proxy.proxy.SetTranslation(tr.Pos)
		d.proxy.proxy.SetRotation(angle, axis)
	}
}
