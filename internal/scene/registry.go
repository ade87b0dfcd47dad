package scene

import "github.com/san-kum/mbviz/internal/decor"

// Default colors assigned at construction: ground is green, bodies
// attached directly to ground ("base bodies") are red, everything else
// gray.
var (
	defaultGroundColor = decor.Green
	defaultBaseColor   = decor.Red
	defaultBodyColor   = decor.Gray
)

// bodyInfo is the per-body registry entry: style defaults plus the
// ordered list of persistent decorations attached to the body.
type bodyInfo struct {
	defaultColor decor.Color
	scale        float32
	decorations  []*decoration
}

func (r *Reporter) checkBody(body int) error {
	if body < 0 || body >= len(r.bodies) {
		return &BodyRangeError{Body: body, NumBodies: len(r.bodies)}
	}
	return nil
}

// SetDefaultBodyColor overrides the fallback color used when geometry on
// the body leaves its color unset.
func (r *Reporter) SetDefaultBodyColor(body int, c decor.Color) error {
	if err := r.checkBody(body); err != nil {
		return err
	}
	r.bodies[body].defaultColor = c
	return nil
}

// DefaultBodyColor returns the body's current fallback color.
func (r *Reporter) DefaultBodyColor(body int) (decor.Color, error) {
	if err := r.checkBody(body); err != nil {
		return decor.Color{}, err
	}
	return r.bodies[body].defaultColor, nil
}

// SetBodyScale overrides the sizing hint used for auto-generated
// geometry on the body.
func (r *Reporter) SetBodyScale(body int, scale float32) error {
	if err := r.checkBody(body); err != nil {
		return err
	}
	r.bodies[body].scale = scale
	return nil
}
