package scene

import (
	"cogentcore.org/core/math32"

	"github.com/san-kum/mbviz/internal/decor"
	"github.com/san-kum/mbviz/internal/mbs"
)

// rubberBandColor is the fallback for unset rubber-band colors. A fixed
// neutral rather than a body default, since the line spans two bodies.
var rubberBandColor = decor.Black

// rubberBand is a line whose endpoints track station points on two
// bodies. The proxy persists across frames; only its shape is replaced.
type rubberBand struct {
	body1, body2       int
	station1, station2 math32.Vector3
	line               decor.Geometry
	style              decor.Style
	proxy              *ownedProxy
}

// AddRubberBandLine creates a line from station1 on body1 to station2 on
// body2. The descriptor supplies style only; endpoints are recomputed
// from the bodies' current transforms on every report cycle, never
// cached. The proxy's shape stays unpopulated until the first cycle.
func (r *Reporter) AddRubberBandLine(body1 int, station1 math32.Vector3, body2 int, station2 math32.Vector3, g decor.Geometry) error {
	if r.disposed {
		return nil
	}
	invalidated, err := r.addRubberBandLine(body1, station1, body2, station2, g)
	if invalidated {
		r.needsFraming = true
	}
	return err
}

func (r *Reporter) addRubberBandLine(body1 int, station1 math32.Vector3, body2 int, station2 math32.Vector3, g decor.Geometry) (invalidated bool, err error) {
	if err := r.checkBody(body1); err != nil {
		return false, err
	}
	if err := r.checkBody(body2); err != nil {
		return false, err
	}
	if g.Kind != decor.KindLine {
		return false, ErrNotALine
	}

	style, err := g.Resolve(rubberBandColor)
	if err != nil {
		return false, err
	}

	r.rubberBands = append(r.rubberBands, &rubberBand{
		body1:    body1,
		body2:    body2,
		station1: station1,
		station2: station2,
		line:     g,
		style:    style,
		proxy:    newOwnedProxy(r.backend, style),
	})
	return true, nil
}

// updateRubberBands rebuilds every line between the current world
// positions of its stations. Runs every cycle whether or not the bodies
// moved; change is not tracked.
func (r *Reporter) updateRubberBands(s *mbs.State) {
	for _, b := range r.rubberBands {
		p1 := r.sys.BodyTransform(s, b.body1).Apply(b.station1)
		p2 := r.sys.BodyTransform(s, b.body2).Apply(b.station2)
		b.line.P1 = p1
		b.line.P2 = p2
		b.proxy.proxy.SetShape(b.line)
	}
}
