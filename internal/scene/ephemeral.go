package scene

import (
	"github.com/san-kum/mbviz/internal/decor"
	"github.com/san-kum/mbviz/internal/mbs"
)

// AddEphemeralDecoration queues a shape for the next report cycle only.
// The descriptor must carry its owning body id; the body's transform is
// looked up at display time, not now. No proxy exists until the cycle
// runs.
func (r *Reporter) AddEphemeralDecoration(g decor.Geometry) {
	if r.disposed {
		return
	}
	r.pending = append(r.pending, g)
}

// collectStageGeometry asks the system for ad hoc shapes once per cycle,
// in non-decreasing stage order from the lowest defined stage up to the
// stage realized in s. Items are queued exactly as if submitted through
// AddEphemeralDecoration.
func (r *Reporter) collectStageGeometry(s *mbs.State) {
	for stage := mbs.StageModel; stage <= s.Realized; stage++ {
		r.pending = append(r.pending, r.sys.DecorativeGeometry(s, stage)...)
	}
}

// validatePending checks every queued item before the cycle mutates the
// scene, so a report either runs all phases or fails up front.
func (r *Reporter) validatePending() error {
	for _, g := range r.pending {
		if err := r.checkBody(g.Body); err != nil {
			return err
		}
		if _, err := g.Resolve(rubberBandColor); err != nil {
			return err
		}
	}
	return nil
}

// displayEphemeral swaps the ephemeral generation: every proxy from the
// previous cycle is destroyed first, unconditionally, then the queue is
// materialized with each item's owning-body transform composed in. At
// most one generation is ever live.
func (r *Reporter) displayEphemeral(s *mbs.State) {
	for _, own := range r.ephemeral {
		own.release()
	}
	r.ephemeral = r.ephemeral[:0]

	for _, g := range r.pending {
		tr := r.sys.BodyTransform(s, g.Body)
		g.Placement = tr.Mul(g.Placement)

		style, _ := g.Resolve(r.bodies[g.Body].defaultColor) // validated upfront
		own := newOwnedProxy(r.backend, style)
		own.proxy.SetShape(g)
		r.ephemeral = append(r.ephemeral, own)
	}
	r.pending = r.pending[:0]
}
