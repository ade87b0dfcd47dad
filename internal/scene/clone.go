package scene

// Clone builds an independent reporter over the same system, bound to a
// fresh backend. Per-body colors and scales, persistent decorations, and
// rubber-band registrations carry over; queued ephemeral items do too,
// since they have not been shown yet. Live ephemeral proxies do not.
// Sharing the source's backend is refused, so no proxy ever has two
// owners.
func (r *Reporter) Clone(target Backend) (*Reporter, error) {
	if r.disposed {
		return nil, ErrDisposed
	}
	if target == nil || target == r.backend {
		return nil, ErrSharedBackend
	}

	c := &Reporter{
		sys:       r.sys,
		backend:   target,
		autoScale: r.autoScale,
	}

	c.bodies = make([]bodyInfo, len(r.bodies))
	for i := range r.bodies {
		c.bodies[i].defaultColor = r.bodies[i].defaultColor
		c.bodies[i].scale = r.bodies[i].scale
		for _, d := range r.bodies[i].decorations {
			own := newOwnedProxy(target, d.style)
			own.proxy.SetShape(d.geom)
			c.bodies[i].decorations = append(c.bodies[i].decorations, &decoration{
				geom:  d.geom,
				style: d.style,
				proxy: own,
			})
		}
	}

	for _, b := range r.rubberBands {
		c.rubberBands = append(c.rubberBands, &rubberBand{
			body1:    b.body1,
			body2:    b.body2,
			station1: b.station1,
			station2: b.station2,
			line:     b.line,
			style:    b.style,
			proxy:    newOwnedProxy(target, b.style),
		})
	}

	c.pending = append(c.pending, r.pending...)

	c.initCamera()
	c.needsFraming = true
	return c, nil
}
