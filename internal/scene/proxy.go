package scene

import "github.com/san-kum/mbviz/internal/decor"

// ownedProxy pairs a backend proxy with release-once semantics: one owner
// per proxy, release guaranteed exactly once no matter how many teardown
// paths run.
type ownedProxy struct {
	backend  Backend
	proxy    Proxy
	released bool
}

// newOwnedProxy creates a styled proxy and adds it to the scene. The
// shape is left to the caller: rubber bands attach theirs on the first
// report cycle.
func newOwnedProxy(b Backend, st decor.Style) *ownedProxy {
	p := b.NewProxy()
	p.SetStyle(st)
	b.Add(p)
	return &ownedProxy{backend: b, proxy: p}
}

func (o *ownedProxy) release() {
	if o.released {
		return
	}
	o.released = true
	o.backend.Remove(o.proxy)
	o.proxy.Release()
}
