package scene

import (
	"cogentcore.org/core/math32"

	"github.com/san-kum/mbviz/internal/decor"
	"github.com/san-kum/mbviz/internal/mbs"
	"github.com/san-kum/mbviz/internal/spatial"
)

// stubProxy records every mutation so tests can assert on resource
// accounting and on the exact shapes and poses pushed to the backend.
type stubProxy struct {
	backend  *stubBackend
	shape    decor.Geometry
	hasShape bool
	style    decor.Style
	pos      math32.Vector3
	angle    float32
	axis     math32.Vector3
	releases int
}

func (p *stubProxy) SetShape(g decor.Geometry) {
	p.shape = g
	p.hasShape = true
}

func (p *stubProxy) SetStyle(st decor.Style) { p.style = st }

func (p *stubProxy) SetTranslation(v math32.Vector3) { p.pos = v }

func (p *stubProxy) SetRotation(angle float32, axis math32.Vector3) {
	p.angle = angle
	p.axis = axis
}

func (p *stubProxy) Release() { p.releases++ }

type stubBackend struct {
	created []*stubProxy
	inScene map[*stubProxy]bool
	removes int

	cameraLoc   math32.Vector3
	cameraFocal math32.Vector3
	cameraUp    math32.Vector3

	renders    int
	zooms      int
	zoomFactor float32

	closed     bool
	closeCalls int
}

func newStubBackend() *stubBackend {
	return &stubBackend{inScene: map[*stubProxy]bool{}}
}

func (b *stubBackend) NewProxy() Proxy {
	p := &stubProxy{backend: b}
	b.created = append(b.created, p)
	return p
}

func (b *stubBackend) Add(p Proxy)    { b.inScene[p.(*stubProxy)] = true }
func (b *stubBackend) Remove(p Proxy) { delete(b.inScene, p.(*stubProxy)); b.removes++ }

func (b *stubBackend) SetCameraLocation(p math32.Vector3)     { b.cameraLoc = p }
func (b *stubBackend) SetCameraFocalPoint(p math32.Vector3)   { b.cameraFocal = p }
func (b *stubBackend) SetCameraUpDirection(d math32.Vector3)  { b.cameraUp = d }
func (b *stubBackend) SetCameraClippingRange(_, _ float32)    {}
func (b *stubBackend) ZoomToAllGeometry()                     { b.zooms++ }
func (b *stubBackend) Zoom(factor float32)                    { b.zoomFactor = factor }
func (b *stubBackend) Render() error                          { b.renders++; return nil }
func (b *stubBackend) Closed() bool                           { return b.closed }
func (b *stubBackend) Close()                                 { b.closeCalls++; b.closed = true }

// live returns the proxies currently in the scene.
func (b *stubBackend) live() int { return len(b.inScene) }

// stubSystem is a fully configurable System for scene tests. Body
// transforms can be replaced between reports to simulate motion.
type stubSystem struct {
	topology   bool
	parents    []int // index 0 is ground, parent 0
	transforms []spatial.Transform
	inboard    []spatial.Transform
	outboard   []spatial.Transform
	massCenter []math32.Vector3

	stageGeom    map[mbs.Stage][]decor.Geometry
	stagesQueued []mbs.Stage // order DecorativeGeometry was called with a state
}

// newStubSystem builds a realized chain 0 -> 1 -> ... -> n-1 with
// identity transforms and frames.
func newStubSystem(n int) *stubSystem {
	s := &stubSystem{
		topology:   true,
		parents:    make([]int, n),
		transforms: make([]spatial.Transform, n),
		inboard:    make([]spatial.Transform, n),
		outboard:   make([]spatial.Transform, n),
		massCenter: make([]math32.Vector3, n),
		stageGeom:  map[mbs.Stage][]decor.Geometry{},
	}
	for i := range s.parents {
		if i > 0 {
			s.parents[i] = i - 1
		}
		s.transforms[i] = spatial.Identity()
		s.inboard[i] = spatial.Identity()
		s.outboard[i] = spatial.Identity()
	}
	return s
}

func (s *stubSystem) NumBodies() int         { return len(s.parents) }
func (s *stubSystem) Parent(body int) int    { return s.parents[body] }
func (s *stubSystem) TopologyRealized() bool { return s.topology }

func (s *stubSystem) Realize(st *mbs.State, stage mbs.Stage) error {
	if st.Realized < stage {
		st.Realized = stage
	}
	return nil
}

func (s *stubSystem) BodyTransform(_ *mbs.State, body int) spatial.Transform {
	return s.transforms[body]
}

func (s *stubSystem) InboardFrame(body int) spatial.Transform  { return s.inboard[body] }
func (s *stubSystem) OutboardFrame(body int) spatial.Transform { return s.outboard[body] }
func (s *stubSystem) MassCenter(body int) math32.Vector3       { return s.massCenter[body] }

func (s *stubSystem) DecorativeGeometry(st *mbs.State, stage mbs.Stage) []decor.Geometry {
	if st != nil {
		s.stagesQueued = append(s.stagesQueued, stage)
	}
	return s.stageGeom[stage]
}

// positionState returns a state already realized to the position stage.
func positionState() *mbs.State {
	return &mbs.State{Realized: mbs.StagePosition}
}
