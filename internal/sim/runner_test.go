package sim

import (
	"context"
	"errors"
	"testing"

	"cogentcore.org/core/math32"

	"github.com/san-kum/mbviz/internal/decor"
	"github.com/san-kum/mbviz/internal/mbs"
	"github.com/san-kum/mbviz/internal/scene"
)

// countingBackend is the smallest scene.Backend that lets a runner test
// count report cycles.
type countingBackend struct {
	renders int
	closed  bool
}

type nopProxy struct{}

func (nopProxy) SetShape(decor.Geometry)            {}
func (nopProxy) SetStyle(decor.Style)               {}
func (nopProxy) SetTranslation(math32.Vector3)      {}
func (nopProxy) SetRotation(float32, math32.Vector3) {}
func (nopProxy) Release()                           {}

func (b *countingBackend) NewProxy() scene.Proxy                 { return nopProxy{} }
func (b *countingBackend) Add(scene.Proxy)                       {}
func (b *countingBackend) Remove(scene.Proxy)                    {}
func (b *countingBackend) SetCameraLocation(math32.Vector3)      {}
func (b *countingBackend) SetCameraFocalPoint(math32.Vector3)    {}
func (b *countingBackend) SetCameraUpDirection(math32.Vector3)   {}
func (b *countingBackend) SetCameraClippingRange(_, _ float32)   {}
func (b *countingBackend) ZoomToAllGeometry()                    {}
func (b *countingBackend) Zoom(float32)                          {}
func (b *countingBackend) Render() error                         { b.renders++; return nil }
func (b *countingBackend) Closed() bool                          { return b.closed }
func (b *countingBackend) Close()                                { b.closed = true }

func TestRunValidatesConfig(t *testing.T) {
	r := New(mbs.NewPendulumPair(mbs.TieNone), nil)
	s := mbs.NewPendulumPair(mbs.TieNone).DefaultState()

	if _, err := r.Run(context.Background(), s, Config{Dt: 0, Duration: 1}); err == nil {
		t.Error("zero dt accepted")
	}
	if _, err := r.Run(context.Background(), s, Config{Dt: 0.01, Duration: -1}); err == nil {
		t.Error("negative duration accepted")
	}
}

func TestRunProducesTrajectory(t *testing.T) {
	p := mbs.NewPendulumPair(mbs.TieNone)
	r := New(p, nil)

	res, err := r.Run(context.Background(), p.DefaultState(), Config{Dt: 0.01, Duration: 1})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.StepsTaken != 100 {
		t.Errorf("steps = %d, want 100", res.StepsTaken)
	}
	if len(res.Times) != 101 || len(res.Coords) != 101 {
		t.Errorf("output points = %d/%d, want 101", len(res.Times), len(res.Coords))
	}
	if res.Times[0] != 0 {
		t.Errorf("first output at t=%v, want 0", res.Times[0])
	}
}

func TestEnergyDriftSmallForUndampedRun(t *testing.T) {
	p := mbs.NewPendulumPair(mbs.TieNone)
	p.Damping = 0

	r := New(p, nil)
	drift := NewEnergyDrift(p)
	r.AddMetric(drift)

	res, err := r.Run(context.Background(), p.DefaultState(), Config{Dt: 0.001, Duration: 2})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := res.Metrics["energy_drift"]; got > 1e-3 {
		t.Errorf("energy drift = %v, want < 1e-3 for undamped rk4 run", got)
	}
}

func TestObserversSeeEveryOutputPoint(t *testing.T) {
	p := mbs.NewPendulumPair(mbs.TieSpring)
	r := New(p, nil)

	calls := 0
	r.AddObserver(ObserverFunc(func(s *mbs.State) { calls++ }))
	r.AddMetric(&MaxSpeed{})

	res, err := r.Run(context.Background(), p.DefaultState(), Config{Dt: 0.01, Duration: 0.5})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if calls != len(res.Times) {
		t.Errorf("observer calls = %d, want %d", calls, len(res.Times))
	}
	if res.Metrics["max_speed"] <= 0 {
		t.Errorf("max_speed = %v, want > 0", res.Metrics["max_speed"])
	}
}

func TestFrameEveryThrottlesReports(t *testing.T) {
	p := mbs.NewPendulumPair(mbs.TieNone)
	b := &countingBackend{}
	rep, err := scene.New(p, b, 0)
	if err != nil {
		t.Fatalf("scene.New: %v", err)
	}
	rendersAfterNew := b.renders

	r := New(p, rep)
	if _, err := r.Run(context.Background(), p.DefaultState(), Config{Dt: 0.01, Duration: 1, FrameEvery: 10}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	// the initial point plus every tenth of 100 steps
	if got := b.renders - rendersAfterNew; got != 11 {
		t.Errorf("report cycles = %d, want 11", got)
	}
}

func TestRunCancellation(t *testing.T) {
	p := mbs.NewPendulumPair(mbs.TieNone)
	r := New(p, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := r.Run(ctx, p.DefaultState(), Config{Dt: 0.01, Duration: 10})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if res == nil || len(res.Times) == 0 {
		t.Error("partial result missing on cancellation")
	}
}
