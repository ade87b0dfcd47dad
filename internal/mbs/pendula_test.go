package mbs

import (
	"math"
	"testing"

	"cogentcore.org/core/math32"

	"github.com/san-kum/mbviz/internal/dynamo"
)

func TestPendulumPairTopology(t *testing.T) {
	p := NewPendulumPair(TieNone)
	if !p.TopologyRealized() {
		t.Fatal("constructed pair must have realized topology")
	}
	if p.NumBodies() != 3 {
		t.Errorf("NumBodies = %d, want 3", p.NumBodies())
	}
	if p.Parent(1) != 0 || p.Parent(2) != 0 {
		t.Error("both pendulums must hang from ground")
	}
}

func TestUnfinishedTopologyRejected(t *testing.T) {
	var p PendulumPair // zero value: topology never finalized
	s := &State{Q: []float64{0, 0}, U: []float64{0, 0}}
	if err := p.Realize(s, StagePosition); err == nil {
		t.Error("expected topology error from zero-value system")
	}
}

func TestBodyTransformHangsStraightDown(t *testing.T) {
	p := NewPendulumPair(TieNone)
	s := &State{Q: []float64{0, 0}, U: []float64{0, 0}}

	tr := p.BodyTransform(s, 1)
	want := math32.Vec3(-1, float32(-p.Rod), 0)
	if tr.Pos.Sub(want).Length() > 1e-5 {
		t.Errorf("left bob at %v, want %v", tr.Pos, want)
	}

	tr = p.BodyTransform(s, 2)
	want = math32.Vec3(1, float32(-p.Rod), 0)
	if tr.Pos.Sub(want).Length() > 1e-5 {
		t.Errorf("right bob at %v, want %v", tr.Pos, want)
	}
}

func TestBodyTransformRotation(t *testing.T) {
	p := NewPendulumPair(TieNone)
	s := &State{Q: []float64{math.Pi / 2, 0}, U: []float64{0, 0}}

	// at 90 degrees the left bob swings to pivot + (rod, 0, 0)
	tr := p.BodyTransform(s, 1)
	want := math32.Vec3(-1+float32(p.Rod), 0, 0)
	if tr.Pos.Sub(want).Length() > 1e-5 {
		t.Errorf("left bob at %v, want %v", tr.Pos, want)
	}
}

func TestRealizeIdempotent(t *testing.T) {
	p := NewPendulumPair(TieNone)
	s := p.DefaultState()
	if err := p.Realize(s, StagePosition); err != nil {
		t.Fatalf("realize failed: %v", err)
	}
	if s.Realized != StagePosition {
		t.Errorf("realized = %v, want position", s.Realized)
	}
	if err := p.Realize(s, StagePosition); err != nil {
		t.Fatalf("second realize failed: %v", err)
	}
	// realizing a lower stage must not lower the recorded stage
	if err := p.Realize(s, StageTime); err != nil {
		t.Fatalf("lower realize failed: %v", err)
	}
	if s.Realized != StagePosition {
		t.Errorf("realized regressed to %v", s.Realized)
	}
}

func TestStepConservesEnergyUndamped(t *testing.T) {
	p := NewPendulumPair(TieNone)
	s := p.DefaultState()
	e0 := p.Energy(dynamo.State{s.Q[0], s.Q[1], s.U[0], s.U[1]})

	for i := 0; i < 1000; i++ {
		if err := p.Step(s, 0.001); err != nil {
			t.Fatalf("step failed: %v", err)
		}
	}

	e1 := p.Energy(dynamo.State{s.Q[0], s.Q[1], s.U[0], s.U[1]})
	if math.Abs(e1-e0) > 1e-3*math.Max(1, math.Abs(e0)) {
		t.Errorf("energy drifted: %.6f -> %.6f", e0, e1)
	}
}

func TestStepDampedLosesEnergy(t *testing.T) {
	p := NewPendulumPair(TieNone)
	p.Damping = 0.5
	s := p.DefaultState()
	e0 := p.Energy(dynamo.State{s.Q[0], s.Q[1], s.U[0], s.U[1]})

	for i := 0; i < 2000; i++ {
		if err := p.Step(s, 0.001); err != nil {
			t.Fatalf("step failed: %v", err)
		}
	}

	e1 := p.Energy(dynamo.State{s.Q[0], s.Q[1], s.U[0], s.U[1]})
	if e1 >= e0 {
		t.Errorf("damped system gained energy: %.6f -> %.6f", e0, e1)
	}
}

func TestTopologyGeometryOwnsBodies(t *testing.T) {
	p := NewPendulumPair(TieSpring)
	gs := p.DecorativeGeometry(nil, StageTopology)
	if len(gs) != 2 {
		t.Fatalf("topology geometry count = %d, want 2", len(gs))
	}
	if gs[0].Body != 1 || gs[1].Body != 2 {
		t.Errorf("geometry owners = %d, %d", gs[0].Body, gs[1].Body)
	}
}

func TestVelocityGeometryPerRealizedState(t *testing.T) {
	p := NewPendulumPair(TieNone)
	s := p.DefaultState()
	s.U[0] = 2

	gs := p.DecorativeGeometry(s, StageVelocity)
	if len(gs) != 2 {
		t.Fatalf("velocity geometry count = %d, want 2", len(gs))
	}
	if gs[0].Kind.String() != "line" {
		t.Errorf("velocity marker kind = %v", gs[0].Kind)
	}
	if p.DecorativeGeometry(nil, StageVelocity) != nil {
		t.Error("nil state must produce no velocity geometry")
	}
}
