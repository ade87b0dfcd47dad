package mbs

import (
	"fmt"
	"math"

	"cogentcore.org/core/math32"

	"github.com/san-kum/mbviz/internal/decor"
	"github.com/san-kum/mbviz/internal/dynamo"
	"github.com/san-kum/mbviz/internal/integrators"
	"github.com/san-kum/mbviz/internal/spatial"
)

// Tie selects how the two pendulum bobs are connected.
type Tie int

const (
	TieNone Tie = iota
	TieSpring
	TieRod
)

// PendulumPair is two planar pendulums hanging from pins fixed on ground
// at (-1,0,0) and (1,0,0), swinging in the XY plane. With TieSpring the
// bobs are joined by a damped linear spring; TieRod approximates a rigid
// rod with a stiff spring.
//
// Generalized coordinates are the two pin angles measured from straight
// down; body origins sit at the bobs.
type PendulumPair struct {
	Mass    float64
	Rod     float64
	Gravity float64
	Damping float64

	Tie        Tie
	Stiffness  float64
	TieDamping float64
	RestLength float64

	integ    dynamo.Integrator
	finished bool // topology finalized
}

const (
	pendulumBodies = 3 // ground + two pendulums
	leftBody       = 1
	rightBody      = 2
)

func NewPendulumPair(tie Tie) *PendulumPair {
	p := &PendulumPair{
		Mass:       1,
		Rod:        0.5,
		Gravity:    9.8,
		Tie:        tie,
		Stiffness:  100,
		TieDamping: 10,
		RestLength: 2,
		integ:      integrators.NewRK4(),
		finished:   true,
	}
	if tie == TieRod {
		p.Stiffness = 10000
		p.TieDamping = 50
	}
	return p
}

// DefaultState returns the demo's initial configuration: left pendulum
// raised to -60 degrees, right to +60.
func (p *PendulumPair) DefaultState() *State {
	return &State{
		Q:        []float64{-math.Pi / 3, math.Pi / 3},
		U:        []float64{0, 0},
		Realized: StageTime,
	}
}

func (p *PendulumPair) pivot(body int) math32.Vector3 {
	if body == leftBody {
		return math32.Vec3(-1, 0, 0)
	}
	return math32.Vec3(1, 0, 0)
}

func (p *PendulumPair) pivot64(body int) (x, y float64) {
	if body == leftBody {
		return -1, 0
	}
	return 1, 0
}

// bob returns the world position of a bob for the given pin angle.
func (p *PendulumPair) bob(body int, theta float64) (x, y float64) {
	px, py := p.pivot64(body)
	return px + p.Rod*math.Sin(theta), py - p.Rod*math.Cos(theta)
}

func (p *PendulumPair) bobVel(theta, omega float64) (vx, vy float64) {
	return p.Rod * omega * math.Cos(theta), p.Rod * omega * math.Sin(theta)
}

// tieForce returns the force the tie applies to the left bob (the right
// bob receives the negation), or zeros when untied or degenerate.
func (p *PendulumPair) tieForce(x dynamo.State) (fx, fy float64) {
	if p.Tie == TieNone {
		return 0, 0
	}
	t1, t2, w1, w2 := x[0], x[1], x[2], x[3]
	x1, y1 := p.bob(leftBody, t1)
	x2, y2 := p.bob(rightBody, t2)
	dx, dy := x2-x1, y2-y1
	dist := math.Hypot(dx, dy)
	if dist < 1e-12 {
		return 0, 0
	}
	ux, uy := dx/dist, dy/dist

	v1x, v1y := p.bobVel(t1, w1)
	v2x, v2y := p.bobVel(t2, w2)
	relSpeed := (v2x-v1x)*ux + (v2y-v1y)*uy

	mag := p.Stiffness*(dist-p.RestLength) + p.TieDamping*relSpeed
	return mag * ux, mag * uy
}

// Derive implements dynamo.System over x = [theta1, theta2, omega1, omega2].
func (p *PendulumPair) Derive(x dynamo.State, t float64) dynamo.State {
	t1, t2, w1, w2 := x[0], x[1], x[2], x[3]
	fx, fy := p.tieForce(x)

	inertia := p.Mass * p.Rod * p.Rod
	alpha := func(theta, omega, qx, qy float64) float64 {
		// generalized force of a bob force along d(bob)/d(theta)
		gen := qx*p.Rod*math.Cos(theta) + qy*p.Rod*math.Sin(theta)
		return (-p.Mass*p.Gravity*p.Rod*math.Sin(theta) + gen - p.Damping*omega) / inertia
	}

	return dynamo.State{
		w1,
		w2,
		alpha(t1, w1, fx, fy),
		alpha(t2, w2, -fx, -fy),
	}
}

func (p *PendulumPair) StateDim() int { return 4 }

// Energy implements dynamo.Hamiltonian: kinetic plus gravitational plus
// tie-spring potential.
func (p *PendulumPair) Energy(x dynamo.State) float64 {
	e := 0.0
	for i, theta := range x[:2] {
		omega := x[2+i]
		v := p.Rod * omega
		e += 0.5*p.Mass*v*v + p.Mass*p.Gravity*p.Rod*(1-math.Cos(theta))
	}
	if p.Tie != TieNone {
		x1, y1 := p.bob(leftBody, x[0])
		x2, y2 := p.bob(rightBody, x[1])
		stretch := math.Hypot(x2-x1, y2-y1) - p.RestLength
		e += 0.5 * p.Stiffness * stretch * stretch
	}
	return e
}

func (p *PendulumPair) GetParams() map[string]float64 {
	return map[string]float64{
		"mass":      p.Mass,
		"rod":       p.Rod,
		"gravity":   p.Gravity,
		"damping":   p.Damping,
		"stiffness": p.Stiffness,
	}
}

func (p *PendulumPair) SetParam(name string, value float64) error {
	switch name {
	case "mass", "rod":
		if value <= 0 {
			return fmt.Errorf("%w: %s=%g", dynamo.ErrParameterBounds, name, value)
		}
	}
	switch name {
	case "mass":
		p.Mass = value
	case "rod":
		p.Rod = value
	case "gravity":
		p.Gravity = value
	case "damping":
		p.Damping = value
	case "stiffness":
		p.Stiffness = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}

// Step advances the state by dt using the pair's integrator. Quantities
// above the time stage must be re-realized afterwards.
func (p *PendulumPair) Step(s *State, dt float64) error {
	x := dynamo.State{s.Q[0], s.Q[1], s.U[0], s.U[1]}
	x = p.integ.Step(p, x, s.Time, dt)
	if !x.IsValid() {
		return fmt.Errorf("%w at t=%.4f", dynamo.ErrInvalidState, s.Time)
	}
	s.Q[0], s.Q[1], s.U[0], s.U[1] = x[0], x[1], x[2], x[3]
	s.Time += dt
	s.Realized = StageTime
	return nil
}

func (p *PendulumPair) NumBodies() int { return pendulumBodies }

func (p *PendulumPair) Parent(body int) int {
	if body == 0 {
		return 0
	}
	return 0 // both pendulums hang from ground
}

func (p *PendulumPair) TopologyRealized() bool { return p.finished }

func (p *PendulumPair) Realize(s *State, stage Stage) error {
	if !p.finished {
		return ErrTopologyNotRealized
	}
	if len(s.Q) != 2 || len(s.U) != 2 {
		return fmt.Errorf("%w: want 2 coordinates and 2 speeds", dynamo.ErrDimensionMismatch)
	}
	// All stage quantities are computed on demand, so realization is
	// pure bookkeeping here.
	if s.Realized < stage {
		s.Realized = stage
	}
	return nil
}

func (p *PendulumPair) BodyTransform(s *State, body int) spatial.Transform {
	if body == 0 {
		return spatial.Identity()
	}
	theta := s.Q[body-1]
	rot := spatial.FromAxisAngle(math32.Vec3(0, 0, 1), float32(theta), math32.Vector3{})
	hang := rot.Apply(math32.Vec3(0, float32(-p.Rod), 0))
	return spatial.Transform{Rot: rot.Rot, Pos: p.pivot(body).Add(hang)}
}

func (p *PendulumPair) InboardFrame(body int) spatial.Transform {
	if body == 0 {
		return spatial.Identity()
	}
	return spatial.Translation(p.pivot(body))
}

func (p *PendulumPair) OutboardFrame(body int) spatial.Transform {
	if body == 0 {
		return spatial.Identity()
	}
	return spatial.Translation(math32.Vec3(0, float32(p.Rod), 0))
}

func (p *PendulumPair) MassCenter(body int) math32.Vector3 {
	return math32.Vector3{}
}

// TieLine returns the rubber-band descriptor for the given tie: an
// orange line for a spring, a thick black one for a rod. Endpoints are
// placeholders; the scene recomputes them every frame.
func TieLine(tie Tie) decor.Geometry {
	line := decor.NewLine(math32.Vector3{}, math32.Vector3{})
	if tie == TieRod {
		return line.WithColor(decor.Black).WithLineWidth(4)
	}
	return line.WithColor(decor.Orange)
}

func (p *PendulumPair) DecorativeGeometry(s *State, stage Stage) []decor.Geometry {
	switch stage {
	case StageTopology:
		// body-fixed bricks marking the bobs
		return []decor.Geometry{
			decor.NewBrick(math32.Vec3(0.1, 0.0667, 0.05)).WithBody(leftBody),
			decor.NewBrick(math32.Vec3(0.1, 0.0667, 0.05)).WithBody(rightBody),
		}
	case StageVelocity:
		if s == nil {
			return nil
		}
		out := make([]decor.Geometry, 0, 2)
		for body := leftBody; body <= rightBody; body++ {
			theta := s.Q[body-1]
			vx, vy := p.bobVel(theta, s.U[body-1])
			// express the velocity arrow in the body's own frame
			c, sn := math.Cos(-theta), math.Sin(-theta)
			lx := float32(0.25 * (vx*c - vy*sn))
			ly := float32(0.25 * (vx*sn + vy*c))
			out = append(out, decor.
				NewLine(math32.Vector3{}, math32.Vec3(lx, ly, 0)).
				WithBody(body).
				WithColor(decor.Cyan))
		}
		return out
	}
	return nil
}
