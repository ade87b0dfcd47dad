package dynamo

import "math"

// State is a flat vector of generalized coordinates followed by their
// speeds.
type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

// IsValid reports whether the state contains only finite values.
func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s State) Norm() float64 {
	sum := 0.0
	for _, v := range s {
		sum += v * v
	}
	return math.Sqrt(sum)
}

// System is an ordinary differential equation dX/dt = f(X, t).
type System interface {
	Derive(x State, t float64) State
	StateDim() int
}

// Integrator advances a System by one fixed step.
type Integrator interface {
	Step(dyn System, x State, t, dt float64) State
}

// Hamiltonian is implemented by systems that can report total energy.
type Hamiltonian interface {
	Energy(x State) float64
}

// Configurable is implemented by systems with runtime-adjustable
// parameters.
type Configurable interface {
	GetParams() map[string]float64
	SetParam(name string, value float64) error
}
