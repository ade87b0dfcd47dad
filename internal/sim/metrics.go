package sim

import (
	"math"

	"github.com/san-kum/mbviz/internal/dynamo"
	"github.com/san-kum/mbviz/internal/mbs"
)

// EnergyDrift tracks the worst relative deviation of total energy from
// its initial value over a run. A useful sanity check on step size.
type EnergyDrift struct {
	dyn      dynamo.Hamiltonian
	initial  float64
	maxDrift float64
	samples  int
}

func NewEnergyDrift(dyn dynamo.Hamiltonian) *EnergyDrift {
	return &EnergyDrift{dyn: dyn}
}

func (e *EnergyDrift) Name() string { return "energy_drift" }

func (e *EnergyDrift) Observe(s *mbs.State) {
	energy := e.dyn.Energy(flatten(s))
	if e.samples == 0 {
		e.initial = energy
	}
	e.samples++
	if e.initial != 0 {
		drift := math.Abs(energy-e.initial) / math.Abs(e.initial)
		e.maxDrift = math.Max(e.maxDrift, drift)
	}
}

func (e *EnergyDrift) Value() float64 { return e.maxDrift }

func (e *EnergyDrift) Reset() {
	e.initial = 0
	e.maxDrift = 0
	e.samples = 0
}

// MaxSpeed tracks the largest generalized speed magnitude seen.
type MaxSpeed struct {
	max float64
}

func (m *MaxSpeed) Name() string { return "max_speed" }

func (m *MaxSpeed) Observe(s *mbs.State) {
	for _, u := range s.U {
		if a := math.Abs(u); a > m.max {
			m.max = a
		}
	}
}

func (m *MaxSpeed) Value() float64 { return m.max }
func (m *MaxSpeed) Reset()         { m.max = 0 }

// flatten packs a state's coordinates and speeds into the layout the
// dynamics layer works on.
func flatten(s *mbs.State) dynamo.State {
	x := make(dynamo.State, 0, len(s.Q)+len(s.U))
	x = append(x, s.Q...)
	x = append(x, s.U...)
	return x
}
