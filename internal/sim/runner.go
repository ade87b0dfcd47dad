// Package sim runs a multibody system forward in time, reporting each
// output point to a scene reporter and feeding registered metrics and
// observers along the way.
package sim

import (
	"context"
	"fmt"
	"math"

	"github.com/san-kum/mbviz/internal/mbs"
	"github.com/san-kum/mbviz/internal/scene"
)

// Stepper is a system that can advance its own state by a fixed step.
type Stepper interface {
	mbs.System
	Step(s *mbs.State, dt float64) error
}

// Observer is called once per output point, after the state has been
// advanced. The state must not be retained.
type Observer interface {
	OnStep(s *mbs.State)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(s *mbs.State)

func (f ObserverFunc) OnStep(s *mbs.State) { f(s) }

// Metric accumulates a scalar over a run.
type Metric interface {
	Name() string
	Observe(s *mbs.State)
	Value() float64
	Reset()
}

// Config bounds a run.
type Config struct {
	Dt       float64
	Duration float64

	// FrameEvery reports every Nth step to the scene; 0 means every step.
	FrameEvery int
}

// Result is the trajectory a run produced.
type Result struct {
	Times      []float64
	Coords     [][]float64 // generalized coordinates per output point
	Speeds     [][]float64
	Metrics    map[string]float64
	StepsTaken int
}

// Runner couples a stepping system to an optional scene reporter.
type Runner struct {
	sys       Stepper
	rep       *scene.Reporter
	metrics   []Metric
	observers []Observer
}

// New builds a runner; rep may be nil for headless runs.
func New(sys Stepper, rep *scene.Reporter) *Runner {
	return &Runner{sys: sys, rep: rep}
}

func (r *Runner) AddMetric(m Metric)     { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

// Run advances s until the configured duration elapses, the context is
// canceled, or the state degenerates. The partial result is returned
// alongside a cancellation error.
func (r *Runner) Run(ctx context.Context, s *mbs.State, cfg Config) (*Result, error) {
	if cfg.Dt <= 0 {
		return nil, fmt.Errorf("sim: dt must be positive, got %v", cfg.Dt)
	}
	if cfg.Duration <= 0 {
		return nil, fmt.Errorf("sim: duration must be positive, got %v", cfg.Duration)
	}
	frameEvery := cfg.FrameEvery
	if frameEvery <= 0 {
		frameEvery = 1
	}

	steps := int(cfg.Duration / cfg.Dt)
	result := &Result{
		Times:   make([]float64, 0, steps+1),
		Coords:  make([][]float64, 0, steps+1),
		Speeds:  make([][]float64, 0, steps+1),
		Metrics: make(map[string]float64),
	}

	for _, m := range r.metrics {
		m.Reset()
	}

	r.record(result, s)
	r.emit(s)
	if err := r.report(s); err != nil {
		return result, err
	}

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			r.finish(result)
			return result, ctx.Err()
		default:
		}

		if err := r.sys.Step(s, cfg.Dt); err != nil {
			r.finish(result)
			return result, fmt.Errorf("sim: step %d: %w", i, err)
		}
		if !stateValid(s) {
			r.finish(result)
			return result, fmt.Errorf("sim: state degenerated to NaN/Inf at t=%v", s.Time)
		}

		r.record(result, s)
		r.emit(s)
		if (i+1)%frameEvery == 0 {
			if err := r.report(s); err != nil {
				r.finish(result)
				return result, err
			}
		}
	}

	r.finish(result)
	return result, nil
}

func (r *Runner) record(result *Result, s *mbs.State) {
	result.Times = append(result.Times, s.Time)
	result.Coords = append(result.Coords, append([]float64(nil), s.Q...))
	result.Speeds = append(result.Speeds, append([]float64(nil), s.U...))
	result.StepsTaken = len(result.Times) - 1
}

func (r *Runner) emit(s *mbs.State) {
	for _, m := range r.metrics {
		m.Observe(s)
	}
	for _, o := range r.observers {
		o.OnStep(s)
	}
}

func (r *Runner) report(s *mbs.State) error {
	if r.rep == nil {
		return nil
	}
	return r.rep.Report(s)
}

func (r *Runner) finish(result *Result) {
	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
}

func stateValid(s *mbs.State) bool {
	for _, v := range s.Q {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	for _, v := range s.U {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
