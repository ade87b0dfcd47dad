package mbs

import (
	"errors"

	"cogentcore.org/core/math32"

	"github.com/san-kum/mbviz/internal/decor"
	"github.com/san-kum/mbviz/internal/spatial"
)

// ErrTopologyNotRealized indicates use of a system whose body topology has
// not been finalized.
var ErrTopologyNotRealized = errors.New("mbs: system topology has not been realized")

// State carries the time-varying values of a System together with the
// highest Stage realized for them.
type State struct {
	Time     float64
	Q        []float64 // generalized coordinates
	U        []float64 // generalized speeds
	Realized Stage
}

// System is the simulation collaborator the scene engine reads from.
// Implementations must number bodies 0..NumBodies-1 with 0 as ground.
type System interface {
	// NumBodies returns the body count including ground.
	NumBodies() int

	// Parent returns the parent body id; ground's parent is ground itself.
	Parent(body int) int

	// TopologyRealized reports whether the topology has been finalized.
	// The scene engine refuses construction until it has.
	TopologyRealized() bool

	// Realize computes the quantities of the given stage (and all lower
	// stages) for s, updating s.Realized. Idempotent when already
	// satisfied.
	Realize(s *State, stage Stage) error

	// BodyTransform returns the transform taking the body's local frame
	// to ground, valid once s is realized to StagePosition.
	BodyTransform(s *State, body int) spatial.Transform

	// InboardFrame returns the mobilizer frame fixed on the parent body;
	// OutboardFrame the corresponding frame fixed on the body itself.
	InboardFrame(body int) spatial.Transform
	OutboardFrame(body int) spatial.Transform

	// MassCenter returns the body's mass center in its local frame.
	MassCenter(body int) math32.Vector3

	// DecorativeGeometry returns ad hoc shapes the system wants drawn for
	// the given stage. Topology-stage geometry is queried once, with a
	// nil state, and installed persistently; geometry for higher stages
	// is re-collected every report cycle and lives for a single frame.
	DecorativeGeometry(s *State, stage Stage) []decor.Geometry
}
