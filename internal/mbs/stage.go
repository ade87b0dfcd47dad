package mbs

// Stage is a computation milestone. Realizing a state up to a stage makes
// the quantities of that stage and all lower stages available.
type Stage int

const (
	StageEmpty Stage = iota
	StageTopology
	StageModel
	StageInstance
	StageTime
	StagePosition
	StageVelocity
	StageDynamics
	StageAcceleration
)

func (s Stage) String() string {
	switch s {
	case StageEmpty:
		return "empty"
	case StageTopology:
		return "topology"
	case StageModel:
		return "model"
	case StageInstance:
		return "instance"
	case StageTime:
		return "time"
	case StagePosition:
		return "position"
	case StageVelocity:
		return "velocity"
	case StageDynamics:
		return "dynamics"
	case StageAcceleration:
		return "acceleration"
	}
	return "unknown"
}
