package scene

import (
	"fmt"

	"cogentcore.org/core/math32"

	"github.com/san-kum/mbviz/internal/decor"
	"github.com/san-kum/mbviz/internal/mbs"
	"github.com/san-kum/mbviz/internal/spatial"
)

// Reporter synchronizes a render backend with a multibody system, one
// report cycle per simulation output point. It has two operating states:
// ready, and disposed once the backend is released, after which every
// operation is a silent no-op.
type Reporter struct {
	sys     mbs.System
	backend Backend

	bodies      []bodyInfo
	rubberBands []*rubberBand
	pending     []decor.Geometry // queued ephemeral descriptors
	ephemeral   []*ownedProxy    // live ephemeral generation

	autoScale    float32
	needsFraming bool
	disposed     bool
}

// New builds a reporter over a system whose topology has been finalized.
// autoScale sizes the default per-body geometry (frames, mobilizer
// frames, mass-center markers); passing 0 disables that generation
// entirely without affecting caller-added decorations.
func New(sys mbs.System, backend Backend, autoScale float32) (*Reporter, error) {
	if !sys.TopologyRealized() {
		return nil, ErrNotRealized
	}

	r := &Reporter{
		sys:       sys,
		backend:   backend,
		autoScale: autoScale,
	}

	n := sys.NumBodies()
	r.bodies = make([]bodyInfo, n)
	for i := range r.bodies {
		r.bodies[i].scale = autoScale
		r.bodies[i].defaultColor = defaultBodyColor
	}
	if n > 0 {
		r.bodies[0].defaultColor = defaultGroundColor
	}
	for i := 1; i < n; i++ {
		if sys.Parent(i) == 0 {
			r.bodies[i].defaultColor = defaultBaseColor
		}
		// grow size hints from the mobilizer frame offsets
		if d := sys.OutboardFrame(i).Pos.Length(); d > r.bodies[i].scale {
			r.bodies[i].scale = d
		}
		if d := sys.InboardFrame(i).Pos.Length(); d > r.bodies[sys.Parent(i)].scale {
			r.bodies[sys.Parent(i)].scale = d
		}
	}

	r.initCamera()

	if autoScale != 0 {
		if err := r.addAutoGeometry(); err != nil {
			return nil, err
		}
	}

	// shapes the system itself wants shown in every frame
	for _, g := range r.sys.DecorativeGeometry(nil, mbs.StageTopology) {
		if err := r.AddDecoration(g.Body, spatial.Identity(), g); err != nil {
			return nil, err
		}
	}

	r.backend.ZoomToAllGeometry()
	r.needsFraming = false
	if err := r.backend.Render(); err != nil {
		return nil, fmt.Errorf("scene: initial render: %w", err)
	}
	return r, nil
}

func (r *Reporter) initCamera() {
	cameraScale := r.autoScale
	if cameraScale == 0 {
		cameraScale = 1
	}
	r.backend.SetCameraLocation(math32.Vec3(0, 0.1*cameraScale, cameraScale))
	r.backend.SetCameraFocalPoint(math32.Vector3{})
	r.backend.SetCameraUpDirection(math32.Vec3(0, 1, 0))
}

// addAutoGeometry generates the default decorations: a body frame for
// every body, mobilizer frames with connector lines, and a mass-center
// marker.
func (r *Reporter) addAutoGeometry() error {
	for i := range r.bodies {
		scale := r.bodies[i].scale

		axes := decor.NewFrame(scale * 0.5).WithLineWidth(2)
		if err := r.AddDecoration(i, spatial.Identity(), axes); err != nil {
			return err
		}

		if i > 0 {
			parent := r.sys.Parent(i)
			pscale := r.bodies[parent].scale

			// outboard frame at half size, unless it coincides with the
			// body frame
			m := r.sys.OutboardFrame(i)
			if !m.IsIdentity() {
				if err := r.AddDecoration(i, m, decor.NewFrame(scale*0.25)); err != nil {
					return err
				}
				if m.Pos != (math32.Vector3{}) {
					line := decor.NewLine(math32.Vector3{}, m.Pos)
					if err := r.AddDecoration(i, spatial.Identity(), line); err != nil {
						return err
					}
				}
			}

			// the corresponding frame on the parent, in this body's color
			mb := r.sys.InboardFrame(i)
			frameOnParent := decor.NewFrame(pscale * 0.25).WithColor(r.bodies[i].defaultColor)
			if err := r.AddDecoration(parent, mb, frameOnParent); err != nil {
				return err
			}
			if mb.Pos != (math32.Vector3{}) {
				line := decor.NewLine(math32.Vector3{}, mb.Pos)
				if err := r.AddDecoration(parent, spatial.Identity(), line); err != nil {
					return err
				}
			}
		}

		// wireframe point cloud at the mass center, with a connector when
		// it is off the body origin
		com := r.sys.MassCenter(i)
		comMarker := decor.NewSphere(scale * 0.05).
			WithColor(decor.Purple).
			WithRepresentation(decor.Points)
		if err := r.AddDecoration(i, spatial.Translation(com), comMarker); err != nil {
			return err
		}
		if com != (math32.Vector3{}) {
			line := decor.NewLine(math32.Vector3{}, com)
			if err := r.AddDecoration(i, spatial.Identity(), line); err != nil {
				return err
			}
		}
	}
	return nil
}

// Report runs one synchronization cycle for s. Within a cycle, transform
// updates happen before the ephemeral swap, which happens before the
// redraw, so a rendered frame never pairs stale ephemeral geometry with a
// new body pose. A no-op once disposed.
func (r *Reporter) Report(s *mbs.State) error {
	if r.disposed {
		return nil
	}

	if err := r.sys.Realize(s, mbs.StagePosition); err != nil {
		return fmt.Errorf("scene: realize position: %w", err)
	}

	r.collectStageGeometry(s)
	if err := r.validatePending(); err != nil {
		return err
	}

	for body := 1; body < len(r.bodies); body++ {
		r.setConfiguration(body, r.sys.BodyTransform(s, body))
	}

	r.updateRubberBands(s)
	r.displayEphemeral(s)

	if r.needsFraming {
		r.backend.ZoomToAllGeometry()
		r.needsFraming = false
	}

	if err := r.backend.Render(); err != nil {
		if r.backend.Closed() {
			r.dispose()
			return nil
		}
		return fmt.Errorf("scene: render: %w", err)
	}
	if r.backend.Closed() {
		r.dispose()
	}
	return nil
}

// ResetCamera requests a reframe around all visible geometry at the next
// report cycle.
func (r *Reporter) ResetCamera() {
	if r.disposed {
		return
	}
	r.needsFraming = true
}

func (r *Reporter) SetCameraLocation(p math32.Vector3) {
	if r.disposed {
		return
	}
	r.backend.SetCameraLocation(p)
}

func (r *Reporter) SetCameraFocalPoint(p math32.Vector3) {
	if r.disposed {
		return
	}
	r.backend.SetCameraFocalPoint(p)
}

func (r *Reporter) SetCameraUpDirection(d math32.Vector3) {
	if r.disposed {
		return
	}
	r.backend.SetCameraUpDirection(d)
}

func (r *Reporter) SetCameraClippingRange(near, far float32) {
	if r.disposed {
		return
	}
	r.backend.SetCameraClippingRange(near, far)
}

func (r *Reporter) ZoomCameraToIncludeAllGeometry() {
	if r.disposed {
		return
	}
	r.backend.ZoomToAllGeometry()
}

func (r *Reporter) ZoomCamera(factor float32) {
	if r.disposed {
		return
	}
	r.backend.Zoom(factor)
}

// Close releases every proxy exactly once, then the backend itself.
// Idempotent; Report calls after Close are silent no-ops.
func (r *Reporter) Close() {
	if r.disposed {
		return
	}
	r.releaseAll()
	r.backend.Close()
	r.disposed = true
}

// dispose tears scene state down after the backend was closed
// externally.
func (r *Reporter) dispose() {
	if r.disposed {
		return
	}
	r.releaseAll()
	r.disposed = true
}

func (r *Reporter) releaseAll() {
	for i := range r.bodies {
		for _, d := range r.bodies[i].decorations {
			d.proxy.release()
		}
	}
	for _, b := range r.rubberBands {
		b.proxy.release()
	}
	for _, own := range r.ephemeral {
		own.release()
	}
	r.ephemeral = nil
	r.pending = nil
}
