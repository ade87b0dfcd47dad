package scene

import (
	"cogentcore.org/core/math32"

	"github.com/san-kum/mbviz/internal/decor"
)

// Proxy is the backend-owned drawable corresponding to one piece of
// geometry in the scene. A fresh proxy sits at the identity pose.
type Proxy interface {
	// SetShape replaces the proxy's geometric content. The proxy's
	// identity and pose are unaffected.
	SetShape(g decor.Geometry)

	// SetStyle applies resolved visual properties. Called once, right
	// after creation.
	SetStyle(st decor.Style)

	// SetTranslation places the proxy in the ground frame.
	SetTranslation(p math32.Vector3)

	// SetRotation orients the proxy absolutely: any previous orientation
	// is discarded and replaced by a single rotation of angle radians
	// about axis. Absolute replacement avoids drift from incremental
	// composition.
	SetRotation(angle float32, axis math32.Vector3)

	// Release frees backend resources. The proxy must not be used after.
	Release()
}

// Backend is the external rendering collaborator: scene graph, window and
// camera. Implementations must tolerate Remove and Proxy.Release calls
// after Closed becomes true, since teardown runs unconditionally.
type Backend interface {
	// NewProxy creates a drawable not yet part of the scene.
	NewProxy() Proxy

	// Add and Remove control scene membership.
	Add(p Proxy)
	Remove(p Proxy)

	SetCameraLocation(p math32.Vector3)
	SetCameraFocalPoint(p math32.Vector3)
	SetCameraUpDirection(d math32.Vector3)
	SetCameraClippingRange(near, far float32)

	// ZoomToAllGeometry reframes the camera to include everything
	// currently in the scene.
	ZoomToAllGeometry()

	// Zoom scales the current framing by the given factor.
	Zoom(factor float32)

	// Render draws the current scene and drains any platform events
	// without blocking.
	Render() error

	// Closed reports whether the backend was shut down externally (for
	// example the window was closed by the user).
	Closed() bool

	// Close releases the backend. Idempotent.
	Close()
}
