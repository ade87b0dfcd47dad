// Package scene keeps a render backend's scene graph synchronized with
// the evolving state of a multibody system.
//
// The [Reporter] owns three kinds of visual content with different
// lifetimes:
//
//   - persistent decorations attached to one body, created once and moved
//     with the body every frame ([Reporter.AddDecoration])
//   - rubber-band lines whose endpoints track station points on two
//     bodies; the proxy persists, its shape is rebuilt every frame
//     ([Reporter.AddRubberBandLine])
//   - ephemeral geometry that lives for a single rendered frame
//     ([Reporter.AddEphemeralDecoration], plus shapes the system itself
//     contributes per realized stage)
//
// [Reporter.Report] runs one synchronization cycle: realize position
// quantities, move persistent proxies, rebuild rubber bands, swap the
// ephemeral generation, reframe the camera if needed, redraw. All
// operations are synchronous and single-writer; callers must not invoke
// them concurrently.
//
// Backend proxies are held in release-once owners, so teardown releases
// every proxy exactly once regardless of how entries were created.
package scene
