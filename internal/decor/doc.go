// Package decor describes drawable shapes independently of any render
// backend.
//
// A [Geometry] carries a geometric primitive, its placement relative to an
// owning body, and style fields that may be left unset:
//
//   - [Geometry.Color] falls back to the owning body's default color
//   - [Geometry.Opacity] falls back to 1
//   - [Geometry.LineWidth] falls back to 1
//   - [Geometry.Representation] falls back to [Surface]
//
// Unset fields are tagged-absent [Opt] values rather than sentinel
// numbers, so the fallback policy in [Geometry.Resolve] is total over the
// style domain. Resolution happens once, when a backend proxy is created
// for the geometry; the resolved values are a [Style].
package decor
