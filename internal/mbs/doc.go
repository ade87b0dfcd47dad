// Package mbs defines the multibody-system collaborator consumed by the
// scene engine, and reference systems used by the demo and tests.
//
// A [System] owns the body topology and can, given a [State], produce the
// world transform of any body and report decorative geometry for each
// realized computation [Stage]. Body 0 is always the immovable ground
// reference; it never receives a transform update.
//
// [PendulumPair] is a concrete System: two planar pendulums hanging from
// ground pins, optionally tied together by a spring or a near-rigid rod.
package mbs
