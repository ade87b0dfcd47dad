package decor

// Color is an RGB triple with components in [0, 1].
type Color struct {
	R, G, B float32
}

// Standard colors used by default body decoration.
var (
	Black   = Color{0, 0, 0}
	Gray    = Color{0.5, 0.5, 0.5}
	White   = Color{1, 1, 1}
	Red     = Color{1, 0, 0}
	Green   = Color{0, 1, 0}
	Blue    = Color{0, 0, 1}
	Yellow  = Color{1, 1, 0}
	Orange  = Color{1, 0.5, 0}
	Purple  = Color{0.5, 0, 0.5}
	Cyan    = Color{0, 1, 1}
	Magenta = Color{1, 0, 1}
)
