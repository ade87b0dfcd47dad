package decor

import (
	"errors"
	"fmt"
)

// ErrUnknownRepresentation indicates a representation value outside the
// closed set. It signals a programming error, not bad user input.
var ErrUnknownRepresentation = errors.New("decor: unknown draw representation")

// Style holds fully resolved visual properties for one proxy.
type Style struct {
	Color          Color
	Opacity        float32
	LineWidth      float32
	Representation Representation
}

// Resolve produces the style a backend proxy should carry for g.
// An unset color falls back to fallback (the owning body's default, or a
// fixed neutral for geometry spanning bodies); opacity and line width fall
// back to 1, representation to [Surface].
func (g Geometry) Resolve(fallback Color) (Style, error) {
	rep := g.Representation.Or(Surface)
	switch rep {
	case Points, Wireframe, Surface:
	default:
		return Style{}, fmt.Errorf("%w: %d", ErrUnknownRepresentation, rep)
	}
	return Style{
		Color:          g.Color.Or(fallback),
		Opacity:        g.Opacity.Or(1),
		LineWidth:      g.LineWidth.Or(1),
		Representation: rep,
	}, nil
}
