package decor

import (
	"errors"
	"testing"

	"cogentcore.org/core/math32"
)

func TestResolveDefaults(t *testing.T) {
	g := NewSphere(0.5)
	st, err := g.Resolve(Green)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if st.Color != Green {
		t.Errorf("unset color resolved to %v, want body default %v", st.Color, Green)
	}
	if st.Opacity != 1 {
		t.Errorf("opacity = %v, want 1", st.Opacity)
	}
	if st.LineWidth != 1 {
		t.Errorf("line width = %v, want 1", st.LineWidth)
	}
	if st.Representation != Surface {
		t.Errorf("representation = %v, want surface", st.Representation)
	}
}

func TestResolveExplicitWins(t *testing.T) {
	g := NewSphere(0.5).
		WithColor(Red).
		WithOpacity(0.25).
		WithLineWidth(4).
		WithRepresentation(Wireframe)

	st, err := g.Resolve(Green)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if st.Color != Red {
		t.Errorf("explicit color overridden: %v", st.Color)
	}
	if st.Opacity != 0.25 || st.LineWidth != 4 || st.Representation != Wireframe {
		t.Errorf("explicit style lost: %+v", st)
	}
}

func TestResolveUnknownRepresentation(t *testing.T) {
	g := NewSphere(1).WithRepresentation(Representation(99))
	if _, err := g.Resolve(Gray); !errors.Is(err, ErrUnknownRepresentation) {
		t.Errorf("expected ErrUnknownRepresentation, got %v", err)
	}
}

func TestOptZeroValueUnset(t *testing.T) {
	var o Opt[float32]
	if o.IsSet() {
		t.Error("zero Opt reports set")
	}
	if got := o.Or(7); got != 7 {
		t.Errorf("Or on unset = %v, want 7", got)
	}
	o = Set[float32](0) // an explicit zero is still a value
	if !o.IsSet() {
		t.Error("Set(0) reports unset")
	}
	if got := o.Or(7); got != 0 {
		t.Errorf("Or on explicit zero = %v, want 0", got)
	}
}

func TestBoundsLine(t *testing.T) {
	g := NewLine(math32.Vec3(-1, 0, 0), math32.Vec3(1, 2, 0))
	b := g.Bounds()
	if b.Min.X != -1 || b.Max.Y != 2 {
		t.Errorf("line bounds wrong: %+v", b)
	}
}

func TestBoundsSphere(t *testing.T) {
	g := NewSphere(0.5)
	b := g.Bounds()
	if b.Min.X != -0.5 || b.Max.Z != 0.5 {
		t.Errorf("sphere bounds wrong: %+v", b)
	}
}
