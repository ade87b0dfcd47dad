package scene

import (
	"errors"
	"testing"

	"cogentcore.org/core/math32"

	"github.com/san-kum/mbviz/internal/decor"
	"github.com/san-kum/mbviz/internal/spatial"
)

func TestCloneRefusesSharedBackend(t *testing.T) {
	b := newStubBackend()
	r, err := New(newStubSystem(2), b, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := r.Clone(b); !errors.Is(err, ErrSharedBackend) {
		t.Errorf("Clone onto own backend: err = %v, want ErrSharedBackend", err)
	}
	if _, err := r.Clone(nil); !errors.Is(err, ErrSharedBackend) {
		t.Errorf("Clone onto nil backend: err = %v, want ErrSharedBackend", err)
	}
}

func TestCloneRebindsContent(t *testing.T) {
	sys := newStubSystem(3)
	src := newStubBackend()
	r, err := New(sys, src, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := r.SetDefaultBodyColor(2, decor.Yellow); err != nil {
		t.Fatalf("SetDefaultBodyColor: %v", err)
	}
	if err := r.AddDecoration(1, spatial.Identity(), decor.NewSphere(0.1)); err != nil {
		t.Fatalf("AddDecoration: %v", err)
	}
	if err := r.AddRubberBandLine(1, math32.Vector3{}, 2, math32.Vector3{}, decor.NewLine(math32.Vector3{}, math32.Vector3{})); err != nil {
		t.Fatalf("AddRubberBandLine: %v", err)
	}

	dst := newStubBackend()
	c, err := r.Clone(dst)
	if err != nil {
		t.Fatalf("Clone: %v", err)
	}

	// one proxy per decoration plus one per rubber band, on the target
	if len(dst.created) != 2 {
		t.Fatalf("clone created %d proxies, want 2", len(dst.created))
	}
	if got, _ := c.DefaultBodyColor(2); got != decor.Yellow {
		t.Errorf("clone body 2 color = %v, want the override", got)
	}

	// clones are independent: closing one leaves the other's proxies alive
	r.Close()
	for i, p := range dst.created {
		if p.releases != 0 {
			t.Errorf("target proxy %d released %d times by source Close", i, p.releases)
		}
	}

	sys.transforms[1] = spatial.Translation(math32.Vec3(5, 0, 0))
	if err := c.Report(positionState()); err != nil {
		t.Fatalf("clone Report: %v", err)
	}
	vecNear(t, dst.created[0].pos, math32.Vec3(5, 0, 0), "clone decoration translation")

	// a rebind invalidates framing until the first cycle
	if dst.zooms != 1 {
		t.Errorf("clone zooms after first report = %d, want 1", dst.zooms)
	}
}

func TestCloneOfDisposedReporter(t *testing.T) {
	r, err := New(newStubSystem(2), newStubBackend(), 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	r.Close()
	if _, err := r.Clone(newStubBackend()); !errors.Is(err, ErrDisposed) {
		t.Errorf("Clone of disposed reporter: err = %v, want ErrDisposed", err)
	}
}
