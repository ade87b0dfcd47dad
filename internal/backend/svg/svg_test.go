package svg

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cogentcore.org/core/math32"

	"github.com/san-kum/mbviz/internal/backend/tui"
	"github.com/san-kum/mbviz/internal/decor"
)

func TestCanvasToSVG(t *testing.T) {
	c := tui.NewCanvas(4, 2)
	c.Set(0, 0)
	c.Set(3, 5)

	out := CanvasToSVG(c, 4)
	if !strings.HasPrefix(out, `<?xml`) {
		t.Error("missing XML header")
	}
	if got := strings.Count(out, "<circle"); got != 2 {
		t.Errorf("circles = %d, want 2", got)
	}
	if !strings.Contains(out, `cx="2.0" cy="2.0"`) {
		t.Errorf("first dot misplaced:\n%s", out)
	}
}

func TestRecorderWritesNumberedFrames(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "frames")
	r, err := NewRecorder(dir, 20, 8)
	if err != nil {
		t.Fatalf("NewRecorder: %v", err)
	}
	r.SetCameraLocation(math32.Vec3(0, 0, 3))

	p := r.NewProxy()
	p.SetShape(decor.NewLine(math32.Vec3(-1, 0, 0), math32.Vec3(1, 0, 0)))
	r.Add(p)

	for i := 0; i < 3; i++ {
		if err := r.Render(); err != nil {
			t.Fatalf("Render %d: %v", i, err)
		}
	}
	if r.Frames() != 3 {
		t.Errorf("Frames() = %d, want 3", r.Frames())
	}

	for _, name := range []string{"frame-0000.svg", "frame-0001.svg", "frame-0002.svg"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		if !strings.Contains(string(data), "<svg") {
			t.Errorf("%s is not an SVG document", name)
		}
	}
}
