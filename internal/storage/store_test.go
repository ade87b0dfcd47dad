package storage

import (
	"encoding/csv"
	"os"
	"testing"
	"time"

	"github.com/san-kum/mbviz/internal/sim"
)

func sampleResult() *sim.Result {
	return &sim.Result{
		Times:      []float64{0, 0.01, 0.02},
		Coords:     [][]float64{{-1, 1}, {-0.9, 0.9}, {-0.8, 0.8}},
		Speeds:     [][]float64{{0, 0}, {0.5, -0.5}, {1, -1}},
		Metrics:    map[string]float64{"energy_drift": 1e-6},
		StepsTaken: 2,
	}
}

func TestSaveAndLoad(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	run := Run{Name: "spring-demo", Tie: "spring", Dt: 0.01, Duration: 0.02}
	if err := s.Save(run, sampleResult()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Load("spring-demo")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Tie != "spring" || got.Steps != 2 {
		t.Errorf("loaded run = %+v", got)
	}
	if got.Metrics["energy_drift"] != 1e-6 {
		t.Errorf("metrics not persisted: %v", got.Metrics)
	}
	if got.SavedAt.IsZero() || time.Since(got.SavedAt) > time.Minute {
		t.Errorf("saved_at = %v", got.SavedAt)
	}
}

func TestTrajectoryCSV(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := s.Save(Run{Name: "r"}, sampleResult()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	f, err := os.Open(dir + "/r.csv")
	if err != nil {
		t.Fatalf("open csv: %v", err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("rows = %d, want header + 3", len(rows))
	}
	want := []string{"t", "q0", "q1", "u0", "u1"}
	for i, h := range want {
		if rows[0][i] != h {
			t.Errorf("header[%d] = %q, want %q", i, rows[0][i], h)
		}
	}
	if rows[1][1] != "-1" || rows[3][0] != "0.02" {
		t.Errorf("trajectory rows wrong: %v", rows)
	}
}

func TestListNewestFirst(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := s.Save(Run{Name: "older"}, sampleResult()); err != nil {
		t.Fatal(err)
	}
	time.Sleep(10 * time.Millisecond)
	if err := s.Save(Run{Name: "newer"}, sampleResult()); err != nil {
		t.Fatal(err)
	}

	runs, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("runs = %d, want 2", len(runs))
	}
	if runs[0].Name != "newer" {
		t.Errorf("first run = %q, want newest", runs[0].Name)
	}
}
