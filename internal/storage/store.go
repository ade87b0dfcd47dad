// Package storage persists run trajectories: a JSON metadata record and
// a CSV trajectory per run, side by side in one directory.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/san-kum/mbviz/internal/sim"
)

// Run is the metadata saved alongside a trajectory.
type Run struct {
	Name     string             `json:"name"`
	Tie      string             `json:"tie"`
	Dt       float64            `json:"dt"`
	Duration float64            `json:"duration"`
	Steps    int                `json:"steps"`
	SavedAt  time.Time          `json:"saved_at"`
	Metrics  map[string]float64 `json:"metrics"`
}

type Store struct {
	dir string
}

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: create dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Save writes <name>.json and <name>.csv. An existing run of the same
// name is overwritten.
func (s *Store) Save(run Run, result *sim.Result) error {
	run.Steps = result.StepsTaken
	run.SavedAt = time.Now().UTC()
	run.Metrics = result.Metrics

	meta, err := json.MarshalIndent(run, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path(run.Name, "json"), meta, 0o644); err != nil {
		return fmt.Errorf("storage: write metadata: %w", err)
	}

	f, err := os.Create(s.path(run.Name, "csv"))
	if err != nil {
		return fmt.Errorf("storage: write trajectory: %w", err)
	}
	defer f.Close()
	return writeTrajectory(f, result)
}

func writeTrajectory(f *os.File, result *sim.Result) error {
	w := csv.NewWriter(f)

	header := []string{"t"}
	if len(result.Coords) > 0 {
		for i := range result.Coords[0] {
			header = append(header, fmt.Sprintf("q%d", i))
		}
		for i := range result.Speeds[0] {
			header = append(header, fmt.Sprintf("u%d", i))
		}
	}
	if err := w.Write(header); err != nil {
		return err
	}

	row := make([]string, 0, len(header))
	for i, t := range result.Times {
		row = row[:0]
		row = append(row, strconv.FormatFloat(t, 'g', -1, 64))
		for _, q := range result.Coords[i] {
			row = append(row, strconv.FormatFloat(q, 'g', -1, 64))
		}
		for _, u := range result.Speeds[i] {
			row = append(row, strconv.FormatFloat(u, 'g', -1, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// List returns the saved runs, newest first.
func (s *Store) List() ([]Run, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}
	runs := make([]Run, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		run, err := s.Load(strings.TrimSuffix(e.Name(), ".json"))
		if err != nil {
			return nil, err
		}
		runs = append(runs, *run)
	}
	sort.Slice(runs, func(i, j int) bool { return runs[i].SavedAt.After(runs[j].SavedAt) })
	return runs, nil
}

// Load reads one run's metadata.
func (s *Store) Load(name string) (*Run, error) {
	data, err := os.ReadFile(s.path(name, "json"))
	if err != nil {
		return nil, err
	}
	var run Run
	if err := json.Unmarshal(data, &run); err != nil {
		return nil, fmt.Errorf("storage: decode %s: %w", name, err)
	}
	return &run, nil
}

func (s *Store) path(name, ext string) string {
	return filepath.Join(s.dir, name+"."+ext)
}
