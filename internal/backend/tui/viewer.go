package tui

import (
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/mbviz/internal/dynamo"
	"github.com/san-kum/mbviz/internal/mbs"
	"github.com/san-kum/mbviz/internal/scene"
)

const (
	viewerCanvasW  = 80
	viewerCanvasH  = 24
	energyCapacity = 600
	substeps       = 4
)

var (
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(0, 2).Width(42)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

type tickMsg time.Time

// Stepper matches the run loop's notion of a self-advancing system.
type Stepper interface {
	mbs.System
	Step(s *mbs.State, dt float64) error
}

// Viewer is a bubbletea model that steps a system and mirrors it through
// a scene reporter into an embedded terminal backend.
type Viewer struct {
	sys     Stepper
	state   *mbs.State
	initial *mbs.State
	rep     *scene.Reporter
	backend *Backend

	dt      float64
	title   string
	running bool
	err     error

	energy []float64
}

// NewViewer wires a system to a fresh reporter rendering into an
// off-screen canvas. autoScale is passed through to the reporter.
func NewViewer(sys Stepper, s *mbs.State, dt float64, autoScale float32, title string) (*Viewer, error) {
	backend := NewBackend(io.Discard, viewerCanvasW, viewerCanvasH)
	rep, err := scene.New(sys, backend, autoScale)
	if err != nil {
		return nil, err
	}
	initial := &mbs.State{
		Time:     s.Time,
		Q:        append([]float64(nil), s.Q...),
		U:        append([]float64(nil), s.U...),
		Realized: s.Realized,
	}
	return &Viewer{
		sys:     sys,
		state:   s,
		initial: initial,
		rep:     rep,
		backend: backend,
		dt:      dt,
		title:   title,
		running: true,
		energy:  make([]float64, 0, energyCapacity),
	}, nil
}

// Reporter exposes the viewer's scene reporter so callers can attach
// decorations and rubber bands before the program starts.
func (v *Viewer) Reporter() *scene.Reporter { return v.rep }

func (v *Viewer) Init() tea.Cmd { return tick() }

func tick() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (v *Viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			v.rep.Close()
			return v, tea.Quit
		case " ":
			v.running = !v.running
		case "r":
			v.reset()
		case "left", "h":
			v.backend.cam.orbit(0.1)
		case "right", "l":
			v.backend.cam.orbit(-0.1)
		case "+", "=":
			v.rep.ZoomCamera(1.2)
		case "-":
			v.rep.ZoomCamera(1 / 1.2)
		case "z":
			v.rep.ResetCamera()
		}
		return v, nil

	case tickMsg:
		if v.running && v.err == nil {
			for i := 0; i < substeps; i++ {
				if err := v.sys.Step(v.state, v.dt); err != nil {
					v.err = err
					break
				}
			}
			if err := v.rep.Report(v.state); err != nil {
				v.err = err
			}
			v.sampleEnergy()
		}
		return v, tick()
	}
	return v, nil
}

func (v *Viewer) reset() {
	v.state.Time = v.initial.Time
	copy(v.state.Q, v.initial.Q)
	copy(v.state.U, v.initial.U)
	v.state.Realized = v.initial.Realized
	v.energy = v.energy[:0]
	v.err = nil
}

func (v *Viewer) sampleEnergy() {
	h, ok := v.sys.(dynamo.Hamiltonian)
	if !ok {
		return
	}
	x := make(dynamo.State, 0, len(v.state.Q)+len(v.state.U))
	x = append(x, v.state.Q...)
	x = append(x, v.state.U...)
	if len(v.energy) == energyCapacity {
		copy(v.energy, v.energy[1:])
		v.energy = v.energy[:energyCapacity-1]
	}
	v.energy = append(v.energy, h.Energy(x))
}

func (v *Viewer) View() string {
	canvas := canvasStyle.Render(v.backend.Frame())

	var stats []string
	stats = append(stats, headerStyle.Render(v.title))
	stats = append(stats, row("time", fmt.Sprintf("%.2f s", v.state.Time)))
	status := "running"
	if !v.running {
		status = "paused"
	}
	stats = append(stats, row("status", status))
	if n := len(v.energy); n > 0 {
		stats = append(stats, row("energy", fmt.Sprintf("%.4f J", v.energy[n-1])))
		if n > 2 {
			graph := asciigraph.Plot(v.energy, asciigraph.Height(6), asciigraph.Width(34), asciigraph.Precision(2))
			stats = append(stats, graphStyle.Render(graph))
		}
	}
	if v.err != nil {
		stats = append(stats, errStyle.Render("error: "+v.err.Error()))
	}
	panel := statsStyle.Render(lipgloss.JoinVertical(lipgloss.Left, stats...))

	help := helpStyle.Render("space pause · r reset · h/l orbit · +/- zoom · z reframe · q quit")
	return lipgloss.JoinHorizontal(lipgloss.Top, canvas, panel) + "\n" + help
}

func row(label, value string) string {
	return labelStyle.Render(label) + valueStyle.Render(value)
}
