package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"cogentcore.org/core/math32"

	"github.com/san-kum/mbviz/internal/backend/gui"
	"github.com/san-kum/mbviz/internal/backend/svg"
	"github.com/san-kum/mbviz/internal/backend/tui"
	"github.com/san-kum/mbviz/internal/config"
	"github.com/san-kum/mbviz/internal/mbs"
	"github.com/san-kum/mbviz/internal/scene"
	"github.com/san-kum/mbviz/internal/sim"
	"github.com/san-kum/mbviz/internal/storage"
)

var (
	tie        string
	dt         float64
	duration   float64
	scale      float64
	frameEvery int
	outDir     string
	runName    string
	configFile string
	preset     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mbviz",
		Short: "multibody scene visualization demos",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLive(cmd, args)
		},
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive terminal view of the two-pendulum demo",
		RunE:  runLive,
	}

	windowCmd := &cobra.Command{
		Use:   "window",
		Short: "run the demo in a 3D window",
		RunE:  runWindow,
	}

	recordCmd := &cobra.Command{
		Use:   "record",
		Short: "run headless, saving the trajectory and per-frame SVGs",
		RunE:  runRecord,
	}
	recordCmd.Flags().StringVar(&runName, "name", "run", "saved run name")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	for _, c := range []*cobra.Command{rootCmd, liveCmd, windowCmd, recordCmd} {
		c.Flags().StringVar(&tie, "tie", "", "bob connection: none, spring, rod")
		c.Flags().Float64Var(&dt, "dt", 0, "integration timestep")
		c.Flags().Float64Var(&duration, "time", 0, "run duration (record only)")
		c.Flags().Float64Var(&scale, "scale", -1, "default geometry scale hint, 0 disables")
		c.Flags().IntVar(&frameEvery, "frame-every", 0, "steps per rendered frame")
		c.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
		c.Flags().StringVar(&preset, "preset", "", "preset configuration name")
	}
	rootCmd.PersistentFlags().StringVar(&outDir, "out", "", "output directory")

	rootCmd.AddCommand(liveCmd, windowCmd, recordCmd, listCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig layers preset, config file, and flags, in that order.
func loadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		p, ok := config.Presets[preset]
		if !ok {
			return nil, fmt.Errorf("unknown preset %q", preset)
		}
		*cfg = *p
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if tie != "" {
		cfg.Tie = tie
	}
	if dt > 0 {
		cfg.Dt = dt
	}
	if duration > 0 {
		cfg.Duration = duration
	}
	if scale >= 0 {
		cfg.Scale = float32(scale)
	}
	if frameEvery > 0 {
		cfg.FrameEvery = frameEvery
	}
	if outDir != "" {
		cfg.OutDir = outDir
	}
	return cfg, cfg.Validate()
}

func buildSystem(cfg *config.Config) *mbs.PendulumPair {
	switch cfg.Tie {
	case "spring":
		return mbs.NewPendulumPair(mbs.TieSpring)
	case "rod":
		return mbs.NewPendulumPair(mbs.TieRod)
	default:
		return mbs.NewPendulumPair(mbs.TieNone)
	}
}

// attachRubberBand adds the tie line between the two bobs: orange for a
// spring, thick black for a rod.
func attachRubberBand(rep *scene.Reporter, p *mbs.PendulumPair) error {
	if p.Tie == mbs.TieNone {
		return nil
	}
	line := mbs.TieLine(p.Tie)
	return rep.AddRubberBandLine(1, math32.Vector3{}, 2, math32.Vector3{}, line)
}

func applyCamera(rep *scene.Reporter, cfg *config.Config) {
	if len(cfg.Camera.Location) == 3 {
		rep.SetCameraLocation(math32.Vec3(cfg.Camera.Location[0], cfg.Camera.Location[1], cfg.Camera.Location[2]))
	}
	if len(cfg.Camera.FocalPoint) == 3 {
		rep.SetCameraFocalPoint(math32.Vec3(cfg.Camera.FocalPoint[0], cfg.Camera.FocalPoint[1], cfg.Camera.FocalPoint[2]))
	}
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	p := buildSystem(cfg)

	viewer, err := tui.NewViewer(p, p.DefaultState(), cfg.Dt, cfg.Scale, "two pendulums · "+cfg.Tie)
	if err != nil {
		return err
	}
	if err := attachRubberBand(viewer.Reporter(), p); err != nil {
		return err
	}
	applyCamera(viewer.Reporter(), cfg)

	_, err = tea.NewProgram(viewer, tea.WithAltScreen()).Run()
	return err
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	p := buildSystem(cfg)

	backend := gui.NewBackend("mbviz")
	rep, err := scene.New(p, backend, cfg.Scale)
	if err != nil {
		backend.Close()
		return err
	}
	defer rep.Close()
	if err := attachRubberBand(rep, p); err != nil {
		return err
	}
	applyCamera(rep, cfg)

	s := p.DefaultState()
	for {
		if err := p.Step(s, cfg.Dt); err != nil {
			return err
		}
		if err := rep.Report(s); err != nil {
			return err
		}
		if backend.Closed() {
			return nil
		}
	}
}

func runRecord(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	p := buildSystem(cfg)

	recorder, err := svg.NewRecorder(cfg.OutDir+"/"+runName, 80, 24)
	if err != nil {
		return err
	}
	rep, err := scene.New(p, recorder, cfg.Scale)
	if err != nil {
		return err
	}
	defer rep.Close()
	if err := attachRubberBand(rep, p); err != nil {
		return err
	}
	applyCamera(rep, cfg)

	runner := sim.New(p, rep)
	drift := sim.NewEnergyDrift(p)
	runner.AddMetric(drift)
	runner.AddMetric(&sim.MaxSpeed{})

	result, err := runner.Run(context.Background(), p.DefaultState(), sim.Config{
		Dt:         cfg.Dt,
		Duration:   cfg.Duration,
		FrameEvery: cfg.FrameEvery,
	})
	if err != nil {
		return err
	}

	store, err := storage.New(cfg.OutDir)
	if err != nil {
		return err
	}
	run := storage.Run{Name: runName, Tie: cfg.Tie, Dt: cfg.Dt, Duration: cfg.Duration}
	if err := store.Save(run, result); err != nil {
		return err
	}

	fmt.Printf("saved %s: %d steps, %d frames, energy drift %.2e\n",
		runName, result.StepsTaken, recorder.Frames(), result.Metrics["energy_drift"])
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := storage.New(cfg.OutDir)
	if err != nil {
		return err
	}
	runs, err := store.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no saved runs")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTIE\tDT\tDURATION\tSTEPS\tSAVED")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%g\t%g\t%d\t%s\n",
			r.Name, r.Tie, r.Dt, r.Duration, r.Steps, r.SavedAt.Format("2006-01-02 15:04"))
	}
	return w.Flush()
}
