package config

// Presets are ready-made run configurations selectable by name.
var Presets = map[string]*Config{
	"free": {
		Backend: "terminal", Tie: "none",
		Dt: DefaultDt, Duration: DefaultDuration, Scale: DefaultScale,
		FrameEvery: DefaultFrameEvery, OutDir: DefaultOutDir,
	},
	"spring": {
		Backend: "terminal", Tie: "spring",
		Dt: DefaultDt, Duration: DefaultDuration, Scale: DefaultScale,
		FrameEvery: DefaultFrameEvery, OutDir: DefaultOutDir,
	},
	"rod": {
		// the stiff tie needs a finer step
		Backend: "terminal", Tie: "rod",
		Dt: 0.001, Duration: DefaultDuration, Scale: DefaultScale,
		FrameEvery: 20, OutDir: DefaultOutDir,
	},
}
