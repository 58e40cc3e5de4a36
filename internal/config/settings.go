package config

import "math"

// Opaque is the fixed internal scale for full opacity.
const Opaque = 0xffffffff

// MaxBlurPasses bounds the number of blur kernels a configuration may carry.
const MaxBlurPasses = 5

// Opacity is an opacity value on the [0, Opaque] scale.
type Opacity uint32

// OpacityFromFraction clamps f into [0,1] and scales it to Opaque.
func OpacityFromFraction(f float64) Opacity {
	return Opacity(Clamp01(f) * Opaque)
}

// Fraction returns the opacity as a value in [0,1].
func (o Opacity) Fraction() float64 {
	return float64(o) / Opaque
}

// Clamp01 bounds f to [0,1].
func Clamp01(f float64) float64 {
	return math.Min(math.Max(f, 0), 1)
}

func clampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

// Settings is the merged, validated runtime configuration.
//
// Settings groups by subsystem:
//   - General: backend, daemonization, D-Bus, redirection behaviour
//   - Debug: benchmark mode, X error reporting, diagnostics, logging
//   - VSync: refresh rate and synchronisation method
//   - Shadow: colour, geometry and exclusions
//   - Fading: step sizes and timing
//   - Opacity: active/inactive/frame opacity and dimming
//   - Blur: background blur toggles and kernels
//   - WindowTypes: per-window-type options indexed by WindowType
//
// A Settings value is produced fresh for every pipeline run and must not be
// mutated once normalized.
type Settings struct {
	ConfigFile string

	// General
	Backend                     Backend
	ForkAfterRegister           bool
	DBus                        bool
	NoXSelection                bool
	ResizeDamage                int
	UnredirIfPossible           bool
	UnredirIfPossibleDelay      int
	RedirectOnRootChange        bool
	GLXReinitOnRootChange       bool
	GLXNoStencil                bool
	GLXNoRebindPixmap           bool
	GLXUseGPUShader4            bool
	GLXSwapMethod               int
	GLXFragmentShaderWin        string
	XRenderSync                 bool
	XRenderSyncFence            bool
	ForceWinBlend               bool
	DetectRoundedCorners        bool
	DetectClientOpacity         bool
	DetectTransient             bool
	DetectClientLeader          bool
	MarkWMWinFocused            bool
	MarkOverrideRedirectFocused bool
	UseEWMHActiveWin            bool

	// Debug
	ShowAllXErrors   bool
	Benchmark        int
	BenchmarkWindow  uint32
	MonitorRepaint   bool
	PrintDiagnostics bool
	LogPath          string
	LogLevel         string
	WritePIDPath     string

	// VSync
	RefreshRate      int
	SWOpti           bool
	VSync            VSync
	VSyncAggressive  bool
	VSyncUseGLFinish bool

	// Shadow
	ShadowRed           float64
	ShadowGreen         float64
	ShadowBlue          float64
	ShadowRadius        int
	ShadowOffsetX       int
	ShadowOffsetY       int
	ShadowOpacity       float64
	ShadowIgnoreShaped  bool
	RespectPropShadow   bool
	XineramaShadowCrop  bool
	ShadowExcludeRegion string

	// Fading
	FadeInStep            Opacity
	FadeOutStep           Opacity
	FadeDelta             int
	NoFadingOpenClose     bool
	NoFadingDestroyedARGB bool

	// Opacity
	InactiveOpacity         Opacity
	ActiveOpacity           Opacity
	InactiveOpacityOverride bool
	FrameOpacity            float64
	InactiveDim             float64
	InactiveDimFixed        bool
	OpacityRules            []OpacityRule

	// Blur
	BlurBackground      bool
	BlurBackgroundFrame bool
	BlurBackgroundFixed bool
	BlurKernels         []BlurKernel

	Conditions  ConditionLists
	WindowTypes [NumWindowTypes]WindowTypeOptions

	// Derived during normalization; never set from input.
	TrackFocus  bool
	TrackLeader bool
}
