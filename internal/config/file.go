package config

import (
	"fmt"
	"os"
	"slices"

	"github.com/pelletier/go-toml/v2"

	"compositor/internal/logging"
)

// LoadFunc is the Config Loader contract: populate s and pins from the
// configuration source named by path and report the file that was used.
// Anything it sets may still be overridden by command-line flags.
type LoadFunc func(path string, s *Settings, pins *Pins) (resolved string, exists bool, err error)

type fileWindowType struct {
	Shadow      *bool    `toml:"shadow"`
	Fade        *bool    `toml:"fade"`
	Focus       *bool    `toml:"focus"`
	FullShadow  *bool    `toml:"full-shadow"`
	RedirIgnore *bool    `toml:"redir-ignore"`
	Opacity     *float64 `toml:"opacity"`
}

// fileSettings mirrors the configuration file. Pointer fields distinguish
// keys that are absent from keys set to their zero value.
type fileSettings struct {
	Shadow      *bool    `toml:"shadow"`
	Fading      *bool    `toml:"fading"`
	MenuOpacity *float64 `toml:"menu-opacity"`

	Backend                     *string `toml:"backend"`
	Daemon                      *bool   `toml:"daemon"`
	DBus                        *bool   `toml:"dbus"`
	NoXSelection                *bool   `toml:"no-x-selection"`
	ResizeDamage                *int    `toml:"resize-damage"`
	UnredirIfPossible           *bool   `toml:"unredir-if-possible"`
	UnredirIfPossibleDelay      *int    `toml:"unredir-if-possible-delay"`
	RedirectOnRootChange        *bool   `toml:"reredir-on-root-change"`
	GLXReinitOnRootChange       *bool   `toml:"glx-reinit-on-root-change"`
	GLXNoStencil                *bool   `toml:"glx-no-stencil"`
	GLXNoRebindPixmap           *bool   `toml:"glx-no-rebind-pixmap"`
	GLXUseGPUShader4            *bool   `toml:"glx-use-gpushader4"`
	GLXSwapMethod               any     `toml:"glx-swap-method"`
	GLXFragmentShaderWin        *string `toml:"glx-fshader-win"`
	XRenderSync                 *bool   `toml:"xrender-sync"`
	XRenderSyncFence            *bool   `toml:"xrender-sync-fence"`
	ForceWinBlend               *bool   `toml:"force-win-blend"`
	DetectRoundedCorners        *bool   `toml:"detect-rounded-corners"`
	DetectClientOpacity         *bool   `toml:"detect-client-opacity"`
	DetectTransient             *bool   `toml:"detect-transient"`
	DetectClientLeader          *bool   `toml:"detect-client-leader"`
	MarkWMWinFocused            *bool   `toml:"mark-wmwin-focused"`
	MarkOverrideRedirectFocused *bool   `toml:"mark-ovredir-focused"`
	UseEWMHActiveWin            *bool   `toml:"use-ewmh-active-win"`

	Benchmark      *int    `toml:"benchmark"`
	MonitorRepaint *bool   `toml:"monitor-repaint"`
	LogPath        *string `toml:"logpath"`
	LogLevel       *string `toml:"log-level"`
	WritePIDPath   *string `toml:"write-pid-path"`

	RefreshRate      *int    `toml:"refresh-rate"`
	SWOpti           *bool   `toml:"sw-opti"`
	VSync            *string `toml:"vsync"`
	VSyncAggressive  *bool   `toml:"vsync-aggressive"`
	VSyncUseGLFinish *bool   `toml:"vsync-use-glfinish"`

	ShadowRed          *float64 `toml:"shadow-red"`
	ShadowGreen        *float64 `toml:"shadow-green"`
	ShadowBlue         *float64 `toml:"shadow-blue"`
	ShadowRadius       *int     `toml:"shadow-radius"`
	ShadowOffsetX      *int     `toml:"shadow-offset-x"`
	ShadowOffsetY      *int     `toml:"shadow-offset-y"`
	ShadowOpacity      *float64 `toml:"shadow-opacity"`
	ShadowIgnoreShaped *bool    `toml:"shadow-ignore-shaped"`
	RespectPropShadow  *bool    `toml:"respect-prop-shadow"`
	XineramaShadowCrop *bool    `toml:"xinerama-shadow-crop"`

	FadeInStep            *float64 `toml:"fade-in-step"`
	FadeOutStep           *float64 `toml:"fade-out-step"`
	FadeDelta             *int     `toml:"fade-delta"`
	NoFadingOpenClose     *bool    `toml:"no-fading-openclose"`
	NoFadingDestroyedARGB *bool    `toml:"no-fading-destroyed-argb"`

	InactiveOpacity         *float64 `toml:"inactive-opacity"`
	ActiveOpacity           *float64 `toml:"active-opacity"`
	InactiveOpacityOverride *bool    `toml:"inactive-opacity-override"`
	FrameOpacity            *float64 `toml:"frame-opacity"`
	InactiveDim             *float64 `toml:"inactive-dim"`
	InactiveDimFixed        *bool    `toml:"inactive-dim-fixed"`
	OpacityRule             []string `toml:"opacity-rule"`

	BlurBackground      *bool   `toml:"blur-background"`
	BlurBackgroundFrame *bool   `toml:"blur-background-frame"`
	BlurBackgroundFixed *bool   `toml:"blur-background-fixed"`
	BlurKern            *string `toml:"blur-kern"`

	ShadowExclude            []string `toml:"shadow-exclude"`
	FadeExclude              []string `toml:"fade-exclude"`
	FocusExclude             []string `toml:"focus-exclude"`
	BlurBackgroundExclude    []string `toml:"blur-background-exclude"`
	PaintExclude             []string `toml:"paint-exclude"`
	InvertColorInclude       []string `toml:"invert-color-include"`
	UnredirIfPossibleExclude []string `toml:"unredir-if-possible-exclude"`

	WindowTypes map[string]fileWindowType `toml:"wintypes"`
}

// LoadFile is the TOML Config Loader. It resolves path (see
// DefaultConfigPath), decodes the file when one exists and applies every key
// present to s and pins. A missing implicit file leaves s untouched.
func LoadFile(path string, s *Settings, pins *Pins) (string, bool, error) {
	resolved, exists, err := resolveConfigPath(path)
	if err != nil {
		return "", false, err
	}
	if !exists {
		return resolved, false, nil
	}

	file, err := os.Open(resolved)
	if err != nil {
		return "", false, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	var raw fileSettings
	decoder := toml.NewDecoder(file)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&raw); err != nil {
		return "", false, fmt.Errorf("parse config %s: %w", resolved, err)
	}
	if err := raw.apply(s, pins); err != nil {
		return "", false, fmt.Errorf("config %s: %w", resolved, err)
	}
	s.ConfigFile = resolved
	return resolved, true, nil
}

func assign[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// assignPath stores src with "~" expanded and made absolute.
func assignPath(dst *string, src *string) error {
	if src == nil {
		return nil
	}
	expanded, err := expandPath(*src)
	if err != nil {
		return err
	}
	*dst = expanded
	return nil
}

func assignOpacity(dst *Opacity, src *float64) {
	if src != nil {
		*dst = OpacityFromFraction(*src)
	}
}

func (f *fileSettings) apply(s *Settings, pins *Pins) error {
	assign(&pins.ShadowEnabled, f.Shadow)
	assign(&pins.FadeEnabled, f.Fading)
	if f.MenuOpacity != nil {
		pins.PinMenuOpacity(s, *f.MenuOpacity)
	}

	if f.Backend != nil {
		backend, err := ParseBackend(*f.Backend)
		if err != nil {
			return err
		}
		s.Backend = backend
	}
	if f.VSync != nil {
		vsync, err := ParseVSync(*f.VSync)
		if err != nil {
			return err
		}
		s.VSync = vsync
	}
	if f.GLXSwapMethod != nil {
		method, err := decodeSwapMethod(f.GLXSwapMethod)
		if err != nil {
			return err
		}
		s.GLXSwapMethod = method
	}
	if f.BlurKern != nil {
		kernels, err := ParseBlurKernels(*f.BlurKern)
		if err != nil {
			return err
		}
		s.BlurKernels = kernels
	}
	for _, rule := range f.OpacityRule {
		parsed, err := ParseOpacityRule(rule)
		if err != nil {
			return err
		}
		s.OpacityRules = append(s.OpacityRules, parsed)
	}

	assign(&s.ForkAfterRegister, f.Daemon)
	assign(&s.DBus, f.DBus)
	assign(&s.NoXSelection, f.NoXSelection)
	assign(&s.ResizeDamage, f.ResizeDamage)
	assign(&s.UnredirIfPossible, f.UnredirIfPossible)
	assign(&s.UnredirIfPossibleDelay, f.UnredirIfPossibleDelay)
	assign(&s.RedirectOnRootChange, f.RedirectOnRootChange)
	assign(&s.GLXReinitOnRootChange, f.GLXReinitOnRootChange)
	assign(&s.GLXNoStencil, f.GLXNoStencil)
	assign(&s.GLXNoRebindPixmap, f.GLXNoRebindPixmap)
	assign(&s.GLXUseGPUShader4, f.GLXUseGPUShader4)
	assign(&s.GLXFragmentShaderWin, f.GLXFragmentShaderWin)
	assign(&s.XRenderSync, f.XRenderSync)
	assign(&s.XRenderSyncFence, f.XRenderSyncFence)
	assign(&s.ForceWinBlend, f.ForceWinBlend)
	assign(&s.DetectRoundedCorners, f.DetectRoundedCorners)
	assign(&s.DetectClientOpacity, f.DetectClientOpacity)
	assign(&s.DetectTransient, f.DetectTransient)
	assign(&s.DetectClientLeader, f.DetectClientLeader)
	assign(&s.MarkWMWinFocused, f.MarkWMWinFocused)
	assign(&s.MarkOverrideRedirectFocused, f.MarkOverrideRedirectFocused)
	assign(&s.UseEWMHActiveWin, f.UseEWMHActiveWin)

	assign(&s.Benchmark, f.Benchmark)
	assign(&s.MonitorRepaint, f.MonitorRepaint)
	if err := assignPath(&s.LogPath, f.LogPath); err != nil {
		return fmt.Errorf("logpath: %w", err)
	}
	if err := assignPath(&s.WritePIDPath, f.WritePIDPath); err != nil {
		return fmt.Errorf("write-pid-path: %w", err)
	}
	if f.LogLevel != nil {
		level, ok := logging.ParseLevel(*f.LogLevel)
		if !ok {
			return fmt.Errorf("invalid log-level %q", *f.LogLevel)
		}
		s.LogLevel = logging.LevelName(level)
	}

	assign(&s.RefreshRate, f.RefreshRate)
	assign(&s.SWOpti, f.SWOpti)
	assign(&s.VSyncAggressive, f.VSyncAggressive)
	assign(&s.VSyncUseGLFinish, f.VSyncUseGLFinish)

	assign(&s.ShadowRed, f.ShadowRed)
	assign(&s.ShadowGreen, f.ShadowGreen)
	assign(&s.ShadowBlue, f.ShadowBlue)
	assign(&s.ShadowRadius, f.ShadowRadius)
	assign(&s.ShadowOffsetX, f.ShadowOffsetX)
	assign(&s.ShadowOffsetY, f.ShadowOffsetY)
	assign(&s.ShadowOpacity, f.ShadowOpacity)
	assign(&s.ShadowIgnoreShaped, f.ShadowIgnoreShaped)
	assign(&s.RespectPropShadow, f.RespectPropShadow)
	assign(&s.XineramaShadowCrop, f.XineramaShadowCrop)

	assignOpacity(&s.FadeInStep, f.FadeInStep)
	assignOpacity(&s.FadeOutStep, f.FadeOutStep)
	assign(&s.FadeDelta, f.FadeDelta)
	assign(&s.NoFadingOpenClose, f.NoFadingOpenClose)
	assign(&s.NoFadingDestroyedARGB, f.NoFadingDestroyedARGB)

	assignOpacity(&s.InactiveOpacity, f.InactiveOpacity)
	assignOpacity(&s.ActiveOpacity, f.ActiveOpacity)
	assign(&s.InactiveOpacityOverride, f.InactiveOpacityOverride)
	assign(&s.FrameOpacity, f.FrameOpacity)
	assign(&s.InactiveDim, f.InactiveDim)
	assign(&s.InactiveDimFixed, f.InactiveDimFixed)

	assign(&s.BlurBackground, f.BlurBackground)
	assign(&s.BlurBackgroundFrame, f.BlurBackgroundFrame)
	assign(&s.BlurBackgroundFixed, f.BlurBackgroundFixed)

	lists := []struct {
		list     ConditionList
		patterns []string
	}{
		{ShadowExclude, f.ShadowExclude},
		{FadeExclude, f.FadeExclude},
		{FocusExclude, f.FocusExclude},
		{BlurBackgroundExclude, f.BlurBackgroundExclude},
		{PaintExclude, f.PaintExclude},
		{InvertColorInclude, f.InvertColorInclude},
		{UnredirIfPossibleExclude, f.UnredirIfPossibleExclude},
	}
	for _, entry := range lists {
		for _, pattern := range entry.patterns {
			s.Conditions.Append(entry.list, pattern)
		}
	}

	return f.applyWindowTypes(s, pins)
}

func (f *fileSettings) applyWindowTypes(s *Settings, pins *Pins) error {
	names := make([]string, 0, len(f.WindowTypes))
	for name := range f.WindowTypes {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		t, err := ParseWindowType(name)
		if err != nil {
			return fmt.Errorf("wintypes: %w", err)
		}
		opts := f.WindowTypes[name]
		if opts.Shadow != nil {
			pins.PinShadow(s, t, *opts.Shadow)
		}
		if opts.Fade != nil {
			pins.PinFade(s, t, *opts.Fade)
		}
		if opts.Focus != nil {
			pins.PinFocus(s, t, *opts.Focus)
		}
		if opts.FullShadow != nil {
			pins.PinFullShadow(s, t, *opts.FullShadow)
		}
		if opts.RedirIgnore != nil {
			pins.PinRedirIgnore(s, t, *opts.RedirIgnore)
		}
		if opts.Opacity != nil {
			pins.PinOpacity(s, t, *opts.Opacity)
		}
	}
	return nil
}

func decodeSwapMethod(value any) (int, error) {
	switch v := value.(type) {
	case string:
		return ParseGLXSwapMethod(v)
	case int64:
		if v < SwapMethodBufferAge || v > MaxBufferAge+1 {
			return 0, fmt.Errorf("glx swap method %d out of range [%d, %d]", v, SwapMethodBufferAge, MaxBufferAge+1)
		}
		return int(v), nil
	default:
		return 0, fmt.Errorf("glx-swap-method must be a string or integer, got %T", value)
	}
}
