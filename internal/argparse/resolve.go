package argparse

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"compositor/internal/config"
	"compositor/internal/locale"
	"compositor/internal/logging"
)

// Resolver applies command-line options on top of loaded settings. Options
// always win over the configuration file.
type Resolver struct {
	Logger *slog.Logger
	// LevelVar is adjusted by --log-level as soon as it is seen.
	LevelVar *slog.LevelVar
	// Conditions receives condition patterns; nil appends to the settings'
	// own lists.
	Conditions config.ConditionSink
}

type resolveState struct {
	settings *config.Settings
	pins     *config.Pins
	sink     config.ConditionSink
	levelVar *slog.LevelVar
	logger   *slog.Logger
}

type handler func(st *resolveState, value string) error

// Resolve walks args and applies every option to s and pins. The numeric
// locale is C for the duration of the call and restored on every return
// path. Any error is a *UsageError and leaves s partially updated; callers
// must discard it.
func (r *Resolver) Resolve(s *config.Settings, pins *config.Pins, args []string) error {
	restore := locale.Force(locale.C)
	defer restore()

	logger := logging.NewComponentLogger(r.Logger, "resolver")
	st := &resolveState{
		settings: s,
		pins:     pins,
		sink:     r.Conditions,
		levelVar: r.LevelVar,
		logger:   logger,
	}
	if st.sink == nil {
		st.sink = &s.Conditions
	}

	w := newWalker(args)
	for {
		occ, ok, err := w.Next()
		if err != nil {
			return err
		}
		if !ok {
			break
		}

		opt := occ.Option
		switch opt.Status {
		case StatusBootstrap:
			continue
		case StatusRemoved:
			logging.WarnWithContext(logger, opt.Notice, "removed_option",
				logging.Option(occ.Spelling),
				logging.String(logging.FieldErrorHint, "remove the option from the command line"),
			)
			continue
		case StatusDeprecated:
			logging.WarnWithContext(logger, opt.Notice, "deprecated_option",
				logging.Option(occ.Spelling),
				logging.String(logging.FieldImpact, "option applied but may be removed"),
			)
		}

		apply, ok := handlers[opt.ID]
		if !ok {
			return usageErr(occ.Spelling, ErrUnknownOption)
		}
		if err := apply(st, occ.Value); err != nil {
			return usageErr(occ.Spelling, err)
		}
		logging.Trace(logger, "option applied",
			logging.Option(occ.Spelling),
			logging.String("value", occ.Value),
		)
	}

	if len(w.Positional()) > 0 {
		return usageErr("", ErrPositional)
	}
	return nil
}

var handlers = buildHandlers()

func buildHandlers() map[ID]handler {
	type S = config.Settings
	return map[ID]handler{
		// General
		OptDaemon:                      setBool(func(s *S) *bool { return &s.ForkAfterRegister }),
		OptBackend:                     setBackend,
		OptOpenGL:                      useOpenGL,
		OptDBus:                        setBool(func(s *S) *bool { return &s.DBus }),
		OptNoXSelection:                setBool(func(s *S) *bool { return &s.NoXSelection }),
		OptResizeDamage:                setInt(func(s *S) *int { return &s.ResizeDamage }),
		OptUnredirIfPossible:           setBool(func(s *S) *bool { return &s.UnredirIfPossible }),
		OptUnredirIfPossibleDelay:      setInt(func(s *S) *int { return &s.UnredirIfPossibleDelay }),
		OptRedirectOnRootChange:        setBool(func(s *S) *bool { return &s.RedirectOnRootChange }),
		OptGLXReinitOnRootChange:       setBool(func(s *S) *bool { return &s.GLXReinitOnRootChange }),
		OptGLXNoStencil:                setBool(func(s *S) *bool { return &s.GLXNoStencil }),
		OptGLXNoRebindPixmap:           setBool(func(s *S) *bool { return &s.GLXNoRebindPixmap }),
		OptGLXUseGPUShader4:            setBool(func(s *S) *bool { return &s.GLXUseGPUShader4 }),
		OptGLXSwapMethod:               setSwapMethod,
		OptGLXFshaderWin:               setString(func(s *S) *string { return &s.GLXFragmentShaderWin }),
		OptXRenderSync:                 setBool(func(s *S) *bool { return &s.XRenderSync }),
		OptXRenderSyncFence:            setBool(func(s *S) *bool { return &s.XRenderSyncFence }),
		OptForceWinBlend:               setBool(func(s *S) *bool { return &s.ForceWinBlend }),
		OptDetectRoundedCorners:        setBool(func(s *S) *bool { return &s.DetectRoundedCorners }),
		OptDetectClientOpacity:         setBool(func(s *S) *bool { return &s.DetectClientOpacity }),
		OptDetectTransient:             setBool(func(s *S) *bool { return &s.DetectTransient }),
		OptDetectClientLeader:          setBool(func(s *S) *bool { return &s.DetectClientLeader }),
		OptMarkWMWinFocused:            setBool(func(s *S) *bool { return &s.MarkWMWinFocused }),
		OptMarkOverrideRedirectFocused: setBool(func(s *S) *bool { return &s.MarkOverrideRedirectFocused }),
		OptUseEWMHActiveWin:            setBool(func(s *S) *bool { return &s.UseEWMHActiveWin }),

		// Debug
		OptBenchmark:      setInt(func(s *S) *int { return &s.Benchmark }),
		OptBenchmarkWID:   setWindowID,
		OptMonitorRepaint: setBool(func(s *S) *bool { return &s.MonitorRepaint }),
		OptDiagnostics:    setBool(func(s *S) *bool { return &s.PrintDiagnostics }),
		OptLogPath:        setString(func(s *S) *string { return &s.LogPath }),
		OptLogLevel:       setLogLevel,
		OptWritePIDPath:   setString(func(s *S) *string { return &s.WritePIDPath }),

		// VSync
		OptRefreshRate:      setInt(func(s *S) *int { return &s.RefreshRate }),
		OptSWOpti:           setBool(func(s *S) *bool { return &s.SWOpti }),
		OptVSync:            setVSync,
		OptVSyncAggressive:  setBool(func(s *S) *bool { return &s.VSyncAggressive }),
		OptVSyncUseGLFinish: setBool(func(s *S) *bool { return &s.VSyncUseGLFinish }),

		// Shadow
		OptShadow:             enableShadows,
		OptNoDockShadow:       pinShadow(config.WindowTypeDock),
		OptNoDNDShadow:        pinShadow(config.WindowTypeDND),
		OptShadowRadius:       setInt(func(s *S) *int { return &s.ShadowRadius }),
		OptShadowOpacity:      setFloat(func(s *S) *float64 { return &s.ShadowOpacity }),
		OptShadowOffsetX:      setInt(func(s *S) *int { return &s.ShadowOffsetX }),
		OptShadowOffsetY:      setInt(func(s *S) *int { return &s.ShadowOffsetY }),
		OptShadowRed:          setFloat(func(s *S) *float64 { return &s.ShadowRed }),
		OptShadowGreen:        setFloat(func(s *S) *float64 { return &s.ShadowGreen }),
		OptShadowBlue:         setFloat(func(s *S) *float64 { return &s.ShadowBlue }),
		OptShadowIgnoreShaped: setBool(func(s *S) *bool { return &s.ShadowIgnoreShaped }),
		OptRespectPropShadow:  setBool(func(s *S) *bool { return &s.RespectPropShadow }),
		OptXineramaShadowCrop: setBool(func(s *S) *bool { return &s.XineramaShadowCrop }),
		OptShadowExclude:      appendCondition(config.ShadowExclude),
		OptShadowExcludeReg:   setString(func(s *S) *string { return &s.ShadowExcludeRegion }),

		// Fading
		OptFading:                enableFading,
		OptFadingAlias:           enableFading,
		OptFadeInStep:            setOpacity(func(s *S) *config.Opacity { return &s.FadeInStep }),
		OptFadeOutStep:           setOpacity(func(s *S) *config.Opacity { return &s.FadeOutStep }),
		OptFadeDelta:             setInt(func(s *S) *int { return &s.FadeDelta }),
		OptNoFadingOpenClose:     setBool(func(s *S) *bool { return &s.NoFadingOpenClose }),
		OptNoFadingDestroyedARGB: setBool(func(s *S) *bool { return &s.NoFadingDestroyedARGB }),
		OptFadeExclude:           appendCondition(config.FadeExclude),

		// Opacity
		OptInactiveOpacity:          setOpacity(func(s *S) *config.Opacity { return &s.InactiveOpacity }),
		OptActiveOpacity:            setOpacity(func(s *S) *config.Opacity { return &s.ActiveOpacity }),
		OptInactiveOpacityOverride:  setBool(func(s *S) *bool { return &s.InactiveOpacityOverride }),
		OptFrameOpacity:             setFloat(func(s *S) *float64 { return &s.FrameOpacity }),
		OptMenuOpacity:              setMenuOpacity,
		OptInactiveDim:              setFloat(func(s *S) *float64 { return &s.InactiveDim }),
		OptInactiveDimFixed:         setBool(func(s *S) *bool { return &s.InactiveDimFixed }),
		OptOpacityRule:              addOpacityRule,
		OptFocusExclude:             appendCondition(config.FocusExclude),
		OptInvertColorInclude:       appendCondition(config.InvertColorInclude),
		OptPaintExclude:             appendCondition(config.PaintExclude),
		OptUnredirIfPossibleExclude: appendCondition(config.UnredirIfPossibleExclude),

		// Blur
		OptBlurBackground:        setBool(func(s *S) *bool { return &s.BlurBackground }),
		OptBlurBackgroundFrame:   setBool(func(s *S) *bool { return &s.BlurBackgroundFrame }),
		OptBlurBackgroundFixed:   setBool(func(s *S) *bool { return &s.BlurBackgroundFixed }),
		OptBlurKern:              setBlurKernels,
		OptBlurBackgroundExclude: appendCondition(config.BlurBackgroundExclude),
	}
}

func setBool(field func(*config.Settings) *bool) handler {
	return func(st *resolveState, _ string) error {
		*field(st.settings) = true
		return nil
	}
}

func setInt(field func(*config.Settings) *int) handler {
	return func(st *resolveState, value string) error {
		n, err := parseLong(value)
		if err != nil {
			return err
		}
		*field(st.settings) = n
		return nil
	}
}

func setFloat(field func(*config.Settings) *float64) handler {
	return func(st *resolveState, value string) error {
		f, err := parseFloat(value)
		if err != nil {
			return err
		}
		*field(st.settings) = f
		return nil
	}
}

// setOpacity clamps the fraction to [0,1] and stores it on the Opaque scale.
func setOpacity(field func(*config.Settings) *config.Opacity) handler {
	return func(st *resolveState, value string) error {
		f, err := parseFloat(value)
		if err != nil {
			return err
		}
		*field(st.settings) = config.OpacityFromFraction(f)
		return nil
	}
}

func setString(field func(*config.Settings) *string) handler {
	return func(st *resolveState, value string) error {
		*field(st.settings) = strings.Clone(value)
		return nil
	}
}

func appendCondition(list config.ConditionList) handler {
	return func(st *resolveState, value string) error {
		st.sink.Append(list, value)
		return nil
	}
}

func pinShadow(t config.WindowType) handler {
	return func(st *resolveState, _ string) error {
		st.pins.PinShadow(st.settings, t, true)
		return nil
	}
}

func useOpenGL(st *resolveState, _ string) error {
	st.settings.Backend = config.BackendGLX
	return nil
}

func enableShadows(st *resolveState, _ string) error {
	st.pins.ShadowEnabled = true
	return nil
}

func enableFading(st *resolveState, _ string) error {
	st.pins.FadeEnabled = true
	return nil
}

func setMenuOpacity(st *resolveState, value string) error {
	f, err := parseFloat(value)
	if err != nil {
		return err
	}
	st.pins.PinMenuOpacity(st.settings, f)
	return nil
}

func setBackend(st *resolveState, value string) error {
	backend, err := config.ParseBackend(value)
	if err != nil {
		return err
	}
	st.settings.Backend = backend
	return nil
}

func setVSync(st *resolveState, value string) error {
	vsync, err := config.ParseVSync(value)
	if err != nil {
		return err
	}
	st.settings.VSync = vsync
	return nil
}

func setSwapMethod(st *resolveState, value string) error {
	method, err := config.ParseGLXSwapMethod(value)
	if err != nil {
		return err
	}
	st.settings.GLXSwapMethod = method
	return nil
}

func setBlurKernels(st *resolveState, value string) error {
	kernels, err := config.ParseBlurKernels(value)
	if err != nil {
		return err
	}
	st.settings.BlurKernels = kernels
	return nil
}

func addOpacityRule(st *resolveState, value string) error {
	rule, err := config.ParseOpacityRule(value)
	if err != nil {
		return err
	}
	st.settings.OpacityRules = append(st.settings.OpacityRules, rule)
	return nil
}

func setWindowID(st *resolveState, value string) error {
	id, err := strconv.ParseUint(strings.TrimSpace(value), 0, 32)
	if err != nil {
		return fmt.Errorf("%w: invalid window id %q", ErrMalformedNumber, value)
	}
	st.settings.BenchmarkWindow = uint32(id)
	return nil
}

func setLogLevel(st *resolveState, value string) error {
	level, ok := logging.ParseLevel(value)
	if !ok {
		logging.WarnWithContext(st.logger, "invalid log level, keeping the current level", "invalid_log_level",
			logging.Option("--log-level"),
			logging.String("value", value),
			logging.String(logging.FieldErrorHint, "use trace, debug, info, warn, error or fatal"),
			logging.String(logging.FieldImpact, "log level unchanged"),
		)
		return nil
	}
	st.settings.LogLevel = logging.LevelName(level)
	if st.levelVar != nil {
		st.levelVar.Set(level)
	}
	return nil
}

// parseLong accepts a whole decimal, octal (leading 0) or hex (0x) integer.
func parseLong(value string) (int, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(value), 0, strconv.IntSize)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid integer %q", ErrMalformedNumber, value)
	}
	return int(n), nil
}

func parseFloat(value string) (float64, error) {
	f, err := locale.ParseFloat(value)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid number %q", ErrMalformedNumber, value)
	}
	return f, nil
}
