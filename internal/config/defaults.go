package config

const (
	defaultShadowRadius    = 12
	defaultShadowOffset    = -15
	defaultShadowOpacity   = 0.75
	defaultFadeInStep      = 0.028
	defaultFadeOutStep     = 0.03
	defaultFadeDelta       = 10
	defaultFrameOpacity    = 1.0
	defaultLogLevel        = "warn"
	defaultWindowOpacity   = 1.0
	defaultMaxRefreshRate  = 300
	defaultMinFadeDelta    = 1
	defaultMinShadowRadius = 0
)

// Default returns Settings populated with compiled-in defaults. Every call
// returns an independent value.
func Default() Settings {
	s := Settings{
		Backend:         BackendXRender,
		VSync:           VSyncNone,
		GLXSwapMethod:   SwapMethodUndefined,
		LogLevel:        defaultLogLevel,
		ShadowRadius:    defaultShadowRadius,
		ShadowOffsetX:   defaultShadowOffset,
		ShadowOffsetY:   defaultShadowOffset,
		ShadowOpacity:   defaultShadowOpacity,
		FadeInStep:      OpacityFromFraction(defaultFadeInStep),
		FadeOutStep:     OpacityFromFraction(defaultFadeOutStep),
		FadeDelta:       defaultFadeDelta,
		InactiveOpacity: Opaque,
		ActiveOpacity:   Opaque,
		FrameOpacity:    defaultFrameOpacity,
	}
	for i := range s.WindowTypes {
		t := WindowType(i)
		s.WindowTypes[i] = WindowTypeOptions{
			Focus:   t != WindowTypeNormal && t != WindowTypeDialog,
			Opacity: defaultWindowOpacity,
		}
	}
	return s
}
