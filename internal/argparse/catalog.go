package argparse

import "strings"

// ID identifies one entry of the option catalog.
type ID int

const (
	OptInvalid ID = iota

	// Consumed by the bootstrap scan.
	OptHelp
	OptConfig
	OptVersion
	OptShowAllXErrors
	OptDisplay
	OptSynchronize
	OptNoNamePixmap

	// General
	OptDaemon
	OptBackend
	OptOpenGL
	OptDBus
	OptNoXSelection
	OptResizeDamage
	OptUnredirIfPossible
	OptUnredirIfPossibleDelay
	OptRedirectOnRootChange
	OptGLXReinitOnRootChange
	OptGLXNoStencil
	OptGLXNoRebindPixmap
	OptGLXUseGPUShader4
	OptGLXSwapMethod
	OptGLXFshaderWin
	OptXRenderSync
	OptXRenderSyncFence
	OptForceWinBlend
	OptDetectRoundedCorners
	OptDetectClientOpacity
	OptDetectTransient
	OptDetectClientLeader
	OptMarkWMWinFocused
	OptMarkOverrideRedirectFocused
	OptUseEWMHActiveWin

	// Debug
	OptBenchmark
	OptBenchmarkWID
	OptMonitorRepaint
	OptDiagnostics
	OptLogPath
	OptLogLevel
	OptWritePIDPath

	// VSync
	OptRefreshRate
	OptSWOpti
	OptVSync
	OptVSyncAggressive
	OptVSyncUseGLFinish

	// Shadow
	OptShadow
	OptNoDockShadow
	OptNoDNDShadow
	OptShadowRadius
	OptShadowOpacity
	OptShadowOffsetX
	OptShadowOffsetY
	OptShadowRed
	OptShadowGreen
	OptShadowBlue
	OptShadowIgnoreShaped
	OptRespectPropShadow
	OptXineramaShadowCrop
	OptShadowExclude
	OptShadowExcludeReg

	// Fading
	OptFading
	OptFadingAlias
	OptFadeInStep
	OptFadeOutStep
	OptFadeDelta
	OptNoFadingOpenClose
	OptNoFadingDestroyedARGB
	OptFadeExclude

	// Opacity
	OptInactiveOpacity
	OptActiveOpacity
	OptInactiveOpacityOverride
	OptFrameOpacity
	OptMenuOpacity
	OptInactiveDim
	OptInactiveDimFixed
	OptOpacityRule
	OptFocusExclude
	OptInvertColorInclude
	OptPaintExclude
	OptUnredirIfPossibleExclude

	// Blur
	OptBlurBackground
	OptBlurBackgroundFrame
	OptBlurBackgroundFixed
	OptBlurKern
	OptBlurBackgroundExclude

	// Removed
	OptClearShadow
	OptClientShadows
	OptAvoidChecks
	OptServerShadows
	OptAlphaStep
	OptDBE
	OptPaintOnOverlay
	OptGLXCopyFromFront
	OptGLXUseCopySubBufferMesa

	numOptions
)

// Arity reports whether an option consumes an argument.
type Arity int

const (
	NoArgument Arity = iota
	RequiredArgument
)

// Status classifies how the resolver treats an option.
type Status int

const (
	// StatusActive options set a field.
	StatusActive Status = iota
	// StatusDeprecated options still set their field and log Notice.
	StatusDeprecated
	// StatusRemoved options only log Notice. Their argument, if any, is
	// consumed and discarded.
	StatusRemoved
	// StatusBootstrap options are handled entirely by ScanBootstrap.
	StatusBootstrap
)

// Option is one catalog entry.
type Option struct {
	ID     ID
	Short  rune
	Long   string
	Arity  Arity
	Meta   string
	Usage  string
	Status Status
	Notice string
}

// Name returns the preferred spelling of the option for messages.
func (o Option) Name() string {
	if o.Long != "" {
		return "--" + o.Long
	}
	return "-" + string(o.Short)
}

const removedNotice = "has been removed. If you encounter problems without this feature, please feel free to open a bug report."

var catalog = []Option{
	{ID: OptHelp, Short: 'h', Long: "help", Usage: "Print this help message and exit.", Status: StatusBootstrap},
	{ID: OptConfig, Long: "config", Arity: RequiredArgument, Meta: "PATH", Usage: "Look for configuration file at the path.", Status: StatusBootstrap},
	{ID: OptVersion, Long: "version", Usage: "Print version number and exit.", Status: StatusBootstrap},
	{ID: OptShowAllXErrors, Long: "show-all-xerrors", Usage: "Show all X errors (for debugging).", Status: StatusBootstrap},
	{ID: OptDisplay, Short: 'd', Arity: RequiredArgument, Meta: "DISPLAY", Status: StatusBootstrap, Notice: "-d will be ignored, please use the DISPLAY environment variable"},
	{ID: OptSynchronize, Short: 'S', Status: StatusBootstrap, Notice: "-S will be ignored"},
	{ID: OptNoNamePixmap, Long: "no-name-pixmap", Status: StatusBootstrap, Notice: "--no-name-pixmap will be ignored"},

	{ID: OptDaemon, Short: 'b', Long: "daemon", Usage: "Daemonize process. Fork to background after initialization."},
	{ID: OptBackend, Long: "backend", Arity: RequiredArgument, Meta: "BACKEND", Usage: "Choose backend. Possible choices are xrender, glx and xr_glx_hybrid."},
	{ID: OptOpenGL, Long: "opengl", Usage: "An alias for --backend glx."},
	{ID: OptDBus, Long: "dbus", Usage: "Enable remote control via D-Bus."},
	{ID: OptNoXSelection, Long: "no-x-selection", Usage: "Do not acquire the compositor selection."},
	{ID: OptResizeDamage, Long: "resize-damage", Arity: RequiredArgument, Meta: "INTEGER", Usage: "Resize damaged region by a specific number of pixels."},
	{ID: OptUnredirIfPossible, Long: "unredir-if-possible", Usage: "Unredirect all windows if a full-screen opaque window is detected."},
	{ID: OptUnredirIfPossibleDelay, Long: "unredir-if-possible-delay", Arity: RequiredArgument, Meta: "MS", Usage: "Delay before unredirecting the window, in milliseconds."},
	{ID: OptRedirectOnRootChange, Long: "reredir-on-root-change", Usage: "Re-redirect screen on root size change."},
	{ID: OptGLXReinitOnRootChange, Long: "glx-reinit-on-root-change", Usage: "Reinitialize GLX on root size change."},
	{ID: OptGLXNoStencil, Long: "glx-no-stencil", Usage: "GLX backend: avoid using stencil buffer."},
	{ID: OptGLXNoRebindPixmap, Long: "glx-no-rebind-pixmap", Usage: "GLX backend: avoid rebinding pixmap on window damage."},
	{ID: OptGLXUseGPUShader4, Long: "glx-use-gpushader4", Usage: "GLX backend: use GL_EXT_gpu_shader4 for some optimization."},
	{ID: OptGLXSwapMethod, Long: "glx-swap-method", Arity: RequiredArgument, Meta: "METHOD", Usage: "GLX backend: undefined, copy, exchange, buffer-age, or a buffer age from -1 to 6."},
	{ID: OptGLXFshaderWin, Long: "glx-fshader-win", Arity: RequiredArgument, Meta: "SHADER", Usage: "GLX backend: custom fragment shader for painting windows.", Status: StatusDeprecated, Notice: "--glx-fshader-win is being deprecated, and might be removed in the future. If you really need this feature, please report an issue to let us know"},
	{ID: OptXRenderSync, Long: "xrender-sync", Usage: "Attempt to synchronize client applications' draw calls."},
	{ID: OptXRenderSyncFence, Long: "xrender-sync-fence", Usage: "Use X Sync fence to sync clients' draw calls. Implies --xrender-sync."},
	{ID: OptForceWinBlend, Long: "force-win-blend", Usage: "Force all windows to be painted with blending."},
	{ID: OptDetectRoundedCorners, Long: "detect-rounded-corners", Usage: "Try to detect windows with rounded corners and don't consider them shaped."},
	{ID: OptDetectClientOpacity, Long: "detect-client-opacity", Usage: "Detect _NET_WM_OPACITY on client windows."},
	{ID: OptDetectTransient, Long: "detect-transient", Usage: "Use WM_TRANSIENT_FOR to group windows."},
	{ID: OptDetectClientLeader, Long: "detect-client-leader", Usage: "Use WM_CLIENT_LEADER to group windows."},
	{ID: OptMarkWMWinFocused, Long: "mark-wmwin-focused", Usage: "Try to detect WM windows and mark them as active."},
	{ID: OptMarkOverrideRedirectFocused, Long: "mark-ovredir-focused", Usage: "Mark windows that have no WM frame as active."},
	{ID: OptUseEWMHActiveWin, Long: "use-ewmh-active-win", Usage: "Use _NET_ACTIVE_WINDOW on the root window to determine the focused window."},

	{ID: OptBenchmark, Long: "benchmark", Arity: RequiredArgument, Meta: "CYCLES", Usage: "Benchmark mode. Repeatedly paint until reaching the specified cycles."},
	{ID: OptBenchmarkWID, Long: "benchmark-wid", Arity: RequiredArgument, Meta: "WINDOW_ID", Usage: "Specify window ID to repaint in benchmark mode."},
	{ID: OptMonitorRepaint, Long: "monitor-repaint", Usage: "Highlight the updated area of the screen. For debugging the xrender backend only."},
	{ID: OptDiagnostics, Long: "diagnostics", Usage: "Print diagnostic information and exit."},
	{ID: OptLogPath, Long: "logpath", Arity: RequiredArgument, Meta: "PATH", Usage: "Path to the log file."},
	{ID: OptLogLevel, Long: "log-level", Arity: RequiredArgument, Meta: "LEVEL", Usage: "Log level: trace, debug, info, warn, error or fatal."},
	{ID: OptWritePIDPath, Long: "write-pid-path", Arity: RequiredArgument, Meta: "PATH", Usage: "Write process ID to a file."},

	{ID: OptRefreshRate, Long: "refresh-rate", Arity: RequiredArgument, Meta: "RATE", Usage: "Specify refresh rate of the screen. 0 means auto-detect."},
	{ID: OptSWOpti, Long: "sw-opti", Usage: "Limit painting to once per vblank."},
	{ID: OptVSync, Long: "vsync", Arity: RequiredArgument, Meta: "METHOD", Usage: "Set VSync method: none, drm, opengl, opengl-oml, opengl-swc or opengl-mswc."},
	{ID: OptVSyncAggressive, Long: "vsync-aggressive", Usage: "Attempt to send painting request before VBlank."},
	{ID: OptVSyncUseGLFinish, Long: "vsync-use-glfinish", Usage: "GLX backend: use glFinish() instead of glFlush()."},

	{ID: OptShadow, Short: 'c', Long: "shadow", Usage: "Enable client-side shadows on windows."},
	{ID: OptNoDockShadow, Short: 'C', Long: "no-dock-shadow", Usage: "Pin the shadow setting of dock and panel windows."},
	{ID: OptNoDNDShadow, Short: 'G', Long: "no-dnd-shadow", Usage: "Pin the shadow setting of drag-and-drop windows."},
	{ID: OptShadowRadius, Short: 'r', Long: "shadow-radius", Arity: RequiredArgument, Meta: "RADIUS", Usage: "The blur radius for shadows. (default 12)"},
	{ID: OptShadowOpacity, Short: 'o', Long: "shadow-opacity", Arity: RequiredArgument, Meta: "OPACITY", Usage: "The translucency for shadows. (default .75)"},
	{ID: OptShadowOffsetX, Short: 'l', Long: "shadow-offset-x", Arity: RequiredArgument, Meta: "OFFSET", Usage: "The left offset for shadows. (default -15)"},
	{ID: OptShadowOffsetY, Short: 't', Long: "shadow-offset-y", Arity: RequiredArgument, Meta: "OFFSET", Usage: "The top offset for shadows. (default -15)"},
	{ID: OptShadowRed, Long: "shadow-red", Arity: RequiredArgument, Meta: "VALUE", Usage: "Red color value of shadow (0.0 - 1.0, defaults to 0)."},
	{ID: OptShadowGreen, Long: "shadow-green", Arity: RequiredArgument, Meta: "VALUE", Usage: "Green color value of shadow (0.0 - 1.0, defaults to 0)."},
	{ID: OptShadowBlue, Long: "shadow-blue", Arity: RequiredArgument, Meta: "VALUE", Usage: "Blue color value of shadow (0.0 - 1.0, defaults to 0)."},
	{ID: OptShadowIgnoreShaped, Long: "shadow-ignore-shaped", Usage: "Do not paint shadows on shaped windows."},
	{ID: OptRespectPropShadow, Long: "respect-prop-shadow", Usage: "Respect _COMPTON_SHADOW on windows."},
	{ID: OptXineramaShadowCrop, Long: "xinerama-shadow-crop", Usage: "Crop shadow of a window fully on a particular Xinerama screen to the screen."},
	{ID: OptShadowExclude, Long: "shadow-exclude", Arity: RequiredArgument, Meta: "CONDITION", Usage: "Exclude conditions for shadows."},
	{ID: OptShadowExcludeReg, Long: "shadow-exclude-reg", Arity: RequiredArgument, Meta: "GEOMETRY", Usage: "Specify a X geometry that describes the region in which shadow should not be painted.", Status: StatusDeprecated, Notice: "--shadow-exclude-reg is deprecated. You are likely better off using --shadow-exclude anyway"},

	{ID: OptFading, Short: 'f', Long: "fading", Usage: "Fade windows in/out when opening/closing and when opacity changes."},
	{ID: OptFadingAlias, Short: 'F', Usage: "Equivalent to -f."},
	{ID: OptFadeInStep, Short: 'I', Long: "fade-in-step", Arity: RequiredArgument, Meta: "STEP", Usage: "Opacity change between steps while fading in. (default 0.028)"},
	{ID: OptFadeOutStep, Short: 'O', Long: "fade-out-step", Arity: RequiredArgument, Meta: "STEP", Usage: "Opacity change between steps while fading out. (default 0.03)"},
	{ID: OptFadeDelta, Short: 'D', Long: "fade-delta", Arity: RequiredArgument, Meta: "MS", Usage: "The time between steps in a fade in milliseconds. (default 10)"},
	{ID: OptNoFadingOpenClose, Long: "no-fading-openclose", Usage: "Do not fade on window open/close."},
	{ID: OptNoFadingDestroyedARGB, Long: "no-fading-destroyed-argb", Usage: "Do not fade destroyed ARGB windows with WM frame."},
	{ID: OptFadeExclude, Long: "fade-exclude", Arity: RequiredArgument, Meta: "CONDITION", Usage: "Exclude conditions for fading."},

	{ID: OptInactiveOpacity, Short: 'i', Long: "inactive-opacity", Arity: RequiredArgument, Meta: "OPACITY", Usage: "Opacity of inactive windows. (0.1 - 1.0)"},
	{ID: OptActiveOpacity, Long: "active-opacity", Arity: RequiredArgument, Meta: "OPACITY", Usage: "Default opacity for active windows. (0.0 - 1.0)"},
	{ID: OptInactiveOpacityOverride, Long: "inactive-opacity-override", Usage: "Inactive opacity overrides the _NET_WM_OPACITY value of windows."},
	{ID: OptFrameOpacity, Short: 'e', Long: "frame-opacity", Arity: RequiredArgument, Meta: "OPACITY", Usage: "Opacity of window titlebars and borders. (0.1 - 1.0)"},
	{ID: OptMenuOpacity, Short: 'm', Long: "menu-opacity", Arity: RequiredArgument, Meta: "OPACITY", Usage: "The opacity for menus. (0.0 - 1.0)"},
	{ID: OptInactiveDim, Long: "inactive-dim", Arity: RequiredArgument, Meta: "VALUE", Usage: "Dim inactive windows. (0.0 - 1.0)"},
	{ID: OptInactiveDimFixed, Long: "inactive-dim-fixed", Usage: "Use fixed inactive dim value."},
	{ID: OptOpacityRule, Long: "opacity-rule", Arity: RequiredArgument, Meta: "OPACITY:CONDITION", Usage: "Specify a list of opacity rules, in the format PERCENT:PATTERN."},
	{ID: OptFocusExclude, Long: "focus-exclude", Arity: RequiredArgument, Meta: "CONDITION", Usage: "Specify a list of conditions of windows that should always be considered focused."},
	{ID: OptInvertColorInclude, Long: "invert-color-include", Arity: RequiredArgument, Meta: "CONDITION", Usage: "Specify a list of conditions of windows that should be painted with inverted color."},
	{ID: OptPaintExclude, Long: "paint-exclude", Arity: RequiredArgument, Meta: "CONDITION", Usage: "Specify a list of conditions of windows that should not be painted."},
	{ID: OptUnredirIfPossibleExclude, Long: "unredir-if-possible-exclude", Arity: RequiredArgument, Meta: "CONDITION", Usage: "Conditions of windows that shouldn't be considered full-screen for unredirecting screen."},

	{ID: OptBlurBackground, Long: "blur-background", Usage: "Blur background of semi-transparent / ARGB windows."},
	{ID: OptBlurBackgroundFrame, Long: "blur-background-frame", Usage: "Blur background of windows when the window frame is not opaque. Implies --blur-background."},
	{ID: OptBlurBackgroundFixed, Long: "blur-background-fixed", Usage: "Use fixed blur strength instead of adjusting according to window opacity."},
	{ID: OptBlurKern, Long: "blur-kern", Arity: RequiredArgument, Meta: "MATRIX", Usage: "Specify the blur convolution kernel: a preset name or WIDTH,HEIGHT,ELE1,ELE2,... with the centre omitted. Separate passes with ';'."},
	{ID: OptBlurBackgroundExclude, Long: "blur-background-exclude", Arity: RequiredArgument, Meta: "CONDITION", Usage: "Exclude conditions for background blur."},

	{ID: OptClearShadow, Short: 'z', Long: "clear-shadow", Status: StatusRemoved, Notice: "clear-shadow is removed, shadows are automatically cleared now. If you want to prevent shadow from been cleared under certain types of windows, you can use the \"full-shadow\" per window type option."},
	{ID: OptClientShadows, Short: 'n', Status: StatusRemoved, Notice: "-n, -a, and -s have been removed."},
	{ID: OptAvoidChecks, Short: 'a', Status: StatusRemoved, Notice: "-n, -a, and -s have been removed."},
	{ID: OptServerShadows, Short: 's', Status: StatusRemoved, Notice: "-n, -a, and -s have been removed."},
	{ID: OptAlphaStep, Long: "alpha-step", Arity: RequiredArgument, Meta: "STEP", Status: StatusRemoved, Notice: "--alpha-step has been removed, the compositor now tries to make use of all alpha values"},
	{ID: OptDBE, Long: "dbe", Status: StatusRemoved, Notice: "use of --dbe is deprecated"},
	{ID: OptPaintOnOverlay, Long: "paint-on-overlay", Status: StatusRemoved, Notice: "--paint-on-overlay has been removed, and is enabled when possible"},
	{ID: OptGLXCopyFromFront, Long: "glx-copy-from-front", Status: StatusRemoved, Notice: "--glx-copy-from-front " + removedNotice},
	{ID: OptGLXUseCopySubBufferMesa, Long: "glx-use-copysubbuffermesa", Status: StatusRemoved, Notice: "--glx-use-copysubbuffermesa " + removedNotice},
}

func lookupShort(r rune) (Option, bool) {
	for _, opt := range catalog {
		if opt.Short != 0 && opt.Short == r {
			return opt, true
		}
	}
	return Option{}, false
}

// lookupLong matches name exactly, then as an unambiguous prefix of a long
// option name.
func lookupLong(name string) (Option, error) {
	var candidates []Option
	for _, opt := range catalog {
		if opt.Long == "" {
			continue
		}
		if opt.Long == name {
			return opt, nil
		}
		if strings.HasPrefix(opt.Long, name) {
			candidates = append(candidates, opt)
		}
	}
	switch len(candidates) {
	case 0:
		return Option{}, ErrUnknownOption
	case 1:
		return candidates[0], nil
	default:
		names := make([]string, len(candidates))
		for i, c := range candidates {
			names[i] = "--" + c.Long
		}
		return Option{}, &ambiguousError{candidates: names}
	}
}
