package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Backend selects the rendering backend.
type Backend int

const (
	BackendXRender Backend = iota
	BackendGLX
	BackendXRGLXHybrid
)

var backendNames = []string{"xrender", "glx", "xr_glx_hybrid"}

func (b Backend) String() string {
	if b < 0 || int(b) >= len(backendNames) {
		return fmt.Sprintf("backend(%d)", int(b))
	}
	return backendNames[b]
}

// ParseBackend resolves a backend name, case-insensitively. Two historical
// spellings of the hybrid backend are accepted.
func ParseBackend(raw string) (Backend, error) {
	name := strings.TrimSpace(raw)
	for i, candidate := range backendNames {
		if strings.EqualFold(name, candidate) {
			return Backend(i), nil
		}
	}
	if strings.EqualFold(name, "xr_glx_hybird") || strings.EqualFold(name, "xr-glx-hybrid") {
		return BackendXRGLXHybrid, nil
	}
	return BackendXRender, fmt.Errorf("invalid backend %q", raw)
}

// VSync selects the vertical synchronisation method.
type VSync int

const (
	VSyncNone VSync = iota
	VSyncDRM
	VSyncOpenGL
	VSyncOpenGLOML
	VSyncOpenGLSWC
	VSyncOpenGLMSWC
)

var vsyncNames = []string{"none", "drm", "opengl", "opengl-oml", "opengl-swc", "opengl-mswc"}

func (v VSync) String() string {
	if v < 0 || int(v) >= len(vsyncNames) {
		return fmt.Sprintf("vsync(%d)", int(v))
	}
	return vsyncNames[v]
}

// ParseVSync resolves a vsync method name, case-insensitively.
func ParseVSync(raw string) (VSync, error) {
	name := strings.TrimSpace(raw)
	for i, candidate := range vsyncNames {
		if strings.EqualFold(name, candidate) {
			return VSync(i), nil
		}
	}
	return VSyncNone, fmt.Errorf("invalid vsync method %q", raw)
}

// GLX swap methods. Positive values up to MaxBufferAge+1 name a fixed buffer age.
const (
	SwapMethodBufferAge = -1
	SwapMethodUndefined = 0
	SwapMethodCopy      = 1
	SwapMethodExchange  = 2

	MaxBufferAge = 5
)

// ParseGLXSwapMethod accepts a named swap method or an integer buffer age.
func ParseGLXSwapMethod(raw string) (int, error) {
	name := strings.TrimSpace(raw)
	switch name {
	case "undefined":
		return SwapMethodUndefined, nil
	case "copy":
		return SwapMethodCopy, nil
	case "exchange":
		return SwapMethodExchange, nil
	case "buffer-age":
		return SwapMethodBufferAge, nil
	}
	age, err := strconv.ParseInt(name, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid glx swap method %q", raw)
	}
	if age < SwapMethodBufferAge || age > MaxBufferAge+1 {
		return 0, fmt.Errorf("glx swap method %d out of range [%d, %d]", age, SwapMethodBufferAge, MaxBufferAge+1)
	}
	return int(age), nil
}

var errNoOpacity = errors.New("no opacity specified")

// ParseOpacityRule parses "PERCENT:PATTERN". PERCENT must lie in [0,100]; the
// pattern is kept verbatim for the matching engine.
func ParseOpacityRule(raw string) (OpacityRule, error) {
	head, pattern, found := strings.Cut(raw, ":")
	head = strings.TrimSpace(head)
	if head == "" {
		return OpacityRule{}, fmt.Errorf("opacity rule %q: %w", raw, errNoOpacity)
	}
	value, err := strconv.ParseInt(head, 0, 32)
	if err != nil {
		return OpacityRule{}, fmt.Errorf("opacity rule %q: invalid opacity %q", raw, head)
	}
	if value < 0 || value > 100 {
		return OpacityRule{}, fmt.Errorf("opacity rule %q: opacity %d outside [0, 100]", raw, value)
	}
	if !found {
		return OpacityRule{}, fmt.Errorf("opacity rule %q: missing ':' before pattern", raw)
	}
	return OpacityRule{Opacity: int(value), Pattern: pattern}, nil
}
