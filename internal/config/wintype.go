package config

import (
	"fmt"
	"strings"
)

// WindowType classifies windows for per-type defaults.
type WindowType int

const (
	WindowTypeUnknown WindowType = iota
	WindowTypeDesktop
	WindowTypeDock
	WindowTypeToolbar
	WindowTypeMenu
	WindowTypeUtility
	WindowTypeSplash
	WindowTypeDialog
	WindowTypeNormal
	WindowTypeDropdownMenu
	WindowTypePopupMenu
	WindowTypeTooltip
	WindowTypeNotification
	WindowTypeCombo
	WindowTypeDND

	NumWindowTypes = int(WindowTypeDND) + 1
)

var windowTypeNames = [NumWindowTypes]string{
	"unknown",
	"desktop",
	"dock",
	"toolbar",
	"menu",
	"utility",
	"splash",
	"dialog",
	"normal",
	"dropdown_menu",
	"popup_menu",
	"tooltip",
	"notification",
	"combo",
	"dnd",
}

func (t WindowType) String() string {
	if t < 0 || int(t) >= NumWindowTypes {
		return fmt.Sprintf("wintype(%d)", int(t))
	}
	return windowTypeNames[t]
}

// ParseWindowType resolves a window type by its configuration name.
func ParseWindowType(name string) (WindowType, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for i, candidate := range windowTypeNames {
		if candidate == normalized {
			return WindowType(i), nil
		}
	}
	return WindowTypeUnknown, fmt.Errorf("unknown window type %q", name)
}

// WindowTypeOptions holds the options that can vary per window type.
type WindowTypeOptions struct {
	Shadow      bool
	Fade        bool
	Focus       bool
	FullShadow  bool
	RedirIgnore bool
	Opacity     float64
}

// WindowTypeMask records which WindowTypeOptions categories were pinned
// explicitly by the configuration file or the command line.
type WindowTypeMask struct {
	Shadow      bool
	Fade        bool
	Focus       bool
	FullShadow  bool
	RedirIgnore bool
	Opacity     bool
}

// Pins carries the global shadow/fade toggles and the explicit-set mask from
// the loader through the resolver to normalization. Mask entries only ever
// go from false to true.
type Pins struct {
	ShadowEnabled bool
	FadeEnabled   bool
	Mask          [NumWindowTypes]WindowTypeMask
}

// PinShadow sets the shadow option for t and marks it explicit.
func (p *Pins) PinShadow(s *Settings, t WindowType, on bool) {
	s.WindowTypes[t].Shadow = on
	p.Mask[t].Shadow = true
}

// PinFade sets the fade option for t and marks it explicit.
func (p *Pins) PinFade(s *Settings, t WindowType, on bool) {
	s.WindowTypes[t].Fade = on
	p.Mask[t].Fade = true
}

// PinFocus sets the focus option for t and marks it explicit.
func (p *Pins) PinFocus(s *Settings, t WindowType, on bool) {
	s.WindowTypes[t].Focus = on
	p.Mask[t].Focus = true
}

// PinFullShadow sets the full-shadow option for t and marks it explicit.
func (p *Pins) PinFullShadow(s *Settings, t WindowType, on bool) {
	s.WindowTypes[t].FullShadow = on
	p.Mask[t].FullShadow = true
}

// PinRedirIgnore sets the redir-ignore option for t and marks it explicit.
func (p *Pins) PinRedirIgnore(s *Settings, t WindowType, on bool) {
	s.WindowTypes[t].RedirIgnore = on
	p.Mask[t].RedirIgnore = true
}

// PinOpacity sets the opacity for t, clamped to [0,1], and marks it explicit.
func (p *Pins) PinOpacity(s *Settings, t WindowType, opacity float64) {
	s.WindowTypes[t].Opacity = Clamp01(opacity)
	p.Mask[t].Opacity = true
}

// PinMenuOpacity applies opacity to both dropdown and popup menus.
func (p *Pins) PinMenuOpacity(s *Settings, opacity float64) {
	p.PinOpacity(s, WindowTypeDropdownMenu, opacity)
	p.PinOpacity(s, WindowTypePopupMenu, opacity)
}
