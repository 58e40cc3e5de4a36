package config

import (
	"log/slog"

	"compositor/internal/logging"
)

// Normalize finalizes s once every flag has been applied. It clamps ranges,
// fills unpinned window-type categories from the global toggles, applies
// implications and derives internal flags. Out-of-range values are clamped,
// never rejected; questionable combinations are logged as warnings.
func (s *Settings) Normalize(pins *Pins, logger *slog.Logger) {
	if pins == nil {
		pins = &Pins{}
	}
	s.clampRanges()
	s.fillWindowTypes(pins)
	s.applyImplications()
	s.deriveTracking()
	s.fillBlurKernels()

	logger = logging.NewComponentLogger(logger, "normalize")
	for _, advisory := range s.Advisories() {
		logging.WarnWithContext(logger, advisory.Message, advisory.EventType,
			logging.String(logging.FieldErrorHint, advisory.Hint),
			logging.String(logging.FieldImpact, advisory.Impact),
		)
	}
}

func (s *Settings) clampRanges() {
	s.FadeDelta = max(s.FadeDelta, defaultMinFadeDelta)
	s.ShadowRadius = max(s.ShadowRadius, defaultMinShadowRadius)
	s.RefreshRate = clampInt(s.RefreshRate, 0, defaultMaxRefreshRate)

	s.ShadowRed = Clamp01(s.ShadowRed)
	s.ShadowGreen = Clamp01(s.ShadowGreen)
	s.ShadowBlue = Clamp01(s.ShadowBlue)
	s.InactiveDim = Clamp01(s.InactiveDim)
	s.FrameOpacity = Clamp01(s.FrameOpacity)
	s.ShadowOpacity = Clamp01(s.ShadowOpacity)
	for i := range s.WindowTypes {
		s.WindowTypes[i].Opacity = Clamp01(s.WindowTypes[i].Opacity)
	}
}

// fillWindowTypes must run after all flags: a global toggle may appear after
// a per-type flag on the command line.
func (s *Settings) fillWindowTypes(pins *Pins) {
	for i := range s.WindowTypes {
		if !pins.Mask[i].Shadow {
			s.WindowTypes[i].Shadow = pins.ShadowEnabled
		}
		if !pins.Mask[i].Fade {
			s.WindowTypes[i].Fade = pins.FadeEnabled
		}
	}
}

func (s *Settings) applyImplications() {
	if s.BlurBackgroundFrame {
		s.BlurBackground = true
	}
	if s.XRenderSyncFence {
		s.XRenderSync = true
	}
}

func (s *Settings) deriveTracking() {
	if s.InactiveOpacity != s.ActiveOpacity || s.InactiveDim != 0 {
		s.TrackFocus = true
	}
	if s.DetectTransient || s.DetectClientLeader {
		s.TrackLeader = true
	}
}

func (s *Settings) fillBlurKernels() {
	if s.BlurBackground && len(s.BlurKernels) == 0 {
		s.BlurKernels = []BlurKernel{DefaultBlurKernel()}
	}
}
