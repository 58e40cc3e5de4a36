package config

// Advisory describes a valid but likely mistaken combination of settings.
type Advisory struct {
	EventType string
	Message   string
	Hint      string
	Impact    string
}

// Advisories lists the non-fatal problems in s. It never fails: every
// combination it reports still produces usable settings.
func (s *Settings) Advisories() []Advisory {
	var out []Advisory
	if s.MonitorRepaint && s.Backend != BackendXRender {
		out = append(out, Advisory{
			EventType: "monitor_repaint_ignored",
			Message:   "--monitor-repaint has no effect when backend is not xrender",
			Hint:      "use --backend xrender to highlight repainted areas",
			Impact:    "repaint highlighting disabled",
		})
	}
	if s.ResizeDamage < 0 {
		out = append(out, Advisory{
			EventType: "negative_resize_damage",
			Message:   "negative --resize-damage will not work correctly",
			Hint:      "use a resize-damage value of 0 or more",
			Impact:    "damaged regions may be shrunk instead of expanded",
		})
	}
	if s.InactiveDimFixed && s.InactiveDim == 0 {
		out = append(out, Advisory{
			EventType: "inactive_dim_fixed_unused",
			Message:   "--inactive-dim-fixed has no effect without --inactive-dim",
			Hint:      "set --inactive-dim to a value above 0",
			Impact:    "inactive windows are not dimmed",
		})
	}
	if s.Backend == BackendXRender {
		for _, kernel := range s.BlurKernels {
			if kernel.HasNegative() {
				out = append(out, Advisory{
					EventType: "blur_kernel_negative",
					Message:   "a blur kernel with negative coefficients may not work properly under the xrender backend",
					Hint:      "use non-negative coefficients or a GLX backend",
					Impact:    "background blur may render incorrectly",
				})
				break
			}
		}
	}
	for _, kernel := range s.BlurKernels {
		if kernel.Oversized() {
			out = append(out, Advisory{
				EventType: "blur_kernel_oversized",
				Message:   "blur kernel is larger than 16x16 and may be slow to render",
				Hint:      "use a smaller kernel or several smaller passes",
				Impact:    "frame rendering may lag",
			})
			break
		}
	}
	return out
}
