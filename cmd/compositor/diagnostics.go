package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"compositor/internal/config"
	"compositor/internal/pipeline"
)

// writeDiagnostics prints the resolved settings for --diagnostics.
func writeDiagnostics(w io.Writer, result pipeline.Result, colorize bool) error {
	s := result.Settings
	var b strings.Builder

	b.WriteString(renderSectionHeader("compositor "+version, colorize))
	b.WriteByte('\n')
	b.WriteString(configStatusLine(result, colorize))
	b.WriteByte('\n')
	for _, advisory := range s.Advisories() {
		b.WriteString(renderStatusLine("advisory", statusWarn, advisory.Message, colorize))
		b.WriteByte('\n')
	}
	b.WriteByte('\n')

	settingsTable := tableSpec{
		title:        "Settings",
		headers:      []string{"Setting", "Value"},
		rows:         settingsRows(s),
		rightAligned: []int{1},
	}
	windowTable := tableSpec{
		title:        "Window types",
		headers:      []string{"Type", "Shadow", "Fade", "Focus", "Full shadow", "Redir ignore", "Opacity"},
		rows:         windowTypeRows(s),
		rightAligned: []int{6},
	}
	b.WriteString(settingsTable.render())
	b.WriteString("\n\n")
	b.WriteString(windowTable.render())
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())
	return err
}

func configStatusLine(result pipeline.Result, colorize bool) string {
	if result.ConfigExists {
		return renderStatusLine("config file", statusOK, result.ConfigPath, colorize)
	}
	return renderStatusLine("config file", statusInfo, "none found, using defaults", colorize)
}

func settingsRows(s *config.Settings) [][]string {
	swap := strconv.Itoa(s.GLXSwapMethod)
	if s.GLXSwapMethod == config.SwapMethodUndefined {
		swap = "undefined"
	}
	rows := [][]string{
		{"backend", s.Backend.String()},
		{"vsync", s.VSync.String()},
		{"glx swap method", swap},
		{"refresh rate", strconv.Itoa(s.RefreshRate)},
		{"log level", s.LogLevel},
		{"shadow radius", strconv.Itoa(s.ShadowRadius)},
		{"shadow offset", fmt.Sprintf("%d,%d", s.ShadowOffsetX, s.ShadowOffsetY)},
		{"shadow opacity", formatFraction(s.ShadowOpacity)},
		{"shadow colour", fmt.Sprintf("%s,%s,%s", formatFraction(s.ShadowRed), formatFraction(s.ShadowGreen), formatFraction(s.ShadowBlue))},
		{"fade in step", formatFraction(s.FadeInStep.Fraction())},
		{"fade out step", formatFraction(s.FadeOutStep.Fraction())},
		{"fade delta", strconv.Itoa(s.FadeDelta)},
		{"inactive opacity", formatFraction(s.InactiveOpacity.Fraction())},
		{"active opacity", formatFraction(s.ActiveOpacity.Fraction())},
		{"frame opacity", formatFraction(s.FrameOpacity)},
		{"inactive dim", formatFraction(s.InactiveDim)},
		{"blur background", strconv.FormatBool(s.BlurBackground)},
		{"blur passes", strconv.Itoa(len(s.BlurKernels))},
		{"opacity rules", strconv.Itoa(len(s.OpacityRules))},
		{"track focus", strconv.FormatBool(s.TrackFocus)},
		{"track leader", strconv.FormatBool(s.TrackLeader)},
	}
	for _, list := range config.AllConditionLists() {
		rows = append(rows, []string{list.String(), strconv.Itoa(len(s.Conditions.Patterns(list)))})
	}
	return rows
}

func windowTypeRows(s *config.Settings) [][]string {
	rows := make([][]string, 0, config.NumWindowTypes)
	for i, opts := range s.WindowTypes {
		rows = append(rows, []string{
			config.WindowType(i).String(),
			strconv.FormatBool(opts.Shadow),
			strconv.FormatBool(opts.Fade),
			strconv.FormatBool(opts.Focus),
			strconv.FormatBool(opts.FullShadow),
			strconv.FormatBool(opts.RedirIgnore),
			formatFraction(opts.Opacity),
		})
	}
	return rows
}

func formatFraction(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}
