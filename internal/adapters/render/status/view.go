package status

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/bnema/gamekit/internal/application"
	"github.com/charmbracelet/lipgloss"
)

type RenderOptions struct {
	Now time.Time
}

func RenderProfile(status application.ProfileStatus, opts RenderOptions) (string, error) {
	return run(func(s styles) string {
		return renderProfile(status, opts, s)
	})
}

func RenderBench(report application.PoolBenchReport) (string, error) {
	return run(func(s styles) string {
		return renderBench(report, s)
	})
}

func renderProfile(status application.ProfileStatus, opts RenderOptions, s styles) string {
	p := status.Profile
	lines := []string{
		s.title.Render("Player Profile"),
		s.header.Render(fmt.Sprintf("save: %s", status.FileName)),
		s.section.Render(s.player.Render(playerTitle(p.DisplayName, p.PlayerID))),
		s.detail.Render(fmt.Sprintf("locale: %s-%s", p.LanguageCode, p.CountryCode)),
		s.detail.Render(fmt.Sprintf("analytics: %s", consentLabel(p.AnalyticsConsent))),
		s.detail.Render(fmt.Sprintf("app version: %s", valueOr(p.LastAppVersion, "unknown"))),
		s.meta.Render(fmt.Sprintf("created %s", formatRelative(p.CreatedAt, opts.Now))),
		s.meta.Render(fmt.Sprintf("last login %s", formatRelative(p.LastLoginAt, opts.Now))),
		s.meta.Render(fmt.Sprintf("last saved %s", formatRelative(p.LastSaveAt, opts.Now))),
	}

	if p.PlayerID == "" {
		lines = append(lines, s.warning.Render("[not initialized]"))
	}

	settings := status.Settings
	lines = append(lines,
		s.section.Render(s.title.Render("Settings")),
		volumeLine("master", settings.MasterVolume, s),
		volumeLine("music", settings.MusicVolume, s),
		volumeLine("sfx", settings.SFXVolume, s),
		s.detail.Render(fmt.Sprintf("vibration: %s", onOff(settings.Vibration))),
	)

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderBench(report application.PoolBenchReport, s styles) string {
	reuseRate := 0.0
	if report.Spawned > 0 {
		reuseRate = float64(report.Reused) / float64(report.Spawned) * 100
	}

	lines := []string{
		s.title.Render("Pool Bench"),
		s.header.Render(fmt.Sprintf("warm: %d", report.Warm)),
		s.detail.Render(fmt.Sprintf("spawned: %d", report.Spawned)),
		s.detail.Render(fmt.Sprintf("recycled: %d", report.Recycled)),
		s.detail.Render(fmt.Sprintf("reused: %d", report.Reused)),
		s.detail.Render(fmt.Sprintf("idle: %d", report.Idle)),
		s.detail.Render(fmt.Sprintf("size: %d", report.Size)),
		s.meta.Render(fmt.Sprintf("%d parked under %s, %d active", report.Parked, valueOr(report.Container, "no pool"), report.Active)),
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			s.key.Render("reuse:"),
			" ",
			renderProgressBar(reuseRate, 24, s),
			" ",
			lipgloss.NewStyle().Foreground(interpolateColor(reuseRate, 0, 100)).Render(fmt.Sprintf("%3.0f%%", reuseRate)),
		),
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func volumeLine(label string, volume float64, s styles) string {
	percent := clampPercent(volume * 100)
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.key.Render(fmt.Sprintf("%-7s", label+":")),
		" ",
		renderProgressBar(percent, 20, s),
		" ",
		lipgloss.NewStyle().Foreground(interpolateColor(percent, 0, 100)).Render(fmt.Sprintf("%3.0f%%", percent)),
	)
}

func renderProgressBar(filledPercent float64, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	filled := int(math.Round(float64(width) * clampPercent(filledPercent) / 100.0))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func formatRelative(at, now time.Time) string {
	if at.IsZero() {
		return "never"
	}
	if now.IsZero() {
		return at.Format(time.RFC3339)
	}

	elapsed := now.Sub(at)
	if elapsed < time.Minute {
		return "just now"
	}
	if elapsed < time.Hour {
		return plural(int(elapsed.Minutes()), "minute") + " ago"
	}
	if elapsed < 24*time.Hour {
		return plural(int(elapsed.Hours()), "hour") + " ago"
	}

	return fmt.Sprintf("%s ago (%s)", plural(int(elapsed.Hours()/24), "day"), at.Format("02 Jan 2006"))
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

func playerTitle(name, id string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "Unnamed player"
	}
	if id == "" {
		return name
	}
	return fmt.Sprintf("%s (%s)", name, id)
}

func consentLabel(consent bool) string {
	if consent {
		return "allowed"
	}
	return "declined"
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func valueOr(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}

func interpolateColor(value, min, max float64) lipgloss.Color {
	if max == min {
		return lipgloss.Color("255")
	}

	normalized := (value - min) / (max - min)
	if normalized < 0 {
		normalized = 0
	}
	if normalized > 1 {
		normalized = 1
	}

	// ANSI 256 greyscale ramp, faded 240 up to bright 255.
	return lipgloss.Color(fmt.Sprintf("%d", int(240.0+15.0*normalized)))
}
