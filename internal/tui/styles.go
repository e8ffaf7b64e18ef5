package tui

import (
	"github.com/Zacy-Sokach/TermCalc/internal/config"
	"github.com/charmbracelet/lipgloss"
)

// 显示区固定宽度，长结果在区内右对齐
const displayWidth = 28

// Styles 由主题配色派生的界面样式
type Styles struct {
	Frame     lipgloss.Style
	Display   lipgloss.Style
	Preview   lipgloss.Style
	Error     lipgloss.Style
	Key       lipgloss.Style
	KeyActive lipgloss.Style
	HelpPane  lipgloss.Style
}

func NewStyles(theme config.Theme) Styles {
	return Styles{
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(theme.FrameFg)).
			Padding(0, 1),
		Display: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.DisplayFg)).
			Bold(true).
			Width(displayWidth).
			Align(lipgloss.Right),
		Preview: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.MutedFg)).
			Width(displayWidth).
			Align(lipgloss.Right),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.ErrorFg)).
			Width(displayWidth).
			Align(lipgloss.Right),
		Key: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(theme.MutedFg)).
			Padding(0, 1),
		KeyActive: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(theme.AccentFg)).
			Foreground(lipgloss.Color(theme.AccentFg)).
			Bold(true).
			Padding(0, 1),
		HelpPane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(theme.FrameFg)).
			Padding(1, 2),
	}
}
