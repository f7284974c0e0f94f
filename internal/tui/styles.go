package tui

import "github.com/charmbracelet/lipgloss"

// Colors - modern slate/blue palette.
const (
	colorBg           = "#0F172A" // Slate 900
	colorBgCard       = "#1E293B" // Slate 800
	colorFg           = "#F8FAFC" // Slate 50
	colorFgMuted      = "#94A3B8" // Slate 400
	colorPrimary      = "#3B82F6" // Blue 500
	colorSecondary    = "#8B5CF6" // Purple 500
	colorSuccess      = "#10B981" // Emerald 500
	colorWarning      = "#F59E0B" // Amber 500
	colorError        = "#EF4444" // Red 500
	colorBorder       = "#334155" // Slate 700
	colorUserMsg      = "#3B82F6" // Blue 500
	colorAssistantMsg = "#10B981" // Emerald 500
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colorFg)).
			Background(lipgloss.Color(colorBgCard)).
			Padding(0, 2).
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(colorBorder))

	userHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colorUserMsg))

	assistantHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color(colorAssistantMsg))

	messageBodyStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(colorFg)).
				PaddingLeft(2)

	fileChipStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorPrimary)).
			PaddingLeft(2)

	sidebarTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color(colorSecondary))

	sidebarItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(colorFgMuted))

	sidebarCurrentStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color(colorPrimary))

	sidebarSelectedStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color(colorFg)).
				Background(lipgloss.Color(colorBorder))

	loadingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorPrimary)).
			PaddingLeft(2)

	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorWarning)).
			PaddingLeft(2)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorError)).
			PaddingLeft(2)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorFgMuted)).
			Padding(0, 2)

	inputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(colorBorder)).
			Padding(0, 1)
)
