package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/IssaKamara958/WiFiQRCode/internal/notify"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62"))

	panelBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240"))

	armedBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("69"))

	panelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("69"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15"))

	hiddenBadgeStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("0")).
				Background(lipgloss.Color("39")).
				Padding(0, 1)

	connectOKStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("82"))

	connectFailStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("196"))

	rawDataStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Italic(true)
)

// securityStyles keys off the lower-cased security string. Anything
// not listed renders with securityDefaultStyle.
var securityStyles = map[string]lipgloss.Style{
	"wpa": lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("82")).
		Padding(0, 1),
	"wep": lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("226")).
		Padding(0, 1),
	"nopass": lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("15")).
		Background(lipgloss.Color("196")).
		Padding(0, 1),
}

var securityDefaultStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("15")).
	Background(lipgloss.Color("240")).
	Padding(0, 1)

func securityStyle(class string) lipgloss.Style {
	if s, ok := securityStyles[class]; ok {
		return s
	}
	return securityDefaultStyle
}

// notificationStyles keys off the notification kind. notify.Normalize
// guarantees the kind is one of the four, but the default case stays.
var notificationStyles = map[notify.Kind]lipgloss.Style{
	notify.KindSuccess: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("82")),
	notify.KindError:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
	notify.KindWarning: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("226")),
	notify.KindInfo:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
}

func notificationStyle(k notify.Kind) lipgloss.Style {
	if s, ok := notificationStyles[k]; ok {
		return s
	}
	return notificationStyles[notify.KindInfo]
}
