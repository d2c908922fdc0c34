package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/IssaKamara958/WiFiQRCode/internal/notify"
)

func (m Model) View() string {
	if m.quitting {
		return "Bye.\n"
	}

	if m.pickerOpen {
		return m.renderPicker()
	}

	sections := []string{
		m.renderHeader(),
		m.renderDropZone(),
	}

	if m.phase == PhaseDisplaying || m.phase == PhaseConnecting {
		sections = append(sections, m.renderResults())
	}

	sections = append(sections, m.renderNotification())

	output := lipgloss.JoinVertical(lipgloss.Left, sections...)

	if m.height > 0 {
		lines := strings.Split(output, "\n")
		if len(lines) > m.height {
			lines = lines[:m.height]
			output = strings.Join(lines, "\n")
		}
	}

	return output
}

func (m Model) renderHeader() string {
	title := " wifiqr"
	phaseLabel := " [" + m.phase.String() + "]"
	help := m.headerHelp()

	padding := m.width - lipgloss.Width(title) - lipgloss.Width(phaseLabel) - lipgloss.Width(help)
	if padding < 0 {
		padding = 0
	}

	return headerStyle.Width(m.width).Render(title + phaseLabel + strings.Repeat(" ", padding) + help)
}

func (m Model) headerHelp() string {
	if m.pathInput.Focused() {
		return "Enter:Submit  Esc:Back "
	}
	switch m.phase {
	case PhaseDisplaying, PhaseConnecting:
		return "p:Password  c:Connect  x:Clear  u:Path  o:Browse  w:Webcam  q:Quit "
	default:
		return "u:Path  o:Browse  w:Webcam  q:Quit "
	}
}

// renderDropZone draws the input area. The border switches to the
// armed style while the path input has focus, the terminal equivalent
// of the dragover highlight.
func (m Model) renderDropZone() string {
	style := panelBorderStyle
	if m.pathInput.Focused() {
		style = armedBorderStyle
	}

	var b strings.Builder
	b.WriteString(panelTitleStyle.Render("Scan a WiFi QR code"))
	b.WriteString("\n")
	b.WriteString(m.pathInput.View())
	b.WriteString("\n")

	switch {
	case m.phase == PhaseUploading:
		b.WriteString(m.spin.View() + " Uploading and scanning...")
	case m.webcamBusy:
		b.WriteString(m.spin.View() + " Scanning...")
	default:
		b.WriteString(dimStyle.Render("[w] scan with the server webcam"))
	}

	w := m.width - 2
	if w < 20 {
		w = 20
	}
	return style.Width(w).Render(b.String())
}

func (m Model) renderResults() string {
	if m.currentScan == nil {
		return ""
	}
	d := buildDisplay(*m.currentScan, m.revealed, m.cfg.Display.MaskLength)

	var b strings.Builder
	b.WriteString(panelTitleStyle.Render("Network: "+d.SSID) + "\n\n")

	b.WriteString(labelStyle.Render("Network Name: ") + valueStyle.Render(d.SSID) + "\n")

	pw := labelStyle.Render("Password:     ") + valueStyle.Render(d.PasswordText)
	if d.HasPassword {
		pw += dimStyle.Render("  [p] " + d.ToggleLabel)
	}
	b.WriteString(pw + "\n")

	b.WriteString(labelStyle.Render("Security:     ") + securityStyle(d.SecurityClass).Render(d.SecurityLabel) + "\n")
	b.WriteString(labelStyle.Render("Scan Method:  ") + valueStyle.Render(d.Method) + "\n")

	if d.Hidden {
		b.WriteString(labelStyle.Render("Hidden Network: ") + hiddenBadgeStyle.Render("Yes") + "\n")
	}

	if m.payloadMismatch {
		b.WriteString(notificationStyle(notify.KindWarning).Render(notify.Icon(notify.KindWarning)+" Payload Mismatch:") +
			" local parse of the QR payload disagrees with the server result\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderConnectSection())

	b.WriteString("\n" + labelStyle.Render("QR Code Details") + "\n")
	b.WriteString(rawDataStyle.Render(d.RawData) + "\n")

	w := m.width - 2
	if w < 20 {
		w = 20
	}
	return panelBorderStyle.Width(w).Render(b.String())
}

func (m Model) renderConnectSection() string {
	var b strings.Builder

	if m.connectBusy {
		b.WriteString(m.spin.View() + " Connecting...\n")
	} else {
		b.WriteString(dimStyle.Render("[c] Connect Now  [x] Clear results") + "\n")
	}

	if m.connStatus != nil {
		if m.connStatus.ok {
			b.WriteString(connectOKStyle.Render("Connected Successfully!") + " " + m.connStatus.text + "\n")
		} else {
			b.WriteString(connectFailStyle.Render("Connection Failed") + " " + m.connStatus.text + "\n")
		}
	}

	return b.String()
}

func (m Model) renderNotification() string {
	n := m.notifier.Current()
	if n == nil {
		return ""
	}
	style := notificationStyle(n.Kind)
	return style.Render(notify.Icon(n.Kind)+" "+n.Title+":") + " " + n.Message
}

func (m Model) renderPicker() string {
	header := panelTitleStyle.Render("Pick an image") + dimStyle.Render("  (esc to cancel)")
	return header + "\n" + m.picker.View()
}
