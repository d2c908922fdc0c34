package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/IssaKamara958/WiFiQRCode/internal/config"
	"github.com/IssaKamara958/WiFiQRCode/internal/notify"
	"github.com/IssaKamara958/WiFiQRCode/internal/upload"
	"github.com/IssaKamara958/WiFiQRCode/internal/wifi"
)

// Notifier is where transient user-facing messages go.
type Notifier interface {
	Notify(kind notify.Kind, title, message string)
	Current() *notify.Notification
	Clear()
}

// connectStatus is the rendered outcome of the last connect attempt.
type connectStatus struct {
	ok   bool
	text string
}

// notificationTTL is how long a notification stays on screen before
// the refresh tick expires it.
const notificationTTL = 5 * time.Second

type Model struct {
	width    int
	height   int
	keys     KeyMap
	quitting bool

	cfg config.Config

	client    ScanClient
	notifier  Notifier
	validator *upload.Validator

	phase           Phase
	currentScan     *wifi.ScanResult
	revealed        bool
	connStatus      *connectStatus
	payloadMismatch bool

	pathInput  textinput.Model
	picker     filepicker.Model
	pickerOpen bool
	spin       spinner.Model

	webcamBusy  bool
	connectBusy bool

	startDir    string
	refreshRate time.Duration
	probeHealth bool

	onShutdown func()
}

func NewModel(cfg config.Config, opts ...ModelOption) Model {
	ti := textinput.New()
	ti.Placeholder = "drop an image here, or type a path and press enter"
	ti.CharLimit = 4096

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		keys:        DefaultKeyMap(),
		cfg:         cfg,
		phase:       PhaseIdle,
		validator:   upload.NewValidator(cfg.Upload.MaxFileBytes, cfg.Upload.AllowedTypes),
		pathInput:   ti,
		spin:        sp,
		refreshRate: time.Duration(cfg.Display.RefreshRateMS) * time.Millisecond,
	}

	for _, opt := range opts {
		opt(&m)
	}

	if m.notifier == nil {
		m.notifier = notify.NewCenter()
	}

	return m
}

type ModelOption func(*Model)

func WithScanClient(c ScanClient) ModelOption {
	return func(m *Model) { m.client = c }
}

func WithNotifier(n Notifier) ModelOption {
	return func(m *Model) { m.notifier = n }
}

// WithStartDir sets the directory the file browser opens in.
func WithStartDir(dir string) ModelOption {
	return func(m *Model) { m.startDir = dir }
}

// WithHealthProbe enables the startup backend health check.
func WithHealthProbe() ModelOption {
	return func(m *Model) { m.probeHealth = true }
}

func WithOnShutdown(fn func()) ModelOption {
	return func(m *Model) { m.onShutdown = fn }
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.tickCmd(), m.spin.Tick}
	if m.probeHealth && m.client != nil {
		cmds = append(cmds, healthCmd(m.client))
	}
	return tea.Batch(cmds...)
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.refreshRate, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.width > 8 {
			m.pathInput.Width = m.width - 8
		}
		return m, nil

	case tickMsg:
		if n := m.notifier.Current(); n != nil && time.Since(n.At) > notificationTTL {
			m.notifier.Clear()
		}
		return m, m.tickCmd()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case healthMsg:
		if msg.err != nil {
			m.notifier.Notify(notify.KindWarning, "Backend Unreachable", msg.err.Error())
		}
		return m, nil

	case scanDoneMsg:
		return m.handleScanDone(msg), nil

	case connectDoneMsg:
		return m.handleConnectDone(msg), nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.pickerOpen {
		return m.updatePicker(msg)
	}

	return m, nil
}

// handleScanDone resolves an upload or webcam cycle. Whatever path the
// call took, the triggering control is restored and the phase lands on
// idle or displaying, never stuck in flight. A failed cycle keeps any
// earlier results on screen rather than stranding them.
func (m Model) handleScanDone(msg scanDoneMsg) Model {
	m.webcamBusy = false

	if msg.err != nil {
		title := "Upload Failed"
		if msg.method == "webcam" {
			title = "Webcam Error"
		}
		m.notifier.Notify(notify.KindError, title, msg.err.Error())
		m.phase = m.phaseAfterFailedScan()
		return m
	}

	result := msg.result
	if !result.Success {
		reason := result.Error
		if reason == "" {
			reason = "Could not read QR code"
		}
		m.notifier.Notify(notify.KindError, "Scan Failed", reason)
		m.phase = m.phaseAfterFailedScan()
		return m
	}

	if result.Method == "" {
		result.Method = msg.method
	}

	m.currentScan = &result
	m.revealed = false
	m.connStatus = nil
	m.phase = PhaseDisplaying

	// Local cross-check of the raw payload, transparency aid only;
	// rendered in the result card so it cannot displace the success
	// notification.
	p, perr := wifi.ParsePayload(result.RawData)
	m.payloadMismatch = perr == nil && !p.Matches(result)

	m.notifier.Notify(notify.KindSuccess, "QR Code Found",
		"WiFi network \""+result.SSID+"\" detected!")

	return m
}

// phaseAfterFailedScan decides where a failed scan cycle lands: back
// on the previous results when there are any, otherwise idle.
func (m Model) phaseAfterFailedScan() Phase {
	if m.currentScan != nil {
		return PhaseDisplaying
	}
	return PhaseIdle
}

// handleConnectDone resolves a connect cycle: restore the control,
// return to displaying, render the status fragment, mirror it as a
// notification.
func (m Model) handleConnectDone(msg connectDoneMsg) Model {
	m.connectBusy = false
	m.phase = PhaseDisplaying

	switch {
	case msg.err != nil:
		m.connStatus = &connectStatus{ok: false, text: msg.err.Error()}
		m.notifier.Notify(notify.KindError, "Error", "Connection error: "+msg.err.Error())
	case msg.result.Success:
		m.connStatus = &connectStatus{ok: true, text: msg.result.Message}
		ssid := ""
		if m.currentScan != nil {
			ssid = m.currentScan.SSID
		}
		m.notifier.Notify(notify.KindSuccess, "Connected", "Successfully connected to "+ssid)
	default:
		m.connStatus = &connectStatus{ok: false, text: msg.result.Error}
		m.notifier.Notify(notify.KindError, "Connection Failed", msg.result.Error)
	}

	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.pickerOpen {
		if key.Matches(msg, m.keys.Escape) {
			m.pickerOpen = false
			return m, nil
		}
		return m.updatePicker(msg)
	}

	if m.pathInput.Focused() {
		switch {
		case key.Matches(msg, m.keys.Escape):
			m.pathInput.Blur()
			return m, nil
		case key.Matches(msg, m.keys.Enter):
			return m.submitPathInput()
		}
		var cmd tea.Cmd
		m.pathInput, cmd = m.pathInput.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		if m.onShutdown != nil {
			m.onShutdown()
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Path):
		return m, m.pathInput.Focus()

	case key.Matches(msg, m.keys.Browse):
		return m.openPicker()

	case key.Matches(msg, m.keys.Webcam):
		return m.triggerWebcamScan()

	case key.Matches(msg, m.keys.Connect):
		return m.triggerConnect()

	case key.Matches(msg, m.keys.Toggle):
		// Purely local, so it stays live while a connect is in flight.
		if (m.phase == PhaseDisplaying || m.phase == PhaseConnecting) &&
			m.currentScan != nil && m.currentScan.Password != "" {
			m.revealed = !m.revealed
		}
		return m, nil

	case key.Matches(msg, m.keys.Clear):
		return m.clearResults(), nil
	}

	return m, nil
}

// submitPathInput takes the first dropped/typed path. Terminals paste
// a dropped file's path into the focused input, so multiple dropped
// files arrive as several whitespace-separated tokens; only the first
// is used.
func (m Model) submitPathInput() (tea.Model, tea.Cmd) {
	raw := strings.TrimSpace(m.pathInput.Value())
	if raw == "" {
		return m, nil
	}

	// Terminals quote dropped paths that contain spaces.
	var path string
	if raw[0] == '\'' || raw[0] == '"' {
		if end := strings.IndexByte(raw[1:], raw[0]); end >= 0 {
			path = raw[1 : 1+end]
		} else {
			path = strings.Trim(raw, "'\"")
		}
	} else {
		path = strings.Fields(raw)[0]
	}

	m.pathInput.Blur()
	return m.submitFile(path)
}

// submitFile runs the local validation and, if it passes, starts the
// upload cycle.
func (m Model) submitFile(path string) (tea.Model, tea.Cmd) {
	if !m.phase.acceptsScan() {
		m.notifier.Notify(notify.KindWarning, "Busy", "another operation is still in progress")
		return m, nil
	}

	if err := m.validator.Check(path); err != nil {
		m.notifier.Notify(notify.KindError, rejectionTitle(err), err.Error())
		return m, nil
	}

	m.phase = PhaseUploading
	return m, uploadCmd(m.client, path)
}

func rejectionTitle(err error) string {
	switch {
	case upload.IsKind(err, upload.KindInvalidFileType):
		return "Invalid File Type"
	case upload.IsKind(err, upload.KindFileTooLarge):
		return "File Too Large"
	default:
		return "Invalid File"
	}
}

// triggerWebcamScan disables the webcam control and issues the remote
// capture request. The control is restored by handleScanDone on every
// outcome.
func (m Model) triggerWebcamScan() (tea.Model, tea.Cmd) {
	if m.webcamBusy || !m.phase.acceptsScan() {
		if !m.webcamBusy {
			m.notifier.Notify(notify.KindWarning, "Busy", "another operation is still in progress")
		}
		return m, nil
	}
	m.webcamBusy = true
	m.phase = PhaseScanningWebcam
	return m, webcamCmd(m.client)
}

// triggerConnect is a no-op without a current scan.
func (m Model) triggerConnect() (tea.Model, tea.Cmd) {
	if m.currentScan == nil {
		return m, nil
	}
	if m.connectBusy || m.phase != PhaseDisplaying {
		return m, nil
	}
	m.connectBusy = true
	m.phase = PhaseConnecting
	creds := wifi.Credentials{
		SSID:     m.currentScan.SSID,
		Password: m.currentScan.Password,
		Security: m.currentScan.Security,
	}
	return m, connectCmd(m.client, creds)
}

// clearResults discards the current scan and resets the input.
func (m Model) clearResults() Model {
	if m.phase != PhaseDisplaying {
		return m
	}
	m.currentScan = nil
	m.revealed = false
	m.connStatus = nil
	m.payloadMismatch = false
	m.pathInput.Reset()
	m.phase = PhaseIdle
	return m
}

func (m Model) openPicker() (tea.Model, tea.Cmd) {
	if !m.phase.acceptsScan() {
		m.notifier.Notify(notify.KindWarning, "Busy", "another operation is still in progress")
		return m, nil
	}
	fp := filepicker.New()
	fp.AllowedTypes = m.validator.AllowedExtensions()
	fp.CurrentDirectory = m.startDir
	if fp.CurrentDirectory == "" {
		fp.CurrentDirectory = "."
	}
	fp.Height = m.height - 4
	m.picker = fp
	m.pickerOpen = true
	return m, m.picker.Init()
}

func (m Model) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if ok, path := m.picker.DidSelectFile(msg); ok {
		m.pickerOpen = false
		return m.submitFile(path)
	}
	if ok, path := m.picker.DidSelectDisabledFile(msg); ok {
		m.notifier.Notify(notify.KindError, "Invalid File Type", path+" is not an accepted image type")
		return m, cmd
	}
	return m, cmd
}
