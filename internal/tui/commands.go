package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/IssaKamara958/WiFiQRCode/internal/wifi"
)

// ScanClient is the decode/connect backend as the orchestrator sees it.
type ScanClient interface {
	Upload(ctx context.Context, path string) (wifi.ScanResult, error)
	ScanWebcam(ctx context.Context) (wifi.ScanResult, error)
	Connect(ctx context.Context, creds wifi.Credentials) (wifi.ConnectResult, error)
	Health(ctx context.Context) error
}

type tickMsg time.Time

// scanDoneMsg is the single completion message of an upload or webcam
// cycle. Every exit path of the command produces exactly one of these,
// which is what lets the Update handler restore control state
// unconditionally.
type scanDoneMsg struct {
	result wifi.ScanResult
	err    error
	method string
}

type connectDoneMsg struct {
	result wifi.ConnectResult
	err    error
}

type healthMsg struct {
	err error
}

// No cancellation: a call runs to completion and reports back. The
// HTTP client's own timeout bounds the wait.
func uploadCmd(c ScanClient, path string) tea.Cmd {
	return func() tea.Msg {
		result, err := c.Upload(context.Background(), path)
		return scanDoneMsg{result: result, err: err, method: "image"}
	}
}

func webcamCmd(c ScanClient) tea.Cmd {
	return func() tea.Msg {
		result, err := c.ScanWebcam(context.Background())
		return scanDoneMsg{result: result, err: err, method: "webcam"}
	}
}

func connectCmd(c ScanClient, creds wifi.Credentials) tea.Cmd {
	return func() tea.Msg {
		result, err := c.Connect(context.Background(), creds)
		return connectDoneMsg{result: result, err: err}
	}
}

func healthCmd(c ScanClient) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		return healthMsg{err: c.Health(ctx)}
	}
}
