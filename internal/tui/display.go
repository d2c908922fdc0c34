package tui

import (
	"strings"

	"github.com/IssaKamara958/WiFiQRCode/internal/wifi"
)

// DisplayState is the renderable projection of a successful scan.
// Building it is pure; the view layer only consumes it.
type DisplayState struct {
	SSID          string
	PasswordText  string
	HasPassword   bool
	ToggleLabel   string
	SecurityLabel string
	SecurityClass string
	Hidden        bool
	Method        string
	RawData       string
}

const rawDataPlaceholder = "N/A"

// buildDisplay converts a scan into its display state. The password is
// masked unless revealed; the security class is the lower-cased
// security string and tolerates any value.
func buildDisplay(scan wifi.ScanResult, revealed bool, maskLen int) DisplayState {
	if maskLen < 1 {
		maskLen = 12
	}

	d := DisplayState{
		SSID:          scan.SSID,
		HasPassword:   scan.Password != "",
		SecurityLabel: scan.Security,
		SecurityClass: strings.ToLower(scan.Security),
		Hidden:        scan.Hidden,
		Method:        scan.ScanMethod(),
		RawData:       scan.RawData,
	}

	switch {
	case !d.HasPassword:
		d.PasswordText = "None"
	case revealed:
		d.PasswordText = scan.Password
		d.ToggleLabel = "hide password"
	default:
		d.PasswordText = strings.Repeat("•", maskLen)
		d.ToggleLabel = "show password"
	}

	if d.RawData == "" {
		d.RawData = rawDataPlaceholder
	}

	return d
}
