package tui

import (
	"strings"
	"testing"

	"github.com/IssaKamara958/WiFiQRCode/internal/wifi"
)

func TestBuildDisplay_PasswordMaskedByDefault(t *testing.T) {
	scan := wifi.ScanResult{Success: true, SSID: "Home", Password: "secret", Security: "WPA"}

	d := buildDisplay(scan, false, 12)
	if d.PasswordText != strings.Repeat("•", 12) {
		t.Errorf("initial password text must be the mask, got %q", d.PasswordText)
	}
	if strings.Contains(d.PasswordText, "secret") {
		t.Error("plaintext must never leak into the masked display")
	}
	if d.ToggleLabel != "show password" {
		t.Errorf("toggle label: want show password, got %q", d.ToggleLabel)
	}
}

func TestBuildDisplay_ToggleRoundTrip(t *testing.T) {
	scan := wifi.ScanResult{Success: true, SSID: "Home", Password: "secret", Security: "WPA"}

	masked := buildDisplay(scan, false, 12)
	revealed := buildDisplay(scan, true, 12)
	maskedAgain := buildDisplay(scan, false, 12)

	if revealed.PasswordText != "secret" {
		t.Errorf("revealed text: want plaintext, got %q", revealed.PasswordText)
	}
	if revealed.ToggleLabel != "hide password" {
		t.Errorf("revealed toggle label: got %q", revealed.ToggleLabel)
	}
	if maskedAgain.PasswordText != masked.PasswordText {
		t.Error("two toggles must recover the original rendering exactly")
	}
}

func TestBuildDisplay_OpenNetwork(t *testing.T) {
	scan := wifi.ScanResult{Success: true, SSID: "Cafe", Security: "nopass"}
	d := buildDisplay(scan, false, 12)
	if d.HasPassword {
		t.Error("open network has no password")
	}
	if d.PasswordText != "None" {
		t.Errorf("open network password text: want None, got %q", d.PasswordText)
	}
	if d.ToggleLabel != "" {
		t.Error("open network gets no toggle affordance")
	}
}

func TestBuildDisplay_SecurityClass(t *testing.T) {
	tests := []struct {
		security string
		class    string
	}{
		{"WPA", "wpa"},
		{"WEP", "wep"},
		{"nopass", "nopass"},
		{"SAE", "sae"},
		{"", ""},
	}
	for _, tt := range tests {
		d := buildDisplay(wifi.ScanResult{SSID: "x", Security: tt.security}, false, 12)
		if d.SecurityClass != tt.class {
			t.Errorf("security %q: want class %q, got %q", tt.security, tt.class, d.SecurityClass)
		}
	}
}

func TestSecurityStyleUnknownFallsBack(t *testing.T) {
	// Must not panic and must return the default treatment.
	got := securityStyle("sae")
	want := securityDefaultStyle
	if got.Render("x") != want.Render("x") {
		t.Error("unknown security class should use the default style")
	}
}

func TestBuildDisplay_RawDataPlaceholder(t *testing.T) {
	d := buildDisplay(wifi.ScanResult{SSID: "x", Security: "WPA"}, false, 12)
	if d.RawData != "N/A" {
		t.Errorf("absent raw data: want N/A, got %q", d.RawData)
	}

	d = buildDisplay(wifi.ScanResult{SSID: "x", Security: "WPA", RawData: "WIFI:S:x;;"}, false, 12)
	if d.RawData != "WIFI:S:x;;" {
		t.Errorf("raw data must render verbatim, got %q", d.RawData)
	}
}

func TestBuildDisplay_MethodDefault(t *testing.T) {
	d := buildDisplay(wifi.ScanResult{SSID: "x", Security: "WPA"}, false, 12)
	if d.Method != "image" {
		t.Errorf("absent method: want image, got %q", d.Method)
	}
}

func TestBuildDisplay_HiddenBadge(t *testing.T) {
	if d := buildDisplay(wifi.ScanResult{SSID: "x", Security: "WPA", Hidden: true}, false, 12); !d.Hidden {
		t.Error("hidden flag lost")
	}
	if d := buildDisplay(wifi.ScanResult{SSID: "x", Security: "WPA"}, false, 12); d.Hidden {
		t.Error("hidden badge only when the network is hidden")
	}
}
