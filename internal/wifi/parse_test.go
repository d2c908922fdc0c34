package wifi

import (
	"errors"
	"testing"
)

func TestParsePayload(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Payload
	}{
		{
			name: "basic WPA",
			raw:  "WIFI:T:WPA;S:HomeNet;P:secret123;;",
			want: Payload{SSID: "HomeNet", Password: "secret123", Security: "WPA"},
		},
		{
			name: "fields reordered",
			raw:  "WIFI:S:HomeNet;P:secret123;T:WPA;;",
			want: Payload{SSID: "HomeNet", Password: "secret123", Security: "WPA"},
		},
		{
			name: "WPA2 collapses to WPA",
			raw:  "WIFI:T:WPA2;S:Office;P:pw;;",
			want: Payload{SSID: "Office", Password: "pw", Security: "WPA"},
		},
		{
			name: "WPA3 collapses to WPA",
			raw:  "WIFI:T:WPA3;S:Office;P:pw;;",
			want: Payload{SSID: "Office", Password: "pw", Security: "WPA"},
		},
		{
			name: "WEP",
			raw:  "WIFI:T:WEP;S:Legacy;P:0123456789;;",
			want: Payload{SSID: "Legacy", Password: "0123456789", Security: "WEP"},
		},
		{
			name: "nopass clears password",
			raw:  "WIFI:T:nopass;S:CoffeeShop;P:ignored;;",
			want: Payload{SSID: "CoffeeShop", Security: "nopass"},
		},
		{
			name: "NONE means open",
			raw:  "WIFI:T:NONE;S:CoffeeShop;;",
			want: Payload{SSID: "CoffeeShop", Security: "nopass"},
		},
		{
			name: "missing T defaults to WPA",
			raw:  "WIFI:S:Implicit;P:pw;;",
			want: Payload{SSID: "Implicit", Password: "pw", Security: "WPA"},
		},
		{
			name: "hidden flag",
			raw:  "WIFI:T:WPA;S:Stealth;P:pw;H:true;;",
			want: Payload{SSID: "Stealth", Password: "pw", Security: "WPA", Hidden: true},
		},
		{
			name: "hidden false",
			raw:  "WIFI:T:WPA;S:Loud;P:pw;H:false;;",
			want: Payload{SSID: "Loud", Password: "pw", Security: "WPA"},
		},
		{
			name: "escaped semicolon and colon in values",
			raw:  `WIFI:T:WPA;S:Cafe\;Lounge;P:a\:b\;c;;`,
			want: Payload{SSID: "Cafe;Lounge", Password: "a:b;c", Security: "WPA"},
		},
		{
			name: "escaped backslash",
			raw:  `WIFI:T:WPA;S:Back\\slash;P:pw;;`,
			want: Payload{SSID: `Back\slash`, Password: "pw", Security: "WPA"},
		},
		{
			name: "backslash before unescapable char kept verbatim",
			raw:  `WIFI:T:WPA;S:a\bc;P:pw;;`,
			want: Payload{SSID: `a\bc`, Password: "pw", Security: "WPA"},
		},
		{
			name: "trailing field without closing semicolon",
			raw:  "WIFI:T:WPA;S:Home;P:tail",
			want: Payload{SSID: "Home", Password: "tail", Security: "WPA"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePayload(tt.raw)
			if err != nil {
				t.Fatalf("ParsePayload(%q): %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("ParsePayload(%q) = %+v, want %+v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParsePayload_Errors(t *testing.T) {
	if _, err := ParsePayload("MECARD:N:Doe;;"); !errors.Is(err, ErrNotWiFi) {
		t.Errorf("non-WiFi payload: want ErrNotWiFi, got %v", err)
	}
	if _, err := ParsePayload("http://example.com"); !errors.Is(err, ErrNotWiFi) {
		t.Errorf("URL payload: want ErrNotWiFi, got %v", err)
	}
	if _, err := ParsePayload("WIFI:T:WPA;P:pw;;"); !errors.Is(err, ErrNoSSID) {
		t.Errorf("missing SSID: want ErrNoSSID, got %v", err)
	}
}

func TestNormalizeSecurity(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"WPA", "WPA"},
		{"wpa2", "WPA"},
		{"WPA3", "WPA"},
		{"wep", "WEP"},
		{"", "nopass"},
		{"NONE", "nopass"},
		{"nopass", "nopass"},
		{"SAE", "SAE"},
	}
	for _, tt := range tests {
		if got := NormalizeSecurity(tt.in); got != tt.want {
			t.Errorf("NormalizeSecurity(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPayloadMatches(t *testing.T) {
	p := Payload{SSID: "Home", Password: "secret", Security: "WPA"}
	r := ScanResult{Success: true, SSID: "Home", Password: "secret", Security: "WPA"}
	if !p.Matches(r) {
		t.Error("identical fields should match")
	}
	r.Password = "other"
	if p.Matches(r) {
		t.Error("differing password should not match")
	}
}

func TestScanMethodDefault(t *testing.T) {
	if got := (ScanResult{}).ScanMethod(); got != "image" {
		t.Errorf("empty method: want image, got %q", got)
	}
	if got := (ScanResult{Method: "webcam"}).ScanMethod(); got != "webcam" {
		t.Errorf("webcam method: want webcam, got %q", got)
	}
}
