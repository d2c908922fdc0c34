package wifi

import "strings"

// Security is the normalized security mode of a network. The decode
// backend collapses the WPA family into a single value, so the client
// only ever sees these three plus whatever a future backend may add.
const (
	SecurityWPA    = "WPA"
	SecurityWEP    = "WEP"
	SecurityNopass = "nopass"
)

// ScanResult is the decode backend's response for both the image
// upload and the webcam capture paths. Fields the backend adds beyond
// these (frame counts, QR counts) are ignored.
type ScanResult struct {
	Success  bool   `json:"success"`
	SSID     string `json:"ssid"`
	Password string `json:"password"`
	Security string `json:"security"`
	Hidden   bool   `json:"hidden"`
	Method   string `json:"method"`
	RawData  string `json:"raw_data"`
	Error    string `json:"error"`
}

// ScanMethod returns how the image was obtained, defaulting to "image"
// when the backend omits the field.
func (r ScanResult) ScanMethod() string {
	if r.Method == "" {
		return "image"
	}
	return r.Method
}

// Credentials is the payload of a connect request, taken verbatim from
// the scan that produced it.
type Credentials struct {
	SSID     string `json:"ssid"`
	Password string `json:"password"`
	Security string `json:"security"`
}

// ConnectResult is the network-join backend's response.
type ConnectResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// NormalizeSecurity maps the raw T field of a WiFi QR payload to a
// Security value. The WPA family collapses to WPA; empty, NONE and
// NOPASS mean an open network. Unrecognized values pass through
// unchanged so the presenter can still render them.
func NormalizeSecurity(raw string) string {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "WPA", "WPA2", "WPA3":
		return SecurityWPA
	case "WEP":
		return SecurityWEP
	case "", "NONE", "NOPASS":
		return SecurityNopass
	default:
		return raw
	}
}
