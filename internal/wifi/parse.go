package wifi

import (
	"errors"
	"strings"
)

// Payload is the decoded content of a WIFI: QR string.
type Payload struct {
	SSID     string
	Password string
	Security string
	Hidden   bool
}

var (
	ErrNotWiFi = errors.New("not a WiFi QR payload")
	ErrNoSSID  = errors.New("no SSID in WiFi QR payload")
)

// ParsePayload decodes a WIFI:T:WPA;S:Name;P:pass;; string. The format
// escapes ; : , \ and " with a backslash; fields may appear in any
// order. Security is normalized and the password is cleared for open
// networks, matching what the decode backend does on its side.
func ParsePayload(raw string) (Payload, error) {
	if !strings.HasPrefix(raw, "WIFI:") {
		return Payload{}, ErrNotWiFi
	}

	fields := map[string]string{}
	var key string
	var val strings.Builder
	body := raw[len("WIFI:"):]

	for i := 0; i < len(body); i++ {
		c := body[i]
		switch {
		case c == ':' && key == "":
			key = val.String()
			val.Reset()
		case c == ';':
			if key != "" {
				fields[key] = val.String()
			}
			key = ""
			val.Reset()
		case c == '\\' && i+1 < len(body):
			next := body[i+1]
			if next == ';' || next == ':' || next == ',' || next == '\\' || next == '"' {
				val.WriteByte(next)
				i++
			} else {
				val.WriteByte(c)
			}
		default:
			val.WriteByte(c)
		}
	}
	// Trailing field without a closing semicolon.
	if key != "" && val.Len() > 0 {
		fields[key] = val.String()
	}

	sec, ok := fields["T"]
	if !ok {
		// A payload with no T field is assumed WPA, not open.
		sec = SecurityWPA
	}

	p := Payload{
		SSID:     strings.TrimSpace(fields["S"]),
		Password: strings.TrimSpace(fields["P"]),
		Security: NormalizeSecurity(sec),
		Hidden:   strings.EqualFold(strings.TrimSpace(fields["H"]), "true"),
	}
	if p.SSID == "" {
		return Payload{}, ErrNoSSID
	}
	if p.Security == SecurityNopass {
		p.Password = ""
	}
	return p, nil
}

// Matches reports whether a locally parsed payload agrees with the
// fields the backend returned for the same raw string.
func (p Payload) Matches(r ScanResult) bool {
	return p.SSID == r.SSID &&
		p.Password == r.Password &&
		p.Security == r.Security &&
		p.Hidden == r.Hidden
}
