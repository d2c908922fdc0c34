package config

// DefaultConfig returns the configuration used when no config file
// exists. The upload limits mirror what the decode backend enforces.
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			BaseURL:           "http://127.0.0.1:5000",
			TimeoutSeconds:    60,
			RequestsPerSecond: 2,
		},
		Upload: UploadConfig{
			MaxFileBytes: 16 * 1024 * 1024,
			AllowedTypes: []string{"png", "jpeg", "jpg", "gif", "bmp", "webp"},
		},
		Display: DisplayConfig{
			RefreshRateMS: 250,
			MaskLength:    12,
		},
	}
}
