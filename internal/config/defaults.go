package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultYAML []byte

// DefaultConfig returns the hard-coded configuration. It matches the
// embedded defaults/platformer.yaml.
func DefaultConfig() Config {
	return Config{
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.8,
		},
		Controls: ControlsConfig{
			HoldTicks: 8,
		},
		Server: ServerConfig{
			Address:            ":23234",
			HostKey:            ".ssh/platformer_ed25519",
			IdleTimeoutMinutes: 30,
		},
		Log: LogConfig{
			Level: "info",
		},
		Pack: "classic",
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
