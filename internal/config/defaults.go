package config

import (
	_ "embed"
)

//go:embed defaults/termsnake.yaml
var defaultYAML []byte

// Default returns the built-in configuration, used when no config file is
// found (and as a last resort if the embedded YAML fails to parse).
func Default() Config {
	return Config{
		Theme: ThemeConfig{
			SnakeHead: "10",
			SnakeBody: "2",
			Food:      "9",
			Border:    "245",
			HUD:       "250",
		},
		Server: ServerConfig{
			Address:         ":23235",
			DBPath:          "~/.termsnake/scores.db",
			IdleTimeoutMins: 30,
		},
	}
}
