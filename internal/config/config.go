// Package config provides YAML-based configuration for the termsnake
// platform: UI theme colors and server settings. Gameplay values (grid
// size, tick period, food reward) are compile-time constants on purpose
// and do not appear here.
package config

// Config is the root configuration document.
type Config struct {
	Theme  ThemeConfig  `yaml:"theme"`
	Server ServerConfig `yaml:"server"`
}

// ThemeConfig holds ANSI 256-color codes for the rendered elements.
type ThemeConfig struct {
	SnakeHead string `yaml:"snake_head"`
	SnakeBody string `yaml:"snake_body"`
	Food      string `yaml:"food"`
	Border    string `yaml:"border"`
	HUD       string `yaml:"hud"`
}

// ServerConfig holds settings for the SSH server and score storage.
type ServerConfig struct {
	Address         string `yaml:"address"`
	HostKeyPath     string `yaml:"host_key_path"`
	DBPath          string `yaml:"db_path"`
	IdleTimeoutMins int    `yaml:"idle_timeout_mins"`
}
