// Package config handles configuration loading and management.
package config

// Config holds all engine settings.
type Config struct {
	Nav     NavConfig     `yaml:"nav"`
	Game    GameConfig    `yaml:"game"`
	Logging LoggingConfig `yaml:"logging"`
}

// NavConfig holds navmesh baking settings.
type NavConfig struct {
	// Tag marks scene nodes that carry navmesh source geometry.
	// Matching is a case-insensitive substring test on the node name.
	Tag string `yaml:"tag"`

	// CacheDir is where baked navmeshes are written as .nav files.
	CacheDir string `yaml:"cache_dir"`

	// CacheEnabled controls whether baked navmeshes are persisted.
	CacheEnabled bool `yaml:"cache_enabled"`
}

// GameConfig holds gameplay movement settings.
type GameConfig struct {
	Gravity      float32 `yaml:"gravity"`       // Vertical acceleration, negative is down
	JumpDuration float32 `yaml:"jump_duration"` // Seconds of upward jump impulse
	JumpSpeed    float32 `yaml:"jump_speed"`    // Peak vertical jump speed
	MoveSpeed    float32 `yaml:"move_speed"`    // Horizontal speed in units per second
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Nav: NavConfig{
			Tag:          "[navmesh]",
			CacheDir:     "cache",
			CacheEnabled: true,
		},
		Game: GameConfig{
			Gravity:      -0.5,
			JumpDuration: 0.23,
			JumpSpeed:    10.0,
			MoveSpeed:    6.0,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
