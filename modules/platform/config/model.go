package config

// Config represents the main configuration
type Config struct {
	Version  string    `yaml:"version"`
	Settings *Settings `yaml:"settings"`
}

// LoggerConfig represents logger configuration
type LoggerConfig struct {
	Level     string `yaml:"level" json:"level"`             // debug, info, warn, error
	FilePath  string `yaml:"file_path" json:"file_path"`     // Log file path (empty = stderr only)
	MaxSizeMB int    `yaml:"max_size_mb" json:"max_size_mb"` // Max log file size before rotation
}

// DefaultLoggerConfig returns default logger configuration
func DefaultLoggerConfig() *LoggerConfig {
	return &LoggerConfig{
		Level:     "info",
		FilePath:  "",
		MaxSizeMB: 10,
	}
}

// Settings represents global application settings
type Settings struct {
	// Persisted state record (JSON). Empty = ~/.engagedeck/state.json
	DataPath string `yaml:"data_path,omitempty" json:"data_path,omitempty"`

	// Export targets
	SnapshotPath string `yaml:"snapshot_path,omitempty" json:"snapshot_path,omitempty"`
	CardsDir     string `yaml:"cards_dir,omitempty" json:"cards_dir,omitempty"`

	// UI settings
	Theme       string `yaml:"theme" json:"theme"`               // dark, light
	RefreshRate int    `yaml:"refresh_rate" json:"refresh_rate"` // ms, watch mode

	// Logger configuration
	Logger *LoggerConfig `yaml:"logger,omitempty" json:"logger,omitempty"`

	// External executables configuration
	Executables *ExecutablesConfig `yaml:"executables,omitempty" json:"executables,omitempty"`
}

// ExecutablesConfig allows overriding auto-detected executable paths
// Empty string = auto-detect, explicit path = use that path
type ExecutablesConfig struct {
	FFmpeg  string `yaml:"ffmpeg,omitempty" json:"ffmpeg,omitempty"`
	FFprobe string `yaml:"ffprobe,omitempty" json:"ffprobe,omitempty"`
}

// GetLoggerConfig returns the logger config, applying defaults
func (s *Settings) GetLoggerConfig() *LoggerConfig {
	if s.Logger != nil {
		return s.Logger
	}
	return DefaultLoggerConfig()
}

// DefaultSettings returns default configuration settings
func DefaultSettings() *Settings {
	return &Settings{
		DataPath:     "",
		SnapshotPath: "docs/dashboard_snapshot.svg",
		CardsDir:     "docs",
		Theme:        "dark",
		RefreshRate:  5000, // 5 seconds
		Logger:       DefaultLoggerConfig(),
	}
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:  "1.0",
		Settings: DefaultSettings(),
	}
}

// Validate validates the configuration
func (c *Config) Validate() []string {
	var errors []string

	if c.Settings == nil {
		errors = append(errors, "settings is required")
		return errors
	}

	if c.Settings.RefreshRate < 100 {
		errors = append(errors, "refresh_rate must be at least 100ms")
	}

	return errors
}
