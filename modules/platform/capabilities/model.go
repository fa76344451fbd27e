package capabilities

import "time"

// Capability represents an external tool capability
type Capability string

// Available capabilities
const (
	CapFFmpeg  Capability = "ffmpeg"  // Video encoder (clip generation)
	CapFFprobe Capability = "ffprobe" // Media inspector (clip verification)
)

// AllCapabilities lists all capabilities to detect
var AllCapabilities = []Capability{
	CapFFmpeg,
	CapFFprobe,
}

// CapabilityInfo holds information about a detected capability
type CapabilityInfo struct {
	Name      Capability // Capability name
	Available bool       // Whether the tool is available
	Path      string     // Full path to the executable
	Version   string     // Detected version (if available)
	CheckedAt time.Time  // When this capability was last checked
}

// capabilityConfig defines how to detect each capability
type capabilityConfig struct {
	name       Capability
	binaries   []string // Possible binary names to search
	versionArg string   // Argument to get version (e.g., "-version")
	verify     bool     // Whether to verify by running the binary
}

// capabilityConfigs defines detection configuration for each capability
var capabilityConfigs = map[Capability]capabilityConfig{
	CapFFmpeg: {
		name:       CapFFmpeg,
		binaries:   []string{"ffmpeg"},
		versionArg: "-version",
		verify:     true,
	},
	CapFFprobe: {
		name:       CapFFprobe,
		binaries:   []string{"ffprobe"},
		versionArg: "-version",
		verify:     true,
	},
}
