package capabilities

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

// detectWithConfig checks if a capability is available, using configured path if provided
func detectWithConfig(cap Capability, configuredPath string) *CapabilityInfo {
	config, ok := capabilityConfigs[cap]
	if !ok {
		return &CapabilityInfo{
			Name:      cap,
			Available: false,
			CheckedAt: time.Now(),
		}
	}

	info := &CapabilityInfo{
		Name:      cap,
		Available: false,
		CheckedAt: time.Now(),
	}

	// If a path is configured, try that first
	if configuredPath != "" {
		path := resolveConfiguredPath(configuredPath)
		if path != "" && isExecutable(path) {
			info.Path = path
			if config.verify && config.versionArg != "" {
				version := getVersion(path, config.versionArg)
				if version != "" {
					info.Available = true
					info.Version = version
					return info
				}
			} else {
				info.Available = true
				return info
			}
		}
	}

	// Auto-detect: try to find the binary
	for _, binary := range config.binaries {
		path := findBinary(binary)
		if path == "" {
			continue
		}

		info.Path = path

		// Verify by running the binary if configured
		if config.verify && config.versionArg != "" {
			version := getVersion(path, config.versionArg)
			if version != "" {
				info.Available = true
				info.Version = version
				return info
			}
		} else {
			info.Available = true
			return info
		}
	}

	return info
}

// resolveConfiguredPath resolves a configured path (can be just a name like "ffmpeg" or a full path)
func resolveConfiguredPath(configured string) string {
	if filepath.IsAbs(configured) {
		return configured
	}
	return findBinary(configured)
}

// findBinary searches for a binary in PATH and common install locations
func findBinary(name string) string {
	if path, err := exec.LookPath(name); err == nil {
		return path
	}

	if runtime.GOOS == "windows" && !strings.HasSuffix(name, ".exe") {
		if path, err := exec.LookPath(name + ".exe"); err == nil {
			return path
		}
	}

	home, _ := os.UserHomeDir()
	var locations []string
	if runtime.GOOS == "windows" {
		localAppData := os.Getenv("LOCALAPPDATA")
		locations = []string{
			filepath.Join(localAppData, "Programs"),
			filepath.Join(home, "scoop", "shims"),
			"C:\\ffmpeg\\bin",
		}
	} else {
		locations = []string{
			filepath.Join(home, ".local", "bin"),
			"/usr/local/bin",
			"/usr/bin",
			"/bin",
			"/opt/homebrew/bin",
			"/snap/bin",
		}
	}

	for _, dir := range locations {
		path := filepath.Join(dir, name)
		if isExecutable(path) {
			return path
		}
		if runtime.GOOS == "windows" && !strings.HasSuffix(name, ".exe") {
			pathExe := filepath.Join(dir, name+".exe")
			if isExecutable(pathExe) {
				return pathExe
			}
		}
	}

	return ""
}

// isExecutable checks if a file exists and is executable
func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	mode := info.Mode()
	if !mode.IsRegular() {
		return false
	}

	if runtime.GOOS == "windows" {
		ext := strings.ToLower(filepath.Ext(path))
		return ext == ".exe" || ext == ".cmd" || ext == ".bat" || ext == ".com"
	}

	return mode&0111 != 0
}

// getVersion runs the binary with version argument and returns the output
func getVersion(path, versionArg string) string {
	args := strings.Fields(versionArg)
	cmd := exec.Command(path, args...)
	output, err := cmd.Output()
	if err != nil {
		return ""
	}

	// Extract first line as version
	version := strings.TrimSpace(string(output))
	if idx := strings.Index(version, "\n"); idx > 0 {
		version = version[:idx]
	}

	return version
}
