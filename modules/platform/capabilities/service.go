package capabilities

import (
	"strings"
	"sync"
)

// ConfiguredPaths holds user-configured executable paths (from YAML config)
// Empty string means auto-detect
type ConfiguredPaths struct {
	FFmpeg  string
	FFprobe string
}

// Service manages capability detection and caching
type Service struct {
	mu              sync.RWMutex
	capabilities    map[Capability]*CapabilityInfo
	configuredPaths *ConfiguredPaths
}

// NewService creates a new capabilities service and detects all capabilities
func NewService() *Service {
	s := &Service{
		capabilities: make(map[Capability]*CapabilityInfo),
	}
	s.detectAll()
	return s
}

// NewServiceWithConfig creates a service with user-configured paths
func NewServiceWithConfig(paths *ConfiguredPaths) *Service {
	s := &Service{
		capabilities:    make(map[Capability]*CapabilityInfo),
		configuredPaths: paths,
	}
	s.detectAll()
	return s
}

// getConfiguredPath returns the configured path for a capability, or empty if not configured
func (s *Service) getConfiguredPath(cap Capability) string {
	if s.configuredPaths == nil {
		return ""
	}
	switch cap {
	case CapFFmpeg:
		return s.configuredPaths.FFmpeg
	case CapFFprobe:
		return s.configuredPaths.FFprobe
	}
	return ""
}

// detectAll detects all capabilities
func (s *Service) detectAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, cap := range AllCapabilities {
		s.capabilities[cap] = detectWithConfig(cap, s.getConfiguredPath(cap))
	}
}

// Refresh re-runs detection for all capabilities
func (s *Service) Refresh() {
	s.detectAll()
}

// Get returns info for a single capability
func (s *Service) Get(cap Capability) *CapabilityInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.capabilities[cap]
}

// IsAvailable reports whether a capability was detected
func (s *Service) IsAvailable(cap Capability) bool {
	info := s.Get(cap)
	return info != nil && info.Available
}

// Path returns the detected executable path, or empty
func (s *Service) Path(cap Capability) string {
	info := s.Get(cap)
	if info == nil {
		return ""
	}
	return info.Path
}

// All returns all capability infos in detection order
func (s *Service) All() []*CapabilityInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	infos := make([]*CapabilityInfo, 0, len(AllCapabilities))
	for _, cap := range AllCapabilities {
		if info, ok := s.capabilities[cap]; ok {
			infos = append(infos, info)
		}
	}
	return infos
}

// Summary returns a one-line status per capability for diagnostics
func (s *Service) Summary() []string {
	var lines []string
	for _, info := range s.All() {
		if info.Available {
			version := info.Version
			if version == "" {
				version = "detected"
			}
			lines = append(lines, string(info.Name)+": "+version+" ("+info.Path+")")
		} else {
			lines = append(lines, string(info.Name)+": not found")
		}
	}
	return lines
}

// missing lists unavailable capabilities
func (s *Service) missing() []string {
	var names []string
	for _, info := range s.All() {
		if !info.Available {
			names = append(names, string(info.Name))
		}
	}
	return names
}

// MissingSummary returns a short description of missing tools, or empty
func (s *Service) MissingSummary() string {
	m := s.missing()
	if len(m) == 0 {
		return ""
	}
	return strings.Join(m, ", ")
}
