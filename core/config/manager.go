package config

import (
	"fmt"
	"os"
	"sync/atomic"
	"unsafe"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file consulted when no path is given.
const DefaultPath = "restyle.yaml"

// Manager holds the active configuration behind an atomic pointer, so
// readers never see a half-loaded config during Reload.
type Manager struct {
	configPtr unsafe.Pointer
	path      string
}

// NewManager creates a Manager reading from the given file path. An empty
// path means DefaultPath. The manager starts with defaults; call Load to
// pick up the file and environment.
func NewManager(path string) *Manager {
	if path == "" {
		path = DefaultPath
	}

	m := &Manager{path: path}
	atomic.StorePointer(&m.configPtr, unsafe.Pointer(DefaultConfig()))
	return m
}

// Get returns the active configuration.
func (m *Manager) Get() *Config {
	return (*Config)(atomic.LoadPointer(&m.configPtr))
}

// Path returns the config file path this manager reads.
func (m *Manager) Path() string {
	return m.path
}

// Load builds a fresh config from defaults, overlays the file when it
// exists, then applies environment overrides, and swaps it in.
func (m *Manager) Load() error {
	cfg := DefaultConfig()

	if err := loadYAMLFile(m.path, cfg); err != nil {
		return fmt.Errorf("config file: %w", err)
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("environment: %w", err)
	}

	atomic.StorePointer(&m.configPtr, unsafe.Pointer(cfg))
	return nil
}

// Reload rebuilds the configuration from the same sources.
func (m *Manager) Reload() error {
	return m.Load()
}

func loadYAMLFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, cfg)
}
