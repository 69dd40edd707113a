package config

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// Config holds the steering tunables. AimDistance is declared and
// surfaced in the tuning UI but not used in force computation yet.
type Config struct {
	RotationForce   float64 `yaml:"rotation_force"`
	PropulsionForce float64 `yaml:"propulsion_force"`
	AimDistance     float64 `yaml:"aim_distance"`
	RotationMax     float64 `yaml:"rotation_max"`
}

// Default returns the stock tunables.
func Default() Config {
	return Config{
		RotationForce:   0.02,
		PropulsionForce: 50,
		AimDistance:     100,
		RotationMax:     0.05,
	}
}

// Load reads a yaml config file. Fields missing from the file keep
// their defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	return cfg, nil
}

// Store is a shared, versioned configuration cell. The tuning surface
// (UI, file watcher) writes it; the simulation reads a snapshot each
// tick.
type Store struct {
	mu      sync.RWMutex
	cfg     Config
	version uint64
}

// NewStore creates a store with an initial config.
func NewStore(cfg Config) *Store {
	return &Store{cfg: cfg}
}

// Get returns a snapshot of the current config.
func (s *Store) Get() Config {
	if s == nil {
		return Default()
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// Set replaces the config and bumps the version.
func (s *Store) Set(cfg Config) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = cfg
	s.version++
}

// Update applies fn to the config under the lock and bumps the
// version.
func (s *Store) Update(fn func(*Config)) {
	if s == nil || fn == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.cfg)
	s.version++
}

// Version returns the write counter. Readers can compare versions to
// detect tuning changes.
func (s *Store) Version() uint64 {
	if s == nil {
		return 0
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}
