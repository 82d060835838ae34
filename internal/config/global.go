package config

import "sync"

// GlobalConfig is the process-wide configuration shared by all model
// constructions. Reads and updates may come from different goroutines.
type GlobalConfig struct {
	mu            sync.RWMutex
	modelDefaults ModelDefaultsData
}

// UpdateModelDefaults replaces the stored default-parameter data.
func (g *GlobalConfig) UpdateModelDefaults(data ModelDefaultsData) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.modelDefaults = data
}

// GetModelDefaults returns the stored default-parameter data. The returned
// map must be treated as read-only.
func (g *GlobalConfig) GetModelDefaults() ModelDefaultsData {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.modelDefaults
}

var global GlobalConfig

// UpdateModelDefaults replaces the process-wide default-parameter data.
func UpdateModelDefaults(data ModelDefaultsData) {
	global.UpdateModelDefaults(data)
}

// GetModelDefaults returns the process-wide default-parameter data.
func GetModelDefaults() ModelDefaultsData {
	return global.GetModelDefaults()
}
