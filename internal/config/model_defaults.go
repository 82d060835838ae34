/*
Copyright 2025 The hazardlab Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package config holds the per-model default-parameter configuration.
//
// Site investigations rarely supply every input a ground-motion model
// declares; regional presets (e.g. a reference shear-wave velocity) fill the
// gaps. The configuration file maps entry names to per-model value sets, with
// a "default" entry providing global base values that per-model entries
// override.
package config

import (
	"fmt"
	"sort"

	"github.com/go-logr/logr"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/hazardlab/groundmotion/internal/logging"
)

// GlobalDefaultsKey is the entry name holding base values for all models.
const GlobalDefaultsKey = "default"

// ModelDefaults is the default-parameter entry for a single model.
type ModelDefaults struct {
	// ModelID is the model abbreviation the entry applies to (empty in the
	// global defaults entry).
	ModelID string `yaml:"model_id,omitempty" mapstructure:"model_id"`

	// Values maps parameter names to default values. Numeric parameters take
	// numbers, categorical parameters take strings.
	Values map[string]any `yaml:"values,omitempty" mapstructure:"values"`
}

// ModelDefaultsData holds default-parameter entries for all models, keyed by
// model ID (plus the GlobalDefaultsKey entry).
type ModelDefaultsData map[string]ModelDefaults

// Validate checks that every default value is a scalar a parameter
// specification can resolve.
func (d *ModelDefaults) Validate() error {
	for name, v := range d.Values {
		switch v.(type) {
		case int, int32, int64, uint, uint32, uint64, float32, float64, string, bool:
		default:
			return fmt.Errorf("value for %q must be a number or string, got %T", name, v)
		}
	}
	return nil
}

// ParseModelDefaults parses default-parameter entries from raw YAML
// documents keyed by entry name. Invalid entries are logged and skipped, they
// never fail the parse. For duplicate model IDs the first key in sorted order
// wins.
func ParseModelDefaults(data map[string]string) ModelDefaultsData {
	out := make(ModelDefaultsData)
	if data == nil {
		return out
	}
	logger := logging.Log()

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	seen := make(map[string]string)
	for _, key := range keys {
		var md ModelDefaults
		if err := yaml.Unmarshal([]byte(data[key]), &md); err != nil {
			logger.Info("Failed to parse model defaults entry, skipping",
				"key", key, "error", err)
			continue
		}
		addEntry(out, seen, key, md, logger)
	}

	logger.V(logging.DEBUG).Info("Parsed model defaults", "modelCount", len(out))
	return out
}

// LoadModelDefaultsFile reads default-parameter entries from a configuration
// file (any format viper understands). Top-level keys are entry names.
func LoadModelDefaultsFile(path string) (ModelDefaultsData, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading model defaults config: %w", err)
	}
	logger := logging.Log()

	settings := v.AllSettings()
	keys := make([]string, 0, len(settings))
	for k := range settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(ModelDefaultsData)
	seen := make(map[string]string)
	for _, key := range keys {
		var md ModelDefaults
		if err := v.UnmarshalKey(key, &md); err != nil {
			logger.Info("Failed to decode model defaults entry, skipping",
				"key", key, "error", err)
			continue
		}
		addEntry(out, seen, key, md, logger)
	}

	logger.V(logging.DEBUG).Info("Loaded model defaults",
		"path", path, "modelCount", len(out))
	return out, nil
}

// addEntry validates and stores a parsed entry, applying the shared
// global-key, missing-id, and duplicate-id rules.
func addEntry(out ModelDefaultsData, seen map[string]string, key string, md ModelDefaults, logger logr.Logger) {
	if err := md.Validate(); err != nil {
		logger.Info("Invalid model defaults entry, skipping",
			"key", key, "error", err)
		return
	}

	if key == GlobalDefaultsKey {
		out[GlobalDefaultsKey] = md
		return
	}
	if md.ModelID == "" {
		logger.Info("Skipping model defaults entry without model_id field",
			"key", key)
		return
	}
	if winner, exists := seen[md.ModelID]; exists {
		logger.Info("Duplicate model_id in model defaults - first key wins",
			"model_id", md.ModelID,
			"winningKey", winner,
			"duplicateKey", key)
		return
	}
	seen[md.ModelID] = key
	out[md.ModelID] = md
}

// ForModel returns the effective defaults for a model: per-model values
// merged over the global defaults entry.
func (data ModelDefaultsData) ForModel(modelID string) ModelDefaults {
	defaults := data[GlobalDefaultsKey]
	md, hasModel := data[modelID]
	if !hasModel {
		return defaults
	}

	result := ModelDefaults{ModelID: md.ModelID}
	if len(defaults.Values) > 0 || len(md.Values) > 0 {
		result.Values = make(map[string]any, len(defaults.Values)+len(md.Values))
		for k, v := range defaults.Values {
			result.Values[k] = v
		}
		for k, v := range md.Values {
			result.Values[k] = v
		}
	}
	return result
}
