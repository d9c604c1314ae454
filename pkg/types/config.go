package types

import (
	"errors"
	"slices"
)

// Search strategies accepted by Config.SearchStrategy.
const (
	StrategyLinear = "linear"
	StrategyBinary = "binary"
)

// Config holds the settings the CLI reads from config.yaml.
type Config struct {
	ImportFiles    []string `json:"import_files" yaml:"import_files" mapstructure:"import_files"`
	SearchStrategy string   `json:"search_strategy" yaml:"search_strategy" mapstructure:"search_strategy"`
}

// Config validation errors.
var (
	ErrStrategyUnknown = errors.New("unknown search strategy")
	ErrNotFound        = errors.New("contact not found")
)

var knownStrategies = []string{StrategyLinear, StrategyBinary}

// Validate checks that the Config is well-formed. An empty strategy is
// valid and means the default.
func (c Config) Validate() error {
	if c.SearchStrategy == "" {
		return nil
	}
	if !slices.Contains(knownStrategies, c.SearchStrategy) {
		return ErrStrategyUnknown
	}
	return nil
}
