// Copyright (c) 2026 PrivacyOps.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package precheck

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Rules holds the score thresholds that partition 0..MaxScore into the
// three outcome bands. RecommendedAt and RequiredAt are inclusive lower
// bounds: score >= RequiredAt is required, score >= RecommendedAt is
// recommended, anything below is not required.
type Rules struct {
	RecommendedAt int `yaml:"recommended_at"`
	RequiredAt    int `yaml:"required_at"`
}

// DefaultRules are the product-agreed thresholds.
func DefaultRules() Rules {
	return Rules{RecommendedAt: 6, RequiredAt: 13}
}

// Validate checks that the thresholds partition the score range with no
// gaps or overlaps.
func (r Rules) Validate() error {
	if r.RecommendedAt <= 0 || r.RecommendedAt >= r.RequiredAt || r.RequiredAt > MaxScore {
		return fmt.Errorf("thresholds must satisfy 0 < recommended_at (%d) < required_at (%d) <= %d",
			r.RecommendedAt, r.RequiredAt, MaxScore)
	}
	return nil
}

// OutcomeFor maps a score to its outcome band.
func (r Rules) OutcomeFor(score int) Outcome {
	switch {
	case score >= r.RequiredAt:
		return OutcomeRequired
	case score >= r.RecommendedAt:
		return OutcomeRecommended
	default:
		return OutcomeNotRequired
	}
}

// LoadRules reads threshold overrides from a YAML file. An empty path
// returns the defaults.
func LoadRules(path string) (Rules, error) {
	rules := DefaultRules()
	if path == "" {
		return rules, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Rules{}, fmt.Errorf("failed to read rules file: %w", err)
	}
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return Rules{}, fmt.Errorf("failed to parse rules file: %w", err)
	}
	if err := rules.Validate(); err != nil {
		return Rules{}, fmt.Errorf("invalid rules in %s: %w", path, err)
	}

	return rules, nil
}
