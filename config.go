package metametric

import (
	"github.com/grokify/go-metametric/constraint"
	"github.com/grokify/go-metametric/normalize"
)

// Default matching-constraint and normalizer names, mirrored from the
// string tables in the specification (constraint.Parse and
// normalize.ParseName accept the same literals).
const (
	DefaultConstraint = "1:1"
	DefaultNormalizer = "none"
)

// Config holds module-wide default settings. It plays the same role the
// teacher's Config played for its HTTP client: a small value built once
// via NewConfig rather than global mutable state. Validate is the only
// function in this module that reads it; derive.Derive takes its
// constraint as an explicit argument and does not consult Config.
type Config struct {
	// Constraint is the default matching-constraint string. Validate
	// checks that it parses with constraint.Parse.
	Constraint string

	// Normalizer is the default normalizer string. Validate checks that
	// it parses with normalize.ParseName; derive.Derive does not apply it,
	// and derived metrics are returned unnormalized.
	Normalizer string

	// StrictLatentFields is a flag carried in the configuration only:
	// nothing in this module reads it, so derivation behaves the same
	// whether it is true or false. Defaults to false.
	StrictLatentFields bool
}

// NewConfig returns a Config with the specification's documented
// defaults: one-to-one matching, no normalization.
func NewConfig() *Config {
	return &Config{
		Constraint: DefaultConstraint,
		Normalizer: DefaultNormalizer,
	}
}

// Validate checks that Config's string fields parse to known enum
// values, returning a *ConfigError otherwise.
func (c *Config) Validate() error {
	if _, err := constraint.Parse(c.Constraint); err != nil {
		return err
	}
	if c.Normalizer != "none" && c.Normalizer != "" {
		if _, err := normalize.ParseName(c.Normalizer); err != nil {
			return err
		}
	}
	return nil
}
