// Package config loads backend configuration: the target runtime version
// and the set of disabled stages. Feature lowerings gate themselves on the
// target version the same way the package resolver gates on dependency
// constraints.
package config

import (
	"fmt"
	"os"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"
)

// staticCallsConstraint is the minimum target runtime version that supports
// direct static dispatch of annotated members.
const staticCallsConstraint = ">=1.2.0"

// Config is the backend configuration.
type Config struct {
	// TargetVersion is the runtime version the emitted objects must run on.
	TargetVersion string `yaml:"target_version"`
	// DisabledStages lists pipeline stages skipped for this run.
	DisabledStages []string `yaml:"disabled_stages"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{TargetVersion: "1.4.0"}
}

// Load reads a YAML configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if _, err := cfg.targetVersion(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) targetVersion() (*semver.Version, error) {
	v, err := semver.NewVersion(c.TargetVersion)
	if err != nil {
		return nil, fmt.Errorf("config: invalid target_version %q: %w", c.TargetVersion, err)
	}
	return v, nil
}

// StaticCallsEnabled reports whether the target runtime supports direct
// static dispatch, so the static-dispatch lowering may run.
func (c *Config) StaticCallsEnabled() (bool, error) {
	v, err := c.targetVersion()
	if err != nil {
		return false, err
	}
	constraint, err := semver.NewConstraint(staticCallsConstraint)
	if err != nil {
		return false, err
	}
	return constraint.Check(v), nil
}
