// Package profile loads conversion profiles: small YAML documents that
// pre-set the converter options a team runs with, so nobody retypes
// thresholds per session.
package profile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile mirrors the YAML profile document.
type Profile struct {
	MinSatellites int  `yaml:"min_satellites"`
	GPSCleanup    bool `yaml:"gps_cleanup"`
}

// Default returns the stock conversion profile.
func Default() Profile {
	return Profile{
		MinSatellites: 4,
		GPSCleanup:    true,
	}
}

// Load reads a profile file. Fields the document omits keep their default
// values.
func Load(path string) (Profile, error) {
	p := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("read profile: %w", err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("parse profile %s: %w", path, err)
	}
	if p.MinSatellites < 0 {
		return p, fmt.Errorf("profile %s: min_satellites must not be negative", path)
	}
	return p, nil
}
