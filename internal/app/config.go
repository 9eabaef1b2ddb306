package app

import (
	"fmt"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	defaultMaxSubnets = 64
	defaultMaxHosts   = 32
)

// Config describes a report run: output limits, per-network defaults and
// the list of networks to inspect.
type Config struct {
	Output   OutputConfig      `koanf:"output"`
	Defaults networkViewConfig `koanf:"defaults"`
	Networks []NetworkConfig   `koanf:"networks"`
}

// OutputConfig caps the enumeration sections so that a /8 in the
// configuration cannot produce a gigabyte of report.
type OutputConfig struct {
	MaxSubnets int `koanf:"max_subnets"`
	MaxHosts   int `koanf:"max_hosts"`
}

// NetworkConfig is a single [[networks]] entry.
type NetworkConfig struct {
	networkViewConfig `koanf:",squash"`
	CIDR              string `koanf:"cidr"`
}

type networkViewConfig struct {
	Views        *[]string `koanf:"views"`
	SubnetPrefix *uint8    `koanf:"subnet_prefix"`
}

// GetViews returns the entry's views, falling back to the defaults
// section, then to a plain summary.
func (c networkViewConfig) GetViews(defaults networkViewConfig) []string {
	if c.Views != nil {
		return *c.Views
	}
	if defaults.Views != nil {
		return *defaults.Views
	}
	return []string{"summary"}
}

// GetSubnetPrefix returns the target prefix length for the subnets view.
// ok is false when neither the entry nor the defaults set one.
func (c networkViewConfig) GetSubnetPrefix(defaults networkViewConfig) (uint8, bool) {
	if c.SubnetPrefix != nil {
		return *c.SubnetPrefix, true
	}
	if defaults.SubnetPrefix != nil {
		return *defaults.SubnetPrefix, true
	}
	return 0, false
}

// ParseConfig loads and unmarshals the TOML configuration at path.
func ParseConfig(path string) (Config, error) {
	var config Config

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return config, fmt.Errorf("error loading config: %w", err)
	}

	if err := k.Unmarshal("", &config); err != nil {
		return config, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if config.Output.MaxSubnets <= 0 {
		config.Output.MaxSubnets = defaultMaxSubnets
	}
	if config.Output.MaxHosts <= 0 {
		config.Output.MaxHosts = defaultMaxHosts
	}
	if len(config.Networks) == 0 {
		return config, fmt.Errorf("config: no networks to inspect")
	}

	return config, nil
}
