// Package config loads the price list settings file and the process
// environment.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the settings file. JSON files are accepted since JSON is
// valid YAML.
type Config struct {
	CompanyName     string     `yaml:"company_name"`
	Phone           string     `yaml:"phone"`
	Email           string     `yaml:"email"`
	Website         string     `yaml:"website"`
	Address         string     `yaml:"address"`
	Logo            string     `yaml:"logo"`
	TargetLanguages StringList `yaml:"target_language"`
	TargetTags      StringList `yaml:"target_tag"`
	PriceExpression string     `yaml:"price_expression"`
}

// DefaultCompanyName is used for the banner when none is configured.
const DefaultCompanyName = "Company Name"

// StringList decodes either a single scalar or a sequence of scalars.
type StringList []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *StringList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			*l = nil
			return nil
		}
		*l = StringList{node.Value}
		return nil
	case yaml.SequenceNode:
		var items []string
		if err := node.Decode(&items); err != nil {
			return err
		}
		*l = items
		return nil
	}
	return fmt.Errorf("line %d: expected string or list of strings", node.Line)
}

// Load reads and parses the settings file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %q: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse config %q: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes settings and applies defaults.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.CompanyName == "" {
		c.CompanyName = DefaultCompanyName
	}
	if len(c.TargetLanguages) == 0 {
		c.TargetLanguages = StringList{"default"}
	}
}
