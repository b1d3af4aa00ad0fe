package config

import (
	"fmt"

	"github.com/kbukum/grantkit/errors"
	"github.com/kbukum/grantkit/grant"
	"github.com/kbukum/grantkit/logger"
	"github.com/kbukum/grantkit/validation"
)

// Config is the root permission configuration.
type Config struct {
	Name        string        `yaml:"name" mapstructure:"name"`
	Environment string        `yaml:"environment" mapstructure:"environment"`
	Debug       bool          `yaml:"debug" mapstructure:"debug"`
	Logging     logger.Config `yaml:"logging" mapstructure:"logging"`
	Rules       []Rule        `yaml:"rules" mapstructure:"rules"`
}

// Rule binds a set of target patterns to a raw grant mask. A rule applies to
// a resolution when any of its target patterns matches the requested target.
type Rule struct {
	Description string         `yaml:"description" mapstructure:"description"`
	Targets     []string       `yaml:"targets" mapstructure:"targets" validate:"required,min=1"`
	Grant       map[string]any `yaml:"grant" mapstructure:"grant" validate:"required"`
}

// ApplyDefaults applies default values to the configuration.
func (c *Config) ApplyDefaults() {
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Environment == "development" {
		c.Debug = true
	}
	c.Logging.ApplyDefaults()
}

// Validate validates the configuration. Zero rules is valid: it resolves
// every target to an empty grant.
func (c *Config) Validate() error {
	if err := c.Logging.Validate(); err != nil {
		return errors.InvalidConfig(err.Error())
	}
	v := validation.New()
	for i, rule := range c.Rules {
		for j, pattern := range rule.Targets {
			v.Custom(pattern != "", ruleField(i, j), "target pattern must be non-empty")
		}
	}
	if appErr := v.Validate(); appErr != nil {
		return appErr
	}
	for _, rule := range c.Rules {
		if err := validation.Validate(rule); err != nil {
			return err
		}
	}
	return nil
}

// Normalize rewrites numeric shorthand leaves of every rule's raw grant into
// numeric-range leaves. Applied once at load, before combination or checking.
func (c *Config) Normalize() {
	for i := range c.Rules {
		c.Rules[i].Grant = grant.NormalizeGrant(c.Rules[i].Grant)
	}
}

func ruleField(rule, target int) string {
	return fmt.Sprintf("rules[%d].targets[%d]", rule, target)
}
