package config

import (
	"github.com/pterm/pterm"
)

// StringValue reads key from the merged selected profile as a string.
// A missing key returns fallback; a value of the wrong type logs a warning
// and returns fallback.
func (c *Config) StringValue(key, fallback string) string {
	value, ok := c.Profile()[key]
	if !ok {
		return fallback
	}
	s, ok := value.(string)
	if !ok {
		pterm.Warning.Printfln("expected string for config key %q in profile %q; ignoring %v",
			key, c.profileName, value)
		return fallback
	}
	return s
}

// StringArrayValue reads key as a list of strings. A scalar string is
// promoted to a one-element list. A nil fallback resolves to an empty list.
func (c *Config) StringArrayValue(key string, fallback []string) []string {
	if fallback == nil {
		fallback = []string{}
	}
	value, ok := c.Profile()[key]
	if !ok {
		return fallback
	}

	switch v := value.(type) {
	case string:
		return []string{v}
	case []any:
		result := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				pterm.Warning.Printfln("expected strings for config key %q in profile %q; ignoring %v",
					key, c.profileName, value)
				return fallback
			}
			result = append(result, s)
		}
		return result
	default:
		pterm.Warning.Printfln("expected string or string list for config key %q in profile %q; ignoring %v",
			key, c.profileName, value)
		return fallback
	}
}

// BoolValue reads key as a boolean, falling back on missing or mistyped
// values.
func (c *Config) BoolValue(key string, fallback bool) bool {
	value, ok := c.Profile()[key]
	if !ok {
		return fallback
	}
	b, ok := value.(bool)
	if !ok {
		pterm.Warning.Printfln("expected boolean for config key %q in profile %q; ignoring %v",
			key, c.profileName, value)
		return fallback
	}
	return b
}

// IntValue reads key as an integer, falling back on missing or mistyped
// values.
func (c *Config) IntValue(key string, fallback int) int {
	value, ok := c.Profile()[key]
	if !ok {
		return fallback
	}
	switch v := value.(type) {
	case int:
		return v
	case int64:
		return int(v)
	default:
		pterm.Warning.Printfln("expected integer for config key %q in profile %q; ignoring %v",
			key, c.profileName, value)
		return fallback
	}
}
