// Package config handles loading, merging, and persisting hubctl profile
// configuration.
//
// Configuration lives in two YAML files: a user-edited config file and a
// CLI-managed file holding remembered defaults. Both map profile names to
// arbitrary key/value mappings. The two are merged per profile with the user
// file winning conflicting keys, and only the managed file is ever rewritten
// by the CLI.
//
// # File Layout
//
//	default:
//	  indent: 4
//	  defaultDevice: 26b245bf-0b95-4fb9-b23e-a3d1e5b3f68b
//	staging:
//	  token: ...
//
// A Config is loaded once at process start and passed around explicitly;
// there is a single handle per process and mutations rewrite the managed
// file in place.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Profile is one named set of configuration keys.
type Profile map[string]any

// ProfilesByName maps profile names to profiles.
type ProfilesByName map[string]Profile

// managedConfigHeader is written at the top of the managed file on every save.
const managedConfigHeader = `# Options in this file are managed by hubctl.
# Remembered defaults such as device or location choices are stored here.
# User-editable options belong in config.yaml instead.
`

// Config holds the loaded profile configuration.
type Config struct {
	profileName     string
	configFilename  string
	managedFilename string

	// Profiles holds the user-edited file contents.
	Profiles ProfilesByName
	// ManagedProfiles holds the CLI-managed file contents.
	ManagedProfiles ProfilesByName
	// MergedProfiles is Profiles merged over ManagedProfiles; it is
	// recomputed after every managed-file mutation.
	MergedProfiles ProfilesByName
}

// LoadOptions configures Load.
type LoadOptions struct {
	ConfigFilename        string
	ManagedConfigFilename string
	ProfileName           string
}

// Load reads both configuration files and computes the merged view.
// Missing files are treated as empty. Malformed files are a fatal error with
// every offending profile named in a single message.
func Load(opts LoadOptions) (*Config, error) {
	var problems []string

	profiles, err := readProfiles(opts.ConfigFilename, &problems)
	if err != nil {
		return nil, err
	}
	managed, err := readProfiles(opts.ManagedConfigFilename, &problems)
	if err != nil {
		return nil, err
	}

	if len(problems) > 0 {
		return nil, fmt.Errorf("malformed configuration: %s", strings.Join(problems, "; "))
	}

	profileName := opts.ProfileName
	if profileName == "" {
		profileName = "default"
	}

	return &Config{
		profileName:     profileName,
		configFilename:  opts.ConfigFilename,
		managedFilename: opts.ManagedConfigFilename,
		Profiles:        profiles,
		ManagedProfiles: managed,
		MergedProfiles:  mergeProfiles(profiles, managed),
	}, nil
}

// readProfiles reads one YAML profile file, collecting shape problems into
// problems. Read or parse failures are returned as errors directly.
func readProfiles(filename string, problems *[]string) (ProfilesByName, error) {
	if filename == "" {
		return ProfilesByName{}, nil
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return ProfilesByName{}, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", filename, err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", filename, err)
	}

	profiles := ProfilesByName{}
	var bad []string
	for name, value := range raw {
		entry, ok := value.(map[string]any)
		if !ok {
			bad = append(bad, name)
			continue
		}
		profiles[name] = Profile(entry)
	}
	if len(bad) > 0 {
		sort.Strings(bad)
		*problems = append(*problems, fmt.Sprintf("%s: profile(s) %s must be key/value mappings",
			filename, strings.Join(bad, ", ")))
	}

	return profiles, nil
}

// mergeProfiles merges user profiles over managed ones. For any profile and
// key present in both, the user value wins.
func mergeProfiles(user, managed ProfilesByName) ProfilesByName {
	merged := ProfilesByName{}
	for name, profile := range managed {
		copied := Profile{}
		for k, v := range profile {
			copied[k] = v
		}
		merged[name] = copied
	}
	for name, profile := range user {
		target, ok := merged[name]
		if !ok {
			target = Profile{}
			merged[name] = target
		}
		for k, v := range profile {
			target[k] = v
		}
	}
	return merged
}

// ProfileName returns the name of the currently selected profile.
func (c *Config) ProfileName() string {
	return c.profileName
}

// Profile returns the merged view of the currently selected profile.
// It is never nil.
func (c *Config) Profile() Profile {
	if profile, ok := c.MergedProfiles[c.profileName]; ok {
		return profile
	}
	return Profile{}
}

// SetKey stores a value under the current profile in the managed file and
// recomputes the merged view. The user file is never touched.
func (c *Config) SetKey(key string, value any) error {
	profile, ok := c.ManagedProfiles[c.profileName]
	if !ok {
		profile = Profile{}
		c.ManagedProfiles[c.profileName] = profile
	}
	profile[key] = value

	return c.saveManaged()
}

// ResetManagedKey deletes key from every managed profile. When predicate is
// non-nil, only entries for which it returns true are deleted. The managed
// file is rewritten and the merged view recomputed.
func (c *Config) ResetManagedKey(key string, predicate func(value any) bool) error {
	changed := false
	for _, profile := range c.ManagedProfiles {
		value, ok := profile[key]
		if !ok {
			continue
		}
		if predicate != nil && !predicate(value) {
			continue
		}
		delete(profile, key)
		changed = true
	}
	if !changed {
		return nil
	}

	return c.saveManaged()
}

// ResetManagedProfile deletes the entire managed entry for the named profile.
func (c *Config) ResetManagedProfile(name string) error {
	if _, ok := c.ManagedProfiles[name]; !ok {
		return nil
	}
	delete(c.ManagedProfiles, name)

	return c.saveManaged()
}

// saveManaged rewrites the managed file and recomputes the merged view.
func (c *Config) saveManaged() error {
	if c.managedFilename != "" {
		if err := os.MkdirAll(filepath.Dir(c.managedFilename), 0700); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}

		data, err := yaml.Marshal(c.ManagedProfiles)
		if err != nil {
			return fmt.Errorf("failed to marshal managed config: %w", err)
		}

		// Write with atomic rename so an interrupted save cannot corrupt
		// remembered defaults.
		tmpPath := c.managedFilename + ".tmp"
		if err := os.WriteFile(tmpPath, append([]byte(managedConfigHeader), data...), 0600); err != nil {
			return fmt.Errorf("failed to write managed config file: %w", err)
		}
		if err := os.Rename(tmpPath, c.managedFilename); err != nil {
			os.Remove(tmpPath)
			return fmt.Errorf("failed to save managed config file: %w", err)
		}
	}

	c.MergedProfiles = mergeProfiles(c.Profiles, c.ManagedProfiles)
	return nil
}
