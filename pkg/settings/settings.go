// Package settings manages persistent user settings for the ios2xlsx CLI.
package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// DefaultSSHPort is used when no port is configured.
const DefaultSSHPort = 22

// Settings holds persistent user preferences
type Settings struct {
	// OutputDir is where export writes the spreadsheet when -o is a bare name
	OutputDir string `json:"output_dir,omitempty"`

	// SSHUser is the default login for collect
	SSHUser string `json:"ssh_user,omitempty"`

	// SSHPort is the default port for collect
	SSHPort int `json:"ssh_port,omitempty"`

	// CanonicalKeys selects canonical interface-name matching by default
	CanonicalKeys bool `json:"canonical_keys,omitempty"`

	// LenientCDP accepts any whitespace before "Port ID" by default
	LenientCDP bool `json:"lenient_cdp,omitempty"`
}

// Keys lists the settings names accepted by Get and Set, in display order.
var Keys = []string{"output_dir", "ssh_user", "ssh_port", "canonical_keys", "lenient_cdp"}

// DefaultSettingsPath returns the default path for the settings file
func DefaultSettingsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "ios2xlsx_settings.json"
	}
	return filepath.Join(home, ".ios2xlsx", "settings.json")
}

// Load reads settings from the default location
func Load() (*Settings, error) {
	return LoadFrom(DefaultSettingsPath())
}

// LoadFrom reads settings from a specific path
func LoadFrom(path string) (*Settings, error) {
	s := &Settings{}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return s, nil
}

// Save writes settings to the default location
func (s *Settings) Save() error {
	return s.SaveTo(DefaultSettingsPath())
}

// SaveTo writes settings to a specific path
func (s *Settings) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// GetSSHPort returns the SSH port (with fallback)
func (s *Settings) GetSSHPort() int {
	if s.SSHPort > 0 {
		return s.SSHPort
	}
	return DefaultSSHPort
}

// OutputPath places name under OutputDir unless name already carries a
// directory or is absolute.
func (s *Settings) OutputPath(name string) string {
	if s.OutputDir == "" || filepath.IsAbs(name) || filepath.Dir(name) != "." {
		return name
	}
	return filepath.Join(s.OutputDir, name)
}

// Get returns the string form of a setting by key.
func (s *Settings) Get(key string) (string, error) {
	switch key {
	case "output_dir":
		return s.OutputDir, nil
	case "ssh_user":
		return s.SSHUser, nil
	case "ssh_port":
		if s.SSHPort == 0 {
			return "", nil
		}
		return strconv.Itoa(s.SSHPort), nil
	case "canonical_keys":
		return strconv.FormatBool(s.CanonicalKeys), nil
	case "lenient_cdp":
		return strconv.FormatBool(s.LenientCDP), nil
	}
	return "", unknownKey(key)
}

// Set assigns a setting from its string form.
func (s *Settings) Set(key, value string) error {
	switch key {
	case "output_dir":
		s.OutputDir = value
	case "ssh_user":
		s.SSHUser = value
	case "ssh_port":
		port, err := strconv.Atoi(value)
		if err != nil || port < 1 || port > 65535 {
			return fmt.Errorf("invalid ssh_port %q: must be 1-65535", value)
		}
		s.SSHPort = port
	case "canonical_keys", "lenient_cdp":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid %s %q: must be true or false", key, value)
		}
		if key == "canonical_keys" {
			s.CanonicalKeys = b
		} else {
			s.LenientCDP = b
		}
	default:
		return unknownKey(key)
	}
	return nil
}

// Clear resets all settings to defaults
func (s *Settings) Clear() {
	*s = Settings{}
}

func unknownKey(key string) error {
	return fmt.Errorf("unknown setting %q (valid: %s)", key, strings.Join(Keys, ", "))
}
