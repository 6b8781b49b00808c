package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/bnema/chatshell/internal/application/port"
)

// Migrator implements port.ConfigMigrator: it compares a user config file
// with the defaults and fills in what is missing.
type Migrator struct {
	configFile   string
	defaultViper *viper.Viper
}

// NewMigrator creates a migrator for configFile.
func NewMigrator(configFile string) *Migrator {
	v := viper.New()
	v.SetConfigType("toml")
	(&Manager{viper: v}).setDefaults()

	return &Migrator{configFile: configFile, defaultViper: v}
}

// CheckMigration implements port.ConfigMigrator. It returns nil when the
// file does not exist or already has every key.
func (m *Migrator) CheckMigration() (*port.MigrationResult, error) {
	userKeys, err := m.userKeys()
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	defaults := m.defaultKeys()
	missing := make([]string, 0)
	for _, key := range defaults {
		if !userKeys[key] {
			missing = append(missing, key)
		}
	}

	known := make(map[string]bool, len(defaults))
	for _, key := range defaults {
		known[key] = true
	}
	unknown := make([]string, 0)
	for key := range userKeys {
		if !known[key] {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)

	if len(missing) == 0 && len(unknown) == 0 {
		return nil, nil
	}
	return &port.MigrationResult{
		MissingKeys: missing,
		UnknownKeys: unknown,
		ConfigFile:  m.configFile,
	}, nil
}

// Migrate implements port.ConfigMigrator. User values are kept, missing keys
// get their defaults and unknown keys are dropped.
func (m *Migrator) Migrate() ([]string, error) {
	result, err := m.CheckMigration()
	if err != nil || result == nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigFile(m.configFile)
	v.SetConfigType("toml")
	(&Manager{viper: v}).setDefaults()
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var merged Config
	if err := v.Unmarshal(&merged); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := WriteConfig(&merged, m.configFile); err != nil {
		return nil, err
	}

	applied := append([]string(nil), result.MissingKeys...)
	for _, key := range result.UnknownKeys {
		applied = append(applied, fmt.Sprintf("(removed: %s)", key))
	}
	return applied, nil
}

// GetKeyInfo implements port.ConfigMigrator.
func (m *Migrator) GetKeyInfo(key string) port.KeyInfo {
	value := m.defaultViper.Get(key)
	if value == nil {
		return port.KeyInfo{Key: key, Type: "unknown", DefaultValue: "unknown"}
	}
	return port.KeyInfo{
		Key:          key,
		Type:         typeName(value),
		DefaultValue: formatValue(value),
	}
}

// GetConfigFile returns the file the migrator works on.
func (m *Migrator) GetConfigFile() string {
	return m.configFile
}

func (m *Migrator) defaultKeys() []string {
	keys := m.defaultViper.AllKeys()
	sort.Strings(keys)
	return keys
}

// userKeys returns the dot-notation keys set in the user file.
func (m *Migrator) userKeys() (map[string]bool, error) {
	data, err := os.ReadFile(m.configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	keys := make(map[string]bool)
	flattenKeys(raw, "", keys)
	return keys, nil
}

func flattenKeys(data map[string]any, prefix string, keys map[string]bool) {
	for k, v := range data {
		key := strings.ToLower(k)
		if prefix != "" {
			key = prefix + "." + key
		}
		if nested, ok := v.(map[string]any); ok {
			flattenKeys(nested, key, keys)
			continue
		}
		keys[key] = true
	}
}

func typeName(value any) string {
	switch reflect.TypeOf(value).Kind() {
	case reflect.Bool:
		return "bool"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return "int"
	case reflect.Float32, reflect.Float64:
		return "float"
	case reflect.String:
		return "string"
	default:
		return "unknown"
	}
}

func formatValue(value any) string {
	if s, ok := value.(string); ok {
		if s == "" {
			return `""`
		}
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprintf("%v", value)
}
