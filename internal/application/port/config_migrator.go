package port

// MigrationResult contains the result of a config migration check.
type MigrationResult struct {
	// MissingKeys exist in the defaults but not in the user config.
	MissingKeys []string
	// UnknownKeys are set in the user config but no longer read.
	UnknownKeys []string
	// ConfigFile is the path to the user's config file.
	ConfigFile string
}

// KeyInfo contains metadata about a config key for display purposes.
type KeyInfo struct {
	// Key is the dot-notation key path (e.g., "gesture.threshold").
	Key string
	// Type is the kind of the value (e.g., "bool", "int", "string").
	Type string
	// DefaultValue is a string representation of the default value.
	DefaultValue string
}

// ConfigMigrator checks for and applies config migrations.
type ConfigMigrator interface {
	// CheckMigration reports keys the user config lacks or no longer needs.
	// Returns nil if no migration is needed (config file doesn't exist or is complete).
	CheckMigration() (*MigrationResult, error)

	// Migrate rewrites the user's config file with missing keys added.
	// Returns the list of keys that were changed.
	Migrate() ([]string, error)

	// GetKeyInfo returns detailed information about a config key.
	GetKeyInfo(key string) KeyInfo

	// GetConfigFile returns the path of the config file.
	GetConfigFile() string
}
