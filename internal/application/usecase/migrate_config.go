package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/chatshell/internal/application/port"
	"github.com/bnema/chatshell/internal/logging"
)

// CheckConfigMigrationOutput holds the result of the migration check.
type CheckConfigMigrationOutput struct {
	// NeedsMigration is true if there are missing or unknown keys.
	NeedsMigration bool
	// MissingKeys contains info about each missing key.
	MissingKeys []port.KeyInfo
	// UnknownKeys are user keys that are no longer read.
	UnknownKeys []string
	// ConfigFile is the path to the config file.
	ConfigFile string
}

// MigrateConfigOutput holds the result of the migration.
type MigrateConfigOutput struct {
	// AppliedKeys contains the keys that were added or removed.
	AppliedKeys []string
	// ConfigFile is the path to the config file.
	ConfigFile string
}

// MigrateConfigUseCase handles config migration operations.
type MigrateConfigUseCase struct {
	migrator port.ConfigMigrator
}

// NewMigrateConfigUseCase creates a new migrate config use case.
func NewMigrateConfigUseCase(migrator port.ConfigMigrator) *MigrateConfigUseCase {
	return &MigrateConfigUseCase{migrator: migrator}
}

// Check reports what a migration would change.
func (uc *MigrateConfigUseCase) Check(ctx context.Context) (*CheckConfigMigrationOutput, error) {
	log := logging.FromContext(ctx)

	result, err := uc.migrator.CheckMigration()
	if err != nil {
		log.Warn().Err(err).Msg("config migration check failed")
		return nil, fmt.Errorf("check config migration: %w", err)
	}

	if result == nil {
		log.Debug().Msg("config is up to date, no migration needed")
		return &CheckConfigMigrationOutput{ConfigFile: uc.migrator.GetConfigFile()}, nil
	}

	keyInfos := make([]port.KeyInfo, 0, len(result.MissingKeys))
	for _, key := range result.MissingKeys {
		keyInfos = append(keyInfos, uc.migrator.GetKeyInfo(key))
	}

	log.Debug().
		Int("missing_keys", len(result.MissingKeys)).
		Int("unknown_keys", len(result.UnknownKeys)).
		Str("config_file", result.ConfigFile).
		Msg("config migration check completed")

	return &CheckConfigMigrationOutput{
		NeedsMigration: true,
		MissingKeys:    keyInfos,
		UnknownKeys:    result.UnknownKeys,
		ConfigFile:     result.ConfigFile,
	}, nil
}

// Execute rewrites the config file with the missing keys filled in.
func (uc *MigrateConfigUseCase) Execute(ctx context.Context) (*MigrateConfigOutput, error) {
	log := logging.FromContext(ctx)
	configFile := uc.migrator.GetConfigFile()

	applied, err := uc.migrator.Migrate()
	if err != nil {
		log.Error().Err(err).Msg("config migration failed")
		return nil, fmt.Errorf("migrate config: %w", err)
	}

	if len(applied) > 0 {
		log.Info().
			Int("applied_keys", len(applied)).
			Str("config_file", configFile).
			Msg("config migration completed")
	}

	return &MigrateConfigOutput{AppliedKeys: applied, ConfigFile: configFile}, nil
}
