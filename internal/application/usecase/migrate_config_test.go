package usecase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/chatshell/internal/application/port"
	"github.com/bnema/chatshell/internal/application/usecase"
)

type fakeMigrator struct {
	result     *port.MigrationResult
	checkErr   error
	applied    []string
	migrateErr error
	migrated   int
}

func (f *fakeMigrator) CheckMigration() (*port.MigrationResult, error) {
	return f.result, f.checkErr
}

func (f *fakeMigrator) Migrate() ([]string, error) {
	f.migrated++
	return f.applied, f.migrateErr
}

func (*fakeMigrator) GetKeyInfo(key string) port.KeyInfo {
	return port.KeyInfo{Key: key, Type: "int", DefaultValue: "1"}
}

func (*fakeMigrator) GetConfigFile() string {
	return "/tmp/chatshell/config.toml"
}

func TestMigrateConfig_CheckUpToDate(t *testing.T) {
	uc := usecase.NewMigrateConfigUseCase(&fakeMigrator{})

	out, err := uc.Check(testContext())
	require.NoError(t, err)
	assert.False(t, out.NeedsMigration)
	assert.Empty(t, out.MissingKeys)
	assert.Equal(t, "/tmp/chatshell/config.toml", out.ConfigFile)
}

func TestMigrateConfig_CheckMissingKeys(t *testing.T) {
	uc := usecase.NewMigrateConfigUseCase(&fakeMigrator{result: &port.MigrationResult{
		MissingKeys: []string{"gesture.throttle_ms"},
		UnknownKeys: []string{"gesture.velocity"},
		ConfigFile:  "/tmp/chatshell/config.toml",
	}})

	out, err := uc.Check(testContext())
	require.NoError(t, err)
	assert.True(t, out.NeedsMigration)
	require.Len(t, out.MissingKeys, 1)
	assert.Equal(t, "gesture.throttle_ms", out.MissingKeys[0].Key)
	assert.Equal(t, "int", out.MissingKeys[0].Type)
	assert.Equal(t, []string{"gesture.velocity"}, out.UnknownKeys)
}

func TestMigrateConfig_CheckError(t *testing.T) {
	uc := usecase.NewMigrateConfigUseCase(&fakeMigrator{checkErr: errors.New("bad toml")})

	_, err := uc.Check(testContext())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad toml")
}

func TestMigrateConfig_Execute(t *testing.T) {
	m := &fakeMigrator{applied: []string{"gesture.throttle_ms"}}
	uc := usecase.NewMigrateConfigUseCase(m)

	out, err := uc.Execute(testContext())
	require.NoError(t, err)
	assert.Equal(t, []string{"gesture.throttle_ms"}, out.AppliedKeys)
	assert.Equal(t, 1, m.migrated)

	m.migrateErr = errors.New("read-only")
	_, err = uc.Execute(testContext())
	assert.ErrorContains(t, err, "migrate config: read-only")
}
