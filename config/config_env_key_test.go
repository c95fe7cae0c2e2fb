package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"food/internal/domain/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"storage": map[string]any{
			"bucketUrl":     "",
			"publicBaseUrl": "",
		},
		"database": map[string]any{
			"autoMigrate": false,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "STORAGE_BUCKETURL", want: "storage.bucketUrl"},
		{envKey: "STORAGE_PUBLICBASEURL", want: "storage.publicBaseUrl"},
		{envKey: "DATABASE_AUTOMIGRATE", want: "database.autoMigrate"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	require.NotNil(t, cfg.Database)
	assert.Equal(t, constants.DatabaseDriverPostgres, cfg.Database.Driver)
	require.NotNil(t, cfg.JWT)
	assert.Equal(t, defaultJWTExpiration, cfg.JWT.Expiration)
	require.NotNil(t, cfg.Storage)
	assert.Equal(t, int64(defaultMaxUploadSize), cfg.Storage.MaxUploadSize)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.NotNil(t, cfg.Auth)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Database: &DatabaseConfig{Driver: constants.DatabaseDriverSQLite},
		JWT:      &JWTConfig{Secret: "s", Expiration: time.Hour},
	}

	applyDefaults(cfg)

	assert.Equal(t, constants.DatabaseDriverSQLite, cfg.Database.Driver)
	assert.Equal(t, time.Hour, cfg.JWT.Expiration)
	assert.Equal(t, "s", cfg.JWT.Secret)
}

func TestLoadWithEnv_OverridesYAMLWithEnvironment(t *testing.T) {
	dir := t.TempDir()
	content := []byte("jwt:\n  secret: from-yaml\n  expiration: 2h\ndatabase:\n  driver: postgres\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), content, 0o600))

	t.Chdir(dir)
	t.Setenv("DATABASE_DRIVER", "sqlite")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "from-yaml", cfg.JWT.Secret)
	assert.Equal(t, 2*time.Hour, cfg.JWT.Expiration)
	assert.Equal(t, constants.DatabaseDriverSQLite, cfg.Database.Driver)
}

func TestLoadDotEnv_MissingFileIsIgnored(t *testing.T) {
	assert.NoError(t, loadDotEnv(filepath.Join(t.TempDir(), ".env")))
}

func TestLoadDotEnv_ExportsVariables(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("FOOD_DOTENV_PROBE=loaded\n"), 0o600))
	t.Setenv("FOOD_DOTENV_PROBE", "")
	require.NoError(t, os.Unsetenv("FOOD_DOTENV_PROBE"))

	require.NoError(t, loadDotEnv(path))

	assert.Equal(t, "loaded", os.Getenv("FOOD_DOTENV_PROBE"))
}
