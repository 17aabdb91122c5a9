package config_test

import (
	"testing"

	"diff-analyzer/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "VanillaEnemyDescriptors.json", cfg.Registry.VanillaPath)
	assert.Equal(t, "ModDescriptors.json", cfg.Registry.ModPath)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("REGISTRY_VANILLA_PATH", "custom/Vanilla.json")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "custom/Vanilla.json", cfg.Registry.VanillaPath)
	assert.Equal(t, "debug", cfg.Log.Level)
}
