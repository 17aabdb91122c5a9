package registry_test

import (
	"os"
	"path/filepath"
	"testing"

	"diff-analyzer/core/registry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDescriptorFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "descriptors.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeDescriptorFile(t, `{
		"ED_Grunt": {"Rarity": 2, "CanBeUsedInEncounters": true},
		"ED_Wasp":  {"EnemyClass": {"AssetPathName": "/Game/Mods/Elytras/Wasp"}}
	}`)

	reg, err := registry.Load(path)
	require.NoError(t, err)

	assert.True(t, reg.Has("ED_Grunt"))
	assert.True(t, reg.Has("ED_Wasp"))
	assert.False(t, reg.Has("ED_Nobody"))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := registry.Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := writeDescriptorFile(t, `{"ED_Broken": `)
	_, err := registry.Load(path)
	assert.Error(t, err)
}

func TestRegistry_AttributePresence(t *testing.T) {
	reg := registry.Registry{
		"ED_X": {
			"Rarity":  float64(0),
			"Flag":    false,
			"Nothing": nil,
		},
	}

	tests := []struct {
		name    string
		attr    string
		wantOK  bool
		wantVal any
	}{
		{"zero is present", "Rarity", true, float64(0)},
		{"false is present", "Flag", true, false},
		{"null is absent", "Nothing", false, nil},
		{"missing key is absent", "Ghost", false, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			val, ok := reg.Attribute("ED_X", tt.attr)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantVal, val)
		})
	}

	_, ok := reg.Attribute("ED_Missing", "Rarity")
	assert.False(t, ok)
}

func TestRegistry_AssetPath(t *testing.T) {
	reg := registry.Registry{
		"ED_Tagged":   {"EnemyClass": map[string]any{"AssetPathName": "/Game/Mods/Donnie/Bug"}},
		"ED_EmptyStr": {"EnemyClass": map[string]any{"AssetPathName": ""}},
		"ED_NoClass":  {"Rarity": float64(1)},
	}

	path, ok := reg.AssetPath("ED_Tagged")
	assert.True(t, ok)
	assert.Equal(t, "/Game/Mods/Donnie/Bug", path)

	_, ok = reg.AssetPath("ED_EmptyStr")
	assert.False(t, ok)

	_, ok = reg.AssetPath("ED_NoClass")
	assert.False(t, ok)

	_, ok = reg.AssetPath("ED_Missing")
	assert.False(t, ok)
}
