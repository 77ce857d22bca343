package config

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeSetting(t *testing.T, afs afero.Fs, dir, content string) {
	t.Helper()
	require.NoError(t, afs.MkdirAll(dir, 0o755))
	require.NoError(t, afero.WriteFile(afs, filepath.Join(dir, SettingFile), []byte(content), 0o644))
}

func TestLoadSettings_Defaults(t *testing.T) {
	afs := afero.NewMemMapFs()

	cfg, err := LoadSettings(afs, ".greet")
	require.NoError(t, err)

	assert.Equal(t, ".greet", cfg.Home())
	assert.Equal(t, "World", cfg.DefaultName())
	assert.Equal(t, "none", cfg.Normalize())
	assert.Equal(t, "text", cfg.Format())
	assert.False(t, cfg.Strict())
	assert.Equal(t, "warn", cfg.StderrLevel())
	assert.Equal(t, "default", cfg.ConfigSource())
	assert.Empty(t, cfg.SettingPath())
}

func TestLoadSettings_FromYAML(t *testing.T) {
	afs := afero.NewMemMapFs()
	writeSetting(t, afs, "/home/u/.greet", `
default_name: Gopher
normalize: nfkc
format: json
strict: true
stderr_level: debug
`)

	cfg, err := LoadSettings(afs, "/home/u/.greet")
	require.NoError(t, err)

	assert.Equal(t, "Gopher", cfg.DefaultName())
	assert.Equal(t, "nfkc", cfg.Normalize())
	assert.Equal(t, "json", cfg.Format())
	assert.True(t, cfg.Strict())
	assert.Equal(t, "debug", cfg.StderrLevel())
	assert.Equal(t, "yaml", cfg.ConfigSource())
	assert.Equal(t, filepath.Join("/home/u/.greet", SettingFile), cfg.SettingPath())
}

func TestLoadSettings_PartialFileKeepsDefaults(t *testing.T) {
	afs := afero.NewMemMapFs()
	writeSetting(t, afs, ".greet", "default_name: Alice\n")

	cfg, err := LoadSettings(afs, ".greet")
	require.NoError(t, err)

	assert.Equal(t, "Alice", cfg.DefaultName())
	assert.Equal(t, "text", cfg.Format())
	assert.Equal(t, "warn", cfg.StderrLevel())
}

func TestLoadSettings_EmptyFile(t *testing.T) {
	afs := afero.NewMemMapFs()
	writeSetting(t, afs, ".greet", "")

	cfg, err := LoadSettings(afs, ".greet")
	require.NoError(t, err)
	assert.Equal(t, "World", cfg.DefaultName())
	assert.Equal(t, "yaml", cfg.ConfigSource())
}

func TestLoadSettings_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "malformed yaml", content: "default_name: [unterminated\n"},
		{name: "unknown key", content: "salutation: Hi\n"},
		{name: "bad format", content: "format: xml\n"},
		{name: "bad normalize", content: "normalize: nfd\n"},
		{name: "bad stderr level", content: "stderr_level: bogus\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			afs := afero.NewMemMapFs()
			writeSetting(t, afs, ".greet", tt.content)

			_, err := LoadSettings(afs, ".greet")
			require.Error(t, err)
			assert.Contains(t, err.Error(), SettingFile)
		})
	}
}

func TestResolveHome(t *testing.T) {
	t.Setenv("GREET_HOME", "")
	assert.Equal(t, DefaultHome, ResolveHome())

	t.Setenv("GREET_HOME", "/tmp/custom")
	assert.Equal(t, "/tmp/custom", ResolveHome())
}

func TestCreateDefaultSettings(t *testing.T) {
	data, err := CreateDefaultSettings()
	require.NoError(t, err)

	var raw RawSettings
	require.NoError(t, yaml.Unmarshal(data, &raw))

	require.NotNil(t, raw.DefaultName)
	assert.Equal(t, "World", *raw.DefaultName)
	require.NotNil(t, raw.Format)
	assert.Equal(t, "text", *raw.Format)
}
