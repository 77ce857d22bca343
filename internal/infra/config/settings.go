package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/YoshitsuguKoike/greet/internal/app/config"
	"github.com/YoshitsuguKoike/greet/internal/pkg/loglevel"
	"github.com/YoshitsuguKoike/greet/internal/pkg/namenorm"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// SettingFile is the name of the settings file inside the home directory.
const SettingFile = "setting.yaml"

// DefaultHome is used when GREET_HOME is unset.
const DefaultHome = ".greet"

// RawSettings mirrors setting.yaml. Nil fields are filled by applyDefaults.
type RawSettings struct {
	DefaultName *string `yaml:"default_name"`
	Normalize   *string `yaml:"normalize"`
	Format      *string `yaml:"format"`
	Strict      *bool   `yaml:"strict"`
	StderrLevel *string `yaml:"stderr_level"`
}

// ResolveHome returns GREET_HOME or DefaultHome.
func ResolveHome() string {
	if home := os.Getenv("GREET_HOME"); home != "" {
		return home
	}
	return DefaultHome
}

// LoadSettings reads baseDir/setting.yaml from afs.
// Priority: setting.yaml > defaults. A missing file is not an error.
func LoadSettings(afs afero.Fs, baseDir string) (*config.AppConfig, error) {
	settings := &RawSettings{}
	configSource := "default"
	settingPath := ""

	path := filepath.Join(baseDir, SettingFile)
	data, err := afero.ReadFile(afs, path)
	switch {
	case err == nil:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(settings); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		configSource = "yaml"
		settingPath = path
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	applyDefaults(settings)

	if err := validate(settings); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", path, err)
	}

	return config.NewAppConfig(
		baseDir,
		*settings.DefaultName,
		*settings.Normalize,
		*settings.Format,
		*settings.Strict,
		*settings.StderrLevel,
		configSource,
		settingPath,
	), nil
}

func applyDefaults(settings *RawSettings) {
	if settings.DefaultName == nil {
		v := "World"
		settings.DefaultName = &v
	}
	if settings.Normalize == nil {
		v := string(namenorm.ModeNone)
		settings.Normalize = &v
	}
	if settings.Format == nil {
		v := "text"
		settings.Format = &v
	}
	if settings.Strict == nil {
		v := false
		settings.Strict = &v
	}
	if settings.StderrLevel == nil {
		v := "warn"
		settings.StderrLevel = &v
	}
}

func validate(settings *RawSettings) error {
	if _, err := namenorm.ParseMode(*settings.Normalize); err != nil {
		return err
	}
	switch *settings.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown format %q (want text or json)", *settings.Format)
	}
	if _, err := loglevel.Parse(*settings.StderrLevel); err != nil {
		return err
	}
	return nil
}

// CreateDefaultSettings renders setting.yaml with every default filled in.
func CreateDefaultSettings() ([]byte, error) {
	settings := &RawSettings{}
	applyDefaults(settings)

	data, err := yaml.Marshal(settings)
	if err != nil {
		return nil, fmt.Errorf("failed to render default settings: %w", err)
	}
	return data, nil
}
