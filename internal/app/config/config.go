package config

// Config provides read-only access to application configuration.
// The app layer never sees where values came from beyond ConfigSource.
type Config interface {
	Home() string        // Base directory (GREET_HOME)
	DefaultName() string // Name greeted when none is given
	Normalize() string   // none, nfc or nfkc
	Format() string      // text or json
	Strict() bool        // Reject empty or malformed names
	StderrLevel() string // Stderr log level

	ConfigSource() string // "yaml" or "default"
	SettingPath() string  // Path to setting.yaml if loaded from file
}

// AppConfig is the concrete implementation of Config.
type AppConfig struct {
	home        string
	defaultName string
	normalize   string
	format      string
	strict      bool
	stderrLevel string

	configSource string
	settingPath  string
}

// NewAppConfig creates a new AppConfig.
func NewAppConfig(
	home, defaultName, normalize, format string,
	strict bool,
	stderrLevel, configSource, settingPath string,
) *AppConfig {
	return &AppConfig{
		home:         home,
		defaultName:  defaultName,
		normalize:    normalize,
		format:       format,
		strict:       strict,
		stderrLevel:  stderrLevel,
		configSource: configSource,
		settingPath:  settingPath,
	}
}

func (c *AppConfig) Home() string         { return c.home }
func (c *AppConfig) DefaultName() string  { return c.defaultName }
func (c *AppConfig) Normalize() string    { return c.normalize }
func (c *AppConfig) Format() string       { return c.format }
func (c *AppConfig) Strict() bool         { return c.strict }
func (c *AppConfig) StderrLevel() string  { return c.stderrLevel }
func (c *AppConfig) ConfigSource() string { return c.configSource }
func (c *AppConfig) SettingPath() string  { return c.settingPath }
