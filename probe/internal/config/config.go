package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

type Version struct {
	Major uint8
	Minor uint8
}

type MySQL struct {
	Host string
	Port int
	User string
	Pass string
	Name string
}

type Journal struct {
	Enabled bool
	Driver  string
	Path    string
	MySQL   MySQL
}

type AppConfig struct {
	Version  Version
	LogPath  string
	LogLevel string
	Journal  Journal
	History  int
}

// DefaultJournalPath is where the sqlite journal lives unless configured.
func DefaultJournalPath() string {
	return filepath.Join(os.TempDir(), "wsa-guard", "probe.db")
}

// Load reads path as YAML and applies WSA_PROBE_* environment overrides.
// A missing file leaves the defaults in place.
func Load(path string) (AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("wsa")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// defaults
	v.SetDefault("probe.version.major", 2)
	v.SetDefault("probe.version.minor", 2)
	v.SetDefault("probe.log.path", "")
	v.SetDefault("probe.log.level", "info")
	v.SetDefault("probe.journal.enabled", true)
	v.SetDefault("probe.journal.driver", "sqlite")
	v.SetDefault("probe.journal.path", DefaultJournalPath())
	v.SetDefault("probe.journal.mysql.host", "127.0.0.1")
	v.SetDefault("probe.journal.mysql.port", 3306)
	v.SetDefault("probe.journal.mysql.user", "root")
	v.SetDefault("probe.journal.mysql.pass", "")
	v.SetDefault("probe.journal.mysql.name", "wsa_guard")
	v.SetDefault("probe.history", 5)

	if path != "" {
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, os.ErrNotExist) {
			return AppConfig{}, fmt.Errorf("read config: %w", err)
		}
	}

	major, err := versionPart(v.GetInt("probe.version.major"), "major")
	if err != nil {
		return AppConfig{}, err
	}
	minor, err := versionPart(v.GetInt("probe.version.minor"), "minor")
	if err != nil {
		return AppConfig{}, err
	}

	driver := strings.ToLower(v.GetString("probe.journal.driver"))
	if driver != "sqlite" && driver != "mysql" {
		return AppConfig{}, fmt.Errorf("unsupported journal driver %q", driver)
	}

	cfg := AppConfig{
		Version:  Version{Major: major, Minor: minor},
		LogPath:  v.GetString("probe.log.path"),
		LogLevel: v.GetString("probe.log.level"),
		Journal: Journal{
			Enabled: v.GetBool("probe.journal.enabled"),
			Driver:  driver,
			Path:    v.GetString("probe.journal.path"),
			MySQL: MySQL{
				Host: v.GetString("probe.journal.mysql.host"),
				Port: v.GetInt("probe.journal.mysql.port"),
				User: v.GetString("probe.journal.mysql.user"),
				Pass: v.GetString("probe.journal.mysql.pass"),
				Name: v.GetString("probe.journal.mysql.name"),
			},
		},
		History: v.GetInt("probe.history"),
	}
	if cfg.History < 0 {
		cfg.History = 0
	}
	return cfg, nil
}

func versionPart(n int, name string) (uint8, error) {
	if n < 0 || n > 255 {
		return 0, fmt.Errorf("version %s %d out of range 0..255", name, n)
	}
	return uint8(n), nil
}
