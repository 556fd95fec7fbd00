// Package config loads the optional btbar settings file.
package config

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

const (
	SourceAuto           = "auto"
	SourceNone           = "none"
	SourceSystemProfiler = "system_profiler"
	SourceBlueZ          = "bluez"
	SourcePmset          = "pmset"
	SourceBattery        = "battery"
)

// Config holds everything btbar lets the user change. Battery thresholds
// and colors are fixed.
type Config struct {
	HostName        string         `toml:"host_name"`
	Font            string         `toml:"font"`
	AccessorySource string         `toml:"accessory_source"`
	HostSource      string         `toml:"host_source"`
	Adapter         string         `toml:"adapter"`
	Commands        CommandsConfig `toml:"commands"`
}

// CommandsConfig overrides the argv of the external utilities.
type CommandsConfig struct {
	SystemProfiler []string `toml:"system_profiler"`
	Pmset          []string `toml:"pmset"`
}

func Default() Config {
	return Config{
		HostName:        "host device",
		Font:            "Courier",
		AccessorySource: SourceAuto,
		HostSource:      SourceAuto,
		Adapter:         "/org/bluez/hci0",
		Commands: CommandsConfig{
			SystemProfiler: []string{"system_profiler", "SPBluetoothDataType", "-xml"},
			Pmset:          []string{"pmset", "-g", "batt"},
		},
	}
}

// Path returns ~/.config/btbar/config.toml (or under XDG_CONFIG_HOME).
// Returns empty string if home directory cannot be determined.
func Path() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "btbar", "config.toml")
}

// Load reads the config at path on top of the defaults. A missing file is not
// an error. On a parse error the defaults are returned with the error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	var file Config
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	cfg.merge(file)
	return cfg, cfg.Validate()
}

// Empty values in the file keep the defaults.
func (c *Config) merge(f Config) {
	if f.HostName != "" {
		c.HostName = f.HostName
	}
	if f.Font != "" {
		c.Font = f.Font
	}
	if f.AccessorySource != "" {
		c.AccessorySource = f.AccessorySource
	}
	if f.HostSource != "" {
		c.HostSource = f.HostSource
	}
	if f.Adapter != "" {
		c.Adapter = f.Adapter
	}
	if len(f.Commands.SystemProfiler) > 0 {
		c.Commands.SystemProfiler = f.Commands.SystemProfiler
	}
	if len(f.Commands.Pmset) > 0 {
		c.Commands.Pmset = f.Commands.Pmset
	}
}

func (c Config) Validate() error {
	switch c.AccessorySource {
	case SourceAuto, SourceNone, SourceSystemProfiler, SourceBlueZ:
	default:
		return errors.Errorf("unknown accessory_source %q", c.AccessorySource)
	}
	switch c.HostSource {
	case SourceAuto, SourceNone, SourcePmset, SourceBattery:
	default:
		return errors.Errorf("unknown host_source %q", c.HostSource)
	}
	return nil
}

// Resolve "auto" sources for the running OS.
func (c Config) Accessories() string {
	if c.AccessorySource != SourceAuto {
		return c.AccessorySource
	}
	if runtime.GOOS == "darwin" {
		return SourceSystemProfiler
	}
	return SourceBlueZ
}

func (c Config) Host() string {
	if c.HostSource != SourceAuto {
		return c.HostSource
	}
	if runtime.GOOS == "darwin" {
		return SourcePmset
	}
	return SourceBattery
}
