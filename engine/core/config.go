package core

import (
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

const DefaultLogPrefix = "gxmath 📐 "

// Config is the runtime configuration of the gxmath tools.
//
//	[log]
//	level = "debug"
//	prefix = "gxmath"
//	report_caller = true
//
//	[random]
//	seed = 42
type Config struct {
	Log    LogConfig    `toml:"log"`
	Random RandomConfig `toml:"random"`
}

type LogConfig struct {
	Level        string `toml:"level"`
	Prefix       string `toml:"prefix"`
	ReportCaller bool   `toml:"report_caller"`
}

type RandomConfig struct {
	// Seed for the process-wide generator, 0 seeds from the wall clock.
	Seed uint64 `toml:"seed"`
}

func DefaultConfig() Config {
	return Config{
		Log: LogConfig{
			Level:        "info",
			Prefix:       DefaultLogPrefix,
			ReportCaller: true,
		},
	}
}

// ParseConfig decodes a TOML document on top of DefaultConfig.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "parse config")
	}
	return cfg, nil
}

func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "load config %s", path)
	}
	return ParseConfig(data)
}
