package config

import (
	"os"

	"github.com/pelletier/go-toml"
)

const (
	BuildVersion = "v0.1.3"

	DefaultDigits = 100
)

type Custom struct {
	Precision struct {
		Digits int `toml:"digits"`
	} `toml:"precision"`
	Log struct {
		Level   int    `toml:"level"`
		Filter  string `toml:"filter"`
		Limiter int    `toml:"limiter"`
	} `toml:"log"`
}

func Initialize(file string) (*Custom, error) {
	f, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	var config Custom
	err = toml.Unmarshal(f, &config)
	if err != nil {
		return nil, err
	}
	if config.Precision.Digits == 0 {
		config.Precision.Digits = DefaultDigits
	}
	if config.Log.Level == 0 {
		config.Log.Level = 2
	}
	return &config, nil
}
