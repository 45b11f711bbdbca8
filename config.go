package main

import (
	"errors"

	"github.com/spf13/viper"
)

const (
	defaultRoot      = "../GoRogue"
	defaultExtension = ".cs"
	configName       = ".xrefstrip"
)

// stripConfig is the file-configurable subset of the tool's behavior. Flags
// override anything loaded here.
type stripConfig struct {
	Extension string   `mapstructure:"extension"`
	Prefixes  []string `mapstructure:"prefixes"`
	Include   []string `mapstructure:"include"`
}

// loadConfig resolves settings from an explicit config file, or from an
// optional .xrefstrip.yaml next to the tree being rewritten. A missing
// implicit file is not an error; a missing explicit one is.
func loadConfig(root, explicit string) (stripConfig, error) {
	v := viper.New()
	v.SetDefault("extension", defaultExtension)
	v.SetDefault("prefixes", defaultPrefixes)

	if explicit != "" {
		v.SetConfigFile(explicit)
		if err := v.ReadInConfig(); err != nil {
			return stripConfig{}, err
		}
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(root)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return stripConfig{}, err
			}
		}
	}

	var cfg stripConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return stripConfig{}, err
	}
	return cfg, nil
}
