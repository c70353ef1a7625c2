package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// configName is the config file name without extension.
const configName = ".pqcheck"

// configType is the config file format.
const configType = "yaml"

// envPrefix is the environment variable prefix for pqcheck settings.
const envPrefix = "PQCHECK"

// envKeySeparator is the nested key separator in environment variable names.
const envKeySeparator = "_"

// globalFlagKeys maps flags shared by every command to their keys.
var globalFlagKeys = map[string]string{
	"impl":       "impl",
	"log-level":  "log.level",
	"log-format": "log.format",
}

// Load loads configuration from file, env vars, flags and defaults.
// If configPath is non-empty, it is used as the explicit config file path.
// Otherwise, the config file is searched in CWD and $HOME.
// Missing config file is not an error; defaults are used.
//
// Flags in flags which were set on the command line override every other
// source. Flags other than the global ones bind to keys under section,
// e.g. --size binds to check.size when section is "check".
func Load(configPath, section string, flags *pflag.FlagSet) (*Config, error) {
	viperCfg := viper.New()

	applyDefaults(viperCfg)

	viperCfg.SetConfigType(configType)
	viperCfg.SetEnvPrefix(envPrefix)
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", envKeySeparator))
	viperCfg.AutomaticEnv()

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName(configName)
		viperCfg.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viperCfg.AddConfigPath(home)
		}
	}

	if flags != nil {
		bindErr := bindFlags(viperCfg, section, flags)
		if bindErr != nil {
			return nil, fmt.Errorf("bind flags: %w", bindErr)
		}
	}

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFound) {
			return nil, fmt.Errorf("read config: %w", readErr)
		}
	}

	var cfg Config

	unmarshalErr := viperCfg.Unmarshal(&cfg)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("unmarshal config: %w", unmarshalErr)
	}

	validateErr := cfg.Validate()
	if validateErr != nil {
		return nil, fmt.Errorf("validate config: %w", validateErr)
	}

	return &cfg, nil
}

func bindFlags(viperCfg *viper.Viper, section string, flags *pflag.FlagSet) error {
	var err error
	flags.VisitAll(func(f *pflag.Flag) {
		key, ok := globalFlagKeys[f.Name]
		if !ok {
			if section == "" {
				return
			}
			key = section + "." + strings.ReplaceAll(f.Name, "-", "_")
		}
		if bindErr := viperCfg.BindPFlag(key, f); bindErr != nil && err == nil {
			err = bindErr
		}
	})
	return err
}

func applyDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("impl", DefaultImpl)

	viperCfg.SetDefault("check.size", DefaultSize)
	viperCfg.SetDefault("check.seed", DefaultSeed)

	viperCfg.SetDefault("bench.size", DefaultBenchSize)
	viperCfg.SetDefault("bench.every", DefaultEvery)

	viperCfg.SetDefault("log.level", DefaultLogLevel)
	viperCfg.SetDefault("log.format", DefaultLogFormat)
}
