// Package config loads process-level defaults for the CLI. Per-run
// validation lives in domain/analysis; this layer only decides which values
// reach it.
package config

import (
	"strings"

	"varlens/domain/analysis"

	"github.com/spf13/viper"
)

// Settings are the process defaults feeding the CLI.
// Precedence: flags > environment (VARLENS_*) > config file > defaults.
type Settings struct {
	Threshold  float64 `mapstructure:"threshold"`
	OutputPath string  `mapstructure:"output_path"`
	LogLevel   string  `mapstructure:"log_level"`
}

// Load reads settings from the environment and an optional config file.
// cfgFile may be empty, in which case varlens.yaml in the working directory
// is used when present.
func Load(cfgFile string) (*Settings, error) {
	v := viper.New()
	v.SetEnvPrefix("VARLENS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("threshold", analysis.DefaultVariabilityThreshold)
	v.SetDefault("output_path", analysis.DefaultOutputPath)
	v.SetDefault("log_level", "info")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	} else {
		v.SetConfigName("varlens")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			// A missing default config file is fine; a broken one is not.
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, err
			}
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

// AnalysisConfig builds the validated per-run configuration from the
// settings.
func (s *Settings) AnalysisConfig() (analysis.Config, error) {
	return analysis.NewConfig(s.Threshold, s.OutputPath)
}
