// Package config provides types for handling configuration parameters.
package config

import (
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/pkg/errors"

	serviceErrors "github.com/danilovkiri/dk_go_scytale/internal/service/errors"
)

// Config handles cipher-related and logging-related parameters.
type Config struct {
	CipherConfig *CipherConfig
	LogConfig    *LogConfig
}

// CipherConfig defines default cipher parameters and overwrites them with environment variables.
type CipherConfig struct {
	Step   int  `env:"SCYTALE_STEP" env-default:"4" env-description:"default number of columns"`
	Strict bool `env:"SCYTALE_STRICT" env-default:"true" env-description:"reject cipher text not divisible by step"`
}

// LogConfig retrieves logging parameters from environment.
type LogConfig struct {
	Level string `env:"LOG_LEVEL" env-default:"info" env-description:"zerolog level"`
}

// NewCipherConfig sets up a cipher configuration.
func NewCipherConfig() (*CipherConfig, error) {
	cfg := CipherConfig{}
	err := cleanenv.ReadEnv(&cfg)
	if err != nil {
		return nil, errors.Wrap(err, "reading cipher configuration")
	}
	return &cfg, nil
}

// NewLogConfig sets up a logging configuration.
func NewLogConfig() (*LogConfig, error) {
	cfg := LogConfig{}
	err := cleanenv.ReadEnv(&cfg)
	if err != nil {
		return nil, errors.Wrap(err, "reading log configuration")
	}
	return &cfg, nil
}

// NewDefaultConfiguration sets up a total configuration.
func NewDefaultConfiguration() (*Config, error) {
	cipherCfg, err := NewCipherConfig()
	if err != nil {
		return nil, err
	}
	logCfg, err := NewLogConfig()
	if err != nil {
		return nil, err
	}
	return &Config{
		CipherConfig: cipherCfg,
		LogConfig:    logCfg,
	}, nil
}

// Validate checks that the default step can be used for stride arithmetic.
func (c *CipherConfig) Validate() error {
	if c.Step <= 0 {
		return errors.Wrap(&serviceErrors.InvalidStepError{Step: c.Step}, "SCYTALE_STEP")
	}
	return nil
}

// Usage returns a description of the environment variables understood by Config.
func Usage() string {
	var all struct {
		CipherConfig
		LogConfig
	}
	text, err := cleanenv.GetDescription(&all, nil)
	if err != nil {
		return ""
	}
	return text
}
