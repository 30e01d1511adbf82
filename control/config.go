// control/config.go
// Author: momentics <momentics@gmail.com>
//
// Layered configuration for ring store hosts: defaults, RINGSTORE_* environment
// variables and command-line flags, resolved through viper.

package control

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/momentics/hioload-ringstore/api"
)

// Configuration keys. Flag names match keys one to one.
const (
	KeyName     = "name"
	KeyCapacity = "capacity"
	KeyLogLevel = "log-level"
	KeyMetrics  = "metrics"
)

// Defaults.
const (
	DefaultName     = "demo"
	DefaultCapacity = 10
	DefaultLogLevel = "info"
	EnvPrefix       = "RINGSTORE"
)

// Config is the resolved host configuration.
type Config struct {
	Name     string
	Capacity int
	LogLevel string
	Metrics  bool
}

// NewViper returns a viper instance with defaults and environment binding.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyName, DefaultName)
	v.SetDefault(KeyCapacity, DefaultCapacity)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyMetrics, false)
}

// RegisterFlags declares the flags LoadConfig understands.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(KeyName, DefaultName, "store name used in logs and metrics")
	fs.Int(KeyCapacity, DefaultCapacity, "fixed slot count of the store")
	fs.String(KeyLogLevel, DefaultLogLevel, "log level (debug, info, warn, error)")
	fs.Bool(KeyMetrics, false, "print Prometheus metrics after the run")
}

// LoadConfig binds flags (may be nil) and resolves a validated Config.
func LoadConfig(v *viper.Viper, flags *pflag.FlagSet) (Config, error) {
	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Config{}, err
		}
	}
	cfg := Config{
		Name:     v.GetString(KeyName),
		Capacity: v.GetInt(KeyCapacity),
		LogLevel: v.GetString(KeyLogLevel),
		Metrics:  v.GetBool(KeyMetrics),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects unusable settings.
func (c Config) Validate() error {
	if c.Capacity < 1 {
		return api.NewError(api.ErrCodeInvalidArgument, "capacity must be at least 1").
			WithContext(KeyCapacity, c.Capacity)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return api.NewError(api.ErrCodeInvalidArgument, "unknown log level").
			WithContext(KeyLogLevel, c.LogLevel)
	}
	return nil
}
