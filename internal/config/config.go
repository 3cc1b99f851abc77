// Package config resolves taskboard settings from flags, TASKBOARD_* environment
// variables, an optional <dir>/config.yaml and built-in defaults, in that order.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	EnvPrefix = "TASKBOARD"
	FileName  = "config.yaml"
)

type Config struct {
	Backend  string `validate:"omitempty,oneof=sqlite sqlite3 file json memory mem redis postgres postgresql pg"`
	DSN      string
	Key      string `validate:"required"`
	Format   string `validate:"omitempty,oneof=json edn yaml yml"`
	LogLevel string `validate:"omitempty,oneof=debug info warn error"`
	// LogFile, when set, receives log output instead of stderr. Relative paths are
	// resolved against the board dir.
	LogFile string
}

var defaults = map[string]any{
	"backend":  "sqlite",
	"dsn":      "",
	"key":      "taskboard-state",
	"format":   "json",
	"logLevel": "warn",
	"logFile":  "",
}

// envNames maps config keys to their environment variables.
var envNames = map[string]string{
	"backend":  EnvPrefix + "_BACKEND",
	"dsn":      EnvPrefix + "_DSN",
	"key":      EnvPrefix + "_KEY",
	"format":   EnvPrefix + "_FORMAT",
	"logLevel": EnvPrefix + "_LOG_LEVEL",
	"logFile":  EnvPrefix + "_LOG_FILE",
}

// flagNames maps config keys to persistent flag names.
var flagNames = map[string]string{
	"backend":  "backend",
	"dsn":      "dsn",
	"key":      "key",
	"format":   "format",
	"logLevel": "log-level",
}

var validate = validator.New()

// LoadDotEnv loads .env files best-effort. Variables already set win.
func LoadDotEnv(paths ...string) {
	for _, p := range paths {
		_ = godotenv.Load(p)
	}
}

// Load resolves the config for the board in dir. flags may be nil; only flags the
// user actually set override the environment and file.
func Load(fs afero.Fs, dir string, flags *pflag.FlagSet) (Config, error) {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	v := viper.New()
	v.SetFs(fs)
	for k, d := range defaults {
		v.SetDefault(k, d)
	}
	for k, env := range envNames {
		if err := v.BindEnv(k, env); err != nil {
			return Config{}, err
		}
	}

	if strings.TrimSpace(dir) != "" {
		path := filepath.Join(dir, FileName)
		if ok, _ := afero.Exists(fs, path); ok {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return Config{}, fmt.Errorf("read %s: %w", path, err)
			}
		}
	}

	if flags != nil {
		for k, name := range flagNames {
			f := flags.Lookup(name)
			if f == nil || !f.Changed {
				continue
			}
			v.Set(k, f.Value.String())
		}
	}

	cfg := Config{
		Backend:  strings.ToLower(strings.TrimSpace(v.GetString("backend"))),
		DSN:      strings.TrimSpace(v.GetString("dsn")),
		Key:      strings.TrimSpace(v.GetString("key")),
		Format:   strings.ToLower(strings.TrimSpace(v.GetString("format"))),
		LogLevel: strings.ToLower(strings.TrimSpace(v.GetString("logLevel"))),
		LogFile:  strings.TrimSpace(v.GetString("logFile")),
	}
	if cfg.LogFile != "" && !filepath.IsAbs(cfg.LogFile) && dir != "" {
		cfg.LogFile = filepath.Join(dir, cfg.LogFile)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: invalid value %q", strings.ToLower(e.Field()), e.Value()))
	}
	return fmt.Errorf("config: %s", strings.Join(msgs, "; "))
}
