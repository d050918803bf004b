// Package settings loads runtime settings from defaults, an optional config
// file, NEXUS_* environment variables and command-line flags, in increasing
// order of precedence.
package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	nexuserrors "github.com/alexisbeaulieu97/nexus/pkg/errors"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "NEXUS"

// Settings are the process-level knobs. Site copy lives in content files,
// not here.
type Settings struct {
	Addr            string        `mapstructure:"addr" validate:"required"`
	BaseURL         string        `mapstructure:"base_url" validate:"omitempty,url"`
	Content         string        `mapstructure:"content"`
	Watch           bool          `mapstructure:"watch"`
	RepoDir         string        `mapstructure:"repo_dir"`
	LogLevel        string        `mapstructure:"log_level" validate:"oneof=trace debug info warn error"`
	LogFormat       string        `mapstructure:"log_format" validate:"oneof=auto json console"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
	ContactURL      string        `mapstructure:"contact_url" validate:"required,url"`
}

var defaults = map[string]any{
	"addr":             ":8080",
	"base_url":         "",
	"content":          "",
	"watch":            false,
	"repo_dir":         ".",
	"log_level":        "info",
	"log_format":       "auto",
	"shutdown_timeout": 5 * time.Second,
	"contact_url":      "http://localhost:8080/api/contact",
}

// Keys lists every settings key.
func Keys() []string {
	keys := make([]string, 0, len(defaults))
	for k := range defaults {
		keys = append(keys, k)
	}
	return keys
}

// Load resolves settings. configFile may be empty; a named file that does
// not exist is an error. Flags are bound by their name with dashes turned
// into underscores, so --log-level sets log_level.
func Load(configFile string, flags *pflag.FlagSet) (*Settings, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		if _, err := os.Stat(configFile); errors.Is(err, fs.ErrNotExist) {
			return nil, nexuserrors.NewParseError(configFile, 0, err)
		}
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, nexuserrors.NewParseError(configFile, 0, err)
		}
	}

	if flags != nil {
		var bindErr error
		flags.VisitAll(func(f *pflag.Flag) {
			key := strings.ReplaceAll(f.Name, "-", "_")
			if _, known := defaults[key]; !known || bindErr != nil {
				return
			}
			bindErr = v.BindPFlag(key, f)
		})
		if bindErr != nil {
			return nil, fmt.Errorf("bind flags: %w", bindErr)
		}
	}

	s := &Settings{}
	if err := v.Unmarshal(s); err != nil {
		return nil, nexuserrors.NewValidationError("settings", err.Error(), err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

var validate = validator.New()

// Validate checks field constraints.
func (s *Settings) Validate() error {
	if err := validate.Struct(s); err != nil {
		var ves validator.ValidationErrors
		if errors.As(err, &ves) {
			fe := ves[0]
			field := strings.ToLower(fe.Field())
			return nexuserrors.NewValidationError(field, fmt.Sprintf("%s failed validation for tag '%s'", field, fe.Tag()), err)
		}
		return nexuserrors.NewValidationError("settings", err.Error(), err)
	}
	return nil
}

// HumanLogs reports whether logs should use the console format, resolving
// "auto" with isTTY.
func (s *Settings) HumanLogs(isTTY bool) bool {
	switch s.LogFormat {
	case "console":
		return true
	case "json":
		return false
	default:
		return isTTY
	}
}
