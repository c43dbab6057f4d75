// Package config loads process settings for the listing client from a .env file,
// an optional YAML file and the environment.
package config

import (
	"io/fs"
	"os"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/goliatone/go-apimo/catalog"
	"github.com/goliatone/go-errors"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// PathEnv names the variable holding an optional YAML settings file.
const PathEnv = "APIMO_CONFIG"

// Settings holds every knob of a deployed client. Environment variables take
// precedence over the YAML file, which takes precedence over defaults.
type Settings struct {
	Provider string         `yaml:"provider" env:"APIMO_PROVIDER"`
	Token    string         `yaml:"token"    env:"APIMO_TOKEN"`
	BaseURL  string         `yaml:"base_url" env:"APIMO_BASE_URL" env-default:"https://api.apimo.pro"`
	Culture  catalog.Locale `yaml:"culture"  env:"APIMO_CULTURE"  env-default:"en"`

	// Transform resolves catalog codes to names. When false ids are rendered as is.
	Transform bool `yaml:"transform" env:"APIMO_TRANSFORM" env-default:"true"`

	Cache     CacheSettings     `yaml:"cache"`
	RateLimit RateLimitSettings `yaml:"rate_limit"`

	LogLevel string `yaml:"log_level" env:"APIMO_LOG_LEVEL" env-default:"info"`
}

type CacheSettings struct {
	// Driver is one of memory, filesystem, redis, sql or none.
	Driver     string        `yaml:"driver"     env:"APIMO_CACHE_DRIVER"     env-default:"memory"`
	Path       string        `yaml:"path"       env:"APIMO_CACHE_PATH"       env-default:"./cache/catalogs"`
	Expiration time.Duration `yaml:"expiration" env:"APIMO_CACHE_EXPIRATION" env-default:"168h"`
	RedisURL   string        `yaml:"redis_url"  env:"APIMO_REDIS_URL"`
	SQLDSN     string        `yaml:"sql_dsn"    env:"APIMO_SQL_DSN"`
}

type RateLimitSettings struct {
	Requests int           `yaml:"requests" env:"APIMO_RATE_REQUESTS" env-default:"10"`
	Interval time.Duration `yaml:"interval" env:"APIMO_RATE_INTERVAL" env-default:"1s"`
}

// Load reads envFiles (default .env) into the environment, then the YAML file named
// by APIMO_CONFIG when set, then environment variables, and validates the result.
// Missing env files are ignored.
func Load(envFiles ...string) (*Settings, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrap(err, errors.CategoryBadInput, "failed to read env file "+file)
		}
	}

	var s Settings
	if path := os.Getenv(PathEnv); path != "" {
		if err := cleanenv.ReadConfig(path, &s); err != nil {
			return nil, errors.Wrap(err, errors.CategoryBadInput, "failed to read settings file "+path)
		}
	} else if err := cleanenv.ReadEnv(&s); err != nil {
		return nil, errors.Wrap(err, errors.CategoryBadInput, "failed to read settings from environment")
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate reports every invalid setting as a single validation error.
func (s Settings) Validate() error {
	err := validation.ValidateStruct(&s,
		validation.Field(&s.Provider, validation.Required),
		validation.Field(&s.Token, validation.Required),
		validation.Field(&s.BaseURL, validation.Required, is.URL),
		validation.Field(&s.Culture, validation.Required, validation.By(validLocale)),
		validation.Field(&s.Cache),
		validation.Field(&s.RateLimit),
		validation.Field(&s.LogLevel, validation.In("debug", "info", "warn", "error")),
	)
	if err != nil {
		return errors.FromOzzoValidation(err, "invalid settings")
	}
	return nil
}

func (c CacheSettings) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Driver, validation.Required, validation.In("memory", "filesystem", "redis", "sql", "none")),
		validation.Field(&c.Expiration, validation.Min(time.Second)),
		validation.Field(&c.Path, validation.When(c.Driver == "filesystem", validation.Required)),
		validation.Field(&c.RedisURL, validation.When(c.Driver == "redis", validation.Required)),
		validation.Field(&c.SQLDSN, validation.When(c.Driver == "sql", validation.Required)),
	)
}

func (r RateLimitSettings) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Requests, validation.Min(1)),
		validation.Field(&r.Interval, validation.Min(time.Millisecond)),
	)
}

func validLocale(value any) error {
	if l, ok := value.(catalog.Locale); ok && !l.Valid() {
		return validation.NewError("validation_locale", "must be a supported culture")
	}
	return nil
}
