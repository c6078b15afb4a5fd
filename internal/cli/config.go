package cli

import (
	"path/filepath"
	"reflect"
	"strings"

	"github.com/eagleviewent/go-utilities/errors"
	"github.com/eagleviewent/go-utilities/logger"
	"github.com/eagleviewent/go-utilities/money"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by LoadConfig,
// e.g. EVE_LOG_LEVEL.
const EnvPrefix = "EVE"

// Config holds the settings of the eveutil command.
type Config struct {
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// DefaultCurrency is used by money commands without --currency.
	DefaultCurrency string `mapstructure:"default_currency" default:"USD" validate:"omitempty,currency"`
	// Mask holds the defaults of the mask command.
	Mask MaskConfig `mapstructure:"mask"`
}

// MaskConfig holds the default masking widths.
type MaskConfig struct {
	Visible int `mapstructure:"visible" default:"4" validate:"gte=0"`
	Total   int `mapstructure:"total" default:"8" validate:"gte=0"`
}

// Currency parses DefaultCurrency.
func (c Config) Currency() (money.Currency, error) {
	return money.ParseCurrency(c.DefaultCurrency)
}

// LoadConfig loads configuration from EVE_ prefixed environment
// variables and from the .env file in dir, if any.
func LoadConfig(dir string) (*Config, error) {
	// A missing .env file is not an error.
	_ = godotenv.Load(filepath.Join(dir, ".env"))

	v := viper.New()

	bindValues(v, Config{}, "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the configured values.
func (c Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())

	if err := validate.RegisterValidation("currency", func(fl validator.FieldLevel) bool {
		_, err := money.ParseCurrency(fl.Field().String())

		return err == nil
	}); err != nil {
		return err
	}

	if err := validate.Struct(c); err != nil {
		return errors.NewInvalidArgument("config: %s", err)
	}

	return nil
}

// bindValues registers every mapstructure key of iface with its
// default tag value, so AutomaticEnv can resolve it.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)

			continue
		}

		v.SetDefault(key, field.Tag.Get("default"))
	}
}
