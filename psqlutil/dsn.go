package psqlutil

import (
	"fmt"

	"github.com/eagleviewent/go-utilities/errors"
	"github.com/go-playground/validator/v10"
)

// Connection defaults.
const (
	DefaultPort    = "5432"
	DefaultSSLMode = "disable"
)

// ConnectionConfig is a PostgreSQL connection configuration.
type ConnectionConfig struct {
	Host     string `mapstructure:"host" validate:"required"`
	Port     string `mapstructure:"port" validate:"omitempty,numeric"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"name" validate:"required"`
	SSLMode  string `mapstructure:"sslmode" validate:"omitempty,oneof=disable allow prefer require verify-ca verify-full"`
	TimeZone string `mapstructure:"timezone"`
}

// Validate checks that the host and database name are set and that
// the port and sslmode, when given, are usable.
func (c ConnectionConfig) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errors.NewInvalidArgument("connection config: %s", err)
	}

	return nil
}

// DSN returns a PostgreSQL Data Source Name. An empty port or sslmode
// falls back to the defaults.
func (c ConnectionConfig) DSN() string {
	port := c.Port
	if port == "" {
		port = DefaultPort
	}

	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = DefaultSSLMode
	}

	dsn := fmt.Sprintf(
		"host=%s "+
			"user=%s "+
			"password=%s "+
			"dbname=%s "+
			"port=%s "+
			"sslmode=%s",
		c.Host,
		c.User,
		c.Password,
		c.DBName,
		port,
		sslMode,
	)

	if c.TimeZone != "" {
		dsn += " TimeZone=" + c.TimeZone
	}

	return dsn
}
