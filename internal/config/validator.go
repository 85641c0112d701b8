package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator reports fields by their environment variable name
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("env"), ",")
		if name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// Validate checks ranges and the secrets the server cannot run without
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return errors.New(ErrMsgAPIKeyMissing)
	}
	if c.JWTSecret == "" {
		return errors.New(ErrMsgJWTSecretMissing)
	}

	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("%s: %w", ErrMsgInvalidConfig, err)
		}
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fmt.Sprintf("%s failed %s=%s", fe.Field(), fe.Tag(), fe.Param()))
		}
		return fmt.Errorf("%s: %s", ErrMsgInvalidConfig, strings.Join(fields, ", "))
	}
	return nil
}

// Warnings lists insecure settings that do not stop startup
func (c *Config) Warnings() []string {
	var warnings []string

	if c.DBPassword == ExampleDBPassword && c.Storage == StoragePostgres {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}
	if c.APIKey == ExampleAPIKey {
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}
	if c.JWTSecret == ExampleJWTSecret || len(c.JWTSecret) < 32 {
		warnings = append(warnings, "JWT_SECRET is short or an example value - generate one with: openssl rand -hex 64")
	}
	if c.Environment == EnvProduction && c.Storage == StorageMemory {
		warnings = append(warnings, "STORAGE=memory loses all games on restart")
	}

	return warnings
}
