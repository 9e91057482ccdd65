// Package config loads application configuration from environment variables
// into tagged Go structs.
//
// It wraps github.com/joho/godotenv, which reads an optional .env file from
// the working directory, and github.com/caarlos0/env/v11, which maps
// variables onto struct fields through `env` and `envDefault` tags.
//
// Load parses each config type once per process and hands out copies of the
// cached value. Parse skips the cache, which is handy in tests that set
// variables with t.Setenv. Structs that implement Validator are checked right
// after parsing.
//
//	type AppConfig struct {
//		Name     string `env:"APP_NAME" envDefault:"contactform"`
//		LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg AppConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
package config
