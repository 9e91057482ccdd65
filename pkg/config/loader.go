package config

import (
	"errors"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Validator is implemented by config structs that check their own values
// after parsing.
type Validator interface {
	Validate() error
}

type cacheEntry struct {
	once  sync.Once
	value any
	err   error
}

var (
	cache      sync.Map // reflect.Type -> *cacheEntry
	dotenvOnce sync.Once
)

// Load fills v from the environment. The default .env file is read once per
// process if present. Each config type is parsed once; later calls copy the
// cached value, including a cached failure.
//
//	type ServerConfig struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	dotenvOnce.Do(func() {
		// A missing .env file is fine.
		_ = godotenv.Load()
	})

	key := reflect.TypeFor[T]()
	actual, _ := cache.LoadOrStore(key, &cacheEntry{})
	entry := actual.(*cacheEntry)

	entry.once.Do(func() {
		var cfg T
		if err := Parse(&cfg); err != nil {
			entry.err = err
			return
		}
		entry.value = cfg
	})

	if entry.err != nil {
		return entry.err
	}
	*v = entry.value.(T)
	return nil
}

// Parse fills v from the current environment without caching and without
// reading .env files. If v implements Validator it is validated as well.
func Parse[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	if val, ok := any(v).(Validator); ok {
		if err := val.Validate(); err != nil {
			return errors.Join(ErrInvalidConfig, err)
		}
	}
	return nil
}
