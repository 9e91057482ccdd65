package config_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/contactform/pkg/config"
)

type successConfig struct {
	Name  string `env:"CFG_TEST_NAME" envDefault:"default_value"`
	Count int    `env:"CFG_TEST_COUNT" envDefault:"42"`
	Debug bool   `env:"CFG_TEST_DEBUG" envDefault:"true"`
}

type cachedConfig struct {
	Value string `env:"CFG_TEST_CACHED" envDefault:"first"`
}

type requiredConfig struct {
	Value string `env:"CFG_TEST_REQUIRED,required"`
}

type validatedConfig struct {
	Format string `env:"CFG_TEST_FORMAT" envDefault:"json"`
}

func (c *validatedConfig) Validate() error {
	if c.Format != "json" && c.Format != "yaml" {
		return errors.New("format must be json or yaml")
	}
	return nil
}

func TestParse(t *testing.T) {
	t.Run("reads environment", func(t *testing.T) {
		t.Setenv("CFG_TEST_NAME", "custom")
		t.Setenv("CFG_TEST_COUNT", "100")
		t.Setenv("CFG_TEST_DEBUG", "false")

		var cfg successConfig
		require.NoError(t, config.Parse(&cfg))
		assert.Equal(t, successConfig{Name: "custom", Count: 100, Debug: false}, cfg)
	})

	t.Run("applies defaults", func(t *testing.T) {
		var cfg successConfig
		require.NoError(t, config.Parse(&cfg))
		assert.Equal(t, successConfig{Name: "default_value", Count: 42, Debug: true}, cfg)
	})

	t.Run("missing required value", func(t *testing.T) {
		var cfg requiredConfig
		err := config.Parse(&cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("runs Validate", func(t *testing.T) {
		t.Setenv("CFG_TEST_FORMAT", "xml")

		var cfg validatedConfig
		err := config.Parse(&cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrInvalidConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		assert.ErrorIs(t, config.Parse[successConfig](nil), config.ErrNilPointer)
	})
}

func TestLoad(t *testing.T) {
	t.Run("caches per type", func(t *testing.T) {
		t.Setenv("CFG_TEST_CACHED", "first")

		var a cachedConfig
		require.NoError(t, config.Load(&a))
		assert.Equal(t, "first", a.Value)

		t.Setenv("CFG_TEST_CACHED", "second")

		var b cachedConfig
		require.NoError(t, config.Load(&b))
		assert.Equal(t, "first", b.Value)
	})

	t.Run("concurrent loads agree", func(t *testing.T) {
		type concurrentConfig struct {
			Value string `env:"CFG_TEST_CONCURRENT" envDefault:"same"`
		}

		var wg sync.WaitGroup
		for range 20 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				var cfg concurrentConfig
				assert.NoError(t, config.Load(&cfg))
				assert.Equal(t, "same", cfg.Value)
			}()
		}
		wg.Wait()
	})

	t.Run("caches failures", func(t *testing.T) {
		var cfg requiredConfig
		require.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)

		t.Setenv("CFG_TEST_REQUIRED", "now-set")
		assert.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		assert.ErrorIs(t, config.Load[cachedConfig](nil), config.ErrNilPointer)
	})
}
