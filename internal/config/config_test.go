package config

import (
	"os"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_ValidateStorageDriver(t *testing.T) {
	tests := []struct {
		name        string
		driver      string
		storagePath string
		redisURL    string
		expectError bool
	}{
		{"SQLite with path", "sqlite", "ripple.db", "", false},
		{"SQLite without path", "sqlite", "", "", true},
		{"Redis with URL", "redis", "", "localhost:6379", false},
		{"Redis without URL", "redis", "", "", true},
		{"Memory", "memory", "", "", false},
		{"Unknown driver", "postgres", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Config{
				Port:          "8480",
				Env:           "development",
				StorageDriver: tt.driver,
				StoragePath:   tt.storagePath,
				RedisURL:      tt.redisURL,
			}

			err := c.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_ValidateRejectsNegativeLatency(t *testing.T) {
	c := &Config{
		Port:          "8480",
		StorageDriver: "memory",
		TrendingDelay: -1,
	}
	assert.Error(t, c.Validate())
}

func TestConfig_ValidateRequiresPort(t *testing.T) {
	c := &Config{StorageDriver: "memory"}
	assert.Error(t, c.Validate())
}

func TestLoadConfig_Defaults(t *testing.T) {
	defer viper.Reset()

	c, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8480", c.Port)
	assert.Equal(t, "sqlite", c.StorageDriver)
	assert.Equal(t, "ripple.db", c.StoragePath)
	assert.Equal(t, 1000, c.TrendingDelay)
	assert.False(t, c.TracingEnabled)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	defer os.Unsetenv("STORAGE_DRIVER")
	defer viper.Reset()

	os.Setenv("STORAGE_DRIVER", "memory")

	c, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "memory", c.StorageDriver)
}
