//go:build unit

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("PORT", "8080")

		cfg, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, StoreDriverPostgres, cfg.Store.Driver)
		assert.Equal(t, 3, cfg.Tx.MaxRetries)
		assert.Equal(t, 20*time.Millisecond, cfg.Tx.BaseBackoff)
		assert.Empty(t, cfg.Kafka.Brokers)
		assert.Equal(t, "purchase-refunds", cfg.Kafka.RefundTopic)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("PORT", "8080")
		t.Setenv("STORE_DRIVER", "memory")
		t.Setenv("TX_MAX_RETRIES", "5")
		t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")

		cfg, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, StoreDriverMemory, cfg.Store.Driver)
		assert.Equal(t, 5, cfg.Tx.MaxRetries)
		assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	})

	t.Run("rejects unknown store driver", func(t *testing.T) {
		t.Setenv("PORT", "8080")
		t.Setenv("STORE_DRIVER", "mysql")

		_, err := LoadConfig()

		assert.ErrorContains(t, err, "STORE_DRIVER")
	})

	t.Run("seed file with memory driver", func(t *testing.T) {
		t.Setenv("PORT", "8080")
		t.Setenv("STORE_DRIVER", "memory")
		t.Setenv("STORE_SEED_FILE", "/etc/commerce/seed.json")

		cfg, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, "/etc/commerce/seed.json", cfg.Store.SeedFile)
	})

	t.Run("rejects seed file with postgres driver", func(t *testing.T) {
		t.Setenv("PORT", "8080")
		t.Setenv("STORE_SEED_FILE", "/etc/commerce/seed.json")

		_, err := LoadConfig()

		assert.ErrorContains(t, err, "STORE_SEED_FILE")
	})

	t.Run("rejects negative retries", func(t *testing.T) {
		t.Setenv("PORT", "8080")
		t.Setenv("TX_MAX_RETRIES", "-1")

		_, err := LoadConfig()

		assert.ErrorContains(t, err, "TX_MAX_RETRIES")
	})

	t.Run("requires port", func(t *testing.T) {
		t.Setenv("PORT", "8080")
		require.NoError(t, os.Unsetenv("PORT"))

		_, err := LoadConfig()

		assert.Error(t, err)
	})
}

func TestBuildDSN(t *testing.T) {
	cfg := DBConfig{
		Host: "db", Port: "5432", User: "app", Password: "secret",
		DBName: "commerce", SSLMode: "disable", TimeZone: "UTC",
	}

	assert.Equal(t, "postgres://app:secret@db:5432/commerce?sslmode=disable&timezone=UTC", cfg.BuildDSN())
}
