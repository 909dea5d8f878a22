package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STORE_DRIVER", "")
	t.Setenv("HTTP_PORT", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, StoreMemory, cfg.Store.Driver)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "Anbar 1", cfg.Operations.FallbackWarehouse)
	assert.Equal(t, "02.01.2006", cfg.Operations.DateLayout)
	assert.NotEmpty(t, cfg.Operations.PackagingDefaults)
	assert.Equal(t, 4*time.Hour, cfg.Drafts.TTL())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("STORE_DRIVER", "Postgres")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("OPERATIONS_FALLBACK_WAREHOUSE", "Central")
	t.Setenv("PACKAGING_DEFAULTS", " 12(caja) , ,6 ")
	t.Setenv("JWT_EXPIRATION_MINUTES", "15")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, StorePostgres, cfg.Store.Driver)
	assert.Equal(t, "0.0.0.0:9090", cfg.HTTP.Addr())
	assert.Equal(t, "Central", cfg.Operations.FallbackWarehouse)
	assert.Equal(t, []string{"12(caja)", "6"}, cfg.Operations.PackagingDefaults)
	assert.Equal(t, 15*time.Minute, cfg.JWT.TTL())
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("STORE_DRIVER", "mongo")
	_, err := Load()
	assert.Error(t, err)
}

func TestDBConfig_DSN(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "ops", Password: "p@ss:w/rd", DBName: "inv", SSLMode: "disable"}
	assert.Equal(t, "postgres://ops:p%40ss%3Aw%2Frd@db:5432/inv?sslmode=disable", c.DSN())
	assert.Equal(t, c.DSN(), c.ConnectionString())

	c.DatabaseURL = "postgres://x@y/z"
	assert.Equal(t, "postgres://x@y/z", c.ConnectionString())
}

func TestParseWarehouses(t *testing.T) {
	got := parseWarehouses("w1=Anbar 1, w2 = Anbar 2 ,Central")
	assert.Equal(t, []WarehouseConfig{
		{ID: "w1", Name: "Anbar 1"},
		{ID: "w2", Name: "Anbar 2"},
		{ID: "Central", Name: "Central"},
	}, got)
}
