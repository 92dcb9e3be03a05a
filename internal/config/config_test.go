package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		Server: ServerConfig{Port: 3000},
		Store:  StoreConfig{Driver: DriverMongo},
		Mongo:  MongoConfig{URI: "mongodb://localhost:27017", Database: "web420DB"},
		Auth:   AuthConfig{BcryptCost: 10},
	}
}

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)
	require.Equal(t, 3000, cfg.Server.Port)
	require.Equal(t, DriverMongo, cfg.Store.Driver)
	require.Equal(t, "web420DB", cfg.Mongo.Database)
	require.Equal(t, 10, cfg.Auth.BcryptCost)
	require.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	require.Equal(t, ":3000", cfg.ServerAddr())
}

func TestNewConfig_EnvOverrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", DriverPostgres)
	t.Setenv("POSTGRES_DSN", "postgres://u:p@db:5432/x")
	t.Setenv("AUTH_BCRYPT_COST", "12")
	t.Setenv("PORT", "8081")

	cfg, err := NewConfig()
	require.NoError(t, err)
	require.Equal(t, DriverPostgres, cfg.Store.Driver)
	require.Equal(t, "postgres://u:p@db:5432/x", cfg.Postgres.DSN)
	require.Equal(t, 12, cfg.Auth.BcryptCost)
	require.Equal(t, 8081, cfg.Server.Port)
}

func TestNewConfig_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("STORE_DRIVER", "cassandra")
	_, err := NewConfig()
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"valid", func(*Config) {}, true},
		{"memory needs nothing", func(c *Config) { c.Store.Driver = DriverMemory; c.Mongo = MongoConfig{} }, true},
		{"bad port", func(c *Config) { c.Server.Port = 0 }, false},
		{"mongo without uri", func(c *Config) { c.Mongo.URI = "" }, false},
		{"postgres without dsn", func(c *Config) { c.Store.Driver = DriverPostgres }, false},
		{"cost too low", func(c *Config) { c.Auth.BcryptCost = 3 }, false},
		{"cost too high", func(c *Config) { c.Auth.BcryptCost = 32 }, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}
