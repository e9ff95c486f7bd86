package config_test

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/usuarios-api/pkg/config"
)

func TestFromViper_ValoresPorDefecto(t *testing.T) {
	cfg := config.FromViper(viper.New())

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, config.StoragePostgres, cfg.DB.Driver)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, 10*time.Second, cfg.HTTP.ReadTimeout)
	assert.True(t, cfg.Registro.ValidarDocumento, "por defecto se usa la variante completa")
	assert.True(t, cfg.Registro.ValidarRol)
	assert.False(t, cfg.Registro.LockEnabled)
	require.NoError(t, cfg.Validate())
}

func TestFromViper_Sobrescrituras(t *testing.T) {
	v := viper.New()
	v.Set("STORAGE_DRIVER", "memory")
	v.Set("HTTP_PORT", "9090")
	v.Set("REGISTRO_VALIDAR_DOCUMENTO", "false")
	v.Set("REGISTRO_VALIDAR_ROL", false)
	v.Set("REGISTRO_LOCK_TTL", "250ms")
	v.Set("REDIS_DIAL_TIMEOUT", "2")

	cfg := config.FromViper(v)
	assert.Equal(t, config.StorageMemory, cfg.DB.Driver)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.False(t, cfg.Registro.ValidarDocumento)
	assert.False(t, cfg.Registro.ValidarRol)
	assert.Equal(t, 250*time.Millisecond, cfg.Registro.LockTTL)
	assert.Equal(t, 2*time.Second, cfg.Redis.DialTimeout)
}

func TestValidate_DriverInvalido(t *testing.T) {
	v := viper.New()
	v.Set("STORAGE_DRIVER", "mongo")
	assert.Error(t, config.FromViper(v).Validate())
}

func TestValidate_LockSinRedis(t *testing.T) {
	v := viper.New()
	v.Set("REGISTRO_LOCK_ENABLED", true)
	assert.Error(t, config.FromViper(v).Validate())

	v.Set("REDIS_URL", "redis://localhost:6379/0")
	assert.NoError(t, config.FromViper(v).Validate())
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:w/rd", DBName: "usuarios", SSLMode: "disable"}
	dsn := c.ConnectionString()
	assert.Contains(t, dsn, "postgres://app:")
	assert.Contains(t, dsn, "@db:5432/usuarios?sslmode=disable")
	assert.NotContains(t, dsn, "p@ss:w/rd", "la contraseña se codifica")

	c.DatabaseURL = "postgres://otro"
	assert.Equal(t, "postgres://otro", c.ConnectionString())
}
