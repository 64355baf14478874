package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assosa-edu/hrms-api/pkg/config"
)

// Sin configurar nada, todo sale con sus defaults.
func TestLoad_SinEnv_UsaDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "hrms-api", cfg.App.Name)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, 60, cfg.JWT.Expiration)
	assert.Equal(t, "gemini-2.5-flash", cfg.AI.GeminiModel)
}

// Las env vars tienen prioridad sobre los defaults.
func TestLoad_EnvValida_SeRespeta(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("APP_ENV", "production")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "production", cfg.App.Env)
}

// Un valor numérico malformado cae al default documentado, nunca a cero.
func TestLoad_EnteroMalformado_CaeAlDefault(t *testing.T) {
	t.Setenv("HTTP_PORT", "abc")
	t.Setenv("JWT_EXPIRATION_MINUTES", "una-hora")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 60, cfg.JWT.Expiration)
}
