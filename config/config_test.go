package config_test

import (
	"testing"

	"go-jobplus-backend/config"

	"github.com/stretchr/testify/assert"
)

func TestLoadKnownEnvironments(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://test@localhost:5432/jobplus_test?sslmode=disable")

	for _, env := range []string{"development", "production", "testing"} {
		t.Run(env, func(t *testing.T) {
			cfg, err := config.Load(env)
			assert.NoError(t, err)
			assert.Equal(t, config.Environment(env), cfg.Env)
			assert.Equal(t, 10, cfg.IndexPerPage)
			assert.Equal(t, 10, cfg.AdminPerPage)
			assert.NotEmpty(t, cfg.SecretKey)
			assert.NotEmpty(t, cfg.DatabaseURL)
		})
	}
}

func TestLoadUnknownEnvironment(t *testing.T) {
	cfg, err := config.Load("staging")
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, config.ErrUnknownEnvironment)
}

func TestDevelopmentHasDefaultDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	cfg, err := config.Load("development")
	assert.NoError(t, err)
	assert.Contains(t, cfg.DatabaseURL, "jobplus")
}

func TestProductionRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	cfg, err := config.Load("production")
	assert.Nil(t, cfg)
	assert.Error(t, err)
}

func TestOverridesFromEnvironment(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://test@localhost/jobplus")
	t.Setenv("INDEX_PER_PAGE", "25")
	t.Setenv("SECRET_KEY", "s3cr3t")

	cfg, err := config.Load("testing")
	assert.NoError(t, err)
	assert.Equal(t, 25, cfg.IndexPerPage)
	assert.Equal(t, "s3cr3t", cfg.SecretKey)
}
