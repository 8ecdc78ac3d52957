package config

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "", cfg.DatabaseURL)
	assert.Equal(t, "file://uploads", cfg.StorageURL)
	assert.Equal(t, "http://localhost:3000", cfg.FrontendOrigin)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("STORAGE_URL", "memory://")
	t.Setenv("FRONTEND_ORIGIN", "https://app.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "memory://", cfg.StorageURL)
	assert.Equal(t, "https://app.example.com", cfg.FrontendOrigin)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ServerConfig)
		wantErr bool
	}{
		{name: "defaults are valid", mutate: func(c *ServerConfig) {}},
		{name: "empty port", mutate: func(c *ServerConfig) { c.Port = "" }, wantErr: true},
		{name: "empty origin", mutate: func(c *ServerConfig) { c.FrontendOrigin = "" }, wantErr: true},
		{name: "memory database", mutate: func(c *ServerConfig) { c.DatabaseURL = "memory" }},
		{name: "postgres database", mutate: func(c *ServerConfig) { c.DatabaseURL = "postgresql://u:p@localhost/db" }},
		{name: "mysql database rejected", mutate: func(c *ServerConfig) { c.DatabaseURL = "mysql://localhost" }, wantErr: true},
		{name: "s3 storage", mutate: func(c *ServerConfig) { c.StorageURL = "s3://bucket?region=us-east-1" }},
		{name: "unknown storage scheme", mutate: func(c *ServerConfig) { c.StorageURL = "ftp://host/dir" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := ServerConfig{
				Port:           "8000",
				Environment:    "testing",
				StorageURL:     "file://uploads",
				FrontendOrigin: "http://localhost:3000",
			}
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBuildRepositoryMemory(t *testing.T) {
	cfg := ServerConfig{DatabaseURL: ""}

	repo, err := cfg.BuildRepository(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, repo)
}

func TestBuildBlobStore(t *testing.T) {
	t.Run("memory", func(t *testing.T) {
		cfg := ServerConfig{StorageURL: "memory://"}
		store, name, err := cfg.BuildBlobStore()
		require.NoError(t, err)
		assert.NotNil(t, store)
		assert.Equal(t, "memory", name)
	})

	t.Run("filesystem", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "uploads")
		cfg := ServerConfig{StorageURL: "file://" + dir}
		store, name, err := cfg.BuildBlobStore()
		require.NoError(t, err)
		assert.NotNil(t, store)
		assert.Equal(t, "fs", name)
	})

	t.Run("unknown scheme", func(t *testing.T) {
		cfg := ServerConfig{StorageURL: "ftp://host"}
		_, _, err := cfg.BuildBlobStore()
		assert.Error(t, err)
	})
}

func TestBuildServiceMemory(t *testing.T) {
	cfg := ServerConfig{StorageURL: "memory://"}

	svc, err := cfg.BuildService(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, svc)
}
