package config

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vibelearn/content-ingest/pkg/ingest"
	memoryrepo "github.com/vibelearn/content-ingest/pkg/ingest/repo/memory"
	pgrepo "github.com/vibelearn/content-ingest/pkg/ingest/repo/postgres"
	fsstorage "github.com/vibelearn/content-ingest/pkg/ingest/storage/fs"
	memorystorage "github.com/vibelearn/content-ingest/pkg/ingest/storage/memory"
	s3storage "github.com/vibelearn/content-ingest/pkg/ingest/storage/s3"
)

// ServerConfig holds the server configuration, populated from the
// environment:
//
//	PORT            - listen port (default 8000)
//	ENVIRONMENT     - development, production, testing
//	DATABASE_URL    - empty/"memory" for the in-memory record store, or
//	                  a postgres:// connection string
//	STORAGE_URL     - upload storage: "memory://", "file://uploads" or
//	                  "s3://bucket?region=us-east-1&endpoint=..."
//	FRONTEND_ORIGIN - single origin allowed for cross-origin requests
type ServerConfig struct {
	Port           string `env:"PORT" env-default:"8000"`
	Environment    string `env:"ENVIRONMENT" env-default:"development"`
	DatabaseURL    string `env:"DATABASE_URL" env-default:""`
	StorageURL     string `env:"STORAGE_URL" env-default:"file://uploads"`
	FrontendOrigin string `env:"FRONTEND_ORIGIN" env-default:"http://localhost:3000"`
}

// Load reads the server configuration from the environment
func Load() (*ServerConfig, error) {
	var cfg ServerConfig
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration for obvious misconfiguration
func (c *ServerConfig) Validate() error {
	if c.Port == "" {
		return errors.New("port is required")
	}
	if c.FrontendOrigin == "" {
		return errors.New("frontend origin is required")
	}

	db := c.DatabaseURL
	if db != "" && db != "memory" &&
		!strings.HasPrefix(db, "postgres://") && !strings.HasPrefix(db, "postgresql://") {
		return fmt.Errorf("unsupported DATABASE_URL format: use 'memory' or 'postgresql://...'")
	}

	switch {
	case c.StorageURL == "memory://",
		strings.HasPrefix(c.StorageURL, "file://"),
		strings.HasPrefix(c.StorageURL, "s3://"):
	default:
		return fmt.Errorf("unsupported STORAGE_URL format: %q", c.StorageURL)
	}

	return nil
}

// BuildRepository constructs the record repository selected by DATABASE_URL
func (c *ServerConfig) BuildRepository(ctx context.Context) (ingest.Repository, error) {
	if c.DatabaseURL == "" || c.DatabaseURL == "memory" {
		return memoryrepo.New(), nil
	}

	pool, err := pgxpool.New(ctx, c.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create database pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return pgrepo.NewWithPool(pool), nil
}

// BuildBlobStore constructs the upload storage backend selected by
// STORAGE_URL, returning the backend and its name.
func (c *ServerConfig) BuildBlobStore() (ingest.BlobStore, string, error) {
	u, err := url.Parse(c.StorageURL)
	if err != nil {
		return nil, "", fmt.Errorf("invalid STORAGE_URL: %w", err)
	}

	switch u.Scheme {
	case "memory":
		return memorystorage.New(), "memory", nil

	case "file":
		// url.Parse puts a relative path like "uploads" into Host
		dir := u.Host + u.Path
		if dir == "" {
			dir = "uploads"
		}
		store, err := fsstorage.New(fsstorage.Config{BaseDir: dir})
		if err != nil {
			return nil, "", err
		}
		return store, "fs", nil

	case "s3":
		q := u.Query()
		store, err := s3storage.New(s3storage.Config{
			Bucket:                 u.Host,
			Region:                 q.Get("region"),
			Endpoint:               q.Get("endpoint"),
			AccessKeyID:            q.Get("access_key_id"),
			SecretAccessKey:        q.Get("secret_access_key"),
			UsePathStyle:           q.Get("path_style") == "true",
			CreateBucketIfNotExist: q.Get("create_bucket") == "true",
		})
		if err != nil {
			return nil, "", err
		}
		return store, "s3", nil

	default:
		return nil, "", fmt.Errorf("unsupported storage scheme: %q", u.Scheme)
	}
}

// BuildService wires the repository and blob store into a Service
func (c *ServerConfig) BuildService(ctx context.Context) (ingest.Service, error) {
	repo, err := c.BuildRepository(ctx)
	if err != nil {
		return nil, err
	}

	store, name, err := c.BuildBlobStore()
	if err != nil {
		return nil, err
	}

	return ingest.New(
		ingest.WithRepository(repo),
		ingest.WithBlobStore(name, store),
	)
}
