package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Catalog driver names selectable via CATALOG_DRIVER
const (
	CatalogDriverJSONFile = "jsonfile"
	CatalogDriverPostgres = "postgres"
	CatalogDriverBlobJSON = "blobjson"
)

// Blob driver names selectable via BLOB_DRIVER
const (
	BlobDriverFS    = "fs"
	BlobDriverMinio = "minio"
)

type Config struct {
	Env      Env
	Server   ServerConfig
	Catalog  CatalogConfig
	Blob     BlobConfig
	Minio    MinioConfig
	Auth     AuthConfig
	Cleanup  CleanupConfig
	NATS     NATSConfig
	Database DatabaseConfig
}

type Env struct {
	Env string `envconfig:"ENV" default:"DEV"`
}

type ServerConfig struct {
	Host string `envconfig:"SERVER_HOST" default:"localhost"`
	Port string `envconfig:"SERVER_PORT" default:"8080"`
}

type CatalogConfig struct {
	Driver string `envconfig:"CATALOG_DRIVER" default:"jsonfile"`
	// Path of the JSON document for the jsonfile driver.
	Path string `envconfig:"CATALOG_PATH" default:"data/db.json"`
	// Object key of the JSON document for the blobjson driver.
	ObjectKey string `envconfig:"CATALOG_OBJECT_KEY" default:"data/db.json"`
}

type BlobConfig struct {
	Driver string `envconfig:"BLOB_DRIVER" default:"fs"`
	// Directory and public base URL for the fs driver.
	Dir           string `envconfig:"BLOB_DIR" default:"data/uploads"`
	PublicBaseURL string `envconfig:"BLOB_PUBLIC_BASE_URL" default:"/uploads"`
}

type MinioConfig struct {
	Endpoint   string `envconfig:"MINIO_ENDPOINT"`
	BucketName string `envconfig:"MINIO_BUCKET_NAME"`
	AccessKey  string `envconfig:"MINIO_ACCESS_KEY"`
	SecretKey  string `envconfig:"MINIO_SECRET_KEY"`
	UseSSL     bool   `envconfig:"MINIO_USE_SSL" default:"false"`
	// PublicBaseURL overrides the URL objects are served under (CDN front);
	// empty means the endpoint itself.
	PublicBaseURL string `envconfig:"MINIO_PUBLIC_BASE_URL"`
}

type AuthConfig struct {
	AdminPassword string        `envconfig:"ADMIN_PASSWORD" required:"true"`
	SessionSecret string        `envconfig:"SESSION_SECRET" required:"true"`
	SessionTTL    time.Duration `envconfig:"SESSION_TTL" default:"8h"`
	CookieName    string        `envconfig:"SESSION_COOKIE_NAME" default:"tentacao_admin_auth"`
	// CronSecret guards the cleanup endpoint; empty falls back to session auth.
	CronSecret string `envconfig:"CRON_SECRET"`
}

type CleanupConfig struct {
	// Every is the purge interval of the in-process ticker; 0 disables it
	// (the cron endpoint still works).
	Every time.Duration `envconfig:"CLEANUP_EVERY" default:"0"`
}

type NATSConfig struct {
	Enabled bool   `envconfig:"NATS_ENABLED" default:"false"`
	URL     string `envconfig:"NATS_URL" default:"nats://localhost:4222"`
	Name    string `envconfig:"NATS_CLIENT_NAME" default:"tentacao-media"`
	Subject string `envconfig:"NATS_SUBJECT" default:"tentacao.media"`
	Stream  string `envconfig:"NATS_STREAM_NAME" default:"TENTACAO_MEDIA"`
}

type DatabaseConfig struct {
	Host           string        `envconfig:"DB_HOST" default:"localhost"`
	Port           int           `envconfig:"DB_PORT" default:"5432"`
	User           string        `envconfig:"DB_USER" default:"tentacao"`
	Password       string        `envconfig:"DB_PASSWORD" default:""`
	Name           string        `envconfig:"DB_NAME" default:"tentacao"`
	SSLMode        string        `envconfig:"DB_SSLMODE" default:"disable"`
	MaxOpenCons    int           `envconfig:"DB_MAX_OPEN_CONS" default:"25"`
	MaxIdleCons    int           `envconfig:"DB_MAX_IDLE_CONS" default:"5"`
	ConMaxLifeTime time.Duration `envconfig:"DB_CONMAX_LIFE_TIME" default:"5m"`
}

func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Catalog.Driver {
	case CatalogDriverJSONFile, CatalogDriverPostgres, CatalogDriverBlobJSON:
	default:
		return fmt.Errorf("unknown catalog driver: %q", c.Catalog.Driver)
	}

	switch c.Blob.Driver {
	case BlobDriverFS, BlobDriverMinio:
	default:
		return fmt.Errorf("unknown blob driver: %q", c.Blob.Driver)
	}

	needsMinio := c.Blob.Driver == BlobDriverMinio || c.Catalog.Driver == CatalogDriverBlobJSON
	if needsMinio && (c.Minio.Endpoint == "" || c.Minio.BucketName == "") {
		return fmt.Errorf("minio endpoint and bucket are required for the selected drivers")
	}

	return nil
}
