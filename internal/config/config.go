package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config contains server configuration parameters.
type Config struct {
	LogLevel int      `env:"LOG_LEVEL" envDefault:"0"`
	HTTP     HTTP     `envPrefix:"HTTP_"`
	Database Database `envPrefix:"DATABASE_"`
	Session  Session  `envPrefix:"SESSION_"`
	Storage  Storage  `envPrefix:"MINIO_"`
}

// HTTP contains web server parameters.
type HTTP struct {
	Port               string   `env:"PORT" envDefault:"3000"`
	EnableHTTPS        bool     `env:"ENABLE_HTTPS" envDefault:"false"`
	CertFileName       string   `env:"CERT_FILE_NAME" envDefault:"cert.pem"`
	PrivateKeyFileName string   `env:"PRIVATE_KEY_FILE_NAME" envDefault:"key.pem"`
	TrustedOrigins     []string `env:"TRUSTED_ORIGINS" envSeparator:","`
}

// Database contains database connection parameters.
type Database struct {
	DSN string `env:"DSN,required,notEmpty"`
}

// Session contains session cookie parameters.
type Session struct {
	Secret       string        `env:"SECRET,required,notEmpty"`
	TTL          time.Duration `env:"TTL" envDefault:"720h"`
	CookieSecure bool          `env:"COOKIE_SECURE" envDefault:"false"`
	// CSRFKey enables CSRF protection when set. It must be 32 bytes long.
	CSRFKey string `env:"CSRF_KEY"`
}

// Storage contains object storage parameters. Media uploads are disabled
// when Endpoint is empty.
type Storage struct {
	Endpoint  string `env:"ENDPOINT"`
	AccessKey string `env:"ACCESS_KEY"`
	SecretKey string `env:"SECRET_KEY"`
	Bucket    string `env:"BUCKET_NAME" envDefault:"storefront-media"`
	UseSSL    bool   `env:"USE_SSL" envDefault:"false"`
}

// Enabled reports whether object storage is configured.
func (s Storage) Enabled() bool {
	return s.Endpoint != ""
}

// NewConfig loads configuration from environment variables.
func NewConfig() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Session.CSRFKey != "" && len(cfg.Session.CSRFKey) != 32 {
		return nil, fmt.Errorf("failed to parse config: SESSION_CSRF_KEY must be 32 bytes, got %d", len(cfg.Session.CSRFKey))
	}

	return &cfg, nil
}

// NewDatabaseConfig loads only the database parameters. Command line tools
// use it so they do not require the server's session settings.
func NewDatabaseConfig() (*Database, error) {
	cfg := Database{}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "DATABASE_"}); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
