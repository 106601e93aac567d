package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/dezh-tech/immortal/pkg/logger"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"memes/internal/infrastructure/broker"
	"memes/internal/infrastructure/database"
	"memes/internal/infrastructure/identity"
	"memes/internal/infrastructure/ledger"
	"memes/internal/infrastructure/minio"
)

// Config represents the configs used by services on system.
type Config struct {
	Environment     string                 `yaml:"environment"`
	HTTPServer      HTTPServerConfig       `yaml:"http_server"`
	MinIOClient     minio.ClientConfig     `yaml:"minio_client"`
	MinIOUploader   minio.UploaderConfig   `yaml:"minio_uploader"`
	MinIOFetcher    minio.FetcherConfig    `yaml:"minio_fetcher"`
	MinIORemover    minio.RemoverConfig    `yaml:"minio_remover"`
	DBConfig        database.Config        `yaml:"db_config"`
	BrokerConfig    broker.Config          `yaml:"redis_broker_config"`
	PublisherConfig broker.PublisherConfig `yaml:"publisher_config"`
	ReceiverConfig  broker.ReceiverConfig  `yaml:"receiver_config"`
	LedgerConfig    ledger.Config          `yaml:"ledger_config"`
	Identity        identity.Config        `yaml:"identity"`
	Logger          logger.Config          `yaml:"logger"`
}

type HTTPServerConfig struct {
	Address         string  `yaml:"address"`
	BodyLimit       string  `yaml:"body_limit"`
	RateLimit       float64 `yaml:"rate_limit"`
	ShutdownTimeout int64   `yaml:"shutdown_timeout_in_ms"`
}

func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}
	defer file.Close()

	config := &Config{}

	decoder := yaml.NewDecoder(file)

	if err := decoder.Decode(config); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	if config.Environment != "prod" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, Error{
				reason: err.Error(),
			}
		}
	}

	setFromEnv(&config.MinIOClient.AccessKey, "MINIO_ROOT_USER")
	setFromEnv(&config.MinIOClient.SecretKey, "MINIO_ROOT_PASSWORD")
	setFromEnv(&config.DBConfig.URI, "DATABASE_URI")
	setFromEnv(&config.BrokerConfig.URI, "BROKER_URI")
	setFromEnv(&config.LedgerConfig.URI, "LEDGER_URI")
	setFromEnv(&config.Identity.Secret, "JWT_SECRET")

	if err = config.basicCheck(); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	return config, nil
}

func setFromEnv(field *string, key string) {
	if v := os.Getenv(key); v != "" {
		*field = v
	}
}

// basicCheck validates the basic stuff in config and fills defaults.
func (c *Config) basicCheck() error {
	if c.MinIOClient.Endpoint == "" {
		return errors.New("minio_client.endpoint is required")
	}
	if c.DBConfig.URI == "" {
		return errors.New("DATABASE_URI is required")
	}
	if c.Identity.Secret == "" {
		return errors.New("JWT_SECRET is required")
	}

	if c.HTTPServer.Address == "" {
		c.HTTPServer.Address = ":8080"
	}
	if c.HTTPServer.BodyLimit == "" {
		c.HTTPServer.BodyLimit = "50M"
	}
	if c.HTTPServer.RateLimit <= 0 {
		c.HTTPServer.RateLimit = 20
	}
	if c.HTTPServer.ShutdownTimeout <= 0 {
		c.HTTPServer.ShutdownTimeout = 10000
	}

	if c.MinIOUploader.Bucket == "" {
		c.MinIOUploader.Bucket = "memes"
	}
	if c.MinIOFetcher.Bucket == "" {
		c.MinIOFetcher.Bucket = c.MinIOUploader.Bucket
	}
	if c.MinIORemover.Bucket == "" {
		c.MinIORemover.Bucket = c.MinIOUploader.Bucket
	}
	defaultTimeout(&c.MinIOUploader.Timeout)
	defaultTimeout(&c.MinIOFetcher.Timeout)
	defaultTimeout(&c.MinIORemover.Timeout)

	if c.PublisherConfig.Timeout <= 0 {
		c.PublisherConfig.Timeout = 3000
	}
	if c.BrokerConfig.StreamName == "" {
		c.BrokerConfig.StreamName = "memes:events"
	}
	if c.BrokerConfig.GroupName == "" {
		c.BrokerConfig.GroupName = "memes"
	}

	if c.LedgerConfig.DBName == "" {
		c.LedgerConfig.DBName = "memes"
	}
	defaultTimeout(&c.LedgerConfig.ConnectionTimeout)
	defaultTimeout(&c.LedgerConfig.QueryTimeout)

	if c.Identity.TokenTTLInMinutes <= 0 {
		c.Identity.TokenTTLInMinutes = 30
	}

	if len(c.Logger.Targets) == 0 {
		c.Logger.Targets = []string{"console"}
	}

	return nil
}

func defaultTimeout(v *int64) {
	if *v <= 0 {
		*v = 5000
	}
}
