package minio

import (
	"strings"

	"github.com/dezh-tech/immortal/pkg/logger"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type Client struct {
	MinioClient *minio.Client
	PublicURL   string
}

func New(cfg *ClientConfig) (*Client, error) {
	logger.Info("connecting to minio", "endpoint", cfg.Endpoint)

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:           credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:          cfg.Secure,
		TrailingHeaders: true,
	})
	if err != nil {
		logger.Error("failed to initialize MinIO client", "err", err)

		return nil, err
	}

	publicURL := cfg.PublicURL
	if publicURL == "" {
		scheme := "http://"
		if cfg.Secure {
			scheme = "https://"
		}
		publicURL = scheme + cfg.Endpoint
	}

	return &Client{
		MinioClient: client,
		PublicURL:   strings.TrimRight(publicURL, "/"),
	}, nil
}
