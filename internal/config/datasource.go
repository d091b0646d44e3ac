package config

import (
	"EcommerceChatbot/database/postgres"
	"EcommerceChatbot/internal/dataset"
	"EcommerceChatbot/pkg/s3"
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	DataSourceFile     = "file"
	DataSourceS3       = "s3"
	DataSourcePostgres = "postgres"

	defaultDataDir  = "../data"
	defaultCacheTTL = 10 * time.Minute
)

// NewDataSource builds the dataset source named by DATA_SOURCE. The returned
// close function releases whatever connection the source holds.
func NewDataSource() (dataset.Source, func() error, error) {
	noop := func() error { return nil }

	kind := strings.ToLower(strings.TrimSpace(os.Getenv("DATA_SOURCE")))
	switch kind {
	case "", DataSourceFile:
		dir := os.Getenv("DATA_DIR")
		if dir == "" {
			dir = defaultDataDir
		}
		return dataset.NewFileSource(dir), noop, nil

	case DataSourceS3:
		client, err := s3.New()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create S3 client: %w", err)
		}
		return dataset.NewS3Source(client, os.Getenv("DATA_S3_PREFIX")), noop, nil

	case DataSourcePostgres:
		db, err := postgres.New()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create database connection: %w", err)
		}
		return dataset.NewPostgresSource(db), db.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown DATA_SOURCE %q", kind)
	}
}

// CacheTTL reads CHAT_CACHE_TTL as a Go duration.
func CacheTTL() time.Duration {
	ttl, err := time.ParseDuration(os.Getenv("CHAT_CACHE_TTL"))
	if err != nil || ttl <= 0 {
		return defaultCacheTTL
	}
	return ttl
}
