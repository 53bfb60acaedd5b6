package minio

import (
	"context"
	"fmt"
	"sync"

	"dealer-report-srv/config"
	"dealer-report-srv/pkg/minio"
)

var (
	client minio.MinIO
	mu     sync.Mutex
)

// Connect returns the process-wide artifact store, creating it on first use and
// making sure every bucket in buckets exists. A failed attempt leaves nothing cached.
func Connect(ctx context.Context, cfg *config.MinIOConfig, buckets ...string) (minio.MinIO, error) {
	mu.Lock()
	defer mu.Unlock()

	if client != nil {
		return client, nil
	}

	c, err := minio.NewMinIO(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}
	if err := c.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to MinIO: %w", err)
	}
	for _, b := range buckets {
		if err := c.EnsureBucket(ctx, b); err != nil {
			_ = c.Close()
			return nil, fmt.Errorf("failed to ensure bucket %s: %w", b, err)
		}
	}

	client = c
	return client, nil
}

// Disconnect closes the artifact store.
func Disconnect() error {
	mu.Lock()
	defer mu.Unlock()

	if client == nil {
		return nil
	}
	err := client.Close()
	client = nil
	return err
}
