// internal/storage/archive.go
package storage

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/territoryiq/backend-go/internal/config"
)

// UploadArchive retains raw vendor CSV exports in an S3-compatible bucket so
// a bad import can be replayed against the file exactly as received.
type UploadArchive interface {
	Store(ctx context.Context, repID, kind, filename string, data []byte) error
}

type minioArchive struct {
	client *minio.Client
	bucket string
}

type noopArchive struct{}

func NewUploadArchive(cfg config.ArchiveConfig) (UploadArchive, error) {
	if !cfg.Enabled {
		return &noopArchive{}, nil
	}
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("archive endpoint must be provided")
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, fmt.Errorf("archive credentials must be provided")
	}
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("archive bucket must be provided")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create archive client: %w", err)
	}

	return &minioArchive{
		client: client,
		bucket: cfg.Bucket,
	}, nil
}

func NewNoopUploadArchive() UploadArchive {
	return &noopArchive{}
}

// Store writes the raw file under <rep>/<kind>/<timestamp>_<filename>.
func (a *minioArchive) Store(ctx context.Context, repID, kind, filename string, data []byte) error {
	key := fmt.Sprintf("%s/%s/%s_%s", repID, kind, time.Now().UTC().Format("20060102T150405"), filename)

	_, err := a.client.PutObject(ctx, a.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "text/csv",
	})
	if err != nil {
		return fmt.Errorf("failed to archive upload %s: %w", key, err)
	}

	return nil
}

func (n *noopArchive) Store(ctx context.Context, repID, kind, filename string, data []byte) error {
	return nil
}
