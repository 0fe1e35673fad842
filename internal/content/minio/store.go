// Package minio implements the content store on MinIO / S3-compatible
// object storage.
package minio

import (
	"bytes"
	"context"
	"fmt"
	"io"

	miniogo "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"

	"github.com/kitbuilder587/adversify/internal/content"
)

type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

type Store struct {
	client *miniogo.Client
	bucket string
	logger *zap.Logger
}

func New(cfg Config, logger *zap.Logger) (*Store, error) {
	client, err := miniogo.New(cfg.Endpoint, &miniogo.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	return &Store{
		client: client,
		bucket: cfg.Bucket,
		logger: logger,
	}, nil
}

// EnsureBucket creates the bucket when it does not exist yet. Called once at
// startup, not on the request path.
func (s *Store) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("check bucket: %w", err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, miniogo.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("create bucket: %w", err)
	}
	return nil
}

func (s *Store) Exists(ctx context.Context, id string) (bool, error) {
	_, err := s.client.StatObject(ctx, s.bucket, id, miniogo.StatObjectOptions{})
	if err != nil {
		if miniogo.ToErrorResponse(err).Code == "NoSuchKey" {
			return false, nil
		}
		return false, fmt.Errorf("stat object: %w", err)
	}
	return true, nil
}

func (s *Store) Get(ctx context.Context, id string) ([]byte, string, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, id, miniogo.GetObjectOptions{})
	if err != nil {
		return nil, "", fmt.Errorf("get object: %w", err)
	}
	defer obj.Close()

	info, err := obj.Stat()
	if err != nil {
		if miniogo.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, "", content.ErrNotFound
		}
		return nil, "", fmt.Errorf("stat object: %w", err)
	}

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, "", fmt.Errorf("read object: %w", err)
	}

	return data, info.ContentType, nil
}

func (s *Store) Put(ctx context.Context, id string, data []byte, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, id, bytes.NewReader(data), int64(len(data)),
		miniogo.PutObjectOptions{ContentType: contentType},
	)
	if err != nil {
		return fmt.Errorf("put object: %w", err)
	}

	s.logger.Debug("stored content",
		zap.String("id", id),
		zap.Int("bytes", len(data)),
		zap.String("content_type", contentType),
	)
	return nil
}
