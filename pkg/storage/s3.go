package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"rental-admin/pkg/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
)

// ImageStore persists binary assets and hands back retrieval URLs.
// Images live under a per-apartment key prefix; the store knows nothing
// about apartments beyond the key it is given.
type ImageStore interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
	Delete(ctx context.Context, key string) error
}

type S3Store struct {
	client  *s3.Client
	bucket  string
	baseURL string
	log     *zap.Logger
}

// NewS3Store builds an S3-backed image store from the default AWS
// credential chain. A custom endpoint (for S3-compatible stores) and
// public base URL come from config.
func NewS3Store(ctx context.Context, config utils.StorageConfig, log *zap.Logger) (*S3Store, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(config.Region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if config.Endpoint != "" {
			o.BaseEndpoint = aws.String(config.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Store{
		client:  client,
		bucket:  config.Bucket,
		baseURL: strings.TrimSuffix(config.BaseURL, "/"),
		log:     log.With(zap.String("storage", "s3")),
	}, nil
}

func (s *S3Store) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		s.log.Error("Failed to upload object",
			zap.Error(err),
			zap.String("key", key),
		)
		return "", fmt.Errorf("upload object %s: %w", key, err)
	}

	url := fmt.Sprintf("%s/%s", s.baseURL, key)
	s.log.Info("Object uploaded",
		zap.String("key", key),
		zap.String("url", url),
	)
	return url, nil
}

func (s *S3Store) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		s.log.Error("Failed to delete object",
			zap.Error(err),
			zap.String("key", key),
		)
		return fmt.Errorf("delete object %s: %w", key, err)
	}

	return nil
}
