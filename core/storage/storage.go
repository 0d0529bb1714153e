package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"timeweave/core/config"
	"timeweave/core/constants"
	"timeweave/core/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Storage archives meeting artifacts (final schedule snapshots, ICS files)
// to an S3-compatible bucket. It is optional; callers must tolerate a nil
// instance when storage is disabled in configuration.
type S3Storage struct {
	client *s3.Client
	bucket string
}

func NewS3Storage(cfg config.StorageConfig) *S3Storage {
	awsCfg := aws.Config{
		Region:      cfg.Region,
		Credentials: credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Storage{client: client, bucket: cfg.Bucket}
}

func (s *S3Storage) Upload(ctx context.Context, key, contentType string, body []byte) error {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultTimeout)
	defer cancel()

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("put object %s: %w", key, err)
	}

	logger.Debug("S3Storage:Upload", "key", key, "bytes", len(body))
	return nil
}

func (s *S3Storage) UploadJSON(ctx context.Context, key string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	return s.Upload(ctx, key, "application/json", body)
}
