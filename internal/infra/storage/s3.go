// Package storage provides the S3-backed implementation of the object store
// that holds product image bytes.
package storage

import (
	"context"
	"io"
	"log/slog"
	"time"

	"catalog/config"
	"catalog/internal/domain/service"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the dependencies for the S3 storage constructor.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// s3Storage implements service.ObjectStorage against an S3-compatible bucket.
// A custom endpoint (MinIO, localstack) is supported through config.
type s3Storage struct {
	client  *s3.Client
	presign *s3.PresignClient
	bucket  string
	logger  *slog.Logger
}

// NewS3Storage builds the S3 client from static credentials and returns it
// behind the domain interface.
func NewS3Storage(params Params) (service.ObjectStorage, error) {
	storageCfg := params.Config.Storage

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(storageCfg.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(storageCfg.AccessKey, storageCfg.SecretKey, ""),
		),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load storage credentials")
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if storageCfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(storageCfg.Endpoint)
			// Path-style addressing for MinIO and other non-AWS endpoints.
			o.UsePathStyle = true
		}
	})

	return &s3Storage{
		client:  client,
		presign: s3.NewPresignClient(client),
		bucket:  storageCfg.Bucket,
		logger:  params.Logger,
	}, nil
}

// Put streams the object to the bucket under the given key.
func (s *s3Storage) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return errors.Wrapf(err, "failed to upload object %s", key)
	}

	s.logger.Debug("object uploaded",
		slog.String("key", key),
		slog.Int64("size", size),
	)

	return nil
}

// Delete removes the object from the bucket. S3 delete is idempotent, so a
// key that is already gone does not error.
func (s *s3Storage) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return errors.Wrapf(err, "failed to delete object %s", key)
	}

	return nil
}

// PresignGet returns a time-limited GET URL for the object.
func (s *s3Storage) PresignGet(ctx context.Context, key string, expires time.Duration) (string, error) {
	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(expires))
	if err != nil {
		return "", errors.Wrapf(err, "failed to presign object %s", key)
	}

	return req.URL, nil
}
