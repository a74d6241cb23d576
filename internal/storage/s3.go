package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"

	"github.com/jdromero/tablero/internal/config"
)

// s3Timeout bounds every S3 round trip.
const s3Timeout = 10 * time.Second

// S3Store keeps each key as an object in one bucket.
// It is compatible with MinIO and other S3-compatible services.
type S3Store struct {
	client *s3.Client
	bucket string
}

// NewS3Store initializes an S3 client from the given configuration and
// verifies the bucket exists.
func NewS3Store(ctx context.Context, cfg config.S3) (*S3Store, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("S3 bucket is required")
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")))
	}
	if cfg.Endpoint != "" {
		if _, err := url.Parse(cfg.Endpoint); err != nil {
			return nil, fmt.Errorf("invalid S3 endpoint: %w", err)
		}
		endpoint := cfg.Endpoint
		region := cfg.Region
		opts = append(opts, awsconfig.WithEndpointResolver(
			aws.EndpointResolverFunc(func(service, _ string) (aws.Endpoint, error) {
				return aws.Endpoint{URL: endpoint, SigningRegion: region}, nil
			}),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.UsePathStyle
	})

	store := &S3Store{client: client, bucket: cfg.Bucket}
	if err := store.ensureBucketExists(ctx); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *S3Store) ensureBucketExists(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s3Timeout)
	defer cancel()

	_, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: &s.bucket,
	})
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) && apiErr.ErrorCode() == "NotFound" {
			return fmt.Errorf("bucket %s does not exist", s.bucket)
		}
		return fmt.Errorf("error checking bucket: %w", err)
	}
	return nil
}

func (s *S3Store) Get(ctx context.Context, key string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, s3Timeout)
	defer cancel()

	resp, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: &s.bucket,
		Key:    aws.String(key),
	})
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) && (apiErr.ErrorCode() == "NoSuchKey" || apiErr.ErrorCode() == "NotFound") {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("error loading %s from S3: %w", key, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", key, err)
	}
	return data, nil
}

func (s *S3Store) Put(ctx context.Context, key string, value []byte) error {
	ctx, cancel := context.WithTimeout(ctx, s3Timeout)
	defer cancel()

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: &s.bucket,
		Key:    aws.String(key),
		Body:   bytes.NewReader(value),
	})
	if err != nil {
		return fmt.Errorf("error saving %s to S3: %w", key, err)
	}
	return nil
}

func (s *S3Store) Close() error {
	return nil
}
