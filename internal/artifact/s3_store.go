// Package artifact stores sweep outputs in an S3-compatible bucket.
package artifact

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type S3Config struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

type S3Store struct {
	client     *minio.Client
	bucketName string
	region     string
	initOnce   sync.Once
	initErr    error
}

func NewS3Store(cfg S3Config) (*S3Store, error) {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		return nil, fmt.Errorf("s3 endpoint is required")
	}
	access := strings.TrimSpace(cfg.AccessKey)
	secret := strings.TrimSpace(cfg.SecretKey)
	if access == "" || secret == "" {
		return nil, fmt.Errorf("s3 access key and secret key are required")
	}
	bucket := strings.TrimSpace(cfg.Bucket)
	if bucket == "" {
		return nil, fmt.Errorf("s3 bucket is required")
	}
	region := strings.TrimSpace(cfg.Region)
	if region == "" {
		region = "us-east-1"
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(access, secret, ""),
		Secure: cfg.UseSSL,
		Region: region,
	})
	if err != nil {
		return nil, fmt.Errorf("init s3 client: %w", err)
	}

	return &S3Store{
		client:     client,
		bucketName: bucket,
		region:     region,
	}, nil
}

func (s *S3Store) ensureBucket(ctx context.Context) error {
	s.initOnce.Do(func() {
		exists, err := s.client.BucketExists(ctx, s.bucketName)
		if err != nil {
			s.initErr = err
			return
		}
		if exists {
			return
		}
		s.initErr = s.client.MakeBucket(ctx, s.bucketName, minio.MakeBucketOptions{Region: s.region})
	})
	return s.initErr
}

// Put uploads content to <runID>/<path>, creating the bucket on first use.
func (s *S3Store) Put(ctx context.Context, runID, path string, content []byte) error {
	key, err := ObjectKey(runID, path)
	if err != nil {
		return err
	}
	if err := s.ensureBucket(ctx); err != nil {
		return fmt.Errorf("ensure bucket: %w", err)
	}

	_, err = s.client.PutObject(ctx, s.bucketName, key, bytes.NewReader(content), int64(len(content)), minio.PutObjectOptions{
		ContentType: contentType(path),
	})
	return err
}

// ObjectKey joins runID and path into an object key.
func ObjectKey(runID, path string) (string, error) {
	runID = strings.Trim(strings.TrimSpace(runID), "/")
	path = strings.TrimLeft(strings.TrimSpace(path), "/")
	if runID == "" {
		return "", fmt.Errorf("run_id is required")
	}
	if path == "" {
		return "", fmt.Errorf("path is required")
	}
	return runID + "/" + path, nil
}

func contentType(path string) string {
	switch {
	case strings.HasSuffix(path, ".json"):
		return "application/json"
	case strings.HasSuffix(path, ".html"):
		return "text/html; charset=utf-8"
	default:
		return "application/octet-stream"
	}
}
