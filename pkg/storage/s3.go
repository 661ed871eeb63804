package storage

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/chirp-lab/backend/config"
)

type s3Storage struct {
	uploader *s3manager.Uploader
	client   *s3.S3
	cfg      config.S3Configs
}

func NewS3Storage(cfg config.S3Configs) *s3Storage {
	session, _ := session.NewSession(&aws.Config{
		Region:           aws.String(cfg.Region),
		Credentials:      credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, ""),
		Endpoint:         aws.String(cfg.Endpoint),
		S3ForcePathStyle: aws.Bool(true),
		DisableSSL:       aws.Bool(cfg.SSLDisabled),
	})

	return &s3Storage{
		uploader: s3manager.NewUploader(session),
		client:   s3.New(session),
		cfg:      cfg,
	}
}

func (s *s3Storage) Upload(ctx context.Context, object *UploadObject) (*UploadResponse, error) {
	// Same key layout as the local backend.
	key := fmt.Sprintf("%s/%s_%s",
		object.APIKey, time.Now().Format(timestampLayout), object.FileName)

	_, err := s.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(object.Data),
		ACL:    aws.String("public-read"),
	})
	if err != nil {
		return nil, fmt.Errorf("upload failed: %w, bucket %s, key %s", err, s.cfg.Bucket, key)
	}

	return &UploadResponse{
		Path: key,
		Url:  fmt.Sprintf("%s/%s/%s", s.cfg.PublicEndpoint, s.cfg.Bucket, key),
	}, nil
}

func (s *s3Storage) Delete(ctx context.Context, path string) error {
	_, err := s.client.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(path),
	})
	return err
}
