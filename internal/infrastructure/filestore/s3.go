package filestore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/v4health/clinic-api/internal/core/domain"
)

// S3Config describes the bucket uploads go to. Endpoint and the static keys
// are only needed for S3-compatible servers such as MinIO.
type S3Config struct {
	Bucket          string
	Region          string
	Prefix          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	UsePathStyle    bool
	MaxBytes        int64
}

type objectUploader interface {
	Upload(ctx context.Context, input *s3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error)
}

type objectDeleter interface {
	DeleteObject(ctx context.Context, input *s3.DeleteObjectInput, opts ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3 stores uploads as objects through the multipart uploader.
type S3 struct {
	uploader objectUploader
	deleter  objectDeleter
	bucket   string
	prefix   string
	maxBytes int64
	now      func() time.Time
}

// NewS3 builds the client and makes sure the bucket exists.
func NewS3(ctx context.Context, cfg S3Config) (*S3, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("s3 bucket must be set")
	}

	opts := []func(*awsconfig.LoadOptions) error{}
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	if err := ensureBucket(ctx, client, cfg.Bucket, cfg.Region); err != nil {
		return nil, err
	}

	return newS3(manager.NewUploader(client), client, cfg), nil
}

func newS3(u objectUploader, d objectDeleter, cfg S3Config) *S3 {
	maxBytes := cfg.MaxBytes
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &S3{uploader: u, deleter: d, bucket: cfg.Bucket, prefix: cfg.Prefix, maxBytes: maxBytes, now: time.Now}
}

func ensureBucket(ctx context.Context, client *s3.Client, bucket, region string) error {
	hctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := client.HeadBucket(hctx, &s3.HeadBucketInput{Bucket: aws.String(bucket)})
	if err == nil {
		return nil
	}
	var notFound *types.NotFound
	if !errors.As(err, &notFound) {
		return fmt.Errorf("head bucket %s: %w", bucket, err)
	}

	in := &s3.CreateBucketInput{Bucket: aws.String(bucket)}
	if region != "" && region != "us-east-1" {
		in.CreateBucketConfiguration = &types.CreateBucketConfiguration{
			LocationConstraint: types.BucketLocationConstraint(region),
		}
	}
	if _, err := client.CreateBucket(ctx, in); err != nil {
		return fmt.Errorf("create bucket %s: %w", bucket, err)
	}
	return nil
}

// Save uploads content and returns the object name without the key prefix.
func (s *S3) Save(ctx context.Context, meta domain.Upload, content io.Reader) (string, error) {
	if err := checkUpload(meta, s.maxBytes); err != nil {
		return "", err
	}

	name := objectName(meta.OriginalName, s.now())
	key := s.key(name)

	_, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        newLimitedReader(content, s.maxBytes),
		ContentType: aws.String(meta.ContentType),
	})
	if err != nil {
		if errors.Is(err, domain.ErrUploadTooLarge) {
			return "", domain.ErrUploadTooLarge
		}
		return "", fmt.Errorf("upload %s to %s: %w", key, s.bucket, err)
	}
	return name, nil
}

// Delete removes the object Save stored under name. S3 does not report
// missing keys on delete.
func (s *S3) Delete(ctx context.Context, name string) error {
	if err := checkName(name); err != nil {
		return err
	}
	key := s.key(name)
	if _, err := s.deleter.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}); err != nil {
		return fmt.Errorf("delete %s from %s: %w", key, s.bucket, err)
	}
	return nil
}

func (s *S3) key(name string) string {
	if s.prefix == "" {
		return name
	}
	return path.Join(s.prefix, name)
}
