package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3 stores uploads in a bucket under an optional key prefix and serves them
// through a public base URL (the bucket website or a CDN in front of it).
type S3 struct {
	client  *s3.Client
	bucket  string
	prefix  string
	baseURL string
}

type S3Options struct {
	Region        string
	Bucket        string
	Prefix        string
	PublicBaseURL string
}

func NewS3(ctx context.Context, opt S3Options) (*S3, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(opt.Region))
	if err != nil {
		return nil, err
	}
	return &S3{
		client:  s3.NewFromConfig(awsCfg),
		bucket:  opt.Bucket,
		prefix:  strings.Trim(opt.Prefix, "/"),
		baseURL: strings.TrimRight(opt.PublicBaseURL, "/"),
	}, nil
}

func (s *S3) Put(ctx context.Context, r io.Reader, in UploadInput) (Object, error) {
	key, err := objectKey(in.Filename)
	if err != nil {
		return Object{}, err
	}
	if s.prefix != "" {
		key = s.prefix + "/" + key
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &s.bucket,
		Key:         &key,
		Body:        r,
		ContentType: &in.ContentType,
	})
	if err != nil {
		return Object{}, err
	}

	return Object{Key: key, URL: s.baseURL + "/" + key}, nil
}

func (s *S3) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
	})
	return err
}

func (s *S3) String() string { return fmt.Sprintf("s3(%s/%s)", s.bucket, s.prefix) }
