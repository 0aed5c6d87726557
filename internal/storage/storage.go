// Package storage persists uploaded product images. Two drivers exist, disk
// for development and S3 for production; the driver is picked from Config so
// this package never reads the environment itself.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrUnsupportedType rejects uploads that are not an accepted image format.
var ErrUnsupportedType = errors.New("storage: unsupported file type")

// UploadInput describes an incoming file. Size is advisory; drivers stream
// the reader.
type UploadInput struct {
	Filename    string
	ContentType string
	Size        int64
}

// Object is a stored file: the key to delete it by and the URL to serve it.
type Object struct {
	Key string
	URL string
}

type Storage interface {
	Put(ctx context.Context, r io.Reader, in UploadInput) (Object, error)
	Delete(ctx context.Context, key string) error
}

// Config selects and parameterizes the driver. Values come from
// internal/config.
type Config struct {
	Driver string // "disk" or "s3"

	Dir       string
	URLPrefix string

	S3Region        string
	S3Bucket        string
	S3Prefix        string
	S3PublicBaseURL string
}

func New(ctx context.Context, cfg Config) (Storage, error) {
	switch cfg.Driver {
	case "", "disk":
		return NewDisk(cfg.Dir, cfg.URLPrefix), nil
	case "s3":
		if cfg.S3Region == "" || cfg.S3Bucket == "" || cfg.S3PublicBaseURL == "" {
			return nil, fmt.Errorf("storage: s3 driver needs region, bucket and public base URL")
		}
		return NewS3(ctx, S3Options{
			Region:        cfg.S3Region,
			Bucket:        cfg.S3Bucket,
			Prefix:        cfg.S3Prefix,
			PublicBaseURL: cfg.S3PublicBaseURL,
		})
	default:
		return nil, fmt.Errorf("storage: unknown driver %q", cfg.Driver)
	}
}

// objectKey mints a random key, keeping the extension only for accepted
// image formats.
func objectKey(filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".webp", ".gif":
		return uuid.NewString() + ext, nil
	default:
		return "", ErrUnsupportedType
	}
}
