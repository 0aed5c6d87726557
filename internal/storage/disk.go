package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Disk writes uploads under one directory and serves them through the
// configured URL prefix.
type Disk struct {
	dir       string
	urlPrefix string
}

func NewDisk(dir, urlPrefix string) *Disk {
	return &Disk{dir: dir, urlPrefix: strings.TrimRight(urlPrefix, "/")}
}

func (d *Disk) Put(_ context.Context, r io.Reader, in UploadInput) (Object, error) {
	key, err := objectKey(in.Filename)
	if err != nil {
		return Object{}, err
	}
	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return Object{}, err
	}

	f, err := os.Create(filepath.Join(d.dir, key))
	if err != nil {
		return Object{}, err
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return Object{}, err
	}
	if err := f.Close(); err != nil {
		return Object{}, err
	}

	return Object{Key: key, URL: d.urlPrefix + "/" + key}, nil
}

func (d *Disk) Delete(_ context.Context, key string) error {
	// disk keys are flat; strip any path a caller smuggled in
	return os.Remove(filepath.Join(d.dir, filepath.Base(key)))
}

func (d *Disk) String() string { return fmt.Sprintf("disk(%s)", d.dir) }
