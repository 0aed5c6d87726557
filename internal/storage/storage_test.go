package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskPutAndDelete(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	d := NewDisk(dir, "/uploads/")

	obj, err := d.Put(ctx, strings.NewReader("fake png bytes"), UploadInput{Filename: "Shirt.PNG"})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(obj.Key, ".png"))
	assert.Equal(t, "/uploads/"+obj.Key, obj.URL)

	raw, err := os.ReadFile(filepath.Join(dir, obj.Key))
	require.NoError(t, err)
	assert.Equal(t, "fake png bytes", string(raw))

	require.NoError(t, d.Delete(ctx, obj.Key))
	_, err = os.Stat(filepath.Join(dir, obj.Key))
	assert.True(t, os.IsNotExist(err))
}

func TestDiskRejectsNonImageUploads(t *testing.T) {
	d := NewDisk(t.TempDir(), "/uploads")

	_, err := d.Put(context.Background(), strings.NewReader("#!/bin/sh"), UploadInput{Filename: "evil.sh"})
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestDiskDeleteIgnoresPathTraversal(t *testing.T) {
	dir := t.TempDir()
	d := NewDisk(dir, "/uploads")

	outside := filepath.Join(dir, "..", "victim.txt")
	require.NoError(t, os.WriteFile(outside, []byte("keep me"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "victim.txt"), []byte("x"), 0o644))

	require.NoError(t, d.Delete(context.Background(), "../victim.txt"))

	_, err := os.Stat(outside)
	assert.NoError(t, err, "delete must stay inside the upload dir")
}

func TestNewSelectsDriver(t *testing.T) {
	st, err := New(context.Background(), Config{Driver: "disk", Dir: t.TempDir(), URLPrefix: "/uploads"})
	require.NoError(t, err)
	assert.IsType(t, &Disk{}, st)

	st, err = New(context.Background(), Config{Dir: t.TempDir(), URLPrefix: "/uploads"})
	require.NoError(t, err)
	assert.IsType(t, &Disk{}, st, "disk is the default driver")

	_, err = New(context.Background(), Config{Driver: "s3"})
	assert.Error(t, err, "s3 without region/bucket/base URL must fail")

	_, err = New(context.Background(), Config{Driver: "ftp"})
	assert.Error(t, err)
}
