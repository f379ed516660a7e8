// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"code.gitea.io/publisher/modules/log"
	"code.gitea.io/publisher/modules/setting"
)

var _ ObjectStorage = &LocalStorage{}

const (
	privateMode    os.FileMode = 0o600
	publicReadMode os.FileMode = 0o644
)

// LocalStorage represents a local files storage, the bucket is a directory under the storage path
type LocalStorage struct {
	dir    string
	tmpdir string
}

// NewLocalStorage returns a local files
func NewLocalStorage(_ context.Context, cfg *setting.Storage) (ObjectStorage, error) {
	if cfg.Path == "" {
		return nil, ErrInvalidConfiguration{cfg: cfg, err: fmt.Errorf("empty storage path")}
	}
	dir := filepath.Join(cfg.Path, cfg.Bucket)
	log.Info("Creating new Local Storage at %s", dir)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, err
	}

	return &LocalStorage{
		dir:    dir,
		tmpdir: filepath.Join(cfg.Path, "tmp"),
	}, nil
}

func (l *LocalStorage) buildLocalPath(p string) string {
	return filepath.Join(l.dir, filepath.Clean("/"+strings.ReplaceAll(p, "\\", "/"))[1:])
}

// Save a file, it is written to a temporary file and renamed over the previous object
func (l *LocalStorage) Save(path string, r io.Reader, size int64) (int64, error) {
	p := l.buildLocalPath(path)
	if err := os.MkdirAll(filepath.Dir(p), os.ModePerm); err != nil {
		return 0, err
	}

	// Create a temporary file to save to
	if err := os.MkdirAll(l.tmpdir, os.ModePerm); err != nil {
		return 0, err
	}
	tmp, err := os.CreateTemp(l.tmpdir, "upload-*")
	if err != nil {
		return 0, err
	}
	tmpRemoved := false
	defer func() {
		if !tmpRemoved {
			_ = os.Remove(tmp.Name())
		}
	}()

	n, err := io.Copy(tmp, r)
	if err != nil {
		_ = tmp.Close()
		return 0, err
	}
	if err := tmp.Close(); err != nil {
		return 0, err
	}
	if size >= 0 && n != size {
		return 0, fmt.Errorf("short write for %s: wrote %d of %d bytes", path, n, size)
	}
	if err := os.Chmod(tmp.Name(), privateMode); err != nil {
		return 0, err
	}
	if err := os.Rename(tmp.Name(), p); err != nil {
		return 0, err
	}
	tmpRemoved = true
	return n, nil
}

// SetPublicRead makes the file world readable
func (l *LocalStorage) SetPublicRead(path string) error {
	return os.Chmod(l.buildLocalPath(path), publicReadMode)
}

// Stat returns the info of the file
func (l *LocalStorage) Stat(path string) (os.FileInfo, error) {
	return os.Stat(l.buildLocalPath(path))
}

func init() {
	RegisterStorageType(setting.LocalStorageType, NewLocalStorage)
}
