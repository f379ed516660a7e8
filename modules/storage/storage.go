// Copyright 2020 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"code.gitea.io/publisher/modules/setting"
	"code.gitea.io/publisher/modules/util"
)

// ErrInvalidConfiguration is called when there is invalid configuration for a storage
type ErrInvalidConfiguration struct {
	cfg any
	err error
}

func (err ErrInvalidConfiguration) Error() string {
	if err.err != nil {
		return fmt.Sprintf("Invalid Configuration Argument: %v: Error: %v", err.cfg, err.err)
	}
	return fmt.Sprintf("Invalid Configuration Argument: %v", err.cfg)
}

func (err ErrInvalidConfiguration) Unwrap() error {
	return util.ErrConfiguration
}

// IsErrInvalidConfiguration checks if an error is an ErrInvalidConfiguration
func IsErrInvalidConfiguration(err error) bool {
	_, ok := err.(ErrInvalidConfiguration)
	return ok
}

type Type = setting.StorageType

// NewStorageFunc is a function that creates a storage
type NewStorageFunc func(ctx context.Context, cfg *setting.Storage) (ObjectStorage, error)

var storageMap = map[Type]NewStorageFunc{}

// RegisterStorageType registers a provided storage type with a function to create it
func RegisterStorageType(typ Type, fn func(ctx context.Context, cfg *setting.Storage) (ObjectStorage, error)) {
	storageMap[typ] = fn
}

// ObjectStorage represents an object storage to handle a bucket and files
type ObjectStorage interface {
	// Save store a object, overwriting any object at the same path. If size is unknown set -1
	Save(path string, r io.Reader, size int64) (int64, error)
	// SetPublicRead makes the object readable by anonymous users
	SetPublicRead(path string) error
	Stat(path string) (os.FileInfo, error)
}

// NewStorage takes a storage type and some config and returns an ObjectStorage or an error
func NewStorage(ctx context.Context, typ Type, cfg *setting.Storage) (ObjectStorage, error) {
	if len(typ) == 0 {
		typ = setting.LocalStorageType
	}
	fn, ok := storageMap[typ]
	if !ok {
		return nil, util.NewConfigurationErrorf("Unsupported storage type: %s", typ)
	}

	return fn(ctx, cfg)
}

// SaveFile stores the local file at localPath under path
func SaveFile(objStorage ObjectStorage, path, localPath string) (int64, error) {
	f, err := os.Open(localPath)
	if err != nil {
		return 0, util.LocalIOError{Path: localPath, Err: err}
	}
	defer f.Close()

	size := int64(-1)
	if fi, err := f.Stat(); err == nil {
		size = fi.Size()
	}
	return objStorage.Save(path, f, size)
}

type objectInfo struct {
	name    string
	size    int64
	modTime time.Time
	mode    os.FileMode
}

func (o objectInfo) Name() string       { return o.name }
func (o objectInfo) Size() int64        { return o.size }
func (o objectInfo) Mode() os.FileMode  { return o.mode }
func (o objectInfo) ModTime() time.Time { return o.modTime }
func (o objectInfo) IsDir() bool        { return false }
func (o objectInfo) Sys() any           { return nil }
