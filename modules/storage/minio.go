// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package storage

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"

	"code.gitea.io/publisher/modules/log"
	"code.gitea.io/publisher/modules/setting"
	"code.gitea.io/publisher/modules/util"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var _ ObjectStorage = &MinioStorage{}

// MinioStorage returns a minio bucket storage
type MinioStorage struct {
	ctx    context.Context
	client *minio.Client
	bucket string
}

func convertMinioErr(err error) error {
	if err == nil {
		return nil
	}
	errResp, ok := err.(minio.ErrorResponse)
	if !ok {
		return err
	}

	// Convert two responses to standard analogues
	switch errResp.Code {
	case "NoSuchKey":
		return os.ErrNotExist
	case "AccessDenied":
		return os.ErrPermission
	}

	return err
}

// NewMinioStorage returns a minio storage
func NewMinioStorage(ctx context.Context, cfg *setting.Storage) (ObjectStorage, error) {
	config := cfg.MinioConfig
	log.Info("Creating Minio storage at %s:%s", config.Endpoint, cfg.Bucket)

	minioClient, err := minio.New(config.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.AccessKeyID, config.SecretAccessKey, ""),
		Secure: config.UseSSL,
		Region: config.Location,
	})
	if err != nil {
		return nil, convertMinioErr(err)
	}

	exists, err := minioClient.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, convertMinioErr(err)
	}
	if !exists {
		return nil, ErrInvalidConfiguration{cfg: cfg.Bucket, err: errors.New("bucket does not exist")}
	}

	return &MinioStorage{
		ctx:    ctx,
		client: minioClient,
		bucket: cfg.Bucket,
	}, nil
}

// Save saves a file to minio
func (m *MinioStorage) Save(path string, r io.Reader, size int64) (int64, error) {
	uploadInfo, err := m.client.PutObject(
		m.ctx,
		m.bucket,
		path,
		r,
		size,
		minio.PutObjectOptions{ContentType: "application/octet-stream"},
	)
	if err != nil {
		return 0, convertMinioErr(err)
	}
	return uploadInfo.Size, nil
}

// SetPublicRead copies the object onto itself with a public-read canned ACL,
// minio-go has no dedicated object ACL call.
func (m *MinioStorage) SetPublicRead(path string) error {
	_, err := m.client.CopyObject(m.ctx,
		minio.CopyDestOptions{
			Bucket:          m.bucket,
			Object:          path,
			ReplaceMetadata: true,
			UserMetadata: map[string]string{
				"x-amz-acl":    "public-read",
				"Content-Type": "application/octet-stream",
			},
		},
		minio.CopySrcOptions{
			Bucket: m.bucket,
			Object: path,
		},
	)
	return convertMinioErr(err)
}

// Stat returns the stat information of the object
func (m *MinioStorage) Stat(path string) (os.FileInfo, error) {
	info, err := m.client.StatObject(
		m.ctx,
		m.bucket,
		path,
		minio.StatObjectOptions{},
	)
	if err != nil {
		if errResp, ok := err.(minio.ErrorResponse); ok && errResp.StatusCode == http.StatusNotFound {
			return nil, util.NewNotExistErrorf("object %s does not exist", path)
		}
		return nil, convertMinioErr(err)
	}
	return objectInfo{name: path, size: info.Size, modTime: info.LastModified, mode: publicReadMode}, nil
}

func init() {
	RegisterStorageType(setting.MinioStorageType, NewMinioStorage)
}
