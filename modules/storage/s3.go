// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package storage

import (
	"context"
	"errors"
	"io"
	"os"

	"code.gitea.io/publisher/modules/log"
	"code.gitea.io/publisher/modules/setting"
	"code.gitea.io/publisher/modules/util"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

var _ ObjectStorage = &S3Storage{}

// S3Storage stores objects in an Amazon S3 bucket
type S3Storage struct {
	ctx    context.Context
	client *s3.Client
	bucket string
}

func s3Options(cfg setting.S3StorageConfig) func(*s3.Options) {
	return func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	}
}

// NewS3Storage returns a S3 storage. Credentials come from the default AWS chain
// unless an access key is configured.
func NewS3Storage(ctx context.Context, cfg *setting.Storage) (ObjectStorage, error) {
	config := cfg.S3Config
	log.Info("Creating S3 storage for bucket %s in %s", cfg.Bucket, config.Region)

	loadOpts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(config.Region)}
	if config.AccessKeyID != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(config.AccessKeyID, config.SecretAccessKey, ""),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, ErrInvalidConfiguration{cfg: config.Region, err: err}
	}

	return &S3Storage{
		ctx:    ctx,
		client: s3.NewFromConfig(awsCfg, s3Options(config)),
		bucket: cfg.Bucket,
	}, nil
}

// Save uploads the object, replacing the previous one
func (s *S3Storage) Save(path string, r io.Reader, size int64) (int64, error) {
	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(path),
		Body:        r,
		ContentType: aws.String("application/octet-stream"),
	}
	if size >= 0 {
		input.ContentLength = aws.Int64(size)
	}
	if _, err := s.client.PutObject(s.ctx, input); err != nil {
		return 0, err
	}
	return size, nil
}

// SetPublicRead applies the public-read canned ACL to the object
func (s *S3Storage) SetPublicRead(path string) error {
	_, err := s.client.PutObjectAcl(s.ctx, &s3.PutObjectAclInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(path),
		ACL:    types.ObjectCannedACLPublicRead,
	})
	return err
}

// Stat returns the stat information of the object
func (s *S3Storage) Stat(path string) (os.FileInfo, error) {
	out, err := s.client.HeadObject(s.ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(path),
	})
	if err != nil {
		var notFound *types.NotFound
		if errors.As(err, &notFound) {
			return nil, util.NewNotExistErrorf("object %s does not exist", path)
		}
		return nil, err
	}
	info := objectInfo{name: path, size: aws.ToInt64(out.ContentLength), mode: publicReadMode}
	if out.LastModified != nil {
		info.modTime = *out.LastModified
	}
	return info, nil
}

func init() {
	RegisterStorageType(setting.S3StorageType, NewS3Storage)
}
