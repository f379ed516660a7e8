// Copyright 2020 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package setting

import (
	"path/filepath"

	"code.gitea.io/publisher/modules/util"

	ini "gopkg.in/ini.v1"
)

// StorageType is a type of Storage
type StorageType string

const (
	// LocalStorageType is the type descriptor for local storage
	LocalStorageType StorageType = "local"
	// MinioStorageType is the type descriptor for MinIO storage
	MinioStorageType StorageType = "minio"
	// S3StorageType is the type descriptor for Amazon S3 storage
	S3StorageType StorageType = "s3"
)

var storageTypes = []StorageType{
	LocalStorageType,
	MinioStorageType,
	S3StorageType,
}

// IsValidStorageType returns true if the given storage type is valid
func IsValidStorageType(storageType StorageType) bool {
	for _, t := range storageTypes {
		if t == storageType {
			return true
		}
	}
	return false
}

// MinioStorageConfig represents the configuration for a minio storage
type MinioStorageConfig struct {
	Endpoint        string `ini:"MINIO_ENDPOINT"`
	AccessKeyID     string `ini:"MINIO_ACCESS_KEY_ID"`
	SecretAccessKey string `ini:"MINIO_SECRET_ACCESS_KEY"`
	Location        string `ini:"MINIO_LOCATION"`
	UseSSL          bool   `ini:"MINIO_USE_SSL"`
}

// S3StorageConfig represents the configuration for an Amazon S3 storage.
// Empty credentials mean the default AWS credential chain (environment, shared profile, instance role).
type S3StorageConfig struct {
	Region          string `ini:"S3_REGION"`
	Endpoint        string `ini:"S3_ENDPOINT"`
	AccessKeyID     string `ini:"S3_ACCESS_KEY_ID"`
	SecretAccessKey string `ini:"S3_SECRET_ACCESS_KEY"`
}

// Storage represents configuration of the latest-pointer storage
type Storage struct {
	Type        StorageType
	Bucket      string
	KeySuffix   string
	Path        string // local storage root, the bucket is a sub directory of it
	MinioConfig MinioStorageConfig
	S3Config    S3StorageConfig
}

func defaultStorage() Storage {
	return Storage{
		Type:      S3StorageType,
		Bucket:    "cli-releases",
		KeySuffix: "-latest",
		Path:      "data/storage",
		MinioConfig: MinioStorageConfig{
			Endpoint: "localhost:9000",
			Location: "us-east-1",
		},
		S3Config: S3StorageConfig{
			Region: "eu-west-1",
		},
	}
}

func loadStorageFrom(cfg *ini.File, s *Storage) error {
	sec := cfg.Section("storage")

	s.Type = StorageType(sec.Key("STORAGE_TYPE").MustString(string(s.Type)))
	if !IsValidStorageType(s.Type) {
		return util.NewConfigurationErrorf("unknown storage type %q", s.Type)
	}
	s.Bucket = sec.Key("BUCKET").MustString(s.Bucket)
	s.KeySuffix = sec.Key("KEY_SUFFIX").MustString(s.KeySuffix)
	s.Path = sec.Key("PATH").MustString(s.Path)
	if !filepath.IsAbs(s.Path) {
		s.Path = filepath.Clean(s.Path)
	}

	if err := sec.MapTo(&s.MinioConfig); err != nil {
		return util.NewConfigurationErrorf("map minio storage config: %v", err)
	}
	if err := sec.MapTo(&s.S3Config); err != nil {
		return util.NewConfigurationErrorf("map s3 storage config: %v", err)
	}
	return nil
}

// ObjectKey returns the fixed key of the latest pointer of an artifact
func (s Storage) ObjectKey(artifact string) string {
	return artifact + s.KeySuffix
}
