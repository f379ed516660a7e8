// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package releasehost talks to the release API of the source hosting platform.
package releasehost

import (
	"context"
	"fmt"

	"code.gitea.io/publisher/modules/util"
)

// Release is a release record as seen by the publisher
type Release struct {
	ID         int64
	TagName    string
	Name       string
	Draft      bool
	Prerelease bool
}

// Asset is a binary attached to a release
type Asset struct {
	ID   int64
	Name string
	Size int64
}

// CreateOptions describes a release to create
type CreateOptions struct {
	TagName    string
	Name       string
	Draft      bool
	Prerelease bool
}

// Client is the set of release API calls used by the release workflow.
// Every call is blocking and is never retried.
type Client interface {
	ListReleases(ctx context.Context) ([]*Release, error)
	CreateRelease(ctx context.Context, opts CreateOptions) (*Release, error)
	DeleteRelease(ctx context.Context, id int64) error
	UploadAsset(ctx context.Context, releaseID int64, name string, content []byte) (*Asset, error)
}

// RemoteError is returned when a call did not answer with the expected status
type RemoteError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *RemoteError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *RemoteError) Unwrap() []error {
	if e.Err == nil {
		return []error{util.ErrRemote}
	}
	return []error{util.ErrRemote, e.Err}
}

// IsRemoteError checks if an error is a RemoteError
func IsRemoteError(err error) bool {
	_, ok := err.(*RemoteError)
	return ok
}
