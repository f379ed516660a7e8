// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package revision

import (
	"context"

	"code.gitea.io/publisher/modules/git"
	"code.gitea.io/publisher/modules/log"

	"github.com/hashicorp/go-version"
)

// Querier is the read-only view of the checkout needed to name a revision
type Querier interface {
	DescribeExactTag(ctx context.Context) git.TagResult
	DescribeAlways(ctx context.Context) (string, error)
}

// Revision identifies what is being released
type Revision struct {
	ID         string
	IsExactTag bool
	// Prerelease is set for exact tags carrying a pre-release segment, like v1.3.0-rc1
	Prerelease bool
}

// Resolve names the checked out revision. An exact tag wins; otherwise the
// descriptive identifier is used. A checkout that cannot be described is fatal.
func Resolve(ctx context.Context, q Querier) (*Revision, error) {
	if tag := q.DescribeExactTag(ctx); tag.Found {
		log.Info("Exact tag found: %s", tag.Name)
		return &Revision{
			ID:         tag.Name,
			IsExactTag: true,
			Prerelease: isPrerelease(tag.Name),
		}, nil
	}

	id, err := q.DescribeAlways(ctx)
	if err != nil {
		return nil, err
	}
	log.Info("No exact tag, using revision %s", id)
	return &Revision{ID: id}, nil
}

func isPrerelease(tag string) bool {
	v, err := version.NewVersion(tag)
	if err != nil {
		return false
	}
	return v.Prerelease() != ""
}

// RepoQuerier runs the queries with git in a checkout directory
type RepoQuerier struct {
	Path string
}

var _ Querier = RepoQuerier{}

func (r RepoQuerier) DescribeExactTag(ctx context.Context) git.TagResult {
	return git.DescribeExactTag(ctx, r.Path)
}

func (r RepoQuerier) DescribeAlways(ctx context.Context) (string, error) {
	return git.DescribeAlways(ctx, r.Path)
}
