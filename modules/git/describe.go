// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package git

import (
	"context"
	"errors"
	"strings"

	"code.gitea.io/publisher/modules/log"
)

// TagResult is the answer of an exact tag lookup.
// Found is false when HEAD is not exactly at a tag, which is not an error.
type TagResult struct {
	Found bool
	Name  string
}

// DescribeExactTag returns the tag pointing exactly at HEAD.
// Any failure of the underlying command means "no exact tag".
func DescribeExactTag(ctx context.Context, repoPath string) TagResult {
	stdout, _, err := NewCommand(ctx, "describe", "--tags", "--exact-match", "HEAD").RunStdString(&RunOpts{Dir: repoPath})
	if err != nil {
		log.Debug("No exact tag at HEAD in %s: %v", repoPath, err)
		return TagResult{}
	}
	name := strings.TrimSpace(stdout)
	return TagResult{Found: name != "", Name: name}
}

// DescribeAlways returns a descriptive identifier of HEAD: "<tag>-<count>-g<hash>"
// when a tag is reachable, otherwise the abbreviated commit hash.
func DescribeAlways(ctx context.Context, repoPath string) (string, error) {
	stdout, _, err := NewCommand(ctx, "describe", "--tags", "--always").RunStdString(&RunOpts{Dir: repoPath})
	if err != nil {
		return "", ErrNotRepository{Path: repoPath, Err: err}
	}
	id := strings.TrimSpace(stdout)
	if id == "" {
		return "", ErrNotRepository{Path: repoPath, Err: errors.New("git describe returned an empty identifier")}
	}
	return id, nil
}

// CurrentBranch returns the short name of the checked out branch, "HEAD" when detached
func CurrentBranch(ctx context.Context, repoPath string) (string, error) {
	stdout, _, err := NewCommand(ctx, "rev-parse", "--abbrev-ref", "HEAD").RunStdString(&RunOpts{Dir: repoPath})
	if err != nil {
		return "", ErrNotRepository{Path: repoPath, Err: err}
	}
	return strings.TrimSpace(stdout), nil
}
