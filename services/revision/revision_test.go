// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package revision

import (
	"context"
	"errors"
	"os/exec"
	"testing"

	"code.gitea.io/publisher/modules/git"
	"code.gitea.io/publisher/modules/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeQuerier struct {
	tag         git.TagResult
	describe    string
	describeErr error
	alwaysCalls int
}

func (f *fakeQuerier) DescribeExactTag(context.Context) git.TagResult {
	return f.tag
}

func (f *fakeQuerier) DescribeAlways(context.Context) (string, error) {
	f.alwaysCalls++
	return f.describe, f.describeErr
}

func TestResolveExactTag(t *testing.T) {
	q := &fakeQuerier{tag: git.TagResult{Found: true, Name: "v1.2.0"}, describe: "v1.2.0"}
	rev, err := Resolve(t.Context(), q)
	require.NoError(t, err)
	assert.Equal(t, &Revision{ID: "v1.2.0", IsExactTag: true}, rev)
	assert.Zero(t, q.alwaysCalls)
}

func TestResolvePrereleaseTag(t *testing.T) {
	q := &fakeQuerier{tag: git.TagResult{Found: true, Name: "v1.3.0-rc1"}}
	rev, err := Resolve(t.Context(), q)
	require.NoError(t, err)
	assert.True(t, rev.IsExactTag)
	assert.True(t, rev.Prerelease)
}

func TestResolveSnapshot(t *testing.T) {
	q := &fakeQuerier{describe: "v1.1.0-3-gabc1234"}
	rev, err := Resolve(t.Context(), q)
	require.NoError(t, err)
	assert.Equal(t, &Revision{ID: "v1.1.0-3-gabc1234"}, rev)
	assert.Equal(t, 1, q.alwaysCalls)
}

func TestResolveNotRepository(t *testing.T) {
	q := &fakeQuerier{describeErr: git.ErrNotRepository{Path: "/tmp/x", Err: errors.New("exit status 128")}}
	_, err := Resolve(t.Context(), q)
	require.Error(t, err)
	assert.ErrorIs(t, err, util.ErrPrecondition)
}

func TestIsPrerelease(t *testing.T) {
	kases := map[string]bool{
		"v1.2.0":          false,
		"v1.3.0-rc1":      true,
		"1.0.0-beta.2":    true,
		"release-2024":    false,
		"v2":              false,
		"not a version!!": false,
	}
	for tag, expected := range kases {
		assert.Equal(t, expected, isPrerelease(tag), tag)
	}
}

func TestRepoQuerierOutsideCheckout(t *testing.T) {
	if _, err := exec.LookPath(git.GitExecutable); err != nil {
		t.Skip("git is not installed")
	}
	q := RepoQuerier{Path: t.TempDir()}
	assert.False(t, q.DescribeExactTag(t.Context()).Found)
	_, err := Resolve(t.Context(), q)
	assert.True(t, git.IsErrNotRepository(err))
}
