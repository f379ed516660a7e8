// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package release

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"code.gitea.io/publisher/modules/releasehost"
	"code.gitea.io/publisher/modules/setting"

	"github.com/stretchr/testify/require"
)

// fakeClient records every call in order and fails the calls it is told to fail
type fakeClient struct {
	existing []*releasehost.Release
	nextID   int64

	listStatus   int
	createStatus int
	uploadFail   map[string]int
	deleteFail   map[int64]int

	calls   []string
	created []releasehost.CreateOptions
	uploads map[string][]byte
	deleted []int64
}

var _ releasehost.Client = &fakeClient{}

func newFakeClient(existing ...*releasehost.Release) *fakeClient {
	return &fakeClient{
		existing: existing,
		nextID:   1000,
		uploads:  map[string][]byte{},
	}
}

func (f *fakeClient) ListReleases(context.Context) ([]*releasehost.Release, error) {
	f.calls = append(f.calls, "GET releases")
	if f.listStatus != 0 {
		return nil, &releasehost.RemoteError{Op: "GET releases", StatusCode: f.listStatus}
	}
	return f.existing, nil
}

func (f *fakeClient) CreateRelease(_ context.Context, opts releasehost.CreateOptions) (*releasehost.Release, error) {
	op := "POST release"
	if opts.Draft {
		op = "POST draft"
	}
	f.calls = append(f.calls, op)
	if f.createStatus != 0 {
		return nil, &releasehost.RemoteError{Op: op, StatusCode: f.createStatus}
	}
	f.created = append(f.created, opts)
	f.nextID++
	return &releasehost.Release{ID: f.nextID, TagName: opts.TagName, Name: opts.Name, Draft: opts.Draft, Prerelease: opts.Prerelease}, nil
}

func (f *fakeClient) DeleteRelease(_ context.Context, id int64) error {
	f.calls = append(f.calls, fmt.Sprintf("DELETE %d", id))
	if status, ok := f.deleteFail[id]; ok {
		return &releasehost.RemoteError{Op: "DELETE draft", StatusCode: status}
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeClient) UploadAsset(_ context.Context, releaseID int64, name string, content []byte) (*releasehost.Asset, error) {
	f.calls = append(f.calls, fmt.Sprintf("Upload %d %s", releaseID, name))
	if status, ok := f.uploadFail[name]; ok {
		return nil, &releasehost.RemoteError{Op: "Upload " + name, StatusCode: status}
	}
	f.uploads[name] = content
	return &releasehost.Asset{ID: int64(len(f.uploads)), Name: name, Size: int64(len(content))}, nil
}

func (f *fakeClient) countPrefix(prefix string) int {
	n := 0
	for _, c := range f.calls {
		if len(c) >= len(prefix) && c[:len(prefix)] == prefix {
			n++
		}
	}
	return n
}

// testSettings writes the default artifacts into a temporary directory
func testSettings(t *testing.T) *setting.Settings {
	t.Helper()
	s := setting.Default()
	s.Artifacts.Dir = t.TempDir()
	for _, name := range s.Artifacts.Names {
		require.NoError(t, os.WriteFile(filepath.Join(s.Artifacts.Dir, name), []byte("build of "+name), 0o755))
	}
	return s
}

