// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package releasehost

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"code.gitea.io/publisher/modules/setting"
	"code.gitea.io/publisher/modules/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const releasesPath = "/repos/squarescale/squarescale-cli/releases"

func newTestClient(t *testing.T, mux *http.ServeMux) *GitHubClient {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != "bot" || pass != "token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)

	client, err := NewGitHubClient(setting.Repository{
		Owner:     "squarescale",
		Name:      "squarescale-cli",
		APIURL:    srv.URL + "/",
		UploadURL: srv.URL + "/",
	}, setting.Credential{User: "bot", Token: "token"})
	require.NoError(t, err)
	return client
}

func TestListReleasesPaginates(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET "+releasesPath, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "100", r.URL.Query().Get("per_page"))
		switch r.URL.Query().Get("page") {
		case "", "1":
			w.Header().Set("Link", fmt.Sprintf(`<http://%s%s?page=2&per_page=100>; rel="next"`, r.Host, releasesPath))
			_, _ = io.WriteString(w, `[{"id":1,"tag_name":"v1.0.0","name":"cli release (v1.0.0)","draft":false},{"id":2,"tag_name":"abc1234","draft":true}]`)
		case "2":
			_, _ = io.WriteString(w, `[{"id":3,"tag_name":"v1.1.0-rc1","draft":false,"prerelease":true}]`)
		default:
			t.Errorf("unexpected page %q", r.URL.Query().Get("page"))
		}
	})

	releases, err := newTestClient(t, mux).ListReleases(t.Context())
	require.NoError(t, err)
	require.Len(t, releases, 3)
	assert.Equal(t, &Release{ID: 1, TagName: "v1.0.0", Name: "cli release (v1.0.0)"}, releases[0])
	assert.True(t, releases[1].Draft)
	assert.True(t, releases[2].Prerelease)
}

func TestListReleasesFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET "+releasesPath, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := newTestClient(t, mux).ListReleases(t.Context())
	require.Error(t, err)
	assert.EqualError(t, err, "GET releases 500")
	assert.ErrorIs(t, err, util.ErrRemote)
	assert.True(t, IsRemoteError(err))
}

func TestCreateRelease(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST "+releasesPath, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "v1.1.0-3-gabc1234", body["tag_name"])
		assert.Equal(t, "cli latest release (v1.1.0-3-gabc1234)", body["name"])
		assert.Equal(t, true, body["draft"])
		assert.Equal(t, false, body["prerelease"])
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"id":42,"tag_name":"v1.1.0-3-gabc1234","name":"cli latest release (v1.1.0-3-gabc1234)","draft":true}`)
	})

	rel, err := newTestClient(t, mux).CreateRelease(t.Context(), CreateOptions{
		TagName: "v1.1.0-3-gabc1234",
		Name:    "cli latest release (v1.1.0-3-gabc1234)",
		Draft:   true,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 42, rel.ID)
	assert.True(t, rel.Draft)
}

func TestCreateReleaseUnexpectedStatus(t *testing.T) {
	for _, status := range []int{http.StatusOK, http.StatusUnprocessableEntity} {
		mux := http.NewServeMux()
		mux.HandleFunc("POST "+releasesPath, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			_, _ = io.WriteString(w, `{"id":42}`)
		})

		_, err := newTestClient(t, mux).CreateRelease(t.Context(), CreateOptions{TagName: "v1.2.0", Name: "cli release (v1.2.0)"})
		assert.EqualError(t, err, fmt.Sprintf("POST release %d", status))
		assert.ErrorIs(t, err, util.ErrRemote)
	}
}

func TestDeleteRelease(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("DELETE "+releasesPath+"/7", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("DELETE "+releasesPath+"/8", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	client := newTestClient(t, mux)
	assert.NoError(t, client.DeleteRelease(t.Context(), 7))
	assert.EqualError(t, client.DeleteRelease(t.Context(), 8), "DELETE draft 404")
}

func TestUploadAsset(t *testing.T) {
	content := []byte("\x7fELF binary content")
	mux := http.NewServeMux()
	mux.HandleFunc("POST "+releasesPath+"/42/assets", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "sqsc-linux-amd64", r.URL.Query().Get("name"))
		assert.Equal(t, "application/octet-stream", r.Header.Get("Content-Type"))
		assert.EqualValues(t, len(content), r.ContentLength)
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, content, body)
		w.WriteHeader(http.StatusCreated)
		_, _ = fmt.Fprintf(w, `{"id":5,"name":"sqsc-linux-amd64","size":%d}`, len(content))
	})
	mux.HandleFunc("POST "+releasesPath+"/43/assets", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	client := newTestClient(t, mux)
	asset, err := client.UploadAsset(t.Context(), 42, "sqsc-linux-amd64", content)
	require.NoError(t, err)
	assert.Equal(t, &Asset{ID: 5, Name: "sqsc-linux-amd64", Size: int64(len(content))}, asset)

	_, err = client.UploadAsset(t.Context(), 43, "sqsc-darwin-amd64", content)
	assert.EqualError(t, err, "Upload sqsc-darwin-amd64 502")
}

func TestRemoteErrorWithoutStatus(t *testing.T) {
	err := &RemoteError{Op: "GET releases", Err: io.ErrUnexpectedEOF}
	assert.Equal(t, "GET releases: unexpected EOF", err.Error())
	assert.ErrorIs(t, err, util.ErrRemote)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}
