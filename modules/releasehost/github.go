// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package releasehost

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"

	"code.gitea.io/publisher/modules/log"
	"code.gitea.io/publisher/modules/setting"

	"github.com/google/go-github/v61/github"
)

const listPageSize = 100

var _ Client = &GitHubClient{}

// GitHubClient implements Client on top of the GitHub REST API
type GitHubClient struct {
	client *github.Client
	owner  string
	repo   string
}

// NewGitHubClient creates a client authenticated with basic auth for the given repository
func NewGitHubClient(repo setting.Repository, cred setting.Credential) (*GitHubClient, error) {
	transport := &github.BasicAuthTransport{
		Username: cred.User,
		Password: cred.Token,
	}
	client := github.NewClient(transport.Client())

	baseURL, err := url.Parse(repo.APIURL)
	if err != nil {
		return nil, fmt.Errorf("parse api url %q: %w", repo.APIURL, err)
	}
	uploadURL, err := url.Parse(repo.UploadURL)
	if err != nil {
		return nil, fmt.Errorf("parse upload url %q: %w", repo.UploadURL, err)
	}
	client.BaseURL = baseURL
	client.UploadURL = uploadURL

	return &GitHubClient{
		client: client,
		owner:  repo.Owner,
		repo:   repo.Name,
	}, nil
}

// checkStatus turns an unexpected answer into a RemoteError
func checkStatus(op string, resp *github.Response, err error, expected int) error {
	if resp != nil && resp.StatusCode != expected {
		return &RemoteError{Op: op, StatusCode: resp.StatusCode, Err: err}
	}
	if err != nil {
		return &RemoteError{Op: op, Err: err}
	}
	return nil
}

// ListReleases returns every release of the repository, following pagination
func (g *GitHubClient) ListReleases(ctx context.Context) ([]*Release, error) {
	opts := &github.ListOptions{PerPage: listPageSize}
	var releases []*Release
	for {
		page, resp, err := g.client.Repositories.ListReleases(ctx, g.owner, g.repo, opts)
		if err := checkStatus("GET releases", resp, err, http.StatusOK); err != nil {
			return nil, err
		}
		for _, rel := range page {
			releases = append(releases, convertRelease(rel))
		}
		if resp.NextPage == 0 {
			break
		}
		log.Trace("Fetching releases page %d", resp.NextPage)
		opts.Page = resp.NextPage
	}
	return releases, nil
}

// CreateRelease creates a release and expects 201 Created
func (g *GitHubClient) CreateRelease(ctx context.Context, opts CreateOptions) (*Release, error) {
	op := "POST release"
	if opts.Draft {
		op = "POST draft"
	}
	rel, resp, err := g.client.Repositories.CreateRelease(ctx, g.owner, g.repo, &github.RepositoryRelease{
		TagName:    github.String(opts.TagName),
		Name:       github.String(opts.Name),
		Draft:      github.Bool(opts.Draft),
		Prerelease: github.Bool(opts.Prerelease),
	})
	if err := checkStatus(op, resp, err, http.StatusCreated); err != nil {
		return nil, err
	}
	return convertRelease(rel), nil
}

// DeleteRelease deletes a release by id and expects 204 No Content
func (g *GitHubClient) DeleteRelease(ctx context.Context, id int64) error {
	resp, err := g.client.Repositories.DeleteRelease(ctx, g.owner, g.repo, id)
	return checkStatus("DELETE draft", resp, err, http.StatusNoContent)
}

// UploadAsset posts content as an octet-stream named asset of the release and expects 201 Created
func (g *GitHubClient) UploadAsset(ctx context.Context, releaseID int64, name string, content []byte) (*Asset, error) {
	u := fmt.Sprintf("repos/%s/%s/releases/%d/assets?%s", g.owner, g.repo, releaseID, url.Values{"name": {name}}.Encode())
	req, err := g.client.NewUploadRequest(u, bytes.NewReader(content), int64(len(content)), "application/octet-stream")
	if err != nil {
		return nil, fmt.Errorf("build upload request for %s: %w", name, err)
	}

	asset := new(github.ReleaseAsset)
	resp, err := g.client.Do(ctx, req, asset)
	if err := checkStatus("Upload "+name, resp, err, http.StatusCreated); err != nil {
		return nil, err
	}
	return &Asset{
		ID:   asset.GetID(),
		Name: asset.GetName(),
		Size: int64(asset.GetSize()),
	}, nil
}

func convertRelease(rel *github.RepositoryRelease) *Release {
	return &Release{
		ID:         rel.GetID(),
		TagName:    rel.GetTagName(),
		Name:       rel.GetName(),
		Draft:      rel.GetDraft(),
		Prerelease: rel.GetPrerelease(),
	}
}
