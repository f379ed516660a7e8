// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package setting

import (
	"strings"

	ini "gopkg.in/ini.v1"
)

// Repository holds the coordinates of the repository receiving the releases
type Repository struct {
	Owner     string
	Name      string
	APIURL    string
	UploadURL string
}

func defaultRepository() Repository {
	return Repository{
		Owner:     "squarescale",
		Name:      "squarescale-cli",
		APIURL:    "https://api.github.com/",
		UploadURL: "https://uploads.github.com/",
	}
}

func loadRepositoryFrom(cfg *ini.File, r *Repository) {
	sec := cfg.Section("repository")
	r.Owner = sec.Key("OWNER").MustString(r.Owner)
	r.Name = sec.Key("NAME").MustString(r.Name)
	r.APIURL = withTrailingSlash(sec.Key("API_URL").MustString(r.APIURL))
	r.UploadURL = withTrailingSlash(sec.Key("UPLOAD_URL").MustString(r.UploadURL))
}

// FullName returns owner/name
func (r Repository) FullName() string {
	return r.Owner + "/" + r.Name
}

func withTrailingSlash(s string) string {
	if s == "" || strings.HasSuffix(s, "/") {
		return s
	}
	return s + "/"
}
