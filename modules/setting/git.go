// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package setting

import (
	"time"

	"code.gitea.io/publisher/modules/util"

	ini "gopkg.in/ini.v1"
)

// Git holds the settings of the git commands run against the checkout
type Git struct {
	// Path is the git executable, looked up in PATH when not absolute
	Path    string
	Timeout time.Duration
}

func defaultGit() Git {
	return Git{
		Path:    "git",
		Timeout: 60 * time.Second,
	}
}

func loadGitFrom(cfg *ini.File, g *Git) error {
	sec := cfg.Section("git")
	g.Path = sec.Key("PATH").MustString(g.Path)
	g.Timeout = sec.Key("TIMEOUT").MustDuration(g.Timeout)
	if g.Timeout <= 0 {
		return util.NewConfigurationErrorf("[git] TIMEOUT must be positive, got %s", g.Timeout)
	}
	return nil
}
