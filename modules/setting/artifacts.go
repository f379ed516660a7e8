// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package setting

import (
	"path/filepath"
	"strings"

	ini "gopkg.in/ini.v1"
)

// Artifacts lists the executables shipped by both pipelines
type Artifacts struct {
	Names []string
	Dir   string
}

func defaultArtifacts() Artifacts {
	return Artifacts{
		Names: []string{"sqsc-linux-amd64", "sqsc-darwin-amd64"},
		Dir:   ".",
	}
}

func loadArtifactsFrom(cfg *ini.File, a *Artifacts) {
	sec := cfg.Section("artifacts")
	if sec.HasKey("NAMES") {
		names := make([]string, 0, len(a.Names))
		for _, name := range sec.Key("NAMES").Strings(",") {
			if name = strings.TrimSpace(name); name != "" {
				names = append(names, name)
			}
		}
		a.Names = names
	}
	a.Dir = sec.Key("DIR").MustString(a.Dir)
}

// Path returns the local path of the named artifact
func (a Artifacts) Path(name string) string {
	return filepath.Join(a.Dir, name)
}
