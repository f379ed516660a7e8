// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package setting

import (
	"errors"
	"fmt"
	"os"

	"code.gitea.io/publisher/modules/log"
	"code.gitea.io/publisher/modules/util"

	ini "gopkg.in/ini.v1"
)

// EnvConfigPath is the environment variable consulted when no --config flag is given
const EnvConfigPath = "SQSC_PUBLISH_CONFIG"

// Settings is the complete configuration of a publishing run.
// It is built once by Load and then only read.
type Settings struct {
	Repository Repository
	Release    Release
	Artifacts  Artifacts
	Storage    Storage
	Latest     Latest
	Metrics    Metrics
	Git        Git
	LogLevel   log.Level
}

// Default returns the compiled-in configuration
func Default() *Settings {
	return &Settings{
		Repository: defaultRepository(),
		Release:    defaultRelease(),
		Artifacts:  defaultArtifacts(),
		Storage:    defaultStorage(),
		Latest:     defaultLatest(),
		Metrics:    defaultMetrics(),
		Git:        defaultGit(),
		LogLevel:   log.INFO,
	}
}

// Load returns the compiled-in configuration overlaid with the ini file at path.
// An empty path means no overlay. A path that does not exist is a configuration error.
func Load(path string) (*Settings, error) {
	s := Default()
	if path == "" {
		return s, s.validate()
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, util.NewConfigurationErrorf("config file %s does not exist", path)
		}
		return nil, util.NewConfigurationErrorf("unable to stat config file %s: %v", path, err)
	}
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, util.NewConfigurationErrorf("unable to parse config file %s: %v", path, err)
	}
	if err := s.loadFrom(cfg); err != nil {
		return nil, err
	}
	return s, s.validate()
}

// LoadFromString is Load for an in-memory ini document
func LoadFromString(content string) (*Settings, error) {
	cfg, err := ini.Load([]byte(content))
	if err != nil {
		return nil, util.NewConfigurationErrorf("unable to parse config: %v", err)
	}
	s := Default()
	if err := s.loadFrom(cfg); err != nil {
		return nil, err
	}
	return s, s.validate()
}

func (s *Settings) loadFrom(cfg *ini.File) error {
	loadRepositoryFrom(cfg, &s.Repository)
	if err := loadReleaseFrom(cfg, &s.Release); err != nil {
		return err
	}
	loadArtifactsFrom(cfg, &s.Artifacts)
	if err := loadStorageFrom(cfg, &s.Storage); err != nil {
		return err
	}
	loadLatestFrom(cfg, &s.Latest)
	loadMetricsFrom(cfg, &s.Metrics)
	if err := loadGitFrom(cfg, &s.Git); err != nil {
		return err
	}
	s.LogLevel = log.LevelFromString(cfg.Section("log").Key("LEVEL").MustString(s.LogLevel.String()))
	return nil
}

func (s *Settings) validate() error {
	if s.Repository.Owner == "" || s.Repository.Name == "" {
		return util.NewConfigurationErrorf("repository owner and name must be set")
	}
	if len(s.Artifacts.Names) == 0 {
		return util.NewConfigurationErrorf("no artifact configured")
	}
	seen := make(map[string]bool, len(s.Artifacts.Names))
	for _, name := range s.Artifacts.Names {
		if seen[name] {
			return util.NewConfigurationErrorf("artifact %s is listed twice", name)
		}
		seen[name] = true
	}
	if s.Storage.Bucket == "" && s.Storage.Type != LocalStorageType {
		return util.NewConfigurationErrorf("storage bucket must be set for %s storage", s.Storage.Type)
	}
	return nil
}

// String is used by the debug dump at startup, it never contains secrets
func (s *Settings) String() string {
	return fmt.Sprintf("repository=%s/%s artifacts=%v storage=%s bucket=%s prune=%s/%s",
		s.Repository.Owner, s.Repository.Name, s.Artifacts.Names, s.Storage.Type, s.Storage.Bucket,
		s.Release.PruneOrder, s.Release.PrunePolicy)
}
