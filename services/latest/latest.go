// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package latest

import (
	"context"

	"code.gitea.io/publisher/modules/git"
	"code.gitea.io/publisher/modules/log"
	"code.gitea.io/publisher/modules/metrics"
	"code.gitea.io/publisher/modules/setting"
	"code.gitea.io/publisher/modules/storage"
	"code.gitea.io/publisher/modules/util"

	"github.com/dustin/go-humanize"
)

// BranchQuerier tells which branch is checked out
type BranchQuerier interface {
	CurrentBranch(ctx context.Context) (string, error)
}

// RepoBranch reads the branch of a checkout with git
type RepoBranch struct {
	Path string
}

func (r RepoBranch) CurrentBranch(ctx context.Context) (string, error) {
	return git.CurrentBranch(ctx, r.Path)
}

// Publisher overwrites the latest pointer of every artifact
type Publisher struct {
	storage       storage.ObjectStorage
	cfg           setting.Storage
	artifacts     setting.Artifacts
	requireBranch string
	branches      BranchQuerier
	metrics       metrics.Recorder
}

// NewPublisher creates a latest-pointer publisher. branches is only consulted
// when a required branch is configured. A nil recorder records nothing.
func NewPublisher(objStorage storage.ObjectStorage, s *setting.Settings, branches BranchQuerier, rec metrics.Recorder) *Publisher {
	if rec == nil {
		rec = metrics.Noop{}
	}
	return &Publisher{
		storage:       objStorage,
		cfg:           s.Storage,
		artifacts:     s.Artifacts,
		requireBranch: s.Latest.RequireBranch,
		branches:      branches,
		metrics:       rec,
	}
}

func (p *Publisher) checkBranch(ctx context.Context) error {
	if p.requireBranch == "" {
		return nil
	}
	branch, err := p.branches.CurrentBranch(ctx)
	if err != nil {
		return err
	}
	if branch != p.requireBranch {
		return util.NewPreconditionErrorf("current branch is %s, latest pointers are only published from %s", branch, p.requireBranch)
	}
	return nil
}

// Publish uploads each artifact to its fixed key and makes it public.
// The branch guard runs once before any upload; the first failure stops the run.
// It returns the keys that were fully published.
func (p *Publisher) Publish(ctx context.Context) ([]string, error) {
	if err := p.checkBranch(ctx); err != nil {
		p.metrics.IncStageFailure("guard")
		return nil, err
	}

	keys := make([]string, 0, len(p.artifacts.Names))
	for _, name := range p.artifacts.Names {
		key := p.cfg.ObjectKey(name)
		log.Info("Push executable %s to bucket %s as %s...", name, p.cfg.Bucket, key)

		n, err := storage.SaveFile(p.storage, key, p.artifacts.Path(name))
		if err != nil {
			p.metrics.IncStageFailure("store")
			return keys, err
		}
		if err := p.storage.SetPublicRead(key); err != nil {
			p.metrics.IncStageFailure("acl")
			return keys, err
		}
		log.Debug("Stored %s (%s), public-read", key, humanize.IBytes(uint64(n)))
		p.metrics.IncLatestObjects()
		keys = append(keys, key)
	}
	return keys, nil
}
