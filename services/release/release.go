// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package release

import (
	"context"

	"code.gitea.io/publisher/modules/log"
	"code.gitea.io/publisher/modules/metrics"
	"code.gitea.io/publisher/modules/releasehost"
	"code.gitea.io/publisher/modules/setting"
	"code.gitea.io/publisher/services/revision"
)

// State is what the stages of a release run hand to each other
type State struct {
	Revision *revision.Revision
	// Existing is the list of releases fetched before anything was created
	Existing []*releasehost.Release
	Created  *releasehost.Release
	Assets   []*releasehost.Asset
	Pruned   []int64
}

type stage struct {
	name string
	run  func(ctx context.Context, st *State) error
}

// Workflow publishes a revision as a release carrying every artifact
type Workflow struct {
	client    releasehost.Client
	release   setting.Release
	artifacts setting.Artifacts
	metrics   metrics.Recorder
}

// NewWorkflow creates the release workflow. A nil recorder records nothing.
func NewWorkflow(client releasehost.Client, s *setting.Settings, rec metrics.Recorder) *Workflow {
	if rec == nil {
		rec = metrics.Noop{}
	}
	return &Workflow{
		client:    client,
		release:   s.Release,
		artifacts: s.Artifacts,
		metrics:   rec,
	}
}

func (w *Workflow) stages() []stage {
	list := stage{"list", w.listReleases}
	create := stage{"create", w.createRelease}
	upload := stage{"upload", w.uploadAssets}
	prune := stage{"prune", w.pruneDrafts}

	if w.release.PruneOrder == setting.PruneBefore {
		return []stage{list, prune, create, upload}
	}
	return []stage{list, create, upload, prune}
}

// Run executes the stages in order and stops at the first error.
// Whatever was done before the error is left in place.
func (w *Workflow) Run(ctx context.Context, rev *revision.Revision) (*State, error) {
	st := &State{Revision: rev}
	for _, s := range w.stages() {
		log.Trace("Running stage %s", s.name)
		if err := s.run(ctx, st); err != nil {
			w.metrics.IncStageFailure(s.name)
			return st, err
		}
	}
	return st, nil
}

func (w *Workflow) listReleases(ctx context.Context, st *State) error {
	log.Info("Retrieve all releases...")
	releases, err := w.client.ListReleases(ctx)
	if err != nil {
		return err
	}
	st.Existing = releases
	log.Debug("Found %d existing releases", len(releases))
	return nil
}

func (w *Workflow) createRelease(ctx context.Context, st *State) error {
	opts := releasehost.CreateOptions{
		TagName:    st.Revision.ID,
		Name:       w.release.ReleaseName(st.Revision.ID, st.Revision.IsExactTag),
		Draft:      !st.Revision.IsExactTag,
		Prerelease: w.release.MarkPrerelease && st.Revision.Prerelease,
	}
	if opts.Draft {
		log.Info("Create draft release %q for %s...", opts.Name, opts.TagName)
	} else {
		log.Info("Create release %q for %s...", opts.Name, opts.TagName)
	}

	rel, err := w.client.CreateRelease(ctx, opts)
	if err != nil {
		return err
	}
	st.Created = rel
	log.Info("Release %d created", rel.ID)
	return nil
}

func (w *Workflow) uploadAssets(ctx context.Context, st *State) error {
	assets, err := PublishAssets(ctx, w.client, st.Created.ID, w.artifacts, w.metrics)
	st.Assets = assets
	return err
}

func (w *Workflow) pruneDrafts(ctx context.Context, st *State) error {
	var exclude int64
	if st.Created != nil {
		exclude = st.Created.ID
	}
	pruned, err := PruneDrafts(ctx, w.client, st.Existing, exclude, w.release.PrunePolicy, w.metrics)
	st.Pruned = pruned
	return err
}
