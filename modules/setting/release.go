// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package setting

import (
	"strings"

	"code.gitea.io/publisher/modules/util"

	ini "gopkg.in/ini.v1"
)

// PruneOrder tells when stale drafts are deleted relative to the new release
type PruneOrder string

const (
	// PruneAfter deletes stale drafts once the new release carries all its assets
	PruneAfter PruneOrder = "after"
	// PruneBefore deletes stale drafts before the new release is created
	PruneBefore PruneOrder = "before"
)

// PrunePolicy tells what a failed draft deletion does to the run
type PrunePolicy string

const (
	// PruneFatal aborts the run on the first failed deletion
	PruneFatal PrunePolicy = "fatal"
	// PruneBestEffort logs failed deletions and keeps pruning
	PruneBestEffort PrunePolicy = "best-effort"
)

// RevisionPlaceholder is replaced by the revision identifier in release name templates
const RevisionPlaceholder = "{revision}"

// Release holds the release workflow settings
type Release struct {
	CredentialEnv        string
	PruneOrder           PruneOrder
	PrunePolicy          PrunePolicy
	NameTemplateTag      string
	NameTemplateSnapshot string
	MarkPrerelease       bool
}

func defaultRelease() Release {
	return Release{
		CredentialEnv:        "GITHUB_USER_TOKEN",
		PruneOrder:           PruneAfter,
		PrunePolicy:          PruneFatal,
		NameTemplateTag:      "cli release (" + RevisionPlaceholder + ")",
		NameTemplateSnapshot: "cli latest release (" + RevisionPlaceholder + ")",
		MarkPrerelease:       true,
	}
}

func loadReleaseFrom(cfg *ini.File, r *Release) error {
	sec := cfg.Section("release")
	r.CredentialEnv = sec.Key("CREDENTIAL_ENV").MustString(r.CredentialEnv)
	r.NameTemplateTag = sec.Key("NAME_TEMPLATE_TAG").MustString(r.NameTemplateTag)
	r.NameTemplateSnapshot = sec.Key("NAME_TEMPLATE_SNAPSHOT").MustString(r.NameTemplateSnapshot)
	r.MarkPrerelease = sec.Key("MARK_PRERELEASE").MustBool(r.MarkPrerelease)

	switch order := PruneOrder(strings.ToLower(sec.Key("PRUNE_ORDER").MustString(string(r.PruneOrder)))); order {
	case PruneAfter, PruneBefore:
		r.PruneOrder = order
	default:
		return util.NewConfigurationErrorf("unknown [release] PRUNE_ORDER %q, expected %q or %q", order, PruneAfter, PruneBefore)
	}

	switch policy := PrunePolicy(strings.ToLower(sec.Key("PRUNE_POLICY").MustString(string(r.PrunePolicy)))); policy {
	case PruneFatal, PruneBestEffort:
		r.PrunePolicy = policy
	default:
		return util.NewConfigurationErrorf("unknown [release] PRUNE_POLICY %q, expected %q or %q", policy, PruneFatal, PruneBestEffort)
	}
	return nil
}

// ReleaseName renders the human readable name of a release for a revision
func (r Release) ReleaseName(revision string, isExactTag bool) string {
	tmpl := r.NameTemplateSnapshot
	if isExactTag {
		tmpl = r.NameTemplateTag
	}
	if !strings.Contains(tmpl, RevisionPlaceholder) {
		return tmpl + " (" + revision + ")"
	}
	return strings.ReplaceAll(tmpl, RevisionPlaceholder, revision)
}
