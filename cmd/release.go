// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import (
	"os"

	"code.gitea.io/publisher/modules/log"
	"code.gitea.io/publisher/modules/releasehost"
	"code.gitea.io/publisher/modules/setting"
	"code.gitea.io/publisher/services/release"
	"code.gitea.io/publisher/services/revision"

	"github.com/urfave/cli/v2"
)

// cmdRelease represents the release sub-command, the default one
func cmdRelease() *cli.Command {
	return &cli.Command{
		Name:  "release",
		Usage: "Publish the executables as assets of a release named after the current revision",
		Description: `An exact tag is published as a regular release, any other revision as a draft.
Drafts left by previous runs are deleted once the new release carries all its assets.
The credential is read from GITHUB_USER_TOKEN as user:token.`,
		Action: runRelease,
	}
}

func runRelease(c *cli.Context) (err error) {
	rc, err := prepareRun(c)
	if err != nil {
		return err
	}
	ctx := c.Context

	cred, err := setting.LoadCredential(os.Getenv, rc.settings.Release.CredentialEnv)
	if err != nil {
		return err
	}
	log.Debug("Using credential %s", cred)
	defer func() { rc.pushMetrics(ctx, err) }()

	rev, err := revision.Resolve(ctx, revision.RepoQuerier{Path: rc.workPath})
	if err != nil {
		rc.metrics.IncStageFailure("revision")
		return err
	}

	client, err := releasehost.NewGitHubClient(rc.settings.Repository, cred)
	if err != nil {
		return err
	}

	st, err := release.NewWorkflow(client, rc.settings, rc.metrics).Run(ctx, rev)
	if err != nil {
		return err
	}
	log.Info("Release %d for %s published with %d assets, %d stale drafts deleted", st.Created.ID, rev.ID, len(st.Assets), len(st.Pruned))
	return nil
}
