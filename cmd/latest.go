// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import (
	"code.gitea.io/publisher/modules/log"
	"code.gitea.io/publisher/modules/storage"
	"code.gitea.io/publisher/services/latest"

	"github.com/urfave/cli/v2"
)

// cmdLatest represents the latest sub-command
func cmdLatest() *cli.Command {
	return &cli.Command{
		Name:        "latest",
		Usage:       "Overwrite the latest pointer of every executable in the bucket",
		Description: "Each executable is stored under <name>-latest and made publicly readable.",
		Action:      runLatest,
	}
}

func runLatest(c *cli.Context) (err error) {
	rc, err := prepareRun(c)
	if err != nil {
		return err
	}
	ctx := c.Context
	defer func() { rc.pushMetrics(ctx, err) }()

	cfg := rc.settings.Storage
	objStorage, err := storage.NewStorage(ctx, cfg.Type, &cfg)
	if err != nil {
		return err
	}

	keys, err := latest.NewPublisher(objStorage, rc.settings, latest.RepoBranch{Path: rc.workPath}, rc.metrics).Publish(ctx)
	if err != nil {
		return err
	}
	log.Info("%d latest pointers published to %s", len(keys), cfg.Bucket)
	return nil
}
