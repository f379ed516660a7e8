// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package release

import (
	"context"
	"os"

	"code.gitea.io/publisher/modules/log"
	"code.gitea.io/publisher/modules/metrics"
	"code.gitea.io/publisher/modules/releasehost"
	"code.gitea.io/publisher/modules/setting"
	"code.gitea.io/publisher/modules/util"

	"github.com/dustin/go-humanize"
)

// PublishAssets uploads every artifact, in list order, to the release.
// The first unreadable file or failed upload stops the loop.
func PublishAssets(ctx context.Context, client releasehost.Client, releaseID int64, artifacts setting.Artifacts, rec metrics.Recorder) ([]*releasehost.Asset, error) {
	assets := make([]*releasehost.Asset, 0, len(artifacts.Names))
	for _, name := range artifacts.Names {
		p := artifacts.Path(name)
		content, err := os.ReadFile(p)
		if err != nil {
			return assets, util.LocalIOError{Path: p, Err: err}
		}

		log.Info("Push executable %s (%s) to release %d...", name, humanize.IBytes(uint64(len(content))), releaseID)
		asset, err := client.UploadAsset(ctx, releaseID, name, content)
		if err != nil {
			return assets, err
		}
		rec.IncAssetsUploaded()
		assets = append(assets, asset)
	}
	return assets, nil
}
