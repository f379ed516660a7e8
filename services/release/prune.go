// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package release

import (
	"context"

	"code.gitea.io/publisher/modules/log"
	"code.gitea.io/publisher/modules/metrics"
	"code.gitea.io/publisher/modules/releasehost"
	"code.gitea.io/publisher/modules/setting"
)

// PruneDrafts deletes the drafts of a release list fetched before the current
// release was created. The release with id exclude is never deleted.
// With PruneFatal the first failure is returned, with PruneBestEffort failures
// are logged and the remaining drafts are still deleted.
func PruneDrafts(ctx context.Context, client releasehost.Client, snapshot []*releasehost.Release, exclude int64, policy setting.PrunePolicy, rec metrics.Recorder) ([]int64, error) {
	var pruned []int64
	for _, rel := range snapshot {
		if !rel.Draft || rel.ID == exclude {
			continue
		}

		log.Info("Delete draft release %d (%s)...", rel.ID, rel.TagName)
		if err := client.DeleteRelease(ctx, rel.ID); err != nil {
			if policy == setting.PruneBestEffort {
				log.Warn("Unable to delete draft release %d: %v", rel.ID, err)
				continue
			}
			return pruned, err
		}
		rec.IncDraftsPruned()
		pruned = append(pruned, rel.ID)
	}
	return pruned, nil
}
