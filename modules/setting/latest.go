// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package setting

import (
	ini "gopkg.in/ini.v1"
)

// Latest holds the settings of the latest-pointer pipeline
type Latest struct {
	// RequireBranch enables the branch guard when not empty
	RequireBranch string
}

func defaultLatest() Latest {
	return Latest{}
}

func loadLatestFrom(cfg *ini.File, l *Latest) {
	l.RequireBranch = cfg.Section("latest").Key("REQUIRE_BRANCH").MustString(l.RequireBranch)
}

// Metrics holds the optional Pushgateway target
type Metrics struct {
	PushURL string
	Job     string
}

func defaultMetrics() Metrics {
	return Metrics{Job: "sqsc_publish"}
}

func loadMetricsFrom(cfg *ini.File, m *Metrics) {
	sec := cfg.Section("metrics")
	m.PushURL = sec.Key("PUSH_URL").MustString(m.PushURL)
	m.Job = sec.Key("JOB").MustString(m.Job)
}
