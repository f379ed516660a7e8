// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package metrics counts what a publishing run did and optionally pushes the
// counters to a Prometheus Pushgateway once the run is over.
package metrics

import (
	"context"

	"code.gitea.io/publisher/modules/log"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

const namespace = "sqsc_publish"

// Recorder receives the events of a publishing run
type Recorder interface {
	IncAssetsUploaded()
	IncDraftsPruned()
	IncLatestObjects()
	IncStageFailure(stage string)
}

// Noop implements Recorder without recording anything.
type Noop struct{}

func (Noop) IncAssetsUploaded()     {}
func (Noop) IncDraftsPruned()       {}
func (Noop) IncLatestObjects()      {}
func (Noop) IncStageFailure(string) {}

// Prom implements Recorder with counters held in a private registry
type Prom struct {
	registry       *prometheus.Registry
	assetsUploaded prometheus.Counter
	draftsPruned   prometheus.Counter
	latestObjects  prometheus.Counter
	stageFailures  *prometheus.CounterVec
}

// NewProm creates the run counters
func NewProm() *Prom {
	p := &Prom{
		registry: prometheus.NewRegistry(),
		assetsUploaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "assets_uploaded_total",
			Help:      "Release assets uploaded",
		}),
		draftsPruned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "drafts_pruned_total",
			Help:      "Stale draft releases deleted",
		}),
		latestObjects: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "latest_objects_total",
			Help:      "Latest pointers written and made public",
		}),
		stageFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stage_failures_total",
			Help:      "Fatal failures by stage",
		}, []string{"stage"}),
	}
	p.registry.MustRegister(p.assetsUploaded, p.draftsPruned, p.latestObjects, p.stageFailures)
	return p
}

func (p *Prom) IncAssetsUploaded() { p.assetsUploaded.Inc() }
func (p *Prom) IncDraftsPruned()   { p.draftsPruned.Inc() }
func (p *Prom) IncLatestObjects()  { p.latestObjects.Inc() }

func (p *Prom) IncStageFailure(stage string) {
	p.stageFailures.WithLabelValues(stage).Inc()
}

// Gatherer exposes the private registry
func (p *Prom) Gatherer() prometheus.Gatherer {
	return p.registry
}

// Push sends the counters to the Pushgateway at url under the given job.
// A failed push is logged and otherwise ignored.
func (p *Prom) Push(ctx context.Context, url, job string) {
	if url == "" {
		return
	}
	err := push.New(url, job).Gatherer(p.registry).PushContext(ctx)
	if err != nil {
		log.Warn("Unable to push metrics to %s: %v", url, err)
		return
	}
	log.Debug("Pushed metrics to %s as job %s", url, job)
}
