// Copyright 2025 Phoenix Security Collective
// SPDX-License-Identifier: 	AGPL-3.0-or-later
package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var ReportsSubmitted = promauto.NewCounter(prometheus.CounterOpts{
	Name: "phoenixportal_reports_submitted_total",
	Help: "Number of vulnerability reports submitted by hunters",
})

var ReportsApproved = promauto.NewCounter(prometheus.CounterOpts{
	Name: "phoenixportal_reports_approved_total",
	Help: "Number of vulnerability reports approved by moderators",
})

var ReportsRejected = promauto.NewCounter(prometheus.CounterOpts{
	Name: "phoenixportal_reports_rejected_total",
	Help: "Number of vulnerability reports rejected by moderators",
})

var ModerationConflicts = promauto.NewCounter(prometheus.CounterOpts{
	Name: "phoenixportal_moderation_conflicts_total",
	Help: "Number of moderation calls rejected because the record was already decided",
})

var LeaderboardScanDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "phoenixportal_leaderboard_scan_duration_seconds",
	Help:    "Duration of full leaderboard aggregation scans in seconds",
	Buckets: prometheus.DefBuckets,
})
