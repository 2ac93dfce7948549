// Package metrics registers the booking service's Prometheus collectors with
// the default registry. Collectors are package-level so every component
// records into the same series.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "care_booking"

// CommitsTotal counts commit attempts.
// Labels:
//   - mode: "create" or "reschedule"
//   - outcome: "committed", "slot_unavailable", "quota_exhausted", "incomplete_draft", "persistence_failure"
var CommitsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "booking_commits_total",
		Help:      "Total number of booking commit attempts by mode and outcome.",
	},
	[]string{"mode", "outcome"},
)

var CommitDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "booking_commit_duration_seconds",
		Help:      "Duration of booking commits including the storage transaction.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"mode"},
)

// NotificationsTotal counts notification dispatches.
// Labels:
//   - kind: "created", "rescheduled", "reassigned"
//   - result: "sent" or "failed"
var NotificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_total",
		Help:      "Total number of booking notifications dispatched, by kind and result.",
	},
	[]string{"kind", "result"},
)

var NotificationsDelivered = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_delivered_total",
		Help:      "Notifications handed to a delivery channel by the worker.",
	},
	[]string{"kind"},
)

// FlowTransitionsTotal counts state machine transitions.
// Labels:
//   - from, to: step names
var FlowTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "flow_transitions_total",
		Help:      "Booking flow step transitions.",
	},
	[]string{"from", "to"},
)

var AssignmentsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "specialist_assignments_total",
		Help:      "Specialist assignment attempts by pillar and result.",
	},
	[]string{"pillar", "result"},
)

var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route and status class.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "route", "status"},
)
