// Package metrics defines and registers all custom Prometheus metrics for the
// clinic API. It is the single source of truth for metric names, labels, and
// help strings.
//
// Metrics are registered with the default Prometheus registry on package init
// through promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "clinic"

// Registration outcomes.
const (
	OutcomeCreated  = "created"
	OutcomeConflict = "conflict"
	OutcomeInvalid  = "invalid"
	OutcomeError    = "error"
)

// ── Registration metrics ──────────────────────────────────────────────────────

// RegistrationsTotal counts registration attempts that reached the guard.
// Labels:
//   - kind: "staff", "doctor" or "patient"
//   - outcome: "created", "conflict", "invalid" or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of principal registration attempts, by kind and outcome.",
	},
	[]string{"kind", "outcome"},
)

// RegistrationDuration measures a registration from lookup to token issue.
// bcrypt dominates, so buckets start at 10ms.
// Label:
//   - kind: principal kind
var RegistrationDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "registration_duration_seconds",
		Help:      "Duration of principal registration, including password hashing.",
		Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5},
	},
	[]string{"kind"},
)

// ── Catalog metrics ───────────────────────────────────────────────────────────

// CatalogRecordsCreatedTotal counts rows written to the reference tables.
// Label:
//   - resource: table name (e.g. "designations", "medicines")
var CatalogRecordsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_records_created_total",
		Help:      "Total number of catalog records created, by resource.",
	},
	[]string{"resource"},
)

// ImageUploadBytes observes the size of accepted image uploads.
var ImageUploadBytes = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "image_upload_bytes",
		Help:      "Size of accepted image uploads in bytes.",
		Buckets:   prometheus.ExponentialBuckets(16<<10, 4, 6), // 16KiB … 16MiB
	},
)
