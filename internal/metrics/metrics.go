// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics declares the Prometheus collectors of the staff server.
// Collectors register with the default registry and are exposed on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Auth operations and outcomes used as label values.
const (
	OperationSignup = "signup"
	OperationLogin  = "login"

	OutcomeSuccess           = "success"
	OutcomeEmptyInput        = "empty_input"
	OutcomeEmailNotFound     = "email_not_found"
	OutcomeIncorrectPassword = "incorrect_password"
	OutcomeError             = "error"

	CodecEncode = "encode"
	CodecVerify = "verify"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "staff_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "staff_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)

	HTTPRequestDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "staff_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	AuthOutcomesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "staff_auth_outcomes_total",
			Help: "Signup and login attempts by outcome",
		},
		[]string{"operation", "outcome"},
	)

	PasswordCodecDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "staff_password_codec_duration_seconds",
			Help:    "Time spent encoding and verifying passwords",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"operation"},
	)
)

// RecordAuthOutcome counts one signup or login attempt.
func RecordAuthOutcome(operation, outcome string) {
	AuthOutcomesTotal.WithLabelValues(operation, outcome).Inc()
}

// ObserveCodec records the time elapsed since start for a codec operation.
func ObserveCodec(operation string, start time.Time) {
	PasswordCodecDurationSeconds.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
