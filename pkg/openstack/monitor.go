// Copyright SAP SE
// SPDX-License-Identifier: Apache-2.0

package openstack

import (
	"github.com/cobaltcore-dev/admin-dashboard/pkg/monitoring"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics for the requests made against the openstack apis.
type Monitor struct {
	// A histogram to measure how long the openstack requests take.
	RequestTimer *prometheus.HistogramVec
}

func NewMonitor(registry *monitoring.Registry) Monitor {
	requestTimer := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "dashboard_openstack_request_duration_seconds",
		Help:    "Duration of openstack api requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"service", "operation"})
	registry.MustRegister(requestTimer)
	return Monitor{RequestTimer: requestTimer}
}

// Start a timer for the given operation. Call the returned func when done.
func (m Monitor) observe(service, operation string) func() {
	if m.RequestTimer == nil {
		return func() {}
	}
	timer := prometheus.NewTimer(m.RequestTimer.WithLabelValues(service, operation))
	return func() { timer.ObserveDuration() }
}
