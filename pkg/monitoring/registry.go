// Copyright SAP SE
// SPDX-License-Identifier: Apache-2.0

package monitoring

import (
	"sort"

	"github.com/cobaltcore-dev/admin-dashboard/pkg/conf"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	dto "github.com/prometheus/client_model/go"
)

// Prometheus registry that attaches the configured labels to every metric.
type Registry struct {
	*prometheus.Registry
	// Labels attached to all gathered metrics.
	labels map[string]string
}

// Create a new registry with the go and process collectors registered.
func NewRegistry(config conf.MonitoringConfig) *Registry {
	registry := &Registry{
		Registry: prometheus.NewRegistry(),
		labels:   config.Labels,
	}
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	return registry
}

// Gather all metrics and attach the configured labels.
// Labels that a metric already carries are not overwritten.
func (r *Registry) Gather() ([]*dto.MetricFamily, error) {
	families, err := r.Registry.Gather()
	if err != nil {
		return nil, err
	}
	if len(r.labels) == 0 {
		return families, nil
	}
	names := make([]string, 0, len(r.labels))
	for name := range r.labels {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, family := range families {
		for _, metric := range family.Metric {
			for _, name := range names {
				if hasLabel(metric, name) {
					continue
				}
				value := r.labels[name]
				metric.Label = append(metric.Label, &dto.LabelPair{
					Name:  &name,
					Value: &value,
				})
			}
			sort.Slice(metric.Label, func(i, j int) bool {
				return metric.Label[i].GetName() < metric.Label[j].GetName()
			})
		}
	}
	return families, nil
}

func hasLabel(metric *dto.Metric, name string) bool {
	for _, pair := range metric.Label {
		if pair.GetName() == name {
			return true
		}
	}
	return false
}
