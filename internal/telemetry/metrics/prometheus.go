package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// NewRegistry returns a registry with the runtime and process collectors,
// a constant version_info gauge and the given extra collectors.
func NewRegistry(namespace, version string, extraCollectors ...prometheus.Collector) *prometheus.Registry {
	promRegistry := prometheus.NewRegistry()

	versionInfo := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace:   namespace,
		Name:        "version_info",
		Help:        "Always 1, labeled with the running version",
		ConstLabels: prometheus.Labels{"version": version},
	}, func() float64 { return 1 })

	promRegistry.MustRegister(
		versionInfo,
		collectors.NewBuildInfoCollector(),
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{Namespace: namespace}),
	)
	promRegistry.MustRegister(extraCollectors...)

	return promRegistry
}
