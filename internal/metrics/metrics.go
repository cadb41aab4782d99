package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "defi_runner"

// Metrics is a poller reporter that exports the node's block height.
type Metrics struct {
	gatherer prometheus.Gatherer
	height   prometheus.Gauge
	polls    *prometheus.CounterVec
}

// New creates the metrics and registers them on reg.
func New(reg *prometheus.Registry, container string) (*Metrics, error) {
	labels := prometheus.Labels{"container": container}
	m := &Metrics{
		gatherer: reg,
		height: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "block_height",
			Help:        "Highest block height reported by the node.",
			ConstLabels: labels,
		}),
		polls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "height_polls_total",
			Help:        "Block height queries by result.",
			ConstLabels: labels,
		}, []string{"result"}),
	}
	for _, c := range []prometheus.Collector{m.height, m.polls} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Report sets the block height gauge.
func (m *Metrics) Report(height int64) {
	m.height.Set(float64(height))
}

// ObservePoll counts one height query.
func (m *Metrics) ObservePoll(err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.polls.WithLabelValues(result).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
