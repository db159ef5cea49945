package benchrun

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics exposes sweep progress to prometheus.
type Metrics struct {
	TrialsTotal         prometheus.Counter
	InsertsTotal        prometheus.Counter
	ProbesTotal         prometheus.Counter
	FalsePositivesTotal prometheus.Counter

	// Gauges reflect the most recently completed trial.
	BitDensity      prometheus.Gauge
	EmpiricalRate   prometheus.Gauge
	TheoreticalRate prometheus.Gauge
}

// NewMetrics registers the benchmark metrics with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		TrialsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "bloomset_trials_total",
			Help: "The total number of completed benchmark trials",
		}),
		InsertsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "bloomset_inserts_total",
			Help: "The total number of keys inserted across trials",
		}),
		ProbesTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "bloomset_probes_total",
			Help: "The total number of negative probes across trials",
		}),
		FalsePositivesTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "bloomset_false_positives_total",
			Help: "The total number of false positives observed",
		}),
		BitDensity: factory.NewGauge(prometheus.GaugeOpts{
			Name: "bloomset_bit_density",
			Help: "Bit density of the filter in the last completed trial",
		}),
		EmpiricalRate: factory.NewGauge(prometheus.GaugeOpts{
			Name: "bloomset_empirical_rate",
			Help: "Empirical false positive rate of the last completed trial",
		}),
		TheoreticalRate: factory.NewGauge(prometheus.GaugeOpts{
			Name: "bloomset_theoretical_rate",
			Help: "Theoretical false positive rate of the last completed trial",
		}),
	}
}

// ObserveTrial records the outcome of one trial.
func (m *Metrics) ObserveTrial(r Result, bitDensity float64) {
	m.TrialsTotal.Inc()
	m.InsertsTotal.Add(float64(r.N))
	m.ProbesTotal.Add(float64(r.Probes))
	m.FalsePositivesTotal.Add(float64(r.FalsePos))
	m.BitDensity.Set(bitDensity)
	m.EmpiricalRate.Set(r.EmpiricalP)
	m.TheoreticalRate.Set(r.TheoryP)
}
