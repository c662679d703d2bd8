package metrics

import (
	"fmt"
	"sync"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	m "github.com/raestrada95/repotopdf/internal/model"
)

const namespace = "repotopdf"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	registry           *prom.Registry
	conversions        *prom.CounterVec
	conversionDuration *prom.HistogramVec
	inFlight           prom.Gauge
	maxInFlight        prom.Gauge
	mergeDuration      *prom.HistogramVec
	runOutcomes        *prom.CounterVec

	mu      sync.Mutex
	current int
	peak    int
}

// NewPrometheusRecorder constructs and registers the run metrics on reg. A nil
// registry gets a fresh one.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}

	pr := &PrometheusRecorder{
		registry: reg,
		conversions: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "conversions_total",
			Help:      "Conversion outcomes by status",
		}, []string{"status"}),
		conversionDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "conversion_duration_seconds",
			Help:      "Duration of individual converter invocations",
			Buckets:   prom.DefBuckets,
		}, []string{"status"}),
		inFlight: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "conversions_in_flight",
			Help:      "Converter invocations currently running",
		}),
		maxInFlight: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "conversions_in_flight_max",
			Help:      "Highest number of simultaneous converter invocations observed",
		}),
		mergeDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "merge_duration_seconds",
			Help:      "Duration of the final merge step",
			Buckets:   prom.DefBuckets,
		}, []string{"result"}),
		runOutcomes: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "run_outcomes_total",
			Help:      "Run outcomes by final state",
		}, []string{"state"}),
	}

	reg.MustRegister(pr.conversions, pr.conversionDuration, pr.inFlight, pr.maxInFlight, pr.mergeDuration, pr.runOutcomes)

	return pr
}

// Registry returns the registry the metrics are registered on.
func (p *PrometheusRecorder) Registry() *prom.Registry { return p.registry }

// PeakInFlight returns the highest number of simultaneous conversions seen.
func (p *PrometheusRecorder) PeakInFlight() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.peak
}

func (p *PrometheusRecorder) ConversionStarted() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.current++
	p.inFlight.Set(float64(p.current))

	if p.current > p.peak {
		p.peak = p.current
		p.maxInFlight.Set(float64(p.peak))
	}
}

func (p *PrometheusRecorder) ConversionFinished(status m.OutcomeStatus, d time.Duration) {
	p.mu.Lock()
	p.current--
	p.inFlight.Set(float64(p.current))
	p.mu.Unlock()

	p.conversions.WithLabelValues(status.String()).Inc()
	p.conversionDuration.WithLabelValues(status.String()).Observe(d.Seconds())
}

func (p *PrometheusRecorder) ObserveMerge(d time.Duration, success bool) {
	res := "failed"
	if success {
		res = "success"
	}

	p.mergeDuration.WithLabelValues(res).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncRunOutcome(state string) {
	p.runOutcomes.WithLabelValues(state).Inc()
}

// WriteTextfile writes all registered metrics in the Prometheus text format.
func (p *PrometheusRecorder) WriteTextfile(path string) error {
	if err := prom.WriteToTextfile(path, p.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}

	return nil
}
