package metrics

import "github.com/prometheus/client_golang/prometheus"

// AssistantMetrics exposes counters for the conversation and booking flows.
type AssistantMetrics struct {
	turnsTotal        *prometheus.CounterVec
	extractionsTotal  *prometheus.CounterVec
	appointmentsTotal *prometheus.CounterVec
	llmRequestsTotal  *prometheus.CounterVec
	llmLatency        *prometheus.HistogramVec
}

func NewAssistantMetrics(reg prometheus.Registerer) *AssistantMetrics {
	m := &AssistantMetrics{
		turnsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "showroom",
			Subsystem: "assistant",
			Name:      "turns_total",
			Help:      "Total conversation turns handled",
		}, []string{"channel"}),
		extractionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "showroom",
			Subsystem: "assistant",
			Name:      "extractions_total",
			Help:      "Total appointment fields extracted from customer text",
		}, []string{"field"}),
		appointmentsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "showroom",
			Subsystem: "assistant",
			Name:      "appointments_total",
			Help:      "Total appointments created",
		}, []string{"channel", "status"}),
		llmRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "showroom",
			Subsystem: "assistant",
			Name:      "llm_requests_total",
			Help:      "Total chat completion requests to the model provider",
		}, []string{"status"}),
		llmLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "showroom",
			Subsystem: "assistant",
			Name:      "llm_latency_seconds",
			Help:      "Latency of chat completion requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"status"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.turnsTotal, m.extractionsTotal, m.appointmentsTotal, m.llmRequestsTotal, m.llmLatency)
	return m
}

func (m *AssistantMetrics) ObserveTurn(channel string) {
	if m == nil {
		return
	}
	m.turnsTotal.WithLabelValues(channel).Inc()
}

func (m *AssistantMetrics) ObserveExtraction(field string) {
	if m == nil {
		return
	}
	m.extractionsTotal.WithLabelValues(field).Inc()
}

func (m *AssistantMetrics) ObserveAppointment(channel, status string) {
	if m == nil {
		return
	}
	m.appointmentsTotal.WithLabelValues(channel, status).Inc()
}

func (m *AssistantMetrics) ObserveLLMRequest(status string, seconds float64) {
	if m == nil {
		return
	}
	m.llmRequestsTotal.WithLabelValues(status).Inc()
	m.llmLatency.WithLabelValues(status).Observe(seconds)
}
