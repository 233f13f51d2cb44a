package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestAssistantMetricsObserve(t *testing.T) {
	m := NewAssistantMetrics(prometheus.NewRegistry())
	m.ObserveTurn("chat")
	m.ObserveExtraction("name")
	m.ObserveAppointment("voice", "created")
	m.ObserveLLMRequest("ok", 0.5)
}

func TestAssistantMetricsNilSafe(t *testing.T) {
	var m *AssistantMetrics
	m.ObserveTurn("chat")
	m.ObserveExtraction("phone")
	m.ObserveAppointment("chat", "failed")
	m.ObserveLLMRequest("error", 0.1)
}
