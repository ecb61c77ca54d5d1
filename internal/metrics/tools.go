package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Tool invocation metrics, shared by the stdio and HTTP transports.
var (
	// ToolCallsTotal counts tool invocations by tool name and outcome (ok/error).
	ToolCallsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dealdesk",
			Name:      "tool_calls_total",
			Help:      "Total number of tool invocations",
		},
		[]string{"tool", "outcome"},
	)

	// ToolCallDuration measures tool execution time.
	ToolCallDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "dealdesk",
			Name:      "tool_call_duration_seconds",
			Help:      "Tool execution duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
		[]string{"tool"},
	)
)

// RegisterToolMetrics registers the tool metrics with the default
// registry. Call once at startup.
func RegisterToolMetrics() {
	prometheus.MustRegister(ToolCallsTotal)
	prometheus.MustRegister(ToolCallDuration)
}

// ObserveToolCall records one tool invocation.
func ObserveToolCall(tool string, err error, elapsed time.Duration) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	ToolCallsTotal.WithLabelValues(tool, outcome).Inc()
	ToolCallDuration.WithLabelValues(tool).Observe(elapsed.Seconds())
}
