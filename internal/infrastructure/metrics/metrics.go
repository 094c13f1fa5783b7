package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Genesis server metrics
var (
	// Request counters
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "genesis",
			Subsystem: "server",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// Request duration histogram
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "genesis",
			Subsystem: "server",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"method", "endpoint", "status"},
	)

	// Persona replies
	ChatRepliesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "genesis",
			Subsystem: "server",
			Name:      "chat_replies_total",
			Help:      "Chat replies composed, by persona and detected mode",
		},
		[]string{"persona", "mode"},
	)

	// Archived conversations
	ConversationsArchivedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "genesis",
			Subsystem: "server",
			Name:      "conversations_archived_total",
			Help:      "Conversation records stored, by consent level",
		},
		[]string{"consent_level"},
	)

	// Synthesized insights
	InsightsSynthesizedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "genesis",
			Subsystem: "server",
			Name:      "insights_synthesized_total",
			Help:      "Collective insights synthesized",
		},
	)

	// Retention sweep deletions
	SweepDeletedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "genesis",
			Subsystem: "server",
			Name:      "sweep_deleted_total",
			Help:      "Conversation records removed by retention sweeps",
		},
	)

	// Archive size gauges, refreshed on a schedule
	ConversationsStored = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "genesis",
			Subsystem: "server",
			Name:      "conversations_stored",
			Help:      "Conversation records currently stored",
		},
	)

	WisdomPatternsStored = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "genesis",
			Subsystem: "server",
			Name:      "wisdom_patterns_stored",
			Help:      "Wisdom patterns currently stored",
		},
	)

	CollectiveInsightsStored = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "genesis",
			Subsystem: "server",
			Name:      "collective_insights_stored",
			Help:      "Collective insights currently stored",
		},
	)

	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "genesis",
			Subsystem: "server",
			Name:      "active_sessions",
			Help:      "Distinct sessions active within the stats window",
		},
	)
)

// RecordRequest records an HTTP request with all relevant labels
func RecordRequest(method, endpoint, status string, durationSec float64) {
	RequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	RequestDuration.WithLabelValues(method, endpoint, status).Observe(durationSec)
}

// RecordChatReply records a composed persona reply
func RecordChatReply(persona, mode string) {
	if mode == "" {
		mode = "unknown"
	}
	ChatRepliesTotal.WithLabelValues(persona, mode).Inc()
}

// RecordArchivedConversation records a stored conversation record
func RecordArchivedConversation(consentLevel string) {
	if consentLevel == "" {
		consentLevel = "unknown"
	}
	ConversationsArchivedTotal.WithLabelValues(consentLevel).Inc()
}

// RecordInsightsSynthesized adds newly synthesized insights to the counter
func RecordInsightsSynthesized(count int) {
	if count > 0 {
		InsightsSynthesizedTotal.Add(float64(count))
	}
}

// RecordSweepDeleted adds removed records to the sweep counter
func RecordSweepDeleted(count int64) {
	if count > 0 {
		SweepDeletedTotal.Add(float64(count))
	}
}

// SetArchiveGauges refreshes the archive size gauges
func SetArchiveGauges(conversations, patterns, insights, activeSessions int64) {
	ConversationsStored.Set(float64(conversations))
	WisdomPatternsStored.Set(float64(patterns))
	CollectiveInsightsStored.Set(float64(insights))
	ActiveSessions.Set(float64(activeSessions))
}
