package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics registered under the hopgate_rendezvous_* /
// hopgate_multiplex_* namespace, covering the rendezvous pairing and
// multiplex channel surface.

var (
	// DialAttemptsTotal counts every client-side peer dial attempt,
	// labeled by which leg of the race it belongs to.
	DialAttemptsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hopgate_rendezvous_dial_attempts_total",
			Help: "Total number of peer dial attempts, labeled by endpoint kind.",
		},
		[]string{"endpoint_kind"}, // public, private
	)

	// DialResultsTotal counts the terminal outcome of a dial race leg.
	DialResultsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hopgate_rendezvous_dial_results_total",
			Help: "Total number of peer dial race outcomes, labeled by endpoint kind and result.",
		},
		[]string{"endpoint_kind", "result"}, // result: success, cancelled, exhausted
	)

	// PairsCompletedTotal counts rendezvous pairs that reached the
	// complete state, labeled by whether they ended up direct or
	// relayed.
	PairsCompletedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hopgate_rendezvous_pairs_completed_total",
			Help: "Total number of completed rendezvous pairs, labeled by mode.",
		},
		[]string{"mode"}, // direct, relay
	)

	// RelayFallbacksTotal counts client-side falls back to relay mode
	// after both dial legs were exhausted.
	RelayFallbacksTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "hopgate_rendezvous_relay_fallbacks_total",
			Help: "Total number of client relay fallbacks after dial exhaustion.",
		},
	)

	// BytesRelayedTotal counts bytes forwarded between the two control
	// sockets while the server is bridging a relayed pair.
	BytesRelayedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "hopgate_rendezvous_bytes_relayed_total",
			Help: "Total bytes piped by the server between two relayed control sockets.",
		},
	)

	// ActiveChannelsGauge tracks how many multiplex channels a
	// forwarder currently has open, across both outbound and inbound
	// roles.
	ActiveChannelsGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "hopgate_multiplex_active_channels",
			Help: "Current number of open multiplex channels in this process.",
		},
	)

	// FrameSizeBytes histograms the payload size of multiplex frames the
	// forwarder sends to the peer.
	FrameSizeBytes = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "hopgate_multiplex_frame_size_bytes",
			Help:    "Histogram of multiplex frame payload sizes in bytes.",
			Buckets: prometheus.ExponentialBuckets(64, 4, 8),
		},
	)
)

// MustRegister registers all of the above metrics against the default
// Prometheus registry. Call once at process startup.
func MustRegister() {
	prometheus.MustRegister(
		DialAttemptsTotal,
		DialResultsTotal,
		PairsCompletedTotal,
		RelayFallbacksTotal,
		BytesRelayedTotal,
		ActiveChannelsGauge,
		FrameSizeBytes,
	)
}
