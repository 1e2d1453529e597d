// Package metrics defines and registers all custom Prometheus metrics for
// the social API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry at import
// time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "social"

// UsernamesClaimedTotal counts successful username claims (first claims and
// re-claims by the same principal alike).
var UsernamesClaimedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "usernames_claimed_total",
		Help:      "Total number of successful username claims.",
	},
)

// FriendshipsCreatedTotal counts accepted add-friend calls. Re-adding an
// existing friendship still counts a call; the stored edges stay unique.
var FriendshipsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "friendships_created_total",
		Help:      "Total number of successful add-friend operations.",
	},
)

// MessagesSentTotal counts messages appended to conversations.
var MessagesSentTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "messages_sent_total",
		Help:      "Total number of messages appended.",
	},
)

// AuthFailuresTotal counts rejected authentications.
// Label:
//   - reason: "missing_header", "malformed_header", or "invalid_token"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of failed bearer-token authentications.",
	},
	[]string{"reason"},
)

// PlatformRequestDuration measures outbound platform calls end-to-end.
// Labels:
//   - service: "auth" or "rest"
//   - method: HTTP method
var PlatformRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "platform_request_duration_seconds",
		Help:      "Duration of requests to the identity-and-data platform.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"service", "method"},
)
