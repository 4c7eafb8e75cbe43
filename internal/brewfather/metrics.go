package brewfather

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts upstream traffic. A nil *Metrics records nothing.
type Metrics struct {
	requests  *prometheus.CounterVec
	pages     *prometheus.CounterVec
	truncated *prometheus.CounterVec
}

// NewMetrics creates the client counters and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "brewfather",
			Name:      "api_requests_total",
			Help:      "Requests sent to the Brewfather API by method and status code (0 = no response).",
		}, []string{"method", "code"}),
		pages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "brewfather",
			Name:      "list_pages_total",
			Help:      "List pages fetched by endpoint.",
		}, []string{"endpoint"}),
		truncated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "brewfather",
			Name:      "list_truncated_total",
			Help:      "List fetches that stopped at the page limit with more data possibly available.",
		}, []string{"endpoint"}),
	}
	if reg != nil {
		reg.MustRegister(m.requests, m.pages, m.truncated)
	}
	return m
}

func (m *Metrics) observeRequest(method string, code int) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(method, strconv.Itoa(code)).Inc()
}

func (m *Metrics) observePage(endpoint string) {
	if m == nil {
		return
	}
	m.pages.WithLabelValues(endpoint).Inc()
}

func (m *Metrics) observeTruncated(endpoint string) {
	if m == nil {
		return
	}
	m.truncated.WithLabelValues(endpoint).Inc()
}
