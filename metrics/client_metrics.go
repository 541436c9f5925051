package metrics

import "sync/atomic"

// ClientMetrics counts outbound remote calls. Recorded by the transport
// middleware, read by whoever wants a session summary.
type ClientMetrics struct {
	RequestsTotal   atomic.Int64
	TransportErrors atomic.Int64
	RejectedCount   atomic.Int64
}

// Record accounts for one finished round trip. status is 0 when the
// transport failed before producing a response.
func (m *ClientMetrics) Record(status int, err error) {
	m.RequestsTotal.Add(1)
	if err != nil {
		m.TransportErrors.Add(1)
		return
	}
	if status < 200 || status >= 300 {
		m.RejectedCount.Add(1)
	}
}
