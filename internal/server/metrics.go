package server

import (
	"sync/atomic"
	"time"
)

// Metrics holds server runtime counters. Observability sink only: the
// request path never reads from it.
type Metrics struct {
	RequestsTotal     atomic.Int64
	ActiveConnections atomic.Int64
	TransportErrors   atomic.Int64
	Errors4xx         atomic.Int64
	Errors5xx         atomic.Int64

	totalLatencyNs atomic.Int64
}

// NewMetrics creates a new metrics instance
func NewMetrics() *Metrics {
	return &Metrics{}
}

func (m *Metrics) ConnOpened() {
	m.ActiveConnections.Add(1)
}

func (m *Metrics) ConnClosed() {
	m.ActiveConnections.Add(-1)
}

// RecordRequest records a completed request
func (m *Metrics) RecordRequest(statusCode int, duration time.Duration) {
	m.RequestsTotal.Add(1)
	m.totalLatencyNs.Add(duration.Nanoseconds())

	switch {
	case statusCode >= 500:
		m.Errors5xx.Add(1)
	case statusCode >= 400:
		m.Errors4xx.Add(1)
	}
}

// RecordTransportError records an accept/read/write failure
func (m *Metrics) RecordTransportError() {
	m.TransportErrors.Add(1)
}

// AverageLatency returns average request latency
func (m *Metrics) AverageLatency() time.Duration {
	totalReqs := m.RequestsTotal.Load()
	if totalReqs == 0 {
		return 0
	}
	return time.Duration(m.totalLatencyNs.Load() / totalReqs)
}

// Snapshot is a point-in-time copy of the counters
type Snapshot struct {
	RequestsTotal     int64
	ActiveConnections int64
	TransportErrors   int64
	Errors4xx         int64
	Errors5xx         int64
	AverageLatency    time.Duration
}

func (m *Metrics) Snapshot() Snapshot {
	return Snapshot{
		RequestsTotal:     m.RequestsTotal.Load(),
		ActiveConnections: m.ActiveConnections.Load(),
		TransportErrors:   m.TransportErrors.Load(),
		Errors4xx:         m.Errors4xx.Load(),
		Errors5xx:         m.Errors5xx.Load(),
		AverageLatency:    m.AverageLatency(),
	}
}
