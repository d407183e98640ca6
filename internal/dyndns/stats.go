package dyndns

import (
	"sync/atomic"
	"time"
)

// Stats collects update statistics.
// All methods are safe for concurrent use.
type Stats struct {
	updatesTotal      atomic.Uint64
	updatesGood       atomic.Uint64
	updatesNoChange   atomic.Uint64
	updatesBadAuth    atomic.Uint64
	updatesNoHost     atomic.Uint64
	updatesBadAgent   atomic.Uint64
	updatesFailed     atomic.Uint64
	providerOps       atomic.Uint64
	providerLatencyNs atomic.Uint64
	lastChangeUnix    atomic.Int64
}

// NewStats creates a new update statistics collector.
func NewStats() *Stats {
	return &Stats{}
}

// Record counts one handled update request by its outcome.
func (s *Stats) Record(st Status) {
	s.updatesTotal.Add(1)
	switch st {
	case StatusGood:
		s.updatesGood.Add(1)
		now := time.Now().Unix()
		s.lastChangeUnix.Store(now)
		setLastChange(now)
	case StatusNoChange:
		s.updatesNoChange.Add(1)
	case StatusBadAuth:
		s.updatesBadAuth.Add(1)
	case StatusNoHost:
		s.updatesNoHost.Add(1)
	case StatusBadAgent:
		s.updatesBadAgent.Add(1)
	default:
		s.updatesFailed.Add(1)
	}
	countStatus(st)
}

// RecordProviderOp records one round-trip to the DNS provider (list or
// change) and its latency.
func (s *Stats) RecordProviderOp(op string, d time.Duration) {
	s.providerOps.Add(1)
	if ns := d.Nanoseconds(); ns > 0 {
		s.providerLatencyNs.Add(uint64(ns))
	}
	observeProviderOp(op, d)
}

// StatsSnapshot is a point-in-time snapshot of update statistics.
type StatsSnapshot struct {
	Total         uint64
	Good          uint64
	NoChange      uint64
	BadAuth       uint64
	NoHost        uint64
	BadAgent      uint64
	Failed        uint64
	ProviderOps   uint64
	AvgProviderMs float64

	// LastChangeUnix is the time of the most recent applied change in unix
	// seconds, 0 when no change was applied since start.
	LastChangeUnix int64
}

// Snapshot returns the current statistics.
func (s *Stats) Snapshot() StatsSnapshot {
	ops := s.providerOps.Load()
	latencyNs := s.providerLatencyNs.Load()

	avgProviderMs := 0.0
	if ops > 0 {
		avgProviderMs = float64(latencyNs) / float64(ops) / 1e6
	}

	return StatsSnapshot{
		Total:          s.updatesTotal.Load(),
		Good:           s.updatesGood.Load(),
		NoChange:       s.updatesNoChange.Load(),
		BadAuth:        s.updatesBadAuth.Load(),
		NoHost:         s.updatesNoHost.Load(),
		BadAgent:       s.updatesBadAgent.Load(),
		Failed:         s.updatesFailed.Load(),
		ProviderOps:    ops,
		AvgProviderMs:  avgProviderMs,
		LastChangeUnix: s.lastChangeUnix.Load(),
	}
}
