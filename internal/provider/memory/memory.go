// Package memory implements the provider interface with process-local state.
//
// It backs unit tests and the DNS_PROVIDER=memory mode, where update requests
// mutate an in-process table instead of a real zone. Nothing survives a
// restart.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/driftdns/driftdns/internal/provider"
)

// Provider stores record sets keyed by name and type.
// All methods are safe for concurrent use.
type Provider struct {
	mu      sync.RWMutex
	records map[string]provider.Record
}

// New creates an empty in-memory provider.
func New() *Provider {
	return &Provider{records: make(map[string]provider.Record)}
}

// ListRecords returns the record sets under name, ordered by type for
// deterministic output.
func (p *Provider) ListRecords(_ context.Context, name string) ([]provider.Record, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make([]provider.Record, 0, 2)
	for _, rec := range p.records {
		if rec.Name == name {
			out = append(out, clone(rec))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Type < out[j].Type })
	return out, nil
}

// UpsertRecord deletes the stale record sets and installs rec under one lock,
// mirroring the atomic change semantics of a real backend.
func (p *Provider) UpsertRecord(_ context.Context, rec provider.Record, stale []provider.Record) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, s := range stale {
		delete(p.records, key(s.Name, s.Type))
	}
	p.records[key(rec.Name, rec.Type)] = clone(rec)
	return nil
}

// VerifyZone always succeeds; there is no remote zone to probe.
func (p *Provider) VerifyZone(_ context.Context) error {
	return nil
}

// Seed installs a record directly, bypassing upsert semantics. Test setup
// helper.
func (p *Provider) Seed(rec provider.Record) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.records[key(rec.Name, rec.Type)] = clone(rec)
}

// Len reports how many record sets are stored.
func (p *Provider) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.records)
}

func key(name, rtype string) string {
	return name + "|" + rtype
}

func clone(rec provider.Record) provider.Record {
	rec.Data = append([]string(nil), rec.Data...)
	return rec
}
