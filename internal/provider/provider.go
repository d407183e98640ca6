// Package provider defines the DNS backend surface used by the updater.
//
// Implementations manage record sets inside a single zone. The interface is
// deliberately small so the update logic can be tested against an in-memory
// implementation without network access.
package provider

import (
	"context"
	"strings"
)

// Record is one DNS resource record set.
//
// Name is fully qualified, with the trailing dot. Data holds the rrdata
// values; the address records this service manages carry exactly one.
type Record struct {
	Name string
	Type string
	TTL  int64
	Data []string
}

// Provider is a DNS backend scoped to one project/zone pair.
type Provider interface {
	// ListRecords returns every record set under the given fully qualified
	// name. A name with no records yields an empty slice, not an error.
	ListRecords(ctx context.Context, name string) ([]Record, error)

	// UpsertRecord applies one atomic change: the stale record sets are
	// deleted and rec is created. Entries in stale must carry the exact
	// attributes of the records they replace.
	UpsertRecord(ctx context.Context, rec Record, stale []Record) error

	// VerifyZone checks that the configured zone exists and is reachable
	// with the active credentials. Called once at startup.
	VerifyZone(ctx context.Context) error
}

// FQDN appends the trailing dot when name does not already end with one.
func FQDN(name string) string {
	if strings.HasSuffix(name, ".") {
		return name
	}
	return name + "."
}
