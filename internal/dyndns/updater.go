package dyndns

import (
	"context"
	"fmt"
	"log/slog"
	"net/netip"
	"strings"
	"time"

	"github.com/driftdns/driftdns/internal/provider"
)

// Provider op labels used for stats and metrics.
const (
	opList   = "list"
	opChange = "change"
)

// Result describes the outcome of one update request.
type Result struct {
	Status Status

	// IP is the parsed client address. Zero when the myip parameter did not
	// parse.
	IP netip.Addr

	// Type is the record type the address maps to, "A" or "AAAA". Empty when
	// IP is zero.
	Type string
}

// Updater applies dyndns2 updates for a single managed hostname.
//
// An update replaces only the record set of the requested address family:
// an IPv4 update touches the A record set, an IPv6 update the AAAA one.
// Record sets of the other family and of other types stay as they are, so
// dual-stack clients that alternate families do not clobber each other.
type Updater struct {
	hostname string
	ttl      int64
	provider provider.Provider
	logger   *slog.Logger
	stats    *Stats
}

// New creates an updater that manages hostname with the given record TTL.
func New(hostname string, ttl int64, p provider.Provider, logger *slog.Logger, stats *Stats) *Updater {
	if logger == nil {
		logger = slog.Default()
	}
	if stats == nil {
		stats = NewStats()
	}
	return &Updater{
		hostname: hostname,
		ttl:      ttl,
		provider: p,
		logger:   logger,
		stats:    stats,
	}
}

// Apply handles one authenticated update request and returns the dyndns2
// outcome. Provider failures surface as the 911 token, never as an error to
// the caller.
func (u *Updater) Apply(ctx context.Context, hostname, myip string) Result {
	res, err := u.apply(ctx, hostname, myip)
	u.stats.Record(res.Status)

	if err != nil {
		u.logger.Error("update failed",
			"hostname", hostname,
			"myip", myip,
			"status", res.Status.String(),
			"error", err,
		)
		return res
	}
	u.logger.Info("update handled",
		"hostname", hostname,
		"myip", myip,
		"status", res.Status.String(),
	)
	return res
}

func (u *Updater) apply(ctx context.Context, hostname, myip string) (Result, error) {
	// Step 1: parse the requested address. A missing or malformed myip is a
	// client error regardless of the hostname.
	addr, err := netip.ParseAddr(strings.TrimSpace(myip))
	if err != nil || addr.Zone() != "" {
		return Result{Status: StatusBadAgent}, nil
	}
	addr = addr.Unmap()

	recordType := "AAAA"
	if addr.Is4() {
		recordType = "A"
	}

	// Step 2: only the configured hostname is updatable.
	if !u.hostnameAllowed(hostname) {
		return Result{Status: StatusNoHost, IP: addr, Type: recordType}, nil
	}

	// Step 3: read the current record sets under the canonical name.
	fqdn := provider.FQDN(u.hostname)
	start := time.Now()
	records, err := u.provider.ListRecords(ctx, fqdn)
	u.stats.RecordProviderOp(opList, time.Since(start))
	if err != nil {
		return Result{Status: StatusError, IP: addr, Type: recordType}, fmt.Errorf("list records: %w", err)
	}

	// Step 4: compare against the record set of the same family.
	stale := sameTypeRecords(records, recordType)
	if len(stale) == 1 && holdsAddr(stale[0], addr) {
		return Result{Status: StatusNoChange, IP: addr, Type: recordType}, nil
	}

	// Step 5: replace that record set in one provider change.
	rec := provider.Record{
		Name: fqdn,
		Type: recordType,
		TTL:  u.ttl,
		Data: []string{addr.String()},
	}
	start = time.Now()
	err = u.provider.UpsertRecord(ctx, rec, stale)
	u.stats.RecordProviderOp(opChange, time.Since(start))
	if err != nil {
		return Result{Status: StatusError, IP: addr, Type: recordType}, fmt.Errorf("upsert record: %w", err)
	}

	return Result{Status: StatusGood, IP: addr, Type: recordType}, nil
}

// hostnameAllowed reports whether the requested hostname names the managed
// record. Comparison ignores case and a trailing dot.
func (u *Updater) hostnameAllowed(requested string) bool {
	trimmed := strings.TrimSuffix(strings.TrimSpace(requested), ".")
	return trimmed != "" && strings.EqualFold(trimmed, u.hostname)
}

// sameTypeRecords returns the subset of records with the given type.
func sameTypeRecords(records []provider.Record, recordType string) []provider.Record {
	var out []provider.Record
	for _, r := range records {
		if r.Type == recordType {
			out = append(out, r)
		}
	}
	return out
}

// holdsAddr reports whether rec contains exactly the given address. Values
// are compared as parsed addresses so notational variants of the same IPv6
// address still count as unchanged.
func holdsAddr(rec provider.Record, addr netip.Addr) bool {
	if len(rec.Data) != 1 {
		return false
	}
	cur, err := netip.ParseAddr(rec.Data[0])
	return err == nil && cur.Unmap() == addr
}
