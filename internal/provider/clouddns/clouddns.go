// Package clouddns implements the provider interface on Google Cloud DNS.
package clouddns

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	dns "google.golang.org/api/dns/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/driftdns/driftdns/internal/provider"
)

// Config identifies the managed zone and how to authenticate against it.
type Config struct {
	Project string
	Zone    string

	// CredentialsFile points at a service account JSON key. Empty selects
	// Application Default Credentials.
	CredentialsFile string
}

// Provider talks to the Cloud DNS v1 API for a single project/zone pair.
type Provider struct {
	project string
	zone    string
	svc     *dns.Service
	logger  *slog.Logger
}

// New builds a Cloud DNS client scoped to cfg's zone.
func New(ctx context.Context, cfg Config, logger *slog.Logger) (*Provider, error) {
	if cfg.Project == "" || cfg.Zone == "" {
		return nil, errors.New("clouddns: project and zone are required")
	}

	opts, err := clientOptions(ctx, cfg.CredentialsFile)
	if err != nil {
		return nil, err
	}
	svc, err := dns.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create cloud dns client: %w", err)
	}

	return &Provider{project: cfg.Project, zone: cfg.Zone, svc: svc, logger: logger}, nil
}

// clientOptions selects explicit service-account credentials when a key file
// is configured, ADC otherwise.
func clientOptions(ctx context.Context, credentialsFile string) ([]option.ClientOption, error) {
	if credentialsFile == "" {
		return []option.ClientOption{option.WithScopes(dns.NdevClouddnsReadwriteScope)}, nil
	}

	jsonKey, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("read credentials file: %w", err)
	}
	jwt, err := google.JWTConfigFromJSON(jsonKey, dns.NdevClouddnsReadwriteScope)
	if err != nil {
		return nil, fmt.Errorf("parse credentials file: %w", err)
	}
	client := oauth2.NewClient(ctx, jwt.TokenSource(ctx))
	return []option.ClientOption{option.WithHTTPClient(client)}, nil
}

// ListRecords returns every record set under the fully qualified name.
func (p *Provider) ListRecords(ctx context.Context, name string) ([]provider.Record, error) {
	resp, err := p.svc.ResourceRecordSets.List(p.project, p.zone).Name(name).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("list record sets for %s: %w", name, err)
	}

	out := make([]provider.Record, 0, len(resp.Rrsets))
	for _, rr := range resp.Rrsets {
		out = append(out, provider.Record{
			Name: rr.Name,
			Type: rr.Type,
			TTL:  rr.Ttl,
			Data: append([]string(nil), rr.Rrdatas...),
		})
	}
	return out, nil
}

// UpsertRecord submits one change that deletes the stale record sets and adds
// rec. Cloud DNS applies the change atomically; the deletions must match the
// live record sets exactly or the API rejects the change.
func (p *Provider) UpsertRecord(ctx context.Context, rec provider.Record, stale []provider.Record) error {
	change := &dns.Change{
		Additions: []*dns.ResourceRecordSet{rrset(rec)},
	}
	for _, s := range stale {
		change.Deletions = append(change.Deletions, rrset(s))
	}

	applied, err := p.svc.Changes.Create(p.project, p.zone, change).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("apply change for %s: %w", rec.Name, err)
	}
	if p.logger != nil {
		p.logger.Debug("cloud dns change submitted",
			"name", rec.Name,
			"type", rec.Type,
			"deletions", len(change.Deletions),
			"status", applied.Status,
		)
	}
	return nil
}

// VerifyZone confirms the managed zone exists and the credentials can see it.
func (p *Provider) VerifyZone(ctx context.Context) error {
	zone, err := p.svc.ManagedZones.Get(p.project, p.zone).Context(ctx).Do()
	if err != nil {
		var gerr *googleapi.Error
		if errors.As(err, &gerr) && gerr.Code == http.StatusNotFound {
			return fmt.Errorf("managed zone %q not found in project %q", p.zone, p.project)
		}
		return fmt.Errorf("get managed zone %s: %w", p.zone, err)
	}

	if p.logger != nil {
		p.logger.Info("cloud dns zone verified", "zone", p.zone, "dns_name", zone.DnsName)
	}
	return nil
}

func rrset(rec provider.Record) *dns.ResourceRecordSet {
	return &dns.ResourceRecordSet{
		Name:    rec.Name,
		Type:    rec.Type,
		Ttl:     rec.TTL,
		Rrdatas: rec.Data,
	}
}
