package memory_test

import (
	"context"
	"testing"

	"github.com/driftdns/driftdns/internal/provider"
	"github.com/driftdns/driftdns/internal/provider/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListRecords_Empty(t *testing.T) {
	p := memory.New()

	records, err := p.ListRecords(context.Background(), "host.example.com.")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestListRecords_FiltersByName(t *testing.T) {
	p := memory.New()
	p.Seed(provider.Record{Name: "host.example.com.", Type: "A", TTL: 300, Data: []string{"203.0.113.5"}})
	p.Seed(provider.Record{Name: "other.example.com.", Type: "A", TTL: 300, Data: []string{"198.51.100.7"}})

	records, err := p.ListRecords(context.Background(), "host.example.com.")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "host.example.com.", records[0].Name)
	assert.Equal(t, []string{"203.0.113.5"}, records[0].Data)
}

func TestListRecords_OrderedByType(t *testing.T) {
	p := memory.New()
	p.Seed(provider.Record{Name: "host.example.com.", Type: "AAAA", TTL: 300, Data: []string{"2001:db8::1"}})
	p.Seed(provider.Record{Name: "host.example.com.", Type: "A", TTL: 300, Data: []string{"203.0.113.5"}})

	records, err := p.ListRecords(context.Background(), "host.example.com.")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "A", records[0].Type)
	assert.Equal(t, "AAAA", records[1].Type)
}

func TestUpsertRecord_ReplacesStale(t *testing.T) {
	p := memory.New()
	old := provider.Record{Name: "host.example.com.", Type: "A", TTL: 300, Data: []string{"198.51.100.7"}}
	p.Seed(old)

	updated := provider.Record{Name: "host.example.com.", Type: "A", TTL: 600, Data: []string{"203.0.113.5"}}
	err := p.UpsertRecord(context.Background(), updated, []provider.Record{old})
	require.NoError(t, err)

	records, err := p.ListRecords(context.Background(), "host.example.com.")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, []string{"203.0.113.5"}, records[0].Data)
	assert.Equal(t, int64(600), records[0].TTL)
}

func TestUpsertRecord_LeavesOtherTypesAlone(t *testing.T) {
	p := memory.New()
	p.Seed(provider.Record{Name: "host.example.com.", Type: "TXT", TTL: 300, Data: []string{`"v=spf1 -all"`}})

	rec := provider.Record{Name: "host.example.com.", Type: "A", TTL: 300, Data: []string{"203.0.113.5"}}
	require.NoError(t, p.UpsertRecord(context.Background(), rec, nil))

	records, err := p.ListRecords(context.Background(), "host.example.com.")
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestListRecords_ReturnsCopies(t *testing.T) {
	p := memory.New()
	p.Seed(provider.Record{Name: "host.example.com.", Type: "A", TTL: 300, Data: []string{"203.0.113.5"}})

	records, err := p.ListRecords(context.Background(), "host.example.com.")
	require.NoError(t, err)
	records[0].Data[0] = "mutated"

	again, err := p.ListRecords(context.Background(), "host.example.com.")
	require.NoError(t, err)
	assert.Equal(t, []string{"203.0.113.5"}, again[0].Data)
}

func TestVerifyZone(t *testing.T) {
	assert.NoError(t, memory.New().VerifyZone(context.Background()))
}
