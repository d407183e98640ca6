package models

import "time"

// ServerStatsResponse contains server runtime statistics.
type ServerStatsResponse struct {
	Uptime        string               `json:"uptime"`
	UptimeSeconds int64                `json:"uptime_seconds"`
	StartTime     time.Time            `json:"start_time"`
	GoRoutines    int                  `json:"goroutines"`
	MemoryAllocMB float64              `json:"memory_alloc_mb"`
	NumCPU        int                  `json:"num_cpu"`
	Updates       UpdateStatsResponse  `json:"updates"`
	System        *SystemStatsResponse `json:"system,omitempty"`
}

// UpdateStatsResponse contains dyndns2 update statistics.
type UpdateStatsResponse struct {
	Total         uint64     `json:"total"`
	Good          uint64     `json:"good"`
	NoChange      uint64     `json:"nochg"`
	BadAuth       uint64     `json:"badauth"`
	NoHost        uint64     `json:"nohost"`
	BadAgent      uint64     `json:"badagent"`
	Failed        uint64     `json:"failed"`
	ProviderOps   uint64     `json:"provider_ops"`
	AvgProviderMs float64    `json:"avg_provider_ms"`
	LastChange    *time.Time `json:"last_change,omitempty"`
}

// SystemStatsResponse contains host-level statistics. It is omitted when the
// platform probes fail.
type SystemStatsResponse struct {
	MemoryTotalMB float64 `json:"memory_total_mb"`
	MemoryUsedMB  float64 `json:"memory_used_mb"`
	MemoryUsedPct float64 `json:"memory_used_percent"`
	ProcessRSSMB  float64 `json:"process_rss_mb"`
	ProcessCPUPct float64 `json:"process_cpu_percent"`
}
