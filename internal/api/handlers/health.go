package handlers

import (
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"

	"github.com/driftdns/driftdns/internal/api/models"
)

// Health godoc
// @Summary Health check
// @Description Returns server health status
// @Tags system
// @Produce json
// @Success 200 {object} models.StatusResponse
// @Router /health [get]
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, models.StatusResponse{Status: "ok"})
}

// Stats godoc
// @Summary Server statistics
// @Description Returns runtime statistics including memory, goroutines and update counters
// @Tags system
// @Produce json
// @Success 200 {object} models.ServerStatsResponse
// @Security ApiKeyAuth
// @Router /stats [get]
func (h *Handler) Stats(c *gin.Context) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	uptime := time.Since(h.startTime)
	snap := h.stats.Snapshot()

	resp := models.ServerStatsResponse{
		Uptime:        uptime.Round(time.Second).String(),
		UptimeSeconds: int64(uptime.Seconds()),
		StartTime:     h.startTime,
		GoRoutines:    runtime.NumGoroutine(),
		MemoryAllocMB: float64(m.Alloc) / 1024 / 1024,
		NumCPU:        runtime.NumCPU(),
		Updates: models.UpdateStatsResponse{
			Total:         snap.Total,
			Good:          snap.Good,
			NoChange:      snap.NoChange,
			BadAuth:       snap.BadAuth,
			NoHost:        snap.NoHost,
			BadAgent:      snap.BadAgent,
			Failed:        snap.Failed,
			ProviderOps:   snap.ProviderOps,
			AvgProviderMs: snap.AvgProviderMs,
		},
		System: systemStats(),
	}
	if snap.LastChangeUnix > 0 {
		ts := time.Unix(snap.LastChangeUnix, 0).UTC()
		resp.Updates.LastChange = &ts
	}

	c.JSON(http.StatusOK, resp)
}

// systemStats probes host memory and the process footprint. It returns nil
// when the platform does not expose the data.
func systemStats() *models.SystemStatsResponse {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return nil
	}

	out := &models.SystemStatsResponse{
		MemoryTotalMB: float64(vm.Total) / 1024 / 1024,
		MemoryUsedMB:  float64(vm.Used) / 1024 / 1024,
		MemoryUsedPct: vm.UsedPercent,
	}

	if proc, err := process.NewProcess(int32(os.Getpid())); err == nil {
		if mi, err := proc.MemoryInfo(); err == nil && mi != nil {
			out.ProcessRSSMB = float64(mi.RSS) / 1024 / 1024
		}
		if pct, err := proc.CPUPercent(); err == nil {
			out.ProcessCPUPct = pct
		}
	}
	return out
}
