package http

import (
	"runtime"
	"time"

	"github.com/gofiber/fiber/v2"
)

// HealthHandler sonda de liveness. Sin autenticación.
type HealthHandler struct {
	service     string
	environment string
	startedAt   time.Time
}

func NewHealthHandler(service, environment string) *HealthHandler {
	return &HealthHandler{service: service, environment: environment, startedAt: time.Now()}
}

type healthMemory struct {
	AllocMB      uint64 `json:"alloc_mb"`
	TotalAllocMB uint64 `json:"total_alloc_mb"`
	SysMB        uint64 `json:"sys_mb"`
	NumGC        uint32 `json:"num_gc"`
}

type healthResponse struct {
	Status        string       `json:"status"`
	Service       string       `json:"service"`
	Environment   string       `json:"environment"`
	UptimeSeconds int64        `json:"uptime_seconds"`
	Timestamp     time.Time    `json:"timestamp"`
	Memory        healthMemory `json:"memory"`
	Goroutines    int          `json:"goroutines"`
}

// Check godoc
// @Summary      Estado del servicio
// @Tags         health
// @Produce      json
// @Success      200  {object}  healthResponse
// @Router       /health [get]
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	const mb = 1024 * 1024
	return c.JSON(healthResponse{
		Status:        "ok",
		Service:       h.service,
		Environment:   h.environment,
		UptimeSeconds: int64(time.Since(h.startedAt).Seconds()),
		Timestamp:     time.Now().UTC(),
		Memory: healthMemory{
			AllocMB:      m.Alloc / mb,
			TotalAllocMB: m.TotalAlloc / mb,
			SysMB:        m.Sys / mb,
			NumGC:        m.NumGC,
		},
		Goroutines: runtime.NumGoroutine(),
	})
}
