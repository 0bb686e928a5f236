package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/storefront-service/internal/circuitbreaker"
)

// healthCheckTimeout bounds each dependency check of the readiness probe.
const healthCheckTimeout = 2 * time.Second

// HealthChecker reports whether a dependency is reachable.
type HealthChecker interface {
	Check(ctx context.Context) error
}

// HealthCheckFunc adapts a function to HealthChecker.
type HealthCheckFunc func(ctx context.Context) error

// Check calls f.
func (f HealthCheckFunc) Check(ctx context.Context) error {
	return f(ctx)
}

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	checkers        map[string]HealthChecker
	circuitBreakers map[string]*circuitbreaker.CircuitBreaker
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{
		checkers:        make(map[string]HealthChecker),
		circuitBreakers: make(map[string]*circuitbreaker.CircuitBreaker),
	}
}

// RegisterCircuitBreaker reports cb on the readiness probe. An open breaker
// makes the service not ready.
func (h *HealthHandler) RegisterCircuitBreaker(name string, cb *circuitbreaker.CircuitBreaker) {
	if cb != nil {
		h.circuitBreakers[name] = cb
	}
}

// RegisterChecker registers a dependency checked by the readiness probe.
func (h *HealthHandler) RegisterChecker(name string, checker HealthChecker) {
	h.checkers[name] = checker
}

// Register registers health endpoints on the router.
func (h *HealthHandler) Register(router *gin.Engine) {
	router.GET("/healthz", h.Liveness)
	router.GET("/readyz", h.Readiness)
}

// Liveness handles the liveness probe endpoint.
// @Summary     Liveness probe
// @Description Returns OK while the process is serving requests.
// @Tags        Health
// @Produce     json
// @Success     200 {object} map[string]string "Service is alive"
// @Router      /healthz [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles the readiness probe endpoint.
// @Summary     Readiness probe
// @Description Checks every registered dependency in parallel and reports the state of the circuit breakers. Answers 503 when a dependency is down or a breaker is open.
// @Tags        Health
// @Produce     json
// @Success     200 {object} map[string]interface{} "Service is ready"
// @Failure     503 {object} map[string]interface{} "Service is not ready"
// @Router      /readyz [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	checks := h.runChecks(c.Request.Context())
	ready := true
	for _, result := range checks {
		if result != "ok" {
			ready = false
		}
	}

	circuits := make(map[string]string, len(h.circuitBreakers))
	for name, cb := range h.circuitBreakers {
		stats := cb.GetStats()
		circuits[name] = stats.State
		if !stats.IsHealthy {
			ready = false
		}
	}

	status, label := http.StatusOK, "ok"
	if !ready {
		status, label = http.StatusServiceUnavailable, "degraded"
	}
	c.JSON(status, gin.H{
		"status":   label,
		"checks":   checks,
		"circuits": circuits,
	})
}

func (h *HealthHandler) runChecks(ctx context.Context) map[string]string {
	results := make(map[string]string, len(h.checkers))
	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for name, checker := range h.checkers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			checkCtx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
			defer cancel()

			result := "ok"
			if err := checker.Check(checkCtx); err != nil {
				result = err.Error()
			}
			mu.Lock()
			results[name] = result
			mu.Unlock()
		}()
	}
	wg.Wait()
	return results
}
