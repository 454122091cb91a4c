package httpx

import (
	"context"
	"net/http"
	"time"
)

// HealthChecker is satisfied by any infrastructure dependency that exposes
// a Ping method (pgxpool.Pool, RedisClient, EventBus all qualify).
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// HealthChecks holds the dependencies the health endpoint probes, keyed by
// the name reported in the response. A nil checker is reported as "disabled"
// and never degrades overall status; the worker process registers fewer
// dependencies than the API this way.
type HealthChecks struct {
	Service string
	Version string
	Checks  map[string]HealthChecker
}

type healthResponse struct {
	Status  string            `json:"status"`
	Service string            `json:"service,omitempty"`
	Version string            `json:"version,omitempty"`
	Deps    map[string]string `json:"dependencies"`
}

const healthProbeTimeout = 2 * time.Second

// HealthHandler returns an http.HandlerFunc that probes every registered
// dependency and reports 503 with status "degraded" if any probe fails.
func HealthHandler(hc HealthChecks) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthProbeTimeout)
		defer cancel()

		resp := healthResponse{
			Status:  "ok",
			Service: hc.Service,
			Version: hc.Version,
			Deps:    make(map[string]string, len(hc.Checks)),
		}

		for name, checker := range hc.Checks {
			switch {
			case checker == nil:
				resp.Deps[name] = "disabled"
			case checker.Ping(ctx) != nil:
				resp.Deps[name] = "unreachable"
				resp.Status = "degraded"
			default:
				resp.Deps[name] = "ok"
			}
		}

		status := http.StatusOK
		if resp.Status != "ok" {
			status = http.StatusServiceUnavailable
		}
		JSON(w, status, resp)
	}
}
