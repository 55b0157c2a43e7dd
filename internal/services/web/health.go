package web

import (
	"encoding/json"
	"net/http"

	module "github.com/louisbranch/charactercatalog/internal/services/web/module"
)

type healthReport struct {
	Status  string          `json:"status"`
	Modules map[string]bool `json:"modules"`
}

// healthHandler reports 200 while every module that can report health is
// healthy, and 503 otherwise.
func healthHandler(features []module.Module) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		report := healthReport{Status: "ok", Modules: make(map[string]bool, len(features))}
		status := http.StatusOK
		for _, feature := range features {
			reporter, ok := feature.(module.HealthReporter)
			if !ok {
				continue
			}
			healthy := reporter.Healthy()
			report.Modules[feature.ID()] = healthy
			if !healthy {
				report.Status = "degraded"
				status = http.StatusServiceUnavailable
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(report)
	})
}
