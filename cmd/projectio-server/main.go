// Command projectio-server exposes the projection engine over HTTP: POST a
// ProjectModel, get back the full bundle as JSON, or request a rendered
// amortisation/tornado chart. No template UI, only a JSON/HTML API.
package main

import (
	"encoding/json"
	"fmt"
	"net/http"

	"projectio/chartio"
	"projectio/facade"
	"projectio/internal/obs/config"
	"projectio/internal/obs/log"
	"projectio/model"
	"projectio/sensitivity"

	zlog "github.com/rs/zerolog/log"
)

type runRequest struct {
	Model     model.ProjectModel     `json:"model"`
	BreakEven facade.BreakEvenParams `json:"breakEven"`
}

type sensitivityRequest struct {
	Model      model.ProjectModel     `json:"model"`
	BreakEven  facade.BreakEvenParams `json:"breakEven"`
	Variables  []string               `json:"variables"`
	Variations []float64              `json:"variations"`
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("load config:", err)
		return
	}
	log.Init(&cfg.Log)

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/projection", handleProjection)
	mux.HandleFunc("/v1/sensitivity", handleSensitivity)
	mux.HandleFunc("/v1/chart/amortization", handleAmortizationChart)
	mux.HandleFunc("/v1/chart/tornado", handleTornadoChart)

	zlog.Info().Str("addr", cfg.ServerAddr).Msg("projectio-server starting")
	if err := http.ListenAndServe(cfg.ServerAddr, mux); err != nil {
		zlog.Fatal().Err(err).Msg("server exited")
	}
}

func handleProjection(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req runRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	bundle, diagnostics, err := facade.Run(req.Model, req.BreakEven)
	if err != nil {
		writeValidationError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Bundle      facade.Bundle      `json:"bundle"`
		Diagnostics []model.Diagnostic `json:"diagnostics"`
	}{bundle, diagnostics})
}

func handleSensitivity(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req sensitivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	results, err := sensitivity.Sweep(req.Model, req.BreakEven, req.Variables, req.Variations)
	if err != nil {
		writeValidationError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Results []model.SensitivityResult `json:"results"`
		Tornado []model.TornadoRow        `json:"tornado"`
	}{results, sensitivity.Tornado(results)})
}

func handleAmortizationChart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req runRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	bundle, _, err := facade.Run(req.Model, req.BreakEven)
	if err != nil {
		writeValidationError(w, err)
		return
	}

	name := r.URL.Query().Get("loan")
	rows, ok := bundle.Amortizations[name]
	if !ok {
		http.Error(w, "unknown loan name: "+name, http.StatusNotFound)
		return
	}

	html, err := chartio.AmortizationChart(name, rows)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html")
	w.Write([]byte(html))
}

func handleTornadoChart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req sensitivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	results, err := sensitivity.Sweep(req.Model, req.BreakEven, req.Variables, req.Variations)
	if err != nil {
		writeValidationError(w, err)
		return
	}

	html, err := chartio.TornadoChart(sensitivity.Tornado(results))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html")
	w.Write([]byte(html))
}

func writeValidationError(w http.ResponseWriter, err error) {
	var valErr *model.ValidationError
	if ok := asValidationError(err, &valErr); ok {
		writeJSON(w, http.StatusBadRequest, struct {
			Problems []model.Problem `json:"problems"`
		}{valErr.Problems})
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

func asValidationError(err error, target **model.ValidationError) bool {
	valErr, ok := err.(*model.ValidationError)
	if !ok {
		return false
	}
	*target = valErr
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zlog.Error().Err(err).Msg("encode response")
	}
}
