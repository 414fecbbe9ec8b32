// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/MKhiriev/go-exchange-admin/internal/app"
	"github.com/MKhiriev/go-exchange-admin/internal/logger"
)

const healthCheckTimeout = 2 * time.Second

// healthResponse is the body of GET /healthz.
type healthResponse struct {
	Status string `json:"status"`
	Engine string `json:"engine"`
}

// getHealth answers 200 while the event log database is reachable and 503
// otherwise. A stopped engine is reported but does not fail the probe.
func (h *Handler) getHealth(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	resp := healthResponse{Status: app.MsgStatusOK, Engine: "running"}
	code := http.StatusOK

	if h.services.ExchangeService != nil && !h.services.ExchangeService.Running() {
		resp.Engine = "stopped"
	}

	if h.health != nil {
		ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
		defer cancel()

		if err := h.health.Ping(ctx); err != nil {
			log.Err(err).Msg("health check failed")
			resp.Status = app.MsgStatusUnavailable
			code = http.StatusServiceUnavailable
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Err(err).Msg("error writing health response")
	}
}
