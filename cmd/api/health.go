package main

import (
	"net/http"

	"github.com/torre9/condominio/internal/store"
)

func (app *application) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	statuses, err := app.store.Schema.Status(ctx, store.ExpectedTables)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to inspect store: "+err.Error())
		return
	}

	status := "available"
	for _, s := range statuses {
		if !s.Exists {
			status = "degraded"
			break
		}
	}

	data := map[string]any{
		"status":  status,
		"version": "0.0.1",
		"tables":  statuses,
	}

	code := http.StatusOK
	if status != "available" {
		code = http.StatusServiceUnavailable
	}

	if err := writeJSON(w, code, data); err != nil {
		writeJSONError(w, http.StatusInternalServerError, err.Error())
	}
}
