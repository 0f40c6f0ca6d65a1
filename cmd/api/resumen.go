package main

import (
	"errors"
	"net/http"

	"github.com/torre9/condominio/internal/response"
	"github.com/torre9/condominio/internal/store"
)

type GetResumenResponse = response.APIResponse[store.MonthlySummary]
type GetAlicuotaResponse = response.APIResponse[store.MonthlyAliquot]

func (app *application) handleGetResumen(w http.ResponseWriter, r *http.Request) {
	periodParam := r.URL.Query().Get("mes")

	ctx := r.Context()
	data, err := app.store.Summary.Monthly(ctx, periodParam)
	if err != nil {
		if errors.Is(err, store.ErrNoUnits) {
			writeJSONError(w, http.StatusConflict, "no apartments registered, seed the store first")
			return
		}
		writeJSONError(w, http.StatusInternalServerError, "failed to build monthly summary: "+err.Error())
		return
	}

	response := &GetResumenResponse{
		Success: true,
		Data:    data,
		Message: "Successfully built monthly summary",
	}

	if err := writeJSON(w, http.StatusOK, response); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

func (app *application) handleGetAlicuota(w http.ResponseWriter, r *http.Request) {
	periodParam := r.URL.Query().Get("mes")

	ctx := r.Context()
	data, err := app.store.Summary.Aliquot(ctx, periodParam)
	if err != nil {
		if errors.Is(err, store.ErrNoUnits) {
			writeJSONError(w, http.StatusConflict, "no apartments registered, seed the store first")
			return
		}
		writeJSONError(w, http.StatusInternalServerError, "failed to compute aliquot: "+err.Error())
		return
	}

	response := &GetAlicuotaResponse{
		Success: true,
		Data:    data,
		Message: "Successfully computed monthly aliquot",
	}

	if err := writeJSON(w, http.StatusOK, response); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}
