package main

import (
	"net/http"

	"github.com/torre9/condominio/internal/response"
	"github.com/torre9/condominio/internal/store"
)

type GetTerrazaResponse = response.APIResponse[[]store.SpecialFeeDetail]
type GetReservaResponse = response.APIResponse[store.ReserveBalance]

func (app *application) handleGetTerraza(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	data, err := app.store.SpecialFees.List(ctx)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to list special fees: "+err.Error())
		return
	}

	response := &GetTerrazaResponse{
		Success: true,
		Data:    data,
		Message: "Successfully listed special fees",
	}

	if err := writeJSON(w, http.StatusOK, response); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

func (app *application) handleGetReserva(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	data, err := app.store.Reserve.Balance(ctx)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to compute reserve balance: "+err.Error())
		return
	}

	response := &GetReservaResponse{
		Success: true,
		Data:    data,
		Message: "Successfully computed reserve balance",
	}

	if err := writeJSON(w, http.StatusOK, response); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}
