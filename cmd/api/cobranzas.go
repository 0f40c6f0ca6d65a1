package main

import (
	"net/http"

	"github.com/torre9/condominio/internal/response"
	"github.com/torre9/condominio/internal/store"
)

type GetCobranzasResponse = response.APIResponse[[]store.DueDetail]
type GetApartamentosResponse = response.APIResponse[[]store.Apartment]

func (app *application) handleGetCobranzas(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	data, err := app.store.Dues.List(ctx)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to list dues: "+err.Error())
		return
	}

	response := &GetCobranzasResponse{
		Success: true,
		Data:    data,
		Message: "Successfully listed dues",
	}

	if err := writeJSON(w, http.StatusOK, response); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

func (app *application) handleGetApartamentos(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	data, err := app.store.Apartments.List(ctx)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to list apartments: "+err.Error())
		return
	}

	response := &GetApartamentosResponse{
		Success: true,
		Data:    data,
		Message: "Successfully listed apartments",
	}

	if err := writeJSON(w, http.StatusOK, response); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}
