package main

import (
	"net/http"

	"github.com/torre9/condominio/internal/response"
	"github.com/torre9/condominio/internal/store"
)

type GetGastosResponse = response.APIResponse[[]store.Expense]

func (app *application) handleGetGastos(w http.ResponseWriter, r *http.Request) {
	periodParam := r.URL.Query().Get("mes")

	ctx := r.Context()
	data, err := app.store.Expenses.List(ctx, periodParam)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to list expenses: "+err.Error())
		return
	}

	response := &GetGastosResponse{
		Success: true,
		Data:    data,
		Message: "Successfully listed expenses",
	}

	if err := writeJSON(w, http.StatusOK, response); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}
