package main

import (
	"net/http"
	"time"

	"github.com/torre9/condominio/internal/response"
	"github.com/torre9/condominio/internal/store"
)

type GetNotificacionesResponse = response.APIResponse[[]store.PaymentNotice]
type CreatePagoResponse = response.APIResponse[store.PaymentNotice]

type CreatePagoRequest struct {
	Code      string  `json:"apartamento_codigo"`
	PaidAt    string  `json:"fecha_pago"`
	AmountUSD float64 `json:"monto"`
	AmountBs  float64 `json:"monto_bs"`
	RateBCV   float64 `json:"tasa_bcv"`
	Reference string  `json:"referencia"`
}

func (app *application) handleGetNotificaciones(w http.ResponseWriter, r *http.Request) {
	codeParam := r.URL.Query().Get("apartamento")

	ctx := r.Context()
	data, err := app.store.Notices.List(ctx, codeParam)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to list payment notices: "+err.Error())
		return
	}

	response := &GetNotificacionesResponse{
		Success: true,
		Data:    data,
		Message: "Successfully listed payment notices",
	}

	if err := writeJSON(w, http.StatusOK, response); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

func (app *application) handleCreatePago(w http.ResponseWriter, r *http.Request) {
	var req CreatePagoRequest
	if err := readJSON(w, r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if req.Code == "" {
		writeJSONError(w, http.StatusBadRequest, "apartamento_codigo is required")
		return
	}
	if req.AmountUSD <= 0 && req.AmountBs <= 0 {
		writeJSONError(w, http.StatusBadRequest, "either monto or monto_bs must be positive")
		return
	}
	if req.PaidAt == "" {
		req.PaidAt = time.Now().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", req.PaidAt); err != nil {
		writeJSONError(w, http.StatusBadRequest, "fecha_pago must be formatted as 2006-01-02")
		return
	}

	notice := &store.PaymentNotice{
		Code:      req.Code,
		PaidAt:    req.PaidAt,
		AmountUSD: req.AmountUSD,
		AmountBs:  req.AmountBs,
		RateBCV:   req.RateBCV,
		Reference: req.Reference,
	}

	ctx := r.Context()
	if err := app.store.Notices.Insert(ctx, notice); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to record payment notice: "+err.Error())
		return
	}

	response := &CreatePagoResponse{
		Success: true,
		Data:    *notice,
		Message: "Successfully recorded payment notice",
	}

	if err := writeJSON(w, http.StatusCreated, response); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}
