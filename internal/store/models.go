package store

// Apartment represents the 'apartamentos' table. Rows are created once per
// seeding run and never mutated by the pipeline.
type Apartment struct {
	ID    int64  `db:"id" json:"id"`
	Code  string `db:"codigo" json:"codigo"`
	Owner string `db:"propietario" json:"propietario"`
}

// Expense represents the 'gastos' table, one row per line-item expense of a
// period. A period's total is the sum over its rows.
type Expense struct {
	ID        int64   `db:"id" json:"id"`
	Period    string  `db:"mes_anio" json:"mes_anio"`
	Concept   string  `db:"concepto" json:"concepto"`
	AmountUSD float64 `db:"monto_usd" json:"monto_usd"`
	AmountBs  float64 `db:"monto_bs" json:"monto_bs"`
}

// Due represents the 'cobranzas' table: what a unit owes for a period and
// how much of it has been paid.
type Due struct {
	ID          int64   `db:"id" json:"id"`
	ApartmentID int64   `db:"apartamento_id" json:"apartamento_id"`
	Period      string  `db:"mes_anio" json:"mes_anio"`
	AssessedUSD float64 `db:"alicuota_usd" json:"alicuota_usd"`
	PaidUSD     float64 `db:"monto_pagado_usd" json:"monto_pagado_usd"`
}

// DueDetail is a Due joined with its apartment, as served by the API.
type DueDetail struct {
	Due
	Code       string  `db:"codigo" json:"codigo"`
	Owner      string  `db:"propietario" json:"propietario"`
	BalanceUSD float64 `db:"deuda_usd" json:"deuda_usd"`
}

// SpecialFee represents the 'cuotas_especiales' table: one-off charges
// layered on top of regular dues.
type SpecialFee struct {
	ID          int64   `db:"id" json:"id"`
	ApartmentID int64   `db:"apartamento_id" json:"apartamento_id"`
	Description string  `db:"descripcion" json:"descripcion"`
	AmountUSD   float64 `db:"monto_usd" json:"monto_usd"`
}

// SpecialFeeDetail is a SpecialFee joined with its apartment code.
type SpecialFeeDetail struct {
	SpecialFee
	Code string `db:"codigo" json:"codigo"`
}

// ReserveMovement represents the 'reserva' table, an append-only ledger of
// the building's reserve fund.
type ReserveMovement struct {
	ID          int64   `db:"id" json:"id"`
	Description string  `db:"descripcion" json:"descripcion"`
	Direction   string  `db:"tipo" json:"tipo"`
	AmountUSD   float64 `db:"monto_usd" json:"monto_usd"`
	AmountBs    float64 `db:"monto_bs" json:"monto_bs"`
}

// ReserveBalance is inflows minus outflows over the whole ledger.
type ReserveBalance struct {
	BalanceUSD float64 `db:"saldo_usd" json:"saldo_usd"`
	BalanceBs  float64 `db:"saldo_bs" json:"saldo_bs"`
}

// PaymentNotice represents the 'notificaciones_pago' table: payments reported
// by owners, pending verification. The BCV rate is a pre-computed input.
type PaymentNotice struct {
	ID        int64   `db:"id" json:"id"`
	Code      string  `db:"apartamento_codigo" json:"apartamento_codigo"`
	PaidAt    string  `db:"fecha_pago" json:"fecha_pago"`
	AmountUSD float64 `db:"monto" json:"monto"`
	AmountBs  float64 `db:"monto_bs" json:"monto_bs"`
	RateBCV   float64 `db:"tasa_bcv" json:"tasa_bcv"`
	Reference string  `db:"referencia" json:"referencia"`
	Status    string  `db:"estatus" json:"estatus"`
}

var (
	NoticeStatusPending  = "PENDIENTE"
	NoticeStatusApproved = "APROBADO"
)

// MonthlyAliquot is one row of the vista_alicuotas view.
type MonthlyAliquot struct {
	Period        string  `db:"mes_anio" json:"mes_anio"`
	TotalUSD      float64 `db:"total_gastos_usd" json:"total_gastos_usd"`
	PerApartment  float64 `db:"alicuota_por_apto" json:"alicuota_por_apto"`
	ApartmentUnit int     `db:"num_apartamentos" json:"num_apartamentos"`
}

// MonthlySummary is the dashboard figure set for one period.
type MonthlySummary struct {
	Period          string  `db:"mes_anio" json:"mes_anio"`
	TotalUSD        float64 `db:"total_gastos_usd" json:"total_gastos_usd"`
	TotalBs         float64 `db:"total_gastos_bs" json:"total_gastos_bs"`
	Apartments      int     `db:"num_apartamentos" json:"num_apartamentos"`
	PerApartment    float64 `db:"alicuota_por_apto" json:"alicuota_por_apto"`
	ReceivableUSD   float64 `db:"total_por_cobrar_usd" json:"total_por_cobrar_usd"`
	ReserveUSD      float64 `db:"saldo_reserva_usd" json:"saldo_reserva_usd"`
	ReserveBs       float64 `db:"saldo_reserva_bs" json:"saldo_reserva_bs"`
}

// TableStatus reports existence and size of one expected table, as consumed
// by the health check.
type TableStatus struct {
	Name   string `json:"tabla"`
	Exists bool   `json:"existe"`
	Rows   int64  `json:"registros"`
}
