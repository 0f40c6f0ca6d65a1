package types

import "fmt"

// SheetSpec describes the shape of one workbook sheet: where its header row
// lives, which column identifies a row, and which marker values flag
// spreadsheet-authoring artifacts (running totals, section footers) that must
// never become entities.
type SheetSpec struct {
	Name       string
	HeaderSkip int
	KeyColumn  string
	// Columns maps logical field names to the header names actually present
	// in the sheet, so header renames stay a configuration change.
	Columns map[string]string
	// Sentinels maps a column name to the marker values that make a row
	// non-data when found in that column.
	Sentinels map[string][]string
}

// Column resolves a logical field name to the sheet's header name, falling
// back to the logical name itself when no mapping is configured.
func (s SheetSpec) Column(field string) string {
	if name, ok := s.Columns[field]; ok {
		return name
	}
	return field
}

// SheetSet groups the three source sheets one seeding run reads.
type SheetSet struct {
	Roster   SheetSpec
	Expenses SheetSpec
	Terrace  SheetSpec
}

// Reserve ledger directions, as stored in the 'reserva' table.
const (
	DirectionInflow  = "ENTRADA"
	DirectionOutflow = "SALIDA"
)

type Apartment struct {
	Code  string `json:"codigo"`
	Owner string `json:"propietario"`
}

type ExpenseLine struct {
	Period    string  `json:"mes_anio"`
	Concept   string  `json:"concepto"`
	AmountUSD float64 `json:"monto_usd"`
	AmountBs  float64 `json:"monto_bs"`
}

// DueLine keeps the apartment code unresolved; the loader resolves it against
// the apartments inserted earlier in the same run.
type DueLine struct {
	Code        string  `json:"codigo"`
	Period      string  `json:"mes_anio"`
	AssessedUSD float64 `json:"alicuota_usd"`
}

type SpecialFeeLine struct {
	Code        string  `json:"codigo"`
	Description string  `json:"descripcion"`
	AmountUSD   float64 `json:"monto_usd"`
}

type ReserveLine struct {
	Description string  `json:"descripcion"`
	Direction   string  `json:"tipo"`
	AmountUSD   float64 `json:"monto_usd"`
	AmountBs    float64 `json:"monto_bs"`
}

// SeedPayload is the normalized output of one workbook read, ready for the
// transactional load.
type SeedPayload struct {
	Period      string           `json:"mes_anio"`
	Apartments  []Apartment      `json:"apartamentos"`
	Expenses    []ExpenseLine    `json:"gastos"`
	Dues        []DueLine        `json:"cobranzas"`
	SpecialFees []SpecialFeeLine `json:"cuotas_especiales"`
	Reserve     []ReserveLine    `json:"reserva"`
}

// SeedReport accumulates the recoverable conditions of a run. Recoverable
// conditions never change the run's exit status; they are surfaced at
// end of run.
type SeedReport struct {
	Apartments  int
	Expenses    int
	Dues        int
	SpecialFees int
	Reserve     int

	SentinelRows  int
	MalformedRows []string
	DanglingRefs  []string
}

func (r *SeedReport) AddMalformed(sheet string, row int, err error) {
	r.MalformedRows = append(r.MalformedRows, fmt.Sprintf("%s row %d: %v", sheet, row, err))
}

func (r *SeedReport) AddDangling(table, code string) {
	r.DanglingRefs = append(r.DanglingRefs, fmt.Sprintf("%s: unknown apartment code %q", table, code))
}

func (r *SeedReport) Summary() string {
	return fmt.Sprintf(
		"apartments=%d expenses=%d dues=%d specialFees=%d reserve=%d sentinelRows=%d malformedRows=%d danglingRefs=%d",
		r.Apartments, r.Expenses, r.Dues, r.SpecialFees, r.Reserve,
		r.SentinelRows, len(r.MalformedRows), len(r.DanglingRefs))
}
