package condominio

import (
	"path/filepath"

	"github.com/torre9/condominio/internal/condominio/types"
)

// Config carries everything one seeding run needs. No path or sheet shape is
// read from process-wide state; callers build a Config and hand it to Run.
type Config struct {
	WorkbookPath string
	StorePath    string
	// SchemaPath overrides the embedded schema script when set. A set but
	// missing path is fatal.
	SchemaPath string
	Period     string
	// Force opts into destructive replacement of an existing store.
	Force bool

	Sheets types.SheetSet

	// TerraceInstallmentUSD is the fixed amount of each terrace-project
	// installment; the workbook cells only mark which installments a unit
	// signed up for.
	TerraceInstallmentUSD float64

	// OpeningReserve holds the known starting reserve and cash-on-hand
	// figures. These are configuration inputs, not workbook cells.
	OpeningReserve []types.ReserveLine
}

// DefaultConfig mirrors the deployed workbook: sheet names, header offsets
// and sentinel markers are fixed per deployment, never auto-detected.
func DefaultConfig(baseDir string) Config {
	return Config{
		WorkbookPath: filepath.Join(baseDir, "Condominio.xlsx"),
		StorePath:    filepath.Join(baseDir, "condominio.db"),
		Period:       "2026-01",
		Sheets: types.SheetSet{
			Roster: types.SheetSpec{
				Name:       "Hoja3",
				HeaderSkip: 2,
				KeyColumn:  "APTO",
				Columns: map[string]string{
					"code":  "APTO",
					"owner": "PROPIETARIO",
					"total": "TOTAL",
				},
				Sentinels: map[string][]string{
					"APTO": {"POR COBRAR"},
				},
			},
			Expenses: types.SheetSpec{
				Name:       "Hoja2",
				HeaderSkip: 2,
				KeyColumn:  "Concepto",
				Columns: map[string]string{
					"concept": "Concepto",
					"usd":     "BCV ($)",
					"bs":      "Bolívares (Bs)",
				},
				Sentinels: map[string][]string{
					"Concepto": {"Totales Finales", "Alicuota por Apto /16", "TOTAL (BS)"},
				},
			},
			Terrace: types.SheetSpec{
				Name:       "Hoja5",
				HeaderSkip: 5,
				KeyColumn:  "APTO",
				Columns: map[string]string{
					"code": "APTO",
					"fee1": "CUOTA 1",
					"fee2": "CUOTA 2",
				},
				Sentinels: map[string][]string{
					"PROPIETARIO": {"TOTAL (BS)"},
				},
			},
		},
		TerraceInstallmentUSD: 11.41,
		OpeningReserve: []types.ReserveLine{
			{
				Description: "Saldo Final Reserva Enero 2026",
				Direction:   types.DirectionInflow,
				AmountUSD:   134.69,
			},
			{
				Description: "Efectivo en Caja al 31-01-26",
				Direction:   types.DirectionInflow,
				AmountBs:    2.22,
			},
		},
	}
}
