package condominio

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/torre9/condominio/internal/condominio/workbook"
	"github.com/torre9/condominio/internal/db"
	"github.com/torre9/condominio/internal/logger"
	"github.com/torre9/condominio/internal/store"
	"github.com/xuri/excelize/v2"
)

var testLogger = &logger.Logger{MinLevel: logger.LevelError}

// unitCodes is the 16-unit roster of the deployed building.
func unitCodes() []string {
	codes := []string{"PB-A", "PB-B", "PB-C", "PB-D"}
	for floor := 1; floor <= 4; floor++ {
		for _, letter := range []string{"A", "B", "C"} {
			codes = append(codes, fmt.Sprintf("%d-%s", floor, letter))
		}
	}
	return codes
}

func writeSheet(t *testing.T, f *excelize.File, name string, rows [][]string) {
	t.Helper()
	for r, row := range rows {
		for c, val := range row {
			if val == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(name, cell, val))
		}
	}
}

// writeTestWorkbook lays out the three sheets the way the building's
// accountant does: banner rows above the header, running totals below the
// data, one sheet per concern.
func writeTestWorkbook(t *testing.T, dir string) string {
	t.Helper()

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName("Sheet1", "Hoja3"))
	_, err := f.NewSheet("Hoja2")
	require.NoError(t, err)
	_, err = f.NewSheet("Hoja5")
	require.NoError(t, err)

	roster := [][]string{
		{"CONDOMINIO TORRE 9", "", ""},
		{"", "", ""},
		{"APTO", "PROPIETARIO", "TOTAL"},
	}
	for i, code := range unitCodes() {
		roster = append(roster, []string{code, fmt.Sprintf("Propietario %d", i+1), "16.50"})
	}
	roster = append(roster,
		[]string{"", "", ""},
		[]string{"POR COBRAR", "", "264.00"},
	)
	writeSheet(t, f, "Hoja3", roster)

	writeSheet(t, f, "Hoja2", [][]string{
		{"GASTOS DEL MES", "", ""},
		{"", "", ""},
		{"Concepto", "BCV ($)", "Bolívares (Bs)"},
		{"Mantenimiento ascensor", "100.00", "3600.00"},
		{"Limpieza áreas comunes", "$164.02", "5904.72"},
		{"-", "-", "-"},
		{"Totales Finales", "264.02", "9504.72"},
		{"Alicuota por Apto /16", "16.50", "594.05"},
	})

	writeSheet(t, f, "Hoja5", [][]string{
		{"PROYECTO TERRAZA", "", "", ""},
		{"", "", "", ""},
		{"", "", "", ""},
		{"", "", "", ""},
		{"", "", "", ""},
		{"APTO", "PROPIETARIO", "CUOTA 1", "CUOTA 2"},
		{"PB-A", "Propietario 1", "11.41", "11.41"},
		{"1-A", "Propietario 5", "11.41", "-"},
		{"9-Z", "Desconocido", "11.41", ""},
		{"", "TOTAL (BS)", "34.23", "11.41"},
	})

	path := filepath.Join(dir, "Condominio.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())
	return path
}

func testConfig(t *testing.T) Config {
	t.Helper()
	dir := t.TempDir()
	cfg := DefaultConfig(dir)
	cfg.WorkbookPath = writeTestWorkbook(t, dir)
	return cfg
}

func openStore(t *testing.T, path string) *store.Storage {
	t.Helper()
	database, err := db.New(path, 1, 1, "1m")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return store.NewStorage(database)
}

func TestRunSeedsStore(t *testing.T) {
	cfg := testConfig(t)
	ctx := context.Background()

	report, err := Run(ctx, cfg, testLogger)
	require.NoError(t, err)

	assert.Equal(t, 16, report.Apartments)
	assert.Equal(t, 2, report.Expenses)
	assert.Equal(t, 16, report.Dues)
	assert.Equal(t, 3, report.SpecialFees)
	assert.Equal(t, 2, report.Reserve)
	assert.NotZero(t, report.SentinelRows)
	assert.Empty(t, report.MalformedRows)
	require.Len(t, report.DanglingRefs, 1)
	assert.Contains(t, report.DanglingRefs[0], "9-Z")

	storage := openStore(t, cfg.StorePath)

	count, err := storage.Apartments.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 16, count)

	dues, err := storage.Dues.List(ctx)
	require.NoError(t, err)
	assert.Len(t, dues, count)

	aliquot, err := storage.Summary.Aliquot(ctx, cfg.Period)
	require.NoError(t, err)
	assert.InDelta(t, 264.02, aliquot.TotalUSD, 1e-9)
	assert.InDelta(t, 16.50125, aliquot.PerApartment, 1e-9)

	balance, err := storage.Reserve.Balance(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 134.69, balance.BalanceUSD, 1e-9)
	assert.InDelta(t, 2.22, balance.BalanceBs, 1e-9)
}

func TestRunLeavesNoSentinelRowsBehind(t *testing.T) {
	cfg := testConfig(t)
	ctx := context.Background()

	_, err := Run(ctx, cfg, testLogger)
	require.NoError(t, err)

	storage := openStore(t, cfg.StorePath)

	apartments, err := storage.Apartments.List(ctx)
	require.NoError(t, err)
	for _, a := range apartments {
		assert.NotEqual(t, "POR COBRAR", a.Code)
	}

	expenses, err := storage.Expenses.List(ctx, "")
	require.NoError(t, err)
	for _, e := range expenses {
		assert.NotEqual(t, "Totales Finales", e.Concept)
		assert.NotEqual(t, "Alicuota por Apto /16", e.Concept)
	}
}

func TestRunRefusesExistingStoreWithoutForce(t *testing.T) {
	cfg := testConfig(t)
	ctx := context.Background()

	first, err := Run(ctx, cfg, testLogger)
	require.NoError(t, err)

	_, err = Run(ctx, cfg, testLogger)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStoreExists)

	// The refused run must leave the store exactly as it was.
	storage := openStore(t, cfg.StorePath)
	count, err := storage.Apartments.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.Apartments, count)
}

func TestRunForcedRebuildIsIdempotent(t *testing.T) {
	cfg := testConfig(t)
	ctx := context.Background()

	first, err := Run(ctx, cfg, testLogger)
	require.NoError(t, err)

	cfg.Force = true
	second, err := Run(ctx, cfg, testLogger)
	require.NoError(t, err)

	assert.Equal(t, first.Summary(), second.Summary())

	storage := openStore(t, cfg.StorePath)
	count, err := storage.Apartments.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.Apartments, count)
}

func TestRunMissingWorkbook(t *testing.T) {
	cfg := testConfig(t)
	cfg.WorkbookPath = filepath.Join(t.TempDir(), "nope.xlsx")

	_, err := Run(context.Background(), cfg, testLogger)
	require.Error(t, err)
	assert.ErrorIs(t, err, workbook.ErrSourceNotFound)

	_, statErr := os.Stat(cfg.StorePath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRunMissingExternalSchema(t *testing.T) {
	cfg := testConfig(t)
	cfg.SchemaPath = filepath.Join(t.TempDir(), "nope.sql")

	_, err := Run(context.Background(), cfg, testLogger)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSchemaNotFound)

	_, statErr := os.Stat(cfg.StorePath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRunMalformedBalanceKeepsApartment(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultConfig(dir)

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName("Sheet1", "Hoja3"))
	_, err := f.NewSheet("Hoja2")
	require.NoError(t, err)
	_, err = f.NewSheet("Hoja5")
	require.NoError(t, err)

	writeSheet(t, f, "Hoja3", [][]string{
		{"CONDOMINIO TORRE 9", "", ""},
		{"", "", ""},
		{"APTO", "PROPIETARIO", "TOTAL"},
		{"PB-A", "Ana", "16.50"},
		{"PB-B", "Bruno", "PENDIENTE"},
	})
	writeSheet(t, f, "Hoja2", [][]string{
		{"GASTOS DEL MES", "", ""},
		{"", "", ""},
		{"Concepto", "BCV ($)", "Bolívares (Bs)"},
		{"Limpieza", "33.00", "1188.00"},
	})
	writeSheet(t, f, "Hoja5", [][]string{
		{"PROYECTO TERRAZA", "", "", ""},
		{"", "", "", ""},
		{"", "", "", ""},
		{"", "", "", ""},
		{"", "", "", ""},
		{"APTO", "PROPIETARIO", "CUOTA 1", "CUOTA 2"},
	})

	cfg.WorkbookPath = filepath.Join(dir, "Condominio.xlsx")
	require.NoError(t, f.SaveAs(cfg.WorkbookPath))
	require.NoError(t, f.Close())

	ctx := context.Background()
	report, err := Run(ctx, cfg, testLogger)
	require.NoError(t, err)

	// The unreadable balance drops the due line, never the apartment.
	assert.Equal(t, 2, report.Apartments)
	assert.Equal(t, 1, report.Dues)
	require.Len(t, report.MalformedRows, 1)
	assert.Contains(t, report.MalformedRows[0], "Hoja3")
}

func TestRunDuplicateUnitLeavesNoStore(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultConfig(dir)

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName("Sheet1", "Hoja3"))
	_, err := f.NewSheet("Hoja2")
	require.NoError(t, err)
	_, err = f.NewSheet("Hoja5")
	require.NoError(t, err)

	writeSheet(t, f, "Hoja3", [][]string{
		{"CONDOMINIO TORRE 9", "", ""},
		{"", "", ""},
		{"APTO", "PROPIETARIO", "TOTAL"},
		{"PB-A", "Ana", "16.50"},
		{"PB-A", "Ana otra vez", "16.50"},
	})
	writeSheet(t, f, "Hoja2", [][]string{
		{"GASTOS DEL MES", "", ""},
		{"", "", ""},
		{"Concepto", "BCV ($)", "Bolívares (Bs)"},
		{"Limpieza", "33.00", "1188.00"},
	})
	writeSheet(t, f, "Hoja5", [][]string{
		{"PROYECTO TERRAZA", "", "", ""},
		{"", "", "", ""},
		{"", "", "", ""},
		{"", "", "", ""},
		{"", "", "", ""},
		{"APTO", "PROPIETARIO", "CUOTA 1", "CUOTA 2"},
	})

	cfg.WorkbookPath = filepath.Join(dir, "Condominio.xlsx")
	require.NoError(t, f.SaveAs(cfg.WorkbookPath))
	require.NoError(t, f.Close())

	_, err = Run(context.Background(), cfg, testLogger)
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrDuplicateUnit)

	// A fatal load must not leave a half-built store behind.
	_, statErr := os.Stat(cfg.StorePath)
	assert.True(t, os.IsNotExist(statErr))
}
