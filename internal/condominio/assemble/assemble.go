package assemble

import (
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/torre9/condominio/internal/condominio/normalize"
	"github.com/torre9/condominio/internal/condominio/types"
	"github.com/torre9/condominio/internal/condominio/workbook"
	"github.com/torre9/condominio/internal/logger"
)

const component = "Assembler"

// BuildPayload reads the three source sheets and turns their surviving rows
// into a normalized SeedPayload. A missing sheet is fatal; malformed numeric
// cells and unresolved references are recoverable and land in the report.
// Given the same workbook, the output is identical on every call.
func BuildPayload(wb *workbook.Workbook, sheets types.SheetSet, period string, installmentUSD float64, appLogger *logger.Logger) (*types.SeedPayload, *types.SeedReport, error) {
	payload := &types.SeedPayload{Period: period}
	report := &types.SeedReport{}

	rosterDf, err := wb.Sheet(sheets.Roster)
	if err != nil {
		return nil, nil, err
	}
	expensesDf, err := wb.Sheet(sheets.Expenses)
	if err != nil {
		return nil, nil, err
	}
	terraceDf, err := wb.Sheet(sheets.Terrace)
	if err != nil {
		return nil, nil, err
	}

	assembleRoster(&rosterDf, sheets.Roster, period, payload, report)
	assembleExpenses(&expensesDf, sheets.Expenses, period, payload, report)
	assembleTerrace(&terraceDf, sheets.Terrace, installmentUSD, payload, report)

	appLogger.Info(component, "Workbook assembled: %s", report.Summary())
	return payload, report, nil
}

// assembleRoster yields one apartment per surviving row plus one due line
// carrying the row's accumulated balance. A malformed balance skips the due
// line only; the roster stays authoritative for which apartments exist.
func assembleRoster(df *dataframe.DataFrame, spec types.SheetSpec, period string, payload *types.SeedPayload, report *types.SeedReport) {
	codeCol := spec.Column("code")
	ownerCol := spec.Column("owner")
	totalCol := spec.Column("total")

	for i := 0; i < df.Nrow(); i++ {
		code := strings.TrimSpace(normalize.GetStr(codeCol, i, df))
		if normalize.IsEmpty(code) || normalize.IsSentinel(df, i, spec) {
			report.SentinelRows++
			continue
		}

		owner := strings.TrimSpace(normalize.GetStr(ownerCol, i, df))
		payload.Apartments = append(payload.Apartments, types.Apartment{Code: code, Owner: owner})

		assessed, err := normalize.Amount(normalize.GetStr(totalCol, i, df))
		if err != nil {
			report.AddMalformed(spec.Name, i, err)
			continue
		}
		payload.Dues = append(payload.Dues, types.DueLine{
			Code:        code,
			Period:      period,
			AssessedUSD: assessed,
		})
	}
}

func assembleExpenses(df *dataframe.DataFrame, spec types.SheetSpec, period string, payload *types.SeedPayload, report *types.SeedReport) {
	conceptCol := spec.Column("concept")
	usdCol := spec.Column("usd")
	bsCol := spec.Column("bs")

	for i := 0; i < df.Nrow(); i++ {
		concept := strings.TrimSpace(normalize.GetStr(conceptCol, i, df))
		if normalize.IsEmpty(concept) || normalize.IsSentinel(df, i, spec) {
			report.SentinelRows++
			continue
		}

		amountUSD, err := normalize.Amount(normalize.GetStr(usdCol, i, df))
		if err != nil {
			report.AddMalformed(spec.Name, i, err)
			continue
		}
		amountBs, err := normalize.Amount(normalize.GetStr(bsCol, i, df))
		if err != nil {
			report.AddMalformed(spec.Name, i, err)
			continue
		}

		payload.Expenses = append(payload.Expenses, types.ExpenseLine{
			Period:    period,
			Concept:   concept,
			AmountUSD: amountUSD,
			AmountBs:  amountBs,
		})
	}
}

// assembleTerrace emits zero, one or two fee lines per row. The installment
// cells only act as presence triggers; the amount is a configuration
// constant, not the cell value.
func assembleTerrace(df *dataframe.DataFrame, spec types.SheetSpec, installmentUSD float64, payload *types.SeedPayload, report *types.SeedReport) {
	codeCol := spec.Column("code")
	fee1Col := spec.Column("fee1")
	fee2Col := spec.Column("fee2")

	for i := 0; i < df.Nrow(); i++ {
		code := strings.TrimSpace(normalize.GetStr(codeCol, i, df))
		if normalize.IsEmpty(code) || normalize.IsSentinel(df, i, spec) {
			report.SentinelRows++
			continue
		}

		if !normalize.IsEmpty(normalize.GetStr(fee1Col, i, df)) {
			payload.SpecialFees = append(payload.SpecialFees, types.SpecialFeeLine{
				Code:        code,
				Description: "Proyecto Terraza - Cuota 1",
				AmountUSD:   installmentUSD,
			})
		}
		if !normalize.IsEmpty(normalize.GetStr(fee2Col, i, df)) {
			payload.SpecialFees = append(payload.SpecialFees, types.SpecialFeeLine{
				Code:        code,
				Description: "Proyecto Terraza - Cuota 2",
				AmountUSD:   installmentUSD,
			})
		}
	}
}
