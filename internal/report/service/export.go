package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/kelolalabs/kelola/internal/arrears"
	"github.com/kelolalabs/kelola/internal/report/domain"
)

type exportColumn struct {
	Header string
	Value  func(e domain.StatusEntry) any
}

var exportColumns = []exportColumn{
	{Header: "Tenant", Value: func(e domain.StatusEntry) any { return e.TenantName }},
	{Header: "Phone", Value: func(e domain.StatusEntry) any { return e.TenantPhone }},
	{Header: "Property", Value: func(e domain.StatusEntry) any { return e.PropertyName }},
	{Header: "Room", Value: func(e domain.StatusEntry) any { return e.RoomName }},
	{Header: "Move In", Value: func(e domain.StatusEntry) any { return e.Rental.MoveIn }},
	{Header: "Monthly Price", Value: func(e domain.StatusEntry) any { return e.MonthlyPrice.String() }},
	{Header: "Billable Months", Value: func(e domain.StatusEntry) any { return e.BillableMonthCount }},
	{Header: "Expected Total", Value: func(e domain.StatusEntry) any { return e.ExpectedTotal.String() }},
	{Header: "Total Paid", Value: func(e domain.StatusEntry) any { return e.TotalPaid.String() }},
	{Header: "Balance", Value: func(e domain.StatusEntry) any { return e.Balance.String() }},
	{Header: "Status", Value: func(e domain.StatusEntry) any { return string(e.Bucket) }},
	{Header: "Last Paid Month", Value: func(e domain.StatusEntry) any {
		if e.LastPaidMonth == nil {
			return ""
		}
		return e.LastPaidMonth.String()
	}},
	{Header: "Missing Months", Value: func(e domain.StatusEntry) any {
		months := make([]string, 0, len(e.MissingMonths))
		for _, m := range e.MissingMonths {
			months = append(months, m.String())
		}
		return strings.Join(months, ", ")
	}},
}

func (s *Service) ExportPaymentStatusXLSX(ctx context.Context, asOf time.Time) (*domain.Export, error) {
	report, err := s.PaymentStatus(ctx, asOf)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Payment Status"
	f.SetSheetName(f.GetSheetName(0), sheet)

	for i, col := range exportColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, col.Header)
	}

	rowIdx := 2
	writeEntries := func(entries []domain.StatusEntry) {
		for _, e := range entries {
			for colIdx, col := range exportColumns {
				cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx)
				_ = f.SetCellValue(sheet, cell, col.Value(e))
			}
			rowIdx++
		}
	}
	writeEntries(report.Behind)
	writeEntries(report.Current)
	writeEntries(report.Overpaid)

	summaryRow := rowIdx + 1
	cell, _ := excelize.CoordinatesToCellName(1, summaryRow)
	_ = f.SetCellValue(sheet, cell, "Total Outstanding")
	cell, _ = excelize.CoordinatesToCellName(2, summaryRow)
	_ = f.SetCellValue(sheet, cell, report.TotalOutstanding.String())
	cell, _ = excelize.CoordinatesToCellName(1, summaryRow+1)
	_ = f.SetCellValue(sheet, cell, "Total Overpaid")
	cell, _ = excelize.CoordinatesToCellName(2, summaryRow+1)
	_ = f.SetCellValue(sheet, cell, report.TotalOverpaid.String())

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	filename := fmt.Sprintf("payment-status-%s-%s.xlsx",
		arrears.MonthOf(asOf).String(), uuid.NewString()[:8])

	return &domain.Export{Filename: filename, Data: buf.Bytes()}, nil
}
