package arrears

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeReportBuckets(t *testing.T) {
	rentals := []Rental{
		{ID: "behind", MoveIn: "2024-01", MonthlyPrice: "1000000", Status: RentalActive},
		{ID: "current", MoveIn: "2024-02", MonthlyPrice: "500000", Status: RentalActive},
		{ID: "overpaid", MoveIn: "2024-03", MonthlyPrice: "500000", Status: RentalActive},
	}
	payments := []Payment{
		{ID: "p1", RentalID: "behind", Amount: "1000000", ForMonth: "2024-01"},
		{ID: "p2", RentalID: "current", Amount: "500000", ForMonth: "2024-02"},
		{ID: "p3", RentalID: "current", Amount: "500000", ForMonth: "2024-03"},
		{ID: "p4", RentalID: "overpaid", Amount: "500000", ForMonth: "2024-03"},
		{ID: "p5", RentalID: "overpaid", Amount: "500000", ForMonth: "2024-04"},
		{ID: "p6", RentalID: "overpaid", Amount: "600000", ForMonth: "2024-05"},
	}

	report := ComputeReport(rentals, payments, date("2024-04-05"))

	require.Len(t, report.Behind, 1)
	require.Len(t, report.Current, 1)
	require.Len(t, report.Overpaid, 1)
	assert.Empty(t, report.Errors)

	assert.Equal(t, "behind", report.Behind[0].Rental.ID)
	assert.Equal(t, "current", report.Current[0].Rental.ID)
	assert.Equal(t, "overpaid", report.Overpaid[0].Rental.ID)

	// behind owes 2m: expected 3,000,000 paid 1,000,000.
	assert.True(t, report.TotalOutstanding.Equal(dec("2000000")))
	// overpaid has 1,600,000 against 500,000 expected.
	assert.True(t, report.TotalOverpaid.Equal(dec("1100000")))
}

func TestComputeReportIsolatesBadRentals(t *testing.T) {
	rentals := []Rental{
		{ID: "ok", MoveIn: "2024-01", MonthlyPrice: "500000", Status: RentalActive},
		{ID: "bad", MoveIn: "whenever", MonthlyPrice: "500000", Status: RentalActive},
	}

	report := ComputeReport(rentals, nil, date("2024-02-01"))

	require.Len(t, report.Errors, 1)
	assert.Equal(t, "bad", report.Errors[0].RentalID)
	assert.ErrorIs(t, report.Errors[0].Err, ErrInvalidContract)
	assert.Len(t, report.Behind, 1)
}

func TestComputeReportPreservesInputOrder(t *testing.T) {
	rentals := []Rental{
		{ID: "b2", MoveIn: "2024-01", MonthlyPrice: "100", Status: RentalActive},
		{ID: "b1", MoveIn: "2024-01", MonthlyPrice: "100", Status: RentalActive},
		{ID: "b3", MoveIn: "2024-01", MonthlyPrice: "100", Status: RentalActive},
	}

	report := ComputeReport(rentals, nil, date("2024-03-01"))

	require.Len(t, report.Behind, 3)
	assert.Equal(t, "b2", report.Behind[0].Rental.ID)
	assert.Equal(t, "b1", report.Behind[1].Rental.ID)
	assert.Equal(t, "b3", report.Behind[2].Rental.ID)
}

func TestComputeReportEmptyInput(t *testing.T) {
	report := ComputeReport(nil, nil, date("2024-01-01"))

	assert.Empty(t, report.Behind)
	assert.Empty(t, report.Current)
	assert.Empty(t, report.Overpaid)
	assert.True(t, report.TotalOutstanding.IsZero())
	assert.True(t, report.TotalOverpaid.IsZero())
}
