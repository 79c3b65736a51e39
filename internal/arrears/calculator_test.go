package arrears

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func month(value string) Month {
	m, err := ParseMonth(value)
	if err != nil {
		panic(err)
	}
	return m
}

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func TestBillableMonthRange(t *testing.T) {
	rental := Rental{ID: "r1", MoveIn: "2024-01", MonthlyPrice: "500000", Status: RentalActive}

	// Moved in this month: the month in progress is excluded, but the
	// tenant owes the move-in month immediately.
	status, err := ComputePaymentStatus(rental, nil, date("2024-01-15"))
	require.NoError(t, err)
	assert.Equal(t, 1, status.BillableMonthCount)
	assert.Equal(t, []Month{month("2024-01")}, status.MissingMonths)

	// April in progress: Jan, Feb, Mar billable.
	status, err = ComputePaymentStatus(rental, nil, date("2024-04-10"))
	require.NoError(t, err)
	assert.Equal(t, 3, status.BillableMonthCount)
	assert.Equal(t, []Month{month("2024-01"), month("2024-02"), month("2024-03")}, status.MissingMonths)
}

func TestFutureMoveInFloorsAtOneMonth(t *testing.T) {
	rental := Rental{ID: "r1", MoveIn: "2024-06", MonthlyPrice: "500000", Status: RentalActive}

	status, err := ComputePaymentStatus(rental, nil, date("2024-03-01"))
	require.NoError(t, err)
	assert.Equal(t, 1, status.BillableMonthCount)
	assert.Equal(t, []Month{month("2024-06")}, status.MissingMonths)
	assert.True(t, status.ExpectedTotal.Equal(dec("500000")))
}

func TestBillableRangeAcrossYearBoundary(t *testing.T) {
	rental := Rental{ID: "r1", MoveIn: "2023-11", MonthlyPrice: "100", Status: RentalActive}

	status, err := ComputePaymentStatus(rental, nil, date("2024-02-05"))
	require.NoError(t, err)
	assert.Equal(t, 3, status.BillableMonthCount)
	assert.Equal(t, []Month{month("2023-11"), month("2023-12"), month("2024-01")}, status.MissingMonths)
}

func TestClassificationBoundaries(t *testing.T) {
	rental := Rental{ID: "r1", MoveIn: "2024-01", MonthlyPrice: "500000", Status: RentalActive}
	asOf := date("2024-02-10") // exactly one billable month

	cases := []struct {
		name     string
		amount   string
		coverage Coverage
	}{
		{"one short of the price", "499999", CoveragePartial},
		{"exactly the price", "500000", CoverageCovered},
		{"over the price", "600000", CoverageCovered},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			payments := []Payment{{ID: "p1", RentalID: "r1", Amount: tc.amount, ForMonth: "2024-01"}}
			status, err := ComputePaymentStatus(rental, payments, asOf)
			require.NoError(t, err)
			require.Len(t, status.Months, 1)
			assert.Equal(t, tc.coverage, status.Months[0].Classification)
		})
	}

	// No payments at all: unpaid, full price remaining via missing list.
	status, err := ComputePaymentStatus(rental, nil, asOf)
	require.NoError(t, err)
	require.Len(t, status.Months, 1)
	assert.Equal(t, CoverageUnpaid, status.Months[0].Classification)

	// Partial remaining amount is exact.
	payments := []Payment{{ID: "p1", RentalID: "r1", Amount: "499999", ForMonth: "2024-01"}}
	status, err = ComputePaymentStatus(rental, payments, asOf)
	require.NoError(t, err)
	require.Len(t, status.PartialMonths, 1)
	assert.True(t, status.PartialMonths[0].Remaining.Equal(dec("1")))
}

func TestBucketBoundaries(t *testing.T) {
	rental := Rental{ID: "r1", MoveIn: "2024-01", MonthlyPrice: "500000", Status: RentalActive}
	asOf := date("2024-02-10") // expected total: one month, 500000

	cases := []struct {
		name   string
		paid   string
		bucket Bucket
	}{
		{"balance zero", "500000", BucketCurrent},
		{"balance minus one", "499999", BucketBehind},
		{"balance equals one month", "1000000", BucketCurrent},
		{"balance one over a month", "1000001", BucketOverpaid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			payments := []Payment{{ID: "p1", RentalID: "r1", Amount: tc.paid, ForMonth: "2024-01"}}
			status, err := ComputePaymentStatus(rental, payments, asOf)
			require.NoError(t, err)
			assert.Equal(t, tc.bucket, status.Bucket)
		})
	}
}

func TestArrearsScenario(t *testing.T) {
	rental := Rental{ID: "r1", MoveIn: "2024-01", MonthlyPrice: "1000000", Status: RentalActive}
	payments := []Payment{
		{ID: "p1", RentalID: "r1", Amount: "1000000", ForMonth: "2024-01"},
		{ID: "p2", RentalID: "r1", Amount: "500000", ForMonth: "2024-02"},
	}

	status, err := ComputePaymentStatus(rental, payments, date("2024-04-01"))
	require.NoError(t, err)

	assert.Equal(t, 3, status.BillableMonthCount)
	assert.True(t, status.TotalPaid.Equal(dec("1500000")))
	assert.True(t, status.ExpectedTotal.Equal(dec("3000000")))
	assert.True(t, status.Balance.Equal(dec("-1500000")))
	assert.Equal(t, BucketBehind, status.Bucket)
	assert.Equal(t, []Month{month("2024-03")}, status.MissingMonths)
	require.Len(t, status.PartialMonths, 1)
	assert.Equal(t, month("2024-02"), status.PartialMonths[0].Month)
	assert.True(t, status.PartialMonths[0].Paid.Equal(dec("500000")))
	assert.True(t, status.PartialMonths[0].Remaining.Equal(dec("500000")))
}

func TestMultiplePaymentsSameMonthAreAdditive(t *testing.T) {
	rental := Rental{ID: "r1", MoveIn: "2024-02", MonthlyPrice: "500000", Status: RentalActive}
	payments := []Payment{
		{ID: "p1", RentalID: "r1", Amount: "300000", ForMonth: "2024-02"},
		{ID: "p2", RentalID: "r1", Amount: "250000", ForMonth: "2024-02"},
	}

	status, err := ComputePaymentStatus(rental, payments, date("2024-03-10"))
	require.NoError(t, err)

	require.Len(t, status.Months, 1)
	assert.Equal(t, CoverageCovered, status.Months[0].Classification)
	assert.True(t, status.Months[0].TotalPaid.Equal(dec("550000")))
	assert.True(t, status.TotalPaid.Equal(dec("550000")))
}

func TestPrepaymentCountsTowardBalanceOnly(t *testing.T) {
	rental := Rental{ID: "r1", MoveIn: "2024-01", MonthlyPrice: "500000", Status: RentalActive}
	payments := []Payment{
		{ID: "p1", RentalID: "r1", Amount: "500000", ForMonth: "2024-01"},
		// Prepaid for a month outside the billable range.
		{ID: "p2", RentalID: "r1", Amount: "500000", ForMonth: "2024-06"},
	}

	status, err := ComputePaymentStatus(rental, payments, date("2024-02-15"))
	require.NoError(t, err)

	assert.True(t, status.TotalPaid.Equal(dec("1000000")))
	assert.Empty(t, status.MissingMonths)
	assert.Empty(t, status.PartialMonths)
	// Credit of exactly one month is still current, not overpaid.
	assert.Equal(t, BucketCurrent, status.Bucket)
}

func TestConservationAndIdempotence(t *testing.T) {
	rental := Rental{ID: "r1", MoveIn: "2023-07", MonthlyPrice: "750000", Status: RentalActive}
	payments := []Payment{
		{ID: "p1", RentalID: "r1", Amount: "750000", ForMonth: "2023-07"},
		{ID: "p2", RentalID: "r1", Amount: "400000", ForMonth: "2023-08"},
		{ID: "p3", RentalID: "r1", Amount: "350000", ForMonth: "2023-08"},
		{ID: "p4", RentalID: "r1", Amount: "750000", ForMonth: "2023-10"},
	}
	asOf := date("2024-01-03")

	first, err := ComputePaymentStatus(rental, payments, asOf)
	require.NoError(t, err)
	second, err := ComputePaymentStatus(rental, payments, asOf)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.True(t, first.Balance.Equal(first.TotalPaid.Sub(first.ExpectedTotal)))
}

func TestAddingPaymentNeverDecreasesBalance(t *testing.T) {
	rental := Rental{ID: "r1", MoveIn: "2024-01", MonthlyPrice: "500000", Status: RentalActive}
	asOf := date("2024-05-01")

	payments := []Payment{}
	prev, err := ComputePaymentStatus(rental, payments, asOf)
	require.NoError(t, err)

	for i, amount := range []string{"0", "100000", "500000", "250000"} {
		payments = append(payments, Payment{
			ID:       string(rune('a' + i)),
			RentalID: "r1",
			Amount:   amount,
			ForMonth: "2024-01",
		})
		next, err := ComputePaymentStatus(rental, payments, asOf)
		require.NoError(t, err)
		assert.True(t, next.TotalPaid.GreaterThanOrEqual(prev.TotalPaid))
		assert.True(t, next.Balance.GreaterThanOrEqual(prev.Balance))
		prev = next
	}
}

func TestZeroPriceMonthsAreCovered(t *testing.T) {
	rental := Rental{ID: "r1", MoveIn: "2024-01", MonthlyPrice: "0", Status: RentalActive}
	payments := []Payment{{ID: "p1", RentalID: "r1", Amount: "1", ForMonth: "2024-01"}}

	status, err := ComputePaymentStatus(rental, payments, date("2024-03-01"))
	require.NoError(t, err)

	// A free room: any payment covers, no payment is still unpaid.
	assert.Equal(t, CoverageCovered, status.Months[0].Classification)
	assert.Equal(t, CoverageUnpaid, status.Months[1].Classification)
	assert.Equal(t, BucketOverpaid, status.Bucket)
}

func TestInvalidContract(t *testing.T) {
	_, err := ComputePaymentStatus(Rental{ID: "r1", MoveIn: "soon", MonthlyPrice: "100"}, nil, date("2024-01-01"))
	assert.ErrorIs(t, err, ErrInvalidContract)

	_, err = ComputePaymentStatus(Rental{ID: "r1", MoveIn: "2024-01", MonthlyPrice: "-100"}, nil, date("2024-01-01"))
	assert.ErrorIs(t, err, ErrInvalidContract)

	_, err = ComputePaymentStatus(Rental{ID: "r1", MoveIn: "2024-01", MonthlyPrice: "free"}, nil, date("2024-01-01"))
	assert.ErrorIs(t, err, ErrInvalidContract)
}

func TestDataIntegrity(t *testing.T) {
	rental := Rental{ID: "r1", MoveIn: "2024-01", MonthlyPrice: "100", Status: RentalActive}

	_, err := ComputePaymentStatus(rental, []Payment{
		{ID: "p1", RentalID: "other", Amount: "100", ForMonth: "2024-01"},
	}, date("2024-02-01"))
	assert.ErrorIs(t, err, ErrDataIntegrity)

	_, err = ComputePaymentStatus(rental, []Payment{
		{ID: "p1", RentalID: "r1", Amount: "lots", ForMonth: "2024-01"},
	}, date("2024-02-01"))
	assert.ErrorIs(t, err, ErrDataIntegrity)

	_, err = ComputePaymentStatus(rental, []Payment{
		{ID: "p1", RentalID: "r1", Amount: "-5", ForMonth: "2024-01"},
	}, date("2024-02-01"))
	assert.ErrorIs(t, err, ErrDataIntegrity)

	_, err = ComputePaymentStatus(rental, []Payment{
		{ID: "p1", RentalID: "r1", Amount: "100", ForMonth: "January"},
	}, date("2024-02-01"))
	assert.ErrorIs(t, err, ErrDataIntegrity)
}
