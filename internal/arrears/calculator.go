package arrears

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ComputePaymentStatus evaluates one rental against its full payment
// history as of the given instant.
//
// The billable range runs from the move-in month through the month
// before asOf's month; the month currently in progress is never billed.
// A tenancy that started this month (or later) still owes exactly one
// month: the count is floored at 1 with the move-in month as the single
// billable month.
//
// Payments outside the billable range still count toward the total paid
// and hence the balance, but never appear in the missing/partial lists.
func ComputePaymentStatus(rental Rental, payments []Payment, asOf time.Time) (PaymentStatus, error) {
	moveIn, err := ParseMonth(rental.MoveIn)
	if err != nil {
		return PaymentStatus{}, fmt.Errorf("%w: rental %s: %v", ErrInvalidContract, rental.ID, err)
	}

	price, err := decimal.NewFromString(rental.MonthlyPrice)
	if err != nil {
		return PaymentStatus{}, fmt.Errorf("%w: rental %s: monthly price %q", ErrInvalidContract, rental.ID, rental.MonthlyPrice)
	}
	if price.IsNegative() {
		return PaymentStatus{}, fmt.Errorf("%w: rental %s: negative monthly price %s", ErrInvalidContract, rental.ID, price)
	}

	start := moveIn
	end := MonthOf(asOf).Prev()
	if end.Before(start) {
		end = start
	}

	totalPaid := decimal.Zero
	paidByMonth := make(map[Month]decimal.Decimal)
	for _, p := range payments {
		if p.RentalID != rental.ID {
			return PaymentStatus{}, fmt.Errorf("%w: payment %s belongs to rental %s, not %s", ErrDataIntegrity, p.ID, p.RentalID, rental.ID)
		}
		amount, err := decimal.NewFromString(p.Amount)
		if err != nil {
			return PaymentStatus{}, fmt.Errorf("%w: payment %s: amount %q", ErrDataIntegrity, p.ID, p.Amount)
		}
		if amount.IsNegative() {
			return PaymentStatus{}, fmt.Errorf("%w: payment %s: negative amount %s", ErrDataIntegrity, p.ID, amount)
		}
		forMonth, err := ParseMonth(p.ForMonth)
		if err != nil {
			return PaymentStatus{}, fmt.Errorf("%w: payment %s: for_month %q", ErrDataIntegrity, p.ID, p.ForMonth)
		}

		totalPaid = totalPaid.Add(amount)
		paidByMonth[forMonth] = paidByMonth[forMonth].Add(amount)
	}

	status := PaymentStatus{
		Rental:             rental,
		MonthlyPrice:       price,
		TotalPaid:          totalPaid,
		BillableMonthCount: start.MonthsUntil(end),
		MissingMonths:      []Month{},
		PartialMonths:      []PartialMonth{},
	}

	for m := start; !m.After(end); m = m.Next() {
		paid := paidByMonth[m]
		coverage := MonthCoverage{Month: m, TotalPaid: paid}
		switch {
		case paid.IsZero():
			coverage.Classification = CoverageUnpaid
			status.MissingMonths = append(status.MissingMonths, m)
		case paid.LessThan(price):
			coverage.Classification = CoveragePartial
			coverage.Remaining = price.Sub(paid)
			status.PartialMonths = append(status.PartialMonths, PartialMonth{
				Month:     m,
				Paid:      paid,
				Remaining: coverage.Remaining,
			})
		default:
			coverage.Classification = CoverageCovered
		}
		status.Months = append(status.Months, coverage)
	}

	status.ExpectedTotal = price.Mul(decimal.NewFromInt(int64(status.BillableMonthCount)))
	status.Balance = totalPaid.Sub(status.ExpectedTotal)

	switch {
	case status.Balance.IsNegative():
		status.Bucket = BucketBehind
	case status.Balance.GreaterThan(price):
		status.Bucket = BucketOverpaid
	default:
		status.Bucket = BucketCurrent
	}

	return status, nil
}
