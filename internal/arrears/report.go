package arrears

import (
	"time"

	"github.com/shopspring/decimal"
)

// ComputeReport runs the calculator over every given rental and buckets
// the results. Payments are filtered per rental here, so callers may
// pass the full payment set once.
//
// A rental that fails to compute lands in Report.Errors and is left out
// of the buckets; one bad row never blanks the whole report.
func ComputeReport(rentals []Rental, payments []Payment, asOf time.Time) Report {
	byRental := make(map[string][]Payment, len(rentals))
	for _, p := range payments {
		byRental[p.RentalID] = append(byRental[p.RentalID], p)
	}

	report := Report{
		Behind:           []PaymentStatus{},
		Current:          []PaymentStatus{},
		Overpaid:         []PaymentStatus{},
		TotalOutstanding: decimal.Zero,
		TotalOverpaid:    decimal.Zero,
	}

	for _, rental := range rentals {
		status, err := ComputePaymentStatus(rental, byRental[rental.ID], asOf)
		if err != nil {
			report.Errors = append(report.Errors, RentalError{
				RentalID: rental.ID,
				Err:      err,
				Message:  err.Error(),
			})
			continue
		}

		switch status.Bucket {
		case BucketBehind:
			report.Behind = append(report.Behind, status)
			report.TotalOutstanding = report.TotalOutstanding.Add(status.Balance.Abs())
		case BucketOverpaid:
			report.Overpaid = append(report.Overpaid, status)
			report.TotalOverpaid = report.TotalOverpaid.Add(status.Balance)
		default:
			report.Current = append(report.Current, status)
		}
	}

	return report
}
