// Package projection extrapolates sales totals linearly over a period.
package projection

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/festy23/sales_dashboard/internal/period"
)

// FortnightDays is both the elapsed window and the horizon of the fortnight projection.
const FortnightDays = 15

// Result is a linear projection.
type Result struct {
	DailyRate decimal.Decimal
	Projected decimal.Decimal
}

// Project returns total/elapsed as the daily rate and extrapolates it over
// horizon days. A non-positive elapsed count yields a zero rate.
func Project(total decimal.Decimal, elapsed, horizon int) Result {
	if elapsed <= 0 {
		return Result{DailyRate: decimal.Zero, Projected: decimal.Zero}
	}

	e := decimal.NewFromInt(int64(elapsed))
	h := decimal.NewFromInt(int64(horizon))

	// Multiplying before dividing keeps Projected exact when elapsed == horizon.
	return Result{
		DailyRate: total.Div(e),
		Projected: total.Mul(h).Div(e),
	}
}

// Fortnight projects a trailing fortnight total. The elapsed window equals the
// horizon, so Projected always equals total.
func Fortnight(total decimal.Decimal) Result {
	return Project(total, FortnightDays, FortnightDays)
}

// MonthResult is a month projection together with its day counts.
type MonthResult struct {
	Result
	DaysPassed  int
	DaysInMonth int
}

// Month projects a month-to-date total onto the full calendar month of ref.
func Month(total decimal.Decimal, ref time.Time) MonthResult {
	passed := period.DaysPassedInMonth(ref)
	days := period.DaysInMonth(ref)
	return MonthResult{
		Result:      Project(total, passed, days),
		DaysPassed:  passed,
		DaysInMonth: days,
	}
}
