package proration

import (
	ierr "github.com/flexprice/prorata/internal/errors"
	"github.com/flexprice/prorata/internal/types"
	"github.com/shopspring/decimal"
)

// ResolvePeriod determines the billing cycle that encloses activation for the
// given anchor day.
//
// An activation on or after this month's (clamped) anchor cannot be billed by
// this month's invoice run, so it rolls to next month's anchor. Activation on
// the anchor day itself is treated as falling inside the cycle that is about to
// close: the cycle starts at the previous month's anchor and ends at next
// month's, e.g. anchor 15 and 2025-03-15 give 2025-02-15..2025-04-15.
// This is the one case where CycleStart is not CycleEnd minus one month.
func ResolvePeriod(activation types.CalendarDate, anchorDay int) (BillingPeriod, error) {
	if err := types.ValidateAnchorDay(anchorDay); err != nil {
		return BillingPeriod{}, err
	}
	if err := validateActivation(activation); err != nil {
		return BillingPeriod{}, err
	}
	return resolvePeriod(activation, anchorDay), nil
}

// resolvePeriod expects a validated anchor day and a non-zero activation.
func resolvePeriod(activation types.CalendarDate, anchorDay int) BillingPeriod {
	act := types.NormalizeUTC(activation.Time())

	thisMonthAnchor := types.NewCalendarDate(act.Year(), act.Month(),
		types.ClampDay(act.Year(), act.Month(), anchorDay))

	cycleEnd := thisMonthAnchor
	if act.Day() >= thisMonthAnchor.Day() {
		cycleEnd = types.AddMonthsKeepDay(thisMonthAnchor, 1, anchorDay)
	}
	cycleStart := types.AddMonthsKeepDay(cycleEnd, -1, anchorDay)
	if act.Equal(thisMonthAnchor) {
		// the cycle about to close started one anchor before activation
		cycleStart = types.AddMonthsKeepDay(thisMonthAnchor, -1, anchorDay)
	}

	cycleDays := max(0, types.DaysBetween(cycleStart, cycleEnd))
	proDays := max(0, min(cycleDays, types.DaysBetween(act, cycleEnd)))

	ratio := decimal.Zero
	if cycleDays > 0 {
		ratio = decimal.NewFromInt(int64(proDays)).Div(decimal.NewFromInt(int64(cycleDays)))
	}

	return BillingPeriod{
		ActivationDate: act,
		AnchorDay:      anchorDay,
		CycleStart:     cycleStart,
		CycleEnd:       cycleEnd,
		NextCycleEnd:   types.AddMonthsKeepDay(cycleEnd, 1, anchorDay),
		CycleDays:      cycleDays,
		ProDays:        proDays,
		Ratio:          ratio,
	}
}

// IsOnAnchor reports whether activation falls exactly on the month-clamped anchor day.
func (p BillingPeriod) IsOnAnchor() bool {
	a := p.ActivationDate
	return a.Day() == types.ClampDay(a.Year(), a.Month(), p.AnchorDay)
}

func validateActivation(activation types.CalendarDate) error {
	if activation.IsZero() {
		return ierr.NewError("activation date is required").
			WithHint("Activation date must be a calendar date in YYYY-MM-DD format").
			Mark(ierr.ErrInvalidDate)
	}
	return nil
}
