package proration

import (
	"testing"
	"time"

	ierr "github.com/flexprice/prorata/internal/errors"
	"github.com/flexprice/prorata/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) types.CalendarDate {
	date, err := types.ParseCalendarDate(s)
	if err != nil {
		panic(err)
	}
	return date
}

func TestResolvePeriod(t *testing.T) {
	tests := []struct {
		name       string
		activation string
		anchor     int
		cycleStart string
		cycleEnd   string
		nextEnd    string
		cycleDays  int
		proDays    int
		ratio      string
	}{
		{
			name:       "activation_on_anchor_rolls_to_next_month",
			activation: "2025-03-15",
			anchor:     15,
			cycleStart: "2025-02-15",
			cycleEnd:   "2025-04-15",
			nextEnd:    "2025-05-15",
			cycleDays:  59,
			proDays:    31,
			ratio:      "0.5254",
		},
		{
			name:       "activation_day_before_anchor",
			activation: "2025-03-14",
			anchor:     15,
			cycleStart: "2025-02-15",
			cycleEnd:   "2025-03-15",
			nextEnd:    "2025-04-15",
			cycleDays:  28,
			proDays:    1,
			ratio:      "0.0357",
		},
		{
			name:       "activation_after_anchor",
			activation: "2025-10-12",
			anchor:     15,
			cycleStart: "2025-09-15",
			cycleEnd:   "2025-10-15",
			nextEnd:    "2025-11-15",
			cycleDays:  30,
			proDays:    3,
			ratio:      "0.1",
		},
		{
			name:       "anchor_one_mid_month",
			activation: "2025-03-23",
			anchor:     1,
			cycleStart: "2025-03-01",
			cycleEnd:   "2025-04-01",
			nextEnd:    "2025-05-01",
			cycleDays:  31,
			proDays:    9,
			ratio:      "0.2903",
		},
		{
			name:       "anchor_31_clamped_in_february",
			activation: "2025-02-10",
			anchor:     31,
			cycleStart: "2025-01-31",
			cycleEnd:   "2025-02-28",
			nextEnd:    "2025-03-31",
			cycleDays:  28,
			proDays:    18,
			ratio:      "0.6429",
		},
		{
			name:       "anchor_31_on_last_day_of_leap_february",
			activation: "2024-02-29",
			anchor:     31,
			cycleStart: "2024-01-31",
			cycleEnd:   "2024-03-31",
			nextEnd:    "2024-04-30",
			cycleDays:  60,
			proDays:    31,
			ratio:      "0.5167",
		},
		{
			name:       "year_boundary",
			activation: "2025-12-20",
			anchor:     15,
			cycleStart: "2025-12-15",
			cycleEnd:   "2026-01-15",
			nextEnd:    "2026-02-15",
			cycleDays:  31,
			proDays:    26,
			ratio:      "0.8387",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			period, err := ResolvePeriod(d(tt.activation), tt.anchor)
			require.NoError(t, err)

			assert.Equal(t, tt.activation, period.ActivationDate.String())
			assert.Equal(t, tt.cycleStart, period.CycleStart.String())
			assert.Equal(t, tt.cycleEnd, period.CycleEnd.String())
			assert.Equal(t, tt.nextEnd, period.NextCycleEnd.String())
			assert.Equal(t, tt.cycleDays, period.CycleDays)
			assert.Equal(t, tt.proDays, period.ProDays)
			assert.Equal(t, tt.ratio, period.Ratio.Round(4).String())
		})
	}
}

func TestResolvePeriod_Properties(t *testing.T) {
	start := types.NewCalendarDate(2024, time.January, 1)
	end := types.NewCalendarDate(2026, time.January, 1)
	one := decimal.NewFromInt(1)

	for anchor := types.MinAnchorDay; anchor <= types.MaxAnchorDay; anchor++ {
		for day := start; day.Time().Before(end.Time()); day = types.NewCalendarDate(day.Year(), day.Month(), day.Day()+1) {
			p, err := ResolvePeriod(day, anchor)
			require.NoError(t, err)

			onAnchor := func(c types.CalendarDate) bool {
				return c.Day() == types.ClampDay(c.Year(), c.Month(), anchor)
			}

			if !assert.True(t, !p.CycleStart.Time().After(p.ActivationDate.Time()) &&
				!p.ActivationDate.Time().After(p.CycleEnd.Time()) &&
				!p.CycleEnd.Time().After(p.NextCycleEnd.Time()), "ordering for %s anchor %d", day, anchor) {
				return
			}
			assert.True(t, onAnchor(p.CycleStart), "cycle start %s anchor %d", p.CycleStart, anchor)
			assert.True(t, onAnchor(p.CycleEnd), "cycle end %s anchor %d", p.CycleEnd, anchor)
			assert.True(t, onAnchor(p.NextCycleEnd), "next cycle end %s anchor %d", p.NextCycleEnd, anchor)
			assert.LessOrEqual(t, p.ProDays, p.CycleDays)
			assert.GreaterOrEqual(t, p.ProDays, 0)
			assert.False(t, p.Ratio.IsNegative())
			assert.True(t, p.Ratio.LessThanOrEqual(one), "ratio %s for %s anchor %d", p.Ratio, day, anchor)
		}
	}
}

func TestResolvePeriod_Validation(t *testing.T) {
	_, err := ResolvePeriod(d("2025-03-15"), 0)
	require.Error(t, err)
	assert.True(t, ierr.IsInvalidAnchor(err))

	_, err = ResolvePeriod(d("2025-03-15"), 32)
	require.Error(t, err)
	assert.True(t, ierr.IsInvalidAnchor(err))

	_, err = ResolvePeriod(types.CalendarDate{}, 15)
	require.Error(t, err)
	assert.True(t, ierr.IsInvalidDate(err))
}

func TestBillingPeriod_IsOnAnchor(t *testing.T) {
	p, err := ResolvePeriod(d("2025-02-28"), 31)
	require.NoError(t, err)
	assert.True(t, p.IsOnAnchor())

	p, err = ResolvePeriod(d("2025-02-27"), 31)
	require.NoError(t, err)
	assert.False(t, p.IsOnAnchor())
}
