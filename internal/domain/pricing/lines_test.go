package pricing

import (
	"math"
	"testing"

	ierr "github.com/flexprice/prorata/internal/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildLines(t *testing.T) {
	lines, err := BuildLines(decimal.NewFromInt(10), decimal.NewFromFloat(0.16), DefaultVoiceRate, decimal.NewFromInt(2))
	require.NoError(t, err)
	require.Len(t, lines, 4)

	expected := []struct {
		lineType   LineType
		gross      string
		vat        string
		afterAddOn string
	}{
		{LineTypeA, "11.6", "1.6", "13.6"},
		{LineTypeNos, "13.108", "3.108", "15.108"},
		{LineTypeVoice, "14.616", "4.616", "16.616"},
		{LineTypeData, "11.6", "1.6", "13.6"},
	}
	for i, e := range expected {
		line := lines[i]
		assert.Equal(t, e.lineType, line.Type)
		assert.Equal(t, "10", line.Net.String())
		assert.True(t, decimal.RequireFromString(e.gross).Equal(line.Gross), "%s gross %s", e.lineType, line.Gross)
		assert.True(t, decimal.RequireFromString(e.vat).Equal(line.VAT), "%s vat %s", e.lineType, line.VAT)
		assert.True(t, decimal.RequireFromString(e.afterAddOn).Equal(line.AfterAddOn), "%s after addon %s", e.lineType, line.AfterAddOn)
	}
}

func TestBuildLines_Validation(t *testing.T) {
	_, err := BuildLines(decimal.NewFromInt(-1), decimal.NewFromFloat(0.16), DefaultVoiceRate, decimal.Zero)
	require.Error(t, err)
	assert.True(t, ierr.IsInvalidAmount(err))

	_, err = BuildLines(decimal.NewFromInt(1), decimal.NewFromFloat(-0.16), DefaultVoiceRate, decimal.Zero)
	require.Error(t, err)
	assert.True(t, ierr.IsValidation(err))
}

func TestFromFloat(t *testing.T) {
	assert.True(t, FromFloat(math.NaN()).IsZero())
	assert.True(t, FromFloat(math.Inf(1)).IsZero())
	assert.Equal(t, "12.5", FromFloat(12.5).String())
}
