package errors

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEngineErrorsMapToBadRequest(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     string
		validate bool
	}{
		{
			name:     "invalid_date",
			err:      NewError("bad date").WithHint("Bad date").Mark(ErrInvalidDate),
			code:     ErrCodeInvalidDate,
			validate: true,
		},
		{
			name:     "invalid_anchor",
			err:      NewError("bad anchor").Mark(ErrInvalidAnchor),
			code:     ErrCodeInvalidAnchor,
			validate: true,
		},
		{
			name:     "invalid_amount",
			err:      NewErrorf("amount %s", "-1").Mark(ErrInvalidAmount),
			code:     ErrCodeInvalidAmount,
			validate: true,
		},
		{
			name:     "plain_validation",
			err:      NewError("missing field").Mark(ErrValidation),
			code:     ErrCodeValidation,
			validate: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, http.StatusBadRequest, HTTPStatusFromErr(tt.err))
			assert.Equal(t, tt.code, Code(tt.err))
			assert.Equal(t, tt.validate, IsValidation(tt.err))
			assert.False(t, IsNotFound(tt.err))
		})
	}
}

func TestNotFoundAndSystem(t *testing.T) {
	notFound := NewError("product not found").Mark(ErrNotFound)
	assert.True(t, IsNotFound(notFound))
	assert.Equal(t, http.StatusNotFound, HTTPStatusFromErr(notFound))
	assert.Equal(t, ErrCodeNotFound, Code(notFound))

	system := NewError("boom").Mark(ErrSystem)
	assert.Equal(t, http.StatusInternalServerError, HTTPStatusFromErr(system))
	assert.True(t, IsSystem(system))
	assert.False(t, IsSystem(notFound))

	unmarked := NewError("unmarked").Error()
	assert.Equal(t, http.StatusInternalServerError, HTTPStatusFromErr(unmarked))
	assert.Equal(t, ErrCodeSystemError, Code(unmarked))
}

func TestSpecificSentinelsAreDistinct(t *testing.T) {
	err := NewError("bad anchor").Mark(ErrInvalidAnchor)
	assert.True(t, IsInvalidAnchor(err))
	assert.False(t, IsInvalidDate(err))
	assert.False(t, IsInvalidAmount(err))
}

func TestNewErrorDetail(t *testing.T) {
	err := NewError("anchor 40 out of range").
		WithHint("Anchor day must be between 1 and 31").
		WithReportableDetails(map[string]any{"anchor_day": 40}).
		Mark(ErrInvalidAnchor)

	detail := NewErrorDetail(err)
	assert.Equal(t, ErrCodeInvalidAnchor, detail.Code)
	assert.Equal(t, "Anchor day must be between 1 and 31", detail.Display)
	assert.Equal(t, float64(40), detail.Details["anchor_day"])

	bare := NewErrorDetail(NewError("boom").Error())
	assert.Equal(t, ErrCodeSystemError, bare.Code)
	assert.Equal(t, "An unexpected error occurred", bare.Display)
	assert.Nil(t, bare.Details)
}
