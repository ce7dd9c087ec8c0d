package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	ierr "github.com/flexprice/prorata/internal/errors"
	"github.com/flexprice/prorata/internal/logger"
	"github.com/flexprice/prorata/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestNegotiateLanguage(t *testing.T) {
	tests := []struct {
		header string
		want   types.Language
	}{
		{"", types.LanguageEnglish},
		{"ar", types.LanguageArabic},
		{"ar-JO,ar;q=0.9,en;q=0.8", types.LanguageArabic},
		{"fr-FR, en-US;q=0.7", types.LanguageEnglish},
		{"de", types.LanguageEnglish},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			assert.Equal(t, tt.want, negotiateLanguage(tt.header))
		})
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(RequestIDMiddleware)
	r.GET("/", func(c *gin.Context) {
		ctx := c.Request.Context()
		c.String(http.StatusOK, types.GetRequestID(ctx)+"|"+string(types.GetLanguage(ctx)))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(types.HeaderRequestID, "req-1")
	req.Header.Set(types.HeaderAcceptLanguage, "ar")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-1|ar", w.Body.String())
	assert.Equal(t, "req-1", w.Header().Get(types.HeaderRequestID))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, w.Header().Get(types.HeaderRequestID))
}

type recordingReporter struct {
	captured []error
}

func (r *recordingReporter) CaptureException(err error) {
	r.captured = append(r.captured, err)
}

func TestErrorHandler(t *testing.T) {
	reporter := &recordingReporter{}
	r := gin.New()
	r.Use(ErrorHandler(logger.NewNopLogger(), reporter))
	r.GET("/anchor", func(c *gin.Context) {
		c.Error(ierr.NewError("anchor out of range").
			WithHint("Anchor day must be between 1 and 31").
			WithReportableDetails(map[string]any{"anchor_day": 0}).
			Mark(ierr.ErrInvalidAnchor))
	})
	r.GET("/missing", func(c *gin.Context) {
		c.Error(ierr.NewError("no product").Mark(ierr.ErrNotFound))
	})
	r.GET("/broken", func(c *gin.Context) {
		c.Error(ierr.NewError("catalog unavailable").Mark(ierr.ErrSystem))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/anchor", nil))
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t,
		`{"success":false,"error":{"code":"invalid_anchor","message":"Anchor day must be between 1 and 31","details":{"anchor_day":0}}}`,
		w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	// client errors are not reported
	assert.Empty(t, reporter.captured)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/broken", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	require.Len(t, reporter.captured, 1)
	assert.True(t, ierr.IsSystem(reporter.captured[0]))
}
