package middleware

import (
	ierr "github.com/flexprice/prorata/internal/errors"
	"github.com/flexprice/prorata/internal/logger"
	"github.com/gin-gonic/gin"
)

// ErrorReporter receives errors that end a request with a 5xx status
type ErrorReporter interface {
	CaptureException(err error)
}

// ErrorHandler middleware renders the last error recorded by a handler
func ErrorHandler(log *logger.Logger, reporter ErrorReporter) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		status := ierr.HTTPStatusFromErr(err)

		if status >= 500 {
			log.WithContext(c.Request.Context()).Errorw("request failed",
				"path", c.FullPath(),
				"error", err,
			)
			reporter.CaptureException(err)
		}

		c.JSON(status, ierr.ErrorResponse{
			Success: false,
			Error:   ierr.NewErrorDetail(err),
		})
	}
}
