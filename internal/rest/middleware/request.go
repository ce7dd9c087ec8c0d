package middleware

import (
	"context"
	"strings"

	"github.com/flexprice/prorata/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func RequestIDMiddleware(c *gin.Context) {
	// Create a new context from the request context
	ctx := c.Request.Context()

	// Add request ID
	requestID := c.GetHeader(types.HeaderRequestID)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	ctx = context.WithValue(ctx, types.CtxRequestID, requestID)
	ctx = types.SetLanguage(ctx, negotiateLanguage(c.GetHeader(types.HeaderAcceptLanguage)))

	// Replace request context
	c.Request = c.Request.WithContext(ctx)

	// Add headers for response
	c.Header(types.HeaderRequestID, requestID)

	c.Next()
}

// negotiateLanguage picks the first supported language in an Accept-Language header
func negotiateLanguage(header string) types.Language {
	for _, part := range strings.Split(header, ",") {
		tag, _, _ := strings.Cut(strings.TrimSpace(part), ";")
		primary, _, _ := strings.Cut(strings.ToLower(tag), "-")
		if lang := types.Language(primary); lang.Validate() == nil {
			return lang
		}
	}
	return types.LanguageEnglish
}
