package types

import (
	"context"
)

// ContextKey is a type for the keys of values stored in the context
type ContextKey string

const (
	CtxRequestID ContextKey = "ctx_request_id"
	CtxLanguage  ContextKey = "ctx_language"
)

const (
	HeaderRequestID      = "X-Request-ID"
	HeaderAcceptLanguage = "Accept-Language"
)

func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(CtxRequestID).(string); ok {
		return requestID
	}
	return ""
}

// GetLanguage returns the caller's language, English when none was negotiated.
func GetLanguage(ctx context.Context) Language {
	if lang, ok := ctx.Value(CtxLanguage).(Language); ok {
		return lang
	}
	return LanguageEnglish
}

func SetLanguage(ctx context.Context, lang Language) context.Context {
	return context.WithValue(ctx, CtxLanguage, lang)
}
