package testutil

import (
	"context"

	"github.com/flexprice/prorata/internal/types"
)

func SetupContext() context.Context {
	ctx := context.Background()
	ctx = context.WithValue(ctx, types.CtxRequestID, types.GenerateUUID())
	return types.SetLanguage(ctx, types.LanguageEnglish)
}
