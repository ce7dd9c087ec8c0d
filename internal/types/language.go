package types

import (
	ierr "github.com/flexprice/prorata/internal/errors"
	"github.com/samber/lo"
)

// Language of customer-facing text.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageArabic  Language = "ar"
)

var LanguageValues = []Language{
	LanguageEnglish,
	LanguageArabic,
}

func (l Language) Validate() error {
	if !lo.Contains(LanguageValues, l) {
		return ierr.NewError("invalid language").
			WithHint("Language must be en or ar").
			WithReportableDetails(map[string]any{
				"allowed_values": LanguageValues,
				"provided_value": l,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

func (l Language) String() string {
	return string(l)
}

// LocalizedString carries the same text in every supported language.
type LocalizedString struct {
	EN string `json:"en" mapstructure:"en"`
	AR string `json:"ar" mapstructure:"ar"`
}

// Get returns the text for l, falling back to English.
func (s LocalizedString) Get(l Language) string {
	if l == LanguageArabic && s.AR != "" {
		return s.AR
	}
	return s.EN
}
