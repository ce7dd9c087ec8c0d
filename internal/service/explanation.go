package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/flexprice/prorata/internal/api/dto"
	"github.com/flexprice/prorata/internal/domain/proration"
	"github.com/flexprice/prorata/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// lrm keeps latin amounts left-to-right inside arabic text
const lrm = "\u200E"

var cleanReplacer = strings.NewReplacer("**", "", lrm, "")

// ExplanationService renders a computed quote as a customer-facing script
type ExplanationService interface {
	Explain(ctx context.Context, result *proration.ProrationResult, lang types.Language) *dto.ExplanationResponse
}

type explanationService struct {
	ServiceParams
}

func NewExplanationService(params ServiceParams) ExplanationService {
	return &explanationService{
		ServiceParams: params,
	}
}

// CleanScript strips markdown emphasis and direction marks for plain clipboard text.
func CleanScript(s string) string {
	return cleanReplacer.Replace(s)
}

func (s *explanationService) Explain(ctx context.Context, result *proration.ProrationResult, lang types.Language) *dto.ExplanationResponse {
	if lang == "" {
		lang = types.GetLanguage(ctx)
	}

	text := s.render(result, lang)
	return &dto.ExplanationResponse{
		Language:  lang,
		Text:      text,
		PlainText: CleanScript(text),
	}
}

func (s *explanationService) money(amount decimal.Decimal) string {
	return types.FormatAmount(amount, s.Config.Billing.Currency, s.Config.Billing.DisplayDecimals) + lrm
}

func (s *explanationService) render(r *proration.ProrationResult, lang types.Language) string {
	period := r.Period()
	start := period.ActivationDate.FormatDMY()
	end := period.CycleEnd.FormatDMY()
	next := period.NextCycleEnd.FormatDMY()

	invoice := s.money(r.InvoiceAfterTax)
	monthly := s.money(r.MonthlyAfterTax)
	pro := s.money(r.ProrationAfterTax)

	parts := make([]string, 0, 3)
	if lang == types.LanguageArabic {
		parts = append(parts, fmt.Sprintf("أوضّح لحضرتك أن **قيمة فاتورة هذا الشهر هي %s**. تتضمن هذه الفاتورة **نسبة وتناسب بقيمة %s** عن المدة من %s حتى %s، إضافةً إلى **قيمة الاشتراك الأساسية لهذا الشهر %s** عن المدة من %s حتى %s. ابتداءً من الفاتورة القادمة ستصدر القيمة الشهرية كما تم الاتفاق (%s). تاريخ إصدار الفاتورة: %s.",
			invoice, pro, start, end, monthly, end, next, monthly, end))
	} else {
		parts = append(parts, fmt.Sprintf("Just to clarify, **this month's invoice is %s**. It includes a **proration of %s** for the period from %s to %s, plus the **base subscription for this month of %s** covering %s to %s. Starting next invoice, the monthly amount will be %s. Invoice date: %s.",
			invoice, pro, start, end, monthly, end, next, monthly, end))
	}

	if len(r.AddOns) > 0 {
		parts = append(parts, s.addOnsSentence(r, lang))
	}
	if r.Policy.IsTaxAware() {
		parts = append(parts, s.vatSentence(r, lang))
	}
	return strings.Join(parts, " ")
}

func (s *explanationService) addOnsSentence(r *proration.ProrationResult, lang types.Language) string {
	labels := strings.Join(lo.Map(r.AddOns, func(a proration.AddOnBreakdown, _ int) string {
		return a.Label
	}), ", ")
	total := s.money(r.AddOnsTotalAfterTax)

	switch {
	case lang == types.LanguageArabic && r.Policy.IsTaxAware():
		return fmt.Sprintf("كما تتضمن الفاتورة إضافات بقيمة %s: %s.", total, labels)
	case lang == types.LanguageArabic:
		return fmt.Sprintf("تُضاف الإضافات بقيمة %s (%s) إلى هذه القيمة بشكل منفصل.", total, labels)
	case r.Policy.IsTaxAware():
		return fmt.Sprintf("It also includes add-ons totalling %s: %s.", total, labels)
	default:
		return fmt.Sprintf("Add-ons totalling %s (%s) are billed in addition to this amount.", total, labels)
	}
}

func (s *explanationService) vatSentence(r *proration.ProrationResult, lang types.Language) string {
	rate := r.VATRate.Mul(decimal.NewFromInt(100)).String()
	before := s.money(r.InvoiceBeforeTax)
	vat := s.money(r.InvoiceVAT)

	if lang == types.LanguageArabic {
		return fmt.Sprintf("المبالغ تشمل ضريبة المبيعات بنسبة %s%%: %s قبل الضريبة و%s قيمة الضريبة.", rate, before, vat)
	}
	return fmt.Sprintf("Amounts include %s%% VAT: %s before VAT plus %s VAT.", rate, before, vat)
}
