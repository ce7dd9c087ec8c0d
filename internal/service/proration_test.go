package service

import (
	"testing"

	"github.com/flexprice/prorata/internal/api/dto"
	ierr "github.com/flexprice/prorata/internal/errors"
	"github.com/flexprice/prorata/internal/testutil"
	"github.com/flexprice/prorata/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ProrationServiceSuite struct {
	testutil.BaseServiceTestSuite
	service ProrationService
}

func TestProrationService(t *testing.T) {
	suite.Run(t, new(ProrationServiceSuite))
}

func (s *ProrationServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewProrationService(ServiceParams{
		Logger:              s.GetLogger(),
		Config:              s.GetConfig(),
		Sentry:              s.GetSentry(),
		CatalogRepo:         s.GetStores().CatalogRepo,
		ProrationCalculator: s.GetCalculator(),
	})
}

func (s *ProrationServiceSuite) assertDecimal(expected string, actual decimal.Decimal, field string) {
	s.True(decimal.RequireFromString(expected).Equal(actual), "%s: expected %s, got %s", field, expected, actual)
}

func (s *ProrationServiceSuite) TestQuote_ProductDefaults() {
	resp, err := s.service.Quote(s.GetContext(), dto.QuoteRequest{
		ProductID:      "iew",
		ActivationDate: "2025-10-12",
		AddOnIDs:       []string{"anghami"},
	})
	s.Require().NoError(err)

	s.Equal(types.ProrationPolicyAnchorTax, resp.Policy)
	s.Equal(15, resp.AnchorDay)
	s.Equal("JOD", resp.Currency)
	s.Equal("iew", resp.ProductID)
	s.NotEmpty(resp.ID)
	s.Contains(resp.Reference, types.SHORT_ID_PREFIX_QUOTE)

	s.assertDecimal("29", resp.MonthlyBeforeTax, "monthly_before_tax")
	s.assertDecimal("39.324", resp.InvoiceAfterTax, "invoice_after_tax")
	s.Require().Len(resp.AddOns, 1)
	s.Equal("Anghami", resp.AddOns[0].Label)

	s.Require().NotNil(resp.Explanation)
	s.Equal(types.LanguageEnglish, resp.Explanation.Language)
	s.Contains(resp.Explanation.Text, "**this month's invoice is JD 39.324")
	s.Contains(resp.Explanation.PlainText, "this month's invoice is JD 39.324")
	s.NotContains(resp.Explanation.PlainText, "**")
	s.Contains(resp.Explanation.PlainText, "16% VAT")
}

func (s *ProrationServiceSuite) TestQuote_ExplicitPriceUsesConfiguredAnchor() {
	resp, err := s.service.Quote(s.GetContext(), dto.QuoteRequest{
		MonthlyPrice:   lo.ToPtr(decimal.NewFromInt(29)),
		ActivationDate: "2025-10-12",
	})
	s.Require().NoError(err)

	s.Equal(types.ProrationPolicyRatio, resp.Policy)
	s.Equal(s.GetConfig().Billing.DefaultAnchorDay, resp.AnchorDay)
	s.Equal("2025-09-15", resp.CycleStart.String())
	s.assertDecimal("31.9", resp.InvoiceAfterTax, "invoice_after_tax")
	s.Empty(resp.ProductID)
}

func (s *ProrationServiceSuite) TestQuote_RequestOverridesProduct() {
	resp, err := s.service.Quote(s.GetContext(), dto.QuoteRequest{
		ProductID:      "iew",
		MonthlyPrice:   lo.ToPtr(decimal.NewFromInt(18)),
		AnchorDay:      lo.ToPtr(15),
		Policy:         types.ProrationPolicyRatio,
		ActivationDate: "2025-10-12",
		AddOns:         []dto.AddOnLineRequest{{Label: "Promo", Price: decimal.NewFromInt(3)}},
	})
	s.Require().NoError(err)

	s.Equal(types.ProrationPolicyRatio, resp.Policy)
	s.assertDecimal("19.8", resp.InvoiceAfterTax, "invoice_after_tax")
	s.assertDecimal("3", resp.AddOnsTotalAfterTax, "addons_total_after_tax")
	s.Contains(resp.Explanation.Text, "billed in addition")
}

func (s *ProrationServiceSuite) TestQuote_Arabic() {
	ctx := types.SetLanguage(s.GetContext(), types.LanguageArabic)
	resp, err := s.service.Quote(ctx, dto.QuoteRequest{
		ProductID:      "mobile-postpaid",
		ActivationDate: "2025-10-12",
		AddOnIDs:       []string{"anghami"},
	})
	s.Require().NoError(err)

	s.Equal(types.LanguageArabic, resp.Explanation.Language)
	s.Equal("أنغامي", resp.AddOns[0].Label)
	s.Contains(resp.Explanation.Text, "JD 19.800"+lrm)
	s.NotContains(resp.Explanation.PlainText, lrm)
}

func (s *ProrationServiceSuite) TestQuote_Errors() {
	tests := []struct {
		name string
		req  dto.QuoteRequest
		code string
	}{
		{
			name: "missing_price_and_product",
			req:  dto.QuoteRequest{ActivationDate: "2025-10-12"},
			code: ierr.ErrCodeValidation,
		},
		{
			name: "unknown_product",
			req:  dto.QuoteRequest{ProductID: "dial-up", ActivationDate: "2025-10-12"},
			code: ierr.ErrCodeNotFound,
		},
		{
			name: "unknown_addon",
			req:  dto.QuoteRequest{ProductID: "iew", ActivationDate: "2025-10-12", AddOnIDs: []string{"netflix"}},
			code: ierr.ErrCodeNotFound,
		},
		{
			name: "unknown_policy",
			req:  dto.QuoteRequest{ProductID: "iew", ActivationDate: "2025-10-12", Policy: "weekly"},
			code: ierr.ErrCodeValidation,
		},
		{
			name: "malformed_date",
			req:  dto.QuoteRequest{ProductID: "iew", ActivationDate: "12/10/2025"},
			code: ierr.ErrCodeInvalidDate,
		},
		{
			name: "anchor_out_of_range",
			req:  dto.QuoteRequest{ProductID: "iew", ActivationDate: "2025-10-12", AnchorDay: lo.ToPtr(32)},
			code: ierr.ErrCodeInvalidAnchor,
		},
		{
			name: "amount_checked_before_date",
			req:  dto.QuoteRequest{MonthlyPrice: lo.ToPtr(decimal.NewFromInt(-1)), ActivationDate: "not-a-date"},
			code: ierr.ErrCodeInvalidAmount,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			resp, err := s.service.Quote(s.GetContext(), tt.req)
			s.Nil(resp)
			s.Require().Error(err)
			s.Equal(tt.code, ierr.Code(err))
		})
	}
}

func (s *ProrationServiceSuite) TestQuoteFromInvoice() {
	resp, err := s.service.QuoteFromInvoice(s.GetContext(), dto.QuoteFromInvoiceRequest{
		InvoiceAmount:  decimal.RequireFromString("31.9"),
		ActivationDate: "2025-10-12",
		AnchorDay:      lo.ToPtr(15),
	})
	s.Require().NoError(err)
	s.assertDecimal("29", resp.MonthlyBeforeTax, "monthly_before_tax")
	s.assertDecimal("31.9", resp.InvoiceAfterTax, "invoice_after_tax")

	_, err = s.service.QuoteFromInvoice(s.GetContext(), dto.QuoteFromInvoiceRequest{
		InvoiceAmount:  decimal.Zero,
		ActivationDate: "2025-10-12",
	})
	s.Require().Error(err)
	s.True(ierr.IsInvalidAmount(err))
}

func (s *ProrationServiceSuite) TestBatchQuote_PreservesOrder() {
	req := dto.BatchQuoteRequest{
		Items: []dto.QuoteRequest{
			{ProductID: "iew", ActivationDate: "2025-10-12"},
			{ProductID: "iew", ActivationDate: "2025-10-12", AnchorDay: lo.ToPtr(0)},
			{MonthlyPrice: lo.ToPtr(decimal.NewFromInt(29)), ActivationDate: "2025-10-12"},
			{ProductID: "ftth", ActivationDate: "2025-03-23"},
		},
	}

	resp, err := s.service.BatchQuote(s.GetContext(), req)
	s.Require().NoError(err)
	s.Require().Len(resp.Items, 4)
	s.Equal(3, resp.Succeeded)
	s.Equal(1, resp.Failed)

	for i, item := range resp.Items {
		s.Equal(i, item.Index)
	}

	s.NotNil(resp.Items[0].Quote)
	s.Nil(resp.Items[1].Quote)
	s.Require().NotNil(resp.Items[1].Error)
	s.Equal(ierr.ErrCodeInvalidAnchor, resp.Items[1].Error.Code)
	s.NotEmpty(resp.Items[1].Error.Display)
	s.assertDecimal("31.9", resp.Items[2].Quote.InvoiceAfterTax, "invoice_after_tax")
	s.Equal(types.ProrationPolicyFlatThirty, resp.Items[3].Quote.Policy)
}

func (s *ProrationServiceSuite) TestBatchQuote_RejectsEmpty() {
	_, err := s.service.BatchQuote(s.GetContext(), dto.BatchQuoteRequest{})
	s.Require().Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *ProrationServiceSuite) TestResolvePeriod() {
	resp, err := s.service.ResolvePeriod(s.GetContext(), dto.ResolvePeriodRequest{
		ProductID:      "ftth",
		ActivationDate: "2025-03-23",
	})
	s.Require().NoError(err)
	s.Equal("2025-03-01", resp.CycleStart.String())
	s.Equal("2025-04-01", resp.CycleEnd.String())
	s.Equal(9, resp.ProDays)
	s.False(resp.OnAnchor)

	resp, err = s.service.ResolvePeriod(s.GetContext(), dto.ResolvePeriodRequest{
		ActivationDate: "2025-03-15",
		AnchorDay:      lo.ToPtr(15),
	})
	s.Require().NoError(err)
	s.True(resp.OnAnchor)
	s.Equal(59, resp.CycleDays)

	_, err = s.service.ResolvePeriod(s.GetContext(), dto.ResolvePeriodRequest{
		ActivationDate: "2025-02-30",
	})
	s.Require().Error(err)
	s.True(ierr.IsInvalidDate(err))
}
