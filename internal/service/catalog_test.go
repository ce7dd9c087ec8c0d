package service

import (
	"testing"

	ierr "github.com/flexprice/prorata/internal/errors"
	"github.com/flexprice/prorata/internal/testutil"
	"github.com/flexprice/prorata/internal/types"
	"github.com/stretchr/testify/suite"
)

type CatalogServiceSuite struct {
	testutil.BaseServiceTestSuite
	service CatalogService
}

func TestCatalogService(t *testing.T) {
	suite.Run(t, new(CatalogServiceSuite))
}

func (s *CatalogServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewCatalogService(ServiceParams{
		Logger:      s.GetLogger(),
		Config:      s.GetConfig(),
		CatalogRepo: s.GetStores().CatalogRepo,
	})
}

func (s *CatalogServiceSuite) TestListProducts() {
	resp, err := s.service.ListProducts(s.GetContext())
	s.Require().NoError(err)

	s.Require().Len(resp.Items, 4)
	s.Equal(4, resp.Pagination.Total)
	s.Equal("adsl", resp.Items[0].ID)
	s.Equal(types.ProrationPolicyFlatThirty, resp.Items[0].Policy)
	s.Equal("iew", resp.Items[2].ID)
	s.Equal(types.ProrationPolicyAnchorTax, resp.Items[2].Policy)
}

func (s *CatalogServiceSuite) TestGetProduct() {
	resp, err := s.service.GetProduct(s.GetContext(), "mobile-postpaid")
	s.Require().NoError(err)
	s.Equal(15, resp.AnchorDay)
	s.Equal("18", resp.DefaultBasePrice.String())
	s.Equal(types.ProrationPolicyRatio, resp.Policy)

	_, err = s.service.GetProduct(s.GetContext(), "dial-up")
	s.Require().Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *CatalogServiceSuite) TestListAddOns() {
	resp, err := s.service.ListAddOns(s.GetContext())
	s.Require().NoError(err)
	s.Require().Len(resp.Items, 5)
	s.Equal("anghami", resp.Items[0].ID)
	s.Equal("أنغامي", resp.Items[0].Name.Get(types.LanguageArabic))
}
