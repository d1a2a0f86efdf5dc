//go:build e2e

package catalog_test

import (
	"net/http"
	"testing"

	"mynbala-backend/internal/handler/dto/response"
	"mynbala-backend/tests/common/httptest"
	"mynbala-backend/tests/e2e"

	"github.com/stretchr/testify/suite"
)

type CatalogSuite struct {
	e2e.SharedSuite
}

func TestCatalogSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(CatalogSuite))
}

func (s *CatalogSuite) TestBranches() {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/branches", nil, "")

	var branches []response.BranchResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &branches)

	ids := make([]string, 0, len(branches))
	for _, b := range branches {
		ids = append(ids, b.ID)
	}
	s.ElementsMatch([]string{"taraz", "shymkent", "aksu", "atyrau"}, ids)
}

func (s *CatalogSuite) TestTariffs() {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/tariffs", nil, "")

	var tariffs []response.TariffResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &tariffs)

	prices := map[string]int64{}
	for _, t := range tariffs {
		prices[t.ID] = t.UnitPrice
	}
	s.Equal(map[string]int64{"weekday": 5000, "weekend": 7000, "evening": 4000}, prices)
}

func (s *CatalogSuite) TestPromos() {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/promos", nil, "")

	var promos []response.PromoResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &promos)

	byID := map[string]response.PromoResponse{}
	for _, p := range promos {
		byID[p.ID] = p
	}
	s.Require().Contains(byID, "family")
	s.Equal("MYN-FAMILY", byID["family"].Code)
	s.False(byID["family"].Expired)
	s.Require().NotNil(byID["family"].DiscountPercent)
	s.InDelta(20.0, *byID["family"].DiscountPercent, 0.001)
}
