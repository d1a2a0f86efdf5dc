//go:build e2e

package funnel_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"mynbala-backend/internal/handler/dto/request"
	"mynbala-backend/internal/handler/dto/response"
	"mynbala-backend/internal/pkg/ptr"
	"mynbala-backend/tests/common/httptest"
	"mynbala-backend/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	funnelURL    = "/api/tickets/funnel"
	selectionURL = funnelURL + "/selection"
	promoURL     = funnelURL + "/promo"
	submitURL    = funnelURL + "/submit"
	ordersURL    = "/api/orders"
)

type FunnelSuite struct {
	e2e.SharedSuite
}

func TestFunnelSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(FunnelSuite))
}

// visitor is one browser: a session cookie plus an optional bearer token.
type visitor struct {
	s       *FunnelSuite
	cookies []*http.Cookie
	token   string
}

func (s *FunnelSuite) newVisitor() *visitor {
	return &visitor{s: s}
}

func (v *visitor) do(method, path string, body any) (int, *response.FunnelResponse) {
	t := v.s.T()
	t.Helper()

	w := httptest.PerformRequestWithCookies(t, v.s.Router, method, path, body, v.cookies, v.token)
	if c := httptest.SessionCookie(w); c != nil {
		v.cookies = []*http.Cookie{c}
	}
	if w.Code != http.StatusOK {
		return w.Code, nil
	}
	var res response.FunnelResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
	return w.Code, &res
}

func (v *visitor) mustDo(method, path string, body any) *response.FunnelResponse {
	code, res := v.do(method, path, body)
	require.Equal(v.s.T(), http.StatusOK, code)
	return res
}

func (s *FunnelSuite) countRows(query string, args ...any) int {
	var n int
	err := s.DB.QueryRow(context.Background(), query, args...).Scan(&n)
	s.Require().NoError(err)
	return n
}

// =============================================================================
// Mount
// =============================================================================

func (s *FunnelSuite) TestMount() {
	s.Run("Normal case: reference data and defaults", func() {
		v := s.newVisitor()

		res := v.mustDo(http.MethodPost, funnelURL, nil)

		s.Equal("ready", res.State)
		s.Len(res.Branches, 4)
		s.Len(res.Tariffs, 3)
		s.NotEmpty(res.Promos)
		s.Equal(res.Branches[0].ID, res.Selection.BranchID)
		s.Equal("weekday", res.Selection.TariffID)
		s.Equal(1, res.Selection.Quantity)
		s.Equal(int64(5000), res.Totals.FinalTotal)
		s.Require().Len(v.cookies, 1, "session cookie issued")
		s.True(v.cookies[0].HttpOnly)
	})

	s.Run("Normal case: promo and quantity from the query string", func() {
		v := s.newVisitor()

		res := v.mustDo(http.MethodPost, funnelURL+"?qty=3&promo=family", nil)

		s.Equal(3, res.Selection.Quantity)
		s.Require().NotNil(res.AppliedPromo)
		s.Equal("family", res.AppliedPromo.ID)
		s.Equal(int64(15000), res.Totals.OriginalTotal)
		s.Equal(int64(3000), res.Totals.DiscountAmount)
		s.Equal(int64(12000), res.Totals.FinalTotal)
	})

	s.Run("Error case: edits before mounting", func() {
		v := s.newVisitor()

		code, _ := v.do(http.MethodPatch, selectionURL, request.UpdateSelectionRequest{Quantity: ptr.Of(2)})

		s.Equal(http.StatusNotFound, code)
	})
}

// =============================================================================
// Promo codes
// =============================================================================

func (s *FunnelSuite) TestPromo() {
	s.Run("Normal case: derived code is accepted", func() {
		v := s.newVisitor()
		v.mustDo(http.MethodPost, funnelURL, nil)
		v.mustDo(http.MethodPatch, selectionURL, request.UpdateSelectionRequest{TariffID: ptr.Of("weekend"), Quantity: ptr.Of(2)})

		res := v.mustDo(http.MethodPost, promoURL, request.ApplyPromoRequest{Code: "myn-family"})

		s.Require().NotNil(res.AppliedPromo)
		s.Equal("MYN-FAMILY", res.AppliedPromo.Code)
		s.Equal("MYN-FAMILY", res.Selection.PromoCode)
		want := response.TotalsResponse{OriginalTotal: 14000, DiscountAmount: 2800, FinalTotal: 11200}
		if diff := cmp.Diff(want, res.Totals); diff != "" {
			s.T().Errorf("totals mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Error case: expired code keeps the applied promo", func() {
		v := s.newVisitor()
		v.mustDo(http.MethodPost, funnelURL+"?promo=family", nil)

		res := v.mustDo(http.MethodPost, promoURL, request.ApplyPromoRequest{Code: "stale"})

		s.Equal("Promo code has expired.", res.ErrorMessage)
		s.Require().NotNil(res.AppliedPromo)
		s.Equal("family", res.AppliedPromo.ID)
	})

	s.Run("Error case: unknown code", func() {
		v := s.newVisitor()
		v.mustDo(http.MethodPost, funnelURL, nil)

		res := v.mustDo(http.MethodPost, promoURL, request.ApplyPromoRequest{Code: "nope"})

		s.Equal("Promo code not found. Check the code and try again.", res.ErrorMessage)
		s.Nil(res.AppliedPromo)
	})
}

// =============================================================================
// Submit
// =============================================================================

func (s *FunnelSuite) TestSubmit() {
	s.Run("Normal case: anonymous visitor signs in and resumes the order", func() {
		v := s.newVisitor()
		v.mustDo(http.MethodPost, funnelURL, nil)
		v.mustDo(http.MethodPatch, selectionURL, request.UpdateSelectionRequest{
			BranchID:  ptr.Of("shymkent"),
			TariffID:  ptr.Of("weekend"),
			Quantity:  ptr.Of(2),
			PromoCode: ptr.Of(" family "),
		})

		res := v.mustDo(http.MethodPost, submitURL, nil)

		s.Equal("redirected", res.State)
		s.Require().NotNil(res.Redirect)
		s.Equal("/auth/login?next=%2Ftickets", res.Redirect.Path)
		s.Nil(res.Order)
		s.Equal(0, s.countRows("SELECT count(*) FROM tickets"))
		sessionKey := "tickets_flow:" + v.cookies[0].Value
		s.Equal(1, s.countRows("SELECT count(*) FROM funnel_drafts WHERE session_id = $1", sessionKey))

		// back from the login page
		userID := uuid.New()
		v.token = s.JWT.GenerateToken(s.T(), userID)
		res = v.mustDo(http.MethodPost, funnelURL, nil)

		s.Equal("shymkent", res.Selection.BranchID)
		s.Equal("weekend", res.Selection.TariffID)
		s.Equal(2, res.Selection.Quantity)
		s.Require().NotNil(res.AppliedPromo, "restored code is applied")
		s.Equal(int64(11200), res.Totals.FinalTotal)

		res = v.mustDo(http.MethodPost, submitURL, nil)

		s.Equal("completed", res.State)
		s.Require().NotNil(res.Redirect)
		s.Equal("/tickets/success", res.Redirect.Path)
		s.Equal(int64(500), res.Redirect.AfterMs)
		s.Require().NotNil(res.Order)
		s.Equal(int64(11200), res.Order.FinalTotal)
		s.Equal(int64(112), res.Order.PointsEarned)
		s.Equal("paid", res.Order.Status)
		s.Equal(1, s.countRows("SELECT count(*) FROM tickets WHERE user_id = $1", userID))
		s.Equal(0, s.countRows("SELECT count(*) FROM funnel_drafts WHERE session_id = $1", sessionKey))

		code, _ := v.do(http.MethodPatch, selectionURL, request.UpdateSelectionRequest{Quantity: ptr.Of(3)})
		s.Equal(http.StatusConflict, code, "completed funnel rejects edits")
	})

	s.Run("Normal case: issued ticket shows up in my tickets", func() {
		userID := uuid.New()
		v := s.newVisitor()
		v.token = s.JWT.GenerateToken(s.T(), userID)
		v.mustDo(http.MethodPost, funnelURL, nil)
		submitted := v.mustDo(http.MethodPost, submitURL, nil)
		s.Require().NotNil(submitted.Order)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, ordersURL, nil, v.token)
		var orders []response.OrderResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &orders)
		s.Require().Len(orders, 1)
		s.Equal(submitted.Order.ID, orders[0].ID)
		s.True(orders[0].Active)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, ordersURL+"/"+orders[0].ID+"/receipt", nil, v.token)
		s.Equal(http.StatusOK, w.Code)
		s.Equal("application/pdf", w.Header().Get("Content-Type"))
		s.NotEmpty(w.Body.Bytes())

		stranger := s.JWT.GenerateToken(s.T(), uuid.New())
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, ordersURL+"/"+orders[0].ID, nil, stranger)
		s.Equal(http.StatusForbidden, w.Code)
	})

	s.Run("Error case: expired token is anonymous", func() {
		v := s.newVisitor()
		v.token = s.JWT.CreateExpiredToken(s.T(), uuid.New())
		v.mustDo(http.MethodPost, funnelURL, nil)

		res := v.mustDo(http.MethodPost, submitURL, nil)

		s.Equal("redirected", res.State)
		s.Equal(0, s.countRows("SELECT count(*) FROM tickets"))
	})

	s.Run("Error case: my tickets requires a token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, ordersURL, nil, "")
		s.Equal(http.StatusUnauthorized, w.Code)
	})
}

// drafts expire with the configured ttl even when nobody sweeps them
func (s *FunnelSuite) TestExpiredDraftIsIgnored() {
	v := s.newVisitor()
	v.mustDo(http.MethodPost, funnelURL, nil)
	v.mustDo(http.MethodPatch, selectionURL, request.UpdateSelectionRequest{Quantity: ptr.Of(4)})
	_, err := s.DB.Exec(context.Background(),
		"UPDATE funnel_drafts SET expires_at = $1", time.Now().Add(-time.Minute))
	s.Require().NoError(err)

	res := v.mustDo(http.MethodPost, funnelURL, nil)

	s.Equal(1, res.Selection.Quantity)
}
