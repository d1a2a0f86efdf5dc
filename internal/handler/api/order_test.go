//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"mynbala-backend/internal/handler/api"
	resdto "mynbala-backend/internal/handler/dto/response"
	"mynbala-backend/internal/usecase/queries"
	"mynbala-backend/tests/common/builder"
	"mynbala-backend/tests/common/httptest"
	queriesmock "mynbala-backend/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OrderHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockOrderQueries
	userID      uuid.UUID
}

func (s *OrderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockOrderQueries(s.mockCtrl)
	s.userID = uuid.New()
	h := api.NewOrderHandler(s.mockQueries)

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", s.userID)
		}
		c.Next()
	}

	s.router.GET("/orders", authMiddleware, h.ListMine)
	s.router.GET("/orders/:id", authMiddleware, h.Get)
	s.router.GET("/orders/:id/receipt", authMiddleware, h.Receipt)
}

func (s *OrderHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOrderHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}

func orderView(id uuid.UUID) *queries.OrderView {
	view := builder.NewOrderBuilder().
		WithCreatedAt(time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)).
		WithReference("MYNBALA-1760616000-ABCD").
		WithPromo("family", "MYN-FAMILY", 20).
		BuildView(true)
	view.ID = id
	return view
}

func (s *OrderHandlerTestSuite) TestListMine() {
	s.Run("success: lists the caller's tickets", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().ListMine(gomock.Any(), s.userID).Return([]*queries.OrderView{orderView(id)}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders", nil, "bearer-token")

		var body []resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal(id.String(), body[0].ID)
		s.Equal("paid", body[0].Status)
		s.Equal(int64(11200), body[0].FinalTotal)
		s.True(body[0].Active)
	})

	s.Run("error: 401 without a user", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 500 when the store fails", func() {
		s.mockQueries.EXPECT().ListMine(gomock.Any(), s.userID).Return(nil, errors.New("db down"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders", nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to load tickets")
	})
}

func (s *OrderHandlerTestSuite) TestGet() {
	id := uuid.New()
	url := "/orders/" + id.String()

	tests := []struct {
		name       string
		err        error
		expectCode int
		expectMsg  string
	}{
		{name: "error: 404 when missing", err: queries.ErrOrderNotFound, expectCode: http.StatusNotFound, expectMsg: "Ticket not found"},
		{name: "error: 403 for another user's ticket", err: queries.ErrOrderAccess, expectCode: http.StatusForbidden, expectMsg: "Forbidden"},
		{name: "error: 500 on store failure", err: errors.New("db down"), expectCode: http.StatusInternalServerError, expectMsg: "Failed to load ticket"},
	}

	s.Run("success: returns the ticket", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id, s.userID).Return(orderView(id), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("MYN-FAMILY", body.PromoCode)
		s.Equal(int64(112), body.PointsEarned)
	})

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.mockQueries.EXPECT().GetByID(gomock.Any(), id, s.userID).Return(nil, tt.err)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

			httptest.AssertErrorResponse(s.T(), rec, tt.expectCode, tt.expectMsg)
		})
	}

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/not-a-uuid", nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

func (s *OrderHandlerTestSuite) TestReceipt() {
	id := uuid.New()
	url := "/orders/" + id.String() + "/receipt"

	s.Run("success: streams the pdf", func() {
		pdf := []byte("%PDF-1.3 test")
		s.mockQueries.EXPECT().Receipt(gomock.Any(), id, s.userID).Return(pdf, "ticket-MYNBALA-1.pdf", nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		s.Equal(http.StatusOK, rec.Code)
		httptest.AssertHeaders(s.T(), rec, map[string]string{
			"Content-Type":        "application/pdf",
			"Content-Disposition": `attachment; filename="ticket-MYNBALA-1.pdf"`,
		})
		s.Equal(pdf, rec.Body.Bytes())
	})

	s.Run("error: 403 for another user's ticket", func() {
		s.mockQueries.EXPECT().Receipt(gomock.Any(), id, s.userID).Return(nil, "", queries.ErrOrderAccess)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Forbidden")
	})
}
