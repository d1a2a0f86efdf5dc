//go:build unit

package funnel_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"mynbala-backend/internal/infra/draftstore"
	"mynbala-backend/internal/pkg/clock"
	"mynbala-backend/internal/pkg/config"
	"mynbala-backend/internal/pkg/errs"
	"mynbala-backend/internal/pkg/ptr"
	"mynbala-backend/internal/usecase/funnel"
	funnelmock "mynbala-backend/tests/mock/funnel"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type UseCaseTestSuite struct {
	suite.Suite
	ctx      context.Context
	mockCtrl *gomock.Controller
	refs     *funnelmock.MockReferenceData
	identity *funnelmock.MockIdentityProvider
	orders   *funnelmock.MockOrderSink
	clock    *clock.MockClock
	registry *funnel.Registry
	uc       funnel.UseCase
}

func TestUseCaseSuite(t *testing.T) {
	suite.Run(t, new(UseCaseTestSuite))
}

func (s *UseCaseTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.refs = funnelmock.NewMockReferenceData(s.mockCtrl)
	s.identity = funnelmock.NewMockIdentityProvider(s.mockCtrl)
	s.orders = funnelmock.NewMockOrderSink(s.mockCtrl)
	s.clock = clock.NewMockClock(fixedNow)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := config.NewTestConfig()
	drafts := draftstore.NewMemoryStore(time.Hour, s.clock, nil, logger)
	factory := funnel.NewFactory(cfg, s.refs, s.identity, s.orders, drafts, s.clock, logger, nil)
	s.registry = funnel.NewRegistry(cfg, s.clock, nil, logger)
	s.uc = funnel.NewUseCase(factory, s.registry, logger)

	s.refs.EXPECT().ListBranches(gomock.Any()).Return(testBranches(), nil).AnyTimes()
	s.refs.EXPECT().ListTariffs(gomock.Any()).Return(testTariffs(), nil).AnyTimes()
	s.refs.EXPECT().ListPromoOffers(gomock.Any()).Return(testPromos(fixedNow), nil).AnyTimes()
}

func (s *UseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *UseCaseTestSuite) TestLookup_NotMounted() {
	tests := []struct {
		name      string
		sessionID string
	}{
		{name: "empty session", sessionID: ""},
		{name: "unknown session", sessionID: "missing"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.uc.Current(s.ctx, tt.sessionID)
			s.True(errs.IsAny(err, funnel.ErrNotMounted))
			s.True(errs.IsAny(err, errs.ErrNotFound))

			_, err = s.uc.Update(s.ctx, tt.sessionID, funnel.SelectionPatch{Quantity: ptr.Of(2)})
			s.True(errs.IsAny(err, funnel.ErrNotMounted))

			_, err = s.uc.ApplyPromo(s.ctx, tt.sessionID, "family")
			s.True(errs.IsAny(err, funnel.ErrNotMounted))

			_, err = s.uc.Submit(s.ctx, tt.sessionID)
			s.True(errs.IsAny(err, funnel.ErrNotMounted))
		})
	}
}

func (s *UseCaseTestSuite) TestMount_ThenEdit() {
	view, err := s.uc.Mount(s.ctx, sessionID, nil)
	s.Require().NoError(err)
	s.Equal(funnel.StateReady, view.State)
	s.Equal(1, s.registry.Len())

	view, err = s.uc.Update(s.ctx, sessionID, funnel.SelectionPatch{TariffID: ptr.Of("weekend"), Quantity: ptr.Of(3)})
	s.Require().NoError(err)
	s.Equal(int64(21000), view.Totals.OriginalTotal)

	view, err = s.uc.ApplyPromo(s.ctx, sessionID, "family")
	s.Require().NoError(err)
	s.Equal(int64(16800), view.Totals.FinalTotal)

	current, err := s.uc.Current(s.ctx, sessionID)
	s.Require().NoError(err)
	s.Equal(view.Totals, current.Totals)
}

func (s *UseCaseTestSuite) TestMount_ReplacesPreviousFunnel() {
	_, err := s.uc.Mount(s.ctx, sessionID, nil)
	s.Require().NoError(err)
	_, err = s.uc.Update(s.ctx, sessionID, funnel.SelectionPatch{Quantity: ptr.Of(4)})
	s.Require().NoError(err)

	view, err := s.uc.Mount(s.ctx, sessionID, map[string]string{"qty": "2"})
	s.Require().NoError(err)
	s.Equal(2, view.Selection.Quantity)
	s.Equal(1, s.registry.Len())
}

func (s *UseCaseTestSuite) TestCurrent_ExpiredSession() {
	_, err := s.uc.Mount(s.ctx, sessionID, nil)
	s.Require().NoError(err)

	s.clock.Add(2 * time.Hour)
	_, err = s.uc.Current(s.ctx, sessionID)
	s.True(errs.IsAny(err, funnel.ErrNotMounted))
}
