package funnel

import (
	"context"
	"log/slog"

	"mynbala-backend/internal/pkg/errs"
)

// UseCase exposes session-scoped funnels to transports.
type UseCase interface {
	Mount(ctx context.Context, sessionID string, query map[string]string) (View, error)
	Current(ctx context.Context, sessionID string) (View, error)
	Update(ctx context.Context, sessionID string, patch SelectionPatch) (View, error)
	ApplyPromo(ctx context.Context, sessionID, code string) (View, error)
	Submit(ctx context.Context, sessionID string) (View, error)
}

type useCaseImpl struct {
	factory  *Factory
	registry *Registry
	logger   *slog.Logger
}

func NewUseCase(factory *Factory, registry *Registry, logger *slog.Logger) UseCase {
	return &useCaseImpl{factory: factory, registry: registry, logger: logger}
}

// Mount starts a fresh controller for the session, dropping any previous one.
func (u *useCaseImpl) Mount(ctx context.Context, sessionID string, query map[string]string) (View, error) {
	ctrl := u.factory.New(sessionID, NewRecordingNavigator(query))
	ctrl.Observe(func(v View) {
		u.logger.Debug("funnel state", "session_id", v.SessionID, "state", v.State)
	})
	u.registry.Mount(ctrl)
	return ctrl.Load(ctx)
}

func (u *useCaseImpl) Current(_ context.Context, sessionID string) (View, error) {
	ctrl, err := u.lookup(sessionID)
	if err != nil {
		return View{}, err
	}
	return ctrl.View(), nil
}

func (u *useCaseImpl) Update(ctx context.Context, sessionID string, patch SelectionPatch) (View, error) {
	ctrl, err := u.lookup(sessionID)
	if err != nil {
		return View{}, err
	}
	return ctrl.Update(ctx, patch)
}

func (u *useCaseImpl) ApplyPromo(ctx context.Context, sessionID, code string) (View, error) {
	ctrl, err := u.lookup(sessionID)
	if err != nil {
		return View{}, err
	}
	return ctrl.ApplyPromo(ctx, code)
}

func (u *useCaseImpl) Submit(ctx context.Context, sessionID string) (View, error) {
	ctrl, err := u.lookup(sessionID)
	if err != nil {
		return View{}, err
	}
	return ctrl.Submit(ctx)
}

func (u *useCaseImpl) lookup(sessionID string) (*Controller, error) {
	if sessionID == "" {
		return nil, ErrNotMounted
	}
	ctrl, ok := u.registry.Get(sessionID)
	if !ok {
		return nil, errs.Wrapf(ErrNotMounted, "session %s", sessionID)
	}
	return ctrl, nil
}
