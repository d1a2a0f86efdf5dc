package funnel

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"sync"

	"mynbala-backend/internal/domain/catalog"
	"mynbala-backend/internal/domain/draft"
	"mynbala-backend/internal/domain/order"
	"mynbala-backend/internal/domain/pricing"
	"mynbala-backend/internal/domain/promo"
	"mynbala-backend/internal/pkg/clock"
	"mynbala-backend/internal/pkg/errs"
	"mynbala-backend/internal/pkg/metrics"
	"mynbala-backend/internal/pkg/patch"
)

const (
	queryQuantity = "qty"
	queryPromo    = "promo"
)

// Controller drives one mounted ticket funnel. Operations on a controller are serialized;
// long calls to collaborators run outside the lock while the state is loading or submitting.
type Controller struct {
	mu sync.Mutex

	sessionID string
	cfg       Config
	refs      ReferenceData
	identity  IdentityProvider
	orders    OrderSink
	drafts    DraftStore
	nav       Navigator
	clock     clock.Clock
	logger    *slog.Logger
	metrics   *metrics.Metrics

	state     State
	branches  []catalog.Branch
	tariffs   []catalog.Tariff
	promos    []promo.Offer
	sel       Selection
	applied   *promo.Offer
	restored  bool
	message   string
	errMsg    string
	redirect  *Redirect
	created   *order.Order
	observers map[int]func(View)
	nextObsID int
}

func (c *Controller) SessionID() string {
	return c.sessionID
}

// View returns the current snapshot.
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewLocked()
}

// Observe registers fn to receive a snapshot after every change. The returned func
// unregisters it.
func (c *Controller) Observe(fn func(View)) (cancel func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.observers == nil {
		c.observers = make(map[int]func(View))
	}
	id := c.nextObsID
	c.nextObsID++
	c.observers[id] = fn
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.observers, id)
	}
}

// Load fetches the reference data, selects defaults and then runs the one-time restore.
func (c *Controller) Load(ctx context.Context) (View, error) {
	c.mu.Lock()
	if c.state.Terminal() {
		c.mu.Unlock()
		return c.View(), ErrFunnelClosed
	}
	if c.state == StateSubmitting {
		c.mu.Unlock()
		return c.View(), ErrBusy
	}
	c.state = StateLoading
	c.mu.Unlock()
	c.notify()

	branches, tariffs, promos, err := c.fetchReferenceData(ctx)

	c.mu.Lock()
	if err != nil {
		c.state = StateFailed
		c.errMsg = err.Error()
		c.logger.ErrorContext(ctx, "funnel reference data load failed", "session_id", c.sessionID, "error", err)
		return c.unlockAndNotify(errs.Mark(err, ErrReferenceData))
	}

	c.branches, c.tariffs, c.promos = branches, tariffs, promos
	if c.sel.BranchID == "" && len(branches) > 0 {
		c.sel.BranchID = branches[0].ID
	}
	if c.sel.TariffID == "" && len(tariffs) > 0 {
		c.sel.TariffID = tariffs[0].ID
	}
	if c.sel.Quantity < 1 {
		c.sel.Quantity = 1
	}
	c.state = StateReady
	c.restoreLocked(ctx)
	return c.unlockAndNotify(nil)
}

// HandleReferenceReady runs the restore step. It is a no-op once restoration happened or
// while either list is still empty.
func (c *Controller) HandleReferenceReady(ctx context.Context) View {
	c.mu.Lock()
	c.restoreLocked(ctx)
	v, _ := c.unlockAndNotify(nil)
	return v
}

func (c *Controller) SetBranch(ctx context.Context, branchID string) (View, error) {
	return c.Update(ctx, SelectionPatch{BranchID: &branchID})
}

func (c *Controller) SetTariff(ctx context.Context, tariffID string) (View, error) {
	return c.Update(ctx, SelectionPatch{TariffID: &tariffID})
}

func (c *Controller) SetQuantity(ctx context.Context, quantity int) (View, error) {
	return c.Update(ctx, SelectionPatch{Quantity: &quantity})
}

func (c *Controller) SetPromoCode(ctx context.Context, code string) (View, error) {
	return c.Update(ctx, SelectionPatch{PromoCode: &code})
}

// Update applies all edits in p or none of them.
func (c *Controller) Update(ctx context.Context, p SelectionPatch) (View, error) {
	c.mu.Lock()
	if err := c.editableLocked(); err != nil {
		return c.unlockAndNotify(err)
	}

	next := c.sel
	if patch.Changed(p.BranchID, next.BranchID) {
		if _, ok := catalog.FindBranch(c.branches, *p.BranchID); !ok {
			c.errMsg = MsgUnknownBranch
			return c.unlockAndNotify(ErrUnknownBranch)
		}
		next.BranchID = *p.BranchID
	}
	if patch.Changed(p.TariffID, next.TariffID) {
		if _, ok := catalog.FindTariff(c.tariffs, *p.TariffID); !ok {
			c.errMsg = MsgUnknownTariff
			return c.unlockAndNotify(ErrUnknownTariff)
		}
		next.TariffID = *p.TariffID
	}
	if p.Quantity != nil {
		if *p.Quantity < 1 {
			c.errMsg = MsgInvalidQuantity
			return c.unlockAndNotify(ErrInvalidQuantity)
		}
		next.Quantity = *p.Quantity
	}
	next.PromoCode = promo.Normalize(patch.Coalesce(p.PromoCode, next.PromoCode))

	c.sel = next
	c.errMsg = ""
	c.autoApplyLocked(ctx)
	c.persistLocked(ctx)
	return c.unlockAndNotify(nil)
}

// ApplyPromo is the explicit "apply" action. A non-empty code replaces the current field
// value first. Rejections leave any applied promo in place.
func (c *Controller) ApplyPromo(ctx context.Context, code string) (View, error) {
	c.mu.Lock()
	if err := c.editableLocked(); err != nil {
		return c.unlockAndNotify(err)
	}
	if strings.TrimSpace(code) != "" {
		c.sel.PromoCode = promo.Normalize(code)
	}
	c.message, c.errMsg = "", ""

	offer, ok := promo.FindByCode(c.promos, c.sel.PromoCode)
	if !ok {
		c.errMsg = MsgPromoNotFound
		c.metrics.PromoApplied("explicit", "not_found")
		c.persistLocked(ctx)
		return c.unlockAndNotify(ErrPromoNotFound)
	}
	if offer.ExpiredAt(c.clock.Now()) {
		c.errMsg = MsgPromoExpired
		c.metrics.PromoApplied("explicit", "expired")
		c.persistLocked(ctx)
		return c.unlockAndNotify(ErrPromoExpired)
	}

	c.applied = offer
	c.sel.PromoCode = offer.Code()
	c.message = fmt.Sprintf(MsgDiscountActivated, formatPercent(offer.Discount()))
	c.metrics.PromoApplied("explicit", "applied")
	c.persistLocked(ctx)
	return c.unlockAndNotify(nil)
}

// Submit either defers to the login flow or records the order.
func (c *Controller) Submit(ctx context.Context) (View, error) {
	c.mu.Lock()
	if err := c.editableLocked(); err != nil {
		return c.unlockAndNotify(err)
	}
	c.message, c.errMsg = "", ""

	user, ok := c.identity.CurrentUser(ctx)
	if !ok {
		c.writeDraftLocked(ctx)
		target := c.cfg.LoginPath + "?next=" + url.QueryEscape(c.cfg.ReturnPath)
		c.redirect = &Redirect{Path: target}
		c.state = StateRedirected
		c.nav.GoTo(target, 0)
		c.metrics.Submission("redirected")
		c.logger.InfoContext(ctx, "funnel submit deferred to login", "session_id", c.sessionID)
		return c.unlockAndNotify(nil)
	}

	branch, okBranch := catalog.FindBranch(c.branches, c.sel.BranchID)
	tariff, okTariff := catalog.FindTariff(c.tariffs, c.sel.TariffID)
	if !okBranch || !okTariff {
		c.errMsg = MsgSelectionMissing
		c.metrics.Submission("invalid")
		return c.unlockAndNotify(ErrSelectionIncomplete)
	}

	params := order.Params{
		UserID:     user.UserID,
		BranchID:   branch.ID,
		BranchName: branch.Name,
		TariffID:   tariff.ID,
		TariffName: tariff.Name,
		Quantity:   c.sel.Quantity,
		Totals:     c.totalsLocked(),
	}
	if c.applied != nil {
		params.PromoID = c.applied.ID
		params.PromoCode = c.applied.Code()
	}
	rec, err := order.NewPaid(params, c.cfg.ReferencePrefix, c.clock.Now(), c.cfg.OrderValidity)
	if err != nil {
		c.errMsg = MsgSelectionMissing
		c.metrics.Submission("invalid")
		return c.unlockAndNotify(errs.Tag(err, ErrSelectionIncomplete, errs.ErrValidation))
	}

	c.state = StateSubmitting
	c.mu.Unlock()
	c.notify()

	id, err := c.orders.CreateOrder(ctx, rec)

	c.mu.Lock()
	if err != nil {
		c.state = StateFailed
		c.errMsg = err.Error()
		c.metrics.Submission("failed")
		c.logger.ErrorContext(ctx, "funnel order creation failed", "session_id", c.sessionID, "error", err)
		return c.unlockAndNotify(errs.Mark(err, ErrOrderFailed))
	}

	rec.ID = id
	c.created = rec
	c.drafts.Clear(ctx, c.sessionID)
	c.message = MsgTicketIssued
	c.state = StateCompleted
	c.redirect = &Redirect{Path: c.cfg.SuccessPath, After: c.cfg.RedirectDelay}
	c.nav.GoTo(c.cfg.SuccessPath, c.cfg.RedirectDelay)
	c.metrics.Submission("completed")
	c.logger.InfoContext(ctx, "funnel order created",
		"session_id", c.sessionID, "order_id", id, "reference", rec.Reference, "final_total", rec.FinalTotal)
	return c.unlockAndNotify(nil)
}

// fetchReferenceData returns collaborator errors as is; their message is shown in the view.
func (c *Controller) fetchReferenceData(ctx context.Context) ([]catalog.Branch, []catalog.Tariff, []promo.Offer, error) {
	branches, err := c.refs.ListBranches(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	tariffs, err := c.refs.ListTariffs(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	promos, err := c.refs.ListPromoOffers(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	return branches, tariffs, promos, nil
}

func (c *Controller) editableLocked() error {
	switch {
	case c.state.Terminal():
		return ErrFunnelClosed
	case c.state == StateLoading || c.state == StateSubmitting:
		return ErrBusy
	}
	return nil
}

func (c *Controller) restoreLocked(ctx context.Context) {
	if c.restored || len(c.branches) == 0 || len(c.tariffs) == 0 {
		return
	}

	if saved, ok := c.drafts.Read(ctx, c.sessionID); ok {
		if saved.BranchID != "" {
			c.sel.BranchID = saved.BranchID
		}
		if saved.TariffID != "" {
			c.sel.TariffID = saved.TariffID
		}
		if saved.Quantity > 0 {
			c.sel.Quantity = saved.Quantity
		}
		if saved.PromoCode != "" {
			c.sel.PromoCode = promo.Normalize(saved.PromoCode)
		}
		c.message = MsgRestored
		c.logger.DebugContext(ctx, "funnel draft restored", "session_id", c.sessionID)
	}

	query := c.nav.QueryParams()
	if qty, ok := parseQuantity(query[queryQuantity]); ok {
		c.sel.Quantity = qty
	}
	if code := promo.Normalize(query[queryPromo]); code != "" {
		c.sel.PromoCode = code
	}

	c.restored = true
	c.autoApplyLocked(ctx)
	c.persistLocked(ctx)
}

func (c *Controller) autoApplyLocked(ctx context.Context) {
	if c.sel.PromoCode == "" || c.applied != nil || len(c.promos) == 0 {
		return
	}
	offer, ok := promo.FindByCode(c.promos, c.sel.PromoCode)
	if !ok || offer.ExpiredAt(c.clock.Now()) {
		return
	}
	c.applied = offer
	c.message = fmt.Sprintf(MsgAutoApplied, offer.Code())
	c.metrics.PromoApplied("auto", "applied")
	c.logger.DebugContext(ctx, "funnel promo auto-applied", "session_id", c.sessionID, "promo_id", offer.ID)
}

// persistLocked writes the draft once restoration is done and the selection is complete.
func (c *Controller) persistLocked(ctx context.Context) {
	if !c.restored || c.sel.BranchID == "" || c.sel.TariffID == "" {
		return
	}
	c.writeDraftLocked(ctx)
}

func (c *Controller) writeDraftLocked(ctx context.Context) {
	c.drafts.Write(ctx, c.sessionID, draft.State{
		BranchID:  c.sel.BranchID,
		TariffID:  c.sel.TariffID,
		Quantity:  c.sel.Quantity,
		PromoCode: strings.TrimSpace(c.sel.PromoCode),
	})
}

func (c *Controller) totalsLocked() pricing.Totals {
	tariff, ok := catalog.FindTariff(c.tariffs, c.sel.TariffID)
	if !ok {
		return pricing.Totals{}
	}
	var pct float64
	if c.applied != nil {
		pct = c.applied.Discount()
	}
	return pricing.Compute(tariff.UnitPrice, c.sel.Quantity, pct)
}

func (c *Controller) viewLocked() View {
	v := View{
		SessionID: c.sessionID,
		State:     c.state,
		LocalMode: c.cfg.LocalMode,
		Branches:  slices.Clone(c.branches),
		Tariffs:   slices.Clone(c.tariffs),
		Promos:    slices.Clone(c.promos),
		Selection: c.sel,
		Totals:    c.totalsLocked(),
		Message:   c.message,
		Error:     c.errMsg,
		Restored:  c.restored,
	}
	if c.applied != nil {
		applied := *c.applied
		v.AppliedPromo = &applied
		v.AppliedCode = applied.Code()
	}
	if c.redirect != nil {
		r := *c.redirect
		v.Redirect = &r
	}
	if c.created != nil {
		o := *c.created
		v.Order = &o
	}
	return v
}

// unlockAndNotify releases the lock taken by the caller, then fans the new view out.
func (c *Controller) unlockAndNotify(err error) (View, error) {
	v := c.viewLocked()
	observers := make([]func(View), 0, len(c.observers))
	for _, fn := range c.observers {
		observers = append(observers, fn)
	}
	c.mu.Unlock()

	for _, fn := range observers {
		fn(v)
	}
	return v, err
}

func (c *Controller) notify() {
	c.mu.Lock()
	_, _ = c.unlockAndNotify(nil)
}

func parseQuantity(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	n := math.Floor(f)
	if n < 1 || n > math.MaxInt32 {
		return 0, false
	}
	return int(n), true
}

func formatPercent(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}
