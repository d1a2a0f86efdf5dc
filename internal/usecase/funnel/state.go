package funnel

import (
	"time"

	"mynbala-backend/internal/domain/catalog"
	"mynbala-backend/internal/domain/order"
	"mynbala-backend/internal/domain/pricing"
	"mynbala-backend/internal/domain/promo"
	"mynbala-backend/internal/pkg/errs"
)

type State string

const (
	StateLoading    State = "loading"
	StateReady      State = "ready"
	StateSubmitting State = "submitting"
	StateRedirected State = "redirected"
	StateCompleted  State = "completed"
	StateFailed     State = "failed"
)

// Terminal states end the life of a controller instance.
func (s State) Terminal() bool {
	return s == StateRedirected || s == StateCompleted
}

const (
	MsgRestored          = "We restored your unfinished order."
	MsgAutoApplied       = "Promo code %s applied."
	MsgDiscountActivated = "Discount %s%% activated."
	MsgPromoNotFound     = "Promo code not found. Check the code and try again."
	MsgPromoExpired      = "Promo code has expired."
	MsgSelectionMissing  = "Select a branch and a tariff."
	MsgInvalidQuantity   = "Quantity must be a positive whole number."
	MsgUnknownBranch     = "Selected branch is not available."
	MsgUnknownTariff     = "Selected tariff is not available."
	MsgTicketIssued      = "Ticket issued!"
)

var (
	ErrFunnelClosed        = errs.Category("funnel is closed", errs.ErrConflict)
	ErrBusy                = errs.Category("funnel is busy", errs.ErrConflict)
	ErrNotMounted          = errs.Category("funnel is not mounted for this session", errs.ErrNotFound)
	ErrUnknownBranch       = errs.Category("unknown branch", errs.ErrValidation)
	ErrUnknownTariff       = errs.Category("unknown tariff", errs.ErrValidation)
	ErrInvalidQuantity     = errs.Category("invalid quantity", errs.ErrValidation)
	ErrPromoNotFound       = errs.Category("promo code not found", errs.ErrValidation)
	ErrPromoExpired        = errs.Category("promo code expired", errs.ErrValidation)
	ErrSelectionIncomplete = errs.Category("branch and tariff are required", errs.ErrValidation)
	ErrOrderFailed         = errs.New("order creation failed")
	ErrReferenceData       = errs.New("reference data unavailable")
)

// Selection is the editable part of the funnel.
type Selection struct {
	BranchID  string
	TariffID  string
	Quantity  int
	PromoCode string
}

// SelectionPatch carries optional edits; nil fields are left unchanged.
type SelectionPatch struct {
	BranchID  *string
	TariffID  *string
	Quantity  *int
	PromoCode *string
}

type Redirect struct {
	Path  string
	After time.Duration
}

// View is an immutable snapshot of the funnel.
type View struct {
	SessionID    string
	State        State
	LocalMode    bool
	Branches     []catalog.Branch
	Tariffs      []catalog.Tariff
	Promos       []promo.Offer
	Selection    Selection
	AppliedPromo *promo.Offer
	AppliedCode  string
	Totals       pricing.Totals
	Message      string
	Error        string
	Redirect     *Redirect
	Order        *order.Order
	Restored     bool
}

func (v View) CanSubmit() bool {
	return (v.State == StateReady || v.State == StateFailed) &&
		v.Selection.BranchID != "" && v.Selection.TariffID != "" && v.Selection.Quantity >= 1
}
