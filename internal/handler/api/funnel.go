package api

import (
	"net/http"

	reqdto "mynbala-backend/internal/handler/dto/request"
	resdto "mynbala-backend/internal/handler/dto/response"
	"mynbala-backend/internal/handler/httperr"
	"mynbala-backend/internal/handler/middleware"
	"mynbala-backend/internal/pkg/errs"
	"mynbala-backend/internal/usecase/funnel"

	"github.com/gin-gonic/gin"
)

type FunnelHandler struct {
	uc funnel.UseCase
}

func NewFunnelHandler(uc funnel.UseCase) *FunnelHandler {
	return &FunnelHandler{uc: uc}
}

// @Summary Mount ticket funnel
// @Description Start the ticket funnel for the current session. Query parameters (qty, promo) are read once.
// @Tags funnel
// @Produce json
// @Param qty query int false "Initial ticket quantity, floored; ignored unless at least 1"
// @Param promo query string false "Promo code or offer id to apply on open"
// @Success 200 {object} resdto.FunnelResponse
// @Failure 409 {object} httperr.Response
// @Router /tickets/funnel [post]
func (h *FunnelHandler) Mount(c *gin.Context) {
	query := make(map[string]string)
	for k, vs := range c.Request.URL.Query() {
		if len(vs) > 0 {
			query[k] = vs[0]
		}
	}
	view, err := h.uc.Mount(c.Request.Context(), middleware.GetSessionID(c), query)
	h.respond(c, view, err)
}

// @Summary Current funnel view
// @Tags funnel
// @Produce json
// @Success 200 {object} resdto.FunnelResponse
// @Failure 404 {object} httperr.Response
// @Router /tickets/funnel [get]
func (h *FunnelHandler) Current(c *gin.Context) {
	view, err := h.uc.Current(c.Request.Context(), middleware.GetSessionID(c))
	h.respond(c, view, err)
}

// @Summary Update funnel selection
// @Description Change branch, tariff, quantity or promo field. Rejected edits come back in error_message.
// @Tags funnel
// @Accept json
// @Produce json
// @Param request body reqdto.UpdateSelectionRequest true "Selection edits"
// @Success 200 {object} resdto.FunnelResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /tickets/funnel/selection [patch]
func (h *FunnelHandler) UpdateSelection(c *gin.Context) {
	var req reqdto.UpdateSelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if req.IsEmpty() {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("empty selection patch"), "Nothing to update", nil)
		return
	}
	view, err := h.uc.Update(c.Request.Context(), middleware.GetSessionID(c), req.ToPatch())
	h.respond(c, view, err)
}

// @Summary Apply promo code
// @Tags funnel
// @Accept json
// @Produce json
// @Param request body reqdto.ApplyPromoRequest false "Promo code; empty applies the current field"
// @Success 200 {object} resdto.FunnelResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /tickets/funnel/promo [post]
func (h *FunnelHandler) ApplyPromo(c *gin.Context) {
	var req reqdto.ApplyPromoRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
			return
		}
	}
	view, err := h.uc.ApplyPromo(c.Request.Context(), middleware.GetSessionID(c), req.Code)
	h.respond(c, view, err)
}

// @Summary Submit funnel
// @Description Issue the ticket, or return a login redirect for anonymous visitors.
// @Tags funnel
// @Produce json
// @Success 200 {object} resdto.FunnelResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /tickets/funnel/submit [post]
func (h *FunnelHandler) Submit(c *gin.Context) {
	view, err := h.uc.Submit(c.Request.Context(), middleware.GetSessionID(c))
	h.respond(c, view, err)
}

// Validation, reference and order failures are part of the funnel state, so they are
// rendered as a normal view.
func (h *FunnelHandler) respond(c *gin.Context, view funnel.View, err error) {
	switch {
	case err == nil,
		errs.IsAny(err, errs.ErrValidation, funnel.ErrReferenceData, funnel.ErrOrderFailed):
		c.JSON(http.StatusOK, resdto.FromFunnelView(view))
	case errs.IsAny(err, funnel.ErrNotMounted):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Ticket funnel is not open", nil)
	case errs.IsAny(err, funnel.ErrFunnelClosed):
		httperr.AbortWithError(c, http.StatusConflict, err, "Ticket funnel is closed", resdto.FromFunnelView(view))
	case errs.IsAny(err, funnel.ErrBusy):
		httperr.AbortWithError(c, http.StatusConflict, err, "Ticket funnel is busy", resdto.FromFunnelView(view))
	default:
		httperr.AbortWithError(c, httperr.StatusFor(err), err, "Ticket funnel failed", nil)
	}
}
