package api

import (
	"net/http"

	resdto "mynbala-backend/internal/handler/dto/response"
	"mynbala-backend/internal/handler/httperr"
	"mynbala-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	q queries.CatalogQueries
}

func NewCatalogHandler(q queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{q: q}
}

// @Summary List branches
// @Tags catalog
// @Produce json
// @Success 200 {array} resdto.BranchResponse
// @Failure 500 {object} httperr.Response
// @Router /branches [get]
func (h *CatalogHandler) Branches(c *gin.Context) {
	branches, err := h.q.Branches(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load branches", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBranches(branches))
}

// @Summary List tariffs
// @Tags catalog
// @Produce json
// @Success 200 {array} resdto.TariffResponse
// @Failure 500 {object} httperr.Response
// @Router /tariffs [get]
func (h *CatalogHandler) Tariffs(c *gin.Context) {
	tariffs, err := h.q.Tariffs(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load tariffs", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTariffs(tariffs))
}

// @Summary List promotions
// @Tags catalog
// @Produce json
// @Success 200 {array} resdto.PromoResponse
// @Failure 500 {object} httperr.Response
// @Router /promos [get]
func (h *CatalogHandler) Promos(c *gin.Context) {
	promos, err := h.q.Promos(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load promotions", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPromoViews(promos))
}
