package api

import (
	"net/http"

	reqdto "commerce-order-core/internal/handler/dto/request"
	resdto "commerce-order-core/internal/handler/dto/response"
	"commerce-order-core/internal/handler/httperr"
	"commerce-order-core/internal/usecase/commands"
	"commerce-order-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PurchaseHandler struct {
	cmds commands.PurchaseCommands
	q    queries.PurchaseQueries
}

func NewPurchaseHandler(cmds commands.PurchaseCommands, q queries.PurchaseQueries) *PurchaseHandler {
	return &PurchaseHandler{cmds: cmds, q: q}
}

// @Summary Place purchase
// @Description Reserve stock and record a completed purchase
// @Tags purchases
// @Accept json
// @Produce json
// @Param request body reqdto.PlacePurchaseRequest true "Purchase request"
// @Success 201 {object} resdto.PurchaseResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /purchases [post]
func (h *PurchaseHandler) Place(c *gin.Context) {
	var req reqdto.PlacePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	p, err := h.cmds.PlacePurchase(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.Header("Location", "/api/purchases/"+p.ID().String())
	c.JSON(http.StatusCreated, resdto.FromPurchase(p))
}

// @Summary Place order
// @Description Reserve stock and record a pending purchase awaiting fulfillment
// @Tags orders
// @Accept json
// @Produce json
// @Param request body reqdto.PlacePurchaseRequest true "Order request"
// @Success 201 {object} resdto.PurchaseResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /orders [post]
func (h *PurchaseHandler) PlaceOrder(c *gin.Context) {
	var req reqdto.PlacePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	p, err := h.cmds.PlacePendingPurchase(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.Header("Location", "/api/purchases/"+p.ID().String())
	c.JSON(http.StatusCreated, resdto.FromPurchase(p))
}

// @Summary Complete order
// @Description Move a pending purchase to COMPLETED
// @Tags orders
// @Produce json
// @Param id path string true "Purchase ID"
// @Success 200 {object} resdto.PurchaseResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /orders/{id}/complete [post]
func (h *PurchaseHandler) CompleteOrder(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	p, err := h.cmds.CompletePurchase(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPurchase(p))
}

// @Summary Get purchase
// @Description Get a purchase with buyer email and product name
// @Tags purchases
// @Produce json
// @Param id path string true "Purchase ID"
// @Success 200 {object} resdto.PurchaseViewResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /purchases/{id} [get]
func (h *PurchaseHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetPurchase(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPurchaseView(view))
}

// @Summary List pending orders
// @Description Oldest-first batch of pending purchases for settlement
// @Tags orders
// @Produce json
// @Param limit query int false "Page size (default 20, max 100)"
// @Param after query string false "Cursor from a previous page"
// @Success 200 {object} resdto.PendingPurchasesResponse
// @Failure 400 {object} httperr.Response
// @Router /orders/pending [get]
func (h *PurchaseHandler) ListPending(c *gin.Context) {
	var req reqdto.ListPendingRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	var cursor *queries.Cursor
	if req.After != "" {
		cursor = &queries.Cursor{After: req.After}
	}
	views, next, err := h.q.ListPendingPurchases(c.Request.Context(), cursor, req.Limit)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPendingPage(views, next))
}
