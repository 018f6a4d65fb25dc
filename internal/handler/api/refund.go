package api

import (
	"net/http"

	reqdto "commerce-order-core/internal/handler/dto/request"
	resdto "commerce-order-core/internal/handler/dto/response"
	"commerce-order-core/internal/handler/httperr"
	"commerce-order-core/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RefundHandler struct {
	cmds commands.RefundCommands
}

func NewRefundHandler(cmds commands.RefundCommands) *RefundHandler {
	return &RefundHandler{cmds: cmds}
}

// @Summary Refund purchase
// @Description Refund a completed purchase in full and restore its stock
// @Tags refunds
// @Accept json
// @Produce json
// @Param id path string true "Purchase ID"
// @Param request body reqdto.ProcessRefundRequest true "Refund request"
// @Success 201 {object} resdto.RefundResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /purchases/{id}/refunds [post]
func (h *RefundHandler) Create(c *gin.Context) {
	purchaseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.ProcessRefundRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	r, err := h.cmds.ProcessRefund(c.Request.Context(), purchaseID, req.ToCommand())
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromRefund(r))
}
