package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"reward_wallet_back/internal/withdrawal"
	"reward_wallet_back/models"
)

// Withdrawal history of the caller, newest first, one page.
func (h *Handler) ListWithdrawals(c *gin.Context) {
	actor, err := h.actor(c)
	if err != nil {
		newErrorResponse(c, http.StatusUnauthorized, "user not found")
		return
	}

	withdrawals, err := h.service.Withdrawals.List(actor)
	if err != nil {
		errorResponse(c, err)
		return
	}

	wrapOkJSON(c, map[string]interface{}{
		"withdrawals": withdrawals,
	})
}

// Submit a withdrawal request: {amount, method, recipient}.
func (h *Handler) SubmitWithdrawal(c *gin.Context) {
	actor, err := h.actor(c)
	if err != nil {
		newErrorResponse(c, http.StatusUnauthorized, "user not found")
		return
	}

	var input models.SubmitWithdrawalInput
	if err := c.BindJSON(&input); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "missing required fields")
		return
	}

	created, err := h.service.Withdrawals.Submit(actor, input)
	if err != nil {
		errorResponse(c, err)
		return
	}

	wrapOkJSON(c, map[string]interface{}{
		"message":    "Withdrawal request submitted successfully",
		"requestId":  created.ID,
		"status":     created.Status,
		"fee":        created.Fee,
		"withdrawal": created,
	})
}

// Admin decision: {withdrawalId, status: approved|rejected, reason?}.
func (h *Handler) DecideWithdrawal(c *gin.Context) {
	actor, err := h.actor(c)
	if err != nil {
		newErrorResponse(c, http.StatusUnauthorized, "user not found")
		return
	}

	var input models.DecideWithdrawalInput
	if err := c.BindJSON(&input); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid request data")
		return
	}
	if input.Status != withdrawal.StatusApproved && input.Status != withdrawal.StatusRejected {
		newErrorResponse(c, http.StatusBadRequest, "invalid request data")
		return
	}

	updated, err := h.service.Withdrawals.Decide(actor, input)
	if err != nil {
		errorResponse(c, err)
		return
	}

	wrapOkJSON(c, map[string]interface{}{
		"message": "Withdrawal " + updated.Status + " successfully",
		"status":  updated.Status,
	})
}

// Owner cancellation: {id}. Refunds the amount, never the fee.
func (h *Handler) CancelWithdrawal(c *gin.Context) {
	actor, err := h.actor(c)
	if err != nil {
		newErrorResponse(c, http.StatusUnauthorized, "user not found")
		return
	}

	var input models.CancelWithdrawalInput
	if err := c.BindJSON(&input); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "missing withdrawal ID")
		return
	}

	result, err := h.service.Withdrawals.Cancel(actor, input)
	if err != nil {
		errorResponse(c, err)
		return
	}

	wrapOkJSON(c, map[string]interface{}{
		"message":           "Withdrawal cancelled successfully",
		"refundedAmount":    result.RefundedAmount,
		"refundedAmountBDT": result.RefundedAmountBDT,
	})
}
