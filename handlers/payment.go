package handlers

import (
	"net/http"

	"opdflow/models"
	"opdflow/utils"

	"github.com/gin-gonic/gin"
)

// CreatePaymentIntentHandler handles POST /api/payments/intent.
func (h *PaymentHandler) CreatePaymentIntentHandler(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req models.PaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.PaymentService.CreateIntent(c.Request.Context(), userID, req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respondData(c, http.StatusCreated, resp)
}

// ConfirmPaymentHandler handles POST /api/payments/confirm.
func (h *PaymentHandler) ConfirmPaymentHandler(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req models.PaymentConfirmation
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	appt, err := h.PaymentService.Confirm(c.Request.Context(), userID, req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, appt)
}
