package handlers

import (
	"errors"
	"net/http"

	appointmentSvc "opdflow/services/appointment"
	doctorSvc "opdflow/services/doctor"
	paymentSvc "opdflow/services/payment"
	userSvc "opdflow/services/user"
	"opdflow/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondData wraps a successful payload in the envelope every endpoint uses.
func respondData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

// handleServiceError maps service error types onto HTTP statuses: validation
// failures are 400, unknown references are 404, failed authentication is 401
// and anything else is a 500 with a generic message.
func handleServiceError(c *gin.Context, err error) {
	var (
		apptValidation appointmentSvc.ValidationError
		apptNotFound   appointmentSvc.NotFoundError
		docValidation  doctorSvc.ValidationError
		docNotFound    doctorSvc.NotFoundError
		usrValidation  userSvc.ValidationError
		usrNotFound    userSvc.NotFoundError
		usrAuth        userSvc.AuthError
		payValidation  paymentSvc.ValidationError
		payNotFound    paymentSvc.NotFoundError
	)

	switch {
	case errors.As(err, &apptValidation), errors.As(err, &docValidation),
		errors.As(err, &usrValidation), errors.As(err, &payValidation):
		utils.JSONError(c, http.StatusBadRequest, err.Error())
	case errors.As(err, &apptNotFound), errors.As(err, &docNotFound),
		errors.As(err, &usrNotFound), errors.As(err, &payNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error())
	case errors.As(err, &usrAuth):
		utils.JSONError(c, http.StatusUnauthorized, err.Error())
	default:
		utils.GetLogger().Error("request failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "something went wrong")
	}
}

// callerID returns the authenticated user ID set by the auth middleware.
func callerID(c *gin.Context) (string, bool) {
	v, ok := c.Get("userID")
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization")
		return "", false
	}
	id, ok := v.(string)
	if !ok || id == "" {
		utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization")
		return "", false
	}
	return id, true
}
